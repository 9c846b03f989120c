/*
Package watchface is a library for working with MO YOUNG / DA FIT binary
watch face files, as used by the DA FIT app.
*/
package watchface

import "log"

type WatchFace struct {
	db     *FaceDB
	logger *log.Logger
}

func New(db *FaceDB, logger *log.Logger) *WatchFace {
	return &WatchFace{
		db:     db,
		logger: logger,
	}
}
