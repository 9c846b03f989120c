package watchface

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// FaceDB is a catalog of scanned watch faces, keyed by the SHA1 of the
// file contents so the same face reached through different paths is one
// row.
type FaceDB struct {
	db *sql.DB
}

func NewFaceDB(file string) (*FaceDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS face (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, path STRING NOT NULL, api_version INTEGER NOT NULL, digit_sets INTEGER NOT NULL, widgets INTEGER NOT NULL, summary BLOB NOT NULL)"); err != nil {
		return nil, err
	}

	return &FaceDB{
		db: db,
	}, nil
}

func (db *FaceDB) Close() error {
	return db.db.Close()
}

// AddFace upserts one face summary. The report's SHA1 is the key; a face
// already cataloged has its path and summary refreshed, so rescans after
// reorganizing the tree keep a single row per face.
func (db *FaceDB) AddFace(r *Report) (int64, error) {
	summary, err := json.Marshal(r)
	if err != nil {
		return 0, err
	}

	var id int64
	switch err := db.db.QueryRow("SELECT id FROM face WHERE sha1 = ?", r.SHA1).Scan(&id); err {
	case sql.ErrNoRows:
		result, err := db.db.Exec("INSERT INTO face (sha1, path, api_version, digit_sets, widgets, summary) VALUES (?, ?, ?, ?, ?, ?)", r.SHA1, r.Path, r.APIVersion, r.DigitSets, len(r.Widgets), summary)
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	case nil:
		if _, err := db.db.Exec("UPDATE face SET path = ?, summary = ? WHERE id = ?", r.Path, summary, id); err != nil {
			return 0, err
		}
		return id, nil
	default:
		return 0, err
	}
}

// FindFaceBySHA1 returns the cataloged summary for the checksum, or nil
// when the face has never been scanned.
func (db *FaceDB) FindFaceBySHA1(sha string) (*Report, error) {
	var summary []byte
	switch err := db.db.QueryRow("SELECT summary FROM face WHERE sha1 = ?", sha).Scan(&summary); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		r := &Report{}
		if err := json.Unmarshal(summary, r); err != nil {
			return nil, err
		}
		return r, nil
	default:
		return nil, err
	}
}

// Faces returns every cataloged summary ordered by path.
func (db *FaceDB) Faces() ([]*Report, error) {
	rows, err := db.db.Query("SELECT summary FROM face ORDER BY path")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var faces []*Report
	for rows.Next() {
		var summary []byte
		if err := rows.Scan(&summary); err != nil {
			return nil, err
		}
		r := &Report{}
		if err := json.Unmarshal(summary, r); err != nil {
			return nil, err
		}
		faces = append(faces, r)
	}

	return faces, rows.Err()
}
