package watchface

import (
	"crypto/sha1"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	dir, err := ioutil.TempDir("", "watchface")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	// Minimal valid face: header plus an empty widget chain
	b := []byte{
		18, 0x00, // api version
		0xff, 0xff,
		0x00, 0x00, // preview offset
		0x00, 0x00,
		0xf0, 0x00, // preview 240x280
		0x18, 0x01,
		0x00, 0x00, // no digit chain
		0x10, 0x00, // widget chain at 16
		0x00, 0x00,
	}

	require.NoError(t, os.Mkdir(filepath.Join(dir, "faces"), 0755))
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "faces", "watch.bin"), b, 0644))
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a face"), 0644))

	db, err := NewFaceDB(filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	defer db.Close()

	m := New(db, log.New(ioutil.Discard, "", 0))
	require.NoError(t, m.Scan(dir))

	got, err := db.FindFaceBySHA1(fmt.Sprintf("%X", sha1.Sum(b)))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uint16(18), got.APIVersion)
	assert.Equal(t, uint16(240), got.PreviewWidth)
	assert.True(t, strings.HasSuffix(got.Path, "watch.bin"))

	faces, err := db.Faces()
	require.NoError(t, err)
	assert.Len(t, faces, 1)
}
