package pixel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRLELiteral(t *testing.T) {
	// A single literal command copies exactly 3n bytes unchanged.
	src := []byte{0x02, 0xff, 0x12, 0x34, 0x80, 0x56, 0x78}
	out, err := decodeRLE(src, 6)
	require.NoError(t, err)
	assert.Equal(t, src[1:], out)
}

func TestDecodeRLERepeat(t *testing.T) {
	out, err := decodeRLE([]byte{0x83, 0x11, 0x22, 0x33}, 9)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x11, 0x22, 0x33, 0x11, 0x22, 0x33, 0x11, 0x22, 0x33}, out)
}

func TestDecodeRLEDeterministic(t *testing.T) {
	src := []byte{0x82, 0xaa, 0xbb, 0xcc, 0x01, 0x01, 0x02, 0x03, 0x81, 0x00, 0x00, 0x00}
	first, err := decodeRLE(src, 0)
	require.NoError(t, err)
	second, err := decodeRLE(src, 0)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDecodeRLETruncated(t *testing.T) {
	tables := []struct {
		name string
		src  []byte
	}{
		{"repeat missing pixel", []byte{0x83, 0x11, 0x22}},
		{"literal short", []byte{0x02, 0x11, 0x22, 0x33}},
		{"bare command", []byte{0x85}},
	}
	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			_, err := decodeRLE(table.src, 0)
			assert.True(t, errors.Is(err, ErrTruncatedStream), "want ErrTruncatedStream, got %v", err)
		})
	}
}

func TestEncodeRLENotImplemented(t *testing.T) {
	_, err := encodeRLE([]byte{0x00, 0x00, 0x00})
	assert.Equal(t, ErrNotImplemented, err)

	src := New(1, 1, ARGB8565)
	_, err = Convert(src, RLE)
	assert.True(t, errors.Is(err, ErrNotImplemented), "want ErrNotImplemented, got %v", err)
}
