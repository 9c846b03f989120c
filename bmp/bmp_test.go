package bmp

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/bodgit/watchface/pixel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowSize(t *testing.T) {
	tables := []struct {
		bpp, width, want int
	}{
		{32, 1, 4},
		{32, 7, 28},
		{24, 1, 4},
		{24, 2, 8},
		{24, 5, 16},
		{16, 3, 8},
		{16, 240, 480},
	}
	for _, table := range tables {
		assert.Equal(t, table.want, rowSize(table.bpp, table.width))
	}
}

func TestEncodeHeaderInvariants(t *testing.T) {
	m := pixel.New(7, 3, pixel.ARGB8888)

	var b bytes.Buffer
	require.NoError(t, Encode(&b, m))

	out := b.Bytes()
	row := rowSize(32, m.Width)

	assert.Equal(t, byte('B'), out[0])
	assert.Equal(t, byte('M'), out[1])
	assert.Equal(t, uint32(headerSize+row*m.Height), binary.LittleEndian.Uint32(out[2:]))
	assert.Equal(t, headerSize+row*m.Height, len(out))
	assert.Equal(t, uint32(headerSize), binary.LittleEndian.Uint32(out[10:]))
	assert.Equal(t, uint32(v5HeaderSize), binary.LittleEndian.Uint32(out[14:]))
	// Height is stored negative: top-down.
	assert.Equal(t, int32(-3), int32(binary.LittleEndian.Uint32(out[22:])))
	assert.Equal(t, uint16(32), binary.LittleEndian.Uint16(out[28:]))
	assert.Equal(t, uint32(compressionBitfields), binary.LittleEndian.Uint32(out[30:]))
	assert.Equal(t, uint32(maskRed), binary.LittleEndian.Uint32(out[54:]))
	assert.Equal(t, uint32(maskGreen), binary.LittleEndian.Uint32(out[58:]))
	assert.Equal(t, uint32(maskBlue), binary.LittleEndian.Uint32(out[62:]))
	assert.Equal(t, uint32(maskAlpha), binary.LittleEndian.Uint32(out[66:]))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	m := pixel.New(5, 4, pixel.ARGB8888)
	for p := range m.Pix {
		m.Pix[p] = byte(p * 11)
	}

	var b bytes.Buffer
	require.NoError(t, Encode(&b, m))

	out, err := Decode(&b)
	require.NoError(t, err)

	assert.Equal(t, m.Width, out.Width)
	assert.Equal(t, m.Height, out.Height)
	assert.Equal(t, pixel.ARGB8888, out.Format)
	assert.Equal(t, m.Pix, out.Pix)
}

func TestDecodeBottomUp(t *testing.T) {
	// Hand-build a minimal 24bpp bottom-up bitmap: 2x2, first stored row
	// is the bottom row of the image.
	row := rowSize(24, 2)
	b := make([]byte, fileHeaderSize+infoHeaderSize+row*2)
	b[0], b[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(b[2:], uint32(len(b)))
	binary.LittleEndian.PutUint32(b[10:], fileHeaderSize+infoHeaderSize)
	binary.LittleEndian.PutUint32(b[14:], infoHeaderSize)
	binary.LittleEndian.PutUint32(b[18:], 2)
	binary.LittleEndian.PutUint32(b[22:], 2) // positive: bottom-up
	binary.LittleEndian.PutUint16(b[26:], 1)
	binary.LittleEndian.PutUint16(b[28:], 24)

	pix := b[fileHeaderSize+infoHeaderSize:]
	copy(pix[0:], []byte{1, 1, 1, 2, 2, 2})   // stored first: image bottom row
	copy(pix[row:], []byte{3, 3, 3, 4, 4, 4}) // stored second: image top row

	m, err := Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, []byte{
		3, 3, 3, 0xff, 4, 4, 4, 0xff,
		1, 1, 1, 0xff, 2, 2, 2, 0xff,
	}, m.Pix)
}

func TestDecodeRejections(t *testing.T) {
	valid := func() []byte {
		var b bytes.Buffer
		require.NoError(t, Encode(&b, pixel.New(2, 2, pixel.ARGB8888)))
		return b.Bytes()
	}

	tables := []struct {
		name   string
		mangle func([]byte) []byte
	}{
		{"bad signature", func(b []byte) []byte { b[0] = 'X'; return b }},
		{"reserved not zero", func(b []byte) []byte { b[6] = 1; return b }},
		{"bad planes", func(b []byte) []byte { b[26] = 2; return b }},
		{"bad bpp", func(b []byte) []byte { b[28] = 8; return b }},
		{"bad dib size", func(b []byte) []byte { b[14] = 99; return b }},
		{"bad red mask", func(b []byte) []byte { b[54] = 0xaa; return b }},
		{"bad compression", func(b []byte) []byte { b[30] = 1; return b }},
		{"truncated pixels", func(b []byte) []byte { return b[:len(b)-5] }},
	}
	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			_, err := Decode(bytes.NewReader(table.mangle(valid())))
			assert.True(t, errors.Is(err, ErrUnsupportedContainer), "want ErrUnsupportedContainer, got %v", err)
		})
	}
}
