package bmp

import (
	"encoding/binary"
	"io"

	"github.com/bodgit/watchface/pixel"
)

type encoder struct {
	w io.Writer
}

func (e *encoder) writeHeader(width, height int) error {
	row := rowSize(32, width)
	var h [headerSize]byte

	h[0], h[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(h[2:], uint32(headerSize+row*height))
	// reserved fields at 6 and 8 stay zero
	binary.LittleEndian.PutUint32(h[10:], headerSize)

	binary.LittleEndian.PutUint32(h[14:], v5HeaderSize)
	binary.LittleEndian.PutUint32(h[18:], uint32(width))
	// Negative height declares top-down row order.
	binary.LittleEndian.PutUint32(h[22:], uint32(-int32(height)))
	binary.LittleEndian.PutUint16(h[26:], 1)  // planes
	binary.LittleEndian.PutUint16(h[28:], 32) // bpp
	binary.LittleEndian.PutUint32(h[30:], compressionBitfields)
	binary.LittleEndian.PutUint32(h[34:], uint32(row*height))
	binary.LittleEndian.PutUint32(h[38:], resolution)
	binary.LittleEndian.PutUint32(h[42:], resolution)
	// clrUsed and clrImportant stay zero
	binary.LittleEndian.PutUint32(h[54:], maskRed)
	binary.LittleEndian.PutUint32(h[58:], maskGreen)
	binary.LittleEndian.PutUint32(h[62:], maskBlue)
	binary.LittleEndian.PutUint32(h[66:], maskAlpha)
	// colour space type, endpoints, gammas, intent and profile fields
	// stay zero

	_, err := e.w.Write(h[:])
	return err
}

func (e *encoder) writePixels(m *pixel.Image) error {
	src := m.Width * 4
	row := make([]byte, rowSize(32, m.Width))
	for y := 0; y < m.Height; y++ {
		n := copy(row, m.Pix[y*src:(y+1)*src])
		for i := n; i < len(row); i++ {
			row[i] = 0
		}
		if _, err := e.w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Encode writes m to w as a 32 bits per pixel top-down BMP, converting the
// pixel format first where needed.
func Encode(w io.Writer, m *pixel.Image) error {
	if m.Format != pixel.ARGB8888 {
		var err error
		if m, err = pixel.Convert(m, pixel.ARGB8888); err != nil {
			return err
		}
	}

	e := encoder{w: w}

	if err := e.writeHeader(m.Width, m.Height); err != nil {
		return err
	}

	return e.writePixels(m)
}
