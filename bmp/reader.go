package bmp

import (
	"encoding/binary"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/bodgit/watchface/pixel"
)

type header struct {
	fileSize    uint32
	offset      uint32
	dibSize     uint32
	width       int
	height      int
	topDown     bool
	bpp         int
	compression uint32
	masks       [4]uint32
}

func decodeHeader(b []byte) (*header, error) {
	if len(b) < fileHeaderSize+infoHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes is too short for any header", ErrUnsupportedContainer, len(b))
	}

	if b[0] != 'B' || b[1] != 'M' {
		return nil, fmt.Errorf("%w: missing BM signature", ErrUnsupportedContainer)
	}

	h := &header{
		fileSize: binary.LittleEndian.Uint32(b[2:]),
		offset:   binary.LittleEndian.Uint32(b[10:]),
		dibSize:  binary.LittleEndian.Uint32(b[14:]),
	}

	if r1, r2 := binary.LittleEndian.Uint16(b[6:]), binary.LittleEndian.Uint16(b[8:]); r1 != 0 || r2 != 0 {
		return nil, fmt.Errorf("%w: reserved fields %d, %d are not zero", ErrUnsupportedContainer, r1, r2)
	}

	if h.dibSize != infoHeaderSize && h.dibSize != v4HeaderSize && h.dibSize != v5HeaderSize {
		return nil, fmt.Errorf("%w: DIB header size %d", ErrUnsupportedContainer, h.dibSize)
	}

	h.width = int(int32(binary.LittleEndian.Uint32(b[18:])))
	h.height = int(int32(binary.LittleEndian.Uint32(b[22:])))
	if h.height < 0 {
		h.topDown = true
		h.height = -h.height
	}
	if h.width < 1 || h.height < 1 {
		return nil, fmt.Errorf("%w: %dx%d has no pixels", ErrUnsupportedContainer, h.width, h.height)
	}

	if planes := binary.LittleEndian.Uint16(b[26:]); planes != 1 {
		return nil, fmt.Errorf("%w: %d colour planes", ErrUnsupportedContainer, planes)
	}

	h.bpp = int(binary.LittleEndian.Uint16(b[28:]))
	h.compression = binary.LittleEndian.Uint32(b[30:])

	if h.compression == compressionBitfields {
		if len(b) < fileHeaderSize+infoHeaderSize+16 {
			return nil, fmt.Errorf("%w: too short for channel masks", ErrUnsupportedContainer)
		}
		for i := range h.masks {
			h.masks[i] = binary.LittleEndian.Uint32(b[fileHeaderSize+infoHeaderSize+4*i:])
		}
	}

	switch h.bpp {
	case 16:
		if h.compression != compressionBitfields {
			return nil, fmt.Errorf("%w: 16bpp without bitfields", ErrUnsupportedContainer)
		}
		if h.masks[0] != mask565Red || h.masks[1] != mask565Green || h.masks[2] != mask565Blue {
			return nil, fmt.Errorf("%w: 16bpp masks %#x/%#x/%#x are not RGB565", ErrUnsupportedContainer, h.masks[0], h.masks[1], h.masks[2])
		}
	case 24, 32:
		switch h.compression {
		case compressionRGB:
		case compressionBitfields:
			if h.masks[0] != maskRed || h.masks[1] != maskGreen || h.masks[2] != maskBlue {
				return nil, fmt.Errorf("%w: %dbpp masks %#x/%#x/%#x", ErrUnsupportedContainer, h.bpp, h.masks[0], h.masks[1], h.masks[2])
			}
			if h.bpp == 32 && h.masks[3] != maskAlpha {
				return nil, fmt.Errorf("%w: 32bpp alpha mask %#x", ErrUnsupportedContainer, h.masks[3])
			}
		default:
			return nil, fmt.Errorf("%w: compression type %d", ErrUnsupportedContainer, h.compression)
		}
	default:
		return nil, fmt.Errorf("%w: %d bits per pixel", ErrUnsupportedContainer, h.bpp)
	}

	return h, nil
}

// Decode reads a BMP from r into the closest in-memory pixel format:
// ARGB8565 for 16bpp sources, ARGB8888 for 24 and 32bpp. Bottom-up bitmaps
// are normalized by reading rows in reverse order.
func Decode(r io.Reader) (*pixel.Image, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	h, err := decodeHeader(b)
	if err != nil {
		return nil, err
	}

	row := rowSize(h.bpp, h.width)
	if int(h.offset)+row*h.height > len(b) {
		return nil, fmt.Errorf("%w: %d bytes is too short for %dx%d at %dbpp", ErrUnsupportedContainer, len(b), h.width, h.height, h.bpp)
	}

	format := pixel.ARGB8888
	if h.bpp == 16 {
		format = pixel.ARGB8565
	}
	m := pixel.New(h.width, h.height, format)

	for y := 0; y < h.height; y++ {
		srcRow := y
		if !h.topDown {
			srcRow = h.height - y - 1
		}
		src := b[int(h.offset)+srcRow*row:]

		switch h.bpp {
		case 16:
			for x := 0; x < h.width; x++ {
				d := (y*h.width + x) * 3
				// File order is low byte first; pixels store the
				// 565 word high byte first with full alpha.
				m.Pix[d] = 0xff
				m.Pix[d+1] = src[2*x+1]
				m.Pix[d+2] = src[2*x]
			}
		case 24:
			for x := 0; x < h.width; x++ {
				d := (y*h.width + x) * 4
				m.Pix[d] = src[3*x]
				m.Pix[d+1] = src[3*x+1]
				m.Pix[d+2] = src[3*x+2]
				m.Pix[d+3] = 0xff
			}
		case 32:
			copy(m.Pix[y*h.width*4:(y+1)*h.width*4], src[:h.width*4])
		}
	}

	return m, nil
}
