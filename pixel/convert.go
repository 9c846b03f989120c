package pixel

import "fmt"

// rgb565To888 expands the packed channels to eight bits each, replicating
// the top bits of each channel into the vacated low bits rather than zero
// filling, so that full intensity maps to 0xff.
func rgb565To888(p uint16) (r, g, b uint8) {
	b = uint8((p&0x001f)<<3 | (p&0x001c)>>2)
	g = uint8((p&0x07e0)>>3 | (p&0x0600)>>9)
	r = uint8((p&0xf800)>>8 | (p&0xe000)>>13)
	return
}

// rgb888To565 truncates each channel to its top 5/6/5 bits.
func rgb888To565(r, g, b uint8) uint16 {
	return uint16(r&0xf8)<<8 | uint16(g&0xfc)<<3 | uint16(b&0xf8)>>3
}

// Convert returns a new image in the target format. The source image is
// never modified. RLE and ARGB8888 convert via the intermediate ARGB8565
// format; conversion to RLE would require the unimplemented compressor and
// returns ErrNotImplemented.
func Convert(i *Image, target Format) (*Image, error) {
	if i.Format == target {
		dup := &Image{Width: i.Width, Height: i.Height, Format: i.Format}
		dup.Pix = append([]byte(nil), i.Pix...)
		return dup, nil
	}

	switch target {
	case ARGB8565:
		switch i.Format {
		case RLE:
			return expandRLE(i)
		case ARGB8888:
			return packPixels(i)
		}
	case ARGB8888:
		if i.Format == RLE {
			tmp, err := expandRLE(i)
			if err != nil {
				return nil, err
			}
			i = tmp
		}
		return unpackPixels(i)
	case RLE:
		if i.Format == ARGB8888 {
			tmp, err := packPixels(i)
			if err != nil {
				return nil, err
			}
			i = tmp
		}
		if _, err := encodeRLE(i.Pix); err != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("pixel: no conversion from %v to %v", i.Format, target)
}

func expandRLE(i *Image) (*Image, error) {
	want := i.Width * i.Height * ARGB8565.BytesPerPixel()
	pix, err := decodeRLE(i.Pix, want)
	if err != nil {
		return nil, err
	}
	if len(pix) < want {
		return nil, fmt.Errorf("%w: decoded %d of %d pixel bytes", ErrTruncatedStream, len(pix), want)
	}
	return &Image{Width: i.Width, Height: i.Height, Format: ARGB8565, Pix: pix[:want]}, nil
}

// unpackPixels raises ARGB8565 to ARGB8888. The alpha byte carries over
// unchanged; the 565 word is stored high byte first.
func unpackPixels(i *Image) (*Image, error) {
	if i.Format != ARGB8565 {
		return nil, fmt.Errorf("pixel: cannot unpack %v", i.Format)
	}
	out := New(i.Width, i.Height, ARGB8888)
	for p, q := 0, 0; p < len(i.Pix); p, q = p+3, q+4 {
		a := i.Pix[p]
		r, g, b := rgb565To888(uint16(i.Pix[p+1])<<8 | uint16(i.Pix[p+2]))
		out.Pix[q] = b
		out.Pix[q+1] = g
		out.Pix[q+2] = r
		out.Pix[q+3] = a
	}
	return out, nil
}

// packPixels lowers ARGB8888 to ARGB8565.
func packPixels(i *Image) (*Image, error) {
	if i.Format != ARGB8888 {
		return nil, fmt.Errorf("pixel: cannot pack %v", i.Format)
	}
	out := New(i.Width, i.Height, ARGB8565)
	for p, q := 0, 0; p < len(i.Pix); p, q = p+4, q+3 {
		b, g, r, a := i.Pix[p], i.Pix[p+1], i.Pix[p+2], i.Pix[p+3]
		packed := rgb888To565(r, g, b)
		out.Pix[q] = a
		out.Pix[q+1] = byte(packed >> 8)
		out.Pix[q+2] = byte(packed)
	}
	return out, nil
}
