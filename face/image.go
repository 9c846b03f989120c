package face

import (
	"errors"
	"fmt"

	"github.com/bodgit/watchface/pixel"
)

// ErrMalformedImageTable is returned when an image's row offset table
// encodes a size inconsistent with the buffer.
var ErrMalformedImageTable = errors.New("face: malformed image row offset table")

// resolveDataSize computes the compressed pixel data length of the image
// region at base, from the trailing entry of its row offset table. Each of
// the height entries is a 16-bit row offset and a 16-bit size field; the
// low five bits of the size field extend the final offset past 16 bits (in
// 64KiB units) and the remaining bits are the final row's byte count. The
// table's own size is excluded from the result.
func resolveDataSize(v *View, base, height int) (int, error) {
	if height == 0 {
		return 0, fmt.Errorf("%w: zero height", ErrMalformedImageTable)
	}
	tableSize := height * 4

	lastOffset, err := v.U16(base + tableSize - 4)
	if err != nil {
		return 0, err
	}
	lastSize, err := v.U16(base + tableSize - 2)
	if err != nil {
		return 0, err
	}

	end := int(lastOffset) + int(lastSize&0x1f)<<16 + int(lastSize>>5)
	if end < tableSize {
		return 0, fmt.Errorf("%w: data ends at %#x inside the %d byte table", ErrMalformedImageTable, end, tableSize)
	}

	size := end - tableSize
	if base+tableSize+size > v.Len() {
		return 0, fmt.Errorf("%w: %d bytes of data at %#x exceeds %d byte buffer", ErrMalformedImageTable, size, base+tableSize, v.Len())
	}

	return size, nil
}

// ImageRegion returns the raw on-disk bytes of the referenced image: the
// row offset table followed by the compressed pixel data.
func (f *Face) ImageRegion(ref ImageRef) ([]byte, error) {
	size, err := resolveDataSize(f.view, int(ref.Offset), int(ref.Height))
	if err != nil {
		return nil, err
	}
	return f.view.Slice(int(ref.Offset), int(ref.Height)*4+size)
}

// CompressedImage returns the referenced image as an RLE pixel.Image,
// aliasing the file buffer.
func (f *Face) CompressedImage(ref ImageRef) (*pixel.Image, error) {
	size, err := resolveDataSize(f.view, int(ref.Offset), int(ref.Height))
	if err != nil {
		return nil, err
	}
	data, err := f.view.Slice(int(ref.Offset)+int(ref.Height)*4, size)
	if err != nil {
		return nil, err
	}
	return &pixel.Image{
		Width:  int(ref.Width),
		Height: int(ref.Height),
		Format: pixel.RLE,
		Pix:    data,
	}, nil
}

// DecodeImage decompresses the referenced image to ARGB8888.
func (f *Face) DecodeImage(ref ImageRef) (*pixel.Image, error) {
	m, err := f.CompressedImage(ref)
	if err != nil {
		return nil, err
	}
	return pixel.Convert(m, pixel.ARGB8888)
}
