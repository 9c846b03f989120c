/*
Package pixel implements the in-memory image formats used by MO YOUNG / DA
FIT watch faces and the conversions between them.

Three formats exist. RLE is the compressed stream as it appears on disk,
operating on three byte pixels. ARGB8565 is the decompressed form of the
same pixels; one alpha byte followed by a packed RGB565 value stored high
byte first. ARGB8888 is a plain four bytes per pixel format in blue, green,
red, alpha order, matching the channel layout of a 32-bit BMP row.

Conversions never operate in place; every step allocates a buffer sized
exactly for the target format. RLE and ARGB8888 are not directly adjacent;
converting between them goes through ARGB8565.
*/
package pixel

import "fmt"

// Format identifies the pixel layout of an Image.
type Format int

const (
	// RLE is the compressed on-disk stream of ARGB8565 pixels.
	RLE Format = iota
	// ARGB8565 is three bytes per pixel: alpha, RGB565 high byte, RGB565
	// low byte.
	ARGB8565
	// ARGB8888 is four bytes per pixel in blue, green, red, alpha order.
	ARGB8888
)

func (f Format) String() string {
	switch f {
	case RLE:
		return "rle"
	case ARGB8565:
		return "argb8565"
	case ARGB8888:
		return "argb8888"
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// BytesPerPixel returns the storage size of one pixel, or zero for RLE
// which has no fixed pixel size.
func (f Format) BytesPerPixel() int {
	switch f {
	case ARGB8565:
		return 3
	case ARGB8888:
		return 4
	}
	return 0
}

// Image is a width by height pixel buffer in one of the supported formats.
// For RLE the Pix length is the compressed stream length, otherwise it is
// exactly Width*Height*BytesPerPixel.
type Image struct {
	Width  int
	Height int
	Format Format
	Pix    []byte
}

// New returns a zeroed image of the given dimensions and fixed-size format.
func New(width, height int, format Format) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Format: format,
		Pix:    make([]byte, width*height*format.BytesPerPixel()),
	}
}
