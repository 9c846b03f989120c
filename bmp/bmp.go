/*
Package bmp reads and writes the Windows bitmap container used when dumping
watch face images.

The writer always emits a BITMAPV5HEADER, 32 bits per pixel, uncompressed
with BI_BITFIELDS channel masks (blue, green, red, alpha from the low bits
up) and a negative height so rows are stored top-down and need no reversal
pass. The reader additionally accepts 16 and 24 bits per pixel and bottom-up
row order, for round-tripping externally authored source images, but rejects
anything whose masks or compression it does not understand.
*/
package bmp

import "errors"

const (
	fileHeaderSize = 14
	infoHeaderSize = 40  // BITMAPINFOHEADER
	v4HeaderSize   = 108 // BITMAPV4HEADER
	v5HeaderSize   = 124 // BITMAPV5HEADER

	// headerSize is the full size of everything the writer emits before
	// pixel data.
	headerSize = fileHeaderSize + v5HeaderSize

	compressionRGB       = 0 // BI_RGB
	compressionBitfields = 3 // BI_BITFIELDS

	maskRed   = 0x00ff0000
	maskGreen = 0x0000ff00
	maskBlue  = 0x000000ff
	maskAlpha = 0xff000000

	mask565Red   = 0xf800
	mask565Green = 0x07e0
	mask565Blue  = 0x001f

	// 2835 pixels per metre, 72dpi
	resolution = 2835
)

// ErrUnsupportedContainer is returned when a bitmap uses a bit depth,
// compression or channel layout this package does not understand. The
// returned error wraps it with a description of the offending field.
var ErrUnsupportedContainer = errors.New("bmp: unsupported bitmap container")

// rowSize returns the padded byte length of one stored row.
func rowSize(bpp, width int) int {
	return (bpp/8*width + 3) &^ 3
}
