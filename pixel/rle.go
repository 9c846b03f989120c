package pixel

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedStream is returned when an RLE command declares more
	// data than the stream contains.
	ErrTruncatedStream = errors.New("pixel: truncated RLE stream")

	// ErrNotImplemented is returned by the RLE encode direction, which
	// the format documents but this package does not produce.
	ErrNotImplemented = errors.New("pixel: RLE compression is not implemented")
)

// decodeRLE expands an RLE stream into flat ARGB8565 pixels. Each command
// byte either carries a literal pixel count in its low seven bits, or, with
// the high bit set, a repeat count for the single pixel that follows. The
// stream is terminated by its byte count alone; row boundaries are external
// metadata and do not appear in the stream.
func decodeRLE(src []byte, sizeHint int) ([]byte, error) {
	dst := make([]byte, 0, sizeHint)
	for i := 0; i < len(src); {
		cmd := src[i]
		i++
		if cmd&0x80 != 0 {
			count := int(cmd & 0x7f)
			if i+3 > len(src) {
				return nil, fmt.Errorf("%w: repeat command at offset %d needs 3 bytes, %d remain", ErrTruncatedStream, i-1, len(src)-i)
			}
			a, hi, lo := src[i], src[i+1], src[i+2]
			i += 3
			for j := 0; j < count; j++ {
				dst = append(dst, a, hi, lo)
			}
		} else {
			n := int(cmd) * 3
			if i+n > len(src) {
				return nil, fmt.Errorf("%w: literal command at offset %d needs %d bytes, %d remain", ErrTruncatedStream, i-1, n, len(src)-i)
			}
			dst = append(dst, src[i:i+n]...)
			i += n
		}
	}
	return dst, nil
}

func encodeRLE([]byte) ([]byte, error) {
	return nil, ErrNotImplemented
}
