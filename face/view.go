package face

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a read, at an offset ultimately derived
// from file content, would run past the end of the buffer. The returned
// error wraps it with the offending offset.
var ErrOutOfBounds = errors.New("face: read beyond end of buffer")

// View is a bounds-checked read-only window over a loaded face file. All
// multi-byte reads are little-endian. Offsets come from untrusted file
// content, so every read validates its range instead of trusting the
// caller.
type View struct {
	b []byte
}

// NewView wraps b without copying it.
func NewView(b []byte) *View {
	return &View{b: b}
}

// Len returns the buffer length.
func (v *View) Len() int {
	return len(v.b)
}

func (v *View) check(off, n int) error {
	if off < 0 || n < 0 || off+n > len(v.b) || off+n < 0 {
		return fmt.Errorf("%w: %d bytes at offset %#x of %d byte buffer", ErrOutOfBounds, n, off, len(v.b))
	}
	return nil
}

// Byte returns the byte at off.
func (v *View) Byte(off int) (byte, error) {
	if err := v.check(off, 1); err != nil {
		return 0, err
	}
	return v.b[off], nil
}

// U16 returns the little-endian 16-bit value at off.
func (v *View) U16(off int) (uint16, error) {
	if err := v.check(off, 2); err != nil {
		return 0, err
	}
	return uint16(v.b[off]) | uint16(v.b[off+1])<<8, nil
}

// U32 returns the little-endian 32-bit value at off.
func (v *View) U32(off int) (uint32, error) {
	if err := v.check(off, 4); err != nil {
		return 0, err
	}
	return uint32(v.b[off]) | uint32(v.b[off+1])<<8 | uint32(v.b[off+2])<<16 | uint32(v.b[off+3])<<24, nil
}

// Slice returns the n bytes at off, aliasing the underlying buffer.
func (v *View) Slice(off, n int) ([]byte, error) {
	if err := v.check(off, n); err != nil {
		return nil, err
	}
	return v.b[off : off+n : off+n], nil
}
