package pixel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestPackUnpackRoundTrip(t *testing.T) {
	// Packing truncates without rounding, so the worst case error after
	// unpacking is the dropped low bits minus the replicated ones: 7 for
	// the 5-bit channels, 3 for green. Exact equality does not hold and
	// is not asserted.
	src := New(16, 16, ARGB8888)
	for p := 0; p < len(src.Pix); p++ {
		src.Pix[p] = byte(p*7 + p/4)
	}

	packed, err := Convert(src, ARGB8565)
	require.NoError(t, err)
	assert.Equal(t, src.Width*src.Height*3, len(packed.Pix))

	out, err := Convert(packed, ARGB8888)
	require.NoError(t, err)
	require.Equal(t, len(src.Pix), len(out.Pix))

	for p := 0; p < len(src.Pix); p += 4 {
		assert.True(t, absDiff(src.Pix[p], out.Pix[p]) <= 7, "blue at %d: %d vs %d", p, src.Pix[p], out.Pix[p])
		assert.True(t, absDiff(src.Pix[p+1], out.Pix[p+1]) <= 3, "green at %d: %d vs %d", p, src.Pix[p+1], out.Pix[p+1])
		assert.True(t, absDiff(src.Pix[p+2], out.Pix[p+2]) <= 7, "red at %d: %d vs %d", p, src.Pix[p+2], out.Pix[p+2])
		assert.Equal(t, src.Pix[p+3], out.Pix[p+3], "alpha must carry over unchanged")
	}
}

func TestPackUnpackExactValues(t *testing.T) {
	// Channel values whose low bits already mirror their top bits
	// survive the trip unchanged.
	src := New(4, 1, ARGB8888)
	for i, v := range []byte{0x00, 0x18, 0xe7, 0xff} {
		src.Pix[i*4] = v
		src.Pix[i*4+1] = v
		src.Pix[i*4+2] = v
		src.Pix[i*4+3] = 0xff
	}

	packed, err := Convert(src, ARGB8565)
	require.NoError(t, err)
	out, err := Convert(packed, ARGB8888)
	require.NoError(t, err)
	assert.Equal(t, src.Pix, out.Pix)
}

func TestBitReplication(t *testing.T) {
	tables := []struct {
		packed  uint16
		r, g, b uint8
	}{
		{0x0000, 0x00, 0x00, 0x00},
		{0xffff, 0xff, 0xff, 0xff},
		// Each channel saturates alone; a narrowing conversion
		// applied before the shift would zero red entirely.
		{0xf800, 0xff, 0x00, 0x00},
		{0x07e0, 0x00, 0xff, 0x00},
		{0x001f, 0x00, 0x00, 0xff},
		{0x0800, 0x08, 0x00, 0x00},
	}

	for _, table := range tables {
		r, g, b := rgb565To888(table.packed)
		assert.Equal(t, table.r, r, "red for %#04x", table.packed)
		assert.Equal(t, table.g, g, "green for %#04x", table.packed)
		assert.Equal(t, table.b, b, "blue for %#04x", table.packed)
	}
}

func TestConvertRLEToARGB8888(t *testing.T) {
	// Non-adjacent conversion goes through ARGB8565. A 2x1 image: one
	// repeat command covering both pixels, full alpha, pure red.
	src := &Image{
		Width:  2,
		Height: 1,
		Format: RLE,
		Pix:    []byte{0x82, 0xff, 0xf8, 0x00},
	}
	out, err := Convert(src, ARGB8888)
	require.NoError(t, err)
	assert.Equal(t, ARGB8888, out.Format)
	assert.Equal(t, []byte{0x00, 0x00, 0xff, 0xff, 0x00, 0x00, 0xff, 0xff}, out.Pix)
	// The source buffer is untouched.
	assert.Equal(t, []byte{0x82, 0xff, 0xf8, 0x00}, src.Pix)
}

func TestConvertShortRLE(t *testing.T) {
	// Stream decodes cleanly but yields fewer pixels than the declared
	// geometry requires.
	src := &Image{Width: 4, Height: 4, Format: RLE, Pix: []byte{0x81, 0xff, 0x00, 0x00}}
	_, err := Convert(src, ARGB8565)
	assert.Error(t, err)
}

func TestConvertSameFormatCopies(t *testing.T) {
	src := New(2, 2, ARGB8565)
	out, err := Convert(src, ARGB8565)
	require.NoError(t, err)
	out.Pix[0] = 0xff
	assert.Equal(t, byte(0), src.Pix[0])
}
