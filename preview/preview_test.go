package preview

import (
	"bytes"
	"errors"
	"image/color"
	"image/gif"
	"testing"

	"github.com/bodgit/watchface/face"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testFace is a minimal face file: a 2x2 background image, red on the top
// row and green on the bottom.
func testFace(t *testing.T) *face.Face {
	b := []byte{
		18, 0x00, // api version
		0xff, 0xff,
		0x00, 0x00, // preview offset
		0x00, 0x00,
		0x02, 0x00, // preview 2x2
		0x02, 0x00,
		0x00, 0x00, // no digit chain
		0x10, 0x00, // widget chain at 16
	}
	b = append(b,
		0x01, 0x00, // image record
		0x00, 0x00, 0x00, 0x00, // at 0,0
		0x20, 0x00, 0x00, 0x00, // region at 32
		0x02, 0x00, 0x02, 0x00, // 2x2
		0x00, 0x00, // end of chain
	)
	b = append(b,
		0x08, 0x00, 0x80, 0x00, // row offset table
		0x0c, 0x00, 0x80, 0x00,
		0x82, 0xff, 0xf8, 0x00, // two red pixels
		0x82, 0xff, 0x07, 0xe0, // two green pixels
	)

	f, err := face.Parse(b)
	require.NoError(t, err)
	return f
}

func TestRender(t *testing.T) {
	m, err := Render(testFace(t))
	require.NoError(t, err)

	assert.Equal(t, 2, m.Bounds().Dx())
	assert.Equal(t, 2, m.Bounds().Dy())
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0xff}, m.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{G: 0xff, A: 0xff}, m.NRGBAAt(1, 1))
}

func TestRenderNothing(t *testing.T) {
	_, err := Render(&face.Face{})
	assert.True(t, errors.Is(err, ErrNothingToRender))
}

func TestEncodeGIF(t *testing.T) {
	m, err := Render(testFace(t))
	require.NoError(t, err)

	b := new(bytes.Buffer)
	require.NoError(t, EncodeGIF(b, m))

	out, err := gif.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Bounds().Dx())

	r, g, _, _ := out.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Zero(t, g)
}
