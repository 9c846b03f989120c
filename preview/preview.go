/*
Package preview renders a decoded watch face to a static preview image,
approximating what the watch shows: the background, any static overlays,
and the clock digits frozen at 10:08.
*/
package preview

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"

	"github.com/bodgit/watchface/face"
	"github.com/ericpauley/go-quantize/quantize"
)

// ErrNothingToRender is returned for a face with no drawable images and no
// preview geometry in its header.
var ErrNothingToRender = errors.New("preview: face has no drawable images")

// The traditional watch marketing time.
const (
	previewHour   = 10
	previewMinute = 8
)

func drawRef(dst draw.Image, f *face.Face, ref face.ImageRef, at face.XY) error {
	if ref.Zero() {
		return nil
	}
	m, err := f.DecodeImage(ref)
	if err != nil {
		return err
	}
	src, err := m.NRGBA()
	if err != nil {
		return err
	}
	draw.Draw(dst, src.Bounds().Add(image.Pt(int(at.X), int(at.Y))), src, image.Point{}, draw.Over)
	return nil
}

func canvasSize(f *face.Face) (int, int) {
	w, h := int(f.Header.PreviewWidth), int(f.Header.PreviewHeight)
	if w > 0 && h > 0 {
		return w, h
	}
	for _, rec := range f.Widgets {
		if r, ok := rec.(*face.Image); ok && !r.Image.Zero() {
			return int(r.Image.Width), int(r.Image.Height)
		}
	}
	return 0, 0
}

// Render composes the face onto a fresh canvas sized from the header's
// preview geometry, falling back to the first static image. Widgets with
// no static rendering, such as hands and bar displays, are skipped.
func Render(f *face.Face) (*image.NRGBA, error) {
	w, h := canvasSize(f)
	if w == 0 || h == 0 {
		return nil, ErrNothingToRender
	}
	canvas := image.NewNRGBA(image.Rect(0, 0, w, h))

	for _, rec := range f.Widgets {
		switch r := rec.(type) {
		case *face.Image:
			if err := drawRef(canvas, f, r.Image, r.Pos); err != nil {
				return nil, err
			}
		case *face.Time:
			digits := [4]int{previewHour / 10, previewHour % 10, previewMinute / 10, previewMinute % 10}
			for i, d := range digits {
				set := int(r.DigitSets[i])
				if set >= len(f.DigitSets) {
					continue
				}
				if err := drawRef(canvas, f, f.DigitSets[set].Glyphs[d], r.Pos[i]); err != nil {
					return nil, err
				}
			}
		}
	}

	return canvas, nil
}

// EncodeGIF quantizes m down to a 256 color palette and writes it as a
// GIF.
func EncodeGIF(w io.Writer, m image.Image) error {
	b := m.Bounds()
	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, 256), m))
	draw.Draw(pm, b, m, b.Min, draw.Src)
	return gif.Encode(w, pm, nil)
}
