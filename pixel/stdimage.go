package pixel

import (
	"image"
	"image/color"
)

// NRGBA converts the image to a stdlib *image.NRGBA, converting formats
// first where needed.
func (i *Image) NRGBA() (*image.NRGBA, error) {
	src := i
	if src.Format != ARGB8888 {
		var err error
		if src, err = Convert(i, ARGB8888); err != nil {
			return nil, err
		}
	}
	m := image.NewNRGBA(image.Rect(0, 0, src.Width, src.Height))
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			p := (y*src.Width + x) * 4
			m.SetNRGBA(x, y, color.NRGBA{
				R: src.Pix[p+2],
				G: src.Pix[p+1],
				B: src.Pix[p],
				A: src.Pix[p+3],
			})
		}
	}
	return m, nil
}
