package watchface

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bodgit/watchface/bmp"
	"github.com/bodgit/watchface/face"
	"github.com/bodgit/watchface/pixel"
)

// Format selects what Dump writes for each image.
type Format int

const (
	// FormatBin writes the raw on-disk region, row offset table included.
	FormatBin Format = iota
	// FormatRaw writes the decompressed ARGB8565 pixel stream.
	FormatRaw
	// FormatBMP writes a 32 bit BMP.
	FormatBMP
)

var formatNames = map[Format]string{
	FormatBin: "bin",
	FormatRaw: "raw",
	FormatBMP: "bmp",
}

func (f Format) String() string {
	return formatNames[f]
}

// Ext returns the filename extension for the format, including the dot.
func (f Format) Ext() string {
	return "." + formatNames[f]
}

// ParseFormat maps a format name from the command line to its Format.
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if name == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("watchface: unknown dump format %q", s)
}

func (m *WatchFace) dumpImage(f *face.Face, e ImageEntry, dir string, format Format) error {
	ref := face.ImageRef{Offset: e.Offset, Width: e.Width, Height: e.Height}

	var b []byte
	switch format {
	case FormatBin:
		region, err := f.ImageRegion(ref)
		if err != nil {
			return err
		}
		b = region
	case FormatRaw:
		img, err := f.CompressedImage(ref)
		if err != nil {
			return err
		}
		if img, err = pixel.Convert(img, pixel.ARGB8565); err != nil {
			return err
		}
		b = img.Pix
	case FormatBMP:
		img, err := f.CompressedImage(ref)
		if err != nil {
			return err
		}
		out, err := os.Create(filepath.Join(dir, e.Name+format.Ext()))
		if err != nil {
			return err
		}
		defer out.Close()
		return bmp.Encode(out, img)
	default:
		return fmt.Errorf("watchface: unknown dump format %d", format)
	}

	out, err := os.Create(filepath.Join(dir, e.Name+format.Ext()))
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = out.Write(b)
	return err
}

// Dump writes every embedded image of the face to dir, one file per image,
// named after its record. Images that fail to extract are logged and
// skipped so one corrupt region does not abandon the rest.
func (m *WatchFace) Dump(f *face.Face, dir string, format Format) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, e := range imageEntries(f) {
		if err := m.dumpImage(f, e, dir, format); err != nil {
			m.logger.Printf("skipping \"%s\": %v\n", e.Name, err)
		}
	}

	return nil
}
