/*
Package face decodes 'new' format MO YOUNG / DA FIT binary watch face
files, as served to the DA FIT app from the /new/ API.

A file is a 16 byte header followed by two record chains over a single
cursor: an optional digit glyph chain and a widget chain terminated by a
zero continuation byte. Records reference embedded images by absolute file
offset; each image region starts with a per-row offset table followed by an
RLE compressed pixel stream (see the pixel package).
*/
package face

import (
	"fmt"
	"io/ioutil"
	"log"
)

// sectionMarker is the expected leading type word of every digit chain
// record.
const sectionMarker = 0x0101

// Face is one decoded watch face. On a parse error the already decoded
// records are retained, so a Face returned alongside an error is still
// usable for best-effort dumping.
type Face struct {
	Header    Header
	DigitSets []*Digits
	Widgets   []Record

	view *View
}

// Decoder parses face files. The zero value is usable; Logger, when set,
// receives warnings about tolerated inconsistencies.
type Decoder struct {
	Logger *log.Logger
}

// Parse decodes b with a zero Decoder.
func Parse(b []byte) (*Face, error) {
	return (&Decoder{}).Parse(b)
}

// Open reads and decodes the named file.
func Open(name string) (*Face, error) {
	b, err := ioutil.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

func (d *Decoder) logf(format string, v ...interface{}) {
	if d.Logger != nil {
		d.Logger.Printf(format, v...)
	}
}

// Parse decodes one complete face file held in b. The buffer is retained
// by the returned Face for image extraction and must not be modified.
func (d *Decoder) Parse(b []byte) (*Face, error) {
	v := NewView(b)

	h, err := decodeHeader(v)
	if err != nil {
		return nil, fmt.Errorf("face: file shorter than header: %w", err)
	}

	f := &Face{Header: h, view: v}

	if h.DigitsOffset != 0 {
		if h.WidgetsOffset < h.DigitsOffset {
			return f, fmt.Errorf("face: widget chain offset %#x precedes digit chain offset %#x", h.WidgetsOffset, h.DigitsOffset)
		}
		if err := d.parseDigitChain(f); err != nil {
			return f, err
		}
	}

	return f, d.parseWidgetChain(f)
}

// parseDigitChain decodes fixed-size digit set records from DigitsOffset up
// to exactly WidgetsOffset. Each record leads with a section marker word; a
// different value is reported but tolerated, since tool revisions disagree
// on whether it is meaningful.
func (d *Decoder) parseDigitChain(f *Face) error {
	cursor := int(f.Header.DigitsOffset)
	end := int(f.Header.WidgetsOffset)

	for cursor != end {
		if cursor > end {
			return fmt.Errorf("face: digit chain overran widget chain offset %#x by %d bytes", end, cursor-end)
		}

		marker, err := f.view.U16(cursor)
		if err != nil {
			return err
		}
		if marker != sectionMarker {
			d.logf("digit chain record at %#x has marker %#04x, expected %#04x", cursor, marker, sectionMarker)
		}

		rec, n, err := decodeDigits(f.view, cursor)
		if err != nil {
			return err
		}
		f.DigitSets = append(f.DigitSets, rec)
		cursor += n
	}

	return nil
}

// parseWidgetChain decodes type-tagged records from WidgetsOffset until a
// zero continuation byte. An unrecognized tag is fatal: without a universal
// length field there is no way to skip past it.
func (d *Decoder) parseWidgetChain(f *Face) error {
	cursor := int(f.Header.WidgetsOffset)

	for {
		cont, err := f.view.Byte(cursor)
		if err != nil {
			return err
		}
		if cont == 0 {
			return nil
		}

		tag, err := f.view.Byte(cursor + 1)
		if err != nil {
			return err
		}

		rec, n, err := decodeRecord(f.view, cursor, tag)
		if err != nil {
			return err
		}
		f.Widgets = append(f.Widgets, rec)
		cursor += n
	}
}

// View exposes the underlying file buffer for image extraction.
func (f *Face) View() *View {
	return f.view
}
