package watchface

import (
	"fmt"

	"github.com/bodgit/watchface/face"
)

// ImageEntry is one embedded image of a face, under the stable name the
// dump operation would write it as.
type ImageEntry struct {
	Name   string `json:"name"`
	Offset uint32 `json:"offset"`
	Width  uint16 `json:"width"`
	Height uint16 `json:"height"`
}

// WidgetEntry summarises one widget chain record.
type WidgetEntry struct {
	Kind   string `json:"kind"`
	Images int    `json:"images"`
}

// Report is the decoded summary of one face file. It is what the report
// command emits as JSON and what the scan pipeline stores in the catalog.
type Report struct {
	Path          string        `json:"path,omitempty"`
	SHA1          string        `json:"sha1,omitempty"`
	APIVersion    uint16        `json:"apiVersion"`
	API           string        `json:"api,omitempty"`
	PreviewWidth  uint16        `json:"previewWidth"`
	PreviewHeight uint16        `json:"previewHeight"`
	DigitSets     int           `json:"digitSets"`
	Widgets       []WidgetEntry `json:"widgets"`
	Images        []ImageEntry  `json:"images"`
}

// NewReport builds the summary of a decoded face.
func NewReport(f *face.Face) *Report {
	r := &Report{
		APIVersion:    f.Header.APIVersion,
		API:           f.Header.APIDescription(),
		PreviewWidth:  f.Header.PreviewWidth,
		PreviewHeight: f.Header.PreviewHeight,
		DigitSets:     len(f.DigitSets),
		Images:        imageEntries(f),
	}
	for _, w := range f.Widgets {
		n := 0
		for _, ref := range w.Images() {
			if !ref.Zero() {
				n++
			}
		}
		r.Widgets = append(r.Widgets, WidgetEntry{Kind: w.Kind().String(), Images: n})
	}
	return r
}

func entry(name string, ref face.ImageRef) ImageEntry {
	return ImageEntry{
		Name:   name,
		Offset: ref.Offset,
		Width:  ref.Width,
		Height: ref.Height,
	}
}

// imageEntries names every non-zero image reference of a face. The first
// static image is the background; everything else is numbered per record
// type so repeat runs produce identical names.
func imageEntries(f *face.Face) []ImageEntry {
	var entries []ImageEntry

	for i, ds := range f.DigitSets {
		for j, ref := range ds.Glyphs {
			if ref.Zero() {
				continue
			}
			entries = append(entries, entry(fmt.Sprintf("digit_%d_%d", i, j), ref))
		}
	}

	var statics int
	counters := map[face.Kind]int{}

	for _, w := range f.Widgets {
		switch r := w.(type) {
		case *face.Image:
			if r.Image.Zero() {
				continue
			}
			name := "background"
			if statics > 0 {
				name = fmt.Sprintf("static_%02d", statics)
			}
			statics++
			entries = append(entries, entry(name, r.Image))
		case *face.Digits:
			for j, ref := range r.Glyphs {
				if ref.Zero() {
					continue
				}
				entries = append(entries, entry(fmt.Sprintf("digit_%d_%d", len(f.DigitSets)+counters[face.KindDigits], j), ref))
			}
			counters[face.KindDigits]++
		case *face.AltDigits:
			for j, ref := range r.Glyphs {
				if ref.Zero() {
					continue
				}
				entries = append(entries, entry(fmt.Sprintf("altdigit_%d_%d", counters[face.KindAltDigits], j), ref))
			}
			counters[face.KindAltDigits]++
		case *face.DayNames:
			for j, ref := range r.Days {
				if ref.Zero() {
					continue
				}
				entries = append(entries, entry(fmt.Sprintf("dayname_%d_%d", counters[face.KindDayNames], j), ref))
			}
			counters[face.KindDayNames]++
		case *face.BatteryFill:
			for j, ref := range r.Images() {
				if ref.Zero() {
					continue
				}
				entries = append(entries, entry(fmt.Sprintf("battery_%d_%d", counters[face.KindBatteryFill], j), ref))
			}
			counters[face.KindBatteryFill]++
		case *face.Hands:
			if r.Image.Zero() {
				continue
			}
			entries = append(entries, entry(fmt.Sprintf("hand_%d", r.Subtype), r.Image))
		case *face.BarDisplay:
			for j, ref := range r.Segments {
				if ref.Zero() {
					continue
				}
				entries = append(entries, entry(fmt.Sprintf("bar_%d_%d", counters[face.KindBarDisplay], j), ref))
			}
			counters[face.KindBarDisplay]++
		case *face.Weather:
			for j, ref := range r.Icons {
				if ref.Zero() {
					continue
				}
				entries = append(entries, entry(fmt.Sprintf("weather_%d_%d", counters[face.KindWeather], j), ref))
			}
			counters[face.KindWeather]++
		}
	}

	return entries
}
