package face

// HeaderSize is the fixed size of the file header at offset 0.
const HeaderSize = 16

// Header is the fixed record at the start of every face file. The fields
// between APIVersion and the two chain offsets are not fully understood and
// are retained verbatim for round-trip fidelity; the preview names follow
// the values observed across real files.
type Header struct {
	APIVersion    uint16
	Reserved      uint16 // always 0xffff in observed files
	PreviewOffset uint16
	Unknown       uint16 // 0, 1 or 2 in observed files
	PreviewWidth  uint16
	PreviewHeight uint16

	// DigitsOffset locates the digit glyph chain, or is zero when the
	// face has none (analog-only faces). WidgetsOffset locates the
	// widget chain and also marks the end of the digit chain.
	DigitsOffset  uint16
	WidgetsOffset uint16
}

func decodeHeader(v *View) (h Header, err error) {
	fields := []*uint16{
		&h.APIVersion, &h.Reserved, &h.PreviewOffset, &h.Unknown,
		&h.PreviewWidth, &h.PreviewHeight, &h.DigitsOffset, &h.WidgetsOffset,
	}
	for i, f := range fields {
		if *f, err = v.U16(i * 2); err != nil {
			return
		}
	}
	return
}

// apiDescriptions summarises what each known API level supports.
var apiDescriptions = map[uint16]string{
	2:  "HHMM only",
	4:  "HHMM, weekday name",
	10: "Analog HMS hands",
	13: "HHMM, weekday name, DD",
	15: "HHMM, weekday name, DD, MM, steps",
	18: "HHMM or Analog HMS hands, DD, weekday name, bpm, kcal, battery, steps",
	20: "Same as 18 plus ??",
	29: "HHMM, bpm, ?, weather",
	35: "Analog HMS hands, weekday name, DD, bpm, ?, ?",
}

// APIDescription returns a short description of the header's API level, or
// an empty string for levels this package has not seen.
func (h Header) APIDescription() string {
	return apiDescriptions[h.APIVersion]
}
