package face

import "fmt"

// Kind identifies the decoded shape of a widget chain record.
type Kind int

const (
	KindImage Kind = iota
	KindDigits
	KindTime
	KindDayNames
	KindBatteryFill
	KindHeartRate
	KindSteps
	KindKCal
	KindHands
	KindDayNumber
	KindMonthNumber
	KindBarDisplay
	KindAltDigits
	KindWeather
	KindUnknown1D
	KindUnknown23
)

var kindNames = map[Kind]string{
	KindImage:       "image",
	KindDigits:      "digits",
	KindTime:        "time",
	KindDayNames:    "dayNames",
	KindBatteryFill: "batteryFill",
	KindHeartRate:   "heartRate",
	KindSteps:       "steps",
	KindKCal:        "kcal",
	KindHands:       "hands",
	KindDayNumber:   "dayNumber",
	KindMonthNumber: "monthNumber",
	KindBarDisplay:  "barDisplay",
	KindAltDigits:   "altDigits",
	KindWeather:     "weather",
	KindUnknown1D:   "unknown1d",
	KindUnknown23:   "unknown23",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// XY is a screen position in pixels.
type XY struct {
	X, Y uint16
}

// ImageRef locates one embedded image: a file-absolute byte offset and the
// pixel dimensions. The referenced region starts with a height*4 byte row
// offset table followed by RLE pixel data.
type ImageRef struct {
	Offset uint32
	Width  uint16
	Height uint16
}

// Zero reports whether the reference points at nothing.
func (r ImageRef) Zero() bool {
	return r.Offset == 0 || r.Width == 0 || r.Height == 0
}

// Record is one decoded widget chain entry. Images returns every embedded
// image the record references, in its on-disk order, including zero
// references, so callers index them consistently.
type Record interface {
	Kind() Kind
	Images() []ImageRef
}

// Record byte lengths on disk, including the leading two type bytes. A
// record's length is a pure function of its tag except for BarDisplay,
// whose trailing entry array length comes from its embedded count field.
const (
	imageSize       = 14
	digitsSize      = 85
	timeSize        = 34
	dayNamesSize    = 63
	batterySize     = 42
	heartRateSize   = 26
	stepsSize       = 26
	kcalSize        = 19
	handsSize       = 19
	dayNumberSize   = 12
	monthNumberSize = 12
	barPrefixSize   = 8
	altDigitsSize   = 83
	weatherSize     = 79
	unknown1DSize   = 3
	unknown23Size   = 10

	imageRefSize = 8
)

// Record type tags: the second byte of each record's leading 16-bit type
// word (the first byte is the nonzero continuation marker).
const (
	tagImage       = 0x00
	tagDigits      = 0x01
	tagTime        = 0x02
	tagDayNames    = 0x04
	tagBatteryFill = 0x05
	tagHeartRate   = 0x06
	tagSteps       = 0x07
	tagKCal        = 0x09
	tagHands       = 0x0a
	tagDayNumber   = 0x0d
	tagMonthNumber = 0x0f
	tagBarDisplay  = 0x12
	tagAltDigits   = 0x14
	tagWeather     = 0x1b
	tagUnknown1D   = 0x1d
	tagUnknown23   = 0x23
)

// altDigitTags lists every tag observed carrying the alternate digits
// layout; 0x14 is the usual one for differing minute digits.
var altDigitTags = map[byte]bool{
	0x14: true,
	0x2c: true,
	0x4c: true,
	0x60: true,
	0x88: true,
	0xd0: true,
	0xec: true,
}

// UnknownTagError is the fatal parse error for a widget chain tag with no
// known layout. Record lengths cannot be inferred, so decoding cannot skip
// past it or resynchronize.
type UnknownTagError struct {
	Tag    byte
	Offset int
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("face: unknown record tag %#02x at offset %#x", e.Tag, e.Offset)
}

// Image is a static bitmap, such as the background or an overlay.
type Image struct {
	Pos   XY
	Image ImageRef
}

func (*Image) Kind() Kind { return KindImage }
func (r *Image) Images() []ImageRef { return []ImageRef{r.Image} }

// Digit set subtypes.
const (
	DigitsTime   = 0
	DigitsDayNum = 1
)

// Digits is one font's worth of ten digit glyphs, 0 through 9.
type Digits struct {
	Subtype  uint8
	Glyphs   [10]ImageRef
	Reserved [2]byte
}

func (*Digits) Kind() Kind { return KindDigits }
func (r *Digits) Images() []ImageRef { return r.Glyphs[:] }

// Time places the four HHMM clock digits, each drawn from one of the
// decoded digit sets.
type Time struct {
	DigitSets [4]uint8
	Pos       [4]XY
}

func (*Time) Kind() Kind { return KindTime }
func (*Time) Images() []ImageRef { return nil }

// DayNames holds one image per weekday, Monday first.
type DayNames struct {
	Subtype uint8
	Pos     XY
	Days    [7]ImageRef
}

func (*DayNames) Kind() Kind { return KindDayNames }
func (r *DayNames) Images() []ImageRef { return r.Days[:] }

// BatteryFill is a battery gauge image with a sub-region the watch fills
// according to charge, plus two further images of unconfirmed meaning. The
// eight Raw bytes between the fill region and those images are opaque.
type BatteryFill struct {
	Pos        XY
	Image      ImageRef
	FillLeft   uint8
	FillTop    uint8
	FillRight  uint8
	FillBottom uint8
	Raw        [8]byte
	Empty      ImageRef
	Full       ImageRef
}

func (*BatteryFill) Kind() Kind { return KindBatteryFill }
func (r *BatteryFill) Images() []ImageRef {
	return []ImageRef{r.Image, r.Empty, r.Full}
}

// Number renders a value as digits from one of the decoded digit sets. The
// same layout serves heart rate, steps, kcal, day-of-month and month
// records; they differ only in tag, position count and trailing reserved
// byte count.
type Number struct {
	kind          Kind
	DigitSet      uint8
	Justification uint8
	Pos           []XY
	Reserved      []byte
}

func (r *Number) Kind() Kind { return r.kind }
func (*Number) Images() []ImageRef { return nil }

// Hand subtypes.
const (
	HandHour   = 0
	HandMinute = 1
	HandSecond = 2
)

// Hands is one analog watch hand image and its pivot position.
type Hands struct {
	Subtype uint8
	Unknown XY
	Image   ImageRef
	Pivot   XY
}

func (*Hands) Kind() Kind { return KindHands }
func (r *Hands) Images() []ImageRef { return []ImageRef{r.Image} }

// BarDisplay is a multi-image gauge; Source selects the data feeding it
// (0 steps, 2 kcal, 5 heart rate, 6 battery).
type BarDisplay struct {
	Source   uint8
	Pos      XY
	Segments []ImageRef
}

func (*BarDisplay) Kind() Kind { return KindBarDisplay }
func (r *BarDisplay) Images() []ImageRef { return r.Segments }

// AltDigits is an alternate digit set, typically used when the minute
// digits differ from the hour digits. On disk the first glyph's offset is
// split into three high bytes at the front of the record and a low byte at
// the back; decoding reassembles it arithmetically.
type AltDigits struct {
	Type     uint16
	Glyphs   [10]ImageRef
	Reserved byte
}

func (*AltDigits) Kind() Kind { return KindAltDigits }
func (r *AltDigits) Images() []ImageRef { return r.Glyphs[:] }

// Weather holds the fixed set of nine weather condition images.
type Weather struct {
	Subtype uint8
	Pos     XY
	Icons   [9]ImageRef
}

func (*Weather) Kind() Kind { return KindWeather }
func (r *Weather) Images() []ImageRef { return r.Icons[:] }

// Opaque is a record whose semantics are undetermined; the payload after
// the type word is retained as raw bytes and never interpreted.
type Opaque struct {
	kind Kind
	Type uint16
	Raw  []byte
}

func (r *Opaque) Kind() Kind { return r.kind }
func (*Opaque) Images() []ImageRef { return nil }
