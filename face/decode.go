package face

func readXY(v *View, off int) (XY, error) {
	x, err := v.U16(off)
	if err != nil {
		return XY{}, err
	}
	y, err := v.U16(off + 2)
	if err != nil {
		return XY{}, err
	}
	return XY{X: x, Y: y}, nil
}

func readImageRef(v *View, off int) (ImageRef, error) {
	var r ImageRef
	var err error
	if r.Offset, err = v.U32(off); err != nil {
		return r, err
	}
	if r.Width, err = v.U16(off + 4); err != nil {
		return r, err
	}
	r.Height, err = v.U16(off + 6)
	return r, err
}

func readImageRefs(v *View, off, count int) ([]ImageRef, error) {
	refs := make([]ImageRef, count)
	for i := range refs {
		var err error
		if refs[i], err = readImageRef(v, off+i*imageRefSize); err != nil {
			return nil, err
		}
	}
	return refs, nil
}

func decodeImage(v *View, off int) (Record, int, error) {
	r := &Image{}
	var err error
	if r.Pos, err = readXY(v, off+2); err != nil {
		return nil, 0, err
	}
	if r.Image, err = readImageRef(v, off+6); err != nil {
		return nil, 0, err
	}
	return r, imageSize, nil
}

func decodeDigits(v *View, off int) (*Digits, int, error) {
	r := &Digits{}
	sub, err := v.Byte(off + 2)
	if err != nil {
		return nil, 0, err
	}
	r.Subtype = sub
	for i := range r.Glyphs {
		if r.Glyphs[i], err = readImageRef(v, off+3+i*imageRefSize); err != nil {
			return nil, 0, err
		}
	}
	tail, err := v.Slice(off+83, 2)
	if err != nil {
		return nil, 0, err
	}
	copy(r.Reserved[:], tail)
	return r, digitsSize, nil
}

func decodeTime(v *View, off int) (Record, int, error) {
	r := &Time{}
	for i := range r.DigitSets {
		b, err := v.Byte(off + 2 + i)
		if err != nil {
			return nil, 0, err
		}
		r.DigitSets[i] = b
	}
	for i := range r.Pos {
		var err error
		if r.Pos[i], err = readXY(v, off+6+i*4); err != nil {
			return nil, 0, err
		}
	}
	// 12 bytes of zero padding follow; make sure they are inside the
	// buffer so the cursor cannot advance past the end.
	if _, err := v.Slice(off+22, 12); err != nil {
		return nil, 0, err
	}
	return r, timeSize, nil
}

func decodeDayNames(v *View, off int) (Record, int, error) {
	r := &DayNames{}
	var err error
	if r.Subtype, err = v.Byte(off + 2); err != nil {
		return nil, 0, err
	}
	if r.Pos, err = readXY(v, off+3); err != nil {
		return nil, 0, err
	}
	for i := range r.Days {
		if r.Days[i], err = readImageRef(v, off+7+i*imageRefSize); err != nil {
			return nil, 0, err
		}
	}
	return r, dayNamesSize, nil
}

func decodeBatteryFill(v *View, off int) (Record, int, error) {
	r := &BatteryFill{}
	var err error
	if r.Pos, err = readXY(v, off+2); err != nil {
		return nil, 0, err
	}
	if r.Image, err = readImageRef(v, off+6); err != nil {
		return nil, 0, err
	}
	region, err := v.Slice(off+14, 4)
	if err != nil {
		return nil, 0, err
	}
	r.FillLeft, r.FillTop, r.FillRight, r.FillBottom = region[0], region[1], region[2], region[3]
	raw, err := v.Slice(off+18, 8)
	if err != nil {
		return nil, 0, err
	}
	copy(r.Raw[:], raw)
	if r.Empty, err = readImageRef(v, off+26); err != nil {
		return nil, 0, err
	}
	if r.Full, err = readImageRef(v, off+34); err != nil {
		return nil, 0, err
	}
	return r, batterySize, nil
}

// decodeNumber handles every digit-rendered value record; they share a
// digit set index and justification flag, then differ in position count and
// trailing reserved bytes.
func decodeNumber(v *View, off int, kind Kind, positions, reserved, size int) (Record, int, error) {
	r := &Number{kind: kind}
	var err error
	if r.DigitSet, err = v.Byte(off + 2); err != nil {
		return nil, 0, err
	}
	if r.Justification, err = v.Byte(off + 3); err != nil {
		return nil, 0, err
	}
	r.Pos = make([]XY, positions)
	for i := range r.Pos {
		if r.Pos[i], err = readXY(v, off+4+i*4); err != nil {
			return nil, 0, err
		}
	}
	if reserved > 0 {
		tail, err := v.Slice(off+4+positions*4, reserved)
		if err != nil {
			return nil, 0, err
		}
		r.Reserved = append([]byte(nil), tail...)
	}
	return r, size, nil
}

func decodeHands(v *View, off int) (Record, int, error) {
	r := &Hands{}
	var err error
	if r.Subtype, err = v.Byte(off + 2); err != nil {
		return nil, 0, err
	}
	if r.Unknown, err = readXY(v, off+3); err != nil {
		return nil, 0, err
	}
	if r.Image, err = readImageRef(v, off+7); err != nil {
		return nil, 0, err
	}
	if r.Pivot, err = readXY(v, off+15); err != nil {
		return nil, 0, err
	}
	return r, handsSize, nil
}

func decodeBarDisplay(v *View, off int) (Record, int, error) {
	r := &BarDisplay{}
	var err error
	if r.Source, err = v.Byte(off + 2); err != nil {
		return nil, 0, err
	}
	count, err := v.Byte(off + 3)
	if err != nil {
		return nil, 0, err
	}
	if r.Pos, err = readXY(v, off+4); err != nil {
		return nil, 0, err
	}
	if r.Segments, err = readImageRefs(v, off+barPrefixSize, int(count)); err != nil {
		return nil, 0, err
	}
	return r, barPrefixSize + int(count)*imageRefSize, nil
}

// decodeAltDigits reassembles the first glyph's offset from its split
// low/high byte layout; the remaining nine glyphs are stored normally.
func decodeAltDigits(v *View, off int) (Record, int, error) {
	r := &AltDigits{}
	var err error
	if r.Type, err = v.U16(off); err != nil {
		return nil, 0, err
	}
	hi, err := v.Slice(off+2, 3)
	if err != nil {
		return nil, 0, err
	}
	lo, err := v.Byte(off + 81)
	if err != nil {
		return nil, 0, err
	}
	r.Glyphs[0].Offset = uint32(lo) | uint32(hi[0])<<8 | uint32(hi[1])<<16 | uint32(hi[2])<<24
	if r.Glyphs[0].Width, err = v.U16(off + 5); err != nil {
		return nil, 0, err
	}
	if r.Glyphs[0].Height, err = v.U16(off + 7); err != nil {
		return nil, 0, err
	}
	for i := 1; i < len(r.Glyphs); i++ {
		if r.Glyphs[i], err = readImageRef(v, off+9+(i-1)*imageRefSize); err != nil {
			return nil, 0, err
		}
	}
	if r.Reserved, err = v.Byte(off + 82); err != nil {
		return nil, 0, err
	}
	return r, altDigitsSize, nil
}

func decodeWeather(v *View, off int) (Record, int, error) {
	r := &Weather{}
	var err error
	if r.Subtype, err = v.Byte(off + 2); err != nil {
		return nil, 0, err
	}
	if r.Pos, err = readXY(v, off+3); err != nil {
		return nil, 0, err
	}
	for i := range r.Icons {
		if r.Icons[i], err = readImageRef(v, off+7+i*imageRefSize); err != nil {
			return nil, 0, err
		}
	}
	return r, weatherSize, nil
}

func decodeOpaque(v *View, off int, kind Kind, size int) (Record, int, error) {
	r := &Opaque{kind: kind}
	var err error
	if r.Type, err = v.U16(off); err != nil {
		return nil, 0, err
	}
	raw, err := v.Slice(off+2, size-2)
	if err != nil {
		return nil, 0, err
	}
	r.Raw = append([]byte(nil), raw...)
	return r, size, nil
}

// decodeRecord dispatches on the record's tag byte. The returned length is
// how far the cursor advances, covering any trailing fields the decoder did
// not materialize.
func decodeRecord(v *View, off int, tag byte) (Record, int, error) {
	switch {
	case tag == tagImage:
		return decodeImage(v, off)
	case tag == tagDigits:
		return decodeDigits(v, off)
	case tag == tagTime:
		return decodeTime(v, off)
	case tag == tagDayNames:
		return decodeDayNames(v, off)
	case tag == tagBatteryFill:
		return decodeBatteryFill(v, off)
	case tag == tagHeartRate:
		return decodeNumber(v, off, KindHeartRate, 1, 18, heartRateSize)
	case tag == tagSteps:
		return decodeNumber(v, off, KindSteps, 1, 18, stepsSize)
	case tag == tagKCal:
		return decodeNumber(v, off, KindKCal, 1, 11, kcalSize)
	case tag == tagHands:
		return decodeHands(v, off)
	case tag == tagDayNumber:
		return decodeNumber(v, off, KindDayNumber, 2, 0, dayNumberSize)
	case tag == tagMonthNumber:
		return decodeNumber(v, off, KindMonthNumber, 2, 0, monthNumberSize)
	case tag == tagBarDisplay:
		return decodeBarDisplay(v, off)
	case tag == tagWeather:
		return decodeWeather(v, off)
	case tag == tagUnknown1D:
		return decodeOpaque(v, off, KindUnknown1D, unknown1DSize)
	case tag == tagUnknown23:
		return decodeOpaque(v, off, KindUnknown23, unknown23Size)
	case altDigitTags[tag]:
		return decodeAltDigits(v, off)
	}
	return nil, 0, &UnknownTagError{Tag: tag, Offset: off}
}
