package obix

/*
codec.go implements the canonical fixed-format text codec:
"YYYY-MM-DDThh:mm:ss.mmm" followed by 'Z' or a "±hh:mm" suffix.
*/

/*
EncodeVal returns the canonical text form of the receiver instance.
The zone suffix is 'Z' when the effective UTC offset (daylight-saving
time included) is exactly zero, and a signed "hh:mm" offset otherwise.
*/
func (r *Abstime) EncodeVal() string { return encodeAbstime(r) }

/*
DecodeVal decodes the canonical text form into the receiver. The
resulting zone is a synthetic fixed-offset zone built from the parsed
offset, never a lookup into named zones. On failure the receiver is
left unmodified and a [FormatError] carrying the offending input is
returned.
*/
func (r *Abstime) DecodeVal(s string) error {
	millis, offset, err := decodeAbstime(s)
	if err != nil {
		return err
	}
	r.Set(millis, FixedZone(offset))
	return nil
}

/*
ParseAbstime returns an instance of [Abstime] alongside an error
following an attempt to decode the canonical text form of s.
*/
func ParseAbstime(s string) (Abstime, error) {
	var r Abstime
	if err := r.DecodeVal(s); err != nil {
		return Abstime{}, err
	}
	return r, nil
}

// encodeAbstime renders the fixed-width text form with a single
// buffer and one unavoidable copy on return.
func encodeAbstime(r *Abstime) string {
	f := r.load()

	var b [29]byte // "YYYY-MM-DDThh:mm:ss.mmm+hh:mm"
	i := 0

	put2 := func(v int) {
		b[i] = byte('0' + v/10)
		b[i+1] = byte('0' + v%10)
		i += 2
	}

	year := f.year
	b[0] = byte('0' + (year/1000)%10)
	b[1] = byte('0' + (year/100)%10)
	b[2] = byte('0' + (year/10)%10)
	b[3] = byte('0' + year%10)
	i = 4
	b[i] = '-'
	i++
	put2(f.month)
	b[i] = '-'
	i++
	put2(f.day)
	b[i] = 'T'
	i++
	put2(f.hour)
	b[i] = ':'
	i++
	put2(f.min)
	b[i] = ':'
	i++
	put2(f.sec)
	b[i] = '.'
	i++
	b[i] = byte('0' + f.ms/100)
	b[i+1] = byte('0' + (f.ms/10)%10)
	b[i+2] = byte('0' + f.ms%10)
	i += 3

	offset, _ := r.zone.offsetAt(r.millis)
	if offset == 0 {
		b[i] = 'Z'
		i++
	} else {
		sign := byte('+')
		if offset < 0 {
			sign = '-'
			offset = -offset
		}
		b[i] = sign
		i++
		put2(offset / int(millisPerHour))
		b[i] = ':'
		i++
		put2(offset % int(millisPerHour) / int(millisPerMinute))
	}

	return string(b[:i])
}

/*
scanner is a fixed-position cursor over a candidate text value. Each
expectation either advances the position or fails with a [FormatError]
carrying the full original text, so individual field failures remain
independently testable.
*/
type scanner struct {
	text string
	pos  int
}

func (r *scanner) fail() error { return errorInvalidFormat(r.text) }

func (r *scanner) more() bool { return r.pos < len(r.text) }

// literal consumes exactly the byte c.
func (r *scanner) literal(c byte) error {
	if !r.more() || r.text[r.pos] != c {
		return r.fail()
	}
	r.pos++
	return nil
}

// digits consumes exactly n ASCII digits and returns their decimal
// value.
func (r *scanner) digits(n int) (int, error) {
	if r.pos+n > len(r.text) {
		return 0, r.fail()
	}
	v := 0
	for k := 0; k < n; k++ {
		c := r.text[r.pos+k]
		if !isDigit(c) {
			return 0, r.fail()
		}
		v = v*10 + int(c-'0')
	}
	r.pos += n
	return v, nil
}

// peekIs reports whether the next byte equals c without consuming it.
func (r *scanner) peekIs(c byte) bool {
	return r.more() && r.text[r.pos] == c
}

func (r *scanner) peekDigit() bool {
	return r.more() && isDigit(r.text[r.pos])
}

// decodeAbstime performs the strict fixed-position scan of the
// canonical text form, returning the epoch instant and the parsed
// UTC offset in milliseconds.
func decodeAbstime(s string) (millis int64, offset int, err error) {
	sc := &scanner{text: s}

	var year, month, day, hour, min, sec int
	if year, err = sc.digits(4); err != nil {
		return
	}
	if err = sc.literal('-'); err != nil {
		return
	}
	if month, err = sc.digits(2); err != nil {
		return
	}
	if err = sc.literal('-'); err != nil {
		return
	}
	if day, err = sc.digits(2); err != nil {
		return
	}
	if err = sc.literal('T'); err != nil {
		return
	}
	if hour, err = sc.digits(2); err != nil {
		return
	}
	if err = sc.literal(':'); err != nil {
		return
	}
	if min, err = sc.digits(2); err != nil {
		return
	}
	if err = sc.literal(':'); err != nil {
		return
	}
	if sec, err = sc.digits(2); err != nil {
		return
	}

	var ms int
	if ms, err = scanFraction(sc); err != nil {
		return
	}

	if offset, err = scanOffset(sc); err != nil {
		return
	}
	if sc.more() {
		err = sc.fail()
		return
	}

	// reject impossible civil dates; digit shape alone admits values
	// like month 13 or day 32
	if month < 1 || month > 12 || day < 1 || day > daysIn(year, month) {
		err = sc.fail()
		return
	}

	millis = UTC.millisOf(year, month, day, hour, min, sec, ms) - int64(offset)
	return
}

// scanFraction consumes an optional '.' followed by up to three
// significant fractional digits; surplus digits are consumed and
// discarded.
func scanFraction(sc *scanner) (ms int, err error) {
	if !sc.peekIs('.') {
		return
	}
	sc.pos++

	var d int
	if d, err = sc.digits(1); err != nil {
		return
	}
	ms = d * 100
	if sc.peekDigit() {
		d, _ = sc.digits(1)
		ms += d * 10
	}
	if sc.peekDigit() {
		d, _ = sc.digits(1)
		ms += d
	}
	for sc.peekDigit() {
		sc.pos++
	}
	return
}

// scanOffset consumes 'Z', or a sign followed by a two digit offset
// hour and an optional ':'-prefixed two digit offset minute. The
// returned offset is in milliseconds.
func scanOffset(sc *scanner) (offset int, err error) {
	if !sc.more() {
		err = sc.fail()
		return
	}

	sign := sc.text[sc.pos]
	sc.pos++

	switch sign {
	case 'Z':
		return
	case '+', '-':
	default:
		err = sc.fail()
		return
	}

	var hrOff, minOff int
	if hrOff, err = sc.digits(2); err != nil {
		return
	}
	if sc.peekIs(':') {
		sc.pos++
		if minOff, err = sc.digits(2); err != nil {
			return
		}
	}

	offset = hrOff*int(millisPerHour) + minOff*int(millisPerMinute)
	if sign == '-' {
		offset = -offset
	}
	return
}
