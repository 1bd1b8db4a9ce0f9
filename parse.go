package fixint

// Lenient base-prefixed integer parsing. Recognized prefixes:
//
//	x X 0x 0X #    base 16
//	d D 0d 0D      base 10 (also the default with no prefix)
//	o O 0o 0O @    base 8
//	b B 0b 0B      base 2
//
// Characters that are not digits of the active base are skipped silently
// rather than failing the parse; garbage in yields whatever the remaining
// digits make. This mirrors the shared string-to-integer helper the rest
// of the API is built on and means parsing never returns an error.

// UintFromString parses s into a Uint of the given width, detecting the
// base from a prefix and defaulting to decimal. Values wider than the
// width wrap modulo 2**bits.
func UintFromString(s string, bits uint) Uint {
	rest, base := splitBasePrefix(s)
	return UintFromStringBase(rest, base, bits)
}

// UintFromStringBase parses s as digits of an explicit base (2, 8, 10 or
// 16), skipping characters that are not valid digits.
func UintFromStringBase(s string, base int, bits uint) Uint {
	checkBase(base)
	u := NewUint(bits)
	for k := 0; k < len(s); k++ {
		d, ok := digitValue(s[k])
		if !ok || d >= base {
			continue
		}
		mulAddWord(u.w, u.w, uint32(base), uint32(d))
	}
	return u
}

// IntFromString parses s into an Int of the given width. A leading '+' or
// '-' is accepted before the base prefix; the rest parses exactly like
// UintFromString.
func IntFromString(s string, bits uint) Int {
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	u := UintFromString(s, bits)
	if neg {
		u = u.Neg()
	}
	return u.AsInt()
}

func IntFromStringBase(s string, base int, bits uint) Int {
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	u := UintFromStringBase(s, base, bits)
	if neg {
		u = u.Neg()
	}
	return u.AsInt()
}

func splitBasePrefix(s string) (rest string, base int) {
	if len(s) == 0 {
		return s, 10
	}

	tag := s[0]
	skip := 1
	if tag == '0' && len(s) > 1 {
		switch s[1] {
		case 'x', 'X', 'd', 'D', 'o', 'O', 'b', 'B':
			tag = s[1]
			skip = 2
		}
	}

	switch tag {
	case 'x', 'X', '#':
		return s[skip:], 16
	case 'd', 'D':
		return s[skip:], 10
	case 'o', 'O', '@':
		return s[skip:], 8
	case 'b', 'B':
		return s[skip:], 2
	}
	return s, 10
}

func digitValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}

func checkBase(base int) {
	switch base {
	case 2, 8, 10, 16:
	default:
		panic("fixint: base must be 2, 8, 10 or 16")
	}
}

// fitStringBits sizes a width for unmarshalling into a zero-value
// receiver: enough words for every possible digit of the default base,
// with a floor of one word.
func fitStringBits(s string) uint {
	digits := 0
	for k := 0; k < len(s); k++ {
		if d, ok := digitValue(s[k]); ok && d < 10 {
			digits++
		}
	}
	// A decimal digit carries just under 3.33 bits.
	bits := uint(digits*4 + wordBits)
	return bits - bits%wordBits
}
