package fixint

// Digit generation by repeated division by the base, one word-divisor
// division per digit batch. To keep the divisions down, digits are peeled
// in the largest power of the base that still fits a word.

const digitAlphabet = "0123456789abcdef"

var basePeel = map[int]struct {
	chunk uint32 // largest base**n that fits a word
	n     int    // that n
}{
	2:  {1 << 31, 31},
	8:  {1 << 30, 10},
	10: {1_000_000_000, 9},
	16: {1 << 28, 7},
}

// StringBase formats u as digits of the given base (2, 8, 10 or 16) with
// no prefix.
func (u Uint) StringBase(base int) string {
	checkBase(base)
	if u.IsZero() {
		return "0"
	}

	peel := basePeel[base]
	var out []byte
	for !u.IsZero() {
		q, r := u.QuoRemWord(peel.chunk)
		u = q
		for k := 0; k < peel.n; k++ {
			out = append(out, digitAlphabet[r%uint32(base)])
			r /= uint32(base)
		}
	}

	// Strip the leading zeros of the final chunk, then reverse.
	ln := len(out)
	for ln > 1 && out[ln-1] == '0' {
		ln--
	}
	out = out[:ln]
	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}
	return string(out)
}

// StringBase formats i as digits of the given base with a leading '-' for
// negative values.
func (i Int) StringBase(base int) string {
	if i.isNeg() {
		return "-" + i.Neg().AsUint().StringBase(base)
	}
	return i.AsUint().StringBase(base)
}
