package fixint

import "math"

// UintFromFloat64 creates a Uint from a float64. The fractional portion is
// truncated towards zero and bits at or beyond the width are silently
// dropped. NaN and ±Inf produce zero. A negative float is converted from
// its magnitude and then negated, wrapping two's-complement style.
func UintFromFloat64(f float64, bits uint) Uint {
	u := NewUint(bits)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return u
	}
	neg := f < 0
	frac, exp := math.Frexp(math.Abs(f))

	// One mantissa bit at a time, most significant first. Frexp yields
	// f == frac * 2**exp with frac in [0.5, 1), so mantissa bit k sits at
	// position exp-1-k.
	for k := 0; k < 53 && frac != 0; k++ {
		frac *= 2
		if frac >= 1 {
			frac--
			pos := exp - 1 - k
			if pos < 0 {
				break
			}
			if uint(pos) < bits {
				u.w[pos/wordBits] |= 1 << (uint(pos) % wordBits)
			}
		}
	}
	if neg {
		return u.Neg()
	}
	return u
}

func UintFromFloat32(f float32, bits uint) Uint {
	return UintFromFloat64(float64(f), bits)
}

// IntFromFloat64 creates an Int from a float64, truncating the fractional
// portion towards zero. NaN and ±Inf produce the sign-bit sentinel (the
// minimum value of the width) rather than an error.
func IntFromFloat64(f float64, bits uint) Int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return MinInt(bits)
	}
	// The unsigned conversion already negates two's-complement style for
	// negative input, so the bit pattern is reused as-is.
	return UintFromFloat64(f, bits).AsInt()
}

func IntFromFloat32(f float32, bits uint) Int {
	return IntFromFloat64(float64(f), bits)
}

// AsFloat64 approximates u as a float64 by Horner accumulation from the
// most significant word down. Precision is lost above 2**53.
func (u Uint) AsFloat64() float64 {
	var f float64
	for i := len(u.w) - 1; i >= 0; i-- {
		f = f*wrapWordFloat + float64(u.w[i])
	}
	return f
}

// AsFloat64 approximates i as a float64. Negative values convert their
// magnitude and negate the result.
func (i Int) AsFloat64() float64 {
	if i.isNeg() {
		return -i.AsUint().Neg().AsFloat64()
	}
	return i.AsUint().AsFloat64()
}
