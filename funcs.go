package fixint

import (
	"sync"

	"github.com/bits-and-blooms/bitset"
)

// Sqrt returns the integer square root of u, the largest x with
// x*x <= u. Newton iteration seeded from the power of two just above the
// true root, so the iterates descend monotonically and stop exactly at
// the floor.
func (u Uint) Sqrt() Uint {
	if u.BitLen() <= 1 {
		// 0 and 1 are their own roots.
		return u
	}
	x := NewUint(u.Bits()).SetBit((u.BitLen() + 1) / 2)
	for {
		y := x.Add(u.Quo(x)).Rsh(1)
		if y.GreaterOrEqualTo(x) {
			return x
		}
		x = y
	}
}

// Sqrt returns the integer square root of i, or zero for negative input.
// The zero return is a documented degenerate policy, not a domain error.
func (i Int) Sqrt() Int {
	if i.isNeg() {
		return NewInt(i.Bits())
	}
	return i.AsUint().Sqrt().AsInt()
}

// Cbrt returns the integer cube root of u, the largest x with
// x*x*x <= u.
func (u Uint) Cbrt() Uint {
	if u.BitLen() <= 1 {
		return u
	}
	x := NewUint(u.Bits()).SetBit((u.BitLen()+2)/3 + 1)
	three := UintFrom32(3, u.Bits())
	for {
		y := x.MulWord(2).Add(u.Quo(x.Mul(x))).Quo(three)
		if y.GreaterOrEqualTo(x) {
			break
		}
		x = y
	}

	// Integer Newton on the cube can settle one above the floor; correct
	// in a widened scratch so the cube cannot wrap.
	wide := u.Bits() + wordBits
	uw := u.Resize(wide)
	for x.Resize(wide).Mul(x.Resize(wide)).Mul(x.Resize(wide)).GreaterThan(uw) {
		x = x.Dec()
	}
	return x
}

// Cbrt returns the integer cube root of i. The cube root of a negative
// value is the negation of the root of its magnitude. The root runs on the
// unsigned reinterpretation of the negated value, which is the correct
// magnitude even for the minimum value, whose negation wraps to itself.
func (i Int) Cbrt() Int {
	if i.isNeg() {
		return i.Neg().AsUint().Cbrt().AsInt().Neg()
	}
	return i.AsUint().Cbrt().AsInt()
}

// Factorial returns u! truncated to the width. The operand is taken from
// the low words; the whole point of a wide fixed-width type is that the
// result needs the extra bits, not the input.
func (u Uint) Factorial() Uint {
	out := UintFrom32(1, u.Bits())
	for n := u.AsUint64(); n > 1; n-- {
		out = out.Mul64(n)
	}
	return out
}

// Factorial returns i!, or zero for negative input.
func (i Int) Factorial() Int {
	if i.isNeg() {
		return NewInt(i.Bits())
	}
	return i.AsUint().Factorial().AsInt()
}

// Pow returns u**exp by binary exponentiation, wrapping modulo 2**width.
// A negative exponent yields zero: the true result would be fractional,
// and this type has no fraction bits.
func (u Uint) Pow(exp int) Uint {
	if exp < 0 {
		return NewUint(u.Bits())
	}
	out := UintFrom32(1, u.Bits())
	for e := uint(exp); e != 0; e >>= 1 {
		if e&1 != 0 {
			out = out.Mul(u)
		}
		u = u.Mul(u)
	}
	return out
}

// Pow returns i**exp. The sign follows the usual product rule: negative
// base and odd exponent give a negative result. A negative exponent
// yields zero.
func (i Int) Pow(exp int) Int {
	if exp < 0 {
		return NewInt(i.Bits())
	}
	out := i.Abs().AsUint().Pow(exp).AsInt()
	if i.isNeg() && exp&1 == 1 {
		out = out.Neg()
	}
	return out
}

// PowMod returns u**exp mod m. Each square and multiply runs in a
// double-width scratch and reduces immediately, so intermediates never
// wrap. A zero modulus panics with ErrDivideByZero.
func (u Uint) PowMod(exp, m Uint) Uint {
	u.match(exp)
	u.match(m)
	if m.IsZero() {
		panic(ErrDivideByZero)
	}

	bits := u.Bits()
	wide := bits * 2
	mw := m.Resize(wide)
	base := u.Rem(m).Resize(wide)
	out := UintFrom32(1, wide)

	for e := exp; !e.IsZero(); e = e.Rsh(1) {
		if e.Bit(0) == 1 {
			out = out.Mul(base).Rem(mw)
		}
		base = base.Mul(base).Rem(mw)
	}
	return out.Resize(bits)
}

// PowMod returns i**exp mod m for non-negative exp, with the result
// following the dividend sign convention of Rem. A negative exponent
// yields zero.
func (i Int) PowMod(exp, m Int) Int {
	if exp.isNeg() {
		return NewInt(i.Bits())
	}
	neg := i.isNeg() && exp.Bit(0) == 1
	out := i.Abs().AsUint().PowMod(exp.AsUint(), m.Abs().AsUint()).AsInt()
	if neg {
		out = out.Neg()
	}
	return out
}

// Bit returns bit idx of the two's-complement pattern.
func (i Int) Bit(idx uint) uint { return i.AsUint().Bit(idx) }

// IsPow2 reports whether u is an exact power of two. Zero is not a power
// of two.
func (u Uint) IsPow2() bool {
	return !u.IsZero() && u.LeadingZeros()+u.TrailingZeros() == u.Bits()-1
}

// NextPow2 returns the smallest power of two >= u. NextPow2(0) is one.
// When u is above the largest representable power of two the result wraps
// to zero, like any other overflow.
func (u Uint) NextPow2() Uint {
	if u.IsZero() {
		return UintFrom32(1, u.Bits())
	}
	// Classic fill trick, word-generalized: smear ones below the highest
	// set bit of u-1, then step up.
	v := u.Dec()
	for s := uint(1); s < v.Bits(); s <<= 1 {
		v = v.Or(v.Rsh(s))
	}
	return v.Inc()
}

// CeilLog2 returns the smallest k with 2**k >= u, or zero for a zero
// value.
func (u Uint) CeilLog2() uint {
	if u.BitLen() == 0 {
		return 0
	}
	k := u.BitLen() - 1
	if !u.IsPow2() {
		k++
	}
	return k
}

// sievePrimes marks composites up to sieveLimit once, on first use. The
// bitset is read-only after that.
const sieveLimit = 1 << 16

var (
	sieveOnce  sync.Once
	composites *bitset.BitSet
)

func primeSieve() *bitset.BitSet {
	sieveOnce.Do(func() {
		composites = bitset.New(sieveLimit)
		composites.Set(0).Set(1)
		for p := uint(2); p*p < sieveLimit; p++ {
			if composites.Test(p) {
				continue
			}
			for n := p * p; n < sieveLimit; n += p {
				composites.Set(n)
			}
		}
	})
	return composites
}

// IsPrime reports whether u is prime, by trial division. Values below the
// sieve limit are answered from a sieve; larger values divide by the
// sieved primes first and then continue with full-width odd divisors up
// to the square root.
func (u Uint) IsPrime() bool {
	sieve := primeSieve()

	if u.IsUint64() && u.AsUint64() < sieveLimit {
		return !sieve.Test(uint(u.AsUint64()))
	}
	if u.Bit(0) == 0 {
		return false
	}

	for p := uint(3); p < sieveLimit; p += 2 {
		if sieve.Test(p) {
			continue
		}
		if _, r := u.QuoRemWord(uint32(p)); r == 0 {
			return false
		}
	}

	// The d*d bound check runs in a widened scratch: for a prime within
	// ~4*sqrt(u) of the width's maximum, the square of the final trial
	// divisor would wrap at the original width.
	wide := u.Bits() + wordBits
	uw := u.Resize(wide)
	d := UintFrom64(sieveLimit+1, wide)
	for d.Mul(d).LessOrEqualTo(uw) {
		if uw.Rem(d).IsZero() {
			return false
		}
		d = d.Add64(2)
	}
	return true
}

// IsPrime reports whether i is prime. Negative values are not prime.
func (i Int) IsPrime() bool {
	if i.isNeg() {
		return false
	}
	return i.AsUint().IsPrime()
}
