package fixint

import (
	"fmt"
	"math/big"
)

// Int is the two's-complement signed twin of Uint: identical storage, same
// width rules, with the sign carried by the top bit of the most significant
// word. Sign-agnostic operations (addition, bitwise logic, left shift)
// delegate to Uint through a zero-cost reinterpretation; only the
// operations whose result depends on the sign bit are overridden here.
//
// Int is a value type; all operations return new values. Arithmetic wraps
// modulo 2**width.
type Int struct {
	w []uint32
}

// NewInt returns the zero value of the given width. It panics unless bits
// is a positive multiple of 32.
func NewInt(bits uint) Int {
	checkBits(bits)
	return Int{w: make([]uint32, bits/wordBits)}
}

// IntFromWords creates an Int directly from a little-endian word slice.
// The words are copied.
func IntFromWords(w []uint32) Int { return UintFromWords(w).AsInt() }

func IntFrom64(v int64, bits uint) Int {
	i := NewInt(bits)
	i.w[0] = uint32(v)
	if len(i.w) > 1 {
		i.w[1] = uint32(uint64(v) >> 32)
	}
	if v < 0 {
		// Sign-extend into the remaining high words.
		for k := 2; k < len(i.w); k++ {
			i.w[k] = maxWord
		}
	}
	return i
}

func IntFrom32(v int32, bits uint) Int { return IntFrom64(int64(v), bits) }
func IntFrom16(v int16, bits uint) Int { return IntFrom64(int64(v), bits) }
func IntFrom8(v int8, bits uint) Int   { return IntFrom64(int64(v), bits) }

// IntFromBigInt creates an Int of the given width from a big.Int. Values
// that do not fit set accurate to false; the stored value wraps modulo
// 2**bits.
func IntFromBigInt(v *big.Int, bits uint) (out Int, accurate bool) {
	mag, accurate := UintFromBigInt(new(big.Int).Abs(v), bits)
	if v.Sign() < 0 {
		out = mag.Neg().AsInt()
		if accurate && out.Sign() > 0 {
			accurate = false
		}
	} else {
		out = mag.AsInt()
		if accurate && out.Sign() < 0 {
			accurate = false
		}
	}
	return out, accurate
}

// IntFromBytes creates an Int from a big-endian two's-complement byte
// slice. The slice length fixes the width and must be a positive multiple
// of 4.
func IntFromBytes(b []byte) Int { return UintFromBytes(b).AsInt() }

// RandInt generates a non-negative random Int of the given width from an
// external source.
func RandInt(source RandSource, bits uint) Int {
	i := RandUint(source, bits).AsInt()
	i.w[len(i.w)-1] &= maxWord >> 1
	return i
}

// MinInt returns the most negative value of the width: only the sign bit
// set.
func MinInt(bits uint) Int {
	i := NewInt(bits)
	i.w[len(i.w)-1] = 1 << (wordBits - 1)
	return i
}

// MaxInt returns the most positive value of the width.
func MaxInt(bits uint) Int {
	return MinInt(bits).AsUint().Not().AsInt()
}

// Bits returns the fixed width of i in bits.
func (i Int) Bits() uint { return uint(len(i.w)) * wordBits }

// NumWords returns the number of 32-bit storage words backing i.
func (i Int) NumWords() int { return len(i.w) }

// Word returns storage word idx, where word 0 is least significant.
func (i Int) Word(idx int) uint32 { return i.w[idx] }

// Words returns a copy of the backing words, least significant first.
func (i Int) Words() []uint32 { return i.AsUint().Words() }

func (i Int) IsZero() bool { return i.AsUint().IsZero() }

// AsUint reinterprets the bit pattern as an unsigned value of the same
// width. Negative values become values above 2**(width-1). The backing
// words are shared, not copied.
func (i Int) AsUint() Uint { return Uint{w: i.w} }

// IsUint reports whether i is non-negative, i.e. representable in a Uint
// of the same width without wrapping.
func (i Int) IsUint() bool { return !i.isNeg() }

func (i Int) isNeg() bool { return i.w[len(i.w)-1]>>31 != 0 }

// Sign returns -1 for negative values, 0 for zero, and 1 for positive
// values.
func (i Int) Sign() int {
	if i.IsZero() {
		return 0
	} else if i.isNeg() {
		return -1
	}
	return 1
}

// AsInt64 truncates i to fit in an int64. See IsInt64 if you want to check
// before you convert.
func (i Int) AsInt64() int64 {
	v := uint64(i.w[0])
	if len(i.w) > 1 {
		v |= uint64(i.w[1]) << 32
	} else if i.isNeg() {
		v |= uint64(maxWord) << 32
	}
	return int64(v)
}

// IsInt64 reports whether i can be represented as an int64.
func (i Int) IsInt64() bool {
	if len(i.w) <= 2 {
		return true
	}
	fill := uint32(0)
	if i.isNeg() {
		fill = maxWord
	}
	for _, w := range i.w[2:] {
		if w != fill {
			return false
		}
	}
	// The low 64 bits must carry the same sign once the fill words are
	// stripped.
	return i.w[1]>>31 == fill>>31
}

// AsBigInt allocates a big.Int with the same value as i.
func (i Int) AsBigInt() *big.Int {
	if i.isNeg() {
		return new(big.Int).Neg(i.AsUint().Neg().AsBigInt())
	}
	return i.AsUint().AsBigInt()
}

// AsBytes returns the two's-complement value as a big-endian byte slice of
// exactly Bits()/8 bytes.
func (i Int) AsBytes() []byte { return i.AsUint().AsBytes() }

// Resize returns i sign-extended or truncated to a new width, which must
// be a positive multiple of 32.
func (i Int) Resize(bits uint) Int {
	v := NewInt(bits)
	copy(v.w, i.w)
	if i.isNeg() {
		for k := len(i.w); k < len(v.w); k++ {
			v.w[k] = maxWord
		}
	}
	return v
}

func (i Int) Inc() Int { return i.AsUint().Inc().AsInt() }
func (i Int) Dec() Int { return i.AsUint().Dec().AsInt() }

// Add is sign-agnostic in two's complement and delegates to the unsigned
// word loop.
func (i Int) Add(n Int) Int { return i.AsUint().Add(n.AsUint()).AsInt() }
func (i Int) Sub(n Int) Int { return i.AsUint().Sub(n.AsUint()).AsInt() }

// Neg returns the additive inverse. Negating the minimum value overflows
// back to itself, as with native signed integers.
func (i Int) Neg() Int { return i.AsUint().Neg().AsInt() }

// Abs returns the magnitude of i. The minimum value is its own absolute
// value, matching native wrapping semantics.
func (i Int) Abs() Int {
	if i.isNeg() {
		return i.Neg()
	}
	return i
}

func (i Int) Add64(n int64) Int { return i.Add(IntFrom64(n, i.Bits())) }
func (i Int) Sub64(n int64) Int { return i.Sub(IntFrom64(n, i.Bits())) }
func (i Int) Mul64(n int64) Int { return i.Mul(IntFrom64(n, i.Bits())) }

// Cmp compares i to n and returns:
//
//	< 0 if i <  n
//	  0 if i == n
//	> 0 if i >  n
//
// Two's-complement ordering: when the signs match, unsigned word
// comparison is already correct; when they differ, the non-negative value
// is the larger.
func (i Int) Cmp(n Int) int {
	i.AsUint().match(n.AsUint())
	in, nn := i.isNeg(), n.isNeg()
	if in != nn {
		if in {
			return -1
		}
		return 1
	}
	return i.AsUint().Cmp(n.AsUint())
}

func (i Int) Cmp64(n int64) int { return i.Cmp(IntFrom64(n, i.Bits())) }

func (i Int) Equal(n Int) bool { return i.AsUint().Equal(n.AsUint()) }

func (i Int) Equal64(n int64) bool { return i.Equal(IntFrom64(n, i.Bits())) }

func (i Int) LessThan(n Int) bool         { return i.Cmp(n) < 0 }
func (i Int) LessOrEqualTo(n Int) bool    { return i.Cmp(n) <= 0 }
func (i Int) GreaterThan(n Int) bool      { return i.Cmp(n) > 0 }
func (i Int) GreaterOrEqualTo(n Int) bool { return i.Cmp(n) >= 0 }

func (i Int) And(n Int) Int    { return i.AsUint().And(n.AsUint()).AsInt() }
func (i Int) AndNot(n Int) Int { return i.AsUint().AndNot(n.AsUint()).AsInt() }
func (i Int) Or(n Int) Int     { return i.AsUint().Or(n.AsUint()).AsInt() }
func (i Int) Xor(n Int) Int    { return i.AsUint().Xor(n.AsUint()).AsInt() }
func (i Int) Not() Int         { return i.AsUint().Not().AsInt() }

// Lsh shifts left, zero-filling from the bottom; identical bit pattern to
// the unsigned shift.
func (i Int) Lsh(n uint) Int { return i.AsUint().Lsh(n).AsInt() }

// Rsh is an arithmetic right shift: vacated high bits take copies of the
// sign bit, so a negative value stays negative at every step. Shifting a
// negative value by n >= Bits() yields -1; a non-negative one yields 0.
func (i Int) Rsh(n uint) Int {
	if !i.isNeg() {
		return i.AsUint().Rsh(n).AsInt()
	}
	v := Int{w: make([]uint32, len(i.w))}
	if n >= i.Bits() {
		for k := range v.w {
			v.w[k] = maxWord
		}
		return v
	}
	shrWords(v.w, i.w, n, maxWord)
	return v
}

// Mul returns i*n truncated to the width. Truncating two's-complement
// multiplication is sign-agnostic, so this delegates straight to the
// unsigned word loop; only division needs the negate-and-reapply dance.
func (i Int) Mul(n Int) Int { return i.AsUint().Mul(n.AsUint()).AsInt() }

// Quo returns the quotient i/by, truncated towards zero. A zero divisor
// panics with ErrDivideByZero.
func (i Int) Quo(by Int) (q Int) {
	q, _ = i.QuoRem(by)
	return q
}

// Rem returns the remainder of i%by. The remainder takes the sign of the
// dividend. A zero divisor panics with ErrDivideByZero.
func (i Int) Rem(by Int) (r Int) {
	_, r = i.QuoRem(by)
	return r
}

// QuoRem returns the quotient and remainder of i/by, implementing
// T-division (like Go): the quotient truncates towards zero and the
// remainder follows the dividend's sign. Division runs on the magnitudes
// and the signs are reapplied afterwards. A zero divisor panics with
// ErrDivideByZero.
func (i Int) QuoRem(by Int) (q, r Int) {
	qSign, rSign := 1, 1
	if i.isNeg() {
		qSign, rSign = -1, -1
		i = i.Neg()
	}
	if by.isNeg() {
		qSign = -qSign
		by = by.Neg()
	}

	qu, ru := i.AsUint().QuoRem(by.AsUint())
	q, r = qu.AsInt(), ru.AsInt()
	if qSign < 0 {
		q = q.Neg()
	}
	if rSign < 0 {
		r = r.Neg()
	}
	return q, r
}

func (i Int) String() string { return i.StringBase(10) }

func (i Int) Format(s fmt.State, c rune) {
	i.AsBigInt().Format(s, c)
}

func (i Int) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Int) UnmarshalText(bts []byte) error {
	v, err := unmarshalInt(string(bts), i.Bits())
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *Int) UnmarshalJSON(bts []byte) error {
	bts, err := unquoteJSON(bts)
	if err != nil {
		return fmt.Errorf("fixint: int invalid JSON %q", string(bts))
	}
	v, err := unmarshalInt(string(bts), i.Bits())
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i Int) MarshalBinary() ([]byte, error) {
	return i.AsBytes(), nil
}

func (i *Int) UnmarshalBinary(b []byte) error {
	if len(b) == 0 || len(b)%4 != 0 {
		return fmt.Errorf("fixint: binary length %d is not a positive multiple of 4", len(b))
	}
	*i = IntFromBytes(b)
	return nil
}

func unmarshalInt(s string, bits uint) (Int, error) {
	if bits == 0 {
		bits = fitStringBits(s)
	}
	return IntFromString(s, bits), nil
}
