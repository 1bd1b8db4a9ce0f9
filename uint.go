package fixint

import (
	"fmt"
	"math/big"
	"math/bits"
)

// Uint is an unsigned integer with a fixed bit width chosen at construction
// time. The width must be a positive multiple of 32. Storage is a slice of
// 32-bit words, least significant word first; every bit of every word is
// significant.
//
// Uint is a value type; all operations return new values and never write
// through the receiver. Arithmetic wraps modulo 2**width, matching native
// unsigned integer semantics. Mixing operands of different widths is a
// contract violation and panics.
type Uint struct {
	w []uint32
}

// NewUint returns the zero value of the given width. It panics unless bits
// is a positive multiple of 32.
func NewUint(bits uint) Uint {
	checkBits(bits)
	return Uint{w: make([]uint32, bits/wordBits)}
}

// UintFromWords creates a Uint directly from a little-endian word slice.
// The words are copied. See Words() for the counterpart.
func UintFromWords(w []uint32) Uint {
	if len(w) == 0 {
		panic("fixint: empty word slice")
	}
	u := Uint{w: make([]uint32, len(w))}
	copy(u.w, w)
	return u
}

func UintFrom64(v uint64, bits uint) Uint {
	u := NewUint(bits)
	u.w[0] = uint32(v)
	if len(u.w) > 1 {
		u.w[1] = uint32(v >> 32)
	}
	return u
}

func UintFrom32(v uint32, bits uint) Uint {
	u := NewUint(bits)
	u.w[0] = v
	return u
}

func UintFrom16(v uint16, bits uint) Uint { return UintFrom32(uint32(v), bits) }
func UintFrom8(v uint8, bits uint) Uint   { return UintFrom32(uint32(v), bits) }

// UintFromBigInt creates a Uint of the given width from a big.Int.
// Negative values and values that do not fit set accurate to false; the
// stored value is reduced modulo 2**bits, so a negative input wraps to its
// two's complement representation.
func UintFromBigInt(v *big.Int, bits uint) (out Uint, accurate bool) {
	out = NewUint(bits)
	accurate = v.Sign() >= 0
	b := v.Bytes()
	n := len(out.w) * 4
	if len(b) > n {
		b = b[len(b)-n:]
		accurate = false
	}
	for i := 0; i < len(b); i++ {
		pos := len(b) - 1 - i
		out.w[i/4] |= uint32(b[pos]) << (uint(i%4) * 8)
	}
	if v.Sign() < 0 {
		out = out.Neg()
	}
	return out, accurate
}

// UintFromBytes creates a Uint from a big-endian byte slice. The slice
// length fixes the width and must be a positive multiple of 4.
func UintFromBytes(b []byte) Uint {
	if len(b) == 0 || len(b)%4 != 0 {
		panic(fmt.Sprintf("fixint: byte length %d is not a positive multiple of 4", len(b)))
	}
	u := Uint{w: make([]uint32, len(b)/4)}
	for i := range u.w {
		off := len(b) - 4 - i*4
		u.w[i] = uint32(b[off])<<24 | uint32(b[off+1])<<16 | uint32(b[off+2])<<8 | uint32(b[off+3])
	}
	return u
}

// RandUint generates a random Uint of the given width from an external
// source.
func RandUint(source RandSource, bits uint) Uint {
	u := NewUint(bits)
	for i := 0; i < len(u.w); i += 2 {
		v := source.Uint64()
		u.w[i] = uint32(v)
		if i+1 < len(u.w) {
			u.w[i+1] = uint32(v >> 32)
		}
	}
	return u
}

// Bits returns the fixed width of u in bits.
func (u Uint) Bits() uint { return uint(len(u.w)) * wordBits }

// NumWords returns the number of 32-bit storage words backing u.
func (u Uint) NumWords() int { return len(u.w) }

// Word returns storage word i, where word 0 is least significant.
func (u Uint) Word(i int) uint32 { return u.w[i] }

// Words returns a copy of the backing words, least significant first.
func (u Uint) Words() []uint32 {
	out := make([]uint32, len(u.w))
	copy(out, u.w)
	return out
}

func (u Uint) IsZero() bool {
	for _, w := range u.w {
		if w != 0 {
			return false
		}
	}
	return true
}

// AsInt reinterprets the bit pattern as a two's-complement Int of the same
// width. The backing words are shared, not copied; this is safe because no
// operation on either type mutates its receiver.
func (u Uint) AsInt() Int { return Int{w: u.w} }

// IsInt reports whether u can be represented in an Int of the same width
// without becoming negative.
func (u Uint) IsInt() bool { return u.w[len(u.w)-1]>>31 == 0 }

// AsUint64 truncates u to fit in a uint64. See IsUint64 if you want to
// check before you convert.
func (u Uint) AsUint64() uint64 {
	v := uint64(u.w[0])
	if len(u.w) > 1 {
		v |= uint64(u.w[1]) << 32
	}
	return v
}

// IsUint64 reports whether u can be represented as a uint64.
func (u Uint) IsUint64() bool {
	for _, w := range u.w[min(2, len(u.w)):] {
		if w != 0 {
			return false
		}
	}
	return true
}

// AsUint32 truncates u to fit in a uint32.
func (u Uint) AsUint32() uint32 { return u.w[0] }

// AsBigInt allocates a big.Int with the same value as u.
func (u Uint) AsBigInt() *big.Int {
	return new(big.Int).SetBytes(u.AsBytes())
}

// AsBytes returns the value as a big-endian byte slice of exactly
// Bits()/8 bytes. See UintFromBytes for the counterpart.
func (u Uint) AsBytes() []byte {
	b := make([]byte, len(u.w)*4)
	for i, w := range u.w {
		off := len(b) - 4 - i*4
		b[off] = byte(w >> 24)
		b[off+1] = byte(w >> 16)
		b[off+2] = byte(w >> 8)
		b[off+3] = byte(w)
	}
	return b
}

// Resize returns u zero-extended or truncated to a new width, which must be
// a positive multiple of 32.
func (u Uint) Resize(bits uint) Uint {
	v := NewUint(bits)
	copy(v.w, u.w)
	return v
}

func (u Uint) Inc() (v Uint) {
	v = Uint{w: make([]uint32, len(u.w))}
	incWords(v.w, u.w)
	return v
}

func (u Uint) Dec() (v Uint) {
	v = Uint{w: make([]uint32, len(u.w))}
	decWords(v.w, u.w)
	return v
}

func (u Uint) Add(n Uint) (v Uint) {
	u.match(n)
	v = Uint{w: make([]uint32, len(u.w))}
	addWords(v.w, u.w, n.w)
	return v
}

func (u Uint) Sub(n Uint) (v Uint) {
	u.match(n)
	v = Uint{w: make([]uint32, len(u.w))}
	subWords(v.w, u.w, n.w)
	return v
}

// Neg returns the two's complement of u, its additive inverse modulo
// 2**width.
func (u Uint) Neg() (v Uint) {
	v = Uint{w: make([]uint32, len(u.w))}
	negWords(v.w, u.w)
	return v
}

func (u Uint) Add64(n uint64) Uint { return u.Add(UintFrom64(n, u.Bits())) }
func (u Uint) Sub64(n uint64) Uint { return u.Sub(UintFrom64(n, u.Bits())) }
func (u Uint) Mul64(n uint64) Uint { return u.Mul(UintFrom64(n, u.Bits())) }

// Cmp compares u to n and returns:
//
//	< 0 if u <  n
//	  0 if u == n
//	> 0 if u >  n
//
// Comparison runs from the most significant word down; the first word that
// differs decides.
func (u Uint) Cmp(n Uint) int {
	u.match(n)
	for i := len(u.w) - 1; i >= 0; i-- {
		if u.w[i] > n.w[i] {
			return 1
		} else if u.w[i] < n.w[i] {
			return -1
		}
	}
	return 0
}

func (u Uint) Cmp64(n uint64) int { return u.Cmp(UintFrom64(n, u.Bits())) }

func (u Uint) Equal(n Uint) bool {
	u.match(n)
	for i := range u.w {
		if u.w[i] != n.w[i] {
			return false
		}
	}
	return true
}

func (u Uint) Equal64(n uint64) bool { return u.Equal(UintFrom64(n, u.Bits())) }

func (u Uint) LessThan(n Uint) bool         { return u.Cmp(n) < 0 }
func (u Uint) LessOrEqualTo(n Uint) bool    { return u.Cmp(n) <= 0 }
func (u Uint) GreaterThan(n Uint) bool      { return u.Cmp(n) > 0 }
func (u Uint) GreaterOrEqualTo(n Uint) bool { return u.Cmp(n) >= 0 }

func (u Uint) And(n Uint) (v Uint) {
	u.match(n)
	v = Uint{w: make([]uint32, len(u.w))}
	for i := range u.w {
		v.w[i] = u.w[i] & n.w[i]
	}
	return v
}

func (u Uint) AndNot(n Uint) (v Uint) {
	u.match(n)
	v = Uint{w: make([]uint32, len(u.w))}
	for i := range u.w {
		v.w[i] = u.w[i] &^ n.w[i]
	}
	return v
}

func (u Uint) Or(n Uint) (v Uint) {
	u.match(n)
	v = Uint{w: make([]uint32, len(u.w))}
	for i := range u.w {
		v.w[i] = u.w[i] | n.w[i]
	}
	return v
}

func (u Uint) Xor(n Uint) (v Uint) {
	u.match(n)
	v = Uint{w: make([]uint32, len(u.w))}
	for i := range u.w {
		v.w[i] = u.w[i] ^ n.w[i]
	}
	return v
}

func (u Uint) Not() (v Uint) {
	v = Uint{w: make([]uint32, len(u.w))}
	for i := range u.w {
		v.w[i] = ^u.w[i]
	}
	return v
}

// Lsh shifts u left by n bits, zero-filling from the bottom. Bits shifted
// past the width are discarded; n >= Bits() yields zero.
func (u Uint) Lsh(n uint) (v Uint) {
	v = Uint{w: make([]uint32, len(u.w))}
	if n >= u.Bits() {
		return v
	}
	shlWords(v.w, u.w, n)
	return v
}

// Rsh shifts u right by n bits, zero-filling from the top. n >= Bits()
// yields zero.
func (u Uint) Rsh(n uint) (v Uint) {
	v = Uint{w: make([]uint32, len(u.w))}
	if n >= u.Bits() {
		return v
	}
	shrWords(v.w, u.w, n, 0)
	return v
}

// RotateRight rotates u right by n bits, wrapping the low bits back around
// to the top.
func (u Uint) RotateRight(n uint) Uint {
	n %= u.Bits()
	if n == 0 {
		// Avoids the undefined sub-word shift by the full word size.
		return UintFromWords(u.w)
	}
	return u.Rsh(n).Or(u.Lsh(u.Bits() - n))
}

// Bit returns bit i as 0 or 1. Bit 0 is the least significant. Out of
// range indices panic.
func (u Uint) Bit(i uint) uint {
	u.checkBit(i)
	return uint(u.w[i/wordBits]>>(i%wordBits)) & 1
}

func (u Uint) SetBit(i uint) Uint {
	u.checkBit(i)
	v := UintFromWords(u.w)
	v.w[i/wordBits] |= 1 << (i % wordBits)
	return v
}

func (u Uint) ClearBit(i uint) Uint {
	u.checkBit(i)
	v := UintFromWords(u.w)
	v.w[i/wordBits] &^= 1 << (i % wordBits)
	return v
}

func (u Uint) ToggleBit(i uint) Uint {
	u.checkBit(i)
	v := UintFromWords(u.w)
	v.w[i/wordBits] ^= 1 << (i % wordBits)
	return v
}

// Byte returns byte i of the value, where byte 0 is the least significant.
// Out of range indices panic.
func (u Uint) Byte(i int) byte {
	u.checkByte(i)
	return byte(u.w[i/4] >> (uint(i%4) * 8))
}

func (u Uint) SetByte(i int, b byte) Uint {
	u.checkByte(i)
	v := UintFromWords(u.w)
	shift := uint(i%4) * 8
	v.w[i/4] = v.w[i/4]&^(0xFF<<shift) | uint32(b)<<shift
	return v
}

// Nybble returns 4-bit group i of the value, where nybble 0 is the least
// significant. Out of range indices panic.
func (u Uint) Nybble(i int) byte {
	u.checkNybble(i)
	return byte(u.w[i/8]>>(uint(i%8)*4)) & 0xF
}

func (u Uint) SetNybble(i int, n byte) Uint {
	u.checkNybble(i)
	v := UintFromWords(u.w)
	shift := uint(i%8) * 4
	v.w[i/8] = v.w[i/8]&^(0xF<<shift) | uint32(n&0xF)<<shift
	return v
}

// LeadingZeros returns the number of zero bits above the highest set bit.
// A zero value returns the full width.
func (u Uint) LeadingZeros() uint { return leadingZeroWords(u.w) }

// TrailingZeros returns the number of zero bits below the lowest set bit.
// A zero value returns the full width.
func (u Uint) TrailingZeros() uint { return trailingZeroWords(u.w) }

// BitLen returns the position of the highest set bit plus one, or zero for
// a zero value.
func (u Uint) BitLen() uint { return u.Bits() - u.LeadingZeros() }

// OnesCount returns the number of set bits.
func (u Uint) OnesCount() uint {
	var n uint
	for _, w := range u.w {
		n += uint(bits.OnesCount32(w))
	}
	return n
}

// Mul returns u*n truncated to the width, wrapping on overflow as per
// native unsigned multiplication.
func (u Uint) Mul(n Uint) (v Uint) {
	u.match(n)
	v = Uint{w: make([]uint32, len(u.w))}
	mulWords(v.w, u.w, n.w)
	return v
}

// MulWord returns u*n for a single-word multiplier without widening the
// operand first.
func (u Uint) MulWord(n uint32) (v Uint) {
	v = Uint{w: make([]uint32, len(u.w))}
	mulAddWord(v.w, u.w, n, 0)
	return v
}

// Quo returns the quotient u/by, truncated towards zero. A zero divisor
// panics with ErrDivideByZero.
func (u Uint) Quo(by Uint) (q Uint) {
	q, _ = u.QuoRem(by)
	return q
}

// Rem returns the remainder of u%by. A zero divisor panics with
// ErrDivideByZero.
func (u Uint) Rem(by Uint) (r Uint) {
	_, r = u.QuoRem(by)
	return r
}

// QuoRem returns the quotient and remainder of u/by. It implements
// T-division (like Go): q = u/by truncated towards zero and r = u - by*q.
// A zero divisor panics with ErrDivideByZero.
func (u Uint) QuoRem(by Uint) (q, r Uint) {
	u.match(by)
	if by.IsZero() {
		panic(ErrDivideByZero)
	}

	if u.IsUint64() && by.IsUint64() {
		uv, bv := u.AsUint64(), by.AsUint64()
		return UintFrom64(uv/bv, u.Bits()), UintFrom64(uv%bv, u.Bits())
	}

	byLeading0 := by.LeadingZeros()
	byTrailing0 := by.TrailingZeros()
	if byLeading0+byTrailing0 == u.Bits()-1 {
		// Power of two: shift out the quotient, mask out the remainder.
		q = u.Rsh(byTrailing0)
		r = by.Dec().And(u)
		return q, r
	}

	if by.IsUint64() && by.AsUint64() <= maxWord {
		q = Uint{w: make([]uint32, len(u.w))}
		rem := quoRemWord(q.w, u.w, uint32(by.AsUint64()))
		return q, UintFrom32(rem, u.Bits())
	}

	if cmp := u.Cmp(by); cmp < 0 {
		return NewUint(u.Bits()), u // it's 100% remainder
	} else if cmp == 0 {
		return UintFrom32(1, u.Bits()), NewUint(u.Bits())
	}

	return quoRemBin(u, by)
}

// QuoRemWord divides by a single word divisor, processing one word at a
// time. This is the fast path the string formatter leans on.
func (u Uint) QuoRemWord(by uint32) (q Uint, r uint32) {
	if by == 0 {
		panic(ErrDivideByZero)
	}
	q = Uint{w: make([]uint32, len(u.w))}
	r = quoRemWord(q.w, u.w, by)
	return q, r
}

// quoRemBin is restoring binary long division: align the divisor with the
// dividend's highest set bit, then subtract-and-mark one quotient bit per
// step while shifting the divisor back down.
func quoRemBin(u, by Uint) (q, r Uint) {
	shift := int(by.LeadingZeros() - u.LeadingZeros())
	by = by.Lsh(uint(shift))
	q = NewUint(u.Bits())

	for {
		q = q.Lsh(1)
		if !u.LessThan(by) {
			u = u.Sub(by)
			q.w[0] |= 1
		}
		by = by.Rsh(1)

		if shift <= 0 {
			break
		}
		shift--
	}

	return q, u
}

func (u Uint) match(n Uint) {
	if len(u.w) != len(n.w) {
		panicWidth(u.Bits(), n.Bits())
	}
}

func (u Uint) checkBit(i uint) {
	if i >= u.Bits() {
		panic(fmt.Sprintf("fixint: bit %d out of range for width %d", i, u.Bits()))
	}
}

func (u Uint) checkByte(i int) {
	if i < 0 || i >= len(u.w)*4 {
		panic(fmt.Sprintf("fixint: byte %d out of range for width %d", i, u.Bits()))
	}
}

func (u Uint) checkNybble(i int) {
	if i < 0 || i >= len(u.w)*8 {
		panic(fmt.Sprintf("fixint: nybble %d out of range for width %d", i, u.Bits()))
	}
}

func (u Uint) String() string { return u.StringBase(10) }

func (u Uint) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

func (u Uint) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *Uint) UnmarshalText(bts []byte) error {
	v, err := unmarshalUint(string(bts), u.Bits())
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u Uint) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *Uint) UnmarshalJSON(bts []byte) error {
	bts, err := unquoteJSON(bts)
	if err != nil {
		return fmt.Errorf("fixint: uint invalid JSON %q", string(bts))
	}
	v, err := unmarshalUint(string(bts), u.Bits())
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u Uint) MarshalBinary() ([]byte, error) {
	return u.AsBytes(), nil
}

func (u *Uint) UnmarshalBinary(b []byte) error {
	if len(b) == 0 || len(b)%4 != 0 {
		return fmt.Errorf("fixint: binary length %d is not a positive multiple of 4", len(b))
	}
	*u = UintFromBytes(b)
	return nil
}

// unmarshalUint sizes the result to the receiver's width when it has one,
// and to the smallest width that fits the digits otherwise.
func unmarshalUint(s string, bits uint) (Uint, error) {
	if bits == 0 {
		bits = fitStringBits(s)
	}
	return UintFromString(s, bits), nil
}

func unquoteJSON(bts []byte) ([]byte, error) {
	if len(bts) == 0 {
		return nil, fmt.Errorf("fixint: empty JSON value")
	}
	if bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return nil, fmt.Errorf("fixint: unterminated JSON string")
		}
		bts = bts[1 : ln-1]
	}
	return bts, nil
}
