package fixint

import (
	"fmt"
	"math/bits"
)

// BitField is a fixed-width bit container over the same 32-bit word layout
// as Uint, for callers that want bit-level operations without arithmetic
// semantics. Unlike Uint its width may be any positive bit count; the
// padding bits above the width in the top word are always held clear, and
// every operation re-clears them.
//
// BitField is a value type; all operations return new values.
type BitField struct {
	n uint
	w []uint32
}

// NewBitField returns an all-clear field of the given width. It panics if
// bits is zero.
func NewBitField(bitCount uint) BitField {
	if bitCount == 0 {
		panic("fixint: bit field width must be positive")
	}
	return BitField{n: bitCount, w: make([]uint32, (bitCount+wordBits-1)/wordBits)}
}

// BitFieldFromUint copies a Uint's words into a field of the same width.
func BitFieldFromUint(u Uint) BitField {
	b := BitField{n: u.Bits(), w: make([]uint32, len(u.w))}
	copy(b.w, u.w)
	return b
}

// BitFieldFromString parses a base-prefixed string (same lenient rules as
// UintFromString) into a field of the given width.
func BitFieldFromString(s string, bitCount uint) BitField {
	b := NewBitField(bitCount)
	rest, base := splitBasePrefix(s)
	for k := 0; k < len(rest); k++ {
		d, ok := digitValue(rest[k])
		if !ok || d >= base {
			continue
		}
		mulAddWord(b.w, b.w, uint32(base), uint32(d))
	}
	b.clearPadding()
	return b
}

// AsBitField copies u's words into a field of the same width.
func (u Uint) AsBitField() BitField { return BitFieldFromUint(u) }

// UintFromBitField copies a field's words into a Uint. The field width
// must be a multiple of 32.
func UintFromBitField(b BitField) Uint {
	if b.n%wordBits != 0 {
		panic(fmt.Sprintf("fixint: bit field width %d is not a multiple of %d", b.n, wordBits))
	}
	return UintFromWords(b.w)
}

// AsUint is shorthand for UintFromBitField.
func (b BitField) AsUint() Uint { return UintFromBitField(b) }

// Bits returns the width of the field in bits.
func (b BitField) Bits() uint { return b.n }

// Word returns storage word i, where word 0 holds the lowest bits.
func (b BitField) Word(i int) uint32 { return b.w[i] }

func (b BitField) IsZero() bool {
	for _, w := range b.w {
		if w != 0 {
			return false
		}
	}
	return true
}

// Any reports whether at least one bit is set.
func (b BitField) Any() bool { return !b.IsZero() }

// All reports whether every bit in the width is set.
func (b BitField) All() bool {
	full := b.n / wordBits
	for i := uint(0); i < full; i++ {
		if b.w[i] != maxWord {
			return false
		}
	}
	if rem := b.n % wordBits; rem != 0 {
		return b.w[len(b.w)-1] == maxWord>>(wordBits-rem)
	}
	return true
}

// Count returns the number of set bits.
func (b BitField) Count() uint {
	var n uint
	for _, w := range b.w {
		n += uint(bits.OnesCount32(w))
	}
	return n
}

// Bit returns bit i as 0 or 1. Out of range indices panic.
func (b BitField) Bit(i uint) uint {
	b.checkBit(i)
	return uint(b.w[i/wordBits]>>(i%wordBits)) & 1
}

func (b BitField) SetBit(i uint) BitField {
	b.checkBit(i)
	v := b.clone()
	v.w[i/wordBits] |= 1 << (i % wordBits)
	return v
}

func (b BitField) ClearBit(i uint) BitField {
	b.checkBit(i)
	v := b.clone()
	v.w[i/wordBits] &^= 1 << (i % wordBits)
	return v
}

func (b BitField) ToggleBit(i uint) BitField {
	b.checkBit(i)
	v := b.clone()
	v.w[i/wordBits] ^= 1 << (i % wordBits)
	return v
}

// SetAll returns a field with every bit in the width set.
func (b BitField) SetAll() BitField {
	v := b.clone()
	for i := range v.w {
		v.w[i] = maxWord
	}
	v.clearPadding()
	return v
}

// ClearAll returns an all-clear field of the same width.
func (b BitField) ClearAll() BitField { return NewBitField(b.n) }

func (b BitField) And(n BitField) BitField {
	b.match(n)
	v := b.clone()
	for i := range v.w {
		v.w[i] &= n.w[i]
	}
	return v
}

func (b BitField) Or(n BitField) BitField {
	b.match(n)
	v := b.clone()
	for i := range v.w {
		v.w[i] |= n.w[i]
	}
	return v
}

func (b BitField) Xor(n BitField) BitField {
	b.match(n)
	v := b.clone()
	for i := range v.w {
		v.w[i] ^= n.w[i]
	}
	return v
}

func (b BitField) Not() BitField {
	v := b.clone()
	for i := range v.w {
		v.w[i] = ^v.w[i]
	}
	v.clearPadding()
	return v
}

func (b BitField) Lsh(s uint) BitField {
	v := NewBitField(b.n)
	if s >= b.n {
		return v
	}
	shlWords(v.w, b.w, s)
	v.clearPadding()
	return v
}

func (b BitField) Rsh(s uint) BitField {
	v := NewBitField(b.n)
	if s >= b.n {
		return v
	}
	shrWords(v.w, b.w, s, 0)
	return v
}

// RotateRight rotates the field right by s bits within its width; bits
// leaving the bottom re-enter at the top.
func (b BitField) RotateRight(s uint) BitField {
	s %= b.n
	if s == 0 {
		return b.clone()
	}
	return b.Rsh(s).Or(b.Lsh(b.n - s))
}

// String renders the field as binary, highest bit first.
func (b BitField) String() string {
	out := make([]byte, b.n)
	for i := uint(0); i < b.n; i++ {
		out[b.n-1-i] = '0' + byte(b.w[i/wordBits]>>(i%wordBits)&1)
	}
	return string(out)
}

func (b BitField) clone() BitField {
	v := BitField{n: b.n, w: make([]uint32, len(b.w))}
	copy(v.w, b.w)
	return v
}

func (b BitField) clearPadding() {
	if rem := b.n % wordBits; rem != 0 {
		b.w[len(b.w)-1] &= maxWord >> (wordBits - rem)
	}
}

func (b BitField) match(n BitField) {
	if b.n != n.n {
		panicWidth(b.n, n.n)
	}
}

func (b BitField) checkBit(i uint) {
	if i >= b.n {
		panic(fmt.Sprintf("fixint: bit %d out of range for width %d", i, b.n))
	}
}
