package fixint

import "math/bits"

// Low-level word loops shared by Uint and Int. Every function writes only
// into z, which the caller guarantees is freshly allocated and the same
// length as its inputs.

func addWords(z, x, y []uint32) (carry uint32) {
	for i := range x {
		z[i], carry = bits.Add32(x[i], y[i], carry)
	}
	return carry
}

func subWords(z, x, y []uint32) (borrow uint32) {
	for i := range x {
		z[i], borrow = bits.Sub32(x[i], y[i], borrow)
	}
	return borrow
}

func incWords(z, x []uint32) {
	carry := uint32(1)
	for i := range x {
		z[i], carry = bits.Add32(x[i], 0, carry)
	}
}

func decWords(z, x []uint32) {
	borrow := uint32(1)
	for i := range x {
		z[i], borrow = bits.Sub32(x[i], 0, borrow)
	}
}

// negWords computes the two's complement, ^x + 1.
func negWords(z, x []uint32) {
	carry := uint32(1)
	for i := range x {
		z[i], carry = bits.Add32(^x[i], 0, carry)
	}
}

// mulWords computes x*y truncated to len(z) words. Schoolbook word
// multiplication with a 64-bit running carry; columns beyond the width are
// never computed.
func mulWords(z, x, y []uint32) {
	n := len(z)
	for i := 0; i < n; i++ {
		yi := uint64(y[i])
		if yi == 0 {
			continue
		}
		var carry uint64
		for j := 0; i+j < n; j++ {
			t := uint64(z[i+j]) + uint64(x[j])*yi + carry
			z[i+j] = uint32(t)
			carry = t >> 32
		}
	}
}

// mulAddWord computes z = x*y + a for a single multiplier word. Returns the
// word that would spill out of the top, which truncating callers discard.
func mulAddWord(z, x []uint32, y, a uint32) (spill uint32) {
	carry := uint64(a)
	for i := range x {
		t := uint64(x[i])*uint64(y) + carry
		z[i] = uint32(t)
		carry = t >> 32
	}
	return uint32(carry)
}

// shlWords shifts x left by s bits, zero-filling from the bottom.
// s must be < len(x)*32.
func shlWords(z, x []uint32, s uint) {
	n := len(x)
	words := int(s / wordBits)
	sub := s % wordBits
	if sub == 0 {
		for i := n - 1; i >= words; i-- {
			z[i] = x[i-words]
		}
	} else {
		for i := n - 1; i > words; i-- {
			z[i] = x[i-words]<<sub | x[i-words-1]>>(wordBits-sub)
		}
		z[words] = x[0] << sub
	}
	for i := 0; i < words; i++ {
		z[i] = 0
	}
}

// shrWords shifts x right by s bits, filling vacated high bits with fill
// (zero for a logical shift, all ones for an arithmetic shift of a negative
// value). s must be < len(x)*32.
func shrWords(z, x []uint32, s uint, fill uint32) {
	n := len(x)
	words := int(s / wordBits)
	sub := s % wordBits
	if sub == 0 {
		for i := 0; i < n-words; i++ {
			z[i] = x[i+words]
		}
	} else {
		for i := 0; i < n-words-1; i++ {
			z[i] = x[i+words]>>sub | x[i+words+1]<<(wordBits-sub)
		}
		z[n-words-1] = x[n-1]>>sub | fill<<(wordBits-sub)
	}
	for i := n - words; i < n; i++ {
		z[i] = fill
	}
}

// quoRemWord divides x by a single nonzero word, one word at a time from the
// top using 64-bit intermediates. Returns the remainder.
func quoRemWord(z, x []uint32, v uint32) (rem uint32) {
	var r uint64
	for i := len(x) - 1; i >= 0; i-- {
		cur := r<<32 | uint64(x[i])
		z[i] = uint32(cur / uint64(v))
		r = cur % uint64(v)
	}
	return uint32(r)
}

func leadingZeroWords(w []uint32) uint {
	for i := len(w) - 1; i >= 0; i-- {
		if w[i] != 0 {
			return uint((len(w)-1-i)*wordBits + bits.LeadingZeros32(w[i]))
		}
	}
	return uint(len(w)) * wordBits
}

func trailingZeroWords(w []uint32) uint {
	for i := range w {
		if w[i] != 0 {
			return uint(i*wordBits + bits.TrailingZeros32(w[i]))
		}
	}
	return uint(len(w)) * wordBits
}
