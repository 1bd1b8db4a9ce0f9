package fixint

import (
	"errors"
	"fmt"
)

const (
	// wordBits is the size of a single storage element. The bit width of
	// every Uint and Int is a multiple of this.
	wordBits = 32

	maxWord = 1<<wordBits - 1

	// wrapWordFloat is 1 << 32, the per-word multiplier for float
	// reconstruction.
	wrapWordFloat = float64(maxWord) + 1
)

// ErrDivideByZero is the panic value raised by Quo, QuoRem, Rem and PowMod
// when the divisor or modulus is zero. It is a distinguished error value so
// callers that want a recoverable contract can recover() and test for it
// with errors.Is.
var ErrDivideByZero = errors.New("fixint: division by zero")

func panicWidth(a, b uint) {
	panic(fmt.Sprintf("fixint: mismatched bit widths %d and %d", a, b))
}

func checkBits(bits uint) {
	if bits == 0 || bits%wordBits != 0 {
		panic(fmt.Sprintf("fixint: bit width %d is not a positive multiple of %d", bits, wordBits))
	}
}
