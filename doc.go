/*
Package fixint provides fixed-bit-width unsigned (Uint) and two's-complement
signed (Int) integers of any width that is a multiple of 32, plus a
same-layout BitField container.

Uint and Int are value types; all operations return new values. Arithmetic
wraps modulo 2**width, matching native integer overflow semantics, and
shares a single internal word layout so the two types reinterpret each
other at zero cost via AsInt()/AsUint().

Simple example:

	a := fixint.UintFrom64(math.MaxUint64, 128)
	b := fixint.UintFrom64(math.MaxUint64, 128)
	fmt.Println(a.Mul(b))
	// Output: 340282366920938463426481119284349108225

Values can be created from native integers, floats, base-prefixed strings,
big-endian byte slices, big.Int values or a random source. Division by zero
is the one hard failure: it panics with ErrDivideByZero, which callers can
recover and test for. Mixing operands of different widths is a programming
error and also panics.

Beyond operator-style arithmetic the package carries the usual utility set
for a wide integer: Sqrt, Cbrt, Factorial, Pow, PowMod, IsPrime, IsPow2,
NextPow2 and CeilLog2.

Uint and Int support the following formatting and marshalling interfaces:

  - fmt.Formatter
  - fmt.Stringer
  - json.Marshaler
  - json.Unmarshaler
  - encoding.TextMarshaler
  - encoding.TextUnmarshaler
  - encoding.BinaryMarshaler
  - encoding.BinaryUnmarshaler
*/
package fixint
