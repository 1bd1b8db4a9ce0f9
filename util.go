package fixint

// RandSource is any source of random 64-bit values, such as a
// math/rand/v2 generator.
type RandSource interface {
	Uint64() uint64
}

// Difference subtracts the smaller of a and b from the larger.
func Difference(a, b Uint) Uint {
	if a.GreaterThan(b) {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func Larger(a, b Uint) Uint {
	if a.GreaterOrEqualTo(b) {
		return a
	}
	return b
}

func Smaller(a, b Uint) Uint {
	if a.LessOrEqualTo(b) {
		return a
	}
	return b
}

// DifferenceInt subtracts the smaller of a and b from the larger.
func DifferenceInt(a, b Int) Int {
	if a.GreaterThan(b) {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func LargerInt(a, b Int) Int {
	if a.GreaterOrEqualTo(b) {
		return a
	}
	return b
}

func SmallerInt(a, b Int) Int {
	if a.LessOrEqualTo(b) {
		return a
	}
	return b
}
