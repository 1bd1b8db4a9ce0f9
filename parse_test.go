package fixint

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUintFromStringPrefixes(t *testing.T) {
	for idx, tc := range []struct {
		in  string
		out Uint
	}{
		// hex prefixes
		{"0xFF", u64(255)},
		{"0XFF", u64(255)},
		{"xff", u64(255)},
		{"Xff", u64(255)},
		{"#ff", u64(255)},

		// decimal, explicit and default
		{"0d255", u64(255)},
		{"0D255", u64(255)},
		{"d255", u64(255)},
		{"255", u64(255)},
		{"", u64(0)},

		// octal
		{"0o377", u64(255)},
		{"0O377", u64(255)},
		{"o377", u64(255)},
		{"@377", u64(255)},

		// binary
		{"0b11111111", u64(255)},
		{"0B11111111", u64(255)},
		{"b11111111", u64(255)},

		// a bare "0" is decimal zero, not a dangling prefix
		{"0", u64(0)},
		{"0x", u64(0)},

		{"0x FFFF FFFF FFFF FFFF FFFF FFFF FFFF FFFF", u128s("0xFFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF")},
		{"340282366920938463463374607431768211455", u128s("0xFFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF")},
	} {
		t.Run(fmt.Sprintf("%d/%q", idx, tc.in), func(t *testing.T) {
			require.True(t, tc.out.Equal(UintFromString(tc.in, 128)),
				"parse %q: got %s, want %s", tc.in, UintFromString(tc.in, 128), tc.out)
		})
	}
}

func TestUintFromStringSkipsInvalidDigits(t *testing.T) {
	// Non-digit characters vanish rather than failing the parse.
	require.True(t, u64(1234).Equal(UintFromString("1_2,3 4", 128)))
	require.True(t, u64(0xBEEF).Equal(UintFromString("0xbe_ef", 128)))

	// Digits of a wider base than the active one are skipped too.
	require.True(t, u64(0b101).Equal(UintFromString("0b19091", 128)))
	require.True(t, u64(1).Equal(UintFromStringBase("189", 8, 128)), "8 and 9 are not octal digits")

	// Nothing usable at all parses as zero.
	require.True(t, UintFromString("hello world", 128).IsZero())
}

func TestUintFromStringWraps(t *testing.T) {
	// 2**128 is one digit past the width; it wraps to zero.
	require.True(t, UintFromString("340282366920938463463374607431768211456", 128).IsZero())
	require.True(t, u64(1).Equal(UintFromString("340282366920938463463374607431768211457", 128)))

	// Same value confined to 32 bits keeps only the low word.
	require.True(t, UintFromString("0x1 00000001", 32).Equal(UintFrom64(1, 32)))
}

func TestUintFromStringBaseChecksBase(t *testing.T) {
	require.Panics(t, func() { UintFromStringBase("123", 7, 128) })
	require.Panics(t, func() { UintFromStringBase("123", 0, 128) })
}

func TestIntFromString(t *testing.T) {
	for idx, tc := range []struct {
		in  string
		out Int
	}{
		{"0", i64(0)},
		{"255", i64(255)},
		{"+255", i64(255)},
		{"-255", i64(-255)},
		{"-0xFF", i64(-255)},
		{"-0b100", i64(-4)},
		{"-170141183460469231731687303715884105728", MinInt(128)},
		{"170141183460469231731687303715884105727", MaxInt(128)},
	} {
		t.Run(fmt.Sprintf("%d/%q", idx, tc.in), func(t *testing.T) {
			require.True(t, tc.out.Equal(IntFromString(tc.in, 128)),
				"parse %q: got %s, want %s", tc.in, IntFromString(tc.in, 128), tc.out)
		})
	}
}

func TestIntFromStringBase(t *testing.T) {
	require.True(t, i64(-255).Equal(IntFromStringBase("-ff", 16, 128)))
	require.True(t, i64(255).Equal(IntFromStringBase("+377", 8, 128)))
}

func TestStringRoundTrip(t *testing.T) {
	for i := 0; i < oracleIterations; i++ {
		u := randUint(globalRNG, 128)
		require.True(t, u.Equal(UintFromString(u.String(), 128)), "uint %s", u)

		v := randInt(globalRNG, 128)
		require.True(t, v.Equal(IntFromString(v.String(), 128)), "int %s", v)
	}
}
