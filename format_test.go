package fixint

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUintStringBase(t *testing.T) {
	for idx, tc := range []struct {
		u    Uint
		base int
		out  string
	}{
		{u64(0), 2, "0"},
		{u64(0), 10, "0"},
		{u64(5), 2, "101"},
		{u64(255), 16, "ff"},
		{u64(255), 8, "377"},
		{u64(255), 10, "255"},
		{u64(1_000_000_000), 10, "1000000000"}, // exactly one peel chunk
		{u64(1_000_000_001), 10, "1000000001"},
		{u128s("0xFFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF"), 10, "340282366920938463463374607431768211455"},
		{u128s("0xFFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF"), 16, "ffffffffffffffffffffffffffffffff"},
		{u128s("0x80000000 00000000 00000000 00000000"), 16, "80000000000000000000000000000000"},
	} {
		t.Run(fmt.Sprintf("%d/%s/%d", idx, tc.out, tc.base), func(t *testing.T) {
			require.Equal(t, tc.out, tc.u.StringBase(tc.base))
		})
	}
}

func TestIntStringBase(t *testing.T) {
	require.Equal(t, "-ff", i64(-255).StringBase(16))
	require.Equal(t, "-101", i64(-5).StringBase(2))
	require.Equal(t, "255", i64(255).StringBase(10))
	require.Equal(t, "-170141183460469231731687303715884105728", MinInt(128).StringBase(10))
}

func TestStringBaseAgainstBig(t *testing.T) {
	for i := 0; i < oracleIterations; i++ {
		u := randUint(globalRNG, 128)
		b := u.AsBigInt()
		for _, base := range []int{2, 8, 10, 16} {
			require.Equal(t, b.Text(base), u.StringBase(base), "base %d of %s", base, u)
		}
	}
}

func TestUintFormat(t *testing.T) {
	u := u64(0xBEEF)
	require.Equal(t, "48879", fmt.Sprintf("%d", u))
	require.Equal(t, "beef", fmt.Sprintf("%x", u))
	require.Equal(t, "BEEF", fmt.Sprintf("%X", u))
	require.Equal(t, "0xbeef", fmt.Sprintf("%#x", u))
	require.Equal(t, "  48879", fmt.Sprintf("%7d", u))
}

func TestIntFormat(t *testing.T) {
	i := i64(-48879)
	require.Equal(t, "-48879", fmt.Sprintf("%d", i))
	require.Equal(t, "-beef", fmt.Sprintf("%x", i))
	require.Equal(t, "-48879", fmt.Sprintf("%v", i))
}
