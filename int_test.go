package fixint

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestIntQuoRem(t *testing.T) {
	for _, tc := range []struct {
		a, b, q, r Int
	}{
		{i64(7), i64(2), i64(3), i64(1)},
		{i64(-5), i64(2), i64(-2), i64(-1)},  // remainder follows the dividend
		{i64(5), i64(-2), i64(-2), i64(1)},
		{i64(-5), i64(-2), i64(2), i64(-1)},
		{i64(0), i64(7), i64(0), i64(0)},
		{i128s("-170141183460469231731687303715884105728"), i64(2), i128s("-85070591730234615865843651857942052864"), i64(0)},
	} {
		t.Run(fmt.Sprintf("%s/%s", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			q, r := tc.a.QuoRem(tc.b)
			tt.MustAssert(tc.q.Equal(q), "quotient: found %s", q)
			tt.MustAssert(tc.r.Equal(r), "remainder: found %s", r)

			// T-division identity: q*b + r == a.
			tt.MustAssert(tc.a.Equal(q.Mul(tc.b).Add(r)))
		})
	}
}

func TestIntRshSignExtends(t *testing.T) {
	for _, tc := range []struct {
		in    Int
		shift uint
		out   Int
	}{
		{i64(-8), 1, i64(-4)},
		{i64(-8), 2, i64(-2)},
		{i64(-8), 3, i64(-1)},
		{i64(-8), 4, i64(-1)}, // never shifts past -1
		{i64(-1), 127, i64(-1)},
		{i64(-1), 128, i64(-1)},
		{i64(8), 1, i64(4)},
		{i64(8), 128, i64(0)},
		{i64(math.MinInt64), 32, i64(math.MinInt64 >> 32)},
		{i128s("-0x 1 00000000 00000000"), 64, i64(-1)},
	} {
		t.Run(fmt.Sprintf("%s>>%d=%s", tc.in, tc.shift, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v := tc.in.Rsh(tc.shift)
			tt.MustAssert(tc.out.Equal(v), "found %s", v)
			if tc.in.Sign() < 0 {
				tt.MustAssert(v.Sign() < 0, "sign bit must survive the shift")
			}
		})
	}
}

func TestIntCmp(t *testing.T) {
	for _, tc := range []struct {
		a, b Int
		cmp  int
	}{
		{i64(0), i64(0), 0},
		{i64(1), i64(0), 1},
		{i64(-1), i64(0), -1},
		{i64(-1), i64(1), -1},
		{i64(-2), i64(-1), -1},
		{i64(math.MaxInt64), i64(math.MinInt64), 1},
		{i128s("170141183460469231731687303715884105727"), i128s("-170141183460469231731687303715884105728"), 1},
	} {
		t.Run(fmt.Sprintf("%s<>%s", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.cmp, tc.a.Cmp(tc.b))
			tt.MustEqual(-tc.cmp, tc.b.Cmp(tc.a))
			tt.MustEqual(tc.cmp < 0, tc.a.LessThan(tc.b))
			tt.MustEqual(tc.cmp > 0, tc.a.GreaterThan(tc.b))
		})
	}
}

func TestIntCmpAgreesWithNative(t *testing.T) {
	tt := assert.WrapTB(t)

	vals := []int64{math.MinInt64, -100000, -2, -1, 0, 1, 2, 100000, math.MaxInt64}
	for _, a := range vals {
		for _, b := range vals {
			native := 0
			if a < b {
				native = -1
			} else if a > b {
				native = 1
			}
			tt.MustEqual(native, i64(a).Cmp(i64(b)), "%d <> %d", a, b)
		}
	}
}

func TestIntNegInvolution(t *testing.T) {
	tt := assert.WrapTB(t)

	for _, v := range []Int{i64(0), i64(1), i64(-1), i64(math.MaxInt64), i128s("0x7FFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF")} {
		tt.MustAssert(v.Equal(v.Neg().Neg()), "-(-%s)", v)
	}

	// The minimum value is its own negation, like native ints.
	min := MinInt(128)
	tt.MustAssert(min.Equal(min.Neg()))
}

func TestIntAbs(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustAssert(i64(5).Equal(i64(-5).Abs()))
	tt.MustAssert(i64(5).Equal(i64(5).Abs()))
	tt.MustAssert(i64(0).Equal(i64(0).Abs()))
	tt.MustAssert(MinInt(128).Equal(MinInt(128).Abs()))
}

func TestIntMul(t *testing.T) {
	for _, tc := range []struct {
		a, b, c Int
	}{
		{i64(3), i64(7), i64(21)},
		{i64(-3), i64(7), i64(-21)},
		{i64(3), i64(-7), i64(-21)},
		{i64(-3), i64(-7), i64(21)},
		{i64(math.MinInt64), i64(2), i128s("-18446744073709551616")},
	} {
		t.Run(fmt.Sprintf("%s*%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustAssert(tc.c.Equal(tc.a.Mul(tc.b)))
		})
	}
}

func TestIntFrom64SignExtension(t *testing.T) {
	tt := assert.WrapTB(t)

	neg := IntFrom64(-1, 128)
	for i := 0; i < neg.NumWords(); i++ {
		tt.MustEqual(uint32(0xFFFFFFFF), neg.Word(i))
	}

	tt.MustEqual(int64(-1), neg.AsInt64())
	tt.MustEqual(int64(math.MinInt64), IntFrom64(math.MinInt64, 128).AsInt64())
	tt.MustAssert(IntFrom8(-128, 128).Equal(i64(-128)))
	tt.MustAssert(IntFrom16(-32768, 128).Equal(i64(-32768)))
	tt.MustAssert(IntFrom32(-1, 96).Equal(IntFrom64(-1, 96)))
}

func TestIntIsInt64(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustAssert(i64(math.MaxInt64).IsInt64())
	tt.MustAssert(i64(math.MinInt64).IsInt64())
	tt.MustAssert(!i128s("18446744073709551616").IsInt64())
	tt.MustAssert(!i128s("-18446744073709551617").IsInt64())
	tt.MustAssert(!i128s("0x80000000 00000000").IsInt64()) // 2**63 spills the sign
}

func TestIntSign(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual(0, i64(0).Sign())
	tt.MustEqual(1, i64(1).Sign())
	tt.MustEqual(-1, i64(-1).Sign())
	tt.MustEqual(-1, MinInt(128).Sign())
	tt.MustEqual(1, MaxInt(128).Sign())
}

func TestIntFloat(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual(float64(-2), IntFromFloat64(-2.5, 128).AsFloat64())
	tt.MustEqual(float64(2), IntFromFloat64(2.5, 128).AsFloat64())
	tt.MustEqual(float64(0), IntFromFloat64(0, 128).AsFloat64())
	tt.MustEqual(float64(math.MinInt64), i64(math.MinInt64).AsFloat64())

	// NaN and infinity produce the sign-bit sentinel.
	tt.MustAssert(MinInt(128).Equal(IntFromFloat64(math.NaN(), 128)))
	tt.MustAssert(MinInt(128).Equal(IntFromFloat64(math.Inf(1), 128)))
	tt.MustAssert(MinInt(128).Equal(IntFromFloat64(math.Inf(-1), 128)))
}

func TestIntResize(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustAssert(IntFrom64(-1, 256).Equal(i64(-1).Resize(256)), "sign extends")
	tt.MustAssert(IntFrom64(1, 256).Equal(i64(1).Resize(256)), "zero extends")
	tt.MustEqual(int64(-1), i64(-1).Resize(32).AsInt64())
	tt.MustAssert(i64(-1).Resize(256).Resize(128).Equal(i64(-1)))
}

func TestIntMarshal(t *testing.T) {
	tt := assert.WrapTB(t)

	i := i128s("-170141183460469231731687303715884105728")
	bts, err := json.Marshal(i)
	tt.MustOK(err)
	tt.MustEqual(`"-170141183460469231731687303715884105728"`, string(bts))

	var back Int
	tt.MustOK(json.Unmarshal(bts, &back))
	tt.MustEqual(i.String(), back.String())

	txt, err := i64(-42).MarshalText()
	tt.MustOK(err)
	tt.MustEqual("-42", string(txt))
}

func TestIntUintReinterpret(t *testing.T) {
	tt := assert.WrapTB(t)

	// -1 and the all-ones unsigned value are the same bit pattern.
	tt.MustAssert(i64(-1).AsUint().Equal(u128s("0xFFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF")))
	tt.MustAssert(u128s("0xFFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF").AsInt().Equal(i64(-1)))
	tt.MustAssert(!u128s("0x80000000 00000000 00000000 00000000").IsInt())
	tt.MustAssert(!MinInt(128).IsUint())
	tt.MustAssert(i64(7).IsUint())
}
