package numeric

import "testing"

func TestAddIntegers(t *testing.T) {
	got := Add(nil, FromInt64(2), FromInt64(3))
	if got.String() != "5" {
		t.Errorf("2+3 = %s, want 5", got.String())
	}
}

func TestMulPromotesToRational(t *testing.T) {
	half, _ := Div(nil, FromInt64(1), FromInt64(2))
	got := Mul(nil, half, FromInt64(2))
	if !got.IsOne() {
		t.Errorf("1/2 * 2 = %s, want 1", got.String())
	}
}

func TestDivByZeroFails(t *testing.T) {
	if _, ok := Div(nil, FromInt64(1), FromInt64(0)); ok {
		t.Error("division by zero reported ok")
	}
}

func TestGCDLCM(t *testing.T) {
	g := GCD(FromInt64(12), FromInt64(18))
	if g.String() != "6" {
		t.Errorf("gcd(12,18) = %s, want 6", g.String())
	}
	l := LCM(FromInt64(4), FromInt64(6))
	if l.String() != "12" {
		t.Errorf("lcm(4,6) = %s, want 12", l.String())
	}
}

func TestSmodSymmetricRange(t *testing.T) {
	m := FromInt64(10)
	for _, v := range []int64{3, 7, -3, 23} {
		r := Smod(FromInt64(v), m)
		bi, _ := r.AsBigInt()
		if bi.Int64() > 5 || bi.Int64() < -5 {
			t.Errorf("Smod(%d, 10) = %s out of symmetric range", v, r.String())
		}
	}
}

func TestCmpOrdersByValue(t *testing.T) {
	if Cmp(FromInt64(1), FromInt64(2)) >= 0 {
		t.Error("Cmp(1,2) should be negative")
	}
	if Cmp(FromInt64(2), FromInt64(2)) != 0 {
		t.Error("Cmp(2,2) should be zero")
	}
}

func TestIntegerNthRootExact(t *testing.T) {
	root, ok := IntegerNthRoot(FromInt64(8), 3)
	if !ok || root.String() != "2" {
		t.Errorf("cbrt(8) = %v, %s; want 2, true", ok, root)
	}
	if _, ok := IntegerNthRoot(FromInt64(9), 3); ok {
		t.Error("cbrt(9) should not be exact")
	}
}

func TestSignAndAbs(t *testing.T) {
	neg := FromInt64(-7)
	if neg.Sign() >= 0 {
		t.Error("sign of -7 should be negative")
	}
	if Abs(nil, neg).String() != "7" {
		t.Errorf("abs(-7) = %s, want 7", Abs(nil, neg).String())
	}
}
