package node

import (
	"testing"

	"may/internal/domain"
	"may/internal/numeric"
)

func TestIdenticalRespectsArgOrderInsideRawSum(t *testing.T) {
	x := NewSymbol("x", domain.Real)
	y := NewSymbol("y", domain.Real)
	a := NewSum([]Node{x, y})
	b := NewSum([]Node{y, x})
	if Identical(a, b) == 0 {
		t.Error("raw Sum(x,y) and Sum(y,x) should differ: Identical compares children in order, canonical order comes from evaluation")
	}
}

func TestIdenticalDistinguishesDifferentSymbols(t *testing.T) {
	x := NewSymbol("x", domain.Real)
	y := NewSymbol("y", domain.Real)
	if Identical(x, y) == 0 {
		t.Error("distinct symbols must not be Identical")
	}
}

func TestIdenticalReflexive(t *testing.T) {
	x := NewSymbol("x", domain.Real)
	if Identical(x, x) != 0 {
		t.Error("a node must be Identical to itself")
	}
}

func TestCmpIsAntisymmetric(t *testing.T) {
	x := NewSymbol("x", domain.Real)
	y := NewSymbol("y", domain.Real)
	if Cmp(x, y) == 0 {
		t.Skip("x and y happened to compare equal")
	}
	if (Cmp(x, y) < 0) == (Cmp(y, x) < 0) {
		t.Error("Cmp(x,y) and Cmp(y,x) must have opposite signs")
	}
}

func TestNumericValueOfInteger(t *testing.T) {
	n := NewInteger(numeric.FromInt64(7))
	v, ok := NumericValueOf(n)
	if !ok || v.String() != "7" {
		t.Errorf("NumericValueOf(Integer(7)) = %v, %v; want 7, true", v, ok)
	}
	if !IsNumeric(n) {
		t.Error("Integer node should report IsNumeric")
	}
}

func TestResolveFollowsIndirect(t *testing.T) {
	x := NewSymbol("x", domain.Real)
	ind := &Indirect{Target: x}
	if Resolve(ind) != x {
		t.Error("Resolve should follow an Indirect to its target")
	}
	if Resolve(x) != x {
		t.Error("Resolve on a non-Indirect should return it unchanged")
	}
}

func TestSprintRendersSumAndPower(t *testing.T) {
	x := NewSymbol("x", domain.Real)
	s := NewSum([]Node{x, NewInteger(numeric.FromInt64(1))})
	out := Sprint(s)
	if out != "(x + 1)" {
		t.Errorf("Sprint(Sum(x,1)) = %q, want \"(x + 1)\"", out)
	}
	p := NewPower(x, NewInteger(numeric.FromInt64(2)))
	if Sprint(p) != "x^2" {
		t.Errorf("Sprint(Power(x,2)) = %q, want \"x^2\"", Sprint(p))
	}
}
