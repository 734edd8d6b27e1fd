package domain

import "testing"

func TestIntPosImpliesInteger(t *testing.T) {
	if !IsInteger(IntPos) {
		t.Error("IntPos should imply Integer")
	}
	if !IsPositive(IntPos) {
		t.Error("IntPos should imply positive")
	}
	if !IsNonzero(IntPos) {
		t.Error("IntPos should imply Nonzero")
	}
}

func TestIntegerImpliesRationalAndReal(t *testing.T) {
	if !IsRational(Integer) {
		t.Error("Integer should imply Rational")
	}
	if !IsReal(Integer) {
		t.Error("Integer should imply Real")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	once := Close(IntPos)
	twice := Close(once)
	if once != twice {
		t.Errorf("Close(Close(m)) = %v, want Close(m) = %v", twice, once)
	}
}

func TestRealDoesNotImplyInteger(t *testing.T) {
	if IsInteger(Real) {
		t.Error("a bare Real assumption should not imply Integer")
	}
}

func TestComplexIsTheUniversalSuperset(t *testing.T) {
	if !IsComplex(Integer) || !IsComplex(Rational) || !IsComplex(Real) {
		t.Error("every numeric assumption should imply Complex")
	}
}
