package may

import (
	"testing"

	"may/internal/errframe"
)

func TestEvalCombinesLikeTerms(t *testing.T) {
	k := New()
	x := Sym("x", Real)
	got := k.Eval(Sum(x, x, Int(2)))
	if Sprint(got) != "(2 + 2*x)" {
		t.Errorf("x+x+2 = %s, want (2 + 2*x)", Sprint(got))
	}
}

func TestExpandBinomial(t *testing.T) {
	k := New()
	x, y := Sym("x", Real), Sym("y", Real)
	base := k.Eval(Sum(x, y))
	got := k.Expand(Power(base, Int(2)))
	if _, ok := k.Divexact(got, base); !ok {
		t.Errorf("(x+y)^2 should be divisible by (x+y), got %s", Sprint(got))
	}
}

func TestGCDOfConstants(t *testing.T) {
	k := New()
	g := k.GCD(Int(12), Int(18))
	if Sprint(g) != "6" {
		t.Errorf("gcd(12,18) = %s, want 6", Sprint(g))
	}
}

func TestKaratsubaMatchesExpandProduct(t *testing.T) {
	k := New()
	x, y := Sym("x", Real), Sym("y", Real)
	base := k.Eval(Sum(x, y, Int(1)))
	a := k.Expand(Power(base, Int(2)))
	viaKaratsuba := k.Karatsuba(a, a, []Node{x, y})
	viaExpand := k.Expand(Product(a, a))
	if Identical(viaKaratsuba, viaExpand) != 0 {
		t.Errorf("Karatsuba(a,a) = %s, Expand(a*a) = %s; should agree",
			Sprint(viaKaratsuba), Sprint(viaExpand))
	}
}

func TestArenaMarkKeepRoundTrip(t *testing.T) {
	k := New()
	x := Sym("x", Real)
	m := k.Mark()
	root := k.Eval(Sum(x, Int(1)))
	k.Eval(Sum(x, Int(999))) // discarded garbage
	kept := k.Keep(m, root)
	if Identical(kept, root) != 0 {
		t.Error("Keep should return a node Identical to the root it was given")
	}
}

func TestCatchThrowRestoresConfig(t *testing.T) {
	k := New()
	k.SetPrecision(53)
	var caught *errframe.KernelError
	k.Catch(func(err *errframe.KernelError) { caught = err })
	k.SetPrecision(200)
	// Throw should restore precision to whatever was active at Catch time.
	k.Throw(errframe.New(InvalidToken, "test error"))
	if caught == nil || caught.Kind != InvalidToken {
		t.Fatal("Catch handler should have been invoked with the thrown error")
	}
	if k.Precision() != 53 {
		t.Errorf("Precision() after Throw = %d, want 53 (restored)", k.Precision())
	}
}

func TestDomainPredicates(t *testing.T) {
	if !IsInteger(IntPos) {
		t.Error("IntPos should imply Integer")
	}
	if !IsPositive(IntPos) {
		t.Error("IntPos should imply positive")
	}
}
