package poly

import (
	"testing"

	"may/internal/numeric"
)

func np(coeffs ...int64) numPoly {
	out := make(numPoly, len(coeffs))
	for i, c := range coeffs {
		out[i] = numeric.FromInt64(c)
	}
	return trimNP(out)
}

func TestHeuristicGCDOfKnownFactors(t *testing.T) {
	// a = (x-1)(x+2) = x^2+x-2, b = (x-1)(x+3) = x^2+2x-3
	a := np(-2, 1, 1)
	b := np(-3, 2, 1)
	g, ok := HeuristicGCD(a, b)
	if !ok {
		t.Fatal("HeuristicGCD failed to find a GCD for two known-common-factor polynomials")
	}
	if !dividesExactlyNP(a, g) || !dividesExactlyNP(b, g) {
		t.Errorf("gcd %v does not divide both inputs", g)
	}
	if degNP(trimNP(g)) != 1 {
		t.Errorf("gcd((x-1)(x+2), (x-1)(x+3)) should have degree 1, got degree %d", degNP(g))
	}
}

func TestSubResultantGCDOfKnownFactors(t *testing.T) {
	a := np(-2, 1, 1) // (x-1)(x+2)
	b := np(-3, 2, 1) // (x-1)(x+3)
	g := SubResultantGCD(a, b)
	if !dividesExactlyNP(a, g) || !dividesExactlyNP(b, g) {
		t.Errorf("sub-resultant gcd %v does not divide both inputs", g)
	}
}

func TestSubResultantGCDOfCoprimePolys(t *testing.T) {
	a := np(1, 1) // x+1
	b := np(2, 1) // x+2
	g := SubResultantGCD(a, b)
	if degNP(trimNP(g)) > 0 {
		t.Errorf("gcd(x+1, x+2) should be a nonzero constant, got degree %d", degNP(g))
	}
}

func TestDivModNPRoundTrips(t *testing.T) {
	a := np(-2, 1, 1) // x^2+x-2
	b := np(-1, 1)    // x-1
	q, r, ok := divModNP(a, b)
	if !ok || !isZeroNP(r) {
		t.Fatalf("x^2+x-2 should divide exactly by x-1, got rem %v ok=%v", r, ok)
	}
	// quotient should be x+2
	if len(q) != 2 || q[0].String() != "2" || q[1].String() != "1" {
		t.Errorf("(x^2+x-2)/(x-1) = %v, want [2 1] (x+2)", q)
	}
}

func TestGrowEvalPointIncreases(t *testing.T) {
	// growEvalPoint should never panic and should produce a strictly
	// larger evaluation point (spec's heuristic-GCD retry growth).
	xi := numeric.FromInt64(1000003)
	next := growEvalPoint(xi)
	if numeric.Cmp(next, xi) <= 0 {
		t.Errorf("growEvalPoint(%s) = %s, want a strictly larger value", xi.String(), next.String())
	}
}
