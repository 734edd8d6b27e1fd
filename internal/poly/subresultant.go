package poly

import "may/internal/numeric"

// SubResultantGCD implements spec.md §4.7's Collins sub-resultant PRS
// algorithm over numeric-coefficient univariate polynomials, used as
// the fallback when Heuristic GCD fails to converge within its try
// budget.
func SubResultantGCD(a, b numPoly) numPoly {
	a = trimNP(append(numPoly(nil), a...))
	b = trimNP(append(numPoly(nil), b...))
	if isZeroNP(a) {
		return b
	}
	if isZeroNP(b) {
		return a
	}

	contentA, contentB := contentNP(a), contentNP(b)
	content := numeric.GCD(contentA, contentB)
	pa := divideAllNP(a, contentA)
	pb := divideAllNP(b, contentB)
	if degNP(pa) < degNP(pb) {
		pa, pb = pb, pa
	}

	g := numeric.FromInt64(1)
	h := numeric.FromInt64(1)

	for {
		if isZeroNP(pb) {
			return scaleNP(primpartNP(pa), content)
		}
		cb := leadNP(pb)
		d := degNP(pa) - degNP(pb)

		pseudoA := scaleNP(pa, powScalar(cb, d+1))
		_, r, ok := divModNP(pseudoA, pb)
		if !ok {
			return scaleNP(primpartNP(pa), content)
		}
		if isZeroNP(r) {
			return scaleNP(primpartNP(pb), content)
		}

		denom := numeric.Mul(nil, g, powScalar(h, d))
		nextB := divideAllNP(r, denom)

		pa, pb = pb, nextB
		g = cb
		num := powScalar(cb, d)
		den := powScalarSigned(h, d-1)
		h, _ = numeric.Div(nil, num, den)
	}
}

// powScalarSigned extends powScalar to negative exponents via the
// reciprocal, needed because Collins' h update (h := cb^d / h^(d-1))
// hits d-1 == -1 whenever a PRS step has d == 0.
func powScalarSigned(v *numeric.Value, n int) *numeric.Value {
	if n >= 0 {
		return powScalar(v, n)
	}
	inv, _ := numeric.Div(nil, numeric.FromInt64(1), v)
	return powScalar(inv, -n)
}
