package poly

import (
	"math/big"

	"may/internal/numeric"
)

// maxHeuristicTries bounds spec.md §4.7's "up to MAX_TRY (~4) iterations".
const maxHeuristicTries = 4

// HeuristicGCD implements spec.md §4.7's Heuristic GCD: substitute a
// growing integer evaluation point for x, take the integer GCD of the
// two resulting big integers, and lift the result back to a polynomial
// by repeated symmetric division. Returns ok=false when every try fails
// to produce a candidate that divides both inputs exactly, signalling
// the caller to fall back to Sub-Resultant GCD.
func HeuristicGCD(a, b numPoly) (numPoly, bool) {
	if isZeroNP(a) {
		return b, true
	}
	if isZeroNP(b) {
		return a, true
	}

	ca, cb := contentNP(a), contentNP(b)
	content := numeric.GCD(ca, cb)
	pa := divideAllNP(a, ca)
	pb := divideAllNP(b, cb)

	m := maxAbsNP(pa, pb)
	xi := numeric.Add(nil, numeric.Mul(nil, numeric.FromInt64(2), m), numeric.FromInt64(2))

	for try := 0; try < maxHeuristicTries; try++ {
		axi := evalAtNP(pa, xi)
		bxi := evalAtNP(pb, xi)
		g := numeric.GCD(axi, bxi)
		if !g.IsZero() {
			cand := primpartNP(trimNP(liftSymmetric(g, xi)))
			if dividesExactlyNP(pa, cand) && dividesExactlyNP(pb, cand) {
				return scaleNP(cand, content), true
			}
		}
		xi = growEvalPoint(xi)
	}
	return nil, false
}

// liftSymmetric recovers the polynomial g_0 + g_1 x + ... whose
// evaluation at xi is g, via repeated symmetric-mod division
// (spec.md §4.7 step 4d).
func liftSymmetric(g, xi *numeric.Value) numPoly {
	var coeffs numPoly
	cur := g
	for !cur.IsZero() {
		gi := numeric.Smod(cur, xi)
		coeffs = append(coeffs, gi)
		diff := numeric.Sub(nil, cur, gi)
		q, _ := numeric.Div(nil, diff, xi)
		cur = q
	}
	if len(coeffs) == 0 {
		coeffs = numPoly{numeric.FromInt64(0)}
	}
	return coeffs
}

// growEvalPoint implements spec.md §4.7 step 4g's
// ξ ← ⌈ξ · ξ^(1/4) · 73794 / 27011⌉.
func growEvalPoint(xi *numeric.Value) *numeric.Value {
	xz, ok := xi.AsBigInt()
	if !ok {
		return numeric.Mul(nil, xi, numeric.FromInt64(4))
	}
	root := floorRoot4(xz)
	num := new(big.Int).Mul(xz, root)
	num.Mul(num, big.NewInt(73794))
	den := big.NewInt(27011)
	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	if r.Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}
	return numeric.FromBigInt(q)
}

// floorRoot4 computes floor(x^(1/4)) for a non-negative big.Int via a
// big.Float seed refined to the exact integer floor.
func floorRoot4(x *big.Int) *big.Int {
	if x.Sign() <= 0 {
		return big.NewInt(0)
	}
	prec := uint(x.BitLen()) + 64
	f := new(big.Float).SetPrec(prec).SetInt(x)
	s1 := new(big.Float).SetPrec(prec).Sqrt(f)
	s2 := new(big.Float).SetPrec(prec).Sqrt(s1)
	root, _ := s2.Int(nil)
	if root.Sign() == 0 {
		root = big.NewInt(1)
	}
	four := big.NewInt(4)
	for new(big.Int).Exp(root, four, nil).Cmp(x) > 0 {
		root.Sub(root, big.NewInt(1))
	}
	for {
		next := new(big.Int).Add(root, big.NewInt(1))
		if new(big.Int).Exp(next, four, nil).Cmp(x) <= 0 {
			root = next
		} else {
			break
		}
	}
	return root
}
