package poly

import (
	"may/internal/eval"
	"may/internal/kctx"
	"may/internal/node"
	"may/internal/numeric"
)

// Partfrac implements spec.md §6's partfrac(numer, denom, x): decompose
// numer/denom into a polynomial part plus a sum of proper fractions,
// one per pairwise-coprime factor of denom.
//
// Scope decision (DESIGN.md): true partial fractions need an
// irreducible-factorization engine this kernel does not build -- spec.md
// names partfrac only in the external-interface list, with no algorithm
// section of its own. This implementation requires the caller to supply
// denom already split into its coprime factors, typically as a bare
// Product (e.g. partfrac(1, (x-1)*(x+2), x)), and performs the classical
// CRT-style splitting via extendedGCDUniv over those factors. A denom
// with a single irreducible (non-Product) factor, or factors that are
// not pairwise coprime, is returned unsplit as numer/denom.
func Partfrac(ctx *kctx.Context, numer, denom, x node.Node) node.Node {
	numer = eval.Eval(ctx, numer)
	denom = eval.Eval(ctx, denom)

	factors := productFactors(ctx, denom)
	if len(factors) < 2 {
		return mkRatio(ctx, numer, denom)
	}

	ds, ok := toNumPolys(ctx, factors, x)
	if !ok || !pairwiseCoprime(ds) {
		return mkRatio(ctx, numer, denom)
	}

	un := ExtractCoeff(ctx, numer, x)
	n, ok := fromUniv(un)
	if !ok {
		return mkRatio(ctx, numer, denom)
	}

	whole, residues, ok := splitPartfrac(n, ds)
	if !ok {
		return mkRatio(ctx, numer, denom)
	}

	var terms []node.Node
	if len(whole) > 0 {
		terms = append(terms, toUniv(whole, x).ToNode(ctx))
	}
	for i, r := range residues {
		if isZeroNP(r) {
			continue
		}
		terms = append(terms, mkRatio(ctx, toUniv(r, x).ToNode(ctx), factors[i]))
	}
	if len(terms) == 0 {
		return eval.Eval(ctx, node.NewInteger(numeric.FromInt64(0)))
	}
	if len(terms) == 1 {
		return terms[0]
	}
	return eval.Eval(ctx, node.NewSum(terms))
}

func productFactors(ctx *kctx.Context, n node.Node) []node.Node {
	n = eval.Eval(ctx, n)
	switch t := n.(type) {
	case *node.Product:
		return append([]node.Node(nil), t.Args...)
	case *node.Factor:
		return []node.Node{t.Num, t.Term}
	default:
		return []node.Node{n}
	}
}

func toNumPolys(ctx *kctx.Context, factors []node.Node, x node.Node) ([]numPoly, bool) {
	out := make([]numPoly, len(factors))
	for i, f := range factors {
		p, ok := fromUniv(ExtractCoeff(ctx, f, x))
		if !ok || len(p) == 0 {
			return nil, false
		}
		out[i] = p
	}
	return out, true
}

func pairwiseCoprime(ps []numPoly) bool {
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			g, _, _ := extendedGCDUniv(ps[i], ps[j])
			if degNP(g) > 0 {
				return false
			}
		}
	}
	return true
}

// splitPartfrac decomposes n / prod(ds) (ds pairwise coprime) into a
// polynomial quotient plus one residue numerator per denominator: for
// each di, bi = rem * inverse(D/di mod di) mod di.
func splitPartfrac(n numPoly, ds []numPoly) (whole numPoly, residues []numPoly, ok bool) {
	denom := numPoly{numeric.FromInt64(1)}
	for _, d := range ds {
		denom = mulNP(denom, d)
	}
	whole, rem, divOk := divModNP(n, denom)
	if !divOk {
		return nil, nil, false
	}

	residues = make([]numPoly, len(ds))
	for i, di := range ds {
		other := numPoly{numeric.FromInt64(1)}
		for j, d := range ds {
			if j != i {
				other = mulNP(other, d)
			}
		}
		g, _, t := extendedGCDUniv(di, other)
		if len(g) == 0 || degNP(g) > 0 {
			return nil, nil, false
		}
		tNorm := scaleNP(t, reciprocal(g[0]))
		_, bi, divOk := divModNP(mulNP(rem, tNorm), di)
		if !divOk {
			return nil, nil, false
		}
		residues[i] = bi
	}
	return whole, residues, true
}

func reciprocal(v *numeric.Value) *numeric.Value {
	r, _ := numeric.Div(nil, numeric.FromInt64(1), v)
	return r
}

// extendedGCDUniv runs the polynomial extended Euclidean algorithm over
// the numeric field, returning g, s, t with s*a + t*b = g.
func extendedGCDUniv(a, b numPoly) (g, s, t numPoly) {
	oldR, r := trimNP(append(numPoly(nil), a...)), trimNP(append(numPoly(nil), b...))
	oldS, sN := numPoly{numeric.FromInt64(1)}, numPoly{}
	oldT, tN := numPoly{}, numPoly{numeric.FromInt64(1)}
	for !isZeroNP(r) {
		q, rem, ok := divModNP(oldR, r)
		if !ok {
			break
		}
		oldR, r = r, rem
		oldS, sN = sN, subNP(oldS, mulNP(q, sN))
		oldT, tN = tN, subNP(oldT, mulNP(q, tN))
	}
	return oldR, oldS, oldT
}

// mkRatio builds numer/denom, preferring an exact quotient when one
// exists and otherwise a Power(-1) factor.
func mkRatio(ctx *kctx.Context, numer, denom node.Node) node.Node {
	if q, ok := Divexact(ctx, numer, denom); ok {
		return q
	}
	inv := eval.Eval(ctx, node.NewPower(denom, node.NewInteger(numeric.FromInt64(-1))))
	return eval.Eval(ctx, node.NewProduct([]node.Node{numer, inv}))
}
