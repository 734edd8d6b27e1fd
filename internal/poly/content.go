package poly

import (
	"may/internal/eval"
	"may/internal/kctx"
	"may/internal/node"
	"may/internal/numeric"
)

// Content implements spec.md §4.6's content(x, var). When v is nil it is
// the integer content: the numeric GCD of every coefficient the Sum
// exposes (or the numeric value itself, for an already-numeric x).
// Otherwise it is the polynomial content in v: gather coefficients via
// ExtractCoeff, then GCD them (recursing into the remaining variables
// through GCD's own naive-content handling when a coefficient is itself
// non-numeric).
func Content(ctx *kctx.Context, x node.Node, v node.Node) node.Node {
	x = eval.Eval(ctx, x)
	if v == nil {
		if _, ok := node.NumericValueOf(x); ok {
			return x
		}
		return eval.Eval(ctx, numericNodeOf(integerContent(ctx, x)))
	}
	u := ExtractCoeff(ctx, x, v)
	if len(u.Coeffs) == 0 {
		return eval.Eval(ctx, node.NewInteger(numeric.FromInt64(0)))
	}
	g := u.Coeffs[0]
	for _, c := range u.Coeffs[1:] {
		g = GCD(ctx, []node.Node{g, c})
	}
	return g
}

// Primpart returns x divided by its content in v (the primitive part of
// spec.md's glossary). The sub-resultant GCD uses its own numPoly
// primpartNP, not this function.
func Primpart(ctx *kctx.Context, x node.Node, v node.Node) node.Node {
	c := Content(ctx, x, v)
	if isOneNode(c) {
		return x
	}
	q, ok := Divexact(ctx, x, c)
	if !ok {
		return x
	}
	return q
}

func integerContent(ctx *kctx.Context, x node.Node) *numeric.Value {
	if v, ok := node.NumericValueOf(x); ok {
		if v.Kind() == numeric.KindInteger {
			return absVal(v)
		}
		return numeric.FromInt64(1)
	}
	si := eval.NewSumIterator(ctx, x)
	var g *numeric.Value
	accumulate := func(n node.Node) {
		v, ok := node.NumericValueOf(n)
		if !ok || v.Kind() != numeric.KindInteger {
			g = numeric.FromInt64(1)
			return
		}
		if g == nil {
			g = absVal(v)
		} else if !g.IsOne() {
			g = numeric.GCD(g, v)
		}
	}
	if si.Leader != nil {
		accumulate(si.Leader)
	}
	for {
		coeff, _, ok := si.Next()
		if !ok {
			break
		}
		accumulate(coeff)
	}
	if g == nil {
		return numeric.FromInt64(1)
	}
	return g
}

func absVal(v *numeric.Value) *numeric.Value {
	if numeric.Cmp(v, numeric.FromInt64(0)) < 0 {
		return numeric.Neg(nil, v)
	}
	return v
}
