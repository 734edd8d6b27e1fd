package eval

import (
	"may/internal/errframe"
	"may/internal/kctx"
	"may/internal/node"
	"may/internal/numeric"
)

// evalBinary implements spec.md §3/§4.4's BinaryFunc kinds: gcd and mod
// fold numerically when both operands are Integer, diff is handled by
// the dedicated Diff node (Eval's *node.Diff case) rather than here, and
// range construction is likewise handled directly by Eval's *node.Range
// case -- BGcd/BMod are the two kinds that actually reach evalBinary with
// held symbolic semantics when operands aren't both numeric.
func evalBinary(ctx *kctx.Context, t *node.BinaryFunc) node.Node {
	a := Eval(ctx, t.A)
	b := Eval(ctx, t.B)

	av, aOk := node.NumericValueOf(a)
	bv, bOk := node.NumericValueOf(b)

	switch t.FKind {
	case node.BGcd:
		if aOk && bOk && av.Kind() == numeric.KindInteger && bv.Kind() == numeric.KindInteger {
			return track(ctx, node.NewInteger(numeric.GCD(av, bv)), true)
		}
		if isZero(a) {
			return absNode(ctx, b)
		}
		if isZero(b) {
			return absNode(ctx, a)
		}
	case node.BMod:
		if aOk && bOk && av.Kind() == numeric.KindInteger && bv.Kind() == numeric.KindInteger {
			if bv.IsZero() {
				kerr := errframe.New(errframe.CannotBeConverted, "mod by zero")
				ctx.Frame.Throw(kerr)
				panic(kerr)
			}
			return track(ctx, node.NewInteger(numeric.Mod(av, bv)), true)
		}
	}

	return track(ctx, node.NewBinaryFunc(t.FKind, a, b), false)
}

func absNode(ctx *kctx.Context, n node.Node) node.Node {
	if v, ok := node.NumericValueOf(n); ok {
		if numeric.Cmp(v, numeric.FromInt64(0)) < 0 {
			return track(ctx, numericNode(numeric.Neg(nil, v)), true)
		}
		return n
	}
	return evalUnary(ctx, node.NewUnaryFunc(node.UAbs, n))
}
