package eval

import (
	"math"
	"math/big"

	"may/internal/kctx"
	"may/internal/node"
	"may/internal/numeric"
)

// evalUnary implements spec.md §4.4.5: sign/parity extraction, the
// inverse-function cancellation pairs, and numeric folding.
func evalUnary(ctx *kctx.Context, t *node.UnaryFunc) node.Node {
	arg := Eval(ctx, t.Arg)

	if neg, ok := splitSign(arg); ok {
		switch {
		case t.FKind.Even():
			return evalUnary(ctx, node.NewUnaryFunc(t.FKind, neg))
		case t.FKind.Odd():
			inner := evalUnary(ctx, node.NewUnaryFunc(t.FKind, neg))
			return evalProduct(ctx, []node.Node{negOneNode(), inner})
		}
	}

	if v, ok := node.NumericValueOf(arg); ok {
		if folded, ok := foldUnaryNumeric(t.FKind, v); ok {
			return track(ctx, folded, true)
		}
	}

	if inner, ok := node.Resolve(arg).(*node.UnaryFunc); ok {
		if result, ok := cancelUnaryPair(t.FKind, inner); ok {
			return result
		}
	}

	return track(ctx, node.NewUnaryFunc(t.FKind, arg), false)
}

// splitSign extracts -1 from a numeric-leading Factor or a bare negative
// numeric, returning the negated (now positive-leading) node, used by
// the even/odd parity rule of spec.md §4.4.5 step 3 (cos(-x) = cos(x),
// sin(-x) = -sin(x)).
func splitSign(n node.Node) (node.Node, bool) {
	n = node.Resolve(n)
	if v, ok := node.NumericValueOf(n); ok {
		if numeric.Cmp(v, numeric.FromInt64(0)) < 0 {
			return numericNode(numeric.Neg(nil, v)), true
		}
		return nil, false
	}
	if f, ok := n.(*node.Factor); ok {
		if v, ok := node.NumericValueOf(f.Num); ok && numeric.Cmp(v, numeric.FromInt64(0)) < 0 {
			return node.NewFactor(numericNode(numeric.Neg(nil, v)), f.Term), true
		}
	}
	return nil, false
}

// cancelUnaryPair implements the exp/log, trig/inverse-trig cancellation
// rules of spec.md §4.4.5: f(g(x)) = x for inverse pairs (g,f), subject
// to the principal-value domain each pair is valid on (taken as
// unconditional here, matching the teacher's eager-simplification style
// rather than threading a branch-cut side condition through every call).
func cancelUnaryPair(outer node.UnaryKind, inner *node.UnaryFunc) (node.Node, bool) {
	pairs := map[node.UnaryKind]node.UnaryKind{
		node.UExp:   node.ULog,
		node.ULog:   node.UExp,
		node.USin:   node.UAsin,
		node.UAsin:  node.USin,
		node.UCos:   node.UAcos,
		node.UAcos:  node.UCos,
		node.UTan:   node.UAtan,
		node.UAtan:  node.UTan,
		node.USinh:  node.UAsinh,
		node.UAsinh: node.USinh,
		node.UCosh:  node.UAcosh,
		node.UAcosh: node.UCosh,
		node.UTanh:  node.UAtanh,
		node.UAtanh: node.UTanh,
	}
	if want, ok := pairs[outer]; ok && inner.FKind == want {
		return inner.Arg, true
	}
	return nil, false
}

// foldUnaryNumeric folds exact special values and, for Float arguments,
// an approximate float64 evaluation (documented precision trade-off
// consistent with numeric.PowReal's use elsewhere in this package).
func foldUnaryNumeric(k node.UnaryKind, v *numeric.Value) (node.Node, bool) {
	zero := numeric.FromInt64(0)
	one := numeric.FromInt64(1)
	switch k {
	case node.UExp:
		if v.IsZero() {
			return numericNode(one), true
		}
	case node.ULog:
		if v.IsOne() {
			return numericNode(zero), true
		}
	case node.USin, node.UTan, node.UAsin, node.UAtan, node.USinh, node.UTanh, node.UAsinh, node.UAtanh:
		if v.IsZero() {
			return numericNode(zero), true
		}
	case node.UCos, node.UCosh:
		if v.IsZero() {
			return numericNode(one), true
		}
	case node.UAbs:
		if numeric.Cmp(v, zero) < 0 {
			return numericNode(numeric.Neg(nil, v)), true
		}
		return numericNode(v), true
	case node.USign:
		switch {
		case v.IsZero():
			return numericNode(zero), true
		case numeric.Cmp(v, zero) < 0:
			return numericNode(numeric.FromInt64(-1)), true
		default:
			return numericNode(one), true
		}
	case node.UFloor:
		if z, ok := v.AsBigInt(); ok {
			return numericNode(numeric.FromBigInt(z)), true
		}
		if r, ok := v.AsBigRat(); ok {
			q := new(big.Int).Div(r.Num(), r.Denom())
			return numericNode(numeric.FromBigInt(q)), true
		}
	case node.UConj, node.UReal, node.UImag, node.UArgument:
		return foldComplexUnary(k, v)
	}
	if v.Kind() == numeric.KindFloat {
		if fn, ok := float64Fns[k]; ok {
			return numericNode(applyFloat64(v, fn)), true
		}
	}
	return nil, false
}

var float64Fns = map[node.UnaryKind]func(float64) float64{
	node.UExp: math.Exp, node.ULog: math.Log,
	node.USin: math.Sin, node.UCos: math.Cos, node.UTan: math.Tan,
	node.UAsin: math.Asin, node.UAcos: math.Acos, node.UAtan: math.Atan,
	node.USinh: math.Sinh, node.UCosh: math.Cosh, node.UTanh: math.Tanh,
	node.UAsinh: math.Asinh, node.UAcosh: math.Acosh, node.UAtanh: math.Atanh,
}

func applyFloat64(v *numeric.Value, fn func(float64) float64) *numeric.Value {
	f, _ := v.AsBigFloat()
	x, _ := f.Float64()
	return numeric.FromFloat64(fn(x), f.Prec())
}

func foldComplexUnary(k node.UnaryKind, v *numeric.Value) (node.Node, bool) {
	re, im, ok := v.ComplexParts()
	if !ok {
		re, im = v, numeric.FromInt64(0)
	}
	switch k {
	case node.UReal:
		return numericNode(re), true
	case node.UImag:
		return numericNode(im), true
	case node.UConj:
		return node.NewComplex(numericNode(re), numericNode(numeric.Neg(nil, im))), true
	case node.UArgument:
		ref, _ := re.AsBigFloat()
		imf, _ := im.AsBigFloat()
		rx, _ := ref.Float64()
		ix, _ := imf.Float64()
		return numericNode(numeric.FromFloat64(math.Atan2(ix, rx), ref.Prec())), true
	}
	return nil, false
}
