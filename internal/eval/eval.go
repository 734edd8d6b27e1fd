package eval

import (
	"may/internal/errframe"
	"may/internal/kctx"
	"may/internal/node"
	"may/internal/numeric"
)

// Eval canonicalises n (spec.md §4.4). If n already carries flags.eval
// it is returned unchanged (the memoisation rule of §4.4.1); this
// package does not rewrite the caller's original node to an Indirect in
// place (Go values have no addressable identity to rewrite through) —
// callers that want the O(1)-on-second-evaluation behaviour should keep
// the returned Node and re-use it rather than re-Eval the original
// unevaluated tree.
func Eval(ctx *kctx.Context, n node.Node) node.Node {
	n = node.Resolve(n)
	if n.Header().Flags().Has(node.FlagEval) {
		return n
	}
	switch t := n.(type) {
	case *node.Sum:
		return evalSum(ctx, t.Args)
	case *node.Factor:
		return evalProduct(ctx, []node.Node{t.Num, t.Term})
	case *node.Product:
		return evalProduct(ctx, t.Args)
	case *node.Power:
		return evalPower(ctx, t.Base, t.Exp)
	case *node.UnaryFunc:
		return evalUnary(ctx, t)
	case *node.BinaryFunc:
		return evalBinary(ctx, t)
	case *node.Func:
		arg := Eval(ctx, t.Arg)
		return track(ctx, node.NewFunc(t.Name, arg), false)
	case *node.Diff:
		f := Eval(ctx, t.F)
		specs := make([]node.DiffSpec, len(t.Specs))
		for i, s := range t.Specs {
			specs[i] = node.DiffSpec{Var: Eval(ctx, s.Var), Order: s.Order}
		}
		return track(ctx, node.NewDiff(f, specs), false)
	case *node.Range:
		lo, hi := Eval(ctx, t.Lo), Eval(ctx, t.Hi)
		lv, lok := node.NumericValueOf(lo)
		hv, hok := node.NumericValueOf(hi)
		if lok && hok && numeric.Cmp(lv, hv) > 0 {
			lo, hi = hi, lo
		}
		return track(ctx, node.NewRange(lo, hi), false)
	case *node.List:
		elems := make([]node.Node, len(t.Elems))
		for i, e := range t.Elems {
			elems[i] = Eval(ctx, e)
		}
		return track(ctx, node.NewList(elems), false)
	case *node.Matrix:
		elems := make([]node.Node, len(t.Elems))
		for i, e := range t.Elems {
			elems[i] = Eval(ctx, e)
		}
		return track(ctx, node.NewMatrix(t.Rows, t.Cols, elems), false)
	case *node.Extension:
		return evalExtension(ctx, t)
	default:
		// Leaf kinds (Integer/Rational/Float/Complex/Symbol/Data) are
		// always already flags.eval and handled by the check above;
		// reaching here means an extension or unregistered tag slipped
		// through (spec.md §7 InvalidToken).
		kerr := errframe.New(errframe.InvalidToken, "unevaluable node kind %v", n.Kind())
		ctx.Frame.Throw(kerr)
		panic(kerr)
	}
}

func evalExtension(ctx *kctx.Context, t *node.Extension) node.Node {
	args := make([]node.Node, len(t.Args))
	for i, a := range t.Args {
		args[i] = Eval(ctx, a)
	}
	vt, ok := ctx.Registry.Lookup(t.ID)
	if !ok {
		kerr := errframe.New(errframe.InvalidToken, "extension %s is not registered", t.ID)
		ctx.Frame.Throw(kerr)
		panic(kerr)
	}
	if vt.Eval != nil {
		if result, done := vt.Eval(args); done {
			return Eval(ctx, result)
		}
	}
	return track(ctx, node.NewExtension(t.ID, t.ExtKind, args), false)
}
