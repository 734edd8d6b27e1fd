package poly

import (
	"may/internal/eval"
	"may/internal/kctx"
	"may/internal/node"
)

// karatsubaExpandThreshold is the operand-size product above which
// Expand reaches for Karatsuba instead of naive termwise distribution
// (spec.md §4.6: "multiplies Sums by Karatsuba when beneficial").
const karatsubaExpandThreshold = 256

// Expand implements spec.md §4.6's expand(x): canonical polynomial
// expansion, distributing Products over Sums recursively and marking
// the result flags.expand. Idempotent: Expand(Expand(x)) == Expand(x).
func Expand(ctx *kctx.Context, n node.Node) node.Node {
	out := expand(ctx, eval.Eval(ctx, n))
	node.MarkExpanded(out)
	return out
}

func expand(ctx *kctx.Context, n node.Node) node.Node {
	n = eval.Eval(ctx, n)
	if n.Header().Flags().Has(node.FlagExpand) {
		return n
	}
	switch t := n.(type) {
	case *node.Sum:
		args := make([]node.Node, len(t.Args))
		for i, a := range t.Args {
			args[i] = expand(ctx, a)
		}
		out := args[0]
		for _, a := range args[1:] {
			out = eval.Eval(ctx, node.NewSum([]node.Node{out, a}))
		}
		node.MarkExpanded(out)
		return out
	case *node.Factor:
		return distribute(ctx, expand(ctx, t.Num), expand(ctx, t.Term))
	case *node.Product:
		out := expand(ctx, t.Args[0])
		for _, a := range t.Args[1:] {
			out = distribute(ctx, out, expand(ctx, a))
		}
		return out
	case *node.Power:
		if z, ok := node.NumericValueOf(t.Exp); ok {
			if iv, isInt := z.AsBigInt(); isInt && iv.Sign() > 0 && iv.IsInt64() {
				base := expand(ctx, t.Base)
				out := base
				for i := int64(1); i < iv.Int64(); i++ {
					out = distribute(ctx, out, base)
				}
				return out
			}
		}
		out := eval.Eval(ctx, node.NewPower(expand(ctx, t.Base), t.Exp))
		node.MarkExpanded(out)
		return out
	default:
		node.MarkExpanded(n)
		return n
	}
}

// distribute multiplies two expanded nodes, distributing over any Sum
// operand, reaching for Karatsuba when both sides are large Sums over a
// shared variable list (spec.md §4.6, §4.8).
func distribute(ctx *kctx.Context, a, b node.Node) node.Node {
	as, aIsSum := a.(*node.Sum)
	bs, bIsSum := b.(*node.Sum)
	if aIsSum && bIsSum && len(as.Args)*len(bs.Args) >= karatsubaExpandThreshold {
		vars := Vars(a)
		for _, v := range Vars(b) {
			if varIndex(vars, v) < 0 {
				vars = append(vars, v)
			}
		}
		pa := FromNode(ctx, a, vars)
		pb := FromNode(ctx, b, vars)
		out := Karatsuba(pa, pb).ToNode(ctx)
		node.MarkExpanded(out)
		return out
	}
	if aIsSum {
		terms := make([]node.Node, len(as.Args))
		for i, ta := range as.Args {
			terms[i] = distribute(ctx, ta, b)
		}
		out := terms[0]
		for _, t := range terms[1:] {
			out = eval.Eval(ctx, node.NewSum([]node.Node{out, t}))
		}
		node.MarkExpanded(out)
		return out
	}
	if bIsSum {
		return distribute(ctx, b, a)
	}
	out := eval.Eval(ctx, node.NewProduct([]node.Node{a, b}))
	if _, ok := node.NumericValueOf(out); ok {
		node.MarkExpanded(out)
		return out
	}
	if p, ok := out.(*node.Product); ok {
		for _, arg := range p.Args {
			if s, isSum := node.Resolve(arg).(*node.Sum); isSum {
				return distribute(ctx, argsExcept(p.Args, arg), s)
			}
		}
	}
	node.MarkExpanded(out)
	return out
}

// argsExcept multiplies every arg of args other than except back
// together, used when NewProduct's own coalescing unexpectedly leaves a
// Sum factor alongside others (can happen when a numeric leader folds a
// Product down to a bare Factor(num, Product(...))).
func argsExcept(args []node.Node, except node.Node) node.Node {
	rest := make([]node.Node, 0, len(args)-1)
	for _, a := range args {
		if a != except {
			rest = append(rest, a)
		}
	}
	if len(rest) == 1 {
		return rest[0]
	}
	return node.NewProduct(rest)
}
