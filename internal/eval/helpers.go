// Package eval implements the canonical-form evaluator of spec.md §4.4
// (C5), built on top of internal/node's constructors and internal/numeric's
// field operations. Eval is deterministic: Eval(Eval(x)) == Eval(x)
// structurally, and Identical(Eval(x), Eval(y)) == 0 iff x and y denote
// the same canonical expression (spec.md §8 properties 1-2).
package eval

import (
	"may/internal/errframe"
	"may/internal/kctx"
	"may/internal/node"
	"may/internal/numeric"
)

func zeroNode() node.Node  { return node.NewInteger(numeric.FromInt64(0)) }
func oneNode() node.Node   { return node.NewInteger(numeric.FromInt64(1)) }
func negOneNode() node.Node { return node.NewInteger(numeric.FromInt64(-1)) }

func isZero(n node.Node) bool {
	v, ok := node.NumericValueOf(node.Resolve(n))
	return ok && v.IsZero()
}

func isOne(n node.Node) bool {
	v, ok := node.NumericValueOf(node.Resolve(n))
	return ok && v.IsOne()
}

// splitFactor decomposes a term into (coefficient, base) the way
// spec.md §4.4.2 step 2 describes: "If the term is already Factor(c,t),
// take it as-is; otherwise use (1, term)."
func splitFactor(n node.Node) (coeff, base node.Node) {
	n = node.Resolve(n)
	if f, ok := n.(*node.Factor); ok {
		return f.Num, f.Term
	}
	return oneNode(), n
}

// track seals a freshly-assembled canonical node through the arena and
// marks it evaluated; isNum reports whether the result is purely
// numeric (flags.num). A tracking failure (arena exhaustion) is raised
// through the error frame per spec.md §4.9/§7: Throw runs the installed
// handler (by default a panic recovered at the outermost Eval caller via
// kctx/errframe's documented convention), so callers of Eval that have
// not installed a handler will see the kernel abort with a diagnostic.
func track(ctx *kctx.Context, n node.Node, isNum bool) node.Node {
	node.MarkEvaluated(n, isNum)
	out, err := ctx.Arena.Track(n)
	if err != nil {
		kerr := err.(*errframe.KernelError)
		ctx.Frame.Throw(kerr)
		panic(kerr)
	}
	return out
}
