package poly

import (
	"testing"

	"may/internal/eval"
	"may/internal/kctx"
	"may/internal/node"
)

func TestPartfracOfCoprimeLinearFactors(t *testing.T) {
	ctx := kctx.New()
	x := sym("x")
	d1 := eval.Eval(ctx, node.NewSum([]node.Node{x, integer(-1)})) // x-1
	d2 := eval.Eval(ctx, node.NewSum([]node.Node{x, integer(2)}))  // x+2
	denom := eval.Eval(ctx, node.NewProduct([]node.Node{d1, d2}))

	result := Partfrac(ctx, integer(1), denom, x)

	// Reconstruct: evaluate the partial-fraction sum at a point and
	// compare against 1/((x-1)(x+2)) at that same point -- x = 5.
	atX := integer(5)
	want := eval.Eval(ctx, node.NewPower(eval.Eval(ctx, node.NewProduct([]node.Node{d1, d2})), integer(-1)))
	wantAt := substituteRatio(ctx, want, x, atX)
	gotAt := substituteRatio(ctx, result, x, atX)
	if node.Identical(wantAt, gotAt) != 0 {
		t.Errorf("partfrac reconstruction mismatch at x=5: got %s, want %s",
			node.Sprint(gotAt), node.Sprint(wantAt))
	}
}

// substituteRatio evaluates a sum of terms of the form c*(x-a)^k (k any
// integer) at x=v, by rebuilding each term with x replaced.
func substituteRatio(ctx *kctx.Context, n, x, v node.Node) node.Node {
	replaced := replaceVar(n, x, v)
	return eval.Eval(ctx, replaced)
}

func replaceVar(n, x, v node.Node) node.Node {
	n = node.Resolve(n)
	if node.Identical(n, x) == 0 {
		return v
	}
	children := n.Children()
	if len(children) == 0 {
		return n
	}
	switch t := n.(type) {
	case *node.Sum:
		args := make([]node.Node, len(t.Args))
		for i, a := range t.Args {
			args[i] = replaceVar(a, x, v)
		}
		return node.NewSum(args)
	case *node.Product:
		args := make([]node.Node, len(t.Args))
		for i, a := range t.Args {
			args[i] = replaceVar(a, x, v)
		}
		return node.NewProduct(args)
	case *node.Factor:
		return node.NewFactor(replaceVar(t.Num, x, v), replaceVar(t.Term, x, v))
	case *node.Power:
		return node.NewPower(replaceVar(t.Base, x, v), replaceVar(t.Exp, x, v))
	default:
		return n
	}
}

func TestPartfracLeavesUnsplitDenomAlone(t *testing.T) {
	ctx := kctx.New()
	x := sym("x")
	denom := eval.Eval(ctx, node.NewSum([]node.Node{node.NewPower(x, integer(2)), integer(1)}))
	result := Partfrac(ctx, integer(1), denom, x)
	if result == nil {
		t.Fatal("Partfrac on an irreducible denominator should still return a node")
	}
}
