package poly

import (
	"testing"

	"may/internal/eval"
	"may/internal/kctx"
	"may/internal/node"
	"may/internal/numeric"
)

func TestGCDFindsSharedLinearFactor(t *testing.T) {
	ctx := kctx.New()
	x := sym("x")
	a := eval.Eval(ctx, node.NewSum([]node.Node{node.NewPower(x, integer(2)), integer(-1)}))   // x^2-1
	b := eval.Eval(ctx, node.NewSum([]node.Node{node.NewPower(x, integer(2)), node.NewFactor(integer(2), x), integer(1)})) // x^2+2x+1
	g := GCD(ctx, []node.Node{a, b})
	// gcd(x^2-1, (x+1)^2) = x+1 (up to sign)
	quot, ok := Divexact(ctx, g, eval.Eval(ctx, node.NewSum([]node.Node{x, integer(1)})))
	if !ok {
		t.Fatalf("gcd(x^2-1, x^2+2x+1) = %s should be divisible by x+1", node.Sprint(g))
	}
	if qv, isNum := node.NumericValueOf(quot); !isNum || numeric.Cmp(qv, numeric.FromInt64(0)) == 0 {
		t.Errorf("quotient of gcd by (x+1) should be a nonzero constant, got %s", node.Sprint(quot))
	}
}

func TestGCDOfIntegerConstants(t *testing.T) {
	ctx := kctx.New()
	g := GCD(ctx, []node.Node{integer(12), integer(18)})
	if node.Sprint(g) != "6" {
		t.Errorf("gcd(12,18) = %s, want 6", node.Sprint(g))
	}
}

func TestGCDSingleInputIsItself(t *testing.T) {
	ctx := kctx.New()
	x := sym("x")
	a := eval.Eval(ctx, node.NewSum([]node.Node{x, integer(5)}))
	g := GCD(ctx, []node.Node{a})
	if node.Identical(g, a) != 0 {
		t.Errorf("gcd of a single input should be itself: %s vs %s", node.Sprint(g), node.Sprint(a))
	}
}

func TestGCDDividesBothInputs(t *testing.T) {
	ctx := kctx.New()
	x := sym("x")
	a := eval.Eval(ctx, node.NewProduct([]node.Node{
		node.NewSum([]node.Node{x, integer(1)}),
		node.NewSum([]node.Node{x, integer(2)}),
	}))
	b := eval.Eval(ctx, node.NewProduct([]node.Node{
		node.NewSum([]node.Node{x, integer(1)}),
		node.NewSum([]node.Node{x, integer(3)}),
	}))
	aExp := Expand(ctx, a)
	bExp := Expand(ctx, b)
	g := GCD(ctx, []node.Node{aExp, bExp})
	if _, ok := Divexact(ctx, aExp, g); !ok {
		t.Errorf("gcd %s should divide a = %s", node.Sprint(g), node.Sprint(aExp))
	}
	if _, ok := Divexact(ctx, bExp, g); !ok {
		t.Errorf("gcd %s should divide b = %s", node.Sprint(g), node.Sprint(bExp))
	}
}

func TestGCDOfThreeInputsExercisesOddFoldLevel(t *testing.T) {
	ctx := kctx.New()
	x := sym("x")
	common := node.NewSum([]node.Node{x, integer(1)}) // x+1
	a := Expand(ctx, eval.Eval(ctx, node.NewProduct([]node.Node{common, node.NewSum([]node.Node{x, integer(2)})})))
	b := Expand(ctx, eval.Eval(ctx, node.NewProduct([]node.Node{common, node.NewSum([]node.Node{x, integer(3)})})))
	c := Expand(ctx, eval.Eval(ctx, node.NewProduct([]node.Node{common, node.NewSum([]node.Node{x, integer(4)})})))
	g := GCD(ctx, []node.Node{a, b, c})
	for _, in := range []node.Node{a, b, c} {
		if _, ok := Divexact(ctx, in, g); !ok {
			t.Errorf("gcd %s should divide %s", node.Sprint(g), node.Sprint(in))
		}
	}
}
