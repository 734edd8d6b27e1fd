package poly

import (
	"testing"

	"may/internal/eval"
	"may/internal/kctx"
	"may/internal/node"
)

func TestDivexactNumericScalar(t *testing.T) {
	ctx := kctx.New()
	q, ok := Divexact(ctx, integer(10), integer(5))
	if !ok || node.Sprint(q) != "2" {
		t.Fatalf("10/5 = %v, %s; want true, 2", ok, node.Sprint(q))
	}
}

func TestDivexactFailsOnInexactScalar(t *testing.T) {
	ctx := kctx.New()
	if _, ok := Divexact(ctx, integer(7), integer(2)); ok {
		t.Error("7/2 should not divide exactly over the integers")
	}
}

func TestDivexactMonomial(t *testing.T) {
	ctx := kctx.New()
	x, y := sym("x"), sym("y")
	num := eval.Eval(ctx, node.NewProduct([]node.Node{node.NewPower(x, integer(3)), y}))
	den := eval.Eval(ctx, node.NewPower(x, integer(2)))
	q, ok := Divexact(ctx, num, den)
	if !ok {
		t.Fatal("x^3*y / x^2 should divide exactly")
	}
	want := eval.Eval(ctx, node.NewProduct([]node.Node{x, y}))
	if node.Identical(q, want) != 0 {
		t.Errorf("x^3*y / x^2 = %s, want %s", node.Sprint(q), node.Sprint(want))
	}
}

func TestDivexactSumByCommonVariable(t *testing.T) {
	ctx := kctx.New()
	x := sym("x")
	// (x^2 - 1) / (x - 1) = x + 1
	num := eval.Eval(ctx, node.NewSum([]node.Node{
		node.NewPower(x, integer(2)),
		integer(-1),
	}))
	den := eval.Eval(ctx, node.NewSum([]node.Node{x, integer(-1)}))
	q, ok := Divexact(ctx, num, den)
	if !ok {
		t.Fatal("x^2-1 should divide exactly by x-1")
	}
	want := eval.Eval(ctx, node.NewSum([]node.Node{x, integer(1)}))
	if node.Identical(q, want) != 0 {
		t.Errorf("(x^2-1)/(x-1) = %s, want %s", node.Sprint(q), node.Sprint(want))
	}
}

func TestDivexactFailsOnNonDivisor(t *testing.T) {
	ctx := kctx.New()
	x := sym("x")
	num := eval.Eval(ctx, node.NewSum([]node.Node{node.NewPower(x, integer(2)), integer(1)}))
	den := eval.Eval(ctx, node.NewSum([]node.Node{x, integer(-1)}))
	if _, ok := Divexact(ctx, num, den); ok {
		t.Error("x^2+1 should not divide exactly by x-1")
	}
}

func TestDivexactSelfIsOne(t *testing.T) {
	ctx := kctx.New()
	x := sym("x")
	e := eval.Eval(ctx, node.NewSum([]node.Node{x, integer(3)}))
	q, ok := Divexact(ctx, e, e)
	if !ok || node.Sprint(q) != "1" {
		t.Errorf("a/a = %v, %s; want true, 1", ok, node.Sprint(q))
	}
}
