package poly

import (
	"testing"

	"may/internal/eval"
	"may/internal/kctx"
	"may/internal/node"
)

func TestIntegerContentOfSum(t *testing.T) {
	ctx := kctx.New()
	x := sym("x")
	// 6x + 9 -> content 3
	e := eval.Eval(ctx, node.NewSum([]node.Node{node.NewFactor(integer(6), x), integer(9)}))
	c := Content(ctx, e, nil)
	if node.Sprint(c) != "3" {
		t.Errorf("content(6x+9) = %s, want 3", node.Sprint(c))
	}
}

func TestPrimpartRemovesContent(t *testing.T) {
	ctx := kctx.New()
	x := sym("x")
	e := eval.Eval(ctx, node.NewSum([]node.Node{node.NewFactor(integer(6), x), integer(9)}))
	p := Primpart(ctx, e, nil)
	want := eval.Eval(ctx, node.NewSum([]node.Node{node.NewFactor(integer(2), x), integer(3)}))
	if node.Identical(p, want) != 0 {
		t.Errorf("primpart(6x+9) = %s, want %s", node.Sprint(p), node.Sprint(want))
	}
}

func TestContentOfCoprimeTermsIsOne(t *testing.T) {
	ctx := kctx.New()
	x := sym("x")
	e := eval.Eval(ctx, node.NewSum([]node.Node{node.NewFactor(integer(5), x), integer(7)}))
	c := Content(ctx, e, nil)
	if node.Sprint(c) != "1" {
		t.Errorf("content(5x+7) = %s, want 1", node.Sprint(c))
	}
}
