package poly

import (
	"testing"

	"may/internal/eval"
	"may/internal/kctx"
	"may/internal/node"
)

func TestKaratsubaMatchesSchoolbook(t *testing.T) {
	ctx := kctx.New()
	x, y := sym("x"), sym("y")
	vars := []node.Node{x, y}

	base := eval.Eval(ctx, node.NewSum([]node.Node{x, y, integer(1)}))
	a := Expand(ctx, node.NewPower(base, integer(4)))
	b := a

	pa := FromNode(ctx, a, vars)
	pb := FromNode(ctx, b, vars)

	viaKaratsuba := Karatsuba(pa, pb)
	viaSchoolbook := schoolbook(pa, pb)

	if node.Identical(viaKaratsuba.ToNode(ctx), viaSchoolbook.ToNode(ctx)) != 0 {
		t.Errorf("Karatsuba and schoolbook disagree:\n karatsuba=%s\n schoolbook=%s",
			node.Sprint(viaKaratsuba.ToNode(ctx)), node.Sprint(viaSchoolbook.ToNode(ctx)))
	}
}

func TestKaratsubaOfMonomials(t *testing.T) {
	ctx := kctx.New()
	x, y := sym("x"), sym("y")
	vars := []node.Node{x, y}

	a := eval.Eval(ctx, node.NewProduct([]node.Node{node.NewPower(x, integer(2)), y}))
	b := eval.Eval(ctx, node.NewProduct([]node.Node{x, node.NewPower(y, integer(2))}))

	pa := FromNode(ctx, a, vars)
	pb := FromNode(ctx, b, vars)
	got := Karatsuba(pa, pb).ToNode(ctx)

	want := eval.Eval(ctx, node.NewProduct([]node.Node{
		node.NewPower(x, integer(3)), node.NewPower(y, integer(3)),
	}))
	if node.Identical(got, want) != 0 {
		t.Errorf("x^2*y * x*y^2 = %s, want %s", node.Sprint(got), node.Sprint(want))
	}
}
