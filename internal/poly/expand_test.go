package poly

import (
	"testing"

	"github.com/kr/pretty"

	"may/internal/domain"
	"may/internal/eval"
	"may/internal/kctx"
	"may/internal/node"
	"may/internal/numeric"
)

func sym(name string) node.Node { return node.NewSymbol(name, domain.Real) }
func integer(v int64) node.Node { return node.NewInteger(numeric.FromInt64(v)) }

func TestExpandDistributesProductOverSum(t *testing.T) {
	ctx := kctx.New()
	x, y := sym("x"), sym("y")
	// (x+1)*(x+y) -> x^2 + x*y + x + y
	lhs := eval.Eval(ctx, node.NewSum([]node.Node{x, integer(1)}))
	rhs := eval.Eval(ctx, node.NewSum([]node.Node{x, y}))
	got := Expand(ctx, node.NewProduct([]node.Node{lhs, rhs}))

	vars := []node.Node{x, y}
	gp := FromNode(ctx, got, vars)
	if len(gp.Terms) != 4 {
		t.Fatalf("(x+1)(x+y) expanded to %d terms, want 4: %s\n%s",
			len(gp.Terms), node.Sprint(got), pretty.Sprint(gp.Terms))
	}
}

func TestExpandIsStableUnderRepetition(t *testing.T) {
	ctx := kctx.New()
	x, y := sym("x"), sym("y")
	base := eval.Eval(ctx, node.NewSum([]node.Node{x, y, integer(1)}))
	expr := node.NewPower(base, integer(3))
	once := Expand(ctx, expr)
	twice := Expand(ctx, once)
	if node.Identical(once, twice) != 0 {
		t.Errorf("Expand should be idempotent on an already-expanded form: %s vs %s",
			node.Sprint(once), node.Sprint(twice))
	}
}

func TestExpandBinomialSquare(t *testing.T) {
	ctx := kctx.New()
	x, y := sym("x"), sym("y")
	base := eval.Eval(ctx, node.NewSum([]node.Node{x, y}))
	got := Expand(ctx, node.NewPower(base, integer(2)))
	vars := []node.Node{x, y}
	p := FromNode(ctx, got, vars)
	if len(p.Terms) != 3 {
		t.Fatalf("(x+y)^2 expanded to %d terms, want 3 (x^2, 2xy, y^2): %s",
			len(p.Terms), node.Sprint(got))
	}
}
