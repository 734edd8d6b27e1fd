package eval

import (
	"testing"

	"may/internal/domain"
	"may/internal/kctx"
	"may/internal/node"
	"may/internal/numeric"
)

func mustEval(t *testing.T, ctx *kctx.Context, n node.Node) node.Node {
	t.Helper()
	return Eval(ctx, n)
}

func TestEvalSumCombinesLikeTerms(t *testing.T) {
	ctx := kctx.New()
	x := node.NewSymbol("x", domain.Real)
	// x + x + 2 -> 2 + 2*x (numeric leader first)
	got := mustEval(t, ctx, node.NewSum([]node.Node{x, x, node.NewInteger(numeric.FromInt64(2))}))
	if node.Sprint(got) != "(2 + 2*x)" {
		t.Errorf("x+x+2 = %s, want (2 + 2*x)", node.Sprint(got))
	}
}

func TestEvalSumIsOrderInvariant(t *testing.T) {
	ctx := kctx.New()
	x := node.NewSymbol("x", domain.Real)
	y := node.NewSymbol("y", domain.Real)
	a := mustEval(t, ctx, node.NewSum([]node.Node{x, y, node.NewInteger(numeric.FromInt64(1))}))
	b := mustEval(t, ctx, node.NewSum([]node.Node{node.NewInteger(numeric.FromInt64(1)), y, x}))
	if node.Identical(a, b) != 0 {
		t.Errorf("Eval should be permutation-invariant: %s vs %s", node.Sprint(a), node.Sprint(b))
	}
}

func TestEvalProductFoldsExponents(t *testing.T) {
	ctx := kctx.New()
	x := node.NewSymbol("x", domain.Real)
	got := mustEval(t, ctx, node.NewProduct([]node.Node{x, x}))
	if node.Sprint(got) != "x^2" {
		t.Errorf("x*x = %s, want x^2", node.Sprint(got))
	}
}

func TestEvalIsIdempotent(t *testing.T) {
	ctx := kctx.New()
	x := node.NewSymbol("x", domain.Real)
	y := node.NewSymbol("y", domain.Real)
	expr := node.NewProduct([]node.Node{
		node.NewSum([]node.Node{x, y}),
		node.NewPower(x, node.NewInteger(numeric.FromInt64(2))),
	})
	once := mustEval(t, ctx, expr)
	twice := mustEval(t, ctx, once)
	if node.Identical(once, twice) != 0 {
		t.Errorf("Eval(Eval(e)) must equal Eval(e): %s vs %s", node.Sprint(once), node.Sprint(twice))
	}
}

func TestEvalFractionalPowerOnSymbolStaysUnevaluated(t *testing.T) {
	ctx := kctx.New()
	x := node.NewSymbol("x", domain.RealPos)
	half, _ := numeric.Div(nil, numeric.FromInt64(1), numeric.FromInt64(2))
	exp := numeric.Add(nil, numeric.FromInt64(1), half)
	got := mustEval(t, ctx, node.NewPower(x, node.NewRational(exp)))
	// a symbolic base has no root to extract, so the Power is left as is
	// (only numeric bases split their exponent into integer + remainder).
	if got.Kind() != node.KindPower {
		t.Errorf("x^(3/2) should stay a Power node, got %s", node.Sprint(got))
	}
}

func TestEvalNumericPowerExact(t *testing.T) {
	ctx := kctx.New()
	half, _ := numeric.Div(nil, numeric.FromInt64(1), numeric.FromInt64(2))
	exp := numeric.Add(nil, numeric.FromInt64(1), half)
	got := mustEval(t, ctx, node.NewPower(node.NewInteger(numeric.FromInt64(4)), node.NewRational(exp)))
	if node.Sprint(got) != "8" {
		t.Errorf("4^(3/2) = %s, want 8", node.Sprint(got))
	}
}

func TestEvalSumPowerWithUnitContentStaysUnexpanded(t *testing.T) {
	ctx := kctx.New()
	x := node.NewSymbol("x", domain.Real)
	y := node.NewSymbol("y", domain.Real)
	base := mustEval(t, ctx, node.NewSum([]node.Node{x, y})) // content(x+y) = 1
	got := mustEval(t, ctx, node.NewPower(base, node.NewInteger(numeric.FromInt64(2))))
	// spec.md §4.4.4 step 5 only extracts a non-unit integer content; it
	// never multinomially expands (that is internal/poly.Expand's job).
	if got.Kind() != node.KindPower {
		t.Errorf("(x+y)^2 with unit content should stay a Power node, got %s", node.Sprint(got))
	}
}

func TestEvalSumPowerExtractsIntegerContent(t *testing.T) {
	ctx := kctx.New()
	x := node.NewSymbol("x", domain.Real)
	// 2x+2 has integer content 2, reducing to 2*(x+1).
	base := mustEval(t, ctx, node.NewSum([]node.Node{node.NewFactor(node.NewInteger(numeric.FromInt64(2)), x), node.NewInteger(numeric.FromInt64(2))}))
	got := mustEval(t, ctx, node.NewPower(base, node.NewInteger(numeric.FromInt64(3))))
	f, ok := node.Resolve(got).(*node.Factor)
	if !ok {
		t.Fatalf("(2x+2)^3 should rewrite as content^3 * reduced^3 (a Factor), got %s (%s)", node.Sprint(got), got.Kind())
	}
	cv, isNum := node.NumericValueOf(f.Num)
	if !isNum || numeric.Cmp(cv, numeric.FromInt64(8)) != 0 {
		t.Errorf("(2x+2)^3 coefficient = %s, want 8 (2^3)", node.Sprint(f.Num))
	}
	pw, ok := node.Resolve(f.Term).(*node.Power)
	if !ok {
		t.Fatalf("(2x+2)^3 term should be a Power, got %s", node.Sprint(f.Term))
	}
	reduced := mustEval(t, ctx, node.NewSum([]node.Node{x, node.NewInteger(numeric.FromInt64(1))}))
	if node.Identical(pw.Base, reduced) != 0 {
		t.Errorf("(2x+2)^3 reduced base = %s, want x+1", node.Sprint(pw.Base))
	}
}

func TestSumIteratorCoversEveryTerm(t *testing.T) {
	ctx := kctx.New()
	x := node.NewSymbol("x", domain.Real)
	y := node.NewSymbol("y", domain.Real)
	sum := mustEval(t, ctx, node.NewSum([]node.Node{x, y, node.NewInteger(numeric.FromInt64(3))}))
	it := NewSumIterator(ctx, sum)
	if it.Leader == nil {
		t.Fatal("iterator over x+y+3 should report a numeric leader")
	}
	count := 0
	for {
		_, _, ok := it.Next()
		if !ok {
			break
		}
		count++
	}
	if count != 2 {
		t.Fatalf("iterator yielded %d non-numeric terms, want 2", count)
	}
}
