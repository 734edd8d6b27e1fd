package arena

import (
	"testing"

	"may/internal/domain"
	"may/internal/node"
	"may/internal/numeric"
)

func TestKeepReleasesUnreachableNodes(t *testing.T) {
	a := New(0)
	x, _ := a.Track(node.NewSymbol("x", domain.Real))
	m := a.Mark()
	kept, _ := a.Track(node.NewInteger(numeric.FromInt64(1)))
	discarded, _ := a.Track(node.NewInteger(numeric.FromInt64(2)))
	_ = discarded

	a.Keep(m, kept)

	if a.Len() != m.top+1 {
		t.Errorf("after Keep, arena has %d entries, want %d (mark.top + kept root)", a.Len(), m.top+1)
	}
	_ = x
}

func TestKeepIsIdempotent(t *testing.T) {
	a := New(0)
	m := a.Mark()
	root, _ := a.Track(node.NewInteger(numeric.FromInt64(7)))
	a.Keep(m, root)
	lenAfterFirst := a.Len()
	a.Keep(m, root)
	if a.Len() != lenAfterFirst {
		t.Errorf("second Keep with the same root changed arena length: %d -> %d", lenAfterFirst, a.Len())
	}
}

func TestKeepRetainsChildrenOfRoot(t *testing.T) {
	a := New(0)
	m := a.Mark()
	x, _ := a.Track(node.NewSymbol("x", domain.Real))
	one, _ := a.Track(node.NewInteger(numeric.FromInt64(1)))
	sum, _ := a.Track(node.NewSum([]node.Node{x, one}))
	unrelated, _ := a.Track(node.NewInteger(numeric.FromInt64(99)))
	_ = unrelated

	a.Keep(m, sum)

	if a.Len() != 3 {
		t.Errorf("Keep(sum) should retain sum and its two children, arena has %d entries", a.Len())
	}
}

func TestChainedCompactDefersUntilClosed(t *testing.T) {
	a := New(0)
	m := a.ChainedCompact1()
	discarded, _ := a.Track(node.NewInteger(numeric.FromInt64(1)))
	kept, _ := a.Track(node.NewInteger(numeric.FromInt64(2)))
	_ = discarded

	lenBeforeClose := a.Len()
	a.ChainedCompact2(m, kept)
	if a.Len() == lenBeforeClose {
		t.Error("ChainedCompact2 should run the deferred sweep and shrink the registry")
	}
}

func TestBudgetExhaustion(t *testing.T) {
	a := New(1)
	if _, err := a.Track(node.NewInteger(numeric.FromInt64(123456789))); err == nil {
		t.Error("Track past the budget should report an error")
	}
}
