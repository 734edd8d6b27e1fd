package eval

import (
	"may/internal/kctx"
	"may/internal/node"
)

// SumIterator gives a uniform (numeric leader, [(coefficient, term)...])
// view of any evaluated node, as if it were a Sum, per spec.md §4.5.
// It is finite and non-restartable: Terms is a snapshot computed once
// at construction, not recomputed on each call.
type SumIterator struct {
	Leader node.Node // numeric leader; nil if none
	terms  []pair
	pos    int
}

// NewSumIterator builds a SumIterator over n, which must already be
// canonical (the caller Evals it first).
func NewSumIterator(_ *kctx.Context, n node.Node) *SumIterator {
	n = node.Resolve(n)
	it := &SumIterator{}
	switch t := n.(type) {
	case *node.Sum:
		start := 0
		if v, ok := node.NumericValueOf(t.Args[0]); ok {
			it.Leader = numericNode(v)
			start = 1
		}
		for _, a := range t.Args[start:] {
			c, b := splitFactor(a)
			it.terms = append(it.terms, pair{scalar: c, base: b})
		}
	default:
		if v, ok := node.NumericValueOf(n); ok {
			it.Leader = numericNode(v)
			return it
		}
		c, b := splitFactor(n)
		it.terms = append(it.terms, pair{scalar: c, base: b})
	}
	return it
}

// Len reports the number of (coefficient, term) pairs remaining.
func (it *SumIterator) Len() int { return len(it.terms) - it.pos }

// Next returns the next (coefficient, term) pair and advances the
// iterator, or reports ok=false once exhausted.
func (it *SumIterator) Next() (coeff, term node.Node, ok bool) {
	if it.pos >= len(it.terms) {
		return nil, nil, false
	}
	p := it.terms[it.pos]
	it.pos++
	return p.scalar, p.base, true
}

// ProductIterator is the Product analogue: a uniform (numeric leader,
// [(base, exponent)...]) view, the numeric leader coming from a Factor's
// coefficient when n is one (spec.md §4.5).
type ProductIterator struct {
	Leader node.Node
	terms  []pair
	pos    int
}

func NewProductIterator(_ *kctx.Context, n node.Node) *ProductIterator {
	n = node.Resolve(n)
	it := &ProductIterator{}
	switch t := n.(type) {
	case *node.Product:
		for _, a := range t.Args {
			e, b := splitPower(a)
			it.terms = append(it.terms, pair{scalar: e, base: b})
		}
	case *node.Factor:
		it.Leader = t.Num
		e, b := splitPower(t.Term)
		it.terms = append(it.terms, pair{scalar: e, base: b})
	default:
		if v, ok := node.NumericValueOf(n); ok {
			it.Leader = numericNode(v)
			return it
		}
		e, b := splitPower(n)
		it.terms = append(it.terms, pair{scalar: e, base: b})
	}
	return it
}

func (it *ProductIterator) Len() int { return len(it.terms) - it.pos }

// Next returns the next (base, exponent) pair and advances the iterator.
func (it *ProductIterator) Next() (base, exp node.Node, ok bool) {
	if it.pos >= len(it.terms) {
		return nil, nil, false
	}
	p := it.terms[it.pos]
	it.pos++
	return p.base, p.scalar, true
}
