// Package poly implements the polynomial layer of spec.md §4.6-§4.8
// (C7-C9): canonical expansion, exact division, content/coefficient
// extraction, the heuristic/sub-resultant GCD engine, and the Karatsuba
// multivariate multiplier. It is built entirely on top of internal/eval's
// public Eval and internal/node's constructors -- poly never reaches
// into eval's unexported flatten/coalesce machinery, so every
// intermediate polynomial it builds is re-canonicalised by the same
// evaluator the rest of the kernel uses.
package poly

import (
	"sort"

	"may/internal/eval"
	"may/internal/kctx"
	"may/internal/node"
	"may/internal/numeric"

	"golang.org/x/exp/slices"
)

// Monomial is spec.md §9's "product of a coefficient and a vector of
// integer powers of named bases", realized as a Go slice rather than the
// original's singly-linked list (Go has no benefit from hand-rolling a
// list the runtime already GCs for us; the list's *order* is preserved
// as the semantically meaningful part and is what Karatsuba's merge
// step actually depends on).
type Monomial struct {
	Coeff *numeric.Value
	Exps  []int64 // aligned to MPoly.Vars
}

// MPoly is a multivariate polynomial over a fixed, ordered variable
// list, normalized the way spec.md §4.8 describes: terms kept in
// reverse-lexicographic order by exponent vector, no two terms sharing
// an exponent vector, no zero-coefficient terms.
type MPoly struct {
	Vars  []node.Node // symbol nodes, in the order exponent vectors are indexed
	Terms []Monomial
}

// Vars walks n and returns every Symbol node it references, sorted by
// node.Cmp so the result is deterministic regardless of traversal order.
func Vars(n node.Node) []node.Node {
	seen := map[string]node.Node{}
	var walk func(node.Node)
	walk = func(n node.Node) {
		n = node.Resolve(n)
		if s, ok := n.(*node.Symbol); ok {
			seen[s.Name] = s
			return
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(n)
	out := make([]node.Node, 0, len(seen))
	for _, s := range seen {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b node.Node) int { return node.Cmp(a, b) })
	return out
}

func varIndex(vars []node.Node, v node.Node) int {
	for i, w := range vars {
		if node.Identical(w, v) == 0 {
			return i
		}
	}
	return -1
}

// FromNode converts an already-expanded canonical node (flags.expand;
// see Expand) into an MPoly over vars. Every base appearing in n that is
// not in vars is treated as part of the coefficient only if it folds to
// numeric -- non-numeric bases outside vars cause FromNode to panic,
// since that means the caller under-declared its variable list.
func FromNode(ctx *kctx.Context, n node.Node, vars []node.Node) *MPoly {
	n = eval.Eval(ctx, n)
	p := &MPoly{Vars: vars}
	si := eval.NewSumIterator(ctx, n)
	if si.Leader != nil {
		p.addTerm(monomialOf(si.Leader, nil, vars))
	}
	for {
		coeff, base, ok := si.Next()
		if !ok {
			break
		}
		p.addTerm(termFrom(ctx, coeff, base, vars))
	}
	p.normalize()
	return p
}

func termFrom(ctx *kctx.Context, coeff, base node.Node, vars []node.Node) Monomial {
	exps := make([]int64, len(vars))
	cv, ok := node.NumericValueOf(coeff)
	if !ok {
		cv = numeric.FromInt64(1)
	}
	pi := eval.NewProductIterator(ctx, base)
	if pi.Leader != nil {
		if lv, ok := node.NumericValueOf(pi.Leader); ok {
			cv = numeric.Mul(nil, cv, lv)
		}
	}
	for {
		b, e, ok := pi.Next()
		if !ok {
			break
		}
		idx := varIndex(vars, b)
		if idx < 0 {
			panic("poly: FromNode encountered a base outside the declared variable list")
		}
		ev, _ := node.NumericValueOf(e)
		z, _ := ev.AsBigInt()
		exps[idx] = z.Int64()
	}
	return Monomial{Coeff: cv, Exps: exps}
}

func monomialOf(n node.Node, exps []int64, vars []node.Node) Monomial {
	v, _ := node.NumericValueOf(n)
	if exps == nil {
		exps = make([]int64, len(vars))
	}
	return Monomial{Coeff: v, Exps: exps}
}

func (p *MPoly) addTerm(m Monomial) {
	if m.Coeff == nil || m.Coeff.IsZero() {
		return
	}
	p.Terms = append(p.Terms, m)
}

// normalize sorts terms into reverse-lex order and merges duplicates.
func (p *MPoly) normalize() {
	sort.SliceStable(p.Terms, func(i, j int) bool { return cmpExps(p.Terms[i].Exps, p.Terms[j].Exps) > 0 })
	out := p.Terms[:0]
	i := 0
	for i < len(p.Terms) {
		j := i + 1
		acc := p.Terms[i].Coeff
		for j < len(p.Terms) && sameExps(p.Terms[i].Exps, p.Terms[j].Exps) {
			acc = numeric.Add(nil, acc, p.Terms[j].Coeff)
			j++
		}
		if !acc.IsZero() {
			out = append(out, Monomial{Coeff: acc, Exps: p.Terms[i].Exps})
		}
		i = j
	}
	p.Terms = out
}

func cmpExps(a, b []int64) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func sameExps(a, b []int64) bool { return cmpExps(a, b) == 0 }

// ToNode rebuilds a canonical node.Node for p, re-running it through
// Eval so the result carries the usual canonical-form guarantees.
func (p *MPoly) ToNode(ctx *kctx.Context) node.Node {
	if len(p.Terms) == 0 {
		return eval.Eval(ctx, node.NewInteger(numeric.FromInt64(0)))
	}
	args := make([]node.Node, len(p.Terms))
	for i, m := range p.Terms {
		args[i] = monomialNode(m, p.Vars)
	}
	if len(args) == 1 {
		return eval.Eval(ctx, args[0])
	}
	return eval.Eval(ctx, node.NewSum(args))
}

func monomialNode(m Monomial, vars []node.Node) node.Node {
	factors := []node.Node{numericNodeOf(m.Coeff)}
	for i, e := range m.Exps {
		if e == 0 {
			continue
		}
		if e == 1 {
			factors = append(factors, vars[i])
		} else {
			factors = append(factors, node.NewPower(vars[i], node.NewInteger(numeric.FromInt64(e))))
		}
	}
	if len(factors) == 1 {
		return factors[0]
	}
	return node.NewProduct(factors)
}

func numericNodeOf(v *numeric.Value) node.Node {
	switch v.Kind() {
	case numeric.KindRational:
		return node.NewRational(v)
	case numeric.KindFloat:
		return node.NewFloat(v)
	default:
		return node.NewInteger(v)
	}
}

// Degree reports the polynomial's degree in vars[i].
func (p *MPoly) Degree(i int) int64 {
	var d int64 = -1
	for _, t := range p.Terms {
		if t.Exps[i] > d {
			d = t.Exps[i]
		}
	}
	return d
}

// IsZero reports whether p has no terms.
func (p *MPoly) IsZero() bool { return len(p.Terms) == 0 }
