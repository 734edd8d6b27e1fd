package node

// These constructors build the compound node kinds of spec.md §3
// directly from already-canonical operands. They do not enforce the
// canonicalisation invariants themselves (flattening, sorting, merging,
// numeric folding) — that is the evaluator's job (internal/eval). They
// do enforce the *structural* shape invariants that must hold of any
// value of the type, panicking on violation, since a violation at this
// layer is a bug in the evaluator, not a user error.

// Sum is spec.md §3's n-ary Sum: n ≥ 2, operands already flattened,
// sorted, and coalesced by the caller.
type Sum struct {
	Header
	Args []Node
}

func (n *Sum) Kind() Kind       { return KindSum }
func (n *Sum) Children() []Node { return n.Args }

func NewSum(args []Node) *Sum {
	if len(args) < 2 {
		panic("node: Sum requires at least 2 arguments")
	}
	n := &Sum{Args: args}
	sealHash(n)
	return n
}

// Factor is a product of exactly one purely-numeric coefficient and one
// non-numeric term (spec.md §3's Factor node / glossary).
type Factor struct {
	Header
	Num  Node
	Term Node
}

func (n *Factor) Kind() Kind       { return KindFactor }
func (n *Factor) Children() []Node { return []Node{n.Num, n.Term} }

func NewFactor(num, term Node) Node {
	if v, ok := numericValueOf(num); ok && v.IsOne() {
		return term
	}
	n := &Factor{Num: num, Term: term}
	sealHash(n)
	return n
}

// Product is spec.md §3's n-ary Product: n ≥ 2, no argument purely
// numeric, sorted, no two bases with an integer exponent coincide.
type Product struct {
	Header
	Args []Node
}

func (n *Product) Kind() Kind       { return KindProduct }
func (n *Product) Children() []Node { return n.Args }

func NewProduct(args []Node) *Product {
	if len(args) < 2 {
		panic("node: Product requires at least 2 arguments")
	}
	n := &Product{Args: args}
	sealHash(n)
	return n
}

// Power is base^exponent.
type Power struct {
	Header
	Base Node
	Exp  Node
}

func (n *Power) Kind() Kind       { return KindPower }
func (n *Power) Children() []Node { return []Node{n.Base, n.Exp} }

func NewPower(base, exp Node) *Power {
	n := &Power{Base: base, Exp: exp}
	sealHash(n)
	return n
}

// Range is two floats with lo <= hi, used as an interval container
// (spec.md §3).
type Range struct {
	Header
	Lo, Hi Node
}

func (n *Range) Kind() Kind       { return KindRange }
func (n *Range) Children() []Node { return []Node{n.Lo, n.Hi} }

func NewRange(lo, hi Node) *Range {
	n := &Range{Lo: lo, Hi: hi}
	sealHash(n)
	return n
}

// List is a container extension sharing the compound-node layout
// (spec.md §3).
type List struct {
	Header
	Elems []Node
}

func (n *List) Kind() Kind       { return KindList }
func (n *List) Children() []Node { return n.Elems }

func NewList(elems []Node) *List {
	n := &List{Elems: elems}
	sealHash(n)
	return n
}

// Matrix is a row-major container extension.
type Matrix struct {
	Header
	Rows, Cols int
	Elems      []Node // len == Rows*Cols, row-major
}

func (n *Matrix) Kind() Kind       { return KindMatrix }
func (n *Matrix) Children() []Node { return n.Elems }

func NewMatrix(rows, cols int, elems []Node) *Matrix {
	if len(elems) != rows*cols {
		panic("node: Matrix element count mismatch")
	}
	n := &Matrix{Rows: rows, Cols: cols, Elems: elems}
	sealHash(n)
	return n
}

// Diff represents differentiation applied or held: f differentiated
// with respect to a sequence of (var, order) pairs (spec.md §3).
type DiffSpec struct {
	Var   Node
	Order int
}

type Diff struct {
	Header
	F     Node
	Specs []DiffSpec
}

func (n *Diff) Kind() Kind { return KindDiff }
func (n *Diff) Children() []Node {
	out := make([]Node, 0, 1+len(n.Specs))
	out = append(out, n.F)
	for _, s := range n.Specs {
		out = append(out, s.Var)
	}
	return out
}

func NewDiff(f Node, specs []DiffSpec) *Diff {
	n := &Diff{F: f, Specs: specs}
	sealHash(n)
	return n
}
