package node

import "may/internal/numeric"

// Integer is a canonical arbitrary-precision integer node (spec.md §3).
type Integer struct {
	Header
	V *numeric.Value
}

func (n *Integer) Kind() Kind        { return KindInteger }
func (n *Integer) Children() []Node  { return nil }

// NewInteger builds an Integer node already sealed (flags.eval and
// flags.num set), since an integer literal is trivially its own
// canonical form.
func NewInteger(v *numeric.Value) *Integer {
	n := &Integer{V: v}
	n.SetFlag(FlagEval | FlagNum)
	sealHash(n)
	return n
}

// Rational is q > 1, gcd(|p|,q) = 1 by construction (numeric.Simplify
// enforces the collapse to Integer otherwise, so every Rational this
// package can construct already satisfies the invariant).
type Rational struct {
	Header
	V *numeric.Value
}

func (n *Rational) Kind() Kind       { return KindRational }
func (n *Rational) Children() []Node { return nil }

func NewRational(v *numeric.Value) Node {
	if v.Kind() != numeric.KindRational {
		return NewInteger(v)
	}
	n := &Rational{V: v}
	n.SetFlag(FlagEval | FlagNum)
	sealHash(n)
	return n
}

// Float is an arbitrary-precision float at the working precision in
// effect when it was constructed.
type Float struct {
	Header
	V *numeric.Value
}

func (n *Float) Kind() Kind       { return KindFloat }
func (n *Float) Children() []Node { return nil }

func NewFloat(v *numeric.Value) *Float {
	n := &Float{V: v}
	n.SetFlag(FlagEval | FlagNum)
	sealHash(n)
	return n
}

// Complex holds non-Complex re/im numeric nodes; a zero imaginary part
// collapses during evaluation (spec.md §3), so NewComplex returns the
// collapsed Node directly rather than a *Complex.
type Complex struct {
	Header
	Re, Im Node
}

func (n *Complex) Kind() Kind       { return KindComplex }
func (n *Complex) Children() []Node { return []Node{n.Re, n.Im} }

func NewComplex(re, im Node) Node {
	if imV, ok := numericValueOf(im); ok && imV.IsZero() {
		return re
	}
	n := &Complex{Re: re, Im: im}
	n.SetFlag(FlagEval | FlagNum)
	sealHash(n)
	return n
}

// numericValueOf extracts the numeric.Value backing a purely numeric
// node, if any. Used throughout node/eval to treat Integer/Rational/
// Float uniformly without a type switch at every call site.
func numericValueOf(n Node) (*numeric.Value, bool) {
	switch t := n.(type) {
	case *Integer:
		return t.V, true
	case *Rational:
		return t.V, true
	case *Float:
		return t.V, true
	case *Complex:
		re, reOk := numericValueOf(t.Re)
		im, imOk := numericValueOf(t.Im)
		if reOk && imOk {
			return numeric.FromComplex(re, im), true
		}
	}
	return nil, false
}

// NumericValueOf is the exported form of numericValueOf, used by the
// eval and poly packages.
func NumericValueOf(n Node) (*numeric.Value, bool) { return numericValueOf(n) }

// IsNumeric reports whether n's header flags.num bit is set, i.e. n is
// Integer, Rational, Float, or a Complex of two numeric parts.
func IsNumeric(n Node) bool { return n.Header().IsNum() }
