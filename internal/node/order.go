package node

import "math/big"

// Cmp implements spec.md §4.4's total order used to place operands in
// canonical position inside Sum and Product.
func Cmp(x, y Node) int {
	x, y = Resolve(x), Resolve(y)
	tx := stripFactor(x)
	ty := stripFactor(y)
	if isMonomialShape(tx) || isMonomialShape(ty) {
		return cmpMonomial(asMonomial(tx), asMonomial(ty))
	}
	return cmpGeneric(tx, ty)
}

func stripFactor(n Node) Node {
	if f, ok := n.(*Factor); ok {
		return f.Term
	}
	return n
}

type basePower struct {
	base Node
	exp  *big.Int
}

var one = big.NewInt(1)

// powerIntOf reports whether n is Power(base, integer exponent), the
// shape spec.md §4.4 calls "Power-with-integer-exponent".
func powerIntOf(n Node) (base Node, exp *big.Int, ok bool) {
	p, ok := n.(*Power)
	if !ok {
		return nil, nil, false
	}
	v, isNum := numericValueOf(p.Exp)
	if !isNum {
		return nil, nil, false
	}
	z, isInt := v.AsBigInt()
	if !isInt {
		return nil, nil, false
	}
	return p.Base, z, true
}

func isMonomialShape(n Node) bool {
	if _, ok := n.(*Product); ok {
		return true
	}
	_, _, ok := powerIntOf(n)
	return ok
}

func asMonomial(n Node) []basePower {
	if p, ok := n.(*Product); ok {
		out := make([]basePower, len(p.Args))
		for i, a := range p.Args {
			if b, e, ok := powerIntOf(a); ok {
				out[i] = basePower{b, e}
			} else {
				out[i] = basePower{a, one}
			}
		}
		return out
	}
	if b, e, ok := powerIntOf(n); ok {
		return []basePower{{b, e}}
	}
	return []basePower{{n, one}}
}

// cmpMonomial compares two base^power sequences: bases pairwise, with
// exponents compared in *reverse* on equal bases (so x^2 < x), and the
// longer monomial winning over its prefix (spec.md §4.4). The variable
// order within a multi-base monomial is whatever asMonomial produced
// (insertion order of the originating Product), per the open question
// in spec.md §9 about this tie-break. Cmp keeps that order as-is; the
// fixed variable list recorded in DESIGN.md applies only to internal/poly
// (poly.Vars), not to Cmp.
func cmpMonomial(a, b []basePower) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := Cmp(a[i].base, b[i].base); c != 0 {
			return c
		}
		if c := a[i].exp.Cmp(b[i].exp); c != 0 {
			return -c
		}
	}
	return intCmp(len(a), len(b))
}

func cmpGeneric(x, y Node) int {
	if x.Kind() != y.Kind() {
		return intCmp(int(x.Kind()), int(y.Kind()))
	}
	switch a := x.(type) {
	case *Integer:
		return numCompareExact(a.V, y.(*Integer).V)
	case *Rational:
		return numCompareExact(a.V, y.(*Rational).V)
	case *Float:
		return numCompareExact(a.V, y.(*Float).V)
	case *Complex:
		b := y.(*Complex)
		if c := Cmp(a.Re, b.Re); c != 0 {
			return c
		}
		return Cmp(a.Im, b.Im)
	case *Symbol:
		b := y.(*Symbol)
		if a.Name != b.Name {
			return stringCmp(a.Name, b.Name)
		}
		return intCmp(int(a.Dom), int(b.Dom))
	case *Data:
		return bytesCmp(a.Bytes, y.(*Data).Bytes)
	case *UnaryFunc:
		b := y.(*UnaryFunc)
		if a.FKind != b.FKind {
			return intCmp(int(a.FKind), int(b.FKind))
		}
		return Cmp(a.Arg, b.Arg)
	case *BinaryFunc:
		b := y.(*BinaryFunc)
		if a.FKind != b.FKind {
			return intCmp(int(a.FKind), int(b.FKind))
		}
		if c := Cmp(a.B, b.B); c != 0 {
			return c
		}
		return Cmp(a.A, b.A)
	case *Func:
		b := y.(*Func)
		if a.Name != b.Name {
			return stringCmp(a.Name, b.Name)
		}
		return Cmp(a.Arg, b.Arg)
	default:
		return cmpChildren(x.Children(), y.Children())
	}
}

func cmpChildren(xs, ys []Node) int {
	if len(xs) != len(ys) {
		return intCmp(len(xs), len(ys))
	}
	for i := len(xs) - 1; i >= 0; i-- {
		if c := Cmp(xs[i], ys[i]); c != 0 {
			return c
		}
	}
	return 0
}
