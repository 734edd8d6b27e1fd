package node

import "may/internal/numeric"

// Identical implements spec.md §4.4's structural equality: hash first as
// a fast negative, then type tag, then payload/children. Returns -1, 0,
// or +1; only the sign of "not equal" carries meaning (a stable,
// arbitrary but consistent tie-break), matching the teacher convention
// (internal/errors-style comparison helpers) of returning an ordering
// rather than a bool so callers can also use it to place nodes in a
// map/slice without a second comparator.
func Identical(x, y Node) int {
	x, y = Resolve(x), Resolve(y)
	hx, hy := x.Header().Hash(), y.Header().Hash()
	if hx != hy {
		if hx < hy {
			return -1
		}
		return 1
	}
	if x.Kind() != y.Kind() {
		if x.Kind() < y.Kind() {
			return -1
		}
		return 1
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
		if c := Identical(a.Re, b.Re); c != 0 {
			return c
		}
		return Identical(a.Im, b.Im)
	case *Symbol:
		b := y.(*Symbol)
		if a.Name != b.Name {
			return stringCmp(a.Name, b.Name)
		}
		if a.Dom != b.Dom {
			if a.Dom < b.Dom {
				return -1
			}
			return 1
		}
		return 0
	case *Data:
		b := y.(*Data)
		return bytesCmp(a.Bytes, b.Bytes)
	case *UnaryFunc:
		b := y.(*UnaryFunc)
		if a.FKind != b.FKind {
			return intCmp(int(a.FKind), int(b.FKind))
		}
		return Identical(a.Arg, b.Arg)
	case *BinaryFunc:
		b := y.(*BinaryFunc)
		if a.FKind != b.FKind {
			return intCmp(int(a.FKind), int(b.FKind))
		}
		if c := Identical(a.B, b.B); c != 0 {
			return c
		}
		return Identical(a.A, b.A)
	case *Func:
		b := y.(*Func)
		if a.Name != b.Name {
			return stringCmp(a.Name, b.Name)
		}
		return Identical(a.Arg, b.Arg)
	case *Extension:
		b := y.(*Extension)
		if a.ID != b.ID {
			return bytesCmp(a.ID[:], b.ID[:])
		}
		return identicalChildren(a.Args, b.Args)
	default:
		return identicalChildren(x.Children(), y.Children())
	}
}

// identicalChildren compares by length then by Identical of each child
// in reverse index order ("cheap mismatch usually at the high end",
// spec.md §4.3).
func identicalChildren(xs, ys []Node) int {
	if len(xs) != len(ys) {
		return intCmp(len(xs), len(ys))
	}
	for i := len(xs) - 1; i >= 0; i-- {
		if c := Identical(xs[i], ys[i]); c != 0 {
			return c
		}
	}
	return 0
}

func numCompareExact(a, b *numeric.Value) int {
	if numeric.Equal(a, b) {
		return 0
	}
	// Fall back to a consistent, non-IEEE tie-break using the ordinary
	// value comparison where defined; otherwise compare string forms.
	if a.Kind() != numeric.KindComplex && b.Kind() != numeric.KindComplex {
		if a.Kind() == numeric.KindFloat && a.String() == "NaN" && b.Kind() == numeric.KindFloat && b.String() == "NaN" {
			return 0
		}
		return numeric.Cmp(a, b)
	}
	return stringCmp(a.String(), b.String())
}

func stringCmp(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func bytesCmp(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return intCmp(len(a), len(b))
}

func intCmp(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
