package poly

import (
	"may/internal/numeric"

	"golang.org/x/sync/errgroup"
)

// karatsubaThreshold is the basecase cutoff of spec.md §4.8: below this
// term count on either operand, schoolbook multiplication wins (no
// recursion overhead to amortise).
const karatsubaThreshold = 12

// Karatsuba multiplies a and b (over the same Vars list) using the
// classical one-variable-at-a-time split of spec.md §4.8, forking the
// three recursive sub-multiplications at each level (spec.md §5's
// "three recursive multiplications at each level are independent").
func Karatsuba(a, b *MPoly) *MPoly {
	return karatsuba(a, b, 0)
}

func karatsuba(a, b *MPoly, varIdx int) *MPoly {
	if a.IsZero() || b.IsZero() {
		return &MPoly{Vars: a.Vars}
	}
	if len(a.Terms) < karatsubaThreshold || len(b.Terms) < karatsubaThreshold || len(a.Vars) == 0 {
		return schoolbook(a, b)
	}

	vi := varIdx % len(a.Vars)
	a0, a1 := splitParity(a, vi)
	b0, b1 := splitParity(b, vi)

	nextVar := (vi + 1) % len(a.Vars)

	var p0, p1, mSum *MPoly
	g := new(errgroup.Group)
	g.Go(func() error { p1 = karatsuba(a1, b1, nextVar); return nil })
	g.Go(func() error { p0 = karatsuba(a0, b0, nextVar); return nil })
	g.Go(func() error {
		sa := addPoly(a0, a1)
		sb := addPoly(b0, b1)
		mSum = karatsuba(sa, sb, nextVar)
		return nil
	})
	_ = g.Wait()

	m := subPoly(subPoly(mSum, p1), p0)

	result := addPoly(addPoly(shiftVar(p1, vi, 2), shiftVar(m, vi, 1)), shiftVar(p0, vi, 0))
	return result
}

// splitParity implements spec.md §4.8 step 1: A(vi) = A1(vi^2)*vi +
// A0(vi^2), halving the vi exponent field in the process.
func splitParity(p *MPoly, vi int) (even, odd *MPoly) {
	even = &MPoly{Vars: p.Vars}
	odd = &MPoly{Vars: p.Vars}
	for _, t := range p.Terms {
		exps := append([]int64(nil), t.Exps...)
		if exps[vi]%2 == 0 {
			exps[vi] /= 2
			even.Terms = append(even.Terms, Monomial{Coeff: t.Coeff, Exps: exps})
		} else {
			exps[vi] = (exps[vi] - 1) / 2
			odd.Terms = append(odd.Terms, Monomial{Coeff: t.Coeff, Exps: exps})
		}
	}
	even.normalize()
	odd.normalize()
	return even, odd
}

// shiftVar undoes splitParity's halving of the vi exponent (doubling it
// back) and then multiplies p by vars[vi]^power, used to reassemble
// P1*vi^2 + M*vi + P0 after recursing (spec.md §4.8 step 5).
func shiftVar(p *MPoly, vi int, power int64) *MPoly {
	out := &MPoly{Vars: p.Vars}
	for _, t := range p.Terms {
		exps := append([]int64(nil), t.Exps...)
		exps[vi] = 2*exps[vi] + power
		out.Terms = append(out.Terms, Monomial{Coeff: t.Coeff, Exps: exps})
	}
	out.normalize()
	return out
}

func addPoly(a, b *MPoly) *MPoly {
	out := &MPoly{Vars: a.Vars}
	out.Terms = append(out.Terms, a.Terms...)
	out.Terms = append(out.Terms, b.Terms...)
	out.normalize()
	return out
}

func subPoly(a, b *MPoly) *MPoly {
	neg := &MPoly{Vars: b.Vars}
	for _, t := range b.Terms {
		neg.Terms = append(neg.Terms, Monomial{Coeff: numeric.Neg(nil, t.Coeff), Exps: t.Exps})
	}
	return addPoly(a, neg)
}

// schoolbook is the basecase of spec.md §4.8: naive O(n*m) monomial
// multiplication.
func schoolbook(a, b *MPoly) *MPoly {
	out := &MPoly{Vars: a.Vars}
	for _, ta := range a.Terms {
		for _, tb := range b.Terms {
			exps := make([]int64, len(a.Vars))
			for i := range exps {
				exps[i] = ta.Exps[i] + tb.Exps[i]
			}
			out.Terms = append(out.Terms, Monomial{Coeff: numeric.Mul(nil, ta.Coeff, tb.Coeff), Exps: exps})
		}
	}
	out.normalize()
	return out
}
