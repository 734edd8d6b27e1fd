package poly

import (
	"math/big"

	"may/internal/eval"
	"may/internal/kctx"
	"may/internal/node"
	"may/internal/numeric"
)

// Divexact implements spec.md §4.6's divexact(a, b): exact division in
// the polynomial ring. ok is false when b does not divide a exactly --
// spec.md §7 treats that as a value, not an error, so callers get a
// (nil, false) rather than a thrown KernelError.
func Divexact(ctx *kctx.Context, a, b node.Node) (node.Node, bool) {
	a = eval.Eval(ctx, a)
	b = eval.Eval(ctx, b)

	if node.Identical(a, b) == 0 {
		return eval.Eval(ctx, node.NewInteger(numeric.FromInt64(1))), true
	}

	if bv, ok := node.NumericValueOf(b); ok {
		if bv.IsZero() {
			return nil, false
		}
		if av, ok := node.NumericValueOf(a); ok {
			return divideNumeric(ctx, av, bv)
		}
		return scaleNode(ctx, a, bv)
	}
	if av, ok := node.NumericValueOf(a); ok {
		if av.IsZero() {
			return a, true
		}
		return nil, false
	}

	aIsSum := isSumNode(a)
	bIsSum := isSumNode(b)

	if !aIsSum && !bIsSum {
		return divideMonomials(ctx, a, b)
	}
	if !bIsSum {
		if s, ok := a.(*node.Sum); ok {
			if q, ok := divideSumByMonomial(ctx, s, b); ok {
				return q, true
			}
		}
	}

	common := intersectVars(Vars(a), Vars(b))
	if len(common) == 0 {
		return nil, false
	}
	x := common[0]
	q, r, ok := univDivMod(ctx, a, b, x)
	if !ok || !isZeroPoly(r) {
		return nil, false
	}
	return q.ToNode(ctx), true
}

func isSumNode(n node.Node) bool {
	_, ok := node.Resolve(n).(*node.Sum)
	return ok
}

func divideNumeric(ctx *kctx.Context, av, bv *numeric.Value) (node.Node, bool) {
	q, ok := numeric.Div(nil, av, bv)
	if !ok {
		return nil, false
	}
	if av.Kind() == numeric.KindInteger && bv.Kind() == numeric.KindInteger {
		az, _ := av.AsBigInt()
		bz, _ := bv.AsBigInt()
		m := new(big.Int).Mod(az, bz)
		if m.Sign() != 0 {
			return nil, false
		}
	} else if q.Kind() == numeric.KindFloat {
		return nil, false
	}
	return eval.Eval(ctx, numericNodeOf(q)), true
}

// scaleNode divides every numeric coefficient of a by the scalar bv
// (spec.md §4.6 step 1's "b numeric (scalar divide)"), failing if any
// coefficient does not divide exactly.
func scaleNode(ctx *kctx.Context, a node.Node, bv *numeric.Value) (node.Node, bool) {
	si := eval.NewSumIterator(ctx, a)
	var args []node.Node
	scale := func(v *numeric.Value) (node.Node, bool) {
		q, ok := divideNumeric(ctx, v, bv)
		return q, ok
	}
	if si.Leader != nil {
		lv, _ := node.NumericValueOf(si.Leader)
		q, ok := scale(lv)
		if !ok {
			return nil, false
		}
		if zv, ok2 := node.NumericValueOf(q); !ok2 || !zv.IsZero() {
			args = append(args, q)
		}
	}
	for {
		coeff, base, ok := si.Next()
		if !ok {
			break
		}
		cv, _ := node.NumericValueOf(coeff)
		q, ok := scale(cv)
		if !ok {
			return nil, false
		}
		if qv, _ := node.NumericValueOf(q); qv != nil && qv.IsOne() {
			args = append(args, base)
		} else {
			args = append(args, node.NewFactor(q, base))
		}
	}
	if len(args) == 0 {
		return eval.Eval(ctx, node.NewInteger(numeric.FromInt64(0))), true
	}
	if len(args) == 1 {
		return eval.Eval(ctx, args[0]), true
	}
	return eval.Eval(ctx, node.NewSum(args)), true
}

func intersectVars(a, b []node.Node) []node.Node {
	var out []node.Node
	for _, v := range a {
		if varIndex(b, v) >= 0 {
			out = append(out, v)
		}
	}
	return out
}

func isZeroPoly(u *UnivPoly) bool { return len(u.Coeffs) == 0 }

// baseExp is one (base, exponent) factor of a monomial, as decomposed
// by monomialFactors.
type baseExp struct {
	base node.Node
	exp  node.Node
}

func monomialFactors(ctx *kctx.Context, n node.Node) (*numeric.Value, []baseExp) {
	pi := eval.NewProductIterator(ctx, n)
	coeff := numeric.FromInt64(1)
	if pi.Leader != nil {
		if lv, ok := node.NumericValueOf(pi.Leader); ok {
			coeff = lv
		}
	}
	var out []baseExp
	for {
		b, e, ok := pi.Next()
		if !ok {
			break
		}
		out = append(out, baseExp{base: b, exp: e})
	}
	return coeff, out
}

// divideMonomials divides two non-Sum canonical expressions, matching
// each base on the right against one on the left and subtracting
// exponents, failing as soon as a right-hand base has no left-hand
// counterpart (spec.md §4.6 step 4).
func divideMonomials(ctx *kctx.Context, a, b node.Node) (node.Node, bool) {
	ca, fa := monomialFactors(ctx, a)
	cb, fb := monomialFactors(ctx, b)
	q, ok := divideNumeric(ctx, ca, cb)
	if !ok {
		return nil, false
	}
	qv, _ := node.NumericValueOf(q)

	remaining := append([]baseExp(nil), fa...)
	for _, eb := range fb {
		idx := -1
		for i, ea := range remaining {
			if node.Identical(ea.base, eb.base) == 0 {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, false
		}
		remaining[idx].exp = eval.Eval(ctx, node.NewSum([]node.Node{remaining[idx].exp, negateNode(ctx, eb.exp)}))
	}

	factors := []node.Node{numericNodeOf(qv)}
	for _, fe := range remaining {
		if ev, ok := node.NumericValueOf(fe.exp); ok {
			if ev.IsZero() {
				continue
			}
			if ev.IsOne() {
				factors = append(factors, fe.base)
				continue
			}
		}
		factors = append(factors, node.NewPower(fe.base, fe.exp))
	}
	if len(factors) == 1 {
		return eval.Eval(ctx, factors[0]), true
	}
	return eval.Eval(ctx, node.NewProduct(factors)), true
}

// divideSumByMonomial divides a Sum termwise by a non-Sum b, failing
// the whole division the moment any single term fails to divide
// exactly (spec.md §4.6 step 3).
func divideSumByMonomial(ctx *kctx.Context, a *node.Sum, b node.Node) (node.Node, bool) {
	si := eval.NewSumIterator(ctx, a)
	var args []node.Node
	divTerm := func(term node.Node) (node.Node, bool) {
		return divideMonomials(ctx, term, b)
	}
	if si.Leader != nil {
		q, ok := divTerm(si.Leader)
		if !ok {
			return nil, false
		}
		args = append(args, q)
	}
	for {
		coeff, base, ok := si.Next()
		if !ok {
			break
		}
		var term node.Node
		if isOneNode(coeff) {
			term = base
		} else {
			term = node.NewFactor(coeff, base)
		}
		q, ok := divTerm(term)
		if !ok {
			return nil, false
		}
		args = append(args, q)
	}
	if len(args) == 0 {
		return eval.Eval(ctx, node.NewInteger(numeric.FromInt64(0))), true
	}
	if len(args) == 1 {
		return eval.Eval(ctx, args[0]), true
	}
	return eval.Eval(ctx, node.NewSum(args)), true
}

// univDivMod performs polynomial long division of a by b in main
// variable x, recursing into Divexact for each coefficient division so
// multivariate coefficients (themselves expressions in the remaining
// variables) are handled exactly or the whole division fails
// (spec.md §4.6 step 2's general quotient-remainder fallback).
func univDivMod(ctx *kctx.Context, a, b, x node.Node) (*UnivPoly, *UnivPoly, bool) {
	ua := ExtractCoeff(ctx, a, x)
	ub := ExtractCoeff(ctx, b, x)
	ub.trim()
	if len(ub.Coeffs) == 0 {
		return nil, nil, false
	}
	degB := ub.Degree()
	leadB := ub.Lead()

	rem := append([]node.Node(nil), ua.Coeffs...)
	var qCoeffs []node.Node

	for {
		rp := &UnivPoly{Var: x, Coeffs: rem}
		rp.trim()
		rem = rp.Coeffs
		degR := rp.Degree()
		if degR < degB || len(rem) == 0 {
			break
		}
		qc, ok := Divexact(ctx, rem[degR], leadB)
		if !ok {
			return nil, nil, false
		}
		shift := int(degR - degB)
		for i, c := range ub.Coeffs {
			idx := i + shift
			term := mulNode(ctx, qc, c)
			rem[idx] = eval.Eval(ctx, node.NewSum([]node.Node{rem[idx], negateNode(ctx, term)}))
		}
		for shift >= len(qCoeffs) {
			qCoeffs = append(qCoeffs, node.NewInteger(numeric.FromInt64(0)))
		}
		qCoeffs[shift] = qc
	}
	q := &UnivPoly{Var: x, Coeffs: qCoeffs}
	q.trim()
	r := &UnivPoly{Var: x, Coeffs: rem}
	r.trim()
	return q, r, true
}

func mulNode(ctx *kctx.Context, a, b node.Node) node.Node {
	if isOneNode(a) {
		return b
	}
	if isOneNode(b) {
		return a
	}
	return eval.Eval(ctx, node.NewProduct([]node.Node{a, b}))
}

func negateNode(ctx *kctx.Context, n node.Node) node.Node {
	return eval.Eval(ctx, node.NewFactor(node.NewInteger(numeric.FromInt64(-1)), n))
}
