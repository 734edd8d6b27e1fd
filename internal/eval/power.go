package eval

import (
	"may/internal/errframe"
	"may/internal/kctx"
	"may/internal/node"
	"may/internal/numeric"
)

// evalPower implements spec.md §4.4.4.
func evalPower(ctx *kctx.Context, rawBase, rawExp node.Node) node.Node {
	base := Eval(ctx, rawBase)
	exp := Eval(ctx, rawExp)

	if isZero(exp) {
		return track(ctx, oneNode(), true)
	}
	if isOne(exp) {
		return base
	}
	bv, bIsNum := node.NumericValueOf(base)
	ev, eIsNum := node.NumericValueOf(exp)

	if isZero(base) {
		if eIsNum && numeric.Cmp(ev, numeric.FromInt64(0)) > 0 {
			return track(ctx, zeroNode(), true)
		}
		if eIsNum && numeric.Cmp(ev, numeric.FromInt64(0)) < 0 {
			kerr := errframe.New(errframe.CannotBeConverted, "0 cannot be raised to a negative power")
			ctx.Frame.Throw(kerr)
			panic(kerr)
		}
		return track(ctx, node.NewPower(base, exp), false)
	}
	if isOne(base) {
		return track(ctx, oneNode(), true)
	}

	if bIsNum && eIsNum {
		return evalNumericPower(ctx, bv, ev)
	}

	if extNode, ok := node.Resolve(base).(*node.Extension); ok {
		if vt, found := ctx.Registry.Lookup(extNode.ID); found && vt.Pow != nil {
			if result, done := vt.Pow(extNode, exp); done {
				return Eval(ctx, result)
			}
		}
	}

	eIsInt := false
	if eIsNum {
		_, eIsInt = ev.AsBigInt()
	}

	switch b := node.Resolve(base).(type) {
	case *node.Factor:
		// (c*t)^e = c^e * t^e when e is an integer; fractional/symbolic
		// exponents don't distribute over a numeric coefficient safely
		// (spec.md §4.4.4 step 3).
		if eIsInt {
			coeffPow := evalPower(ctx, b.Num, exp)
			termPow := evalPower(ctx, b.Term, exp)
			return evalProduct(ctx, []node.Node{coeffPow, termPow})
		}
	case *node.Product:
		if eIsInt {
			args := make([]node.Node, len(b.Args))
			for i, a := range b.Args {
				args[i] = evalPower(ctx, a, exp)
			}
			return evalProduct(ctx, args)
		}
	case *node.Power:
		// (x^a)^b combination (spec.md §4.4.4 step 4): combine exponents
		// outright when the inner exponent is an integer, or when the
		// base is known nonnegative so the principal value is unambiguous.
		innerExpIsInt := false
		if iv, ok := node.NumericValueOf(b.Exp); ok {
			_, innerExpIsInt = iv.AsBigInt()
		}
		if innerExpIsInt || nonnegativeBase(b.Base) {
			newExp := evalProduct(ctx, []node.Node{b.Exp, exp})
			return evalPower(ctx, b.Base, newExp)
		}
	case *node.Sum:
		// Sum base with integer exponent and non-unit integer content g:
		// rewrite (g*s)^e = g^e*s^e (spec.md §4.4.4 step 5). Anything else
		// about a Sum base -- fractional/symbolic exponent, or a Sum whose
		// coefficients don't all reduce to an integer content -- falls
		// through to the bare hold below.
		if eIsInt {
			g := sumIntegerContent(ctx, b)
			if !g.IsOne() {
				reduced := divideSumByInt(ctx, b, g)
				gPow := evalPower(ctx, numericNode(g), exp)
				reducedPow := evalPower(ctx, reduced, exp)
				return evalProduct(ctx, []node.Node{gPow, reducedPow})
			}
		}
	case *node.UnaryFunc:
		// abs(x)^(even integer) = x^(even integer) (spec.md §4.4.4 step 6).
		if b.FKind == node.UAbs && eIsInt {
			z, _ := ev.AsBigInt()
			if z.Bit(0) == 0 {
				return evalPower(ctx, b.Arg, exp)
			}
		}
	}

	return track(ctx, node.NewPower(base, exp), false)
}

func nonnegativeBase(n node.Node) bool {
	v, ok := node.NumericValueOf(node.Resolve(n))
	return ok && numeric.Cmp(v, numeric.FromInt64(0)) >= 0
}

// evalNumericPower computes base^exp for numeric base and exponent.
// Integer exponents fold exactly, subject to the configured integer-size
// policy. Fractional exponents split into an integer part (folded
// exactly into the numeric result) and a remainder in [0,1) that is
// root-extracted when exact and otherwise held as a symbolic Power --
// kept exact rather than coerced to an approximate Float, matching the
// kernel's exact-when-possible numeric tower (spec.md §4.2, §4.4.4).
func evalNumericPower(ctx *kctx.Context, base, exp *numeric.Value) node.Node {
	if z, ok := exp.AsBigInt(); ok && z.IsInt64() {
		e := z.Int64()
		if e < 0 && base.IsZero() {
			kerr := errframe.New(errframe.CannotBeConverted, "division by zero in negative power")
			ctx.Frame.Throw(kerr)
			panic(kerr)
		}
		if base.Kind() == numeric.KindFloat || base.Kind() == numeric.KindComplex || withinIntPolicy(ctx, base, e) {
			return track(ctx, numericNode(numeric.Pow(nil, base, e)), true)
		}
		return track(ctx, node.NewPower(numericNode(base), numericNode(exp)), false)
	}
	if base.Kind() == numeric.KindComplex || base.Kind() == numeric.KindFloat {
		return track(ctx, numericNode(numeric.PowReal(base, exp)), true)
	}

	intPart, frac := splitRationalExponent(exp)
	num := numeric.FromInt64(1)
	if intPart != 0 {
		if !withinIntPolicy(ctx, base, intPart) {
			return track(ctx, node.NewPower(numericNode(base), numericNode(exp)), false)
		}
		num = numeric.Mul(nil, num, numeric.Pow(nil, base, intPart))
	}
	if frac == nil || frac.IsZero() {
		return track(ctx, numericNode(num), true)
	}
	if root, ok := tryIntegerRoot(base, frac); ok {
		num = numeric.Mul(nil, num, root)
		return track(ctx, numericNode(num), true)
	}
	if num.IsOne() {
		return track(ctx, node.NewPower(numericNode(base), numericNode(frac)), false)
	}
	return track(ctx, node.NewFactor(numericNode(num), node.NewPower(numericNode(base), numericNode(frac))), false)
}

// sumIntegerContent returns the GCD of s's integer coefficients (the
// leading numeric term and every term's Factor coefficient), or 1 if any
// coefficient isn't an integer. Mirrors internal/poly/content.go's
// integerContent, duplicated here rather than imported to avoid a
// poly->eval->poly cycle (poly already depends on eval).
func sumIntegerContent(ctx *kctx.Context, s *node.Sum) *numeric.Value {
	it := NewSumIterator(ctx, s)
	var g *numeric.Value
	accumulate := func(n node.Node) bool {
		v, ok := node.NumericValueOf(n)
		if !ok || v.Kind() != numeric.KindInteger {
			return false
		}
		av := v
		if numeric.Cmp(av, numeric.FromInt64(0)) < 0 {
			av = numeric.Neg(nil, av)
		}
		if g == nil {
			g = av
		} else if !g.IsOne() {
			g = numeric.GCD(g, av)
		}
		return true
	}
	if it.Leader != nil && !accumulate(it.Leader) {
		return numeric.FromInt64(1)
	}
	for {
		coeff, _, ok := it.Next()
		if !ok {
			break
		}
		if !accumulate(coeff) {
			return numeric.FromInt64(1)
		}
	}
	if g == nil {
		return numeric.FromInt64(1)
	}
	return g
}

// divideSumByInt rebuilds s with every coefficient (including the
// leading numeric term) divided by g, which sumIntegerContent guarantees
// divides each of them exactly.
func divideSumByInt(ctx *kctx.Context, s *node.Sum, g *numeric.Value) node.Node {
	it := NewSumIterator(ctx, s)
	var args []node.Node
	if it.Leader != nil {
		lv, _ := node.NumericValueOf(it.Leader)
		q, _ := numeric.Div(nil, lv, g)
		if !q.IsZero() {
			args = append(args, numericNode(q))
		}
	}
	for {
		coeff, base, ok := it.Next()
		if !ok {
			break
		}
		cv, _ := node.NumericValueOf(coeff)
		q, _ := numeric.Div(nil, cv, g)
		if q.IsOne() {
			args = append(args, base)
		} else {
			args = append(args, node.NewFactor(numericNode(q), base))
		}
	}
	if len(args) == 1 {
		return args[0]
	}
	return node.NewSum(args)
}
