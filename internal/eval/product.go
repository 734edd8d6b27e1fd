package eval

import (
	"math/big"

	"may/internal/ext"
	"may/internal/kctx"
	"may/internal/node"
	"may/internal/numeric"

	"golang.org/x/exp/slices"
)

// evalProduct implements spec.md §4.4.3.
func evalProduct(ctx *kctx.Context, rawArgs []node.Node) node.Node {
	num := numeric.FromInt64(1)
	var pending []node.Node

	flattenProduct(ctx, rawArgs, &num, &pending)

	if num.IsZero() {
		return track(ctx, node.NewInteger(num), true)
	}

	pairs := make([]pair, len(pending))
	for i, t := range pending {
		e, b := splitPower(t)
		pairs[i] = pair{scalar: e, base: b}
	}

	slices.SortStableFunc(pairs, func(a, b pair) int { return node.Cmp(a.base, b.base) })

	pairs = coalesceProduct(ctx, &num, pairs)
	pairs = applyProductExtensionHook(ctx, &num, pairs)

	if num.IsZero() {
		return track(ctx, node.NewInteger(num), true)
	}

	// Distribute numeric over Sum (spec.md §4.4.3 step 6): 2*(x+y) = 2x+2y.
	if !num.IsOne() && len(pairs) == 1 && isOne(pairs[0].scalar) {
		if sum, ok := node.Resolve(pairs[0].base).(*node.Sum); ok {
			distributed := make([]node.Node, len(sum.Args))
			for i, a := range sum.Args {
				distributed[i] = node.NewFactor(numericNode(num), a)
			}
			return evalSum(ctx, distributed)
		}
	}

	return assembleProduct(ctx, num, pairs)
}

// splitPower decomposes a factor into (exponent, base): Power nodes
// split directly, everything else is base^1 (spec.md §4.4.3 step 3).
func splitPower(n node.Node) (exp, base node.Node) {
	n = node.Resolve(n)
	if p, ok := n.(*node.Power); ok {
		return p.Exp, p.Base
	}
	return oneNode(), n
}

func flattenProduct(ctx *kctx.Context, args []node.Node, num **numeric.Value, pending *[]node.Node) {
	for _, a := range args {
		c := Eval(ctx, a)
		if v, ok := node.NumericValueOf(c); ok {
			*num = numeric.Mul(nil, *num, v)
			continue
		}
		if p, ok := c.(*node.Product); ok {
			*pending = append(*pending, p.Args...)
			continue
		}
		if s, ok := c.(*node.Sum); ok {
			if content, reduced, extracted := extractIntegerContent(s); extracted {
				*num = numeric.Mul(nil, *num, content)
				*pending = append(*pending, reduced)
				continue
			}
		}
		*pending = append(*pending, c)
	}
}

// extractIntegerContent implements the content-extraction half of
// spec.md §4.4.3 step 2: "when an operand is a Sum with a non-unit
// integer GCD across coefficients ... extract that GCD into the numeric
// accumulator and divide it out of the Sum operand."
func extractIntegerContent(s *node.Sum) (content *numeric.Value, reduced node.Node, ok bool) {
	var g *numeric.Value
	start := 0
	if v, isNum := node.NumericValueOf(s.Args[0]); isNum {
		if v.Kind() != numeric.KindInteger {
			return nil, nil, false
		}
		g = v
		start = 1
	}
	for _, a := range s.Args[start:] {
		c, _ := splitFactor(a)
		v, isNum := node.NumericValueOf(c)
		if !isNum || v.Kind() != numeric.KindInteger {
			return nil, nil, false
		}
		if g == nil {
			g = v
		} else {
			g = numeric.GCD(g, v)
		}
	}
	if g == nil || g.IsOne() || g.IsZero() {
		return nil, nil, false
	}
	divided := make([]node.Node, 0, len(s.Args))
	for i, a := range s.Args {
		if i == 0 && start == 1 {
			v, _ := node.NumericValueOf(a)
			q, _ := numeric.Div(nil, v, g)
			if !q.IsZero() {
				divided = append(divided, numericNode(q))
			}
			continue
		}
		c, b := splitFactor(a)
		cv, _ := node.NumericValueOf(c)
		q, _ := numeric.Div(nil, cv, g)
		if isOneVal(q) {
			divided = append(divided, b)
		} else {
			divided = append(divided, node.NewFactor(numericNode(q), b))
		}
	}
	if len(divided) == 1 {
		return g, divided[0], true
	}
	return g, node.NewSum(divided), true
}

func isOneVal(v *numeric.Value) bool { return v.IsOne() }

func coalesceProduct(ctx *kctx.Context, num **numeric.Value, pairs []pair) []pair {
	var out []pair
	i := 0
	for i < len(pairs) {
		j := i + 1
		combined := pairs[i].scalar
		for j < len(pairs) && node.Identical(pairs[i].base, pairs[j].base) == 0 {
			var next node.Node
			ctx.Config.WithoutIntMod(func() {
				next = evalSum(ctx, []node.Node{combined, pairs[j].scalar})
			})
			combined = next
			j++
		}
		out = append(out, foldExponent(ctx, num, pairs[i].base, combined)...)
		i = j
	}
	return out
}

// foldExponent applies spec.md §4.4.3 step 5's special cases for
// Integer-base coalescence and, more generally, the integer/fractional
// exponent split that also governs symbolic bases (spec.md §8's worked
// example: x^(1/2)*x^(1/2)*x^(1/2) -> x * x^(1/2)).
func foldExponent(ctx *kctx.Context, num **numeric.Value, base, exp node.Node) []pair {
	if isZero(exp) {
		return nil
	}
	expVal, expIsNum := node.NumericValueOf(exp)
	baseVal, baseIsNum := node.NumericValueOf(base)
	if !expIsNum || expVal.Kind() == numeric.KindFloat || expVal.Kind() == numeric.KindComplex {
		return []pair{{exp, base}}
	}

	intPart, frac := splitRationalExponent(expVal)

	if baseIsNum && baseVal.Kind() == numeric.KindInteger {
		if intPart != 0 && withinIntPolicy(ctx, baseVal, intPart) {
			*num = numeric.Mul(nil, *num, numeric.Pow(nil, baseVal, intPart))
		} else if intPart != 0 {
			return []pair{{exp, base}}
		}
		if frac == nil || frac.IsZero() {
			return nil
		}
		if root, ok := tryIntegerRoot(baseVal, frac); ok {
			*num = numeric.Mul(nil, *num, root)
			return nil
		}
		return []pair{{numericNode(frac), base}}
	}

	var out []pair
	if intPart != 0 {
		out = append(out, pair{node.NewInteger(numeric.FromInt64(intPart)), base})
	}
	if frac != nil && !frac.IsZero() {
		out = append(out, pair{numericNode(frac), base})
	}
	return out
}

func withinIntPolicy(ctx *kctx.Context, base *numeric.Value, e int64) bool {
	bits := int64(0)
	if z, ok := base.AsBigInt(); ok {
		bits = int64(z.BitLen())
	} else if r, ok := base.AsBigRat(); ok {
		bits = int64(r.Num().BitLen() + r.Denom().BitLen())
	}
	if e < 0 {
		e = -e
	}
	return bits*e <= int64(ctx.Config.MaxIntBits())
}

// tryIntegerRoot attempts to resolve base^frac (0 < |frac| < 1) to an
// exact integer: e.g. 4^(1/2) = 2.
func tryIntegerRoot(base *numeric.Value, frac *numeric.Value) (*numeric.Value, bool) {
	r, ok := frac.AsBigRat()
	if !ok || r.Num().Sign() == 0 {
		return nil, false
	}
	num := new(big.Int).Abs(r.Num())
	if num.Cmp(big.NewInt(1)) != 0 {
		return nil, false
	}
	denom := r.Denom().Int64()
	root, found := numeric.IntegerNthRoot(base, denom)
	if !found {
		return nil, false
	}
	if r.Num().Sign() < 0 {
		return numeric.Div(nil, numeric.FromInt64(1), root)
	}
	return root, true
}

// splitRationalExponent splits a numeric Integer/Rational exponent into
// a (possibly zero) integer part and the remaining fractional part in
// [0, 1), following the usual floor-division convention.
func splitRationalExponent(v *numeric.Value) (int64, *numeric.Value) {
	if z, ok := v.AsBigInt(); ok {
		return z.Int64(), nil
	}
	r, ok := v.AsBigRat()
	if !ok {
		return 0, nil
	}
	num, den := r.Num(), r.Denom()
	q := new(big.Int).Div(num, den) // big.Int.Div floors toward -Inf for positive divisors
	rem := new(big.Int).Sub(num, new(big.Int).Mul(q, den))
	fracRat := new(big.Rat).SetFrac(rem, den)
	return q.Int64(), numeric.FromBigRat(fracRat)
}

func applyProductExtensionHook(ctx *kctx.Context, num **numeric.Value, pairs []pair) []pair {
	for _, vt := range ctx.Registry.Ordered() {
		if vt.Mul == nil {
			continue
		}
		hasExt := false
		for _, p := range pairs {
			if _, ok := node.Resolve(p.base).(*node.Extension); ok {
				hasExt = true
				break
			}
		}
		if !hasExt {
			continue
		}
		extPairs := make([]ext.Pair, len(pairs))
		for i, p := range pairs {
			extPairs[i] = ext.Pair{Scalar: p.scalar, Base: p.base}
		}
		newNum, newPairs, changed := vt.Mul(numericNode(*num), extPairs, extPairs)
		if !changed {
			continue
		}
		if v, ok := node.NumericValueOf(newNum); ok {
			*num = numeric.Mul(nil, *num, v)
		}
		out := make([]pair, len(newPairs))
		for i, p := range newPairs {
			out[i] = pair{scalar: p.Scalar, base: p.Base}
		}
		slices.SortStableFunc(out, func(a, b pair) int { return node.Cmp(a.base, b.base) })
		pairs = coalesceProduct(ctx, num, out)
	}
	return pairs
}

func assembleProduct(ctx *kctx.Context, num *numeric.Value, pairs []pair) node.Node {
	numNonOne := !num.IsOne()
	factor := func(p pair) node.Node {
		if isOne(p.scalar) {
			return p.base
		}
		return evalPower(ctx, p.base, p.scalar)
	}
	if len(pairs) == 0 {
		return track(ctx, node.NewInteger(num), true)
	}
	if len(pairs) == 1 && !numNonOne {
		return factor(pairs[0])
	}
	args := make([]node.Node, 0, len(pairs))
	for _, p := range pairs {
		args = append(args, factor(p))
	}
	var prod node.Node
	if len(args) == 1 {
		prod = args[0]
	} else {
		prod = track(ctx, node.NewProduct(args), false)
	}
	if !numNonOne {
		return prod
	}
	return track(ctx, node.NewFactor(numericNode(num), prod), false)
}
