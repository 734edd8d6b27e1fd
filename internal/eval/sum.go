package eval

import (
	"may/internal/ext"
	"may/internal/kctx"
	"may/internal/node"
	"may/internal/numeric"

	"golang.org/x/exp/slices"
)

type pair struct {
	scalar node.Node // coefficient (Sum) or exponent (Product)
	base   node.Node
}

// evalSum implements spec.md §4.4.2.
func evalSum(ctx *kctx.Context, rawArgs []node.Node) node.Node {
	num := numeric.FromInt64(0)
	var pending []node.Node

	flattenSum(ctx, rawArgs, &num, &pending)

	pairs := make([]pair, len(pending))
	for i, t := range pending {
		c, b := splitFactor(t)
		pairs[i] = pair{scalar: c, base: b}
	}

	slices.SortStableFunc(pairs, func(a, b pair) int { return node.Cmp(a.base, b.base) })

	pairs = coalesceSum(pairs)
	pairs = applySumExtensionHook(ctx, &num, pairs)

	return assembleSum(ctx, num, pairs)
}

func flattenSum(ctx *kctx.Context, args []node.Node, num **numeric.Value, pending *[]node.Node) {
	for _, a := range args {
		c := Eval(ctx, a)
		if v, ok := node.NumericValueOf(c); ok {
			*num = numeric.Add(nil, *num, v)
			continue
		}
		if s, ok := c.(*node.Sum); ok {
			// c is already canonical: at most one leading numeric arg.
			start := 0
			if v, ok := node.NumericValueOf(s.Args[0]); ok {
				*num = numeric.Add(nil, *num, v)
				start = 1
			}
			*pending = append(*pending, s.Args[start:]...)
			continue
		}
		*pending = append(*pending, c)
	}
}

func coalesceSum(pairs []pair) []pair {
	out := pairs[:0]
	i := 0
	for i < len(pairs) {
		j := i + 1
		coeffVal, _ := node.NumericValueOf(pairs[i].scalar)
		acc := coeffVal
		for j < len(pairs) && node.Identical(pairs[i].base, pairs[j].base) == 0 {
			v, _ := node.NumericValueOf(pairs[j].scalar)
			acc = numeric.Add(nil, acc, v)
			j++
		}
		if !acc.IsZero() {
			out = append(out, pair{scalar: numericNode(acc), base: pairs[i].base})
		}
		i = j
	}
	return out
}

func applySumExtensionHook(ctx *kctx.Context, num **numeric.Value, pairs []pair) []pair {
	for _, vt := range ctx.Registry.Ordered() {
		if vt.Add == nil {
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
		newNum, newPairs, changed := vt.Add(numericNode(*num), extPairs)
		if !changed {
			continue
		}
		if v, ok := node.NumericValueOf(newNum); ok {
			*num = v
		}
		out := make([]pair, len(newPairs))
		for i, p := range newPairs {
			out[i] = pair{scalar: p.Scalar, base: p.Base}
		}
		slices.SortStableFunc(out, func(a, b pair) int { return node.Cmp(a.base, b.base) })
		pairs = coalesceSum(out)
	}
	return pairs
}

func numericNode(v *numeric.Value) node.Node {
	switch v.Kind() {
	case numeric.KindInteger:
		return node.NewInteger(v)
	case numeric.KindRational:
		return node.NewRational(v)
	case numeric.KindFloat:
		return node.NewFloat(v)
	default:
		re, im, _ := v.ComplexParts()
		return node.NewComplex(numericNode(re), numericNode(im))
	}
}

func assembleSum(ctx *kctx.Context, num *numeric.Value, pairs []pair) node.Node {
	numNonZero := !num.IsZero()
	if len(pairs) == 0 {
		return track(ctx, numericNode(num), true)
	}
	term := func(p pair) node.Node {
		if isOne(p.scalar) {
			return p.base
		}
		return track(ctx, node.NewFactor(p.scalar, p.base), false)
	}
	if len(pairs) == 1 && !numNonZero {
		return term(pairs[0])
	}
	args := make([]node.Node, 0, len(pairs)+1)
	if numNonZero {
		args = append(args, numericNode(num))
	}
	for _, p := range pairs {
		args = append(args, term(p))
	}
	if len(args) == 1 {
		return args[0]
	}
	return track(ctx, node.NewSum(args), false)
}
