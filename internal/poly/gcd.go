package poly

import (
	"may/internal/eval"
	"may/internal/kctx"
	"may/internal/node"
	"may/internal/numeric"

	"golang.org/x/sync/errgroup"
)

// GCD implements spec.md §4.7's top-level gcd(tab[1..n]): a naive
// integer-content pass, followed by a pairwise-parallel tree-reduction
// fold of gcd2 over every input's coefficient vector in a shared main
// variable (spec.md §4.7 step 6's "optional parallel fold").
//
// Scope decision (see DESIGN.md): the bivariate kernel (Heuristic GCD,
// falling back to Sub-Resultant GCD) only operates when the extracted
// coefficients are purely numeric, matching spec.md §4.7 step 2's own
// "if either input is not a polynomial over the integers, abort and
// signal the caller to use the fallback". Genuinely multivariate or
// symbolic-coefficient inputs fall back to the naive content already
// factored out in step 1 -- step 4's Product unfolding is likewise
// simplified to Expand-before-fold rather than preserving factored form.
func GCD(ctx *kctx.Context, inputs []node.Node) node.Node {
	if len(inputs) == 0 {
		return eval.Eval(ctx, node.NewInteger(numeric.FromInt64(1)))
	}
	evaled := make([]node.Node, len(inputs))
	for i, n := range inputs {
		evaled[i] = Expand(ctx, n)
	}
	if len(evaled) == 1 {
		return evaled[0]
	}

	content := integerContent(ctx, evaled[0])
	for _, n := range evaled[1:] {
		content = numeric.GCD(content, integerContent(ctx, n))
	}

	reduced := make([]node.Node, len(evaled))
	for i, n := range evaled {
		if content.IsOne() {
			reduced[i] = n
			continue
		}
		if q, ok := Divexact(ctx, n, numericNodeOf(content)); ok {
			reduced[i] = q
		} else {
			reduced[i] = n
		}
	}

	common := Vars(reduced[0])
	for _, n := range reduced[1:] {
		common = intersectVars(common, Vars(n))
	}
	if len(common) == 0 {
		return eval.Eval(ctx, numericNodeOf(content))
	}
	x := common[0]

	g := gcdFoldParallel(ctx, reduced, x)
	return eval.Eval(ctx, mulNode(ctx, numericNodeOf(content), g))
}

// gcdFoldParallel reduces items to a single GCD via pairwise tree
// reduction, each level's independent gcd2 calls forked across their own
// per-worker Context (spec.md §5's "cross-thread sharing requires the
// caller to use a per-thread sub-arena that is later merged back via a
// copy-into-parent compact"): every pair runs against its own
// Context.Fork(), and the merged result is re-Evaled against the caller's
// ctx before the next level folds over it. GCD is associative and
// commutative, so the pairing order doesn't affect the result.
func gcdFoldParallel(ctx *kctx.Context, items []node.Node, x node.Node) node.Node {
	for len(items) > 1 {
		pairs := len(items) / 2
		next := make([]node.Node, pairs, pairs+len(items)%2)
		g := new(errgroup.Group)
		for i := 0; i < pairs; i++ {
			i := i
			worker := ctx.Fork()
			g.Go(func() error {
				next[i] = gcd2(worker, items[2*i], items[2*i+1], x)
				return nil
			})
		}
		_ = g.Wait()
		for i := range next {
			next[i] = eval.Eval(ctx, next[i])
		}
		if len(items)%2 == 1 {
			next = append(next, items[len(items)-1])
		}
		items = next
	}
	return items[0]
}

// gcd2 is spec.md §4.7's bivariate kernel: Heuristic GCD first, then
// Sub-Resultant GCD as fallback.
func gcd2(ctx *kctx.Context, a, b, x node.Node) node.Node {
	ua := ExtractCoeff(ctx, a, x)
	ub := ExtractCoeff(ctx, b, x)
	pa, okA := fromUniv(ua)
	pb, okB := fromUniv(ub)
	if !okA || !okB || len(pa) == 0 || len(pb) == 0 {
		return node.NewInteger(numeric.FromInt64(1))
	}
	if g, ok := HeuristicGCD(pa, pb); ok {
		return toUniv(g, x).ToNode(ctx)
	}
	g := SubResultantGCD(pa, pb)
	return toUniv(g, x).ToNode(ctx)
}

// numPoly is a dense univariate polynomial over numeric.Value,
// index i holding the coefficient of x^i, used by the GCD kernel's
// integer/rational-only fast path so it never has to re-canonicalise
// through node.Node on every arithmetic step.
type numPoly = []*numeric.Value

func trimNP(p numPoly) numPoly {
	n := len(p)
	for n > 0 && p[n-1].IsZero() {
		n--
	}
	return p[:n]
}

func degNP(p numPoly) int { return len(p) - 1 }

func leadNP(p numPoly) *numeric.Value {
	if len(p) == 0 {
		return numeric.FromInt64(0)
	}
	return p[len(p)-1]
}

func isZeroNP(p numPoly) bool { return len(p) == 0 }

func addNP(a, b numPoly) numPoly {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make(numPoly, n)
	for i := 0; i < n; i++ {
		av, bv := numeric.FromInt64(0), numeric.FromInt64(0)
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		out[i] = numeric.Add(nil, av, bv)
	}
	return trimNP(out)
}

func negNP(a numPoly) numPoly {
	out := make(numPoly, len(a))
	for i, v := range a {
		out[i] = numeric.Neg(nil, v)
	}
	return out
}

func subNP(a, b numPoly) numPoly { return addNP(a, negNP(b)) }

func scaleNP(a numPoly, s *numeric.Value) numPoly {
	out := make(numPoly, len(a))
	for i, v := range a {
		out[i] = numeric.Mul(nil, v, s)
	}
	return trimNP(out)
}

func divideAllNP(p numPoly, d *numeric.Value) numPoly {
	out := make(numPoly, len(p))
	for i, v := range p {
		q, _ := numeric.Div(nil, v, d)
		out[i] = q
	}
	return trimNP(out)
}

func mulNP(a, b numPoly) numPoly {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make(numPoly, len(a)+len(b)-1)
	for i := range out {
		out[i] = numeric.FromInt64(0)
	}
	for i, av := range a {
		if av.IsZero() {
			continue
		}
		for j, bv := range b {
			out[i+j] = numeric.Add(nil, out[i+j], numeric.Mul(nil, av, bv))
		}
	}
	return trimNP(out)
}

func shiftNP(a numPoly, k int) numPoly {
	if len(a) == 0 {
		return nil
	}
	out := make(numPoly, len(a)+k)
	for i := 0; i < k; i++ {
		out[i] = numeric.FromInt64(0)
	}
	copy(out[k:], a)
	return out
}

// divModNP computes the quotient and remainder of a by b via plain
// field division of leading coefficients (exact over the rationals;
// spec.md §4.7's pseudo-remainder scaling keeps the classic algorithm
// working over the integers, which this still agrees with
// value-for-value).
func divModNP(a, b numPoly) (q, r numPoly, ok bool) {
	b = trimNP(b)
	if len(b) == 0 {
		return nil, nil, false
	}
	degB := degNP(b)
	lb := leadNP(b)
	rem := trimNP(append(numPoly(nil), a...))
	q = numPoly{}
	for {
		degR := degNP(rem)
		if len(rem) == 0 || degR < degB {
			break
		}
		lr := leadNP(rem)
		c, divOk := numeric.Div(nil, lr, lb)
		if !divOk {
			return nil, nil, false
		}
		shift := degR - degB
		for shift >= len(q) {
			q = append(q, numeric.FromInt64(0))
		}
		q[shift] = c
		rem = trimNP(subNP(rem, shiftNP(scaleNP(b, c), shift)))
	}
	return trimNP(q), rem, true
}

func contentNP(p numPoly) *numeric.Value {
	var g *numeric.Value
	for _, v := range p {
		if v.IsZero() {
			continue
		}
		av := absValNumeric(v)
		if g == nil {
			g = av
		} else {
			g = numeric.GCD(g, av)
		}
	}
	if g == nil {
		return numeric.FromInt64(1)
	}
	return g
}

func absValNumeric(v *numeric.Value) *numeric.Value {
	if numeric.Cmp(v, numeric.FromInt64(0)) < 0 {
		return numeric.Neg(nil, v)
	}
	return v
}

func primpartNP(p numPoly) numPoly {
	c := contentNP(p)
	if c.IsOne() {
		return p
	}
	return divideAllNP(p, c)
}

func evalAtNP(p numPoly, x *numeric.Value) *numeric.Value {
	acc := numeric.FromInt64(0)
	for i := len(p) - 1; i >= 0; i-- {
		acc = numeric.Add(nil, numeric.Mul(nil, acc, x), p[i])
	}
	return acc
}

func maxAbsNP(ps ...numPoly) *numeric.Value {
	m := numeric.FromInt64(0)
	for _, p := range ps {
		for _, v := range p {
			av := absValNumeric(v)
			if numeric.Cmp(av, m) > 0 {
				m = av
			}
		}
	}
	return m
}

func powScalar(v *numeric.Value, n int) *numeric.Value {
	r := numeric.FromInt64(1)
	for i := 0; i < n; i++ {
		r = numeric.Mul(nil, r, v)
	}
	return r
}

func dividesExactlyNP(a, cand numPoly) bool {
	if isZeroNP(cand) {
		return false
	}
	_, r, ok := divModNP(a, cand)
	return ok && isZeroNP(r)
}

func fromUniv(u *UnivPoly) (numPoly, bool) {
	out := make(numPoly, len(u.Coeffs))
	for i, c := range u.Coeffs {
		v, ok := node.NumericValueOf(c)
		if !ok {
			return nil, false
		}
		out[i] = v
	}
	return trimNP(out), true
}

func toUniv(p numPoly, v node.Node) *UnivPoly {
	coeffs := make([]node.Node, len(p))
	for i, c := range p {
		coeffs[i] = numericNodeOf(c)
	}
	u := &UnivPoly{Var: v, Coeffs: coeffs}
	u.trim()
	return u
}
