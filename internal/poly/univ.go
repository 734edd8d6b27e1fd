package poly

import (
	"may/internal/eval"
	"may/internal/kctx"
	"may/internal/node"
	"may/internal/numeric"
)

// UnivPoly is a polynomial in a single main variable with coefficients
// that are themselves arbitrary canonical expressions (possibly
// containing other variables) -- spec.md §4.6's extract_coeff vector,
// generalised so the same type serves both genuinely univariate
// integer-coefficient polynomials (the GCD engine's scope) and
// multivariate ones used only by Divexact/Content's coefficient walk.
type UnivPoly struct {
	Var    node.Node
	Coeffs []node.Node // Coeffs[i] is the coefficient of Var^i; Coeffs[len-1] != 0
}

// ExtractCoeff implements spec.md §4.6's extract_coeff(x, var): decompose
// x into a dense vector of coefficients indexed by the integer exponent
// of var in each term.
func ExtractCoeff(ctx *kctx.Context, x, v node.Node) *UnivPoly {
	x = eval.Eval(ctx, x)
	byDeg := map[int64]node.Node{}
	addTerm := func(deg int64, term node.Node) {
		if cur, ok := byDeg[deg]; ok {
			byDeg[deg] = eval.Eval(ctx, node.NewSum([]node.Node{cur, term}))
		} else {
			byDeg[deg] = term
		}
	}
	si := eval.NewSumIterator(ctx, x)
	if si.Leader != nil {
		addTerm(0, si.Leader)
	}
	for {
		coeff, base, ok := si.Next()
		if !ok {
			break
		}
		deg, rest := splitOutVar(ctx, base, v)
		var term node.Node
		switch {
		case rest == nil && isOneNode(coeff):
			term = node.NewInteger(numeric.FromInt64(1))
		case rest == nil:
			term = coeff
		case isOneNode(coeff):
			term = rest
		default:
			term = eval.Eval(ctx, node.NewFactor(coeff, rest))
		}
		addTerm(deg, term)
	}
	maxDeg := int64(-1)
	for d := range byDeg {
		if d > maxDeg {
			maxDeg = d
		}
	}
	if maxDeg < 0 {
		return &UnivPoly{Var: v, Coeffs: nil}
	}
	coeffs := make([]node.Node, maxDeg+1)
	zero := node.NewInteger(numeric.FromInt64(0))
	for i := range coeffs {
		if c, ok := byDeg[int64(i)]; ok {
			coeffs[i] = c
		} else {
			coeffs[i] = zero
		}
	}
	return &UnivPoly{Var: v, Coeffs: coeffs}
}

func isOneNode(n node.Node) bool {
	v, ok := node.NumericValueOf(n)
	return ok && v.IsOne()
}

// splitOutVar decomposes base (a Product/Power/bare-symbol monomial
// factor, as produced by splitFactor's term half) into the integer
// exponent of v and the remaining factor (nil if nothing remains).
func splitOutVar(ctx *kctx.Context, base, v node.Node) (deg int64, rest node.Node) {
	pi := eval.NewProductIterator(ctx, base)
	var restFactors []node.Node
	if pi.Leader != nil {
		restFactors = append(restFactors, pi.Leader)
	}
	for {
		b, e, ok := pi.Next()
		if !ok {
			break
		}
		if node.Identical(b, v) == 0 {
			if ev, ok := node.NumericValueOf(e); ok {
				if z, isInt := ev.AsBigInt(); isInt {
					deg = z.Int64()
					continue
				}
			}
		}
		if e != nil && !isOneNode(e) {
			restFactors = append(restFactors, node.NewPower(b, e))
		} else {
			restFactors = append(restFactors, b)
		}
	}
	switch len(restFactors) {
	case 0:
		return deg, nil
	case 1:
		return deg, restFactors[0]
	default:
		return deg, node.NewProduct(restFactors)
	}
}

// ToNode rebuilds the expression Σ Coeffs[i]·Var^i.
func (u *UnivPoly) ToNode(ctx *kctx.Context) node.Node {
	if len(u.Coeffs) == 0 {
		return eval.Eval(ctx, node.NewInteger(numeric.FromInt64(0)))
	}
	var args []node.Node
	for i, c := range u.Coeffs {
		if isZeroNode(c) {
			continue
		}
		if i == 0 {
			args = append(args, c)
			continue
		}
		var vp node.Node = u.Var
		if i > 1 {
			vp = node.NewPower(u.Var, node.NewInteger(numeric.FromInt64(int64(i))))
		}
		args = append(args, node.NewFactor(c, vp))
	}
	if len(args) == 0 {
		return eval.Eval(ctx, node.NewInteger(numeric.FromInt64(0)))
	}
	if len(args) == 1 {
		return eval.Eval(ctx, args[0])
	}
	return eval.Eval(ctx, node.NewSum(args))
}

func isZeroNode(n node.Node) bool {
	v, ok := node.NumericValueOf(n)
	return ok && v.IsZero()
}

// Degree returns the polynomial's degree, or -1 for the zero polynomial.
func (u *UnivPoly) Degree() int64 { return int64(len(u.Coeffs)) - 1 }

// Lead returns the leading coefficient, or nil for the zero polynomial.
func (u *UnivPoly) Lead() node.Node {
	if len(u.Coeffs) == 0 {
		return nil
	}
	return u.Coeffs[len(u.Coeffs)-1]
}

// IsNumeric reports whether every coefficient is purely numeric, the
// precondition the GCD engine's integer-polynomial machinery requires.
func (u *UnivPoly) IsNumeric() bool {
	for _, c := range u.Coeffs {
		if _, ok := node.NumericValueOf(c); !ok {
			return false
		}
	}
	return true
}

// trim drops leading (high-degree) zero coefficients.
func (u *UnivPoly) trim() {
	n := len(u.Coeffs)
	for n > 0 && isZeroNode(u.Coeffs[n-1]) {
		n--
	}
	u.Coeffs = u.Coeffs[:n]
}
