// Package numeric is the thin uniform wrapper over arbitrary-precision
// numerics described in spec.md §4.2 (C2): integer, rational,
// multiprecision float, and complex, each exposed through the same set
// of field operations. The kernel's node layer treats a numeric.Value as
// an opaque payload; only this package reaches into math/big.
package numeric

import (
	"fmt"
	"math"
	"math/big"

	"github.com/remyoudompheng/bigfft"
	"modernc.org/mathutil"
)

// Kind tags which concrete numeric representation a Value holds.
type Kind uint8

const (
	KindInteger Kind = iota
	KindRational
	KindFloat
	KindComplex
)

// bigfftThreshold is the operand bit length above which integer
// multiplication is routed through bigfft instead of math/big's
// schoolbook/Karatsuba multiplier. It matters almost entirely for the
// evaluation-point integers the heuristic GCD (spec.md §4.7) builds when
// substituting x ↦ ξ into a polynomial of non-trivial degree: those
// integers can run into the tens of thousands of bits.
const bigfftThreshold = 1 << 15

// Value is an opaque numeric node payload. Exactly one of the typed
// fields is meaningful, selected by Kind. Re/Im are themselves Values of
// Kind != KindComplex, matching spec.md §3's "re, im are both
// non-Complex numeric nodes" invariant.
type Value struct {
	kind Kind
	i    *big.Int
	r    *big.Rat
	f    *big.Float
	re   *Value
	im   *Value
}

// Dest is the "destination handle" of spec.md §4.2: Dummy signals
// "allocate a fresh node", a non-nil *Value signals "reuse this value's
// backing storage in place". Dest only matters for Integer/Rational/
// Float kinds, whose math/big payload supports in-place receivers.
type Dest = *Value

// Dummy is the zero Dest: every operation taking a Dest treats nil as
// "allocate fresh".
var Dummy Dest = nil

func FromInt64(v int64) *Value { return &Value{kind: KindInteger, i: big.NewInt(v)} }

// FromBigInt takes ownership of z; callers must not mutate it afterward.
func FromBigInt(z *big.Int) *Value { return &Value{kind: KindInteger, i: z} }

// FromBigRat takes ownership of z and runs Simplify over it.
func FromBigRat(z *big.Rat) *Value { return Simplify(&Value{kind: KindRational, r: z}) }

// FromBigFloat takes ownership of z.
func FromBigFloat(z *big.Float) *Value { return &Value{kind: KindFloat, f: z} }

// FromComplex builds a complex value and runs Simplify so a zero
// imaginary part collapses to its real part (spec.md §3).
func FromComplex(re, im *Value) *Value {
	return Simplify(&Value{kind: KindComplex, re: re, im: im})
}

func (v *Value) Kind() Kind { return v.kind }

func (v *Value) destOrAlloc(dest Dest, kind Kind) *Value {
	if dest != nil {
		dest.kind = kind
		return dest
	}
	return &Value{kind: kind}
}

// Simplify is the mandatory num_simplify step of spec.md §4.2: collapses
// a Rational with unit denominator to Integer, and a Complex with zero
// imaginary part to its real part.
func Simplify(v *Value) *Value {
	switch v.kind {
	case KindRational:
		if v.r.IsInt() {
			return &Value{kind: KindInteger, i: new(big.Int).Set(v.r.Num())}
		}
	case KindComplex:
		if v.im.IsZero() {
			return v.re
		}
	}
	return v
}

func (v *Value) IsZero() bool {
	switch v.kind {
	case KindInteger:
		return v.i.Sign() == 0
	case KindRational:
		return v.r.Sign() == 0
	case KindFloat:
		return v.f.Sign() == 0
	case KindComplex:
		return v.re.IsZero() && v.im.IsZero()
	}
	return false
}

func (v *Value) IsOne() bool {
	switch v.kind {
	case KindInteger:
		return v.i.Cmp(big.NewInt(1)) == 0
	case KindRational:
		return v.r.Cmp(big.NewRat(1, 1)) == 0
	case KindFloat:
		one := big.NewFloat(1)
		return v.f.Cmp(one) == 0
	case KindComplex:
		return v.re.IsOne() && v.im.IsZero()
	}
	return false
}

// Sign returns -1, 0, or +1 for real-valued kinds. Complex values have no
// total sign and Sign panics for them; callers should test IsZero first.
func (v *Value) Sign() int {
	switch v.kind {
	case KindInteger:
		return v.i.Sign()
	case KindRational:
		return v.r.Sign()
	case KindFloat:
		return v.f.Sign()
	}
	panic("numeric: Sign of complex value")
}

func (v *Value) Pos() bool { return v.Kind() != KindComplex && v.Sign() > 0 }
func (v *Value) Neg() bool { return v.Kind() != KindComplex && v.Sign() < 0 }

func rank(k Kind) int { return int(k) }

// promote returns the common kind two operands must be converted to
// before a binary arithmetic op, following the usual numeric tower
// Integer < Rational < Float < Complex.
func promote(a, b Kind) Kind {
	if rank(a) > rank(b) {
		return a
	}
	return b
}

func (v *Value) toRat() *big.Rat {
	switch v.kind {
	case KindInteger:
		return new(big.Rat).SetInt(v.i)
	case KindRational:
		return v.r
	}
	panic("numeric: toRat of non-rational-tower value")
}

func (v *Value) toFloat(prec uint) *big.Float {
	switch v.kind {
	case KindInteger:
		return new(big.Float).SetPrec(prec).SetInt(v.i)
	case KindRational:
		f := new(big.Float).SetPrec(prec)
		num := new(big.Float).SetPrec(prec).SetInt(v.r.Num())
		den := new(big.Float).SetPrec(prec).SetInt(v.r.Denom())
		return f.Quo(num, den)
	case KindFloat:
		return v.f
	}
	panic("numeric: toFloat of complex value")
}

func mulBigInt(x, y *big.Int) *big.Int {
	if x.BitLen() > bigfftThreshold && y.BitLen() > bigfftThreshold {
		return bigfft.Mul(x, y)
	}
	return new(big.Int).Mul(x, y)
}

// Add returns a+b, honoring dest as described in spec.md §4.2.
func Add(dest Dest, a, b *Value) *Value {
	k := promote(a.kind, b.kind)
	out := a.destOrAlloc(dest, k)
	switch k {
	case KindInteger:
		out.i = new(big.Int).Add(a.i, b.i)
	case KindRational:
		out.r = new(big.Rat).Add(a.toRat(), b.toRat())
	case KindFloat:
		prec := maxPrec(a, b)
		out.f = new(big.Float).SetPrec(prec).Add(a.toFloat(prec), b.toFloat(prec))
	case KindComplex:
		are, aim := partsOf(a)
		bre, bim := partsOf(b)
		return FromComplex(Add(nil, are, bre), Add(nil, aim, bim))
	}
	return Simplify(out)
}

func Sub(dest Dest, a, b *Value) *Value { return Add(dest, a, Neg(nil, b)) }

func Neg(dest Dest, a *Value) *Value {
	out := a.destOrAlloc(dest, a.kind)
	switch a.kind {
	case KindInteger:
		out.i = new(big.Int).Neg(a.i)
	case KindRational:
		out.r = new(big.Rat).Neg(a.r)
	case KindFloat:
		out.f = new(big.Float).Neg(a.f)
	case KindComplex:
		return FromComplex(Neg(nil, a.re), Neg(nil, a.im))
	}
	return out
}

func Mul(dest Dest, a, b *Value) *Value {
	k := promote(a.kind, b.kind)
	out := a.destOrAlloc(dest, k)
	switch k {
	case KindInteger:
		out.i = mulBigInt(a.i, b.i)
	case KindRational:
		out.r = new(big.Rat).Mul(a.toRat(), b.toRat())
	case KindFloat:
		prec := maxPrec(a, b)
		out.f = new(big.Float).SetPrec(prec).Mul(a.toFloat(prec), b.toFloat(prec))
	case KindComplex:
		are, aim := partsOf(a)
		bre, bim := partsOf(b)
		re := Sub(nil, Mul(nil, are, bre), Mul(nil, aim, bim))
		im := Add(nil, Mul(nil, are, bim), Mul(nil, aim, bre))
		return FromComplex(re, im)
	}
	return Simplify(out)
}

// Div returns a/b. Division by zero returns (nil, false).
func Div(dest Dest, a, b *Value) (*Value, bool) {
	if b.IsZero() {
		return nil, false
	}
	k := promote(a.kind, b.kind)
	if k == KindComplex {
		are, aim := partsOf(a)
		bre, bim := partsOf(b)
		denom := Add(nil, Mul(nil, bre, bre), Mul(nil, bim, bim))
		reNum := Add(nil, Mul(nil, are, bre), Mul(nil, aim, bim))
		imNum := Sub(nil, Mul(nil, aim, bre), Mul(nil, are, bim))
		re, _ := Div(nil, reNum, denom)
		im, _ := Div(nil, imNum, denom)
		return FromComplex(re, im), true
	}
	out := a.destOrAlloc(dest, KindRational)
	switch k {
	case KindFloat:
		prec := maxPrec(a, b)
		out.kind = KindFloat
		out.f = new(big.Float).SetPrec(prec).Quo(a.toFloat(prec), b.toFloat(prec))
	default:
		out.r = new(big.Rat).Quo(a.toRat(), b.toRat())
	}
	return Simplify(out), true
}

func partsOf(v *Value) (re, im *Value) {
	if v.kind == KindComplex {
		return v.re, v.im
	}
	return v, &Value{kind: KindInteger, i: big.NewInt(0)}
}

func maxPrec(a, b *Value) uint {
	pa, pb := precOf(a), precOf(b)
	if pa > pb {
		return pa
	}
	return pb
}

func precOf(v *Value) uint {
	if v.kind == KindFloat {
		return v.f.Prec()
	}
	return 128
}

// Abs returns |a|. For Complex, this is the real-valued modulus
// sqrt(re^2+im^2), returned as a Float.
func Abs(dest Dest, a *Value) *Value {
	switch a.kind {
	case KindInteger:
		out := a.destOrAlloc(dest, KindInteger)
		out.i = new(big.Int).Abs(a.i)
		return out
	case KindRational:
		out := a.destOrAlloc(dest, KindRational)
		out.r = new(big.Rat).Abs(a.r)
		return out
	case KindFloat:
		out := a.destOrAlloc(dest, KindFloat)
		out.f = new(big.Float).Abs(a.f)
		return out
	case KindComplex:
		re := a.re.toFloat(precOf(a.re))
		im := a.im.toFloat(precOf(a.im))
		sumSq := new(big.Float).Add(new(big.Float).Mul(re, re), new(big.Float).Mul(im, im))
		return &Value{kind: KindFloat, f: sqrtFloat(sumSq)}
	}
	panic("unreachable")
}

func sqrtFloat(x *big.Float) *big.Float {
	return new(big.Float).SetPrec(x.Prec()).Sqrt(x)
}

// Conj returns the complex conjugate; a no-op on real-tower kinds.
func Conj(dest Dest, a *Value) *Value {
	if a.kind != KindComplex {
		return a
	}
	return FromComplex(a.re, Neg(nil, a.im))
}

// Cmp orders two real-tower values; it panics on Complex (spec.md does
// not define a total order on Complex, only the lexicographic tie-break
// used by the sign-extraction convention in §4.4.6, exposed separately
// as LexLess).
func Cmp(a, b *Value) int {
	switch promote(a.kind, b.kind) {
	case KindFloat:
		prec := maxPrec(a, b)
		return a.toFloat(prec).Cmp(b.toFloat(prec))
	case KindComplex:
		panic("numeric: Cmp of complex value")
	default:
		return a.toRat().Cmp(b.toRat())
	}
}

// LexLess implements the lexicographic order of spec.md §4.4.6:
// (re > 0) ∨ (re = 0 ∧ im > 0), used to pick a canonical sign-equivalent
// representative.
func LexLess(a, b *Value) bool {
	are, aim := partsOf(a)
	bre, bim := partsOf(b)
	c := Cmp(are, bre)
	if c != 0 {
		return c < 0
	}
	return Cmp(aim, bim) < 0
}

// Min/Max operate over the real tower via Cmp.
func Min(a, b *Value) *Value {
	if Cmp(a, b) <= 0 {
		return a
	}
	return b
}

func Max(a, b *Value) *Value {
	if Cmp(a, b) >= 0 {
		return a
	}
	return b
}

// GCD computes the GCD of two Integer values (Rational/Complex GCD,
// also named by spec.md §4.2, are defined via the same content
// normalization the poly package uses and are not needed at the numeric
// layer beyond the Integer case).
func GCD(a, b *Value) *Value {
	if a.kind != KindInteger || b.kind != KindInteger {
		panic("numeric: GCD of non-integer value")
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(a.i), new(big.Int).Abs(b.i))
	return &Value{kind: KindInteger, i: g}
}

// LCM returns the least common multiple of two integers.
func LCM(a, b *Value) *Value {
	if a.IsZero() || b.IsZero() {
		return &Value{kind: KindInteger, i: big.NewInt(0)}
	}
	g := GCD(a, b)
	q := new(big.Int).Div(a.i, g.i)
	return &Value{kind: KindInteger, i: mulBigInt(q, b.i)}
}

// Smod is the symmetric modulus used by the heuristic GCD lift
// (spec.md §4.7 step 4d): the representative of a mod m lying in
// (-m/2, m/2].
func Smod(a, m *Value) *Value {
	if a.kind != KindInteger || m.kind != KindInteger {
		panic("numeric: Smod of non-integer value")
	}
	r := new(big.Int).Mod(a.i, m.i)
	half := new(big.Int).Rsh(m.i, 1)
	if r.Cmp(half) > 0 {
		r.Sub(r, m.i)
	}
	return &Value{kind: KindInteger, i: r}
}

// Mod is the ordinary Euclidean modulus (result always in [0, |m|)),
// backing the kernel's mod() BinaryFunc (spec.md §3). Smod above
// is the separate symmetric convention the heuristic GCD lift needs.
func Mod(a, m *Value) *Value {
	if a.kind != KindInteger || m.kind != KindInteger {
		panic("numeric: Mod of non-integer value")
	}
	r := new(big.Int).Mod(a.i, m.i)
	return &Value{kind: KindInteger, i: r}
}

// IsPrime reports whether an Integer value is probably prime, using
// modernc.org/mathutil's Miller-Rabin, for the INT_PRIME domain
// predicate of spec.md §6.
func IsPrime(a *Value) bool {
	if a.kind != KindInteger || a.i.Sign() <= 0 {
		return false
	}
	if a.i.IsUint64() && a.i.Uint64() <= math.MaxUint32 {
		return mathutil.IsPrime(uint32(a.i.Uint64()))
	}
	return a.i.ProbablyPrime(30)
}

// Pow raises a to an integer power e. Spec.md §4.2 notes pow on
// numerics "returns an arbitrary node (may be Integer × Power), not
// necessarily numeric" for fractional exponents; those cases are
// handled at the node/eval layer (which may decompose the result into a
// numeric part times a held radical). This function covers only integer
// exponents on any kind; exact integer roots are IntegerNthRoot's job.
func Pow(dest Dest, a *Value, e int64) *Value {
	if e == 0 {
		return FromInt64(1)
	}
	neg := e < 0
	if neg {
		e = -e
	}
	var result *Value
	switch a.kind {
	case KindInteger:
		result = &Value{kind: KindInteger, i: new(big.Int).Exp(a.i, big.NewInt(e), nil)}
	case KindRational:
		num := new(big.Int).Exp(a.r.Num(), big.NewInt(e), nil)
		den := new(big.Int).Exp(a.r.Denom(), big.NewInt(e), nil)
		result = FromBigRat(new(big.Rat).SetFrac(num, den))
	case KindFloat:
		f := big.NewFloat(1).SetPrec(a.f.Prec())
		for i := int64(0); i < e; i++ {
			f.Mul(f, a.f)
		}
		result = &Value{kind: KindFloat, f: f}
	case KindComplex:
		result = FromInt64(1)
		for i := int64(0); i < e; i++ {
			result = Mul(nil, result, a)
		}
	}
	if neg {
		q, ok := Div(dest, FromInt64(1), result)
		if !ok {
			panic("numeric: Pow of zero base to negative exponent")
		}
		return q
	}
	if dest != nil {
		*dest = *result
		return dest
	}
	return result
}

// PowReal computes a^e for a real-tower base and a real-tower exponent
// that did not collapse to an exact integer root, by round-tripping
// through float64. Used only as the evaluator's last resort for
// Float-base/fractional-exponent Power nodes (spec.md §4.4.4); the
// result carries the same precision as a.
func PowReal(a, e *Value) *Value {
	prec := maxPrec(a, e)
	af, _ := a.toFloat(prec).Float64()
	ef, _ := e.toFloat(prec).Float64()
	return &Value{kind: KindFloat, f: new(big.Float).SetPrec(prec).SetFloat64(math.Pow(af, ef))}
}

// IntegerNthRoot returns (root, true) if a is a perfect n-th power of an
// Integer, used by Pow-of-rational-exponent handling in the evaluator
// (spec.md §4.4.4 "Integer base with rational exponent").
func IntegerNthRoot(a *Value, n int64) (*Value, bool) {
	if a.kind != KindInteger || a.i.Sign() < 0 || n <= 0 {
		return nil, false
	}
	root := nthRoot(a.i, n)
	check := new(big.Int).Exp(root, big.NewInt(n), nil)
	if check.Cmp(a.i) != 0 {
		return nil, false
	}
	return &Value{kind: KindInteger, i: root}, true
}

// nthRoot computes floor(x^(1/n)) for x >= 0 via Newton's method on
// big.Int, seeded from a big.Float estimate.
func nthRoot(x *big.Int, n int64) *big.Int {
	if x.Sign() == 0 {
		return big.NewInt(0)
	}
	bits := x.BitLen()
	guessBits := (bits + int(n) - 1) / int(n)
	if guessBits < 1 {
		guessBits = 1
	}
	y := new(big.Int).Lsh(big.NewInt(1), uint(guessBits))
	nBig := big.NewInt(n)
	nMinus1 := big.NewInt(n - 1)
	for i := 0; i < 100; i++ {
		yPow := new(big.Int).Exp(y, big.NewInt(n-1), nil)
		if yPow.Sign() == 0 {
			break
		}
		num := new(big.Int).Add(new(big.Int).Mul(nMinus1, y), new(big.Int).Div(x, yPow))
		next := new(big.Int).Div(num, nBig)
		if next.Cmp(y) == 0 {
			break
		}
		y = next
	}
	for {
		yPow := new(big.Int).Exp(y, big.NewInt(n), nil)
		if yPow.Cmp(x) > 0 {
			y.Sub(y, big.NewInt(1))
		} else {
			break
		}
	}
	for {
		next := new(big.Int).Add(y, big.NewInt(1))
		nextPow := new(big.Int).Exp(next, big.NewInt(n), nil)
		if nextPow.Cmp(x) <= 0 {
			y = next
		} else {
			break
		}
	}
	return y
}

func (v *Value) String() string {
	switch v.kind {
	case KindInteger:
		return v.i.String()
	case KindRational:
		return v.r.RatString()
	case KindFloat:
		return v.f.Text('g', 10)
	case KindComplex:
		return fmt.Sprintf("(%s+%si)", v.re, v.im)
	}
	return "?"
}

// AsBigInt exposes the underlying *big.Int for Integer values, needed by
// the node/eval/poly layers to do exponent bookkeeping, variable
// substitution, and evaluation-point arithmetic without round-tripping
// through Value for every intermediate step.
func (v *Value) AsBigInt() (*big.Int, bool) {
	if v.kind != KindInteger {
		return nil, false
	}
	return v.i, true
}

// AsBigRat exposes the underlying *big.Rat for Rational values.
func (v *Value) AsBigRat() (*big.Rat, bool) {
	if v.kind != KindRational {
		return nil, false
	}
	return v.r, true
}

// AsBigFloat returns v's value as a *big.Float at a working precision,
// converting Integer/Rational representations rather than requiring
// v.Kind() == KindFloat; used by the evaluator's float64 fallback for
// transcendental unary functions (spec.md §4.4.5) where an exact result
// isn't available.
func (v *Value) AsBigFloat() (*big.Float, bool) {
	switch v.kind {
	case KindInteger, KindRational, KindFloat:
		return v.toFloat(precOf(v)), true
	}
	return nil, false
}

// FromFloat64 builds a Float value from a float64 result, at the given
// working precision (a minimum of 53 bits, float64's own precision).
func FromFloat64(x float64, prec uint) *Value {
	if prec < 53 {
		prec = 53
	}
	return &Value{kind: KindFloat, f: new(big.Float).SetPrec(prec).SetFloat64(x)}
}

// ComplexParts exposes the real/imaginary components of a Complex value.
func (v *Value) ComplexParts() (re, im *Value, ok bool) {
	if v.kind != KindComplex {
		return nil, nil, false
	}
	return v.re, v.im, true
}

// Equal reports exact equality (spec.md §4.3 identical's byte-wise
// numeric comparison).
func Equal(a, b *Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindInteger:
		return a.i.Cmp(b.i) == 0
	case KindRational:
		return a.r.Cmp(b.r) == 0
	case KindFloat:
		// big.Float has no NaN; two infinities are equal when their
		// signs match.
		if a.f.IsInf() && b.f.IsInf() {
			return a.f.Signbit() == b.f.Signbit()
		}
		return a.f.Cmp(b.f) == 0
	case KindComplex:
		return Equal(a.re, b.re) && Equal(a.im, b.im)
	}
	return false
}
