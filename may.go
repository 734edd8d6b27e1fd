// Package may is the public surface of spec.md §6: a symbolic-algebra
// kernel built around an immutable expression DAG, a canonical-form
// evaluator, and a polynomial layer (expansion, exact division,
// content/GCD, Karatsuba multiplication, partial fractions).
//
// A Kernel bundles the per-thread globals spec.md §5 describes as
// thread-local (arena, error frame, configuration); it is not safe for
// concurrent use by more than one goroutine at a time -- Fork a child
// Kernel to hand independent work to another goroutine.
package may

import (
	"may/internal/arena"
	"may/internal/config"
	"may/internal/domain"
	"may/internal/errframe"
	"may/internal/eval"
	"may/internal/kctx"
	"may/internal/node"
	"may/internal/numeric"
	"may/internal/poly"
)

// Node is the kernel's expression handle, re-exported so callers never
// need to import internal/node directly.
type Node = node.Node

// Domain is the symbol-assumption bitmask of spec.md §6.
type Domain = domain.Mask

const (
	Real      = domain.Real
	RealPos   = domain.RealPos
	RealNeg   = domain.RealNeg
	RealNonneg = domain.RealNonneg
	RealNonpos = domain.RealNonpos
	Nonzero   = domain.Nonzero
	Integer   = domain.Integer
	IntPos    = domain.IntPos
	IntNeg    = domain.IntNeg
	IntNonneg = domain.IntNonneg
	IntNonpos = domain.IntNonpos
	IntEven   = domain.IntEven
	IntPrime  = domain.IntPrime
	Rational  = domain.Rational
	CRational = domain.CRational
	CInteger  = domain.CInteger
	Complex   = domain.Complex
)

// Kernel owns one arena, one error frame, and one configuration --
// spec.md §5's "kernel is single-threaded per arena."
type Kernel struct {
	ctx *kctx.Context
}

// New returns a Kernel with an unbounded arena and default configuration.
func New() *Kernel { return &Kernel{ctx: kctx.New()} }

// Fork returns a child Kernel with its own sub-arena, for handing
// independent work to another goroutine (spec.md §5).
func (k *Kernel) Fork() *Kernel { return &Kernel{ctx: k.ctx.Fork()} }

// --- Constructors (spec.md §6 "Constructors for every node type") ---

func Int(v int64) Node                       { return node.NewInteger(numeric.FromInt64(v)) }
func Sym(name string, dom Domain) Node       { return node.NewSymbol(name, dom) }
func Sum(args ...Node) Node                  { return node.NewSum(args) }
func Product(args ...Node) Node              { return node.NewProduct(args) }
func Factor(coeff, term Node) Node           { return node.NewFactor(coeff, term) }
func Power(base, exp Node) Node              { return node.NewPower(base, exp) }
func List(elems ...Node) Node                { return node.NewList(elems) }
func Matrix(rows, cols int, elems ...Node) Node {
	return node.NewMatrix(rows, cols, elems)
}

// --- Evaluation, identity, and order ---

// Eval canonicalises x (spec.md §4.4).
func (k *Kernel) Eval(x Node) Node { return eval.Eval(k.ctx, x) }

// Identical reports structural equality after evaluation: -1, 0, +1.
func Identical(x, y Node) int { return node.Identical(x, y) }

// Cmp is the total order used to sort Sum/Product operands.
func Cmp(x, y Node) int { return node.Cmp(x, y) }

// Sprint renders an evaluated node as an infix debug string. It is not
// the display-conventions printer spec.md §6 names as an external
// collaborator -- just enough to read back what Eval produced.
func Sprint(x Node) string { return node.Sprint(x) }

// --- Polynomial layer (C6-C9) ---

// Expand distributes Products over Sums into canonical polynomial form.
func (k *Kernel) Expand(x Node) Node { return poly.Expand(k.ctx, x) }

// Divexact divides a by b exactly, reporting false if b does not
// divide a in the polynomial ring.
func (k *Kernel) Divexact(a, b Node) (Node, bool) { return poly.Divexact(k.ctx, a, b) }

// GCD computes the greatest common divisor of every input.
func (k *Kernel) GCD(xs ...Node) Node { return poly.GCD(k.ctx, xs) }

// Content returns the content of x in v (or the integer content, if v
// is nil).
func (k *Kernel) Content(x Node, v Node) Node { return poly.Content(k.ctx, x, v) }

// Primpart returns x divided by its content in v.
func (k *Kernel) Primpart(x Node, v Node) Node { return poly.Primpart(k.ctx, x, v) }

// ExtractCoeff decomposes x into its coefficient vector in v.
func (k *Kernel) ExtractCoeff(x, v Node) *poly.UnivPoly { return poly.ExtractCoeff(k.ctx, x, v) }

// Partfrac decomposes numer/denom into a partial-fraction sum over x.
func (k *Kernel) Partfrac(numer, denom, x Node) Node {
	return poly.Partfrac(k.ctx, numer, denom, x)
}

// Karatsuba multiplies two expanded polynomials over vars using the
// one-variable-at-a-time Karatsuba split of spec.md §4.8.
func (k *Kernel) Karatsuba(a, b Node, vars []Node) Node {
	pa := poly.FromNode(k.ctx, a, vars)
	pb := poly.FromNode(k.ctx, b, vars)
	return poly.Karatsuba(pa, pb).ToNode(k.ctx)
}

// --- Domain predicates ---

func IsReal(d Domain) bool     { return domain.IsReal(d) }
func IsInteger(d Domain) bool  { return domain.IsInteger(d) }
func IsRational(d Domain) bool { return domain.IsRational(d) }
func IsComplex(d Domain) bool  { return domain.IsComplex(d) }
func IsNonzero(d Domain) bool  { return domain.IsNonzero(d) }
func IsPositive(d Domain) bool { return domain.IsPositive(d) }
func IsNegative(d Domain) bool { return domain.IsNegative(d) }

// --- Arena control (spec.md §6, §4.1) ---

// Mark is an arena checkpoint returned by Kernel.Mark.
type Mark = arena.Mark

// Mark captures the arena's current registry top.
func (k *Kernel) Mark() Mark { return k.ctx.Arena.Mark() }

// Keep releases every node tracked since m that root does not reach.
func (k *Kernel) Keep(m Mark, root Node) Node { return k.ctx.Arena.Keep(m, root) }

// Compact is an alias for Keep, matching spec.md §6's naming.
func (k *Kernel) Compact(m Mark, root Node) Node { return k.ctx.Arena.Keep(m, root) }

// CompactV is the vector form of Keep/Compact.
func (k *Kernel) CompactV(m Mark, roots []Node) []Node { return k.ctx.Arena.CompactV(m, roots) }

// ChainedCompact1 defers compaction at the returned mark.
func (k *Kernel) ChainedCompact1() Mark { return k.ctx.Arena.ChainedCompact1() }

// ChainedCompact2 re-enables compaction and runs the deferred sweep.
func (k *Kernel) ChainedCompact2(m Mark, root Node) Node {
	return k.ctx.Arena.ChainedCompact2(m, root)
}

// --- Error frame (spec.md §6, §4.9) ---

// ErrorKind is one of the kinds enumerated in spec.md §7.
type ErrorKind = errframe.Kind

const (
	InvalidToken         = errframe.InvalidToken
	MemoryError          = errframe.Memory
	CannotBeConverted    = errframe.CannotBeConverted
	Dimension            = errframe.Dimension
	SingularMatrix       = errframe.SingularMatrix
	ValuationNotPositive = errframe.ValuationNotPositive
)

// Catch captures the current configuration, pushes it, and installs
// handler as the frame's active handler.
func (k *Kernel) Catch(handler func(err *errframe.KernelError)) {
	cfg := k.ctx.Config
	state := errframe.State{
		Precision:     cfg.Precision(),
		RoundingMode:  int(cfg.Rounding()),
		Base:          cfg.Base(),
		Presimplify:   cfg.Presimplify(),
		DefaultDomain: uint64(cfg.DefaultDomain()),
	}
	k.ctx.Frame.Catch(state, handler)
}

// Uncatch pops the top frame on a normal return path.
func (k *Kernel) Uncatch() { k.ctx.Frame.Uncatch() }

// Throw restores the previous frame's saved configuration, records the
// error, and invokes the installed handler.
func (k *Kernel) Throw(err *errframe.KernelError) {
	state, ok := k.ctx.Frame.Throw(err)
	if !ok {
		return
	}
	k.ctx.Config.SetPrecision(state.Precision)
	k.ctx.Config.SetRounding(config.RoundingMode(state.RoundingMode))
	k.ctx.Config.SetBase(state.Base)
	k.ctx.Config.SetPresimplify(state.Presimplify)
	k.ctx.Config.SetDefaultDomain(domain.Mask(uint32(state.DefaultDomain)))
}

// LastError returns the most recent error thrown on this Kernel's frame.
func (k *Kernel) LastError() (*errframe.KernelError, bool) { return k.ctx.Frame.LastError() }

// --- Kernel configuration (spec.md §6) ---

func (k *Kernel) SetPrecision(p uint) uint { return k.ctx.Config.SetPrecision(p) }
func (k *Kernel) Precision() uint          { return k.ctx.Config.Precision() }
func (k *Kernel) SetBase(b int) int        { return k.ctx.Config.SetBase(b) }
func (k *Kernel) Base() int                { return k.ctx.Config.Base() }
func (k *Kernel) SetPresimplify(v bool) bool {
	return k.ctx.Config.SetPresimplify(v)
}
func (k *Kernel) Presimplify() bool { return k.ctx.Config.Presimplify() }
func (k *Kernel) SetDefaultDomain(d Domain) Domain {
	return k.ctx.Config.SetDefaultDomain(d)
}
func (k *Kernel) DefaultDomain() Domain { return k.ctx.Config.DefaultDomain() }
func (k *Kernel) SetMaxIntBits(n int) int {
	return k.ctx.Config.SetMaxIntBits(n)
}
func (k *Kernel) MaxIntBits() int { return k.ctx.Config.MaxIntBits() }
