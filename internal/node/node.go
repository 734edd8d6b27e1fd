package node

import "may/internal/domain"

// Node is the common interface every concrete expression type satisfies.
// Children returns the node's direct operands in the order the data
// model of spec.md §3 defines them (used by the arena's copying
// traversal, by identical's reverse-index comparison, and by the
// evaluator's recursive descent).
type Node interface {
	Kind() Kind
	Header() *Header
	Children() []Node
}

// Header carries the flags and hash every node shares (spec.md §3).
// Embedded by value in every concrete node type.
type Header struct {
	flags Flags
	hash  uint64
}

func (h *Header) Header() *Header  { return h }
func (h *Header) Flags() Flags     { return h.flags }
func (h *Header) Hash() uint64     { return h.hash }
func (h *Header) SetFlag(f Flags)  { h.flags |= f }
func (h *Header) SetHash(v uint64) { h.hash = v }
func (h *Header) IsEval() bool     { return h.flags.Has(FlagEval) }
func (h *Header) IsNum() bool      { return h.flags.Has(FlagNum) }

// Domained is satisfied by node kinds that carry a domain.Mask
// assumption (only Symbol, per spec.md §3).
type Domained interface {
	Domain() domain.Mask
}

// Integer, Rational, Float, Complex wrap a numeric.Value. They are kept
// as distinct Node kinds (rather than one NumberNode) because spec.md §3
// gives each its own invariants and because the evaluator's type switch
// dispatches on them individually (e.g. Power-of-Pow combination rules
// differ by whether the base is literally Integer).
