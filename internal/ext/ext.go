// Package ext implements the extension vtable registry of spec.md §9's
// design notes: "extensions register a record of optional hooks {eval,
// add, mul, pow, trig/inverse-trig, constructor, zero?, one?, nonzero?,
// name, priority}. Priority orders extensions during sum/product
// folding so higher-priority ones see already-coalesced lower-priority
// operands." Modeled as a registry of function-pointer structs keyed by
// a stable github.com/google/uuid id, per that same design note's
// closing suggestion.
package ext

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"may/internal/node"
)

// SumHook is invoked by the evaluator's Sum coalescence post-extension
// hook (spec.md §4.4.2 step 5) with the current numeric accumulator and
// the sorted (coeff, base) pairs; it may return a rewritten pair set.
type SumHook func(num node.Node, pairs []Pair) (node.Node, []Pair, bool)

// MulHook is the Product analogue (spec.md §4.4.3 step 7): it receives
// the sorted pair array plus a copy of the original order, for
// extensions whose multiplication is not commutative.
type MulHook func(num node.Node, sorted, original []Pair) (node.Node, []Pair, bool)

// PowHook handles base^exponent when base is this extension.
type PowHook func(base *node.Extension, exp node.Node) (node.Node, bool)

// Pair is the generic (coefficient-or-exponent, node) pair shared by Sum
// and Product coalescence.
type Pair struct {
	Scalar node.Node
	Base   node.Node
}

// Vtable is the optional hook set for one registered extension kind.
type Vtable struct {
	ID       node.ExtensionID
	Name     string
	Priority int
	Eval     func(args []node.Node) (node.Node, bool)
	Add      SumHook
	Mul      MulHook
	Pow      PowHook
	IsZero   func(args []node.Node) bool
	IsOne    func(args []node.Node) bool
	Nonzero  func(args []node.Node) bool
}

// Registry holds every extension registered in a kernel instance.
// An RWMutex guards it, so Register, Unregister, Lookup and Ordered may
// be called from any goroutine, including forked Contexts sharing it.
type Registry struct {
	mu    sync.RWMutex
	byID  map[node.ExtensionID]*Vtable
}

func NewRegistry() *Registry {
	return &Registry{byID: make(map[node.ExtensionID]*Vtable)}
}

// Register assigns a fresh stable id to v (overwriting v.ID) and adds it
// to the registry.
func (r *Registry) Register(v *Vtable) node.ExtensionID {
	r.mu.Lock()
	defer r.mu.Unlock()
	v.ID = uuid.New()
	r.byID[v.ID] = v
	return v.ID
}

// Lookup returns the vtable for id, if registered.
func (r *Registry) Lookup(id node.ExtensionID) (*Vtable, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.byID[id]
	return v, ok
}

// Unregister removes an extension; any live expression still referring
// to it will raise InvalidToken on next evaluation (spec.md §7).
func (r *Registry) Unregister(id node.ExtensionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
}

// Ordered returns every registered vtable sorted by ascending priority,
// so during sum/product folding higher-priority extensions run after
// lower-priority ones have been coalesced.
func (r *Registry) Ordered() []*Vtable {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Vtable, 0, len(r.byID))
	for _, v := range r.byID {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return out
}
