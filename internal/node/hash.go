package node

import (
	"encoding/binary"
	"math/big"

	"golang.org/x/crypto/blake2b"
)

// hashState accumulates the incremental hash composition of spec.md §3
// ("hash is recomputed from child hashes on construction"). blake2b
// gives a fast, well-distributed 64-bit-folded digest; the kernel only
// needs hash-consing quality, not cryptographic strength, but the
// teacher's go.mod already carries golang.org/x/crypto transitively so
// there is no reason to hand-roll FNV here.
type hashState struct {
	h []byte
}

func newHashState(tag byte) *hashState {
	sum, _ := blake2b.New(32, nil)
	sum.Write([]byte{tag})
	return &hashState{h: sum.Sum(nil)}
}

func (s *hashState) mix(b []byte) *hashState {
	sum, _ := blake2b.New(32, nil)
	sum.Write(s.h)
	sum.Write(b)
	return &hashState{h: sum.Sum(nil)}
}

func (s *hashState) mixUint64(v uint64) *hashState {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return s.mix(buf[:])
}

func (s *hashState) fold() uint64 {
	return binary.LittleEndian.Uint64(s.h[:8])
}

// sealHash computes and installs n's hash from its kind tag, its
// type-specific payload, and its children's hashes. It does NOT set
// flags.eval: leaf kinds (numeric literals, symbols, data blobs) are
// trivially their own canonical form and set flags.eval themselves right
// after calling sealHash; compound kinds (Sum, Product, Power, ...) are
// frequently built by raw constructors to represent an *unevaluated*
// tree, and only the evaluator — once it has actually flattened, sorted,
// and merged a compound node's operands — is entitled to call
// MarkEvaluated on the result.
func sealHash(n Node) {
	st := newHashState(byte(n.Kind()))
	st = mixPayload(st, n)
	for _, c := range n.Children() {
		st = st.mixUint64(c.Header().Hash())
	}
	n.Header().SetHash(st.fold())
}

// MarkEvaluated sets flags.eval (and flags.num, if isNum) on n. Called
// by the evaluator once it has established that n is in canonical form;
// never called by this package's own raw constructors for compound
// kinds (spec.md §4.4.1's memoisation contract depends on the evaluator,
// not the node layer, deciding when a node is canonical).
func MarkEvaluated(n Node, isNum bool) {
	n.Header().SetFlag(FlagEval)
	if isNum {
		n.Header().SetFlag(FlagNum)
	}
}

// MarkExpanded sets flags.expand on n, the bit internal/poly's Expand
// installs once a node has been fully distributed into canonical
// polynomial form (spec.md §4.6).
func MarkExpanded(n Node) { n.Header().SetFlag(FlagExpand) }

func mixPayload(st *hashState, n Node) *hashState {
	switch t := n.(type) {
	case *Integer:
		return mixNumeric(st, t.V)
	case *Rational:
		return mixNumeric(st, t.V)
	case *Float:
		return mixNumeric(st, t.V)
	case *Symbol:
		return st.mix([]byte(t.Name)).mixUint64(uint64(t.Dom))
	case *Data:
		return st.mix(t.Bytes)
	case *UnaryFunc:
		return st.mixUint64(uint64(t.FKind))
	case *BinaryFunc:
		return st.mixUint64(uint64(t.FKind))
	case *Func:
		return st.mix([]byte(t.Name))
	case *Extension:
		return st.mix(t.ID[:]).mixUint64(uint64(t.ExtKind))
	case *Diff:
		for _, s := range t.Specs {
			st = st.mixUint64(uint64(s.Order))
		}
		return st
	case *Matrix:
		return st.mixUint64(uint64(t.Rows)).mixUint64(uint64(t.Cols))
	}
	return st
}

func mixNumeric(st *hashState, v interface{ String() string }) *hashState {
	return st.mix([]byte(v.String()))
}

// BigIntBytes is a small helper exposing a stable byte encoding of a
// big.Int, for packages that want to fold one into a hash of their own
// without importing math/big hashing conventions themselves. Nothing in
// this module calls it.
func BigIntBytes(z *big.Int) []byte { return z.Bytes() }
