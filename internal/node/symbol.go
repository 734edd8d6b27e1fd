package node

import "may/internal/domain"

// Symbol is spec.md §3's String(name, domain): an identifier carrying a
// domain assumption bitmask. "string bytes are padded to a word
// boundary for word-wise equality" in the original design is a C-level
// performance detail of no relevance on top of Go's native string
// comparison, so Symbol simply stores a Go string.
type Symbol struct {
	Header
	Name string
	Dom  domain.Mask
}

func (n *Symbol) Kind() Kind       { return KindSymbol }
func (n *Symbol) Children() []Node { return nil }
func (n *Symbol) Domain() domain.Mask { return n.Dom }

// NewSymbol builds a canonical Symbol node. Two NewSymbol calls with the
// same name and domain produce structurally identical (though not
// pointer-identical, absent hash-consing at this layer) nodes.
func NewSymbol(name string, dom domain.Mask) *Symbol {
	n := &Symbol{Name: name, Dom: domain.Close(dom)}
	sealHash(n)
	MarkEvaluated(n, false)
	return n
}

// Data is an opaque byte blob used by extensions (spec.md §3).
type Data struct {
	Header
	Bytes []byte
}

func (n *Data) Kind() Kind       { return KindData }
func (n *Data) Children() []Node { return nil }

func NewData(b []byte) *Data {
	n := &Data{Bytes: append([]byte(nil), b...)}
	sealHash(n)
	MarkEvaluated(n, false)
	return n
}
