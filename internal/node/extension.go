package node

import "github.com/google/uuid"

// ExtensionID is the "stable extension id" of spec.md §9's design notes,
// keying a registered extension's vtable in internal/ext. Using a
// uuid.UUID instead of a process-local counter means two kernel
// instances' extension registries can be merged without id collisions.
type ExtensionID = uuid.UUID

// Extension is a node kind registered by an external collaborator whose
// evaluation, sum/product folding, and pow interaction are described by
// a vtable looked up via ID in package internal/ext (spec.md §3, §9).
type Extension struct {
	Header
	ID      ExtensionID
	ExtKind uint32
	Args    []Node
}

func (n *Extension) Kind() Kind       { return KindExtension }
func (n *Extension) Children() []Node { return n.Args }

func NewExtension(id ExtensionID, extKind uint32, args []Node) *Extension {
	n := &Extension{ID: id, ExtKind: extKind, Args: args}
	sealHash(n)
	return n
}
