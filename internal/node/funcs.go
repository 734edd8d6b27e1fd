package node

// UnaryFunc is one of the elementary functions enumerated in spec.md §3.
type UnaryFunc struct {
	Header
	FKind UnaryKind
	Arg   Node
}

func (n *UnaryFunc) Kind() Kind       { return KindUnaryFunc }
func (n *UnaryFunc) Children() []Node { return []Node{n.Arg} }

func NewUnaryFunc(k UnaryKind, arg Node) *UnaryFunc {
	n := &UnaryFunc{FKind: k, Arg: arg}
	sealHash(n)
	return n
}

// BinaryFunc is gcd/mod/diff/range, per spec.md §3's "(kind embedded in
// type tag)".
type BinaryFunc struct {
	Header
	FKind BinaryKind
	A, B  Node
}

func (n *BinaryFunc) Kind() Kind       { return KindBinaryFunc }
func (n *BinaryFunc) Children() []Node { return []Node{n.A, n.B} }

func NewBinaryFunc(k BinaryKind, a, b Node) *BinaryFunc {
	n := &BinaryFunc{FKind: k, A: a, B: b}
	sealHash(n)
	return n
}

// Func is a user-defined function applied by name.
type Func struct {
	Header
	Name string
	Arg  Node
}

func (n *Func) Kind() Kind       { return KindFunc }
func (n *Func) Children() []Node { return []Node{n.Arg} }

func NewFunc(name string, arg Node) *Func {
	n := &Func{Name: name, Arg: arg}
	sealHash(n)
	return n
}
