// Package node defines the tagged expression-node representation of
// spec.md §3: a header {type, flags, hash} followed by a type-specific
// payload. Go has no header-packed variant record, so the header is
// realized as an embedded Header struct and the type tag as the dynamic
// type satisfying the Node interface, dispatched with a type switch —
// the same shape the teacher's AST uses for its Expr/ExprVisitor pair
// (internal/parser/ast.go in the retrieval pack), generalized here to a
// plain type switch since the kernel has no external visitor to please.
package node

// Kind tags which concrete node type a Node value holds.
type Kind uint8

const (
	KindIndirect Kind = iota
	KindInteger
	KindRational
	KindFloat
	KindComplex
	KindSymbol
	KindData
	KindSum
	KindFactor
	KindProduct
	KindPower
	KindRange
	KindUnaryFunc
	KindBinaryFunc
	KindFunc
	KindDiff
	KindList
	KindMatrix
	KindExtension
)

func (k Kind) String() string {
	switch k {
	case KindIndirect:
		return "Indirect"
	case KindInteger:
		return "Integer"
	case KindRational:
		return "Rational"
	case KindFloat:
		return "Float"
	case KindComplex:
		return "Complex"
	case KindSymbol:
		return "Symbol"
	case KindData:
		return "Data"
	case KindSum:
		return "Sum"
	case KindFactor:
		return "Factor"
	case KindProduct:
		return "Product"
	case KindPower:
		return "Power"
	case KindRange:
		return "Range"
	case KindUnaryFunc:
		return "UnaryFunc"
	case KindBinaryFunc:
		return "BinaryFunc"
	case KindFunc:
		return "Func"
	case KindDiff:
		return "Diff"
	case KindList:
		return "List"
	case KindMatrix:
		return "Matrix"
	case KindExtension:
		return "Extension"
	}
	return "?"
}

// Flags mirrors spec.md §3's header flags.
type Flags uint8

const (
	FlagEval Flags = 1 << iota
	FlagNum
	FlagExpand
)

func (f Flags) Has(want Flags) bool { return f&want == want }

// UnaryKind enumerates the UnaryFunc payload kinds of spec.md §3.
type UnaryKind uint8

const (
	UExp UnaryKind = iota
	ULog
	USin
	UCos
	UTan
	UAsin
	UAcos
	UAtan
	USinh
	UCosh
	UTanh
	UAsinh
	UAcosh
	UAtanh
	UAbs
	USign
	UFloor
	UConj
	UReal
	UImag
	UArgument
	UGamma
)

var unaryNames = [...]string{
	"exp", "log", "sin", "cos", "tan", "asin", "acos", "atan",
	"sinh", "cosh", "tanh", "asinh", "acosh", "atanh",
	"abs", "sign", "floor", "conj", "real", "imag", "argument", "gamma",
}

func (u UnaryKind) String() string {
	if int(u) < len(unaryNames) {
		return unaryNames[u]
	}
	return "?"
}

// Even reports whether the function is even (f(-x) = f(x)), used by the
// sign-extraction/parity rule of spec.md §4.4.5 step 3.
func (u UnaryKind) Even() bool {
	switch u {
	case UCos, UCosh, UAbs:
		return true
	}
	return false
}

// Odd reports whether the function is odd (f(-x) = -f(x)).
func (u UnaryKind) Odd() bool {
	switch u {
	case USin, UTan, USinh, UTanh, UAsin, UAtan, UAsinh, UAtanh, USign:
		return true
	}
	return false
}

// BinaryKind enumerates the BinaryFunc payload kinds of spec.md §3.
type BinaryKind uint8

const (
	BGcd BinaryKind = iota
	BMod
	BDiff
	BRange
)

func (b BinaryKind) String() string {
	switch b {
	case BGcd:
		return "gcd"
	case BMod:
		return "mod"
	case BDiff:
		return "diff"
	case BRange:
		return "range"
	}
	return "?"
}
