package node

import (
	"fmt"
	"strings"
)

// Sprint renders n as an infix debug string. It is not the printer
// spec.md §6 names as an external collaborator (that one owns display
// conventions like precedence-minimal parenthesisation and base/rounding
// formatting options); this is the minimal tree-walk a kernel needs for
// its own tests and a demo driver to read back what Eval produced.
func Sprint(n Node) string {
	var sb strings.Builder
	sprint(&sb, n)
	return sb.String()
}

func sprint(sb *strings.Builder, n Node) {
	n = Resolve(n)
	switch t := n.(type) {
	case *Integer:
		sb.WriteString(t.V.String())
	case *Rational:
		sb.WriteString(t.V.String())
	case *Float:
		sb.WriteString(t.V.String())
	case *Complex:
		sb.WriteString("(")
		sprint(sb, t.Re)
		sb.WriteString(" + ")
		sprint(sb, t.Im)
		sb.WriteString("*i)")
	case *Symbol:
		sb.WriteString(t.Name)
	case *Data:
		fmt.Fprintf(sb, "data(%d bytes)", len(t.Bytes))
	case *Sum:
		sb.WriteString("(")
		for i, a := range t.Args {
			if i > 0 {
				sb.WriteString(" + ")
			}
			sprint(sb, a)
		}
		sb.WriteString(")")
	case *Factor:
		sprint(sb, t.Num)
		sb.WriteString("*")
		sprint(sb, t.Term)
	case *Product:
		sb.WriteString("(")
		for i, a := range t.Args {
			if i > 0 {
				sb.WriteString("*")
			}
			sprint(sb, a)
		}
		sb.WriteString(")")
	case *Power:
		sprint(sb, t.Base)
		sb.WriteString("^")
		sprint(sb, t.Exp)
	case *Range:
		sprint(sb, t.Lo)
		sb.WriteString("..")
		sprint(sb, t.Hi)
	case *UnaryFunc:
		fmt.Fprintf(sb, "%s(", t.FKind)
		sprint(sb, t.Arg)
		sb.WriteString(")")
	case *BinaryFunc:
		fmt.Fprintf(sb, "%s(", t.FKind)
		sprint(sb, t.A)
		sb.WriteString(", ")
		sprint(sb, t.B)
		sb.WriteString(")")
	case *Func:
		fmt.Fprintf(sb, "%s(", t.Name)
		sprint(sb, t.Arg)
		sb.WriteString(")")
	case *Diff:
		sb.WriteString("diff(")
		sprint(sb, t.F)
		for _, s := range t.Specs {
			sb.WriteString(", ")
			sprint(sb, s.Var)
			if s.Order != 1 {
				fmt.Fprintf(sb, "^%d", s.Order)
			}
		}
		sb.WriteString(")")
	case *List:
		sb.WriteString("[")
		for i, e := range t.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			sprint(sb, e)
		}
		sb.WriteString("]")
	case *Matrix:
		fmt.Fprintf(sb, "matrix(%dx%d)[", t.Rows, t.Cols)
		for i, e := range t.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			sprint(sb, e)
		}
		sb.WriteString("]")
	case *Extension:
		fmt.Fprintf(sb, "ext<%s>(", t.ID)
		for i, a := range t.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			sprint(sb, a)
		}
		sb.WriteString(")")
	default:
		fmt.Fprintf(sb, "<%v>", n.Kind())
	}
}
