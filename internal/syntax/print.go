package syntax

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/you-not-fish/alloy/internal/types"
)

// Fprint writes a textual representation of the AST to w.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

// FprintTyped is like Fprint but appends the type of every expression,
// rendered with typeName.
func FprintTyped(w io.Writer, node Node, typeName func(types.TypeID) string) {
	p := &printer{w: w, typeName: typeName}
	p.print(node)
}

type printer struct {
	w        io.Writer
	indent   int
	typeName func(types.TypeID) string // nil: untyped output
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// header prints the first line of a node: its label, span and, in
// typed mode, its type.
func (p *printer) header(node Node, label string) {
	if x, ok := node.(Expr); ok && p.typeName != nil {
		p.printf("%s %s : %s\n", label, node.Span(), p.typeName(x.Type()))
		return
	}
	p.printf("%s %s\n", label, node.Span())
}

// child prints node one level deeper under a field label.
func (p *printer) child(label string, node Node) {
	p.printf("%s:\n", label)
	p.indent++
	p.print(node)
	p.indent--
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *File:
		p.header(n, "File "+n.Name)
		p.indent++
		for _, x := range n.Exprs {
			p.print(x)
		}
		p.indent--

	case *IntLit:
		p.header(n, "IntLit "+strconv.FormatInt(n.Value, 10))

	case *FloatLit:
		p.header(n, "FloatLit "+strconv.FormatFloat(n.Value, 'g', -1, 64))

	case *BoolLit:
		p.header(n, "BoolLit "+strconv.FormatBool(n.Value))

	case *Name:
		p.header(n, "Name "+n.Value)

	case *PrefixExpr:
		p.header(n, "Prefix "+n.Op.String())
		p.indent++
		p.print(n.X)
		p.indent--

	case *InfixExpr:
		p.header(n, "Infix "+n.Op.String())
		p.indent++
		p.print(n.X)
		p.print(n.Y)
		p.indent--

	case *BlockExpr:
		p.header(n, "Block")
		p.indent++
		for _, x := range n.Exprs {
			p.print(x)
		}
		p.indent--

	case *VarDecl:
		label := "VarDecl " + n.Name.Value
		if n.Mutable {
			label = "VarDecl mut " + n.Name.Value
		}
		p.header(n, label)
		p.indent++
		if n.TypeName != nil {
			p.printf("Type: %s\n", n.TypeName.Value)
		}
		p.child("Value", n.Value)
		p.indent--

	case *AssignExpr:
		p.header(n, "Assign "+n.Name.Value)
		p.indent++
		p.child("Value", n.Value)
		p.indent--

	case *TypeDecl:
		p.header(n, "TypeDecl "+n.Name.Value)
		p.indent++
		p.printf("Parent: %s\n", n.Parent.Value)
		p.indent--

	case *CallExpr:
		p.header(n, "Call "+n.Name.Value)
		p.indent++
		for _, a := range n.Args {
			p.print(a)
		}
		p.indent--

	case *MethodCallExpr:
		p.header(n, "MethodCall "+n.Name.Value)
		p.indent++
		p.child("Recv", n.Recv)
		for _, a := range n.Args {
			p.print(a)
		}
		p.indent--

	default:
		p.printf("<%T>\n", node)
	}
}

// ExprString returns a compact source-like rendering of x. Operations
// are fully parenthesized so the tree shape is visible.
func ExprString(x Expr) string {
	var buf strings.Builder
	writeExpr(&buf, x)
	return buf.String()
}

func writeExpr(buf *strings.Builder, x Expr) {
	switch n := x.(type) {
	case nil:
		buf.WriteString("<nil>")
	case *IntLit:
		buf.WriteString(strconv.FormatInt(n.Value, 10))
	case *FloatLit:
		s := strconv.FormatFloat(n.Value, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		buf.WriteString(s)
	case *BoolLit:
		buf.WriteString(strconv.FormatBool(n.Value))
	case *Name:
		buf.WriteString(n.Value)
	case *PrefixExpr:
		buf.WriteString(n.Op.String())
		writeExpr(buf, n.X)
	case *InfixExpr:
		buf.WriteByte('(')
		writeExpr(buf, n.X)
		buf.WriteString(" " + n.Op.String() + " ")
		writeExpr(buf, n.Y)
		buf.WriteByte(')')
	case *BlockExpr:
		buf.WriteByte('{')
		for _, e := range n.Exprs {
			buf.WriteByte(' ')
			writeExpr(buf, e)
		}
		buf.WriteString(" }")
	case *VarDecl:
		buf.WriteString(n.Name.Value)
		switch {
		case n.TypeName != nil && n.Mutable:
			buf.WriteString(" " + n.TypeName.Value + " = ")
		case n.TypeName != nil:
			buf.WriteString(" " + n.TypeName.Value + ": ")
		case n.Mutable:
			buf.WriteString(" := ")
		default:
			buf.WriteString(": ")
		}
		writeExpr(buf, n.Value)
	case *AssignExpr:
		buf.WriteString(n.Name.Value + " = ")
		writeExpr(buf, n.Value)
	case *TypeDecl:
		buf.WriteString("type " + n.Name.Value + " " + n.Parent.Value)
	case *CallExpr:
		buf.WriteString(n.Name.Value)
		writeArgs(buf, n.Args)
	case *MethodCallExpr:
		writeExpr(buf, n.Recv)
		buf.WriteString("." + n.Name.Value)
		writeArgs(buf, n.Args)
	default:
		fmt.Fprintf(buf, "<%T>", x)
	}
}

func writeArgs(buf *strings.Builder, args []Expr) {
	buf.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			buf.WriteString(", ")
		}
		writeExpr(buf, a)
	}
	buf.WriteByte(')')
}
