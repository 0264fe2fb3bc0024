package syntax

import (
	"encoding/json"
	"io"

	"github.com/you-not-fish/alloy/internal/types"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	return fprintJSON(w, node, nil)
}

// FprintTypedJSON is like FprintJSON but adds a "check" field with the
// type of every expression, rendered with typeName.
func FprintTypedJSON(w io.Writer, node Node, typeName func(types.TypeID) string) error {
	return fprintJSON(w, node, typeName)
}

func fprintJSON(w io.Writer, node Node, typeName func(types.TypeID) string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	c := jsonConv{typeName: typeName}
	return enc.Encode(c.toJSON(node))
}

type jsonConv struct {
	typeName func(types.TypeID) string
}

func spanJSON(s Span) []int {
	return []int{s.Start, s.End}
}

func (c jsonConv) toJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	m := map[string]interface{}{
		"span": spanJSON(node.Span()),
	}
	if x, ok := node.(Expr); ok && c.typeName != nil {
		m["check"] = c.typeName(x.Type())
	}

	switch n := node.(type) {
	case *File:
		m["type"] = "File"
		m["name"] = n.Name
		m["exprs"] = c.exprs(n.Exprs)

	case *IntLit:
		m["type"] = "IntLit"
		m["value"] = n.Value

	case *FloatLit:
		m["type"] = "FloatLit"
		m["value"] = n.Value

	case *BoolLit:
		m["type"] = "BoolLit"
		m["value"] = n.Value

	case *Name:
		m["type"] = "Name"
		m["value"] = n.Value

	case *PrefixExpr:
		m["type"] = "Prefix"
		m["op"] = n.Op.String()
		m["x"] = c.toJSON(n.X)

	case *InfixExpr:
		m["type"] = "Infix"
		m["op"] = n.Op.String()
		m["x"] = c.toJSON(n.X)
		m["y"] = c.toJSON(n.Y)

	case *BlockExpr:
		m["type"] = "Block"
		m["exprs"] = c.exprs(n.Exprs)

	case *VarDecl:
		m["type"] = "VarDecl"
		m["name"] = n.Name.Value
		m["mutable"] = n.Mutable
		if n.TypeName != nil {
			m["vartype"] = n.TypeName.Value
		}
		m["value"] = c.toJSON(n.Value)

	case *AssignExpr:
		m["type"] = "Assign"
		m["name"] = n.Name.Value
		m["value"] = c.toJSON(n.Value)

	case *TypeDecl:
		m["type"] = "TypeDecl"
		m["name"] = n.Name.Value
		m["parent"] = n.Parent.Value

	case *CallExpr:
		m["type"] = "Call"
		m["name"] = n.Name.Value
		m["args"] = c.exprs(n.Args)

	case *MethodCallExpr:
		m["type"] = "MethodCall"
		m["recv"] = c.toJSON(n.Recv)
		m["name"] = n.Name.Value
		m["args"] = c.exprs(n.Args)
	}
	return m
}

func (c jsonConv) exprs(s []Expr) []interface{} {
	out := make([]interface{}, len(s))
	for i, x := range s {
		out[i] = c.toJSON(x)
	}
	return out
}
