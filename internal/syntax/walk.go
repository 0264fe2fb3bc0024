package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order.
// If visitor returns false, children are not visited.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *File:
		walkList(n.Exprs, v)

	case *PrefixExpr:
		Walk(n.X, v)

	case *InfixExpr:
		Walk(n.X, v)
		Walk(n.Y, v)

	case *BlockExpr:
		walkList(n.Exprs, v)

	case *VarDecl:
		Walk(n.Value, v)

	case *AssignExpr:
		Walk(n.Value, v)

	case *CallExpr:
		walkList(n.Args, v)

	case *MethodCallExpr:
		Walk(n.Recv, v)
		walkList(n.Args, v)

	// Leaf nodes: IntLit, FloatLit, BoolLit, Name, TypeDecl
	// No children to visit
	}
}

func walkList(list []Expr, v Visitor) {
	for _, x := range list {
		Walk(x, v)
	}
}

// Inspect traverses an AST and calls f for each node.
// Convenience wrapper around Walk.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}
