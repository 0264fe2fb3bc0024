package types2

import (
	"fmt"

	"github.com/you-not-fish/alloy/internal/syntax"
	"github.com/you-not-fish/alloy/internal/types"
)

// expr checks e against hint (types.NoType for none) and returns an
// annotated copy.
func (c *Checker) expr(e syntax.Expr, hint types.TypeID) (syntax.Expr, *TypeError) {
	switch e := e.(type) {
	case *syntax.IntLit:
		n := *e
		return c.expect(&n, types.Int, hint)

	case *syntax.FloatLit:
		n := *e
		return c.expect(&n, types.Float, hint)

	case *syntax.BoolLit:
		n := *e
		return c.expect(&n, types.Bool, hint)

	case *syntax.Name:
		v, ok := c.mgr.LookupVar(e.Value, c.mgr.Current())
		if !ok {
			return nil, notFound(VariableNotFound, e.Value, e.Span())
		}
		n := *e
		return c.expect(&n, v.Type, hint)

	case *syntax.PrefixExpr:
		return c.prefix(e, hint)

	case *syntax.InfixExpr:
		return c.infix(e, hint)

	case *syntax.BlockExpr:
		return c.block(e, hint)

	case *syntax.VarDecl:
		return c.varDecl(e, hint)

	case *syntax.AssignExpr:
		return c.assign(e, hint)

	case *syntax.TypeDecl:
		return c.typeDecl(e, hint)

	case *syntax.CallExpr:
		return c.call(e, hint)

	case *syntax.MethodCallExpr:
		return c.methodCall(e, hint)
	}
	panic(fmt.Sprintf("types2: unexpected expression %T", e))
}

// prefix checks !X. The operand must be Bool.
func (c *Checker) prefix(e *syntax.PrefixExpr, hint types.TypeID) (syntax.Expr, *TypeError) {
	x, err := c.expr(e.X, types.Bool)
	if err != nil {
		return nil, err
	}
	n := *e
	n.X = x
	return c.expect(&n, types.Bool, hint)
}

// infix checks a binary operation.
//
// Arithmetic and comparison operands must be Int or Float. Division
// always yields Float; the other arithmetic operators keep the operand
// type when both sides agree and promote to Float otherwise. Comparisons
// and equality yield Bool; equality requires both sides to have the
// same type.
func (c *Checker) infix(e *syntax.InfixExpr, hint types.TypeID) (syntax.Expr, *TypeError) {
	var x, y syntax.Expr
	var err *TypeError

	if e.Op.IsEquality() {
		if x, err = c.expr(e.X, types.NoType); err != nil {
			return nil, err
		}
		if y, err = c.expr(e.Y, types.NoType); err != nil {
			return nil, err
		}
		if x.Type() != y.Type() {
			return nil, c.mismatch(e.Span(), y.Type(), x.Type())
		}
	} else {
		if x, err = c.expectOneOf(e.X, types.Int, types.Float); err != nil {
			return nil, err
		}
		if y, err = c.expectOneOf(e.Y, types.Int, types.Float); err != nil {
			return nil, err
		}
	}

	var typ types.TypeID
	switch {
	case e.Op.IsEquality(), e.Op.IsComparison():
		typ = types.Bool
	case e.Op == syntax.Div:
		typ = types.Float
	case x.Type() == y.Type():
		typ = x.Type()
	default:
		typ = types.Float
	}

	n := *e
	n.X, n.Y = x, y
	return c.expect(&n, typ, hint)
}

// block checks { Exprs... } in a new scope. Only the last expression is
// checked against the hint; the block has its type, or Unit when empty.
func (c *Checker) block(e *syntax.BlockExpr, hint types.TypeID) (syntax.Expr, *TypeError) {
	outer := c.openScope()
	defer c.closeScope(outer)

	n := *e
	n.Exprs = make([]syntax.Expr, len(e.Exprs))

	typ := types.Unit
	for i, x := range e.Exprs {
		h := types.NoType
		if i == len(e.Exprs)-1 {
			h = hint
		}
		cx, err := c.expr(x, h)
		if err != nil {
			return nil, err
		}
		n.Exprs[i] = cx
		typ = cx.Type()
	}
	return c.expect(&n, typ, hint)
}
