package types2

import (
	"github.com/you-not-fish/alloy/internal/syntax"
	"github.com/you-not-fish/alloy/internal/types"
)

// call checks name(args). Only built-in names are callable; every call
// yields Unit.
func (c *Checker) call(e *syntax.CallExpr, hint types.TypeID) (syntax.Expr, *TypeError) {
	if !c.builtins[e.Name.Value] {
		return nil, notFound(FunctionNotFound, e.Name.Value, e.Span())
	}
	args, err := c.args(e.Args)
	if err != nil {
		return nil, err
	}
	n := *e
	n.Args = args
	return c.expect(&n, types.Unit, hint)
}

// methodCall checks recv.name(args). The receiver is checked first.
func (c *Checker) methodCall(e *syntax.MethodCallExpr, hint types.TypeID) (syntax.Expr, *TypeError) {
	recv, err := c.expr(e.Recv, types.NoType)
	if err != nil {
		return nil, err
	}
	if !c.builtins[e.Name.Value] {
		return nil, notFound(MethodNotFound, e.Name.Value, e.Span())
	}
	args, err := c.args(e.Args)
	if err != nil {
		return nil, err
	}
	n := *e
	n.Recv = recv
	n.Args = args
	return c.expect(&n, types.Unit, hint)
}

// args checks call arguments, each without a hint.
func (c *Checker) args(list []syntax.Expr) ([]syntax.Expr, *TypeError) {
	if list == nil {
		return nil, nil
	}
	out := make([]syntax.Expr, len(list))
	for i, a := range list {
		x, err := c.expr(a, types.NoType)
		if err != nil {
			return nil, err
		}
		out[i] = x
	}
	return out, nil
}
