package types2

import (
	"github.com/you-not-fish/alloy/internal/syntax"
	"github.com/you-not-fish/alloy/internal/types"
)

// varDecl checks a variable declaration and registers the variable in
// the current scope. A name already declared in this scope is shadowed.
func (c *Checker) varDecl(e *syntax.VarDecl, hint types.TypeID) (syntax.Expr, *TypeError) {
	var value syntax.Expr
	var err *TypeError
	var typ types.TypeID

	if e.TypeName != nil {
		t, ok := c.mgr.LookupType(e.TypeName.Value, c.mgr.Current())
		if !ok {
			return nil, notFound(TypeNameNotFound, e.TypeName.Value, e.TypeName.Span)
		}
		typ = t.ID
		if value, err = c.assignable(e.Value, typ); err != nil {
			return nil, err
		}
	} else {
		if value, err = c.expr(e.Value, types.NoType); err != nil {
			return nil, err
		}
		typ = value.Type()
	}

	c.mgr.AddVar(e.Name.Value, typ, e.Mutable)

	n := *e
	n.Value = value
	return c.expect(&n, types.Unit, hint)
}

// assign checks name = value.
//
// The target must resolve. A mutable target is updated in place and the
// value must fit its type. An immutable target owned by the current
// scope is an error; one owned by an enclosing scope is shadowed by a
// new mutable variable in the current scope, and the result is the
// equivalent declaration.
func (c *Checker) assign(e *syntax.AssignExpr, hint types.TypeID) (syntax.Expr, *TypeError) {
	cur := c.mgr.Current()
	v, ok := c.mgr.LookupVar(e.Name.Value, cur)
	if !ok {
		return nil, notFound(VariableNotFound, e.Name.Value, e.Span())
	}

	if !v.Mutable {
		if v.Scope == cur {
			return nil, notFound(AssignToImmutable, e.Name.Value, e.Span())
		}
		d := &syntax.VarDecl{Name: e.Name, Value: e.Value, Mutable: true}
		d.SetSpan(e.Span())
		return c.varDecl(d, hint)
	}

	value, err := c.assignable(e.Value, v.Type)
	if err != nil {
		return nil, err
	}
	n := *e
	n.Value = value
	return c.expect(&n, types.Unit, hint)
}

// typeDecl checks type Name Parent and registers Name in the current
// scope as a child of Parent.
func (c *Checker) typeDecl(e *syntax.TypeDecl, hint types.TypeID) (syntax.Expr, *TypeError) {
	parent, ok := c.mgr.LookupType(e.Parent.Value, c.mgr.Current())
	if !ok {
		return nil, notFound(TypeNameNotFound, e.Parent.Value, e.Parent.Span)
	}
	c.mgr.AddType(e.Name.Value, parent.ID)

	n := *e
	return c.expect(&n, types.Unit, hint)
}
