package types2

import (
	"github.com/you-not-fish/alloy/internal/syntax"
	"github.com/you-not-fish/alloy/internal/types"
)

// Checker is the type checker.
//
// Checking an expression returns an annotated copy of it or the first
// error found inside it. The only state carried between expressions is
// the scope manager and its current-scope cursor.
type Checker struct {
	conf     *Config
	mgr      *types.Manager
	builtins map[string]bool

	// Error tracking for the current Check call
	errors ErrorList
}

// Check type-checks the top-level expressions of file in order, in the
// current scope. Every expression is attempted; an error inside one
// abandons only that expression.
func (c *Checker) Check(file *syntax.File) (*syntax.File, error) {
	c.errors = nil

	out := &syntax.File{Name: file.Name, Exprs: make([]syntax.Expr, 0, len(file.Exprs))}
	out.SetSpan(file.Span())

	for _, e := range file.Exprs {
		x, err := c.expr(e, types.NoType)
		if err != nil {
			c.report(err)
			continue
		}
		out.Exprs = append(out.Exprs, x)
	}

	if len(c.errors) > 0 {
		return nil, c.errors
	}
	return out, nil
}

// expect is the terminal step of checking an expression: e resolved to
// typ; if a hint is given it must be exactly typ. On success e is
// annotated with typ and returned.
func (c *Checker) expect(e syntax.Expr, typ, hint types.TypeID) (syntax.Expr, *TypeError) {
	if hint.IsValid() && hint != typ {
		return nil, c.mismatch(e.Span(), typ, hint)
	}
	e.SetType(typ)
	return e, nil
}

// expectOneOf checks e without a hint and requires its type to be one of
// candidates. The first matching candidate wins; since a hint only ever
// constrains the final type of an expression, this yields the same
// annotations as checking e against each candidate in turn.
func (c *Checker) expectOneOf(e syntax.Expr, candidates ...types.TypeID) (syntax.Expr, *TypeError) {
	x, err := c.expr(e, types.NoType)
	if err != nil {
		return nil, err
	}
	for _, t := range candidates {
		if x.Type() == t {
			return x, nil
		}
	}
	return nil, c.mismatch(e.Span(), x.Type(), candidates...)
}

// assignable checks e as a value stored into a variable of type target.
// Without Config.Subtyping the types must be identical. With it, any
// type related to target along the nominal hierarchy is accepted: a
// subtype widens to target, and a value of an ancestor type brands into
// target.
func (c *Checker) assignable(e syntax.Expr, target types.TypeID) (syntax.Expr, *TypeError) {
	if !c.conf.Subtyping {
		return c.expr(e, target)
	}
	x, err := c.expr(e, types.NoType)
	if err != nil {
		return nil, err
	}
	if !c.mgr.IsChild(x.Type(), target) && !c.mgr.IsChild(target, x.Type()) {
		return nil, c.mismatch(e.Span(), x.Type(), target)
	}
	return x, nil
}

// openScope creates a new scope as a child of the current scope and
// makes it current. It returns the scope to restore with closeScope.
func (c *Checker) openScope() (outer types.ScopeID) {
	outer = c.mgr.Current()
	c.mgr.SetCurrent(c.mgr.CreateScope(outer))
	return outer
}

// closeScope returns to the enclosing scope.
func (c *Checker) closeScope(outer types.ScopeID) {
	c.mgr.SetCurrent(outer)
}
