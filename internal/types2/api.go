// Package types2 implements type checking for the alloy language.
//
// The checker is bidirectional: every expression is checked against an
// optional expected type (the hint) and reports the type it resolves to.
// It does not mutate its input; Check returns an annotated copy of the
// file in which every expression carries its type.
package types2

import (
	"github.com/you-not-fish/alloy/internal/syntax"
	"github.com/you-not-fish/alloy/internal/types"
)

// DefaultBuiltins lists the callable names recognized when
// Config.Builtins is nil.
var DefaultBuiltins = []string{"to_unit"}

// Config specifies the configuration for type checking.
type Config struct {
	// Error is called for each type error, in order.
	// If nil, errors are only returned.
	Error ErrorHandler

	// Subtyping lets a declaration or assignment with a known target type
	// accept a value whose type is related to the target along the
	// nominal hierarchy. When false, the types must be identical.
	Subtyping bool

	// Builtins lists the names accepted as functions and methods.
	// If nil, DefaultBuiltins is used.
	Builtins []string
}

// Check type-checks a parsed file with a fresh Checker.
// It returns the annotated file, or an ErrorList holding one error for
// each top-level expression that failed.
func Check(file *syntax.File, conf *Config) (*syntax.File, error) {
	return NewChecker(conf).Check(file)
}

// NewChecker returns a Checker with a fresh scope manager. A Checker may
// check several files in turn; declarations made at the top level of one
// remain visible to the next.
func NewChecker(conf *Config) *Checker {
	if conf == nil {
		conf = &Config{}
	}
	builtins := conf.Builtins
	if builtins == nil {
		builtins = DefaultBuiltins
	}

	c := &Checker{
		conf:     conf,
		mgr:      types.NewManager(),
		builtins: make(map[string]bool, len(builtins)),
	}
	for _, name := range builtins {
		c.builtins[name] = true
	}
	return c
}

// Manager returns the scope manager holding every scope, type and
// variable the checker has created.
func (c *Checker) Manager() *types.Manager {
	return c.mgr
}

// TypeName returns the name of the type with the given id.
func (c *Checker) TypeName(id types.TypeID) string {
	return c.mgr.TypeName(id)
}
