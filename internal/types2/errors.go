package types2

import (
	"fmt"
	"strings"

	"github.com/you-not-fish/alloy/internal/syntax"
	"github.com/you-not-fish/alloy/internal/types"
)

// ErrorKind classifies a TypeError.
type ErrorKind uint8

const (
	TypeMismatch ErrorKind = iota
	VariableNotFound
	AssignToImmutable
	TypeNameNotFound
	FunctionNotFound
	MethodNotFound
)

var errorKindNames = [...]string{
	TypeMismatch:      "type mismatch",
	VariableNotFound:  "variable not found",
	AssignToImmutable: "assign to immutable variable",
	TypeNameNotFound:  "type name not found",
	FunctionNotFound:  "function not found",
	MethodNotFound:    "method not found",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// TypeError represents a type checking error.
type TypeError struct {
	Kind ErrorKind
	Span syntax.Span

	// Name is the variable, type, function or method name involved.
	// Empty for TypeMismatch.
	Name string

	// For TypeMismatch: the acceptable types and the type found,
	// with their names at the time of the error.
	Expected      []types.TypeID
	ExpectedNames []string
	Got           types.TypeID
	GotName       string
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	switch e.Kind {
	case TypeMismatch:
		return fmt.Sprintf("type mismatch: expected %s, found %s", strings.Join(e.ExpectedNames, " or "), e.GotName)
	case VariableNotFound:
		return fmt.Sprintf("undefined variable: %s", e.Name)
	case AssignToImmutable:
		return fmt.Sprintf("cannot assign to immutable variable %s", e.Name)
	case TypeNameNotFound:
		return fmt.Sprintf("undefined type: %s", e.Name)
	case FunctionNotFound:
		return fmt.Sprintf("undefined function: %s", e.Name)
	case MethodNotFound:
		return fmt.Sprintf("undefined method: %s", e.Name)
	}
	return e.Kind.String()
}

// ErrorList is the ordered list of errors from one Check call.
type ErrorList []*TypeError

// Error implements the error interface.
func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", l[0], len(l)-1)
}

// ErrorHandler is a function called for each type error.
type ErrorHandler func(err *TypeError)

// mismatch builds a TypeMismatch error.
func (c *Checker) mismatch(span syntax.Span, got types.TypeID, expected ...types.TypeID) *TypeError {
	names := make([]string, len(expected))
	for i, id := range expected {
		names[i] = c.mgr.TypeName(id)
	}
	return &TypeError{
		Kind:          TypeMismatch,
		Span:          span,
		Expected:      expected,
		ExpectedNames: names,
		Got:           got,
		GotName:       c.mgr.TypeName(got),
	}
}

// notFound builds an error of the given kind naming an unresolved or
// rejected name.
func notFound(kind ErrorKind, name string, span syntax.Span) *TypeError {
	return &TypeError{Kind: kind, Span: span, Name: name}
}

// report records err for the current Check call.
func (c *Checker) report(err *TypeError) {
	c.errors = append(c.errors, err)
	if c.conf.Error != nil {
		c.conf.Error(err)
	}
}
