// Package diag turns parse and type errors into user-facing diagnostics
// and renders them with a source snippet.
package diag

import (
	"errors"

	"github.com/you-not-fish/alloy/internal/syntax"
	"github.com/you-not-fish/alloy/internal/types2"
)

// Stage identifies which compiler phase produced the diagnostic.
type Stage string

const (
	StageParser    Stage = "parser"
	StageTypeCheck Stage = "typecheck"
)

// Severity captures how impactful the diagnostic is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Code is a stable identifier for a diagnostic.
type Code string

const (
	// Parser errors
	CodeParseNoPrefix      Code = "PARSE_NO_PREFIX"
	CodeParseExpected      Code = "PARSE_EXPECTED"
	CodeParseSyntax        Code = "PARSE_SYNTAX"
	CodeParseUnexpectedEOF Code = "PARSE_UNEXPECTED_EOF"

	// Type checker errors
	CodeTypeMismatch          Code = "TYPE_MISMATCH"
	CodeTypeUndefinedVariable Code = "TYPE_UNDEFINED_VARIABLE"
	CodeTypeAssignImmutable   Code = "TYPE_ASSIGN_IMMUTABLE"
	CodeTypeUndefinedType     Code = "TYPE_UNDEFINED_TYPE"
	CodeTypeUndefinedFunction Code = "TYPE_UNDEFINED_FUNCTION"
	CodeTypeUndefinedMethod   Code = "TYPE_UNDEFINED_METHOD"
)

var parseCodes = map[syntax.ErrorKind]Code{
	syntax.NoPrefixParse: CodeParseNoPrefix,
	syntax.Expected:      CodeParseExpected,
	syntax.Syntax:        CodeParseSyntax,
	syntax.UnexpectedEOF: CodeParseUnexpectedEOF,
}

var typeCodes = map[types2.ErrorKind]Code{
	types2.TypeMismatch:      CodeTypeMismatch,
	types2.VariableNotFound:  CodeTypeUndefinedVariable,
	types2.AssignToImmutable: CodeTypeAssignImmutable,
	types2.TypeNameNotFound:  CodeTypeUndefinedType,
	types2.FunctionNotFound:  CodeTypeUndefinedFunction,
	types2.MethodNotFound:    CodeTypeUndefinedMethod,
}

// Diagnostic is a compiler diagnostic surfaced to end-users.
type Diagnostic struct {
	Stage    Stage
	Severity Severity
	Code     Code
	Message  string
	Span     syntax.Span // byte range in the source
	Label    string      // optional text printed after the underline
	Notes    []string    // additional notes to display
	Help     string      // optional help text
}

// WithLabel returns a copy of d with the given underline label.
func (d Diagnostic) WithLabel(label string) Diagnostic {
	d.Label = label
	return d
}

// WithNote adds a note to the diagnostic.
func (d Diagnostic) WithNote(note string) Diagnostic {
	d.Notes = append(d.Notes, note)
	return d
}

// WithHelp adds help text to the diagnostic.
func (d Diagnostic) WithHelp(help string) Diagnostic {
	d.Help = help
	return d
}

// FromParseError converts a parse error.
func FromParseError(err *syntax.ParseError) Diagnostic {
	d := Diagnostic{
		Stage:    StageParser,
		Severity: SeverityError,
		Code:     parseCodes[err.Kind],
		Message:  err.Error(),
		Span:     err.Span(),
	}
	switch err.Kind {
	case syntax.NoPrefixParse:
		d = d.WithLabel("expected an expression here")
	case syntax.UnexpectedEOF:
		d = d.WithHelp("the input ends inside an expression; check for a missing operand or closing bracket")
	}
	return d
}

// FromTypeError converts a type error.
func FromTypeError(err *types2.TypeError) Diagnostic {
	d := Diagnostic{
		Stage:    StageTypeCheck,
		Severity: SeverityError,
		Code:     typeCodes[err.Kind],
		Message:  err.Error(),
		Span:     err.Span,
	}
	switch err.Kind {
	case types2.TypeMismatch:
		d = d.WithLabel("this has type " + err.GotName)
	case types2.AssignToImmutable:
		d = d.WithHelp("declare it with := to make it mutable")
	}
	return d
}

// FromError converts any error returned by the parser or checker. A
// types2.ErrorList yields one diagnostic per entry. Other errors yield
// nil and ok == false.
func FromError(err error) (ds []Diagnostic, ok bool) {
	var perr *syntax.ParseError
	if errors.As(err, &perr) {
		return []Diagnostic{FromParseError(perr)}, true
	}
	var list types2.ErrorList
	if errors.As(err, &list) {
		for _, e := range list {
			ds = append(ds, FromTypeError(e))
		}
		return ds, true
	}
	var terr *types2.TypeError
	if errors.As(err, &terr) {
		return []Diagnostic{FromTypeError(terr)}, true
	}
	return nil, false
}
