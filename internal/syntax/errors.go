package syntax

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a ParseError.
type ErrorKind uint8

const (
	// NoPrefixParse: the token cannot start an expression.
	NoPrefixParse ErrorKind = iota
	// Expected: the token is not one of the kinds the grammar allows here.
	Expected
	// Syntax: the token is well placed but malformed (e.g., a bad literal).
	Syntax
	// UnexpectedEOF: the token stream ended inside an expression.
	UnexpectedEOF
)

var errorKindNames = [...]string{
	NoPrefixParse: "no prefix parse",
	Expected:      "expected",
	Syntax:        "syntax",
	UnexpectedEOF: "unexpected EOF",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// ParseError represents a syntax error. Parsing stops at the first one.
type ParseError struct {
	Kind ErrorKind
	Tok  Token  // offending token; for UnexpectedEOF an empty token at end of input
	Text string // source text of Tok
	Want []Kind // acceptable kinds, for Expected
	Msg  string // detail, for Syntax
}

// Span returns the source range the error refers to.
func (e *ParseError) Span() Span {
	return e.Tok.Span
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case NoPrefixParse:
		return fmt.Sprintf("unexpected %s, expected expression", e.describe())
	case Expected:
		want := make([]string, len(e.Want))
		for i, k := range e.Want {
			want[i] = k.String()
		}
		return fmt.Sprintf("unexpected %s, expected %s", e.describe(), strings.Join(want, " or "))
	case Syntax:
		return e.Msg
	case UnexpectedEOF:
		return "unexpected end of input"
	}
	return "syntax error"
}

// describe names the offending token for messages.
func (e *ParseError) describe() string {
	switch e.Tok.Kind {
	case _Name, _Number, _Bool, _Illegal:
		return fmt.Sprintf("%s %q", strings.ToLower(e.Tok.Kind.String()), e.Text)
	case _Type:
		return "keyword type"
	}
	return fmt.Sprintf("%q", e.Tok.Kind.String())
}
