// Package syntax implements lexical and syntactic analysis for the alloy
// language: a scanner producing spanned tokens, and a precedence-climbing
// parser producing an expression AST.
package syntax

import "fmt"

// Kind represents the kind of a lexical token.
type Kind uint

const (
	// Special tokens
	_EOF     Kind = iota // end of stream; never produced by the scanner
	_Illegal             // character that starts no token
	_Comment             // # to end of line

	// Literals
	_Name   // identifier: foo, Meters
	_Number // 42, 1_000, 3.14, .5
	_Bool   // true, false

	// Equality operators
	_Eql // ==
	_Neq // !=

	// Comparison operators
	_Lss // <
	_Leq // <=
	_Gtr // >
	_Geq // >=

	// Arithmetic operators
	_Add // +
	_Sub // -
	_Mul // *
	_Div // /
	_Pow // ^

	// Unary operators
	_Not // !

	// Delimiters
	_Lparen // (
	_Rparen // )
	_Lbrace // {
	_Rbrace // }
	_Comma  // ,
	_Colon  // :
	_Assign // =
	_Dot    // .

	// Keywords
	_Type

	kindCount
)

// kindNames maps token kinds to their string representation.
var kindNames = [...]string{
	_EOF:     "EOF",
	_Illegal: "ILLEGAL",
	_Comment: "COMMENT",

	_Name:   "NAME",
	_Number: "NUMBER",
	_Bool:   "BOOL",

	_Eql: "==",
	_Neq: "!=",
	_Lss: "<",
	_Leq: "<=",
	_Gtr: ">",
	_Geq: ">=",

	_Add: "+",
	_Sub: "-",
	_Mul: "*",
	_Div: "/",
	_Pow: "^",

	_Not: "!",

	_Lparen: "(",
	_Rparen: ")",
	_Lbrace: "{",
	_Rbrace: "}",
	_Comma:  ",",
	_Colon:  ":",
	_Assign: "=",
	_Dot:    ".",

	_Type: "type",
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// IsKeyword reports whether k is a keyword kind.
func (k Kind) IsKeyword() bool {
	return k == _Type
}

// IsOperator reports whether k is an operator kind.
func (k Kind) IsOperator() bool {
	return k >= _Eql && k <= _Not
}

// IsComment reports whether k is a comment.
func (k Kind) IsComment() bool {
	return k == _Comment
}

// IsIllegal reports whether k marks a character that starts no token.
func (k Kind) IsIllegal() bool {
	return k == _Illegal
}

// Prec is an operator binding power. Higher binds tighter.
type Prec int

// Binding power levels, low to high.
const (
	PrecLowest     Prec = iota
	PrecEquality        // == !=
	PrecComparison      // < <= > >=
	PrecSum             // + -
	PrecProduct         // * /
	PrecExponent        // ^
	PrecGroup           // {
	PrecPrefix          // !x
	PrecCall            // x.name()
)

// Precedence returns the binding power of k when it follows an operand.
// Kinds without an entry bind at PrecLowest so the parse loop stops.
func (k Kind) Precedence() Prec {
	switch k {
	case _Eql, _Neq:
		return PrecEquality
	case _Lss, _Leq, _Gtr, _Geq:
		return PrecComparison
	case _Add, _Sub:
		return PrecSum
	case _Mul, _Div:
		return PrecProduct
	case _Pow:
		return PrecExponent
	case _Lbrace:
		return PrecGroup
	case _Not:
		return PrecPrefix
	case _Dot:
		return PrecCall
	}
	return PrecLowest
}

// RightAssoc reports whether a binary operator of kind k groups to the
// right. Only exponentiation does.
func (k Kind) RightAssoc() bool {
	return k == _Pow
}

// keywords maps keyword strings to their kind.
// true and false are literals, not keywords.
var keywords = map[string]Kind{
	"type": _Type,
}

// LookupKeyword returns the kind for the given identifier string:
// a keyword kind, _Bool for true/false, or _Name.
func LookupKeyword(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	if ident == "true" || ident == "false" {
		return _Bool
	}
	return _Name
}

// Token is one lexical token: its kind and the bytes it covers.
type Token struct {
	Kind Kind
	Span Span
}

func (t Token) String() string {
	return fmt.Sprintf("%s@%s", t.Kind, t.Span)
}

// TokenStream is an ordered, finite, non-restartable sequence of tokens.
// Next reports ok == false once the stream is exhausted.
type TokenStream interface {
	Next() (tok Token, ok bool)
}

// sliceStream adapts a token slice to TokenStream.
type sliceStream struct {
	toks []Token
	i    int
}

// NewTokenStream returns a TokenStream yielding toks in order.
func NewTokenStream(toks []Token) TokenStream {
	return &sliceStream{toks: toks}
}

func (s *sliceStream) Next() (Token, bool) {
	if s.i >= len(s.toks) {
		return Token{}, false
	}
	t := s.toks[s.i]
	s.i++
	return t, true
}
