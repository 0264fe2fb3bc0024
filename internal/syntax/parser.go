package syntax

import (
	"fmt"
	"strconv"
	"strings"
)

// Parser performs syntax analysis on alloy source code.
//
// It is a precedence-climbing parser with one token of lookahead.
// Comment tokens are skipped wherever a token is examined. The first
// error aborts the parse.
type Parser struct {
	src  *Source
	toks TokenStream

	tok Token // current token
	ok  bool  // false once the stream is exhausted
}

// NewParser creates a new Parser reading tokens from toks. src supplies
// token text and must be the source the tokens were scanned from.
func NewParser(src *Source, toks TokenStream) *Parser {
	p := &Parser{src: src, toks: toks}
	p.next() // prime the parser with first token
	return p
}

// ParseSource scans and parses src.
func ParseSource(src *Source) (*File, error) {
	return NewParser(src, NewScanner(src)).Parse()
}

// ----------------------------------------------------------------------------
// Token navigation

// next advances to the next non-comment token.
func (p *Parser) next() {
	for {
		p.tok, p.ok = p.toks.Next()
		if !p.ok || !p.tok.Kind.IsComment() {
			return
		}
	}
}

// is reports whether the current token has kind k.
func (p *Parser) is(k Kind) bool {
	return p.ok && p.tok.Kind == k
}

// got reports whether the current token is k.
// If so, it consumes the token and returns true.
func (p *Parser) got(k Kind) bool {
	if p.is(k) {
		p.next()
		return true
	}
	return false
}

// want consumes and returns the current token if it has kind k.
// Otherwise it returns an Expected error, or UnexpectedEOF at end of input.
func (p *Parser) want(k Kind) (Token, error) {
	if !p.ok {
		return Token{}, p.eof()
	}
	tok := p.tok
	if tok.Kind != k {
		return Token{}, p.expected(k)
	}
	p.next()
	return tok, nil
}

// text returns the source text of tok.
func (p *Parser) text(tok Token) string {
	return p.src.Slice(tok.Span)
}

// ----------------------------------------------------------------------------
// Error construction

func (p *Parser) eof() error {
	end := len(p.src.Text)
	return &ParseError{Kind: UnexpectedEOF, Tok: Token{Kind: _EOF, Span: NewSpan(end, end)}}
}

func (p *Parser) expected(want ...Kind) error {
	if !p.ok {
		return p.eof()
	}
	return &ParseError{Kind: Expected, Tok: p.tok, Text: p.text(p.tok), Want: want}
}

func (p *Parser) syntaxError(tok Token, format string, args ...any) error {
	return &ParseError{Kind: Syntax, Tok: tok, Text: p.text(tok), Msg: fmt.Sprintf(format, args...)}
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses all remaining tokens as a sequence of top-level expressions.
func (p *Parser) Parse() (*File, error) {
	f := &File{Name: p.src.Name}
	for p.ok {
		x, err := p.expr(PrecLowest)
		if err != nil {
			return nil, err
		}
		f.Exprs = append(f.Exprs, x)
	}
	if n := len(f.Exprs); n > 0 {
		f.span = f.Exprs[0].Span().To(f.Exprs[n-1].Span())
	}
	return f, nil
}

// ----------------------------------------------------------------------------
// Expressions

// expr parses an expression whose operators bind tighter than prec.
// Implements Pratt parsing / precedence climbing.
func (p *Parser) expr(prec Prec) (Expr, error) {
	x, err := p.primaryExpr()
	if err != nil {
		return nil, err
	}

	for p.ok {
		k := p.tok.Kind
		oprec := k.Precedence()
		if oprec <= prec {
			return x, nil
		}

		switch {
		case k == _Dot:
			x, err = p.methodCall(x)
			if err != nil {
				return nil, err
			}

		case isInfix(k):
			op := infixOps[k]
			p.next() // consume operator

			// Parse the right operand one level lower for right-associative
			// operators so an equal operator keeps extending it.
			rprec := oprec
			if k.RightAssoc() {
				rprec--
			}
			y, err := p.expr(rprec)
			if err != nil {
				return nil, err
			}
			bin := &InfixExpr{Op: op, X: x, Y: y}
			bin.span = x.Span().To(y.Span())
			x = bin

		default:
			// '{' and '!' bind tightly but never continue an operand.
			return x, nil
		}
	}
	return x, nil
}

func isInfix(k Kind) bool {
	_, ok := infixOps[k]
	return ok
}

// primaryExpr parses the operand at the start of an expression.
func (p *Parser) primaryExpr() (Expr, error) {
	if !p.ok {
		return nil, p.eof()
	}

	switch p.tok.Kind {
	case _Number:
		return p.number()

	case _Bool:
		return p.boolean()

	case _Not:
		start := p.tok.Span
		p.next()
		x, err := p.expr(PrecPrefix)
		if err != nil {
			return nil, err
		}
		un := &PrefixExpr{Op: Not, X: x}
		un.span = start.To(x.Span())
		return un, nil

	case _Lbrace:
		return p.blockExpr()

	case _Lparen:
		return p.parenExpr()

	case _Name:
		return p.nameExpr()

	case _Type:
		return p.typeDecl()
	}

	return nil, &ParseError{Kind: NoPrefixParse, Tok: p.tok, Text: p.text(p.tok)}
}

// number parses a number literal. Digit separators are dropped; a
// literal with a decimal point is a float.
func (p *Parser) number() (Expr, error) {
	tok := p.tok
	p.next()

	lit := p.text(tok)
	clean := strings.ReplaceAll(lit, "_", "")

	if strings.Contains(clean, ".") {
		v, err := strconv.ParseFloat(clean, 64)
		if err != nil {
			return nil, p.syntaxError(tok, "invalid float literal %s", lit)
		}
		x := &FloatLit{Value: v}
		x.span = tok.Span
		return x, nil
	}

	v, err := strconv.ParseInt(clean, 10, 64)
	if err != nil {
		return nil, p.syntaxError(tok, "invalid integer literal %s", lit)
	}
	x := &IntLit{Value: v}
	x.span = tok.Span
	return x, nil
}

// boolean parses true or false.
func (p *Parser) boolean() (Expr, error) {
	tok := p.tok
	p.next()

	x := &BoolLit{}
	x.span = tok.Span
	switch lit := p.text(tok); lit {
	case "true":
		x.Value = true
	case "false":
		x.Value = false
	default:
		return nil, p.syntaxError(tok, "invalid boolean literal %s", lit)
	}
	return x, nil
}

// blockExpr parses: { Exprs... }
func (p *Parser) blockExpr() (Expr, error) {
	lbrace, err := p.want(_Lbrace)
	if err != nil {
		return nil, err
	}

	b := &BlockExpr{}
	for !p.is(_Rbrace) {
		if !p.ok {
			return nil, p.eof()
		}
		x, err := p.expr(PrecLowest)
		if err != nil {
			return nil, err
		}
		b.Exprs = append(b.Exprs, x)
	}
	rbrace := p.tok
	p.next()

	b.span = lbrace.Span.To(rbrace.Span)
	return b, nil
}

// parenExpr parses: ( X )
// The result is X itself, with its span widened to the parentheses.
func (p *Parser) parenExpr() (Expr, error) {
	lparen := p.tok
	p.next()

	x, err := p.expr(PrecLowest)
	if err != nil {
		return nil, err
	}
	rparen, err := p.want(_Rparen)
	if err != nil {
		return nil, err
	}
	x.SetSpan(lparen.Span.To(rparen.Span))
	return x, nil
}

// nameExpr parses an expression starting with an identifier. The token
// after the identifier selects the form:
//
//	name: value         immutable declaration
//	name := value       mutable declaration
//	name Type: value    immutable declaration with explicit type
//	name Type = value   mutable declaration with explicit type
//	name = value        assignment
//	name(args)          call
//	name                variable reference
func (p *Parser) nameExpr() (Expr, error) {
	tok := p.tok
	name := Ident{Value: p.text(tok), Span: tok.Span}
	p.next()

	switch {
	case p.got(_Colon):
		mutable := p.got(_Assign)
		return p.varDecl(name, nil, mutable)

	case p.is(_Name):
		typTok := p.tok
		typ := &Ident{Value: p.text(typTok), Span: typTok.Span}
		p.next()
		switch {
		case p.got(_Colon):
			return p.varDecl(name, typ, false)
		case p.got(_Assign):
			return p.varDecl(name, typ, true)
		}
		return nil, p.expected(_Colon, _Assign)

	case p.got(_Assign):
		value, err := p.expr(PrecLowest)
		if err != nil {
			return nil, err
		}
		a := &AssignExpr{Name: name, Value: value}
		a.span = name.Span.To(value.Span())
		return a, nil

	case p.is(_Lparen):
		args, rparen, err := p.callArgs()
		if err != nil {
			return nil, err
		}
		c := &CallExpr{Name: name, Args: args}
		c.span = name.Span.To(rparen)
		return c, nil
	}

	x := &Name{Value: name.Value}
	x.span = name.Span
	return x, nil
}

// varDecl parses the initializer of a declaration whose name, optional
// type and binding marker have been consumed.
func (p *Parser) varDecl(name Ident, typ *Ident, mutable bool) (Expr, error) {
	value, err := p.expr(PrecLowest)
	if err != nil {
		return nil, err
	}
	d := &VarDecl{Name: name, TypeName: typ, Value: value, Mutable: mutable}
	d.span = name.Span.To(value.Span())
	return d, nil
}

// typeDecl parses: type Name Parent
func (p *Parser) typeDecl() (Expr, error) {
	kw := p.tok
	p.next()

	nameTok, err := p.want(_Name)
	if err != nil {
		return nil, err
	}
	parentTok, err := p.want(_Name)
	if err != nil {
		return nil, err
	}

	d := &TypeDecl{
		Name:   Ident{Value: p.text(nameTok), Span: nameTok.Span},
		Parent: Ident{Value: p.text(parentTok), Span: parentTok.Span},
	}
	d.span = kw.Span.To(parentTok.Span)
	return d, nil
}

// methodCall parses: .name(args) following the receiver x.
func (p *Parser) methodCall(x Expr) (Expr, error) {
	p.next() // consume '.'

	nameTok, err := p.want(_Name)
	if err != nil {
		return nil, err
	}
	args, rparen, err := p.callArgs()
	if err != nil {
		return nil, err
	}

	m := &MethodCallExpr{
		Recv: x,
		Name: Ident{Value: p.text(nameTok), Span: nameTok.Span},
		Args: args,
	}
	m.span = x.Span().To(rparen)
	return m, nil
}

// callArgs parses: ( [arg {, arg} [,]] )
// It returns the arguments and the span of the closing parenthesis.
func (p *Parser) callArgs() ([]Expr, Span, error) {
	if _, err := p.want(_Lparen); err != nil {
		return nil, Span{}, err
	}

	var args []Expr
	for !p.is(_Rparen) {
		x, err := p.expr(PrecLowest)
		if err != nil {
			return nil, Span{}, err
		}
		args = append(args, x)

		if !p.got(_Comma) && !p.is(_Rparen) {
			return nil, Span{}, p.expected(_Comma, _Rparen)
		}
	}
	rparen := p.tok.Span
	p.next()
	return args, rparen, nil
}
