package syntax

// Scanner performs lexical analysis on alloy source code.
// It implements TokenStream; comments and illegal characters are returned
// as tokens and left for the parser to deal with.
type Scanner struct {
	reader // embedded character reader

	src *Source
}

// NewScanner creates a new Scanner for the given source.
func NewScanner(src *Source) *Scanner {
	s := &Scanner{src: src}
	s.reader.init(src.Text)
	return s
}

// Tokenize scans all of src and returns its tokens.
func Tokenize(src *Source) []Token {
	var toks []Token
	s := NewScanner(src)
	for {
		tok, ok := s.Next()
		if !ok {
			return toks
		}
		toks = append(toks, tok)
	}
}

// Next returns the next token. It reports ok == false at end of input.
func (s *Scanner) Next() (Token, bool) {
	for isWhitespace(s.ch) {
		s.nextch()
	}
	if s.ch < 0 {
		return Token{}, false
	}

	start := s.offs
	var kind Kind

	switch {
	case isLetter(s.ch):
		kind = s.scanIdent()

	case isDigit(s.ch):
		kind = s.scanNumber()

	case s.ch == '.' && isDigit(s.peekch()):
		kind = s.scanNumber()

	case s.ch == '#':
		kind = s.skipLineComment()

	default:
		kind = s.scanOperator()
	}

	return Token{Kind: kind, Span: NewSpan(start, s.offs)}, true
}

// Text returns the source text of tok.
func (s *Scanner) Text(tok Token) string {
	return s.src.Slice(tok.Span)
}

// scanIdent scans an identifier, keyword, or boolean literal.
func (s *Scanner) scanIdent() Kind {
	start := s.offs
	for isLetter(s.ch) || isDigit(s.ch) {
		s.nextch()
	}
	return LookupKeyword(s.buf[start:s.offs])
}

// scanNumber scans a number literal. Digits may be grouped with '_';
// at most one '.' is accepted and only when a digit follows it, so
// "1.to_unit()" scans as 1, '.', to_unit.
func (s *Scanner) scanNumber() Kind {
	seenDot := false
	for {
		switch {
		case isDigit(s.ch) || s.ch == '_':
			s.nextch()
		case s.ch == '.' && !seenDot && isDigit(s.peekch()):
			seenDot = true
			s.nextch()
		default:
			return _Number
		}
	}
}

// skipLineComment scans a comment from '#' up to, not including, the
// end of the line.
func (s *Scanner) skipLineComment() Kind {
	for s.ch != '\n' && s.ch >= 0 {
		s.nextch()
	}
	return _Comment
}

// scanOperator scans an operator or delimiter. Any other character
// yields a one-character _Illegal token.
func (s *Scanner) scanOperator() Kind {
	ch := s.ch
	s.nextch()

	switch ch {
	case '+':
		return _Add
	case '-':
		return _Sub
	case '*':
		return _Mul
	case '/':
		return _Div
	case '^':
		return _Pow
	case '<':
		if s.ch == '=' {
			s.nextch()
			return _Leq
		}
		return _Lss
	case '>':
		if s.ch == '=' {
			s.nextch()
			return _Geq
		}
		return _Gtr
	case '=':
		if s.ch == '=' {
			s.nextch()
			return _Eql
		}
		return _Assign
	case '!':
		if s.ch == '=' {
			s.nextch()
			return _Neq
		}
		return _Not
	case '(':
		return _Lparen
	case ')':
		return _Rparen
	case '{':
		return _Lbrace
	case '}':
		return _Rbrace
	case ',':
		return _Comma
	case ':':
		return _Colon
	case '.':
		return _Dot
	}
	return _Illegal
}
