package syntax

import (
	"io"
	"sort"
	"unicode"
	"unicode/utf8"
)

// Source is one source text plus its name. Spans produced by the scanner
// and parser are byte offsets into Text.
type Source struct {
	Name string
	Text string

	lines []int // byte offset of the start of each line
}

// NewSource creates a Source from text.
func NewSource(name, text string) *Source {
	s := &Source{Name: name, Text: text, lines: []int{0}}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			s.lines = append(s.lines, i+1)
		}
	}
	return s
}

// ReadSource reads the entire content of r into a Source.
func ReadSource(name string, r io.Reader) (*Source, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewSource(name, string(buf)), nil
}

// Slice returns the text covered by sp. Out-of-range spans are clamped.
func (s *Source) Slice(sp Span) string {
	start, end := sp.Start, sp.End
	if start < 0 {
		start = 0
	}
	if end > len(s.Text) {
		end = len(s.Text)
	}
	if start >= end {
		return ""
	}
	return s.Text[start:end]
}

// Pos converts a byte offset into a line/column position.
func (s *Source) Pos(offset int) Pos {
	if offset < 0 {
		offset = 0
	}
	if offset > len(s.Text) {
		offset = len(s.Text)
	}
	// index of the last line starting at or before offset
	line := sort.Search(len(s.lines), func(i int) bool { return s.lines[i] > offset }) - 1
	return NewPos(s.Name, uint32(line+1), uint32(offset-s.lines[line]+1))
}

// NumLines returns the number of lines in the source.
func (s *Source) NumLines() int {
	return len(s.lines)
}

// Line returns the text of the 1-based line n without its newline.
func (s *Source) Line(n int) string {
	if n < 1 || n > len(s.lines) {
		return ""
	}
	start := s.lines[n-1]
	end := len(s.Text)
	if n < len(s.lines) {
		end = s.lines[n] - 1
	}
	if end > start && s.Text[end-1] == '\r' {
		end--
	}
	return s.Text[start:end]
}

// reader is a character reader with byte-offset tracking.
// It decodes UTF-8 source text and provides character-by-character access.
type reader struct {
	buf string

	// Current state
	ch   rune // current character, -1 for EOF
	offs int  // byte offset of ch
	next int  // byte offset of the character after ch
}

// init positions the reader on the first character of buf.
func (r *reader) init(buf string) {
	r.buf = buf
	r.ch = -1
	r.offs = 0
	r.next = 0
	r.nextch()
}

// nextch reads the next character. Sets r.ch to -1 at EOF.
// Invalid UTF-8 bytes are returned as utf8.RuneError one byte at a time.
func (r *reader) nextch() {
	r.offs = r.next
	if r.next >= len(r.buf) {
		r.ch = -1
		return
	}
	ch, width := utf8.DecodeRuneInString(r.buf[r.next:])
	r.ch = ch
	r.next += width
}

// peekch returns the character after the current one without consuming it.
func (r *reader) peekch() rune {
	if r.next >= len(r.buf) {
		return -1
	}
	ch, _ := utf8.DecodeRuneInString(r.buf[r.next:])
	return ch
}

// Character classification helpers

// isLetter reports whether r is a letter (a-z, A-Z, or _).
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}

// isDigit reports whether r is a decimal digit (0-9).
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isWhitespace reports whether r is a whitespace character, newlines
// included.
func isWhitespace(r rune) bool {
	return r >= 0 && unicode.IsSpace(r)
}
