package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/you-not-fish/alloy/internal/syntax"
)

// Formatter renders diagnostics with a source snippet:
//
//	main.alloy:2:5: error[TYPE_MISMATCH]: type mismatch: expected Int or Float, found Bool
//	  |
//	2 | x + true
//	  |     ^^^^ this has type Bool
//	  |
type Formatter struct {
	w io.Writer
}

// NewFormatter creates a new diagnostic formatter writing to w.
func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

// Header returns the first line of a diagnostic: position, severity,
// code and message.
func Header(src *syntax.Source, d Diagnostic) string {
	severity := string(d.Severity)
	if severity == "" {
		severity = string(SeverityError)
	}
	pos := src.Pos(d.Span.Start)
	if d.Code != "" {
		return fmt.Sprintf("%s: %s[%s]: %s", pos, severity, d.Code, d.Message)
	}
	return fmt.Sprintf("%s: %s: %s", pos, severity, d.Message)
}

// Format writes d, which refers to src.
func (f *Formatter) Format(src *syntax.Source, d Diagnostic) {
	fmt.Fprintln(f.w, Header(src, d))
	f.printSnippet(src, d)
	f.printHelp(d)
}

// FormatAll writes each diagnostic in turn.
func (f *Formatter) FormatAll(src *syntax.Source, ds []Diagnostic) {
	for _, d := range ds {
		f.Format(src, d)
	}
}

// printSnippet prints the line holding the start of the span with a caret
// underline. Spans running past the end of the line are cut at it.
func (f *Formatter) printSnippet(src *syntax.Source, d Diagnostic) {
	pos := src.Pos(d.Span.Start)
	lineNum := int(pos.Line())
	line := src.Line(lineNum)

	width := len(fmt.Sprint(lineNum))
	gutter := strings.Repeat(" ", width)

	start := int(pos.Col()) - 1
	if start > len(line) {
		start = len(line)
	}
	n := d.Span.Len()
	if n < 1 {
		n = 1
	}
	if start+n > len(line) {
		n = max(1, len(line)-start)
	}

	fmt.Fprintf(f.w, "%s |\n", gutter)
	fmt.Fprintf(f.w, "%d | %s\n", lineNum, line)
	underline := indent(line[:start]) + strings.Repeat("^", n)
	if d.Label != "" {
		underline += " " + d.Label
	}
	fmt.Fprintf(f.w, "%s | %s\n", gutter, underline)
	fmt.Fprintf(f.w, "%s |\n", gutter)
}

// indent returns whitespace as wide as prefix, keeping tabs so the
// underline lines up with the source line.
func indent(prefix string) string {
	var b strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// printHelp prints notes and help text.
func (f *Formatter) printHelp(d Diagnostic) {
	for _, note := range d.Notes {
		fmt.Fprintf(f.w, "  = note: %s\n", note)
	}
	if d.Help != "" {
		fmt.Fprintf(f.w, "help: %s\n", d.Help)
	}
}
