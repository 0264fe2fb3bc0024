package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/peterh/liner"

	"github.com/you-not-fish/alloy/internal/diag"
	"github.com/you-not-fish/alloy/internal/syntax"
	"github.com/you-not-fish/alloy/internal/types"
	"github.com/you-not-fish/alloy/internal/types2"
)

const (
	historyFile = ".alloy_history"
	promptMain  = "alloy> "
	promptCont  = "  ...> "
	replName    = "<repl>"
)

const replHelp = `Enter alloy expressions; each one is checked and printed with its type.
Declarations stay visible for the rest of the session.

  :scopes  print the scope tree
  :types   list the types in scope
  :help    show this message
  :quit    leave the session
`

// session is the state carried between REPL inputs: a single checker whose
// global scope accumulates declarations.
type session struct {
	checker *types2.Checker
	logger  *slog.Logger
	out     io.Writer
	errOut  io.Writer
}

func newSession(conf *types2.Config, logger *slog.Logger, out, errOut io.Writer) *session {
	return &session{
		checker: types2.NewChecker(conf),
		logger:  logger,
		out:     out,
		errOut:  errOut,
	}
}

// eval handles one complete input. It returns false when the session
// should end.
func (s *session) eval(input string) bool {
	code := strings.TrimSpace(input)
	if code == "" {
		return true
	}
	if strings.HasPrefix(code, ":") {
		return s.command(code)
	}

	src := syntax.NewSource(replName, input)

	start := time.Now()
	file, err := syntax.ParseSource(src)
	phase(s.logger, "parse", replName, start)
	if err != nil {
		s.report(src, err)
		return true
	}

	start = time.Now()
	checked, err := s.checker.Check(file)
	phase(s.logger, "check", replName, start)
	if err != nil {
		s.report(src, err)
		return true
	}
	printTypes(s.out, checked, s.checker.TypeName)
	return true
}

func (s *session) command(cmd string) bool {
	switch strings.ToLower(cmd) {
	case ":quit", ":q":
		return false
	case ":scopes":
		fmt.Fprint(s.out, s.checker.Manager())
	case ":types":
		s.printTypeList()
	case ":help":
		fmt.Fprint(s.out, replHelp)
	default:
		fmt.Fprintf(s.errOut, "unknown command %s. Type :help for a list.\n", cmd)
	}
	return true
}

// printTypeList lists every type visible from the current scope in
// declaration order.
func (s *session) printTypeList() {
	mgr := s.checker.Manager()
	for id := types.TypeID(1); mgr.Type(id) != nil; id++ {
		t, ok := mgr.TypeByID(id, mgr.Current())
		switch {
		case !ok:
		case types.IsPredeclared(id):
			fmt.Fprintf(s.out, "%s (predeclared)\n", types.PredeclaredName(id))
		case t.HasParent():
			fmt.Fprintf(s.out, "%s: %s\n", t.Name, mgr.TypeName(t.Parent))
		default:
			fmt.Fprintf(s.out, "%s\n", t.Name)
		}
	}
}

func (s *session) report(src *syntax.Source, err error) {
	ds, ok := diag.FromError(err)
	if !ok {
		fmt.Fprintf(s.errOut, "error: %v\n", err)
		return
	}
	diag.NewFormatter(s.errOut).FormatAll(src, ds)
}

// runREPL runs an interactive session on the terminal.
func runREPL(logger *slog.Logger) int {
	fmt.Printf("Alloy %s. Type :help for help, :quit to exit.\n", Version)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	s := newSession(&types2.Config{Subtyping: *subtyping}, logger, os.Stdout, os.Stderr)
	for {
		input, ok := readInput(ln)
		if !ok {
			fmt.Println()
			return 0
		}
		if strings.TrimSpace(input) != "" {
			ln.AppendHistory(strings.ReplaceAll(input, "\n", " "))
		}
		if !s.eval(input) {
			return 0
		}
	}
}

// readInput reads lines until they form a complete input: one that parses,
// or fails to parse for a reason other than running out of tokens. It
// returns false at end of input or on Ctrl-C.
func readInput(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if err != nil {
			// io.EOF or liner.ErrPromptAborted
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if !needsMore(b.String()) {
			return b.String(), true
		}
	}
}

// needsMore reports whether input is a prefix of a longer valid input.
func needsMore(input string) bool {
	if strings.HasPrefix(strings.TrimSpace(input), ":") {
		return false
	}
	_, err := syntax.ParseSource(syntax.NewSource(replName, input))
	return isIncomplete(err)
}
