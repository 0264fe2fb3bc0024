// Package main implements the alloy front end driver: it scans, parses
// and type-checks alloy sources and dumps the intermediate results.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/you-not-fish/alloy/internal/diag"
	"github.com/you-not-fish/alloy/internal/module"
	"github.com/you-not-fish/alloy/internal/syntax"
	"github.com/you-not-fish/alloy/internal/types"
	"github.com/you-not-fish/alloy/internal/types2"
)

// Driver flags
var (
	emitTokens   = flag.Bool("emit-tokens", false, "Output token stream")
	emitAST      = flag.Bool("emit-ast", false, "Output AST")
	astFormat    = flag.String("ast-format", "text", "AST output format (text or json)")
	emitTypedAST = flag.Bool("emit-typed-ast", false, "Output typed AST")
	emitScopes   = flag.Bool("emit-scopes", false, "Output the scope tree after checking")
	entry        = flag.String("entry", "", "Entry file of a project directory (default main.alloy)")
	subtyping    = flag.Bool("subtyping", false, "Accept nominally related types in declarations")
	noIgnore     = flag.Bool("no-ignore", false, "Do not honour .gitignore files")
	repl         = flag.Bool("repl", false, "Start an interactive session")
	trace        = flag.Bool("trace", false, "Output timing trace")
	version      = flag.Bool("version", false, "Print version")
)

// Version information
const Version = "0.1.0-dev"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Alloy %s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: alloyc [options] <file.alloy | dir>\n")
		fmt.Fprintf(os.Stderr, "       alloyc -repl\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Printf("alloyc version %s\n", Version)
		fmt.Printf("go version %s\n", runtime.Version())
		os.Exit(0)
	}

	logger := newLogger(os.Stderr, *trace)

	if *repl {
		os.Exit(runREPL(logger))
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "error: no input file")
		fmt.Fprintln(os.Stderr, "usage: alloyc [options] <file.alloy | dir>")
		os.Exit(1)
	}

	os.Exit(run(args[0], logger))
}

// newLogger returns the phase-timing logger. Without -trace it discards
// everything.
func newLogger(w io.Writer, enabled bool) *slog.Logger {
	if !enabled {
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// phase logs the time spent since start under the given phase name.
func phase(logger *slog.Logger, name, mod string, start time.Time) {
	logger.Debug("phase", "name", name, "module", mod, "elapsed", time.Since(start))
}

// run loads the tree at path and processes every module in it.
func run(path string, logger *slog.Logger) int {
	start := time.Now()
	tree, err := module.Load(path, &module.Options{Entry: *entry, NoIgnore: *noIgnore})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	logger.Debug("load", "root", tree.Root, "modules", len(tree.Modules), "entry", tree.Entry.Path, "elapsed", time.Since(start))

	conf := &types2.Config{Subtyping: *subtyping || tree.Subtyping()}

	code := 0
	for _, m := range tree.Modules {
		if len(tree.Modules) > 1 {
			fmt.Printf("// module %s\n", m.Path)
		}
		if runModule(m, conf, logger) != 0 {
			code = 1
		}
	}
	return code
}

// runModule runs the requested stages on one module.
func runModule(m *module.Module, conf *types2.Config, logger *slog.Logger) int {
	if *emitTokens {
		return runEmitTokens(m, logger)
	}

	start := time.Now()
	file, err := m.Parse()
	phase(logger, "parse", m.Path, start)
	if err != nil {
		return report(m.Source, err)
	}

	if *emitAST {
		return emit(file, nil)
	}

	start = time.Now()
	c := types2.NewChecker(conf)
	checked, err := c.Check(file)
	phase(logger, "check", m.Path, start)
	if err != nil {
		return report(m.Source, err)
	}

	switch {
	case *emitTypedAST:
		return emit(checked, c.TypeName)
	case *emitScopes:
		fmt.Print(c.Manager())
	default:
		printTypes(os.Stdout, checked, c.TypeName)
	}
	return 0
}

// runEmitTokens scans the module and prints all tokens with positions.
func runEmitTokens(m *module.Module, logger *slog.Logger) int {
	start := time.Now()
	s := syntax.NewScanner(m.Source)

	fmt.Printf("%-20s %-12s %s\n", "POSITION", "TOKEN", "LITERAL")
	fmt.Printf("%-20s %-12s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 12), strings.Repeat("-", 20))

	illegal := 0
	for {
		tok, ok := s.Next()
		if !ok {
			break
		}
		if tok.Kind.IsIllegal() {
			illegal++
		}
		pos := m.Source.Pos(tok.Span.Start)
		fmt.Printf("%-20s %-12s %q\n", pos, tok.Kind, s.Text(tok))
	}
	phase(logger, "scan", m.Path, start)

	if illegal > 0 {
		return 1
	}
	return 0
}

// emit prints node in the -ast-format encoding. A nil typeName prints
// the untyped tree.
func emit(node syntax.Node, typeName func(id types.TypeID) string) int {
	var err error
	switch *astFormat {
	case "json":
		if typeName != nil {
			err = syntax.FprintTypedJSON(os.Stdout, node, typeName)
		} else {
			err = syntax.FprintJSON(os.Stdout, node)
		}
	case "text":
		if typeName != nil {
			syntax.FprintTyped(os.Stdout, node, typeName)
		} else {
			syntax.Fprint(os.Stdout, node)
		}
	default:
		err = fmt.Errorf("unknown AST format %q", *astFormat)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// printTypes prints each top-level expression with its type.
func printTypes(w io.Writer, file *syntax.File, typeName func(id types.TypeID) string) {
	for _, x := range file.Exprs {
		fmt.Fprintf(w, "%s : %s\n", syntax.ExprString(x), typeName(x.Type()))
	}
}

// report renders err against src on stderr and returns the exit code.
func report(src *syntax.Source, err error) int {
	ds, ok := diag.FromError(err)
	if !ok {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	diag.NewFormatter(os.Stderr).FormatAll(src, ds)
	return 1
}

// isIncomplete reports whether err means the input ended too early.
func isIncomplete(err error) bool {
	var perr *syntax.ParseError
	return errors.As(err, &perr) && perr.Kind == syntax.UnexpectedEOF
}
