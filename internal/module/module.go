// Package module loads alloy sources from disk: a single file, or a
// project directory with an optional alloy.yaml manifest.
package module

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/you-not-fish/alloy/internal/syntax"
)

// Ext is the file extension of alloy source files.
const Ext = ".alloy"

// Module is one source file of a tree.
type Module struct {
	// Path is the module path relative to the tree root, slash-separated
	// and without extension (e.g. "main", "util/math").
	Path string

	// File is the file's location on disk.
	File string

	Source *syntax.Source
}

// readModule reads the file at filename. rel is its path relative to the
// tree root.
func readModule(filename, rel string) (*Module, error) {
	buf, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("module: read %s: %w", filename, err)
	}
	return &Module{
		Path:   modulePath(rel),
		File:   filename,
		Source: syntax.NewSource(filename, string(buf)),
	}, nil
}

func modulePath(rel string) string {
	return strings.TrimSuffix(filepath.ToSlash(rel), Ext)
}

// Text returns the source text covered by sp.
func (m *Module) Text(sp syntax.Span) string {
	return m.Source.Slice(sp)
}

// Parse parses the module.
func (m *Module) Parse() (*syntax.File, error) {
	return syntax.ParseSource(m.Source)
}
