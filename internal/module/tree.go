package module

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// Options configures Load.
type Options struct {
	// Entry overrides the entry file, relative to the tree root.
	Entry string

	// NoIgnore disables .gitignore handling. Manifest excludes still apply.
	NoIgnore bool
}

// Tree is a loaded set of modules with a distinguished entry.
type Tree struct {
	Root     string    // directory holding the sources
	Manifest *Manifest // nil if the tree has no alloy.yaml
	Modules  []*Module // sorted by Path
	Entry    *Module
}

// Lookup returns the module with the given path.
func (t *Tree) Lookup(path string) (*Module, bool) {
	i := sort.Search(len(t.Modules), func(i int) bool { return t.Modules[i].Path >= path })
	if i < len(t.Modules) && t.Modules[i].Path == path {
		return t.Modules[i], true
	}
	return nil, false
}

// Subtyping reports whether the manifest enables checker subtyping.
func (t *Tree) Subtyping() bool {
	return t.Manifest != nil && t.Manifest.Checker.Subtyping
}

// Load loads the tree rooted at path.
//
// If path is a file, the tree holds just that file and it is the entry.
// If path is a directory, every *.alloy file below it is loaded, skipping
// hidden directories, paths matched by .gitignore files and the
// manifest's exclude patterns. The entry is opts.Entry, else the
// manifest entry, else main.alloy; it must exist.
func Load(path string, opts *Options) (*Tree, error) {
	if opts == nil {
		opts = &Options{}
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("module: %w", err)
	}
	if !info.IsDir() {
		m, err := readModule(path, filepath.Base(path))
		if err != nil {
			return nil, err
		}
		return &Tree{Root: filepath.Dir(path), Modules: []*Module{m}, Entry: m}, nil
	}

	manifest, err := LoadManifest(filepath.Join(path, ManifestName))
	if err != nil {
		return nil, err
	}
	t := &Tree{Root: path, Manifest: manifest}

	var patterns []gitignore.Pattern
	if manifest != nil {
		for _, p := range manifest.Exclude {
			patterns = append(patterns, gitignore.ParsePattern(p, nil))
		}
	}

	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(path, p)
		if err != nil {
			return err
		}
		if rel == "." {
			if !opts.NoIgnore {
				patterns, err = readIgnore(p, nil, patterns)
			}
			return err
		}
		parts := strings.Split(filepath.ToSlash(rel), "/")
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") || gitignore.NewMatcher(patterns).Match(parts, true) {
				return filepath.SkipDir
			}
			if !opts.NoIgnore {
				patterns, err = readIgnore(p, parts, patterns)
			}
			return err
		}
		if filepath.Ext(p) != Ext || gitignore.NewMatcher(patterns).Match(parts, false) {
			return nil
		}
		m, err := readModule(p, rel)
		if err != nil {
			return err
		}
		t.Modules = append(t.Modules, m)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("module: load %s: %w", path, err)
	}
	sort.Slice(t.Modules, func(i, j int) bool { return t.Modules[i].Path < t.Modules[j].Path })

	entry := DefaultEntry
	switch {
	case opts.Entry != "":
		entry = opts.Entry
	case manifest != nil && manifest.Entry != "":
		entry = manifest.Entry
	}
	m, ok := t.Lookup(modulePath(entry))
	if !ok {
		return nil, fmt.Errorf("module: entry %s not found in %s", entry, path)
	}
	t.Entry = m
	return t, nil
}

// readIgnore appends the patterns of the .gitignore in dir, if any.
// domain is dir's path relative to the tree root.
func readIgnore(dir string, domain []string, ps []gitignore.Pattern) ([]gitignore.Pattern, error) {
	f, err := os.Open(filepath.Join(dir, ".gitignore"))
	if errors.Is(err, os.ErrNotExist) {
		return ps, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ps = append(ps, gitignore.ParsePattern(line, domain))
	}
	return ps, sc.Err()
}
