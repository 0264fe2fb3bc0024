package module

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// writeTree creates files under a fresh temp dir and returns it.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return root
}

func modulePaths(tree *Tree) []string {
	var paths []string
	for _, m := range tree.Modules {
		paths = append(paths, m.Path)
	}
	return paths
}

func TestLoadFile(t *testing.T) {
	root := writeTree(t, map[string]string{"calc.alloy": "1 + 2"})

	tree, err := Load(filepath.Join(root, "calc.alloy"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(tree.Modules) != 1 || tree.Entry != tree.Modules[0] {
		t.Fatalf("expected a single entry module, got %v", modulePaths(tree))
	}
	if tree.Entry.Path != "calc" {
		t.Errorf("entry path = %q, want %q", tree.Entry.Path, "calc")
	}
	if tree.Manifest != nil {
		t.Errorf("single file tree has manifest %+v", tree.Manifest)
	}
}

func TestLoadDir(t *testing.T) {
	root := writeTree(t, map[string]string{
		"main.alloy":         "x: 1",
		"util/math.alloy":    "y: 2.0",
		"util/notes.txt":     "not a module",
		"deep/a/b/c.alloy":   "true",
		".hidden/skip.alloy": "1",
		"build/output.alloy": "1",
		"util/scratch.alloy": "1",
		".gitignore":         "build/\n# comment\n\n",
		"util/.gitignore":    "scratch.alloy\n",
	})

	tree, err := Load(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"deep/a/b/c", "main", "util/math"}
	if got := modulePaths(tree); !reflect.DeepEqual(got, want) {
		t.Errorf("modules = %v, want %v", got, want)
	}
	if tree.Entry.Path != "main" {
		t.Errorf("entry = %q, want main", tree.Entry.Path)
	}
}

func TestLoadNoIgnore(t *testing.T) {
	root := writeTree(t, map[string]string{
		"main.alloy": "1",
		"gen.alloy":  "2",
		".gitignore": "gen.alloy\n",
	})

	tree, err := Load(root, &Options{NoIgnore: true})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := tree.Lookup("gen"); !ok {
		t.Errorf("gen.alloy skipped with NoIgnore: %v", modulePaths(tree))
	}
}

func TestLoadManifest(t *testing.T) {
	root := writeTree(t, map[string]string{
		"alloy.yaml": `name: demo
entry: app.alloy
checker:
  subtyping: true
exclude:
  - "*_wip.alloy"
`,
		"app.alloy":         "1",
		"main.alloy":        "2",
		"feature_wip.alloy": "3",
	})

	tree, err := Load(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	if tree.Manifest == nil || tree.Manifest.Name != "demo" {
		t.Fatalf("manifest = %+v", tree.Manifest)
	}
	if !tree.Subtyping() {
		t.Error("Subtyping() = false, want true")
	}
	if tree.Entry.Path != "app" {
		t.Errorf("entry = %q, want app", tree.Entry.Path)
	}
	if _, ok := tree.Lookup("feature_wip"); ok {
		t.Error("excluded module was loaded")
	}

	tree, err = Load(root, &Options{Entry: "main.alloy"})
	if err != nil {
		t.Fatal(err)
	}
	if tree.Entry.Path != "main" {
		t.Errorf("entry with option = %q, want main", tree.Entry.Path)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		path  string
		want  string
	}{
		{
			name:  "missing entry",
			files: map[string]string{"lib.alloy": "1"},
			want:  "entry main.alloy not found",
		},
		{
			name:  "unknown manifest field",
			files: map[string]string{"main.alloy": "1", "alloy.yaml": "entrypoint: x.alloy\n"},
			want:  "manifest: parse",
		},
		{
			name:  "missing path",
			files: map[string]string{},
			path:  "nope",
			want:  "module:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := writeTree(t, tt.files)
			_, err := Load(filepath.Join(root, tt.path), nil)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestLoadMissingIsNotExist(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.alloy"), nil)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist in chain, got %v", err)
	}
}

func TestParseManifestEmpty(t *testing.T) {
	m, err := ParseManifest(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(*m, Manifest{}) {
		t.Errorf("empty manifest = %+v", *m)
	}
}

func TestModuleParse(t *testing.T) {
	root := writeTree(t, map[string]string{"main.alloy": "answer: 42\nanswer"})
	tree, err := Load(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	f, err := tree.Entry.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Exprs) != 2 {
		t.Fatalf("expected 2 expressions, got %d", len(f.Exprs))
	}
	if got := tree.Entry.Text(f.Exprs[1].Span()); got != "answer" {
		t.Errorf("Text = %q, want %q", got, "answer")
	}
}
