package module

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ManifestName is the file name of the project manifest.
const ManifestName = "alloy.yaml"

// DefaultEntry is the entry file of a project without an explicit one.
const DefaultEntry = "main" + Ext

// Manifest models alloy.yaml.
type Manifest struct {
	Name    string          `yaml:"name"`
	Entry   string          `yaml:"entry"`
	Checker CheckerSettings `yaml:"checker"`
	Exclude []string        `yaml:"exclude"`
}

// CheckerSettings holds the manifest's type checker options.
type CheckerSettings struct {
	Subtyping bool `yaml:"subtyping"`
}

// ParseManifest decodes a manifest. Unknown fields are an error. An empty
// document yields the zero Manifest.
func ParseManifest(r io.Reader) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &m, nil
}

// LoadManifest reads the manifest at path. A missing file yields nil and
// no error.
func LoadManifest(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("manifest: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := ParseManifest(f)
	if err != nil {
		return nil, fmt.Errorf("manifest: parse %s: %w", path, err)
	}
	return m, nil
}
