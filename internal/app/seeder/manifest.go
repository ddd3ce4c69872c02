// Package seeder imports curricula from files on disk: a settings document
// per curriculum plus its sample texts and allowed-word lists.
package seeder

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/synphony-backend/internal/domain"
)

// Manifest lists the curricula to import.
//
//	curricula:
//	  - name: English
//	    settings: english/settings.json
//	    samples: [english/texts/*.txt]
//	    allowed: [english/allowed/*.txt]
//
// Paths are relative to the manifest file; samples and allowed entries are
// glob patterns.
type Manifest struct {
	Curricula []Source `yaml:"curricula"`
}

// Source is one curriculum of a manifest.
type Source struct {
	Name     string   `yaml:"name"`
	Settings string   `yaml:"settings"`
	Samples  []string `yaml:"samples"`
	Allowed  []string `yaml:"allowed"`
}

// LoadManifest reads and validates a manifest and makes its paths absolute.
// Unknown keys are rejected.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	base, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("resolve manifest dir: %w", err)
	}
	m.resolve(base)

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) resolve(base string) {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}
	for i := range m.Curricula {
		src := &m.Curricula[i]
		src.Settings = abs(src.Settings)
		for j := range src.Samples {
			src.Samples[j] = abs(src.Samples[j])
		}
		for j := range src.Allowed {
			src.Allowed[j] = abs(src.Allowed[j])
		}
	}
}

// Validate checks that every curriculum has a unique name and a settings
// file.
func (m *Manifest) Validate() error {
	if len(m.Curricula) == 0 {
		return errors.New("manifest: no curricula")
	}

	var errs []error
	seen := make(map[string]bool, len(m.Curricula))
	for i, src := range m.Curricula {
		name := domain.NormalizeName(src.Name)
		if name == "" {
			errs = append(errs, fmt.Errorf("manifest: curricula[%d]: name is required", i))
			continue
		}
		if seen[name] {
			errs = append(errs, fmt.Errorf("manifest: duplicate curriculum %q", name))
		}
		seen[name] = true
		if src.Settings == "" {
			errs = append(errs, fmt.Errorf("manifest: curriculum %q: settings is required", name))
		}
	}
	return errors.Join(errs...)
}

// expand resolves glob patterns to a sorted list of regular files. A
// pattern that matches nothing is an error.
func expand(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, p := range patterns {
		matches, err := filepath.Glob(p)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("pattern %q: no files", p)
		}
		for _, f := range matches {
			info, err := os.Stat(f)
			if err != nil {
				return nil, err
			}
			if info.IsDir() || seen[f] {
				continue
			}
			seen[f] = true
			files = append(files, f)
		}
	}
	sort.Strings(files)
	return files, nil
}
