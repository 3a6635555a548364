// Package store persists scenario documents for one command family.
//
// A document is a TOML file mapping scenario names to their template, exit
// code, captured stderr, and a reference to a sibling output file holding
// the captured stdout. Documents live under <root>/mocks/<family>/ and are
// always written whole: build the full document in memory, then replace the
// file in one rename.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"

	"github.com/opencode-ai/cmdmock/internal/logging"
	"github.com/opencode-ai/cmdmock/internal/models"
)

// Store errors.
var (
	ErrNoScenarios       = errors.New("no scenarios to write")
	ErrDuplicateScenario = errors.New("duplicate scenario name")
)

// Store reads and writes scenario documents for one command family.
type Store struct {
	family string
	root   string
	logger zerolog.Logger
}

// New creates a store for the given command family rooted at the fixtures
// directory.
func New(family, root string) *Store {
	return &Store{
		family: family,
		root:   root,
		logger: logging.Component("store"),
	}
}

// documentEntry is the on-disk shape of one scenario within a document.
// Stdout is never inlined; Output references the sibling text file.
type documentEntry struct {
	Template []string `toml:"template"`
	Output   string   `toml:"output"`
	ExitCode int      `toml:"exit_code"`
	Stderr   string   `toml:"stderr"`
}

// LoadDocument reads the document at the family-relative path rel along with
// every referenced output file, and returns the scenarios keyed by name.
func (s *Store) LoadDocument(rel string) (map[string]*models.Scenario, error) {
	path := DocumentPath(s.root, s.family, rel)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario document %s: %w", path, err)
	}

	var entries map[string]documentEntry
	if err := toml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse scenario document %s: %w", path, err)
	}

	scenarios := make(map[string]*models.Scenario, len(entries))
	for name, entry := range entries {
		stdout := ""
		if entry.Output != "" {
			raw, err := os.ReadFile(outputPath(path, entry.Output))
			if err != nil {
				return nil, fmt.Errorf("read output file for scenario %q: %w", name, err)
			}
			stdout = string(raw)
		}

		scenarios[name] = &models.Scenario{
			Name:     name,
			Template: entry.Template,
			Stdout:   stdout,
			Stderr:   entry.Stderr,
			ExitCode: entry.ExitCode,
			Output:   entry.Output,
		}
	}

	return scenarios, nil
}

// WriteDocument writes the given scenarios as a single document at the
// family-relative path rel, plus one output file per scenario under the
// sibling outputs directory. Any existing document at that path is replaced
// wholesale; there is no merge with previous contents.
func (s *Store) WriteDocument(scenarios []*models.Scenario, rel string) error {
	if len(scenarios) == 0 {
		return ErrNoScenarios
	}

	entries := make(map[string]documentEntry, len(scenarios))
	for _, scenario := range scenarios {
		if _, exists := entries[scenario.Name]; exists {
			return fmt.Errorf("%w: %q", ErrDuplicateScenario, scenario.Name)
		}
		entries[scenario.Name] = documentEntry{
			Template: scenario.Template,
			Output:   OutputRef(scenario.Name),
			ExitCode: scenario.ExitCode,
			Stderr:   scenario.Stderr,
		}
	}

	path := DocumentPath(s.root, s.family, rel)
	docDir := filepath.Dir(path)
	if err := os.MkdirAll(filepath.Join(docDir, outputsDir), 0o755); err != nil {
		return fmt.Errorf("create outputs directory: %w", err)
	}

	for _, scenario := range scenarios {
		ref := OutputRef(scenario.Name)
		if err := os.WriteFile(outputPath(path, ref), []byte(scenario.Stdout), 0o644); err != nil {
			return fmt.Errorf("write output file for scenario %q: %w", scenario.Name, err)
		}
		scenario.Output = ref
	}

	data, err := toml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode scenario document: %w", err)
	}

	if err := replaceFile(path, data); err != nil {
		return fmt.Errorf("write scenario document %s: %w", path, err)
	}

	s.logger.Debug().
		Str("family", s.family).
		Str("document", rel).
		Int("scenarios", len(scenarios)).
		Msg("scenario document written")

	return nil
}

// ScenarioNames returns the names in a document, sorted, without reading
// output files.
func (s *Store) ScenarioNames(rel string) ([]string, error) {
	path := DocumentPath(s.root, s.family, rel)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario document %s: %w", path, err)
	}

	var entries map[string]documentEntry
	if err := toml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse scenario document %s: %w", path, err)
	}

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// replaceFile writes data to a temporary file in the target's directory and
// renames it into place, so readers never observe a partially written
// document.
func replaceFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
