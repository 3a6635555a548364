// Package suite loads recording-suite definitions: YAML files declaring a
// batch of scenarios to record for one command family in a single pass.
package suite

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Suite describes a batch of scenarios to record for one command family.
type Suite struct {
	// Family is the command family the scenarios belong to.
	Family string `yaml:"family"`

	// Document is the family-relative path of the scenario document to
	// generate.
	Document string `yaml:"document"`

	// DynamicFlags optionally overrides the noise flags for playback of
	// the recorded document.
	DynamicFlags []string `yaml:"dynamic_flags,omitempty"`

	// Scenarios are the scenarios to record, in order.
	Scenarios []Entry `yaml:"scenarios"`

	// Source is the file the suite was loaded from.
	Source string `yaml:"-"`
}

// Entry describes one scenario within a suite.
type Entry struct {
	// Name is the scenario name, unique within the suite.
	Name string `yaml:"name"`

	// Command is the token template to record, placeholders intact.
	Command []string `yaml:"command"`

	// Vars supplies the concrete values substituted into the placeholders
	// for the real execution.
	Vars map[string]string `yaml:"vars,omitempty"`
}

// Load reads a single suite definition from disk.
func Load(path string) (*Suite, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("suite path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite %s: %w", path, err)
	}

	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite %s: %w", path, err)
	}

	s.Family = strings.TrimSpace(s.Family)
	s.Document = strings.TrimSpace(s.Document)
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid suite %s: %w", path, err)
	}

	s.Source = path
	return &s, nil
}

// Validate checks that the suite is complete enough to record.
func (s *Suite) Validate() error {
	if s.Family == "" {
		return fmt.Errorf("family is required")
	}
	if s.Document == "" {
		return fmt.Errorf("document is required")
	}
	if len(s.Scenarios) == 0 {
		return fmt.Errorf("at least one scenario is required")
	}

	seen := make(map[string]bool, len(s.Scenarios))
	for i, entry := range s.Scenarios {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return fmt.Errorf("scenario %d: name is required", i)
		}
		if seen[name] {
			return fmt.Errorf("scenario %q: duplicate name", name)
		}
		seen[name] = true

		if len(entry.Command) == 0 {
			return fmt.Errorf("scenario %q: command is required", name)
		}
	}

	return nil
}
