package suite

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSuite(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suite.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write suite: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeSuite(t, `
family: git
document: log.toml
dynamic_flags:
  - --since
scenarios:
  - name: basic
    command: [git, log]
  - name: grep
    command: [git, log, "--grep={term}"]
    vars:
      term: fix
`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Family != "git" {
		t.Fatalf("family = %q, want git", s.Family)
	}
	if s.Document != "log.toml" {
		t.Fatalf("document = %q, want log.toml", s.Document)
	}
	if len(s.Scenarios) != 2 {
		t.Fatalf("expected 2 scenarios, got %d", len(s.Scenarios))
	}
	if s.Scenarios[1].Vars["term"] != "fix" {
		t.Fatalf("vars = %v", s.Scenarios[1].Vars)
	}
	if s.Source != path {
		t.Fatalf("source = %q, want %q", s.Source, path)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			"missing family",
			"document: d.toml\nscenarios:\n  - name: a\n    command: [x]\n",
			"family is required",
		},
		{
			"missing document",
			"family: git\nscenarios:\n  - name: a\n    command: [x]\n",
			"document is required",
		},
		{
			"no scenarios",
			"family: git\ndocument: d.toml\n",
			"at least one scenario",
		},
		{
			"unnamed scenario",
			"family: git\ndocument: d.toml\nscenarios:\n  - command: [x]\n",
			"name is required",
		},
		{
			"duplicate name",
			"family: git\ndocument: d.toml\nscenarios:\n  - name: a\n    command: [x]\n  - name: a\n    command: [y]\n",
			"duplicate name",
		},
		{
			"empty command",
			"family: git\ndocument: d.toml\nscenarios:\n  - name: a\n",
			"command is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeSuite(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}
