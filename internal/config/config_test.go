package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// run from an empty directory so no .cmdmock.yaml is picked up
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FixturesRoot != "testdata" {
		t.Fatalf("fixtures root = %q, want testdata", cfg.FixturesRoot)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("log level = %q, want warn", cfg.LogLevel)
	}
	if cfg.Journal.Enabled {
		t.Fatal("journal must be disabled by default")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
fixtures_root: fixtures
log_level: debug
journal:
  enabled: true
  path: journal.db
dynamic_flags:
  git:
    - --since
    - --until
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FixturesRoot != "fixtures" {
		t.Fatalf("fixtures root = %q", cfg.FixturesRoot)
	}
	if !cfg.Journal.Enabled {
		t.Fatal("expected journal enabled")
	}

	want := []string{"--since", "--until"}
	if got := cfg.FlagsForFamily("git"); !reflect.DeepEqual(got, want) {
		t.Fatalf("FlagsForFamily(git) = %v, want %v", got, want)
	}
	if got := cfg.FlagsForFamily("docker"); got != nil {
		t.Fatalf("FlagsForFamily(docker) = %v, want nil", got)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestJournalPathResolution(t *testing.T) {
	cfg := &Config{
		FixturesRoot: "fixtures",
		Journal:      JournalConfig{Path: "journal.db"},
	}
	if got := cfg.JournalPath(); got != filepath.Join("fixtures", "journal.db") {
		t.Fatalf("JournalPath = %q", got)
	}

	cfg.Journal.Path = "/var/tmp/journal.db"
	if got := cfg.JournalPath(); got != "/var/tmp/journal.db" {
		t.Fatalf("JournalPath = %q", got)
	}
}
