// Package config loads cmdmock configuration from file and environment.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds resolved configuration for the cmdmock CLI.
type Config struct {
	// FixturesRoot is the directory holding the mocks/ tree.
	FixturesRoot string

	// LogLevel is the zerolog level name.
	LogLevel string

	// Journal configures the optional SQLite recording journal.
	Journal JournalConfig

	// DynamicFlags maps a command family to the noise flags stripped from
	// its live invocations before matching.
	DynamicFlags map[string][]string
}

// JournalConfig configures the recording journal.
type JournalConfig struct {
	Enabled bool
	Path    string
}

// Load reads configuration from the given file, or from .cmdmock.yaml in
// the working directory when path is empty. Environment variables with the
// CMDMOCK_ prefix override file values. A missing default config file is
// not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".cmdmock")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("CMDMOCK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("fixtures_root", "testdata")
	v.SetDefault("log_level", "warn")
	v.SetDefault("journal.enabled", false)
	v.SetDefault("journal.path", "cmdmock.db")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &Config{
		FixturesRoot: v.GetString("fixtures_root"),
		LogLevel:     v.GetString("log_level"),
		Journal: JournalConfig{
			Enabled: v.GetBool("journal.enabled"),
			Path:    v.GetString("journal.path"),
		},
		DynamicFlags: v.GetStringMapStringSlice("dynamic_flags"),
	}, nil
}

// FlagsForFamily returns the configured dynamic flags for a family, or nil
// when the family has no entry (the player then applies its own default).
func (c *Config) FlagsForFamily(family string) []string {
	return c.DynamicFlags[strings.ToLower(family)]
}

// JournalPath resolves the journal database path; a relative path is
// resolved against the fixtures root.
func (c *Config) JournalPath() string {
	if c.Journal.Path == "" || filepath.IsAbs(c.Journal.Path) {
		return c.Journal.Path
	}
	return filepath.Join(c.FixturesRoot, c.Journal.Path)
}
