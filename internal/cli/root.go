// Package cli implements the cmdmock command-line interface.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/cmdmock/internal/config"
	"github.com/opencode-ai/cmdmock/internal/logging"
)

var (
	flagConfig       string
	flagFixturesRoot string
	flagLogLevel     string
)

var rootCmd = &cobra.Command{
	Use:   "cmdmock",
	Short: "Record and replay external command invocations",
	Long: `cmdmock replaces real external command invocations in test suites with
recorded, deterministic responses.

Record a command once to capture its output as a named scenario; later
invocations of the same logical command are matched against the stored
template and answered with the recorded output instead of executing the
real process.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default .cmdmock.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagFixturesRoot, "fixtures-root", "", "fixtures directory holding the mocks/ tree")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig resolves configuration and applies flag overrides and the log
// level.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	if flagFixturesRoot != "" {
		cfg.FixturesRoot = flagFixturesRoot
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}

	if err := logging.Setup(cfg.LogLevel, os.Stderr); err != nil {
		return nil, err
	}

	return cfg, nil
}
