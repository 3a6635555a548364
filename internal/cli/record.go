package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/cmdmock/internal/config"
	"github.com/opencode-ai/cmdmock/internal/db"
	"github.com/opencode-ai/cmdmock/internal/models"
	"github.com/opencode-ai/cmdmock/internal/proc"
	"github.com/opencode-ai/cmdmock/internal/recorder"
	"github.com/opencode-ai/cmdmock/internal/suite"
)

var (
	recordFamily  string
	recordName    string
	recordOutput  string
	recordVars    []string
	recordSuite   string
	recordPTY     bool
	recordJournal bool
)

func init() {
	rootCmd.AddCommand(recordCmd)

	recordCmd.Flags().StringVar(&recordFamily, "family", "", "command family being mocked (e.g. git)")
	recordCmd.Flags().StringVar(&recordName, "name", "", "scenario name")
	recordCmd.Flags().StringVar(&recordOutput, "output", "", "family-relative document path (e.g. log.toml)")
	recordCmd.Flags().StringArrayVar(&recordVars, "var", nil, "template variable as name=value (repeatable)")
	recordCmd.Flags().StringVar(&recordSuite, "suite", "", "record every scenario in a suite definition file")
	recordCmd.Flags().BoolVar(&recordPTY, "pty", false, "execute through a pseudo-terminal")
	recordCmd.Flags().BoolVar(&recordJournal, "journal", false, "journal this record session")
}

var recordCmd = &cobra.Command{
	Use:   "record [flags] -- command [args...]",
	Short: "Record a real command execution as a scenario",
	Long: `Record runs a real command once, captures its stdout, stderr, and exit
code, and persists them as a named scenario.

The command after -- is a token template: placeholders like {msg} or
--grep={term} stay in the stored template and are filled from --var values
for the real execution. The target document is written whole; recording
into an existing document replaces all of its scenarios.`,
	Example: `  # Record a git log scenario with a placeholder
  cmdmock record --family git --name grep --output log.toml \
    --var term=fix -- git log --grep={term}

  # Record every scenario declared in a suite file
  cmdmock record --suite suites/git.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if recordSuite != "" {
			return runRecordSuite(cmd, cfg)
		}
		return runRecordSingle(cmd, cfg, args)
	},
}

func runRecordSingle(cmd *cobra.Command, cfg *config.Config, args []string) error {
	if recordFamily == "" {
		return fmt.Errorf("--family is required")
	}
	if recordName == "" {
		return fmt.Errorf("--name is required")
	}
	if recordOutput == "" {
		return fmt.Errorf("--output is required")
	}
	if len(args) == 0 {
		return fmt.Errorf("command template is required after --")
	}

	vars, err := parseVars(recordVars)
	if err != nil {
		return err
	}

	opts, cleanup, err := recorderOptions(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	rec := recorder.New(recordFamily, cfg.FixturesRoot, opts...)
	scenario, err := rec.RecordScenario(cmd.Context(), args, recordName, recordOutput, vars)
	if err != nil {
		return err
	}
	if err := rec.GenerateMockFile([]*models.Scenario{scenario}, recordOutput); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Recorded scenario %q (exit %d) into mocks/%s/%s\n",
		scenario.Name, scenario.ExitCode, recordFamily, recordOutput)
	return nil
}

func runRecordSuite(cmd *cobra.Command, cfg *config.Config) error {
	s, err := suite.Load(recordSuite)
	if err != nil {
		return err
	}

	opts, cleanup, err := recorderOptions(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	rec := recorder.New(s.Family, cfg.FixturesRoot, opts...)

	scenarios := make([]*models.Scenario, 0, len(s.Scenarios))
	for _, entry := range s.Scenarios {
		scenario, err := rec.RecordScenario(cmd.Context(), entry.Command, entry.Name, s.Document, entry.Vars)
		if err != nil {
			return fmt.Errorf("record scenario %q: %w", entry.Name, err)
		}
		scenarios = append(scenarios, scenario)
		fmt.Fprintf(cmd.OutOrStdout(), "Recorded scenario %q (exit %d)\n", scenario.Name, scenario.ExitCode)
	}

	if err := rec.GenerateMockFile(scenarios, s.Document); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d scenarios into mocks/%s/%s\n",
		len(scenarios), s.Family, s.Document)
	return nil
}

// recorderOptions builds recorder options from flags and config. The
// returned cleanup closes the journal database when one was opened.
func recorderOptions(ctx context.Context, cfg *config.Config) ([]recorder.Option, func(), error) {
	var opts []recorder.Option
	cleanup := func() {}

	if recordPTY {
		opts = append(opts, recorder.WithExecutor(proc.PTY{}))
	}

	if recordJournal || cfg.Journal.Enabled {
		database, err := db.Open(cfg.JournalPath())
		if err != nil {
			return nil, cleanup, err
		}
		if _, err := database.MigrateUp(ctx); err != nil {
			database.Close()
			return nil, cleanup, err
		}
		opts = append(opts, recorder.WithJournal(db.NewRecordingRepository(database)))
		cleanup = func() { database.Close() }
	}

	return opts, cleanup, nil
}

func parseVars(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	vars := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, found := strings.Cut(pair, "=")
		if !found || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid --var %q: expected name=value", pair)
		}
		vars[name] = value
	}
	return vars, nil
}
