package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/cmdmock/internal/player"
)

var (
	verifyFamily   string
	verifyDocument string
	verifyScenario string
)

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVar(&verifyFamily, "family", "", "command family (required)")
	verifyCmd.Flags().StringVar(&verifyDocument, "document", "", "family-relative document path (required)")
	verifyCmd.Flags().StringVar(&verifyScenario, "scenario", "", "scenario name (required)")
	verifyCmd.MarkFlagRequired("family")
	verifyCmd.MarkFlagRequired("document")
	verifyCmd.MarkFlagRequired("scenario")
}

var verifyCmd = &cobra.Command{
	Use:   "verify [flags] -- command [args...]",
	Short: "Check a live invocation against a recorded scenario",
	Long: `Verify resolves the invocation after -- through the player exactly the
way a test would, and reports whether it matches the recorded template.
A mismatch distinguishes "wrong command family" from "wrong arguments".`,
	Example: `  cmdmock verify --family git --document log.toml --scenario grep \
    -- git log --grep=fix`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if len(args) == 0 {
			return fmt.Errorf("invocation is required after --")
		}

		var opts []player.Option
		if flags := cfg.FlagsForFamily(verifyFamily); flags != nil {
			opts = append(opts, player.WithDynamicFlags(flags...))
		}

		p := player.New(verifyFamily, cfg.FixturesRoot, opts...)
		mock, err := p.GetSubprocessMock(verifyDocument, verifyScenario)
		if err != nil {
			return err
		}

		res, err := mock(args)
		switch {
		case errors.Is(err, player.ErrWrongFamily):
			return fmt.Errorf("no match: %w", err)
		case errors.Is(err, player.ErrTemplateMismatch):
			return fmt.Errorf("no match: %w", err)
		case err != nil:
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Match: scenario %q replies with exit code %d (%d stdout bytes)\n",
			verifyScenario, res.ExitCode, len(res.Stdout))
		return nil
	},
}
