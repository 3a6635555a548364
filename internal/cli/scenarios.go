package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/cmdmock/internal/store"
)

var scenariosFamily string

func init() {
	rootCmd.AddCommand(scenariosCmd)

	scenariosCmd.Flags().StringVar(&scenariosFamily, "family", "", "command family (required)")
	scenariosCmd.MarkFlagRequired("family")
}

var scenariosCmd = &cobra.Command{
	Use:   "scenarios <document>",
	Short: "List the scenarios in a document",
	Long: `Scenarios lists every scenario in a document, with its template, exit
code, and output file reference. The document path is relative to
mocks/<family>/ under the fixtures root.`,
	Example: `  cmdmock scenarios --family git log.toml`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		s := store.New(scenariosFamily, cfg.FixturesRoot)
		scenarios, err := s.LoadDocument(args[0])
		if err != nil {
			return err
		}

		names := make([]string, 0, len(scenarios))
		for name := range scenarios {
			names = append(names, name)
		}
		sort.Strings(names)

		rows := make([][]string, 0, len(names))
		for _, name := range names {
			scenario := scenarios[name]
			rows = append(rows, []string{
				name,
				formatTokens(scenario.Template),
				strconv.Itoa(scenario.ExitCode),
				scenario.Output,
			})
		}

		if err := writeTable(cmd.OutOrStdout(), []string{"NAME", "TEMPLATE", "EXIT", "OUTPUT"}, rows); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d scenario(s) in mocks/%s/%s\n", len(names), scenariosFamily, args[0])
		return nil
	},
}
