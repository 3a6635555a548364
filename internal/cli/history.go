package cli

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/cmdmock/internal/db"
	"github.com/opencode-ai/cmdmock/internal/models"
)

var (
	historyFamily string
	historyLimit  int
)

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVar(&historyFamily, "family", "", "filter by command family")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum entries to show")
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the recording journal",
	Long: `History lists recent record sessions from the journal, newest first.
The journal is written when recording runs with --journal or with
journal.enabled set in the configuration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		database, err := db.Open(cfg.JournalPath())
		if err != nil {
			return err
		}
		defer database.Close()

		if _, err := database.MigrateUp(cmd.Context()); err != nil {
			return err
		}

		repo := db.NewRecordingRepository(database)

		var recordings []*models.Recording
		if historyFamily != "" {
			recordings, err = repo.ListByFamily(cmd.Context(), historyFamily, historyLimit)
		} else {
			recordings, err = repo.ListRecent(cmd.Context(), historyLimit)
		}
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(recordings))
		for _, rec := range recordings {
			rows = append(rows, []string{
				rec.CreatedAt.Local().Format(time.DateTime),
				rec.Family,
				rec.Scenario,
				rec.Document,
				strconv.Itoa(rec.ExitCode),
			})
		}

		return writeTable(cmd.OutOrStdout(), []string{"WHEN", "FAMILY", "SCENARIO", "DOCUMENT", "EXIT"}, rows)
	},
}
