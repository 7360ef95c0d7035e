package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sanjay-kth/hirescore/internal/database"
	"github.com/sanjay-kth/hirescore/internal/output"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics across sessions",
	Long: `Display aggregate statistics over all recorded interview sessions:
session and answer counts, the average overall score of finalized
sessions, and the breakdown by recommendation.`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	stats, err := db.GetStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to get stats: %w", err)
	}

	return output.Output(outputFmt, stats)
}
