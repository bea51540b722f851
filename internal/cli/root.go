// Package cli wires the impact-scout commands.
package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/luochenwei/impact-scout/internal/common"
)

// NewRootCmd builds the impact-scout command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "impact-scout",
		Short: "Look up journal impact factors for scholarly PDFs",
		Long: `impact-scout extracts a journal name from a scholarly PDF's metadata and
leading text, then looks the journal up in an impact-factor reference
spreadsheet using exact and fuzzy matching.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	pf := cmd.PersistentFlags()
	pf.String("config", "", "path to YAML config file")
	pf.String("table", "", "path to the reference table XLSX (required unless set via env/config)")
	pf.String("name-column", "", "reference table header for journal names")
	pf.String("factor-column", "", "reference table header for impact factors")
	pf.Float64("threshold", 0, "minimum similarity for fuzzy matches, in (0,1]")
	pf.Int("max-pages", 0, "number of leading pages to scan for text")
	pf.String("history-db", "", "path to an optional SQLite run-history database")

	cmd.AddCommand(newSingleCmd())
	cmd.AddCommand(newBatchCmd())
	cmd.AddCommand(newHistoryCmd())

	return cmd
}

// newLogger builds the process-wide structured logger.
func newLogger() *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)
	return logger
}

// resolveConfig layers flag values over env and config-file values.
// Precedence: flags > env > file > defaults.
func resolveConfig(cmd *cobra.Command) (*common.Config, error) {
	cfg := common.LoadConfig()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		if err := cfg.ApplyFile(path); err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("table") {
		cfg.Table.Path, _ = cmd.Flags().GetString("table")
	}
	if cmd.Flags().Changed("name-column") {
		cfg.Table.NameColumn, _ = cmd.Flags().GetString("name-column")
	}
	if cmd.Flags().Changed("factor-column") {
		cfg.Table.FactorColumn, _ = cmd.Flags().GetString("factor-column")
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Extract.SimilarityThreshold, _ = cmd.Flags().GetFloat64("threshold")
	}
	if cmd.Flags().Changed("max-pages") {
		cfg.Extract.MaxPages, _ = cmd.Flags().GetInt("max-pages")
	}
	if cmd.Flags().Changed("history-db") {
		cfg.History.DBPath, _ = cmd.Flags().GetString("history-db")
	}

	return cfg, nil
}
