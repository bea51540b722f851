package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luochenwei/impact-scout/internal/common"
	"github.com/luochenwei/impact-scout/internal/store"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent batch runs from the history database",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.History.DBPath == "" {
				return common.NewAppError("CONFIG_ERROR",
					"history database path is required (--history-db)", common.ErrInvalidInput)
			}

			hist, err := store.Open(cfg.History.DBPath, logger)
			if err != nil {
				return err
			}
			defer func() { _ = hist.Close() }()

			limit, _ := cmd.Flags().GetInt("limit")
			runs, err := hist.RecentRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				cmd.Println("no recorded runs")
				return nil
			}

			out := cmd.OutOrStdout()
			for _, r := range runs {
				fmt.Fprintf(out, "%s  %s  total=%d success=%d not_found=%d errors=%d  table=%s\n",
					r.StartedAt.Local().Format("2006-01-02 15:04:05"),
					r.ID, r.Total, r.Success, r.NotFound, r.Errors, r.TablePath)
			}
			return nil
		},
	}
	cmd.Flags().Int("limit", 20, "maximum number of runs to list")
	return cmd
}
