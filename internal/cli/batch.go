package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/luochenwei/impact-scout/internal/ingest"
	"github.com/luochenwei/impact-scout/internal/report"
	"github.com/luochenwei/impact-scout/internal/store"
)

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <directory>",
		Short: "Process every PDF under a directory and write an XLSX report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("recursive") {
				cfg.Extract.Recursive, _ = cmd.Flags().GetBool("recursive")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			// Discovery and table load failures abort before any
			// document is touched.
			paths, err := ingest.Discover(args[0], cfg.Extract.Recursive)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				logger.Warn("batch.empty", "dir", args[0])
				cmd.Println("no PDF files found")
				return nil
			}

			proc, table, err := buildPipeline(cfg, logger)
			if err != nil {
				return err
			}

			started := time.Now()
			batchReport := proc.ProcessBatch(cmd.Context(), paths, table)
			finished := time.Now()

			report.PrintSummary(cmd.OutOrStdout(), batchReport)

			out, _ := cmd.Flags().GetString("out")
			if out == "" {
				out = report.DefaultOutputPath()
			}
			if err := report.NewWriter(logger).WriteXLSX(batchReport, out); err != nil {
				return err
			}
			cmd.Printf("report written to %s\n", out)

			if cfg.History.DBPath != "" {
				hist, err := store.Open(cfg.History.DBPath, logger)
				if err != nil {
					return err
				}
				defer func() { _ = hist.Close() }()
				runID, err := hist.SaveRun(cmd.Context(), cfg.Table.Path, started, finished, batchReport)
				if err != nil {
					return err
				}
				logger.Info("batch.history.ok", "run_id", runID)
			}
			return nil
		},
	}

	cmd.Flags().String("out", "", "output XLSX path (default: timestamped name in the working directory)")
	cmd.Flags().Bool("recursive", true, "recurse into subdirectories")
	return cmd
}
