package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/luochenwei/impact-scout/constants"
	"github.com/luochenwei/impact-scout/internal/common"
	"github.com/luochenwei/impact-scout/internal/docread"
	"github.com/luochenwei/impact-scout/internal/entity"
	"github.com/luochenwei/impact-scout/internal/pipeline"
	"github.com/luochenwei/impact-scout/internal/reftable"
)

func newSingleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "single <file.pdf>",
		Short: "Process one PDF and print the lookup result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			proc, table, err := buildPipeline(cfg, logger)
			if err != nil {
				return err
			}

			result := proc.ProcessDocument(cmd.Context(), args[0], table)
			printResult(cmd, result)
			return nil
		},
	}
}

// buildPipeline loads the reference table once and wires the processor
// around it. Table load failures are fatal: nothing gets processed.
func buildPipeline(cfg *common.Config, logger *slog.Logger) (*pipeline.Processor, []entity.ReferenceEntry, error) {
	loader := reftable.NewLoader(cfg.Table.NameColumn, cfg.Table.FactorColumn, logger)
	table, err := loader.Load(cfg.Table.Path)
	if err != nil {
		return nil, nil, err
	}

	reader := docread.NewReader(docread.Config{MaxPages: cfg.Extract.MaxPages}, logger)
	proc := pipeline.NewProcessor(logger, reader, cfg.Extract.SimilarityThreshold)
	return proc, table, nil
}

func printResult(cmd *cobra.Command, r entity.FileResult) {
	out := cmd.OutOrStdout()
	o := r.Outcome
	fmt.Fprintf(out, "file:      %s\n", r.FilePath)
	switch o.Status {
	case constants.StatusSuccess:
		fmt.Fprintf(out, "extracted: %s\n", o.ExtractedName)
		fmt.Fprintf(out, "matched:   %s\n", o.MatchedName)
		fmt.Fprintf(out, "impact:    %g\n", o.ImpactFactor)
		fmt.Fprintf(out, "match:     %s\n", o.MatchType)
		if o.Similarity != nil {
			fmt.Fprintf(out, "similarity: %.3f\n", *o.Similarity)
		}
	case constants.StatusNotFound:
		if o.ExtractedName != "" {
			fmt.Fprintf(out, "extracted: %s\n", o.ExtractedName)
		}
		fmt.Fprintf(out, "status:    not found (%s)\n", o.Message)
	default:
		fmt.Fprintf(out, "status:    error\n")
		fmt.Fprintf(out, "message:   %s\n", o.Message)
	}
}
