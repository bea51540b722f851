// Package report renders a batch report as an XLSX workbook and a
// console summary.
package report

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/luochenwei/impact-scout/internal/entity"
)

// Writer produces XLSX files for batch reports.
type Writer struct {
	logger *slog.Logger
}

func NewWriter(logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{logger: logger}
}

// DefaultOutputPath builds a timestamped file name for runs that did not
// specify one.
func DefaultOutputPath() string {
	return fmt.Sprintf("journal_impact_factors_%s.xlsx", time.Now().Format("20060102_150405"))
}

// WriteXLSX writes one row per processed file to path.
func (w *Writer) WriteXLSX(report entity.BatchReport, path string) error {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Sheet1"

	headers := []string{
		"File Name",
		"File Path",
		"Status",
		"Extracted Journal",
		"Matched Journal",
		"Impact Factor",
		"Match Type",
		"Similarity",
		"Message",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range report.Results {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		o := r.Outcome
		write(1, r.FileName)
		write(2, r.FilePath)
		write(3, string(o.Status))
		write(4, o.ExtractedName)
		write(5, o.MatchedName)
		if o.MatchedName != "" {
			write(6, o.ImpactFactor)
		}
		write(7, string(o.MatchType))
		if o.Similarity != nil {
			write(8, *o.Similarity)
		}
		write(9, o.Message)

		row++
	}

	// Widen the columns that carry free text
	_ = f.SetColWidth(sheet, "A", "A", 32) // file name
	_ = f.SetColWidth(sheet, "B", "B", 60) // path
	_ = f.SetColWidth(sheet, "D", "E", 36) // journal names
	_ = f.SetColWidth(sheet, "I", "I", 48) // message

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}

	w.logger.Info("report.xlsx.ok",
		"path", path,
		"rows", report.Total(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
