package pipeline

import (
	"context"

	"github.com/luochenwei/impact-scout/internal/entity"
)

// ProcessBatch runs every path through ProcessDocument, strictly
// sequentially and in the given order. One document's failure never
// aborts the rest; each file gets its own recorded outcome. The reference
// table is shared read-only across all documents.
func (p *Processor) ProcessBatch(ctx context.Context, paths []string, table []entity.ReferenceEntry) entity.BatchReport {
	report := entity.BatchReport{
		Results: make([]entity.FileResult, 0, len(paths)),
	}
	total := len(paths)
	for i, path := range paths {
		p.Logger.Info("batch.file", "index", i+1, "total", total, "path", path)
		report.Results = append(report.Results, p.ProcessDocument(ctx, path, table))
	}
	return report
}
