// Package pipeline coordinates document reading, journal-name extraction
// and impact-factor resolution, per document and per batch.
package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/luochenwei/impact-scout/constants"
	"github.com/luochenwei/impact-scout/internal/docread"
	"github.com/luochenwei/impact-scout/internal/entity"
	"github.com/luochenwei/impact-scout/internal/extract"
	"github.com/luochenwei/impact-scout/internal/match"
)

// DocumentReader is the seam to the PDF-reading collaborator, an
// interface so tests can inject fakes.
type DocumentReader interface {
	Read(ctx context.Context, path string) (docread.Document, error)
}

// Processor runs the extract-then-resolve pipeline against a read-only
// reference table.
type Processor struct {
	Logger    *slog.Logger
	Reader    DocumentReader
	Threshold float64
}

func NewProcessor(logger *slog.Logger, reader DocumentReader, threshold float64) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if threshold <= 0 {
		threshold = match.DefaultThreshold
	}
	return &Processor{Logger: logger, Reader: reader, Threshold: threshold}
}

// ProcessDocument reads one document, extracts a journal-name candidate
// and resolves it against the table. Read failures become error outcomes;
// extraction and lookup misses are normal not-found outcomes. It never
// returns an error: every failure mode is folded into the outcome so a
// batch can carry on.
func (p *Processor) ProcessDocument(ctx context.Context, path string, table []entity.ReferenceEntry) entity.FileResult {
	result := entity.FileResult{
		FilePath: path,
		FileName: filepath.Base(path),
	}

	doc, err := p.Reader.Read(ctx, path)
	if err != nil {
		p.Logger.Error("process.read.failed", "path", path, "err", err)
		result.Outcome = entity.MatchOutcome{
			Status:      constants.StatusError,
			Message:     err.Error(),
			TextPreview: extract.Preview(doc.Text),
		}
		return result
	}

	name, ok := extract.JournalName(doc.Text, doc.Metadata)
	if !ok {
		p.Logger.Info("process.extract.miss", "path", path)
		result.Outcome = entity.MatchOutcome{
			Status:      constants.StatusNotFound,
			Message:     "no journal name identified",
			TextPreview: extract.Preview(doc.Text),
		}
		return result
	}

	res, ok := match.Resolve(name, table, p.Threshold)
	if !ok {
		p.Logger.Info("process.resolve.miss", "path", path, "extracted", name)
		result.Outcome = entity.MatchOutcome{
			Status:        constants.StatusNotFound,
			ExtractedName: name,
			Message:       "no matching journal in reference table",
		}
		return result
	}

	p.Logger.Info("process.resolve.ok",
		"path", path,
		"extracted", name,
		"matched", res.JournalName,
		"impact_factor", res.ImpactFactor,
		"match_type", string(res.Type),
	)
	result.Outcome = entity.MatchOutcome{
		Status:        constants.StatusSuccess,
		ExtractedName: name,
		MatchedName:   res.JournalName,
		ImpactFactor:  res.ImpactFactor,
		MatchType:     res.Type,
		Similarity:    res.Similarity,
	}
	return result
}
