// Package reftable loads the journal impact-factor reference table from
// an XLSX workbook.
package reftable

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/luochenwei/impact-scout/internal/common"
	"github.com/luochenwei/impact-scout/internal/entity"
	"github.com/luochenwei/impact-scout/internal/match"
)

// Default header texts, matching the JCR export format.
const (
	DefaultNameColumn   = "Journal Name"
	DefaultFactorColumn = "JIF"
)

// Loader reads reference tables. The zero value is not usable; construct
// with NewLoader.
type Loader struct {
	nameColumn   string
	factorColumn string
	logger       *slog.Logger
}

func NewLoader(nameColumn, factorColumn string, logger *slog.Logger) *Loader {
	if nameColumn == "" {
		nameColumn = DefaultNameColumn
	}
	if factorColumn == "" {
		factorColumn = DefaultFactorColumn
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{nameColumn: nameColumn, factorColumn: factorColumn, logger: logger}
}

// Load reads the first sheet of the workbook at path into reference
// entries, normalized names precomputed. Rows with an empty journal name
// or an unparsable impact factor are skipped. The returned slice keeps
// table order; duplicates are allowed and the first row wins on lookup.
//
// Failures wrap common.ErrTableLoad and are fatal to a run.
func (l *Loader) Load(path string) ([]entity.ReferenceEntry, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, common.NewAppError("TABLE_OPEN",
			fmt.Sprintf("open reference table %q: %v", path, err), common.ErrTableLoad)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			l.logger.Warn("reftable.close.failed", "path", path, "err", cerr)
		}
	}()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, common.NewAppError("TABLE_EMPTY",
			fmt.Sprintf("reference table %q has no sheets", path), common.ErrTableLoad)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, common.NewAppError("TABLE_READ",
			fmt.Sprintf("read sheet %q: %v", sheet, err), common.ErrTableLoad)
	}
	if len(rows) == 0 {
		return nil, common.NewAppError("TABLE_EMPTY",
			fmt.Sprintf("reference table %q has no rows", path), common.ErrTableLoad)
	}

	nameIdx, factorIdx := -1, -1
	for i, h := range rows[0] {
		switch {
		case strings.EqualFold(strings.TrimSpace(h), l.nameColumn):
			nameIdx = i
		case strings.EqualFold(strings.TrimSpace(h), l.factorColumn):
			factorIdx = i
		}
	}
	if nameIdx == -1 || factorIdx == -1 {
		return nil, common.NewAppError("TABLE_COLUMNS",
			fmt.Sprintf("reference table %q missing required columns %q and/or %q",
				path, l.nameColumn, l.factorColumn), common.ErrTableLoad)
	}

	entries := make([]entity.ReferenceEntry, 0, len(rows)-1)
	skipped := 0
	for _, row := range rows[1:] {
		name := ""
		if nameIdx < len(row) {
			name = strings.TrimSpace(row[nameIdx])
		}
		raw := ""
		if factorIdx < len(row) {
			raw = strings.TrimSpace(row[factorIdx])
		}
		if name == "" || raw == "" {
			skipped++
			continue
		}
		factor, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
		if err != nil {
			skipped++
			continue
		}
		entries = append(entries, entity.ReferenceEntry{
			JournalName:    name,
			NormalizedName: match.Normalize(name),
			ImpactFactor:   factor,
		})
	}

	l.logger.Info("reftable.loaded",
		"path", path,
		"entries", len(entries),
		"skipped", skipped,
	)
	return entries, nil
}
