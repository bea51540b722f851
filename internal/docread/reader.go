// Package docread reads scholarly PDFs: plain text from the first few
// pages, plus the document information dictionary.
package docread

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/luochenwei/impact-scout/internal/common"
)

// Document carries what the extraction heuristics need from one file.
type Document struct {
	// Text is the concatenated plain text of the pages that were read.
	Text string
	// Metadata holds the Info dictionary, keys without the leading slash,
	// empty values dropped.
	Metadata map[string]string
	// Pages is how many pages were actually read.
	Pages int
	// Warnings collects per-page extraction problems that were skipped.
	Warnings []string
}

type Config struct {
	// MaxPages limits how many pages of text are extracted. 0 means all.
	MaxPages int
}

const DefaultMaxPages = 2

type Reader struct {
	cfg    Config
	logger *slog.Logger
}

func NewReader(cfg Config, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{cfg: cfg, logger: logger}
}

// Read opens the PDF at path and returns its leading text and metadata.
// Unreadable or corrupt files wrap common.ErrDocumentRead; a page whose
// text cannot be decoded is skipped with a warning rather than failing
// the whole document.
func (r *Reader) Read(ctx context.Context, path string) (doc Document, err error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	// The pdf package panics on some malformed files; fold that into the
	// normal read-error path so one bad file cannot take down a batch.
	defer func() {
		if p := recover(); p != nil {
			err = common.NewAppError("DOC_PARSE",
				fmt.Sprintf("parse %q: %v", path, p), common.ErrDocumentRead)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return Document{}, common.NewAppError("DOC_OPEN",
			fmt.Sprintf("open %q: %v", path, err), common.ErrDocumentRead)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			r.logger.Warn("docread.close.failed", "path", path, "err", cerr)
		}
	}()

	pages := reader.NumPage()
	if r.cfg.MaxPages > 0 && pages > r.cfg.MaxPages {
		pages = r.cfg.MaxPages
	}

	var b strings.Builder
	var warnings []string
	read := 0
	for n := 1; n <= pages; n++ {
		page := reader.Page(n)
		if page.V.IsNull() {
			warnings = append(warnings, fmt.Sprintf("page %d is null", n))
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("page %d text: %v", n, err))
			continue
		}
		b.WriteString(text)
		read++
	}

	doc = Document{
		Text:     b.String(),
		Metadata: infoDict(reader),
		Pages:    read,
		Warnings: warnings,
	}
	r.logger.Debug("docread.ok",
		"path", path,
		"pages", read,
		"text_len", len(doc.Text),
		"warnings", len(warnings),
	)
	return doc, nil
}

// infoDict flattens the document information dictionary into strings.
func infoDict(reader *pdf.Reader) map[string]string {
	meta := map[string]string{}
	info := reader.Trailer().Key("Info")
	if info.Kind() != pdf.Dict {
		return meta
	}
	for _, key := range info.Keys() {
		v := info.Key(key)
		if v.Kind() != pdf.String {
			continue
		}
		if s := v.Text(); s != "" {
			meta[strings.TrimPrefix(key, "/")] = s
		}
	}
	return meta
}
