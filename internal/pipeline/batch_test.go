package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/luochenwei/impact-scout/constants"
	"github.com/luochenwei/impact-scout/internal/docread"
	"github.com/luochenwei/impact-scout/internal/match"
)

// One unreadable document must not keep later documents from being
// processed and recorded.
func TestProcessBatchIsolatesFailures(t *testing.T) {
	reader := &fakeReader{
		docs: map[string]docread.Document{
			"1.pdf": {Metadata: map[string]string{"Subject": "Nature, 2023"}},
			"3.pdf": {Metadata: map[string]string{"Subject": "Science doi:10.1126/xxx"}},
		},
		errs: map[string]error{
			"2.pdf": errors.New("document read failed: corrupt stream"),
		},
	}
	p := NewProcessor(nil, reader, match.DefaultThreshold)

	report := p.ProcessBatch(context.Background(), []string{"1.pdf", "2.pdf", "3.pdf"}, testTable())

	if report.Total() != 3 {
		t.Fatalf("total = %d, want 3", report.Total())
	}
	statuses := []constants.OutcomeStatus{
		report.Results[0].Outcome.Status,
		report.Results[1].Outcome.Status,
		report.Results[2].Outcome.Status,
	}
	want := []constants.OutcomeStatus{
		constants.StatusSuccess,
		constants.StatusError,
		constants.StatusSuccess,
	}
	for i := range want {
		if statuses[i] != want[i] {
			t.Errorf("result %d status = %s, want %s", i, statuses[i], want[i])
		}
	}

	// Document after the failure still resolved correctly.
	if got := report.Results[2].Outcome.MatchedName; got != "Science" {
		t.Errorf("result 2 matched %q, want Science", got)
	}

	if report.CountByStatus(constants.StatusSuccess) != 2 {
		t.Errorf("success count = %d, want 2", report.CountByStatus(constants.StatusSuccess))
	}
	if report.CountByStatus(constants.StatusError) != 1 {
		t.Errorf("error count = %d, want 1", report.CountByStatus(constants.StatusError))
	}
}

func TestProcessBatchPreservesOrder(t *testing.T) {
	reader := &fakeReader{docs: map[string]docread.Document{
		"a.pdf": {Metadata: map[string]string{"Subject": "Nature, 2023"}},
		"b.pdf": {Metadata: map[string]string{"Subject": "Science, 2023"}},
	}}
	p := NewProcessor(nil, reader, match.DefaultThreshold)

	report := p.ProcessBatch(context.Background(), []string{"b.pdf", "a.pdf"}, testTable())
	if report.Results[0].FilePath != "b.pdf" || report.Results[1].FilePath != "a.pdf" {
		t.Errorf("results out of order: %q, %q", report.Results[0].FilePath, report.Results[1].FilePath)
	}
}

func TestProcessBatchEmpty(t *testing.T) {
	p := NewProcessor(nil, &fakeReader{}, match.DefaultThreshold)
	report := p.ProcessBatch(context.Background(), nil, testTable())
	if report.Total() != 0 {
		t.Errorf("total = %d, want 0", report.Total())
	}
}
