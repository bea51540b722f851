package report

import (
	"fmt"
	"io"

	"github.com/luochenwei/impact-scout/constants"
	"github.com/luochenwei/impact-scout/internal/entity"
)

// PrintSummary writes the aggregate counts for a batch run.
func PrintSummary(w io.Writer, report entity.BatchReport) {
	total := report.Total()
	if total == 0 {
		fmt.Fprintln(w, "no documents processed")
		return
	}

	success := report.CountByStatus(constants.StatusSuccess)
	notFound := report.CountByStatus(constants.StatusNotFound)
	errored := report.CountByStatus(constants.StatusError)

	pct := func(n int) float64 { return float64(n) / float64(total) * 100 }

	fmt.Fprintln(w, "============================================================")
	fmt.Fprintln(w, "Batch summary")
	fmt.Fprintln(w, "============================================================")
	fmt.Fprintf(w, "Total files:     %d\n", total)
	fmt.Fprintf(w, "Matched:         %d (%.1f%%)\n", success, pct(success))
	fmt.Fprintf(w, "Not found:       %d (%.1f%%)\n", notFound, pct(notFound))
	fmt.Fprintf(w, "Errors:          %d (%.1f%%)\n", errored, pct(errored))
	fmt.Fprintln(w, "============================================================")
}
