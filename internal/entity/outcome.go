package entity

import "github.com/luochenwei/impact-scout/constants"

// MatchOutcome records what happened to a single document. Which fields
// are populated depends on Status:
//
//   - success:   ExtractedName, MatchedName, ImpactFactor, MatchType,
//     and Similarity when the match was fuzzy.
//   - not_found: ExtractedName when a name was extracted but not matched.
//   - error:     Message, plus TextPreview when any text was obtained.
type MatchOutcome struct {
	Status        constants.OutcomeStatus
	ExtractedName string
	MatchedName   string
	ImpactFactor  float64
	MatchType     constants.MatchType
	// Similarity is set only for fuzzy matches, rounded to 3 decimals.
	Similarity  *float64
	Message     string
	TextPreview string
}

// FileResult pairs an outcome with the document it belongs to.
type FileResult struct {
	FilePath string
	FileName string
	Outcome  MatchOutcome
}

// BatchReport aggregates per-document results for one run, in processing
// order.
type BatchReport struct {
	Results []FileResult
}

// Total reports the number of processed documents.
func (r *BatchReport) Total() int { return len(r.Results) }

// CountByStatus reports how many results carry the given status.
func (r *BatchReport) CountByStatus(s constants.OutcomeStatus) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome.Status == s {
			n++
		}
	}
	return n
}
