package constants

// OutcomeStatus is the canonical status for a processed document.
type OutcomeStatus string

// Stable values (these exact strings end up in reports and the history DB).
const (
	StatusSuccess  OutcomeStatus = "success"   // journal matched in the reference table
	StatusNotFound OutcomeStatus = "not_found" // no name extracted, or no match above threshold
	StatusError    OutcomeStatus = "error"     // document could not be read
)

// MatchType distinguishes how a reference-table entry was matched.
type MatchType string

const (
	MatchExact MatchType = "exact"
	MatchFuzzy MatchType = "fuzzy"
)
