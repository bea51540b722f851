package match

import (
	"math"

	"github.com/luochenwei/impact-scout/constants"
	"github.com/luochenwei/impact-scout/internal/entity"
)

// DefaultThreshold is the minimum similarity accepted for a fuzzy match.
const DefaultThreshold = 0.85

// Result describes a successful reference-table lookup.
type Result struct {
	// JournalName is the matched entry's display name.
	JournalName  string
	ImpactFactor float64
	Type         constants.MatchType
	// Similarity is set only when Type is MatchFuzzy, rounded to 3
	// decimal places.
	Similarity *float64
}

// Resolve looks candidate up in the reference table. An exact match on
// the normalized name always wins; otherwise the entry with the highest
// similarity is accepted when its score meets threshold (inclusive).
// Ties, and duplicate normalized names, go to the earliest row in table
// order. A miss is a normal outcome, not an error.
//
// Every lookup scans the full table. That keeps tie-break semantics
// trivial and is fine for JCR-sized tables; an index would be needed
// well before anything else here falls over.
func Resolve(candidate string, table []entity.ReferenceEntry, threshold float64) (*Result, bool) {
	normalized := Normalize(candidate)
	if normalized == "" {
		return nil, false
	}

	for _, e := range table {
		if e.NormalizedName == normalized {
			return &Result{
				JournalName:  e.JournalName,
				ImpactFactor: e.ImpactFactor,
				Type:         constants.MatchExact,
			}, true
		}
	}

	bestScore := -1.0
	var best *entity.ReferenceEntry
	for i := range table {
		// Strictly greater keeps the first row on ties.
		if s := Similarity(table[i].NormalizedName, normalized); s > bestScore {
			bestScore = s
			best = &table[i]
		}
	}
	if best == nil || bestScore < threshold {
		return nil, false
	}

	rounded := math.Round(bestScore*1000) / 1000
	return &Result{
		JournalName:  best.JournalName,
		ImpactFactor: best.ImpactFactor,
		Type:         constants.MatchFuzzy,
		Similarity:   &rounded,
	}, true
}
