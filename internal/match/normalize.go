// Package match holds the pure name-matching core: normalization, a
// string-similarity score, and the exact-then-fuzzy resolver used to look
// journal names up in the reference table.
package match

import (
	"strings"

	"github.com/agext/levenshtein"
)

// Normalize lowercases and trims a journal name for comparison.
// Idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

var simParams = levenshtein.NewParams()

// Similarity scores how alike two strings are, in [0,1]. The score is
// symmetric, 1.0 for identical strings and near 0 for wholly dissimilar
// ones. Inputs are normalized before scoring.
func Similarity(a, b string) float64 {
	return levenshtein.Similarity(Normalize(a), Normalize(b), simParams)
}
