package extract

import (
	"regexp"
	"strings"
	"unicode"
)

// Publishers commonly stamp the Subject metadata field with one of a few
// shapes: "Journal, 2023, doi:10.1038/xxx", "Journal doi:10.1038/xxx",
// "Journal 2023", or the bare name with trailing numeric noise. The rules
// below fire in that order; the first one that yields a name wins.
var (
	leadingPunct  = regexp.MustCompile(`^[^\w\s]+`)
	doiSplit      = regexp.MustCompile(`(?i)\s*doi:`)
	leadingYear   = regexp.MustCompile(`^(.+?)\s+(?:19|20)\d{2}`)
	trailingNoise = regexp.MustCompile(`\s*[\d,.:\-]+\s*$`)
)

// FromSubject extracts a journal name from a Subject metadata value.
// Returns false when no rule produces a usable name.
func FromSubject(subject string) (string, bool) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return "", false
	}

	// Rule 1: text before the first comma, as long as it looks like a
	// name (contains at least one letter) rather than a bare number.
	if before, _, found := strings.Cut(subject, ","); found {
		name := strings.TrimSpace(before)
		if name != "" && containsLetter(name) {
			name = leadingPunct.ReplaceAllString(name, "")
			if name != "" {
				return name, true
			}
		}
	}

	// Rule 2: text before a doi: marker.
	if loc := doiSplit.FindStringIndex(subject); loc != nil {
		if name := strings.TrimSpace(subject[:loc[0]]); name != "" {
			return name, true
		}
	}

	// Rule 3: text before a four-digit year (1900-2099).
	if m := leadingYear.FindStringSubmatch(subject); m != nil {
		if name := strings.TrimSpace(m[1]); name != "" {
			return name, true
		}
	}

	// Rule 4: strip trailing digits and punctuation; keep the remainder
	// only when enough of it survives to plausibly be a name.
	cleaned := strings.TrimSpace(trailingNoise.ReplaceAllString(subject, ""))
	if len([]rune(cleaned)) > 3 {
		return cleaned, true
	}

	return "", false
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
