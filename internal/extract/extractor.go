// Package extract implements the heuristic chain that pulls a best-guess
// journal name out of a document's text and metadata.
package extract

import (
	"regexp"
	"strings"
)

// headLimit bounds how much body text the pattern heuristics look at.
// Journal identification lines live on the first page; scanning further
// mostly adds false positives from reference lists.
const headLimit = 2000

// PreviewLimit caps the text preview attached to error outcomes.
const PreviewLimit = 500

// Body-text patterns for common journal phrasings, tried in order.
var bodyPatterns = []*regexp.Regexp{
	// "Published in: Journal of X" up to a line break, comma, Vol or year
	regexp.MustCompile(`Published in:?\s*([A-Z][A-Za-z\s&\-:]+?)(?:\n|,|Vol|\d{4})`),
	// "Journal of X Vol. 12"
	regexp.MustCompile(`([A-Z][A-Za-z\s&\-:]+?)\s+Vol\.\s*\d+`),
	// "Journal: X"
	regexp.MustCompile(`Journal:\s*([A-Z][A-Za-z\s&\-:]+)`),
	// copyright line: "© 2023 Elsevier ... Journal of X 2023"
	regexp.MustCompile(`©.*?(\b[A-Z][A-Za-z\s&\-:]+?)\s+\d{4}`),
}

// JournalName applies the extraction chain: the Subject metadata field
// first (publishers structure it far more consistently than body text),
// then the body-text patterns over the first part of the text. The first
// heuristic that yields a non-empty name wins. Returns false when nothing
// matched; that is a normal outcome for many PDFs.
func JournalName(text string, metadata map[string]string) (string, bool) {
	if subject := subjectField(metadata); subject != "" {
		if name, ok := FromSubject(subject); ok {
			return name, true
		}
	}

	head := text
	if runes := []rune(text); len(runes) > headLimit {
		head = string(runes[:headLimit])
	}
	for _, p := range bodyPatterns {
		if m := p.FindStringSubmatch(head); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}

	return "", false
}

// subjectField tolerates both the cleaned key and the raw PDF Info
// dictionary key.
func subjectField(metadata map[string]string) string {
	if v := metadata["Subject"]; v != "" {
		return v
	}
	return metadata["/Subject"]
}

// Preview truncates text for inclusion in error outcomes.
func Preview(text string) string {
	runes := []rune(text)
	if len(runes) <= PreviewLimit {
		return text
	}
	return string(runes[:PreviewLimit])
}
