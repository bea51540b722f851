package extract

import (
	"strings"
	"testing"
)

func TestJournalNameFromSubjectMetadata(t *testing.T) {
	meta := map[string]string{"Subject": "Nature, 2023, doi:10.1038/xxx"}

	got, ok := JournalName("", meta)
	if !ok {
		t.Fatal("expected a name from subject metadata")
	}
	if got != "Nature" {
		t.Errorf("got %q, want Nature", got)
	}
}

func TestJournalNameRawInfoKey(t *testing.T) {
	meta := map[string]string{"/Subject": "Cell 2023"}

	got, ok := JournalName("", meta)
	if !ok || got != "Cell" {
		t.Errorf("got %q/%v, want Cell/true", got, ok)
	}
}

// Subject metadata always wins over body text, even when a body pattern
// would match a different journal.
func TestJournalNameMetadataBeatsBodyText(t *testing.T) {
	text := "Journal: Science and something else"
	meta := map[string]string{"Subject": "Nature, 2023"}

	got, ok := JournalName(text, meta)
	if !ok {
		t.Fatal("expected a name")
	}
	if got != "Nature" {
		t.Errorf("got %q, want the metadata name Nature", got)
	}
}

func TestJournalNameBodyPatterns(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "published in",
			text:     "Published in: Nature Physics\nVolume 18",
			expected: "Nature Physics",
		},
		{
			name:     "volume line",
			text:     "Physical Review Letters Vol. 129, 2022",
			expected: "Physical Review Letters",
		},
		{
			name:     "journal label",
			text:     "Some preamble\nJournal: The Plant Cell",
			expected: "The Plant Cell",
		},
		{
			name:     "copyright line",
			text:     "© 2023 Nature Publishing Group 2023. All rights reserved.",
			expected: "Nature Publishing Group",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := JournalName(tt.text, nil)
			if !ok {
				t.Fatalf("expected a name from %q", tt.text)
			}
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestJournalNamePatternOrder(t *testing.T) {
	// Both the "Published in" and the "Vol." patterns could match; the
	// earlier pattern in the list wins.
	text := "Published in: Nature Physics, 2022\nScience Vol. 12"
	got, ok := JournalName(text, nil)
	if !ok || got != "Nature Physics" {
		t.Errorf("got %q/%v, want Nature Physics/true", got, ok)
	}
}

func TestJournalNameIgnoresTextBeyondHead(t *testing.T) {
	text := strings.Repeat("x", 2100) + "\nJournal: Science"
	if got, ok := JournalName(text, nil); ok {
		t.Errorf("pattern beyond the scanned head must not match, got %q", got)
	}
}

func TestJournalNameNothingFound(t *testing.T) {
	if got, ok := JournalName("plain text with no journal markers", nil); ok {
		t.Errorf("expected no name, got %q", got)
	}
	if got, ok := JournalName("", nil); ok {
		t.Errorf("expected no name from empty input, got %q", got)
	}
}

func TestJournalNameEmptySubjectFallsThrough(t *testing.T) {
	meta := map[string]string{"Subject": "   "}
	got, ok := JournalName("Journal: Science", meta)
	if !ok || got != "Science" {
		t.Errorf("got %q/%v, want Science/true after empty subject", got, ok)
	}
}

func TestPreview(t *testing.T) {
	long := strings.Repeat("a", PreviewLimit+50)
	if got := Preview(long); len([]rune(got)) != PreviewLimit {
		t.Errorf("preview length = %d, want %d", len([]rune(got)), PreviewLimit)
	}
	if got := Preview("short"); got != "short" {
		t.Errorf("short text must pass through, got %q", got)
	}
}
