package match

import (
	"testing"

	"github.com/luochenwei/impact-scout/constants"
	"github.com/luochenwei/impact-scout/internal/entity"
)

func entry(name string, factor float64) entity.ReferenceEntry {
	return entity.ReferenceEntry{
		JournalName:    name,
		NormalizedName: Normalize(name),
		ImpactFactor:   factor,
	}
}

func TestResolveExactMatch(t *testing.T) {
	table := []entity.ReferenceEntry{
		entry("Nature", 69.5),
		entry("Science", 63.7),
	}

	res, ok := Resolve("nature ", table, DefaultThreshold)
	if !ok {
		t.Fatal("expected a match")
	}
	if res.Type != constants.MatchExact {
		t.Errorf("match type = %s, want exact", res.Type)
	}
	if res.JournalName != "Nature" {
		t.Errorf("matched name = %q, want Nature", res.JournalName)
	}
	if res.ImpactFactor != 69.5 {
		t.Errorf("impact factor = %v, want 69.5", res.ImpactFactor)
	}
	if res.Similarity != nil {
		t.Errorf("exact match should not carry a similarity, got %v", *res.Similarity)
	}
}

// An exact match must win even when another entry is nearly identical to
// the candidate and would score very high in the fuzzy pass.
func TestResolveExactPrecedenceOverFuzzy(t *testing.T) {
	table := []entity.ReferenceEntry{
		entry("Cell Reports", 8.2),
		entry("Cell Report", 1.0), // near-duplicate, would fuzzy-match "cell reports" strongly
		entry("Cell Reports ", 2.0),
	}

	res, ok := Resolve("CELL REPORT", table, DefaultThreshold)
	if !ok {
		t.Fatal("expected a match")
	}
	if res.Type != constants.MatchExact {
		t.Fatalf("match type = %s, want exact", res.Type)
	}
	if res.JournalName != "Cell Report" || res.ImpactFactor != 1.0 {
		t.Errorf("got %q/%v, want Cell Report/1.0", res.JournalName, res.ImpactFactor)
	}
}

func TestResolveFuzzyMatch(t *testing.T) {
	table := []entity.ReferenceEntry{
		entry("Science", 63.7),
		entry("Nature Communications", 16.6),
	}

	res, ok := Resolve("Nature Communication", table, 0.85)
	if !ok {
		t.Fatal("expected a fuzzy match")
	}
	if res.Type != constants.MatchFuzzy {
		t.Errorf("match type = %s, want fuzzy", res.Type)
	}
	if res.JournalName != "Nature Communications" {
		t.Errorf("matched name = %q, want Nature Communications", res.JournalName)
	}
	if res.Similarity == nil {
		t.Fatal("fuzzy match must carry a similarity")
	}
	if *res.Similarity < 0.85 || *res.Similarity > 1 {
		t.Errorf("similarity = %v, want within [0.85, 1]", *res.Similarity)
	}
}

// A score exactly equal to the threshold is accepted; just above it is not.
func TestResolveThresholdBoundaryInclusive(t *testing.T) {
	table := []entity.ReferenceEntry{entry("Nature Communications", 16.6)}
	candidate := "Nature Communication"

	score := Similarity(table[0].NormalizedName, Normalize(candidate))
	if score >= 1.0 || score <= 0 {
		t.Fatalf("test setup: expected a partial similarity, got %v", score)
	}

	if _, ok := Resolve(candidate, table, score); !ok {
		t.Errorf("similarity exactly at threshold %v must be accepted", score)
	}
	if _, ok := Resolve(candidate, table, score+1e-9); ok {
		t.Errorf("similarity below threshold %v must be rejected", score+1e-9)
	}
}

func TestResolveNoMatch(t *testing.T) {
	table := []entity.ReferenceEntry{
		entry("Nature", 69.5),
		entry("Science", 63.7),
	}
	if res, ok := Resolve("Zeitschrift fur Unbekanntes", table, DefaultThreshold); ok {
		t.Errorf("expected no match, got %+v", res)
	}
}

func TestResolveEmptyCandidate(t *testing.T) {
	table := []entity.ReferenceEntry{entry("Nature", 69.5)}
	if _, ok := Resolve("   ", table, DefaultThreshold); ok {
		t.Error("blank candidate must not match")
	}
}

// Duplicate normalized names: first row in table order wins.
func TestResolveDuplicateFirstWins(t *testing.T) {
	table := []entity.ReferenceEntry{
		entry("Nature", 69.5),
		entry("NATURE", 1.0),
	}
	res, ok := Resolve("nature", table, DefaultThreshold)
	if !ok {
		t.Fatal("expected a match")
	}
	if res.ImpactFactor != 69.5 {
		t.Errorf("impact factor = %v, want the first row's 69.5", res.ImpactFactor)
	}
}

// Fuzzy ties go to the earliest row.
func TestResolveFuzzyTieFirstWins(t *testing.T) {
	table := []entity.ReferenceEntry{
		entry("Natures", 2.0),
		entry("Naturez", 3.0),
	}
	res, ok := Resolve("nature", table, 0.5)
	if !ok {
		t.Fatal("expected a match")
	}
	if res.JournalName != "Natures" {
		t.Errorf("matched %q, want the earlier Natures on a tie", res.JournalName)
	}
}

func TestResolveEmptyTable(t *testing.T) {
	if _, ok := Resolve("Nature", nil, DefaultThreshold); ok {
		t.Error("empty table must not match")
	}
}
