package entity

// ReferenceEntry is one row of the journal reference table.
type ReferenceEntry struct {
	// JournalName is the display form, exactly as it appears in the table.
	JournalName string
	// NormalizedName is the lowercased, trimmed form consulted on every
	// lookup. Precomputed at load time.
	NormalizedName string
	ImpactFactor   float64
}
