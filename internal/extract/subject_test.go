package extract

import "testing"

func TestFromSubject(t *testing.T) {
	tests := []struct {
		name     string
		subject  string
		expected string
		ok       bool
	}{
		{
			name:     "comma rule fires first",
			subject:  "Nature, 2023, doi:10.1038/xxx",
			expected: "Nature",
			ok:       true,
		},
		{
			name:     "doi rule without comma",
			subject:  "Science doi:10.1126/xxx",
			expected: "Science",
			ok:       true,
		},
		{
			name:     "doi rule is case-insensitive",
			subject:  "Science DOI:10.1126/xxx",
			expected: "Science",
			ok:       true,
		},
		{
			name:     "year rule without comma or doi",
			subject:  "Cell 2023",
			expected: "Cell",
			ok:       true,
		},
		{
			name:     "year rule requires 19xx or 20xx",
			subject:  "Cell 1850",
			expected: "Cell",
			ok:       true, // falls through to the trailing-strip rule
		},
		{
			name:     "leading punctuation stripped from comma fragment",
			subject:  "[Nature Physics, 2022",
			expected: "Nature Physics",
			ok:       true,
		},
		{
			name:     "trailing noise stripped",
			subject:  "Nature Communications 12.3:",
			expected: "Nature Communications",
			ok:       true,
		},
		{
			name:    "short remainder rejected",
			subject: "Ab 1.",
			ok:      false,
		},
		{
			name:    "empty subject",
			subject: "",
			ok:      false,
		},
		{
			name:    "whitespace only",
			subject: "   \t ",
			ok:      false,
		},
		{
			name:     "numeric comma fragment falls through to later rules",
			subject:  "10.1038, Nature doi:10.1038/xxx",
			expected: "10.1038, Nature",
			ok:       true, // comma rule rejects "10.1038", doi rule takes the prefix
		},
		{
			name:     "plain name survives trailing strip",
			subject:  "Journal of Fish Biology",
			expected: "Journal of Fish Biology",
			ok:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromSubject(tt.subject)
			if ok != tt.ok {
				t.Fatalf("FromSubject(%q) ok = %v, want %v (got %q)", tt.subject, ok, tt.ok, got)
			}
			if ok && got != tt.expected {
				t.Errorf("FromSubject(%q) = %q, want %q", tt.subject, got, tt.expected)
			}
		})
	}
}
