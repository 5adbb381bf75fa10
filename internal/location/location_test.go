package location

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-intel/internal/vocab"
)

func TestRecognize(t *testing.T) {
	r := NewRecognizer(vocab.Default())

	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{
			name:     "Gazetteer city",
			line:     "Austin, TX",
			expected: []string{"Austin, TX"},
		},
		{
			name:     "Gazetteer city embedded in a longer line",
			line:     "Based in Austin, TX since 2019",
			expected: []string{"Austin, TX"},
		},
		{
			name:     "Tech terms exclude the whole line",
			line:     "5 years of React, Node.js experience in Austin",
			expected: nil,
		},
		{
			name:     "Education terms exclude the whole line",
			line:     "University of Texas, Austin",
			expected: nil,
		},
		{
			name:     "Role keywords exclude the whole line",
			line:     "Senior Engineer, Austin, TX",
			expected: nil,
		},
		{
			name:     "Remote indicator",
			line:     "Remote",
			expected: []string{"Remote"},
		},
		{
			name:     "Work from home collapses to Remote",
			line:     "Work from home (US time zones)",
			expected: []string{"Remote"},
		},
		{
			name:     "Generic city with valid state code",
			line:     "Springfield, IL",
			expected: []string{"Springfield, IL"},
		},
		{
			name:     "Generic city with unknown region is rejected",
			line:     "Springfield, ZZ",
			expected: nil,
		},
		{
			name:     "Country name validates the trailing token",
			line:     "London, United Kingdom",
			expected: []string{"London, United Kingdom"},
		},
		{
			name:     "Street address",
			line:     "123 Main Street, Springfield, IL",
			expected: []string{"123 Main Street, Springfield, IL"},
		},
		{
			name:     "Multiple gazetteer cities in one line",
			line:     "Seattle, WA and Portland, OR",
			expected: []string{"Seattle, WA", "Portland, OR"},
		},
		{
			name:     "Over-long lines are never locations",
			line:     "Dallas, TX " + strings.Repeat("x", maxLineLen),
			expected: nil,
		},
		{
			name:     "Empty line",
			line:     "",
			expected: nil,
		},
		{
			name:     "Plain prose",
			line:     "Shipped the billing migration on schedule",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Recognize(tt.line))
		})
	}
}

func TestRecognizeDeduplicates(t *testing.T) {
	r := NewRecognizer(vocab.Default())

	// "Austin, TX" satisfies both the gazetteer and the generic pattern; it
	// must appear once.
	assert.Equal(t, []string{"Austin, TX"}, r.Recognize("Austin, TX / Austin, TX"))
}
