package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-intel/internal/classify"
	"github.com/jonathan/resume-intel/internal/dates"
	"github.com/jonathan/resume-intel/internal/location"
	"github.com/jonathan/resume-intel/internal/vocab"
)

func newClassifier() *classify.Classifier {
	v := vocab.Default()
	return classify.New(v, dates.NewParser(), location.NewRecognizer(v))
}

func TestSegment(t *testing.T) {
	cls := newClassifier()

	tests := []struct {
		name     string
		text     string
		expected map[string]string
	}{
		{
			name: "Two sections",
			text: "SUMMARY\nBuilt things.\nEXPERIENCE\nDid stuff.",
			expected: map[string]string{
				"summary":    "Built things.",
				"experience": "Did stuff.",
			},
		},
		{
			name: "Content before the first heading lands in header",
			text: "Jane Doe\njane@example.com\nSUMMARY\nTen years of ops work.",
			expected: map[string]string{
				"header":  "Jane Doe\njane@example.com",
				"summary": "Ten years of ops work.",
			},
		},
		{
			name: "Blank lines are dropped",
			text: "SUMMARY\n\nBuilt things.\n\n\nShipped more things.",
			expected: map[string]string{
				"summary": "Built things.\nShipped more things.",
			},
		},
		{
			name: "Repeated heading keeps the last occurrence",
			text: "EXPERIENCE\nFirst block.\nSKILLS\nGo.\nEXPERIENCE\nSecond block.",
			expected: map[string]string{
				"experience": "Second block.",
				"skills":     "Go.",
			},
		},
		{
			name: "Heading variants normalize to distinct names",
			text: "WORK EXPERIENCE\nDid stuff.\nTECHNICAL SKILLS:\nGo, SQL.",
			expected: map[string]string{
				"work_experience":  "Did stuff.",
				"technical_skills": "Go, SQL.",
			},
		},
		{
			name: "Heading with no body produces no entry",
			text: "SUMMARY\nEXPERIENCE\nDid stuff.",
			expected: map[string]string{
				"experience": "Did stuff.",
			},
		},
		{
			name:     "Empty text",
			text:     "",
			expected: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Segment(tt.text, cls))
		})
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name     string
		heading  string
		expected string
	}{
		{"All caps", "WORK EXPERIENCE", "work_experience"},
		{"Trailing colon stripped", "Skills:", "skills"},
		{"Punctuation collapses to one underscore", "Awards & Honors", "awards_honors"},
		{"Already normalized", "education", "education"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeName(tt.heading))
		})
	}
}
