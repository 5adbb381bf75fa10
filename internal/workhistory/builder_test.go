package workhistory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-intel/internal/classify"
	"github.com/jonathan/resume-intel/internal/dates"
	"github.com/jonathan/resume-intel/internal/location"
	"github.com/jonathan/resume-intel/internal/types"
	"github.com/jonathan/resume-intel/internal/vocab"
)

func newBuilder() *Builder {
	v := vocab.Default()
	rec := location.NewRecognizer(v)
	return NewBuilder(classify.New(v, dates.NewParser(), rec), rec)
}

func TestBuild(t *testing.T) {
	b := newBuilder()

	tests := []struct {
		name     string
		text     string
		expected []types.WorkExperienceEntry
	}{
		{
			name: "Complete entry",
			text: "Senior Software Engineer\nAcme Corp\nJan 2020 - Jun 2021\nAustin, TX\n• Led a team of five",
			expected: []types.WorkExperienceEntry{
				{
					Title:       "Senior Software Engineer",
					Company:     "Acme Corp",
					Duration:    "Jan 2020 - Jun 2021",
					Location:    "Austin, TX",
					Description: []string{"• Led a team of five"},
				},
			},
		},
		{
			name: "Second title closes the first entry",
			text: "Software Engineer\nAcme Corp\n2019 - 2021\n• Built ingestion pipelines\nEngineering Manager\nGlobex Inc\n2021 - Present",
			expected: []types.WorkExperienceEntry{
				{
					Title:       "Software Engineer",
					Company:     "Acme Corp",
					Duration:    "2019 - 2021",
					Description: []string{"• Built ingestion pipelines"},
				},
				{
					Title:    "Engineering Manager",
					Company:  "Globex Inc",
					Duration: "2021 - Present",
				},
			},
		},
		{
			name: "Year on the company line skips the lookahead",
			text: "Software Engineer\n2019 - 2021\nInitech",
			expected: []types.WorkExperienceEntry{
				{
					Title:    "Software Engineer",
					Duration: "2019 - 2021",
				},
			},
		},
		{
			name: "Lookahead takes an adjacent title line as the company",
			text: "Senior Engineer\nEngineering Manager",
			expected: []types.WorkExperienceEntry{
				{
					Title:   "Senior Engineer",
					Company: "Engineering Manager",
				},
			},
		},
		{
			name: "Bulleted title stays description",
			text: "Software Engineer\nAcme Corp\n- Senior Developer on the core team",
			expected: []types.WorkExperienceEntry{
				{
					Title:       "Software Engineer",
					Company:     "Acme Corp",
					Description: []string{"- Senior Developer on the core team"},
				},
			},
		},
		{
			name: "Title on the last line emits a bare entry",
			text: "Software Engineer",
			expected: []types.WorkExperienceEntry{
				{Title: "Software Engineer"},
			},
		},
		{
			name:     "No titles means no entries",
			text:     "Just prose\nMore prose that runs long enough to qualify as description",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, b.Build(tt.text))
		})
	}
}

func TestBuildShortLinesAreNotDescription(t *testing.T) {
	b := newBuilder()

	// Lines of ten characters or fewer never become description.
	entries := b.Build("Software Engineer\nAcme Corp\nGo, SQL\nOperated the deployment pipeline end to end")
	require.Len(t, entries, 1)
	assert.Equal(t, []string{"Operated the deployment pipeline end to end"}, entries[0].Description)
}

func TestBuildLocationFillsOnce(t *testing.T) {
	b := newBuilder()

	entries := b.Build("Software Engineer\nAcme Corp\nAustin, TX\nPortland, OR")
	require.Len(t, entries, 1)
	assert.Equal(t, "Austin, TX", entries[0].Location)
	// The second location line falls through to description.
	assert.Equal(t, []string{"Portland, OR"}, entries[0].Description)
}

func TestCollectTitles(t *testing.T) {
	v := vocab.Default()

	text := "Senior Software Engineer\nAcme Corp\n• Led a team of five\nStaff Engineer (Platform)\nEngineer, University of Texas\nSenior Software Engineer"

	titles := CollectTitles(text, v)

	// Parentheses, education vocabulary, and keyword-free lines are skipped;
	// duplicates are kept.
	assert.Equal(t, []string{
		"Senior Software Engineer",
		"Senior Software Engineer",
	}, titles)
}

func TestCollectTitlesLengthBounds(t *testing.T) {
	v := vocab.Default()

	assert.Empty(t, CollectTitles("Lead", v))
	assert.Empty(t, CollectTitles("", v))
}
