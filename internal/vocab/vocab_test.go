package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasRoleKeyword(t *testing.T) {
	v := Default()

	tests := []struct {
		name     string
		line     string
		expected bool
	}{
		{"Exact keyword", "Software Engineer", true},
		{"Case insensitive", "software ENGINEER", true},
		{"Keyword mid-line", "Acted as Lead on two projects", true},
		{"Boundary blocks prefix match", "International Sales", false},
		{"Boundary blocks suffix match", "Engineering culture", false},
		{"No keyword", "Shipped the billing migration", false},
		{"Empty line", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, v.HasRoleKeyword(tt.line))
		})
	}
}

func TestTermMatchers(t *testing.T) {
	v := Default()

	assert.True(t, v.HasEducationTerm("University of Texas"))
	assert.True(t, v.HasEducationTerm("B.S. in Mathematics"))
	assert.False(t, v.HasEducationTerm("Built internal tooling"))

	assert.True(t, v.HasTechTerm("5 years of React"))
	assert.True(t, v.HasTechTerm("POSTGRES and Redis"))
	assert.False(t, v.HasTechTerm("Managed a warehouse team"))

	assert.True(t, v.HasSectionHeading("WORK EXPERIENCE"))
	assert.False(t, v.HasSectionHeading("Miscellany"))
}

func TestRegionLookups(t *testing.T) {
	v := Default()

	assert.True(t, v.IsStateCode("TX"))
	assert.True(t, v.IsStateCode("tx"))
	assert.True(t, v.IsStateCode(" ON "))
	assert.False(t, v.IsStateCode("ZZ"))

	assert.True(t, v.IsCountry("Canada"))
	assert.True(t, v.IsCountry("united kingdom"))
	assert.False(t, v.IsCountry("Atlantis"))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	content := `role_keywords:
  - Wrangler
tech_terms:
  - Erlang
cities:
  - "Boise, ID"
state_codes:
  - yt
countries:
  - Iceland
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v := Default()
	require.NoError(t, v.LoadFile(path))

	// Overrides extend the built-ins and feed the compiled matchers.
	assert.True(t, v.HasRoleKeyword("Data Wrangler"))
	assert.True(t, v.HasTechTerm("Rewrote the router in Erlang"))
	assert.Contains(t, v.Cities, "Boise, ID")
	assert.True(t, v.IsStateCode("YT"))
	assert.True(t, v.IsCountry("iceland"))

	// Built-ins survive the merge.
	assert.True(t, v.HasRoleKeyword("Engineer"))
	assert.True(t, v.IsStateCode("TX"))
}

func TestLoadFileErrors(t *testing.T) {
	v := Default()

	err := v.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read vocabulary file")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("cities: {not: a list}"), 0o644))
	err = v.LoadFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse vocabulary file")
}
