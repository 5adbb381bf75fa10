// Package location decides whether short lines of resume text denote a
// geographic location or a remote-work arrangement.
//
// Recognition is exclusion-first: technology and job-role vocabulary overlaps
// enough with capitalized place names that rejecting noisy lines before
// pattern matching is the only viable precision strategy. After exclusion,
// three independent tiers may each contribute matches: the city gazetteer,
// remote-work indicators, and generic "City, ST" / street-address patterns
// validated against known state codes and country names.
package location

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-intel/internal/vocab"
)

// maxLineLen is the length above which a line cannot be a location.
const maxLineLen = 100

var (
	remoteRe      = regexp.MustCompile(`(?i)\b(remote|work\s+from\s+home|wfh|distributed|virtual)\b`)
	cityStateRe   = regexp.MustCompile(`\b([A-Z][a-zA-Z.'-]+(?:\s+[A-Z][a-zA-Z.'-]+)*),\s*([A-Z]{2}|[A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)*)\b`)
	streetAddrRe  = regexp.MustCompile(`(?i)\b\d+\s+[A-Za-z][A-Za-z .]*\s+(?:st|street|ave|avenue|blvd|boulevard|rd|road|dr|drive|ln|lane|ct|court|way|pl|place),?\s*([A-Za-z .]+),\s*([A-Za-z]{2}|[A-Za-z ]+)\b`)
)

// Recognizer recognizes location strings using a shared vocabulary.
type Recognizer struct {
	vocab *vocab.Vocabulary
}

// NewRecognizer creates a location recognizer backed by the given vocabulary.
func NewRecognizer(v *vocab.Vocabulary) *Recognizer {
	return &Recognizer{vocab: v}
}

// Recognize returns the locations found in the line, deduplicated in order of
// first match. A line that fails the exclusion checks yields nothing,
// regardless of what the patterns would have matched.
func (r *Recognizer) Recognize(line string) []string {
	line = strings.TrimSpace(line)
	if r.excluded(line) {
		return nil
	}

	var found []string
	seen := make(map[string]bool)
	add := func(loc string) {
		loc = strings.TrimSpace(loc)
		if loc == "" || seen[loc] {
			return
		}
		seen[loc] = true
		found = append(found, loc)
	}

	// Tier 1: gazetteer cities, exact "City, ST" substrings.
	lower := strings.ToLower(line)
	for _, city := range r.vocab.Cities {
		if strings.Contains(lower, strings.ToLower(city)) {
			add(city)
		}
	}

	// Tier 2: remote-work indicators collapse to the literal "Remote".
	if remoteRe.MatchString(line) {
		add("Remote")
	}

	// Tier 3: generic City, State|Country — kept only when the trailing
	// token survives state-code / country validation.
	for _, m := range cityStateRe.FindAllStringSubmatch(line, -1) {
		if r.validRegion(m[2]) {
			add(m[1] + ", " + m[2])
		}
	}
	for _, m := range streetAddrRe.FindAllStringSubmatch(line, -1) {
		if r.validRegion(m[2]) {
			add(m[0])
		}
	}

	return found
}

// excluded applies the rejection checks that run before any pattern matching.
func (r *Recognizer) excluded(line string) bool {
	if len(line) > maxLineLen {
		return true
	}
	if r.vocab.HasTechTerm(line) {
		return true
	}
	if r.vocab.HasEducationTerm(line) {
		return true
	}
	if r.vocab.HasRoleKeyword(line) {
		return true
	}
	return false
}

// validRegion reports whether the trailing token of a generic match is a known
// state code or country name.
func (r *Recognizer) validRegion(token string) bool {
	return r.vocab.IsStateCode(token) || r.vocab.IsCountry(token)
}
