// Package classify assigns a coarse category to individual lines of resume
// text. Several predicates can hold for the same line, so classification is a
// single ordered check: section heading, then job title, then date range, then
// location, with Content as the fallback. Keeping the priority in one function
// makes the ordering auditable.
package classify

import (
	"strings"

	"github.com/jonathan/resume-intel/internal/dates"
	"github.com/jonathan/resume-intel/internal/location"
	"github.com/jonathan/resume-intel/internal/vocab"
)

// LineKind is the category assigned to one line.
type LineKind int

const (
	// Content is the fallback for lines matching no other predicate.
	Content LineKind = iota
	// SectionHeading names a resume section ("Experience", "Education").
	SectionHeading
	// JobTitleCandidate contains job-role vocabulary and is title-shaped.
	JobTitleCandidate
	// DateRangeCandidate matches one of the date range grammars.
	DateRangeCandidate
	// LocationCandidate denotes a geographic location or remote indicator.
	LocationCandidate
)

// String returns the kind's name for logs and test output.
func (k LineKind) String() string {
	switch k {
	case SectionHeading:
		return "section_heading"
	case JobTitleCandidate:
		return "job_title"
	case DateRangeCandidate:
		return "date_range"
	case LocationCandidate:
		return "location"
	default:
		return "content"
	}
}

const (
	maxHeadingLen = 50
	minTitleLen   = 5
	maxTitleLen   = 100
)

// Classifier classifies lines using the shared vocabulary, date parser, and
// location recognizer.
type Classifier struct {
	vocab *vocab.Vocabulary
	dates *dates.Parser
	loc   *location.Recognizer
}

// New creates a line classifier.
func New(v *vocab.Vocabulary, p *dates.Parser, rec *location.Recognizer) *Classifier {
	return &Classifier{vocab: v, dates: p, loc: rec}
}

// Classify returns the kind of a trimmed, non-empty line. First match wins in
// the fixed priority order.
func (c *Classifier) Classify(line string) LineKind {
	switch {
	case c.IsSectionHeading(line):
		return SectionHeading
	case c.IsJobTitle(line):
		return JobTitleCandidate
	case c.dates.Matches(line):
		return DateRangeCandidate
	case len(c.loc.Recognize(line)) > 0:
		return LocationCandidate
	default:
		return Content
	}
}

// IsSectionHeading reports whether the line names a resume section. The
// uniform-casing requirement is a precision filter: prose sentences that
// merely mention a section name rarely keep uniform casing.
func (c *Classifier) IsSectionHeading(line string) bool {
	if len(line) >= maxHeadingLen {
		return false
	}
	if strings.ContainsAny(line, "@(") {
		return false
	}
	if !c.vocab.HasSectionHeading(line) {
		return false
	}
	return uniformCasing(line)
}

// IsJobTitle reports whether the line is a job-title candidate: title-shaped
// length, no email, no education vocabulary, and at least one role keyword.
func (c *Classifier) IsJobTitle(line string) bool {
	if len(line) <= minTitleLen || len(line) >= maxTitleLen {
		return false
	}
	if strings.Contains(line, "@") {
		return false
	}
	if c.vocab.HasEducationTerm(line) {
		return false
	}
	return c.vocab.HasRoleKeyword(line)
}

// uniformCasing reports whether the line is ALL CAPS, all lower, or
// Title Case of the first letter only.
func uniformCasing(line string) bool {
	if line == strings.ToUpper(line) || line == strings.ToLower(line) {
		return true
	}
	return line == strings.ToUpper(line[:1])+strings.ToLower(line[1:])
}
