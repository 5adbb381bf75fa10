// Package workhistory assembles discrete employment entries from the resume
// line stream and collects loose job-title candidates.
package workhistory

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-intel/internal/classify"
	"github.com/jonathan/resume-intel/internal/location"
	"github.com/jonathan/resume-intel/internal/types"
)

// scanState is the builder's position in the entry lifecycle.
type scanState int

const (
	stateIdle scanState = iota
	stateCollecting
)

const (
	maxCompanyLen     = 100
	maxLocationLen    = 50
	minDescriptionLen = 10
)

var yearRe = regexp.MustCompile(`\b\d{4}\b`)

// Builder builds work experience entries. It is a two-state machine over the
// line stream with an explicit cursor: a job-title line opens an entry and may
// consume the next one or two lines as company and duration; subsequent lines
// fill duration, location, and description until the next title line, which
// triggers a single-step backtrack so it is reprocessed as a fresh entry.
type Builder struct {
	cls *classify.Classifier
	loc *location.Recognizer
}

// NewBuilder creates a work entry builder.
func NewBuilder(cls *classify.Classifier, rec *location.Recognizer) *Builder {
	return &Builder{cls: cls, loc: rec}
}

// Build returns the employment entries found in text, in document order.
// Entries with no detected company, duration, or location are still emitted
// with those fields empty.
func (b *Builder) Build(text string) []types.WorkExperienceEntry {
	lines := nonEmptyLines(text)

	var entries []types.WorkExperienceEntry
	var cur types.WorkExperienceEntry
	state := stateIdle

	emit := func() {
		entries = append(entries, cur)
		cur = types.WorkExperienceEntry{}
		state = stateIdle
	}

	i := 0
	for i < len(lines) {
		line := lines[i]

		if state == stateIdle {
			if b.startsEntry(line) {
				cur = types.WorkExperienceEntry{Title: line}
				state = stateCollecting
				i += b.consumeHeader(&cur, lines[i+1:])
			}
			i++
			continue
		}

		switch {
		case b.startsEntry(line):
			// Backtrack: close the open entry and reprocess this line
			// as the next entry's title.
			emit()
			continue
		case cur.Duration == "" && yearRe.MatchString(line):
			cur.Duration = line
		default:
			if cur.Location == "" && len(line) < maxLocationLen &&
				!yearRe.MatchString(line) && !b.cls.IsJobTitle(line) {
				if locs := b.loc.Recognize(line); len(locs) > 0 {
					cur.Location = locs[0]
					break
				}
			}
			if len(line) > minDescriptionLen {
				cur.Description = append(cur.Description, line)
			}
		}
		i++
	}

	if state == stateCollecting {
		emit()
	}

	return entries
}

// startsEntry reports whether the line opens a new entry: a job-title
// candidate that is not a bullet. Bulleted title-like lines stay description.
func (b *Builder) startsEntry(line string) bool {
	return b.cls.IsJobTitle(line) && !bulleted(line)
}

// consumeHeader attempts the company/duration lookahead after a title line and
// returns how many lines it consumed. The company line must carry no year and
// stay short; the duration line is taken only after a company and only when it
// carries a year.
func (b *Builder) consumeHeader(entry *types.WorkExperienceEntry, rest []string) int {
	if len(rest) == 0 {
		return 0
	}
	company := rest[0]
	if yearRe.MatchString(company) || len(company) >= maxCompanyLen {
		return 0
	}
	entry.Company = company

	if len(rest) > 1 && yearRe.MatchString(rest[1]) {
		entry.Duration = rest[1]
		return 2
	}
	return 1
}

func bulleted(line string) bool {
	return strings.HasPrefix(line, "•") ||
		strings.HasPrefix(line, "-") ||
		strings.HasPrefix(line, "*")
}

// nonEmptyLines splits text into trimmed, non-empty lines.
func nonEmptyLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
