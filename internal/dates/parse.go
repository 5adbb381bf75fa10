// Package dates recognizes employment date ranges in resume text and
// normalizes them to calendar-month pairs.
//
// Five range grammars are attempted against each line, in priority order:
//
//  1. Month Year - Month Year   ("Jan 2020 - Jun 2021")
//  2. Month Year - Present      ("Jan 2020 - Present")
//  3. MM/YYYY - MM/YYYY         ("01/2020 - 06/2021")
//  4. YYYY - YYYY               ("2020 - 2021")
//  5. YYYY - Present            ("2020 - Present")
//
// A line may match several grammars; every match is returned and duplicates
// are left to the caller. Open-ended ranges ("Present", "Current", "Now")
// resolve against the parser's clock, never a hidden global, so tests can
// freeze time.
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-intel/internal/types"
)

// Clock supplies the wall-clock date used to close open-ended ranges.
type Clock func() time.Time

const (
	monthToken = `(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)`
	rangeSep   = `\s*[-–—]\s*`
	openEnd    = `(?:present|current|now)`
)

var (
	monthYearRangeRe = regexp.MustCompile(`(?i)(` + monthToken + `\.?\s+\d{4})` + rangeSep + `(` + monthToken + `\.?\s+\d{4})`)
	monthYearOpenRe  = regexp.MustCompile(`(?i)(` + monthToken + `\.?\s+\d{4})` + rangeSep + openEnd + `\b`)
	numericRangeRe   = regexp.MustCompile(`\b(\d{1,2}/\d{4})` + rangeSep + `(\d{1,2}/\d{4})`)
	yearRangeRe      = regexp.MustCompile(`\b(\d{4})` + rangeSep + `(\d{4})\b`)
	yearOpenRe       = regexp.MustCompile(`(?i)\b(\d{4})` + rangeSep + openEnd + `\b`)

	monthYearTokenRe = regexp.MustCompile(`(?i)^([a-z]+)\.?\s+(\d{4})$`)
	numericTokenRe   = regexp.MustCompile(`^(\d{1,2})/(\d{4})$`)
	bareYearTokenRe  = regexp.MustCompile(`^(\d{4})$`)
)

// monthsByPrefix maps the first three letters of a month name to its
// zero-based month number.
var monthsByPrefix = map[string]int{
	"jan": 0, "feb": 1, "mar": 2, "apr": 3, "may": 4, "jun": 5,
	"jul": 6, "aug": 7, "sep": 8, "oct": 9, "nov": 10, "dec": 11,
}

// Parser recognizes date ranges. The zero value is not usable; construct with
// NewParser.
type Parser struct {
	clock Clock
}

// Option configures a Parser.
type Option func(*Parser)

// WithClock overrides the wall clock used for open-ended ranges.
func WithClock(clock Clock) Option {
	return func(p *Parser) {
		p.clock = clock
	}
}

// NewParser creates a date range parser. By default open-ended ranges close at
// time.Now.
func NewParser(opts ...Option) *Parser {
	p := &Parser{clock: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseRanges returns every date range recognized in the line, in grammar
// priority order. Ranges whose tokens do not parse are discarded silently.
func (p *Parser) ParseRanges(line string) []types.DateRange {
	var ranges []types.DateRange

	for _, m := range monthYearRangeRe.FindAllStringSubmatch(line, -1) {
		if r, ok := p.closedRange(m[0], m[1], m[2]); ok {
			ranges = append(ranges, r)
		}
	}
	for _, m := range monthYearOpenRe.FindAllStringSubmatch(line, -1) {
		if r, ok := p.openRange(m[0], m[1]); ok {
			ranges = append(ranges, r)
		}
	}
	for _, m := range numericRangeRe.FindAllStringSubmatch(line, -1) {
		if r, ok := p.closedRange(m[0], m[1], m[2]); ok {
			ranges = append(ranges, r)
		}
	}
	for _, m := range yearRangeRe.FindAllStringSubmatch(line, -1) {
		if r, ok := p.closedRange(m[0], m[1], m[2]); ok {
			ranges = append(ranges, r)
		}
	}
	for _, m := range yearOpenRe.FindAllStringSubmatch(line, -1) {
		if r, ok := p.openRange(m[0], m[1]); ok {
			ranges = append(ranges, r)
		}
	}

	return ranges
}

// Matches reports whether any range grammar matches the line.
func (p *Parser) Matches(line string) bool {
	return monthYearRangeRe.MatchString(line) ||
		monthYearOpenRe.MatchString(line) ||
		numericRangeRe.MatchString(line) ||
		yearRangeRe.MatchString(line) ||
		yearOpenRe.MatchString(line)
}

func (p *Parser) closedRange(raw, startToken, endToken string) (types.DateRange, bool) {
	start, ok := parseToken(startToken)
	if !ok {
		return types.DateRange{}, false
	}
	end, ok := parseToken(endToken)
	if !ok {
		return types.DateRange{}, false
	}
	return types.DateRange{Start: start, End: end, RawText: raw}, true
}

func (p *Parser) openRange(raw, startToken string) (types.DateRange, bool) {
	start, ok := parseToken(startToken)
	if !ok {
		return types.DateRange{}, false
	}
	now := p.clock()
	end := types.CalendarMonth{Year: now.Year(), Month: int(now.Month()) - 1}
	return types.DateRange{Start: start, End: end, RawText: raw}, true
}

// parseToken parses a single date token. Recognized forms, in priority order:
// "Month Year" (name or 3-letter abbreviation), "MM/YYYY" (1-indexed month,
// normalized to 0-indexed), and bare "YYYY" (defaults to January).
func parseToken(token string) (types.CalendarMonth, bool) {
	token = strings.TrimSpace(token)

	if m := monthYearTokenRe.FindStringSubmatch(token); m != nil {
		name := strings.ToLower(m[1])
		if len(name) >= 3 {
			if month, ok := monthsByPrefix[name[:3]]; ok {
				year, _ := strconv.Atoi(m[2])
				return types.CalendarMonth{Year: year, Month: month}, true
			}
		}
		return types.CalendarMonth{}, false
	}

	if m := numericTokenRe.FindStringSubmatch(token); m != nil {
		month, _ := strconv.Atoi(m[1])
		if month < 1 || month > 12 {
			return types.CalendarMonth{}, false
		}
		year, _ := strconv.Atoi(m[2])
		return types.CalendarMonth{Year: year, Month: month - 1}, true
	}

	if m := bareYearTokenRe.FindStringSubmatch(token); m != nil {
		year, _ := strconv.Atoi(m[1])
		return types.CalendarMonth{Year: year, Month: 0}, true
	}

	return types.CalendarMonth{}, false
}
