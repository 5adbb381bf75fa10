// Package contact extracts contact channels from resume text: emails, North
// American phone numbers, LinkedIn handles, and location candidates.
package contact

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-intel/internal/location"
	"github.com/jonathan/resume-intel/internal/types"
)

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe = regexp.MustCompile(`(\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	// Matches linkedin.com/in/<handle> and country-coded <cc>.linkedin.com/<handle>.
	linkedinRe = regexp.MustCompile(`(?i)\b(?:linkedin\.com/in/[A-Za-z0-9_-]+|[a-z]{2}\.linkedin\.com/[A-Za-z0-9_/-]+)`)
)

// Extractor scans full resume text for contact channels. Email, phone, and
// handle matching run over the raw text; only location detection goes through
// the exclusion-filtered recognizer.
type Extractor struct {
	loc *location.Recognizer
}

// NewExtractor creates a contact extractor.
func NewExtractor(rec *location.Recognizer) *Extractor {
	return &Extractor{loc: rec}
}

// Extract returns the contact channels found in text.
func (e *Extractor) Extract(text string) types.ContactInfo {
	info := types.ContactInfo{
		Emails:          emailRe.FindAllString(text, -1),
		LinkedInHandles: linkedinRe.FindAllString(text, -1),
	}

	for _, phone := range phoneRe.FindAllString(text, -1) {
		info.Phones = append(info.Phones, strings.TrimSpace(phone))
	}

	// Locations: per-line recognition, set semantics across the document.
	seen := make(map[string]bool)
	for _, line := range strings.Split(text, "\n") {
		for _, loc := range e.loc.Recognize(line) {
			if seen[loc] {
				continue
			}
			seen[loc] = true
			info.Locations = append(info.Locations, loc)
		}
	}

	return info
}
