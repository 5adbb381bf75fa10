// Package sections segments resume text into named sections by recognizing
// heading lines from a controlled vocabulary.
package sections

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-intel/internal/classify"
)

// headerSection collects everything that appears before the first recognized
// heading, typically the name and contact block.
const headerSection = "header"

var nonAlnumRe = regexp.MustCompile(`[^a-z0-9]+`)

// Segment walks the text top to bottom and groups lines under the most
// recently seen heading. Heading names are normalized; when the same
// normalized heading recurs, the last occurrence wins.
func Segment(text string, cls *classify.Classifier) map[string]string {
	sections := make(map[string]string)
	current := headerSection
	var buf []string

	flush := func() {
		if len(buf) > 0 {
			sections[current] = strings.Join(buf, "\n")
			buf = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if cls.IsSectionHeading(line) {
			flush()
			current = NormalizeName(line)
			continue
		}
		buf = append(buf, line)
	}
	flush()

	return sections
}

// NormalizeName lowercases a heading and replaces non-alphanumeric runs with
// underscores: "WORK EXPERIENCE" becomes "work_experience".
func NormalizeName(heading string) string {
	name := nonAlnumRe.ReplaceAllString(strings.ToLower(heading), "_")
	return strings.Trim(name, "_")
}
