package workhistory

import (
	"strings"

	"github.com/jonathan/resume-intel/internal/vocab"
)

const (
	minLooseTitleLen = 5
	maxLooseTitleLen = 100
)

// CollectTitles runs an independent, looser scan for title-like lines, for
// display and for cross-validation against Build's output. Candidates are
// collected in document order without deduplication.
func CollectTitles(text string, v *vocab.Vocabulary) []string {
	var titles []string
	for _, line := range nonEmptyLines(text) {
		if len(line) <= minLooseTitleLen || len(line) >= maxLooseTitleLen {
			continue
		}
		if strings.ContainsAny(line, "@(") {
			continue
		}
		if v.HasEducationTerm(line) {
			continue
		}
		if v.HasRoleKeyword(line) {
			titles = append(titles, line)
		}
	}
	return titles
}
