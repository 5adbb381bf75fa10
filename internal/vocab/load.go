package vocab

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// LoadFile reads a YAML vocabulary override file and appends its terms to the
// receiver. Override terms are additive; the built-in lists are never removed,
// so a deployment can extend the gazetteer without recompiling.
func (v *Vocabulary) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	var override Vocabulary
	if err := yaml.Unmarshal(data, &override); err != nil {
		return fmt.Errorf("failed to parse vocabulary file %s: %w", path, err)
	}

	v.SectionHeadings = appendLower(v.SectionHeadings, override.SectionHeadings)
	v.RoleKeywords = append(v.RoleKeywords, override.RoleKeywords...)
	v.EducationTerms = appendLower(v.EducationTerms, override.EducationTerms)
	v.TechTerms = appendLower(v.TechTerms, override.TechTerms)
	v.Cities = append(v.Cities, override.Cities...)
	v.StateCodes = append(v.StateCodes, override.StateCodes...)
	v.Countries = append(v.Countries, override.Countries...)

	v.compile()
	return nil
}

// appendLower appends terms lowercased, since the substring matchers compare
// against lowercased input.
func appendLower(dst, terms []string) []string {
	for _, term := range terms {
		if term == "" {
			continue
		}
		dst = append(dst, strings.ToLower(term))
	}
	return dst
}
