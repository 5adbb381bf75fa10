// Package vocab provides the fixed vocabularies used by the extraction heuristics:
// section headings, job-role keywords, education and technology terms, the city
// gazetteer, and the state/country lists used for location validation.
package vocab

import (
	"regexp"
	"strings"
)

// Vocabulary holds every term list the extraction pipeline matches against.
// The zero value is not usable; construct with Default and optionally extend
// via LoadFile.
type Vocabulary struct {
	SectionHeadings []string `yaml:"section_headings"`
	RoleKeywords    []string `yaml:"role_keywords"`
	EducationTerms  []string `yaml:"education_terms"`
	TechTerms       []string `yaml:"tech_terms"`
	Cities          []string `yaml:"cities"`
	StateCodes      []string `yaml:"state_codes"`
	Countries       []string `yaml:"countries"`

	roleKeywordRe *regexp.Regexp
	stateCodeSet  map[string]bool
	countrySet    map[string]bool
}

// Default returns the built-in vocabulary.
func Default() *Vocabulary {
	v := &Vocabulary{
		SectionHeadings: []string{
			"summary", "objective", "profile", "about",
			"experience", "work experience", "employment", "work history",
			"professional experience", "career history",
			"skills", "technical skills", "competencies", "technologies",
			"education", "academic background", "qualifications",
			"certifications", "licenses",
			"projects", "portfolio",
			"achievements", "awards", "honors", "recognition",
			"publications", "languages", "volunteer", "interests", "references",
		},
		RoleKeywords: []string{
			"Engineer", "Manager", "Developer", "Analyst", "Director",
			"Lead", "Senior", "Junior", "Specialist", "Coordinator",
			"Associate", "Consultant", "Administrator", "Supervisor",
			"Executive", "Officer", "Representative", "Technician",
			"Designer", "Architect", "Intern",
		},
		EducationTerms: []string{
			"university", "college", "institute", "academy", "school of",
			"bachelor", "master", "ph.d", "phd", "doctorate", "mba",
			"b.s.", "b.a.", "m.s.", "m.a.", "degree", "diploma", "gpa",
		},
		TechTerms: []string{
			"javascript", "typescript", "python", "java", "golang", "ruby",
			"php", "swift", "kotlin", "scala", "rust", "c++", "c#",
			"react", "angular", "vue", "node", "django", "flask", "spring",
			"rails", "express", "graphql", "rest api",
			"docker", "kubernetes", "terraform", "jenkins", "ansible",
			"aws", "azure", "gcp", "lambda",
			"sql", "mysql", "postgres", "postgresql", "mongodb", "redis",
			"elasticsearch", "kafka", "rabbitmq",
			"git", "linux", "html", "css", "sass", "webpack",
		},
		Cities: []string{
			"New York, NY", "Los Angeles, CA", "Chicago, IL", "Houston, TX",
			"Phoenix, AZ", "Philadelphia, PA", "San Antonio, TX", "San Diego, CA",
			"Dallas, TX", "San Jose, CA", "Austin, TX", "Jacksonville, FL",
			"Fort Worth, TX", "Columbus, OH", "Charlotte, NC", "San Francisco, CA",
			"Indianapolis, IN", "Seattle, WA", "Denver, CO", "Washington, DC",
			"Boston, MA", "Nashville, TN", "Detroit, MI", "Portland, OR",
			"Las Vegas, NV", "Memphis, TN", "Louisville, KY", "Baltimore, MD",
			"Milwaukee, WI", "Albuquerque, NM", "Tucson, AZ", "Sacramento, CA",
			"Kansas City, MO", "Atlanta, GA", "Miami, FL", "Raleigh, NC",
			"Omaha, NE", "Minneapolis, MN", "Tampa, FL", "New Orleans, LA",
			"Cleveland, OH", "Pittsburgh, PA", "St. Louis, MO", "Salt Lake City, UT",
			"Oklahoma City, OK", "Toronto, ON", "Vancouver, BC", "Montreal, QC",
		},
		StateCodes: []string{
			"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
			"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
			"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
			"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
			"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
			"DC", "ON", "BC", "QC", "AB",
		},
		Countries: []string{
			"USA", "United States", "Canada", "Mexico",
			"UK", "United Kingdom", "England", "Ireland",
			"Germany", "France", "Spain", "Italy", "Netherlands",
			"India", "China", "Japan", "Singapore", "Australia", "Brazil",
		},
	}
	v.compile()
	return v
}

// compile rebuilds the derived lookup structures after the term lists change.
func (v *Vocabulary) compile() {
	keywords := make([]string, 0, len(v.RoleKeywords))
	for _, kw := range v.RoleKeywords {
		keywords = append(keywords, regexp.QuoteMeta(strings.ToLower(kw)))
	}
	v.roleKeywordRe = regexp.MustCompile(`(?i)\b(` + strings.Join(keywords, "|") + `)\b`)

	v.stateCodeSet = make(map[string]bool, len(v.StateCodes))
	for _, code := range v.StateCodes {
		v.stateCodeSet[strings.ToUpper(code)] = true
	}

	v.countrySet = make(map[string]bool, len(v.Countries))
	for _, country := range v.Countries {
		v.countrySet[strings.ToLower(country)] = true
	}
}

// HasRoleKeyword reports whether the line contains a job-role keyword as a
// whole word, case-insensitively.
func (v *Vocabulary) HasRoleKeyword(line string) bool {
	return v.roleKeywordRe.MatchString(line)
}

// HasEducationTerm reports whether the line contains education vocabulary.
func (v *Vocabulary) HasEducationTerm(line string) bool {
	return containsAny(line, v.EducationTerms)
}

// HasTechTerm reports whether the line contains a technology term.
func (v *Vocabulary) HasTechTerm(line string) bool {
	return containsAny(line, v.TechTerms)
}

// HasSectionHeading reports whether the line contains a known section heading.
func (v *Vocabulary) HasSectionHeading(line string) bool {
	return containsAny(line, v.SectionHeadings)
}

// IsStateCode reports whether token is a recognized two-letter state or
// province code.
func (v *Vocabulary) IsStateCode(token string) bool {
	return v.stateCodeSet[strings.ToUpper(strings.TrimSpace(token))]
}

// IsCountry reports whether token is a recognized country name.
func (v *Vocabulary) IsCountry(token string) bool {
	return v.countrySet[strings.ToLower(strings.TrimSpace(token))]
}

func containsAny(line string, terms []string) bool {
	lower := strings.ToLower(line)
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
