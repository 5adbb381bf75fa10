// Package types provides type definitions for structured data produced by the
// resume-intel extraction engine.
package types

// ContactInfo holds the contact channels detected in a resume.
type ContactInfo struct {
	Emails          []string `json:"emails"`
	Phones          []string `json:"phones"`
	LinkedInHandles []string `json:"linkedin_handles"`
	Locations       []string `json:"locations"`
}

// WorkExperienceEntry is one employment entry assembled from the line stream.
// Company, Duration, and Location may be empty; absence of data is not an
// error condition.
type WorkExperienceEntry struct {
	Title       string   `json:"title"`
	Company     string   `json:"company,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	Location    string   `json:"location,omitempty"`
	Description []string `json:"description"`
}

// ExtractionResult is the full structured output of one extraction call.
type ExtractionResult struct {
	Contact     ContactInfo           `json:"contact"`
	Sections    map[string]string     `json:"sections"`
	Experience  AggregateExperience   `json:"experience"`
	WorkEntries []WorkExperienceEntry `json:"work_entries"`
	JobTitles   []string              `json:"job_titles"`
}
