package types

// CalendarMonth identifies a calendar month as a (year, month) pair.
// Month is zero-based (January = 0) to match the internal normalization of
// every date grammar the parser accepts.
type CalendarMonth struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// Index returns the month's position on a linear month axis, so ordering and
// distance checks reduce to integer comparisons.
func (m CalendarMonth) Index() int {
	return m.Year*12 + m.Month
}

// Before reports whether m is strictly earlier than other.
func (m CalendarMonth) Before(other CalendarMonth) bool {
	return m.Index() < other.Index()
}

// DateRange is a recognized employment date range. End may precede Start when
// the source text was misread; the parser does not reject degenerate ranges,
// the aggregator floors their contribution at zero instead.
type DateRange struct {
	Start   CalendarMonth `json:"start"`
	End     CalendarMonth `json:"end"`
	RawText string        `json:"raw_text"`
}

// AggregateExperience is the total employment duration computed by merging
// overlapping or adjacent date ranges. EarliestYear and LatestYear are nil
// when no range was parsed.
type AggregateExperience struct {
	TotalMonths     int         `json:"total_months"`
	EstimatedYears  int         `json:"estimated_years"`
	EstimatedMonths int         `json:"estimated_months"`
	EarliestYear    *int        `json:"earliest_year,omitempty"`
	LatestYear      *int        `json:"latest_year,omitempty"`
	DateRanges      []DateRange `json:"date_ranges"`
}
