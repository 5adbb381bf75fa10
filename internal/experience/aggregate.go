// Package experience computes total employment duration by merging
// overlapping or adjacent date ranges. Without the merge, concurrent roles
// (a contract overlapping a permanent position) would double-count months.
package experience

import (
	"sort"

	"github.com/jonathan/resume-intel/internal/types"
)

// Aggregate merges the given ranges and sums the months covered by the merged
// intervals. Months are counted inclusively: a range covering January through
// December of one year contributes 12 months. Degenerate ranges with end
// before start contribute zero, never negative.
func Aggregate(ranges []types.DateRange) types.AggregateExperience {
	merged := MergeRanges(ranges)

	agg := types.AggregateExperience{DateRanges: ranges}
	for _, r := range merged {
		months := r.End.Index() - r.Start.Index() + 1
		if months < 0 {
			months = 0
		}
		agg.TotalMonths += months

		if agg.EarliestYear == nil || r.Start.Year < *agg.EarliestYear {
			year := r.Start.Year
			agg.EarliestYear = &year
		}
		if agg.LatestYear == nil || r.End.Year > *agg.LatestYear {
			year := r.End.Year
			agg.LatestYear = &year
		}
	}

	agg.EstimatedYears = agg.TotalMonths / 12
	agg.EstimatedMonths = agg.TotalMonths % 12

	return agg
}

// MergeRanges sorts the ranges by start and coalesces every overlapping or
// adjacent pair into the minimal set of disjoint intervals. A range starting
// the month immediately after the running end still merges; a gap of one full
// idle month does not. Raw text is dropped from merged intervals since a
// merged interval no longer corresponds to a single source substring.
func MergeRanges(ranges []types.DateRange) []types.DateRange {
	if len(ranges) == 0 {
		return nil
	}

	sorted := make([]types.DateRange, len(ranges))
	copy(sorted, ranges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	merged := make([]types.DateRange, 0, len(sorted))
	cur := types.DateRange{Start: sorted[0].Start, End: sorted[0].End}

	for _, next := range sorted[1:] {
		if next.Start.Index() <= cur.End.Index()+1 {
			if cur.End.Before(next.End) {
				cur.End = next.End
			}
			continue
		}
		merged = append(merged, cur)
		cur = types.DateRange{Start: next.Start, End: next.End}
	}

	return append(merged, cur)
}
