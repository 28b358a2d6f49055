package overlap

import (
	"slices"
)

// Merge returns the sorted, disjoint cover of intervals. Empty and reversed
// intervals are dropped; intervals that overlap or touch are joined. The input is
// not modified.
func Merge(intervals []Interval) []Interval {
	valid := make([]Interval, 0, len(intervals))
	for _, iv := range intervals {
		if iv.Start.Before(iv.End) {
			valid = append(valid, iv)
		}
	}
	if len(valid) == 0 {
		return []Interval{}
	}

	slices.SortFunc(valid, func(a, b Interval) int {
		return a.Start.Compare(b.Start)
	})

	merged := []Interval{valid[0]}
	for _, next := range valid[1:] {
		current := &merged[len(merged)-1]
		if !next.Start.After(current.End) {
			if next.End.After(current.End) {
				current.End = next.End
			}
			continue
		}
		merged = append(merged, next)
	}
	return merged
}
