package overlap

import (
	"time"

	"schedulematch/models"
)

// Intersect returns the merged set of spans covered by both a and b. Spans that
// only touch at an endpoint are not an overlap.
func Intersect(a, b []Interval) []Interval {
	var raw []Interval
	for _, x := range a {
		for _, y := range b {
			start := x.Start
			if y.Start.After(start) {
				start = y.Start
			}
			end := x.End
			if y.End.Before(end) {
				end = y.End
			}
			if start.Before(end) {
				raw = append(raw, Interval{Start: start, End: end})
			}
		}
	}
	return Merge(raw)
}

// Render formats each interval as wall-clock times in loc. Only the time of day is
// kept, so an interval crossing midnight in loc reads as e.g. 22:00-01:00.
func Render(intervals []Interval, loc *time.Location) []models.TimeSlot {
	slots := make([]models.TimeSlot, 0, len(intervals))
	for _, iv := range intervals {
		slots = append(slots, models.TimeSlot{
			Start: iv.Start.In(loc).Format(ClockLayout),
			End:   iv.End.In(loc).Format(ClockLayout),
		})
	}
	return slots
}
