package overlap

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"schedulematch/models"
)

// ClockLayout is the wall-clock format used for slot boundaries.
const ClockLayout = "15:04"

// Interval is a span between two absolute instants.
type Interval struct {
	Start time.Time
	End   time.Time
}

// LoadLocation resolves an IANA identifier. An empty identifier means UTC; "Local"
// is rejected because it depends on the host the service happens to run on.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "UTC" {
		return time.UTC, nil
	}
	if name == "Local" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, name)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, name)
	}
	return loc, nil
}

// ToIntervals converts wall-clock slots on date in loc into absolute intervals.
// Slots that cannot be parsed or whose local times do not map to exactly one instant
// are dropped. Order follows the input.
func ToIntervals(date models.CalendarDate, slots []models.TimeSlot, loc *time.Location) []Interval {
	intervals := make([]Interval, 0, len(slots))
	for _, slot := range slots {
		iv, ok := slotInterval(date, slot, loc)
		if !ok {
			continue
		}
		intervals = append(intervals, iv)
	}
	return intervals
}

func slotInterval(date models.CalendarDate, slot models.TimeSlot, loc *time.Location) (Interval, bool) {
	sh, sm, ok := parseClock(slot.Start)
	if !ok {
		return Interval{}, false
	}
	eh, em, ok := parseClock(slot.End)
	if !ok {
		return Interval{}, false
	}
	start, ok := resolveLocal(date, sh, sm, loc)
	if !ok {
		return Interval{}, false
	}
	end, ok := resolveLocal(date, eh, em, loc)
	if !ok {
		return Interval{}, false
	}
	return Interval{Start: start, End: end}, true
}

// parseClock accepts exactly "HH:MM" with HH in 00-23 and MM in 00-59.
func parseClock(s string) (hour, minute int, ok bool) {
	if len(s) != 5 || s[2] != ':' {
		return 0, 0, false
	}
	hour, ok = twoDigits(s[0], s[1])
	if !ok || hour > 23 {
		return 0, 0, false
	}
	minute, ok = twoDigits(s[3], s[4])
	if !ok || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

// resolveLocal finds the single instant at which loc's clocks read hour:minute on
// date. It fails for wall times skipped by a forward transition and for wall times
// that occur twice after a backward one.
func resolveLocal(date models.CalendarDate, hour, minute int, loc *time.Location) (time.Time, bool) {
	wall := date.At(hour, minute, time.UTC)
	guess := date.At(hour, minute, loc)

	// Offsets in effect around the guess cover both sides of any transition
	// touching this wall time.
	var offsets []int
	for _, probe := range []time.Time{guess.Add(-6 * time.Hour), guess, guess.Add(6 * time.Hour)} {
		_, off := probe.In(loc).Zone()
		if !containsInt(offsets, off) {
			offsets = append(offsets, off)
		}
	}

	var found []time.Time
	for _, off := range offsets {
		candidate := wall.Add(-time.Duration(off) * time.Second)
		local := candidate.In(loc)
		if _, got := local.Zone(); got != off {
			continue
		}
		if local.Year() != date.Year || local.Month() != date.Month || local.Day() != date.Day ||
			local.Hour() != hour || local.Minute() != minute {
			continue
		}
		found = append(found, candidate)
	}
	if len(found) != 1 {
		return time.Time{}, false
	}
	return found[0], true
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
