package overlap

import (
	"fmt"

	"schedulematch/models"
)

// Compute implements OverlapEngine. All three timezones are resolved before any
// slot is looked at, so an invalid identifier never yields a partial result.
func (DefaultOverlapEngine) Compute(date models.CalendarDate, scheduleA *models.DaySchedule, tzA string,
	scheduleB *models.DaySchedule, tzB string, displayTZ string) (*models.OverlapResult, error) {
	locA, err := LoadLocation(tzA)
	if err != nil {
		return nil, fmt.Errorf("user a: %w", err)
	}
	locB, err := LoadLocation(tzB)
	if err != nil {
		return nil, fmt.Errorf("user b: %w", err)
	}
	display, err := LoadLocation(displayTZ)
	if err != nil {
		return nil, fmt.Errorf("display: %w", err)
	}

	mergedA := Merge(ToIntervals(date, freeTimes(scheduleA), locA))
	mergedB := Merge(ToIntervals(date, freeTimes(scheduleB), locB))
	overlaps := Intersect(mergedA, mergedB)

	return &models.OverlapResult{
		Date:       date.String(),
		Overlaps:   Render(overlaps, display),
		UserASlots: Render(mergedA, display),
		UserBSlots: Render(mergedB, display),
	}, nil
}

// freeTimes is the free list a schedule contributes: nothing when the record is
// missing or the day is marked unavailable.
func freeTimes(schedule *models.DaySchedule) []models.TimeSlot {
	if schedule == nil || !schedule.IsAvailable {
		return nil
	}
	return schedule.FreeTimes
}
