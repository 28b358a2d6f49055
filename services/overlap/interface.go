package overlap

import (
	"errors"

	"schedulematch/models"
)

// ErrInvalidTimezone is returned when a timezone identifier cannot be resolved
// against the IANA database. It signals bad user configuration, not an empty day.
var ErrInvalidTimezone = errors.New("invalid timezone")

// OverlapEngine computes when two users are both free on one date.
type OverlapEngine interface {
	// Compute merges each user's free time, intersects the two and renders all three
	// lists in displayTZ. A nil schedule means the user has no record for the date.
	Compute(date models.CalendarDate, scheduleA *models.DaySchedule, tzA string,
		scheduleB *models.DaySchedule, tzB string, displayTZ string) (*models.OverlapResult, error)
}

// DefaultOverlapEngine is stateless and safe for concurrent use.
type DefaultOverlapEngine struct{}
