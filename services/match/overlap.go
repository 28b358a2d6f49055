package match

import (
	"context"

	"schedulematch/models"
	"schedulematch/utils"

	"go.uber.org/zap"
)

// Overlap computes the shared free time between current and friend on date. The
// friend is user A, current is user B, and every slot is rendered in current's
// timezone.
func (s *DefaultMatchService) Overlap(ctx context.Context, current *models.User, friend, date string) (*models.OverlapResult, error) {
	day, err := models.ParseCalendarDate(date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	other, err := s.Users.GetByUsername(ctx, friend)
	if err != nil {
		return nil, s.fail("Overlap", current.Username, err)
	}
	if other == nil {
		return nil, ErrUserNotFound
	}

	active, err := s.Matches.GetActive(ctx, current.Username, friend)
	if err != nil {
		return nil, s.fail("Overlap", current.Username, err)
	}
	if active == nil {
		return nil, ErrNoActiveMatch
	}

	scheduleA, err := s.Schedules.FetchDaySchedule(ctx, friend, day)
	if err != nil {
		return nil, s.fail("Overlap", current.Username, err)
	}
	scheduleB, err := s.Schedules.FetchDaySchedule(ctx, current.Username, day)
	if err != nil {
		return nil, s.fail("Overlap", current.Username, err)
	}
	tzA, err := s.Timezones.FetchUserTimezone(ctx, friend)
	if err != nil {
		return nil, s.fail("Overlap", current.Username, err)
	}
	tzB, err := s.Timezones.FetchUserTimezone(ctx, current.Username)
	if err != nil {
		return nil, s.fail("Overlap", current.Username, err)
	}

	result, err := s.Engine.Compute(day, scheduleA, tzA, scheduleB, tzB, tzB)
	if err != nil {
		utils.GetLogger().Warn("Overlap: engine rejected input",
			zap.String("user_a", friend), zap.String("user_b", current.Username), zap.Error(err))
		return nil, err
	}
	return result, nil
}
