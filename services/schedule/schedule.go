package schedule

import (
	"context"
	"fmt"

	"schedulematch/models"
	"schedulematch/utils"

	"go.uber.org/zap"
)

// normalizeDate validates a YYYY-MM-DD string and returns its canonical form.
func normalizeDate(date string) (string, error) {
	d, err := models.ParseCalendarDate(date)
	if err != nil {
		return "", ErrInvalidDate
	}
	return d.String(), nil
}

// Upsert replaces the user's record for req.Date. Slots are stored as given; malformed
// ones are skipped later when overlaps are computed.
func (s *DefaultScheduleService) Upsert(ctx context.Context, username string, req models.ScheduleUpdateRequest) (*models.DaySchedule, error) {
	date, err := normalizeDate(req.Date)
	if err != nil {
		return nil, err
	}
	req.Date = date
	day := req.DaySchedule()

	if err := s.Repo.Upsert(ctx, username, day); err != nil {
		utils.GetLogger().Error("Schedule upsert failed",
			zap.String("username", username), zap.String("date", date), zap.Error(err))
		return nil, fmt.Errorf("failed to save schedule")
	}
	return &day, nil
}

// Get returns the stored day, or an empty available day when none exists.
func (s *DefaultScheduleService) Get(ctx context.Context, username, date string) (*models.DaySchedule, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}
	day, err := s.Repo.Get(ctx, username, date)
	if err != nil {
		utils.GetLogger().Error("Schedule fetch failed",
			zap.String("username", username), zap.String("date", date), zap.Error(err))
		return nil, fmt.Errorf("failed to load schedule")
	}
	if day == nil {
		empty := models.EmptyDaySchedule(date)
		return &empty, nil
	}
	return day, nil
}

func (s *DefaultScheduleService) Range(ctx context.Context, username, start, end string) ([]models.DaySchedule, error) {
	start, err := normalizeDate(start)
	if err != nil {
		return nil, err
	}
	end, err = normalizeDate(end)
	if err != nil {
		return nil, err
	}
	// Canonical dates compare correctly as strings.
	if start > end {
		return nil, ErrInvalidRange
	}
	days, err := s.Repo.Range(ctx, username, start, end)
	if err != nil {
		utils.GetLogger().Error("Schedule range failed",
			zap.String("username", username), zap.String("start", start), zap.String("end", end), zap.Error(err))
		return nil, fmt.Errorf("failed to load schedules")
	}
	return days, nil
}

func (s *DefaultScheduleService) Delete(ctx context.Context, username, date string) error {
	date, err := normalizeDate(date)
	if err != nil {
		return err
	}
	deleted, err := s.Repo.Delete(ctx, username, date)
	if err != nil {
		utils.GetLogger().Error("Schedule delete failed",
			zap.String("username", username), zap.String("date", date), zap.Error(err))
		return fmt.Errorf("failed to delete schedule")
	}
	if !deleted {
		return ErrScheduleNotFound
	}
	return nil
}

func (s *DefaultScheduleService) FetchDaySchedule(ctx context.Context, username string, date models.CalendarDate) (*models.DaySchedule, error) {
	day, err := s.Repo.Get(ctx, username, date.String())
	if err != nil {
		return nil, fmt.Errorf("fetch schedule for %s on %s: %w", username, date, err)
	}
	return day, nil
}
