package schedule

import (
	"context"
	"errors"

	scheduleRepo "schedulematch/database/repository/schedule"
	"schedulematch/models"
)

var (
	ErrInvalidDate      = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidRange     = errors.New("start_date must not be after end_date")
	ErrScheduleNotFound = errors.New("schedule not found")
)

type ScheduleService interface {
	Upsert(ctx context.Context, username string, req models.ScheduleUpdateRequest) (*models.DaySchedule, error)
	Get(ctx context.Context, username, date string) (*models.DaySchedule, error)
	Range(ctx context.Context, username, start, end string) ([]models.DaySchedule, error)
	Delete(ctx context.Context, username, date string) error

	// FetchDaySchedule returns the stored record or nil when the user has none.
	FetchDaySchedule(ctx context.Context, username string, date models.CalendarDate) (*models.DaySchedule, error)
}

type DefaultScheduleService struct {
	Repo scheduleRepo.ScheduleRepository
}

func NewScheduleService(repo scheduleRepo.ScheduleRepository) *DefaultScheduleService {
	return &DefaultScheduleService{Repo: repo}
}
