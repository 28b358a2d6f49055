// Package match manages schedule matches between friends and answers overlap
// queries for active ones.
package match

import (
	"context"
	"errors"

	matchRepo "schedulematch/database/repository/match"
	userRepo "schedulematch/database/repository/user"
	"schedulematch/models"
	"schedulematch/services/overlap"
)

var (
	ErrNotFriends    = errors.New("you can only match schedules with friends")
	ErrMatchExists   = errors.New("a schedule match with this user already exists")
	ErrMatchNotFound = errors.New("schedule match not found")
	ErrNoActiveMatch = errors.New("no active schedule match with this user")
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidDate   = errors.New("invalid date format, expected YYYY-MM-DD")
)

// DayScheduleFetcher returns a user's record for a date, nil when absent.
type DayScheduleFetcher interface {
	FetchDaySchedule(ctx context.Context, username string, date models.CalendarDate) (*models.DaySchedule, error)
}

// TimezoneFetcher returns a user's timezone; "" is treated as UTC.
type TimezoneFetcher interface {
	FetchUserTimezone(ctx context.Context, username string) (string, error)
}

type MatchService interface {
	Request(ctx context.Context, current *models.User, friend string) (*models.ScheduleMatch, error)
	Respond(ctx context.Context, current *models.User, from string, accept bool) error
	ListActive(ctx context.Context, current *models.User) ([]models.ScheduleMatch, error)
	ListRequests(ctx context.Context, current *models.User) ([]models.UserSummary, error)
	Delete(ctx context.Context, current *models.User, friend string) error
	Overlap(ctx context.Context, current *models.User, friend, date string) (*models.OverlapResult, error)
}

type DefaultMatchService struct {
	Users     userRepo.UserRepository
	Matches   matchRepo.MatchRepository
	Schedules DayScheduleFetcher
	Timezones TimezoneFetcher
	Engine    overlap.OverlapEngine
}
