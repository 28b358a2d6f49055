// Package memory keeps users, schedules and matches in process memory. It backs
// STORAGE_DRIVER=memory for local runs and the service tests.
package memory

import (
	"sync"

	"schedulematch/models"
)

// Store is the shared state behind the three repositories.
type Store struct {
	mu        sync.RWMutex
	users     map[string]models.User
	schedules map[scheduleKey]models.DaySchedule
	matches   map[string]models.ScheduleMatch
}

type scheduleKey struct {
	username string
	date     string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		users:     make(map[string]models.User),
		schedules: make(map[scheduleKey]models.DaySchedule),
		matches:   make(map[string]models.ScheduleMatch),
	}
}

func cloneStrings(xs []string) []string {
	out := make([]string, len(xs))
	copy(out, xs)
	return out
}

func cloneSlots(xs []models.TimeSlot) []models.TimeSlot {
	out := make([]models.TimeSlot, len(xs))
	copy(out, xs)
	return out
}

func cloneUser(u models.User) models.User {
	u.Friends = cloneStrings(u.Friends)
	u.FriendRequests = cloneStrings(u.FriendRequests)
	u.MatchRequests = cloneStrings(u.MatchRequests)
	return u
}

func cloneDay(d models.DaySchedule) models.DaySchedule {
	d.BusyTimes = cloneSlots(d.BusyTimes)
	d.FreeTimes = cloneSlots(d.FreeTimes)
	return d
}

func cloneMatch(m models.ScheduleMatch) models.ScheduleMatch {
	m.Users = cloneStrings(m.Users)
	return m
}
