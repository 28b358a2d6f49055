package memory

import (
	"context"
	"sort"

	scheduleRepo "schedulematch/database/repository/schedule"
	"schedulematch/models"
)

// ScheduleRepo implements scheduleRepo.ScheduleRepository on a Store.
type ScheduleRepo struct {
	store *Store
}

// NewScheduleRepo returns a ScheduleRepository backed by s.
func NewScheduleRepo(s *Store) scheduleRepo.ScheduleRepository {
	return &ScheduleRepo{store: s}
}

func (r *ScheduleRepo) Upsert(_ context.Context, username string, day models.DaySchedule) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.schedules[scheduleKey{username: username, date: day.Date}] = cloneDay(day)
	return nil
}

func (r *ScheduleRepo) Get(_ context.Context, username, date string) (*models.DaySchedule, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	day, ok := r.store.schedules[scheduleKey{username: username, date: date}]
	if !ok {
		return nil, nil
	}
	day = cloneDay(day)
	return &day, nil
}

func (r *ScheduleRepo) Range(_ context.Context, username, start, end string) ([]models.DaySchedule, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	days := []models.DaySchedule{}
	for key, day := range r.store.schedules {
		if key.username == username && key.date >= start && key.date <= end {
			days = append(days, cloneDay(day))
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days, nil
}

func (r *ScheduleRepo) Delete(_ context.Context, username, date string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := scheduleKey{username: username, date: date}
	if _, ok := r.store.schedules[key]; !ok {
		return false, nil
	}
	delete(r.store.schedules, key)
	return true, nil
}
