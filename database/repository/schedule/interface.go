// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"

	"schedulematch/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleRepository stores one DaySchedule per (username, date).
type ScheduleRepository interface {
	// Upsert replaces the user's record for day.Date, inserting it if absent.
	Upsert(ctx context.Context, username string, day models.DaySchedule) error
	// Get returns the record, or nil when the user has none for date.
	Get(ctx context.Context, username, date string) (*models.DaySchedule, error)
	// Range returns records with start <= date <= end ordered by date.
	Range(ctx context.Context, username, start, end string) ([]models.DaySchedule, error)
	// Delete reports whether a record was removed.
	Delete(ctx context.Context, username, date string) (bool, error)
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo(db *mongo.Database) ScheduleRepository {
	repo := &mongoScheduleRepo{coll: db.Collection("schedules")}
	repo.ensureIndexes()
	return repo
}
