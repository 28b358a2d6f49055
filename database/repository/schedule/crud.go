// File: database/repository/schedule/crud.go
package scheduleRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"schedulematch/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (repo *mongoScheduleRepo) Upsert(ctx context.Context, username string, day models.DaySchedule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	available := day.IsAvailable
	doc := models.StoredSchedule{
		Username:    username,
		Date:        day.Date,
		BusyTimes:   day.BusyTimes,
		FreeTimes:   day.FreeTimes,
		IsAvailable: &available,
		UpdatedAt:   time.Now().UTC(),
	}
	filter := bson.M{"username": username, "date": day.Date}
	if _, err := repo.coll.ReplaceOne(ctx, filter, doc, options.Replace().SetUpsert(true)); err != nil {
		return fmt.Errorf("failed to save schedule %s for %s: %w", day.Date, username, err)
	}
	return nil
}

func (repo *mongoScheduleRepo) Get(ctx context.Context, username, date string) (*models.DaySchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc models.StoredSchedule
	err := repo.coll.FindOne(ctx, bson.M{"username": username, "date": date}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch schedule %s for %s: %w", date, username, err)
	}
	day := doc.DaySchedule()
	return &day, nil
}

func (repo *mongoScheduleRepo) Range(ctx context.Context, username, start, end string) ([]models.DaySchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"username": username,
		"date":     bson.M{"$gte": start, "$lte": end},
	}
	cursor, err := repo.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedules: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []models.StoredSchedule
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error decoding schedules: %w", err)
	}

	days := make([]models.DaySchedule, 0, len(docs))
	for _, doc := range docs {
		days = append(days, doc.DaySchedule())
	}
	return days, nil
}

func (repo *mongoScheduleRepo) Delete(ctx context.Context, username, date string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := repo.coll.DeleteOne(ctx, bson.M{"username": username, "date": date})
	if err != nil {
		return false, fmt.Errorf("failed to delete schedule %s for %s: %w", date, username, err)
	}
	return result.DeletedCount > 0, nil
}
