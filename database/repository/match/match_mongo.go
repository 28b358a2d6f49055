package matchRepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"schedulematch/models"
	"schedulematch/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// matchDocument adds the unique pair key to the stored match.
type matchDocument struct {
	models.ScheduleMatch `bson:",inline"`
	PairKey              string `bson:"pair_key"`
}

// pairKey joins the sorted pair. Usernames are unique, so the key is too.
func pairKey(a, b string) string {
	return strings.Join(models.MatchPair(a, b), "\x00")
}

func (repo *mongoMatchRepo) ensureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "pair_key", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "users", Value: 1}, {Key: "status", Value: 1}}},
	}
	if _, err := repo.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		utils.GetLogger().Error("matchRepo: index creation failed", zap.Error(err))
	}
}

func (repo *mongoMatchRepo) findOne(ctx context.Context, filter bson.M) (*models.ScheduleMatch, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc matchDocument
	if err := repo.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch match: %w", err)
	}
	return &doc.ScheduleMatch, nil
}

func (repo *mongoMatchRepo) Get(ctx context.Context, a, b string) (*models.ScheduleMatch, error) {
	return repo.findOne(ctx, bson.M{"pair_key": pairKey(a, b)})
}

func (repo *mongoMatchRepo) GetActive(ctx context.Context, a, b string) (*models.ScheduleMatch, error) {
	return repo.findOne(ctx, bson.M{"pair_key": pairKey(a, b), "status": models.MatchActive})
}

func (repo *mongoMatchRepo) ListActive(ctx context.Context, username string) ([]models.ScheduleMatch, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"users": username, "status": models.MatchActive})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch matches for %s: %w", username, err)
	}
	defer cursor.Close(ctx)

	var docs []matchDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error decoding matches: %w", err)
	}
	matches := make([]models.ScheduleMatch, 0, len(docs))
	for _, doc := range docs {
		matches = append(matches, doc.ScheduleMatch)
	}
	return matches, nil
}

func (repo *mongoMatchRepo) Create(ctx context.Context, match *models.ScheduleMatch) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if len(match.Users) != 2 {
		return fmt.Errorf("match must have exactly two users, got %d", len(match.Users))
	}
	match.Users = models.MatchPair(match.Users[0], match.Users[1])
	doc := matchDocument{ScheduleMatch: *match, PairKey: pairKey(match.Users[0], match.Users[1])}
	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateMatch
		}
		return fmt.Errorf("failed to create match: %w", err)
	}
	return nil
}

func (repo *mongoMatchRepo) Activate(ctx context.Context, a, b, requestedBy string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"pair_key": pairKey(a, b), "requested_by": requestedBy}
	result, err := repo.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"status": models.MatchActive}})
	if err != nil {
		return false, fmt.Errorf("failed to activate match: %w", err)
	}
	return result.MatchedCount > 0, nil
}

func (repo *mongoMatchRepo) Delete(ctx context.Context, a, b string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := repo.coll.DeleteOne(ctx, bson.M{"pair_key": pairKey(a, b)})
	if err != nil {
		return false, fmt.Errorf("failed to delete match: %w", err)
	}
	return result.DeletedCount > 0, nil
}
