package userRepo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"schedulematch/models"
	"schedulematch/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo(db *mongo.Database) UserRepository {
	repo := &MongoUserRepo{coll: db.Collection("users")}

	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Error("userRepo: index creation failed", zap.Error(err))
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

// GetByUsername retrieves a user by username; (nil, nil) means not found.
func (r *MongoUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user %s: %w", username, err)
	}
	user.Normalize()
	return &user, nil
}

// GetByUsernames retrieves every existing user among usernames.
func (r *MongoUserRepo) GetByUsernames(ctx context.Context, usernames []string) ([]models.User, error) {
	if len(usernames) == 0 {
		return []models.User{}, nil
	}
	ctx, cancel := withTimeout(ctx, 10*time.Second)
	defer cancel()

	return r.find(ctx, bson.M{"username": bson.M{"$in": usernames}}, options.Find())
}

// Search runs a case-insensitive substring match. The query is escaped, so it
// never acts as a regular expression.
func (r *MongoUserRepo) Search(ctx context.Context, query, exclude string, limit int64) ([]models.User, error) {
	ctx, cancel := withTimeout(ctx, 10*time.Second)
	defer cancel()

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{
		"$and": bson.A{
			bson.M{"username": bson.M{"$ne": exclude}},
			bson.M{"$or": bson.A{
				bson.M{"username": pattern},
				bson.M{"display_name": pattern},
			}},
		},
	}
	return r.find(ctx, filter, options.Find().SetLimit(limit))
}

func (r *MongoUserRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.User, error) {
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	for cursor.Next(ctx) {
		var u models.User
		if err := cursor.Decode(&u); err != nil {
			return nil, fmt.Errorf("failed to decode user: %w", err)
		}
		u.Normalize()
		users = append(users, u)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return users, nil
}

// Create inserts a new user document.
func (r *MongoUserRepo) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.Normalize()

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateUsername
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// UpdateProfile sets display name and/or timezone.
func (r *MongoUserRepo) UpdateProfile(ctx context.Context, username string, update models.UserProfileUpdate) error {
	set := bson.M{"updated_at": time.Now()}
	if update.DisplayName != nil {
		set["display_name"] = *update.DisplayName
	}
	if update.Timezone != nil {
		set["timezone"] = *update.Timezone
	}
	return r.updateOne(ctx, username, bson.M{"$set": set})
}

// SetTokenHash stores the active token hash; an empty hash clears it.
func (r *MongoUserRepo) SetTokenHash(ctx context.Context, username, tokenHash string) error {
	if tokenHash == "" {
		return r.updateOne(ctx, username, bson.M{"$unset": bson.M{"token_hash": ""}})
	}
	return r.updateOne(ctx, username, bson.M{"$set": bson.M{"token_hash": tokenHash}})
}

// AddToSet wraps $addToSet so repeated requests stay idempotent.
func (r *MongoUserRepo) AddToSet(ctx context.Context, username, field, value string) error {
	if err := checkSetField(field); err != nil {
		return err
	}
	return r.updateOne(ctx, username, bson.M{"$addToSet": bson.M{field: value}})
}

// Pull removes value from field.
func (r *MongoUserRepo) Pull(ctx context.Context, username, field, value string) error {
	if err := checkSetField(field); err != nil {
		return err
	}
	return r.updateOne(ctx, username, bson.M{"$pull": bson.M{field: value}})
}

func (r *MongoUserRepo) updateOne(ctx context.Context, username string, update bson.M) error {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"username": username}, update)
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", username, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user %s not found", username)
	}
	return nil
}

func checkSetField(field string) error {
	switch field {
	case FieldFriends, FieldFriendRequests, FieldMatchRequests:
		return nil
	}
	return fmt.Errorf("unknown set field %q", field)
}
