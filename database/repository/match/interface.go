package matchRepo

import (
	"context"
	"errors"

	"schedulematch/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateMatch is returned by Create when the pair already has a match.
var ErrDuplicateMatch = errors.New("match already exists")

// MatchRepository persists schedule matches keyed by their sorted user pair.
type MatchRepository interface {
	// Get returns the pair's match in any status, or nil.
	Get(ctx context.Context, a, b string) (*models.ScheduleMatch, error)
	// GetActive returns the pair's match only when it is active, or nil.
	GetActive(ctx context.Context, a, b string) (*models.ScheduleMatch, error)
	// ListActive returns every active match username takes part in.
	ListActive(ctx context.Context, username string) ([]models.ScheduleMatch, error)
	Create(ctx context.Context, match *models.ScheduleMatch) error
	// Activate flips the pair's pending match to active if requestedBy sent it.
	Activate(ctx context.Context, a, b, requestedBy string) (bool, error)
	// Delete removes the pair's match and reports whether one existed.
	Delete(ctx context.Context, a, b string) (bool, error)
}

type mongoMatchRepo struct {
	coll *mongo.Collection
}

// NewMongoMatchRepo constructs a new MongoDB MatchRepository.
func NewMongoMatchRepo(db *mongo.Database) MatchRepository {
	repo := &mongoMatchRepo{coll: db.Collection("matches")}
	repo.ensureIndexes()
	return repo
}
