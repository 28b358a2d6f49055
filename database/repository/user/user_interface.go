package userRepo

import (
	"context"
	"errors"

	"schedulematch/models"
)

// ErrDuplicateUsername is returned by Create when the username is taken.
var ErrDuplicateUsername = errors.New("username already registered")

// Set-valued fields on a user document.
const (
	FieldFriends        = "friends"
	FieldFriendRequests = "friend_requests"
	FieldMatchRequests  = "match_requests"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByUsername returns the user, or nil when no such user exists.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// GetByUsernames returns the users that exist among usernames.
	GetByUsernames(ctx context.Context, usernames []string) ([]models.User, error)
	// Search matches query case-insensitively against username and display name.
	Search(ctx context.Context, query, exclude string, limit int64) ([]models.User, error)
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
	// UpdateProfile sets the non-nil fields of update.
	UpdateProfile(ctx context.Context, username string, update models.UserProfileUpdate) error
	// SetTokenHash stores the hash of the user's active access token.
	SetTokenHash(ctx context.Context, username, tokenHash string) error
	// AddToSet adds value to one of the set-valued fields.
	AddToSet(ctx context.Context, username, field, value string) error
	// Pull removes value from one of the set-valued fields.
	Pull(ctx context.Context, username, field, value string) error
}
