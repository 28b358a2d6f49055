package user

import (
	"context"
	"time"

	userRepo "schedulematch/database/repository/user"
	"schedulematch/models"
	"schedulematch/utils"
)

type UserService interface {
	// Registration and authentication
	Register(ctx context.Context, req models.UserRegistration) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.Token, error)
	Logout(ctx context.Context, username string) error

	// Profile
	GetUser(ctx context.Context, username string) (*models.User, error)
	UpdateProfile(ctx context.Context, username string, update models.UserProfileUpdate) (*models.User, error)
	Search(ctx context.Context, current *models.User, query string) ([]models.UserSearchResult, error)

	// FetchUserTimezone returns the user's IANA timezone, "UTC" when unset.
	FetchUserTimezone(ctx context.Context, username string) (string, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
	// Tokens may be nil, in which case only the database holds token hashes.
	Tokens   utils.TokenCache
	TokenTTL time.Duration
}

// SearchLimit caps the number of users returned by Search.
const SearchLimit = 10
