package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	userRepo "schedulematch/database/repository/user"
	"schedulematch/models"
	"schedulematch/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register validates the request, hashes the password and stores a new user with
// the default timezone and empty relationship sets.
func (s *DefaultUserService) Register(ctx context.Context, req models.UserRegistration) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	displayName := strings.TrimSpace(req.DisplayName)
	if username == "" || displayName == "" || req.Password == "" {
		return nil, ErrMissingFields
	}
	if !usernamePattern.MatchString(username) {
		return nil, ErrInvalidUsername
	}
	if err := VerifyPasswordComplexity(req.Password); err != nil {
		return nil, PasswordError{Err: err}
	}

	existing, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.String("username", username), zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	userObj := models.User{
		ID:             uuid.New().String(),
		Username:       username,
		DisplayName:    displayName,
		HashedPassword: string(hashedPassword),
		Timezone:       models.DefaultTimezone,
	}
	userObj.Normalize()

	if err := s.Repo.Create(ctx, &userObj); err != nil {
		if errors.Is(err, userRepo.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		utils.GetLogger().Error("Register: failed to create user", zap.String("username", username), zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	utils.GetLogger().Info("User registered", zap.String("username", username))
	return &userObj, nil
}
