package user

import (
	"context"
	"fmt"
	"time"

	"schedulematch/models"
	"schedulematch/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DefaultTokenTTL applies when TokenTTL is zero.
const DefaultTokenTTL = 3000 * time.Minute

// Authenticate checks the password and issues a bearer token. The token's hash
// replaces any previous one, so a new login signs out older sessions.
func (s *DefaultUserService) Authenticate(ctx context.Context, username, password string) (*models.Token, error) {
	userRec, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.String("username", username), zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(userRec.HashedPassword), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	token, err := utils.GenerateToken(userRec.Username, ttl)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.SetTokenHash(ctx, userRec.Username, tokenHash); err != nil {
		utils.GetLogger().Error("Authenticate: failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if s.Tokens != nil {
		if err := s.Tokens.Set(ctx, userRec.Username, tokenHash); err != nil {
			utils.GetLogger().Warn("Authenticate: failed to cache token hash", zap.Error(err))
		}
	}

	return &models.Token{AccessToken: token, TokenType: "bearer"}, nil
}

// Logout revokes the user's active token.
func (s *DefaultUserService) Logout(ctx context.Context, username string) error {
	if s.Tokens != nil {
		if err := s.Tokens.Delete(ctx, username); err != nil {
			utils.GetLogger().Warn("Logout: failed to clear token cache", zap.String("username", username), zap.Error(err))
		}
	}
	if err := s.Repo.SetTokenHash(ctx, username, ""); err != nil {
		utils.GetLogger().Error("Logout: failed to clear token hash", zap.String("username", username), zap.Error(err))
		return fmt.Errorf("logout failed, please try again")
	}
	return nil
}
