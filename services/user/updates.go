package user

import (
	"context"
	"fmt"
	"strings"

	"schedulematch/models"
	"schedulematch/services/overlap"
	"schedulematch/utils"

	"go.uber.org/zap"
)

func (s *DefaultUserService) GetUser(ctx context.Context, username string) (*models.User, error) {
	usr, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		utils.GetLogger().Error("GetUser: failed to fetch user", zap.String("username", username), zap.Error(err))
		return nil, fmt.Errorf("failed to load user")
	}
	if usr == nil {
		return nil, ErrUserNotFound
	}
	return usr, nil
}

// UpdateProfile applies the non-nil fields. A timezone is only stored once it
// resolves, so the overlap engine never sees an unknown identifier from here.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, username string, update models.UserProfileUpdate) (*models.User, error) {
	if update.DisplayName == nil && update.Timezone == nil {
		return s.GetUser(ctx, username)
	}
	if update.DisplayName != nil {
		name := strings.TrimSpace(*update.DisplayName)
		if name == "" {
			return nil, ErrInvalidDisplayName
		}
		update.DisplayName = &name
	}
	if update.Timezone != nil {
		tz := strings.TrimSpace(*update.Timezone)
		if tz == "" {
			tz = models.DefaultTimezone
		}
		if _, err := overlap.LoadLocation(tz); err != nil {
			return nil, err
		}
		update.Timezone = &tz
	}

	utils.GetLogger().Debug("UpdateProfile called", zap.String("username", username), zap.Any("update", update))
	if err := s.Repo.UpdateProfile(ctx, username, update); err != nil {
		utils.GetLogger().Error("UpdateProfile: failed", zap.String("username", username), zap.Error(err))
		return nil, fmt.Errorf("failed to update profile")
	}
	return s.GetUser(ctx, username)
}

// Search finds other users by username or display name and reports how each one
// relates to current.
func (s *DefaultUserService) Search(ctx context.Context, current *models.User, query string) ([]models.UserSearchResult, error) {
	query = strings.TrimSpace(query)
	results := []models.UserSearchResult{}
	if query == "" {
		return results, nil
	}

	users, err := s.Repo.Search(ctx, query, current.Username, SearchLimit)
	if err != nil {
		utils.GetLogger().Error("Search: failed", zap.String("query", query), zap.Error(err))
		return nil, fmt.Errorf("search failed, please try again")
	}
	for i := range users {
		target := &users[i]
		results = append(results, models.UserSearchResult{
			Username:         target.Username,
			DisplayName:      target.DisplayName,
			FriendshipStatus: friendshipStatus(current, target),
		})
	}
	return results, nil
}

func friendshipStatus(current, target *models.User) string {
	switch {
	case current.HasFriend(target.Username):
		return models.FriendshipFriends
	case current.HasFriendRequestFrom(target.Username):
		return models.FriendshipRequestReceived
	case target.HasFriendRequestFrom(current.Username):
		return models.FriendshipRequestSent
	default:
		return models.FriendshipNone
	}
}

func (s *DefaultUserService) FetchUserTimezone(ctx context.Context, username string) (string, error) {
	usr, err := s.GetUser(ctx, username)
	if err != nil {
		return "", err
	}
	if usr.Timezone == "" {
		return models.DefaultTimezone, nil
	}
	return usr.Timezone, nil
}
