// Package friends manages the symmetric friendship relation and pending requests.
package friends

import (
	"context"
	"errors"
	"fmt"

	matchRepo "schedulematch/database/repository/match"
	userRepo "schedulematch/database/repository/user"
	"schedulematch/models"
	"schedulematch/utils"

	"go.uber.org/zap"
)

var (
	ErrSelfRequest     = errors.New("cannot send a friend request to yourself")
	ErrUserNotFound    = errors.New("user not found")
	ErrAlreadyFriends  = errors.New("already friends")
	ErrNoFriendRequest = errors.New("no friend request from this user")
	ErrNotFriends      = errors.New("not friends with this user")
)

type FriendService interface {
	SendRequest(ctx context.Context, current *models.User, to string) error
	Respond(ctx context.Context, current *models.User, from string, accept bool) error
	Remove(ctx context.Context, current *models.User, friend string) error
	List(ctx context.Context, current *models.User) ([]models.UserSummary, error)
	ListRequests(ctx context.Context, current *models.User) ([]models.UserSummary, error)
}

type DefaultFriendService struct {
	Users   userRepo.UserRepository
	Matches matchRepo.MatchRepository
}

func NewFriendService(users userRepo.UserRepository, matches matchRepo.MatchRepository) *DefaultFriendService {
	return &DefaultFriendService{Users: users, Matches: matches}
}

func (s *DefaultFriendService) SendRequest(ctx context.Context, current *models.User, to string) error {
	if to == current.Username {
		return ErrSelfRequest
	}
	target, err := s.Users.GetByUsername(ctx, to)
	if err != nil {
		return s.fail("SendRequest", current.Username, err)
	}
	if target == nil {
		return ErrUserNotFound
	}
	if current.HasFriend(to) {
		return ErrAlreadyFriends
	}
	if err := s.Users.AddToSet(ctx, to, userRepo.FieldFriendRequests, current.Username); err != nil {
		return s.fail("SendRequest", current.Username, err)
	}
	return nil
}

// Respond consumes a pending request from `from`. Accepting adds each user to the
// other's friend set.
func (s *DefaultFriendService) Respond(ctx context.Context, current *models.User, from string, accept bool) error {
	if !current.HasFriendRequestFrom(from) {
		return ErrNoFriendRequest
	}
	if err := s.Users.Pull(ctx, current.Username, userRepo.FieldFriendRequests, from); err != nil {
		return s.fail("Respond", current.Username, err)
	}
	if !accept {
		return nil
	}

	sender, err := s.Users.GetByUsername(ctx, from)
	if err != nil {
		return s.fail("Respond", current.Username, err)
	}
	if sender == nil {
		return ErrUserNotFound
	}
	if err := s.Users.AddToSet(ctx, current.Username, userRepo.FieldFriends, from); err != nil {
		return s.fail("Respond", current.Username, err)
	}
	if err := s.Users.AddToSet(ctx, from, userRepo.FieldFriends, current.Username); err != nil {
		return s.fail("Respond", current.Username, err)
	}
	// A crossed request from current to sender is now moot.
	if err := s.Users.Pull(ctx, from, userRepo.FieldFriendRequests, current.Username); err != nil {
		return s.fail("Respond", current.Username, err)
	}
	return nil
}

// Remove ends the friendship on both sides and discards any schedule match between
// the two users, pending or active.
func (s *DefaultFriendService) Remove(ctx context.Context, current *models.User, friend string) error {
	if !current.HasFriend(friend) {
		return ErrNotFriends
	}
	if err := s.Users.Pull(ctx, current.Username, userRepo.FieldFriends, friend); err != nil {
		return s.fail("Remove", current.Username, err)
	}
	if err := s.Users.Pull(ctx, friend, userRepo.FieldFriends, current.Username); err != nil {
		utils.GetLogger().Warn("Remove: friend record not updated", zap.String("friend", friend), zap.Error(err))
	}
	if _, err := s.Matches.Delete(ctx, current.Username, friend); err != nil {
		return s.fail("Remove", current.Username, err)
	}
	for _, pair := range [][2]string{{current.Username, friend}, {friend, current.Username}} {
		if err := s.Users.Pull(ctx, pair[0], userRepo.FieldMatchRequests, pair[1]); err != nil {
			utils.GetLogger().Warn("Remove: match request not cleared", zap.String("username", pair[0]), zap.Error(err))
		}
	}
	return nil
}

func (s *DefaultFriendService) List(ctx context.Context, current *models.User) ([]models.UserSummary, error) {
	return s.summaries(ctx, current.Friends)
}

func (s *DefaultFriendService) ListRequests(ctx context.Context, current *models.User) ([]models.UserSummary, error) {
	return s.summaries(ctx, current.FriendRequests)
}

func (s *DefaultFriendService) summaries(ctx context.Context, usernames []string) ([]models.UserSummary, error) {
	out := []models.UserSummary{}
	if len(usernames) == 0 {
		return out, nil
	}
	users, err := s.Users.GetByUsernames(ctx, usernames)
	if err != nil {
		utils.GetLogger().Error("Friend list lookup failed", zap.Error(err))
		return nil, fmt.Errorf("failed to load users")
	}
	byName := make(map[string]models.User, len(users))
	for _, u := range users {
		byName[u.Username] = u
	}
	// Keep the stored order and skip accounts that no longer exist.
	for _, name := range usernames {
		if u, ok := byName[name]; ok {
			out = append(out, models.UserSummary{Username: u.Username, DisplayName: u.DisplayName})
		}
	}
	return out, nil
}

func (s *DefaultFriendService) fail(op, username string, err error) error {
	utils.GetLogger().Error(op+": repository error", zap.String("username", username), zap.Error(err))
	return fmt.Errorf("%s failed, please try again", op)
}
