package match

import (
	"context"
	"errors"
	"fmt"
	"time"

	matchRepo "schedulematch/database/repository/match"
	userRepo "schedulematch/database/repository/user"
	"schedulematch/models"
	"schedulematch/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Request opens a pending match with a friend and notifies them through their
// match_requests set.
func (s *DefaultMatchService) Request(ctx context.Context, current *models.User, friend string) (*models.ScheduleMatch, error) {
	if !current.HasFriend(friend) {
		return nil, ErrNotFriends
	}
	existing, err := s.Matches.Get(ctx, current.Username, friend)
	if err != nil {
		return nil, s.fail("Request", current.Username, err)
	}
	if existing != nil {
		return nil, ErrMatchExists
	}

	m := &models.ScheduleMatch{
		MatchID:     uuid.New().String(),
		Users:       models.MatchPair(current.Username, friend),
		Status:      models.MatchPending,
		RequestedBy: current.Username,
		CreatedAt:   time.Now(),
	}
	if err := s.Matches.Create(ctx, m); err != nil {
		if errors.Is(err, matchRepo.ErrDuplicateMatch) {
			return nil, ErrMatchExists
		}
		return nil, s.fail("Request", current.Username, err)
	}
	if err := s.Users.AddToSet(ctx, friend, userRepo.FieldMatchRequests, current.Username); err != nil {
		return nil, s.fail("Request", current.Username, err)
	}
	utils.GetLogger().Info("Schedule match requested",
		zap.String("from", current.Username), zap.String("to", friend), zap.String("match_id", m.MatchID))
	return m, nil
}

// Respond settles a pending match that `from` sent to current. Only that pending
// match is touched, so a decline never removes an active one.
func (s *DefaultMatchService) Respond(ctx context.Context, current *models.User, from string, accept bool) error {
	m, err := s.Matches.Get(ctx, current.Username, from)
	if err != nil {
		return s.fail("Respond", current.Username, err)
	}
	if m == nil || m.Status != models.MatchPending || m.RequestedBy != from {
		return ErrMatchNotFound
	}
	if err := s.Users.Pull(ctx, current.Username, userRepo.FieldMatchRequests, from); err != nil {
		return s.fail("Respond", current.Username, err)
	}

	if accept {
		ok, err := s.Matches.Activate(ctx, current.Username, from, from)
		if err != nil {
			return s.fail("Respond", current.Username, err)
		}
		if !ok {
			return ErrMatchNotFound
		}
		return nil
	}
	if _, err := s.Matches.Delete(ctx, current.Username, from); err != nil {
		return s.fail("Respond", current.Username, err)
	}
	return nil
}

func (s *DefaultMatchService) ListActive(ctx context.Context, current *models.User) ([]models.ScheduleMatch, error) {
	matches, err := s.Matches.ListActive(ctx, current.Username)
	if err != nil {
		return nil, s.fail("ListActive", current.Username, err)
	}
	return matches, nil
}

func (s *DefaultMatchService) ListRequests(ctx context.Context, current *models.User) ([]models.UserSummary, error) {
	out := []models.UserSummary{}
	if len(current.MatchRequests) == 0 {
		return out, nil
	}
	users, err := s.Users.GetByUsernames(ctx, current.MatchRequests)
	if err != nil {
		return nil, s.fail("ListRequests", current.Username, err)
	}
	for _, u := range users {
		out = append(out, models.UserSummary{Username: u.Username, DisplayName: u.DisplayName})
	}
	return out, nil
}

// Delete removes the pair's match in any status.
func (s *DefaultMatchService) Delete(ctx context.Context, current *models.User, friend string) error {
	deleted, err := s.Matches.Delete(ctx, current.Username, friend)
	if err != nil {
		return s.fail("Delete", current.Username, err)
	}
	if !deleted {
		return ErrMatchNotFound
	}
	for _, pair := range [][2]string{{current.Username, friend}, {friend, current.Username}} {
		if err := s.Users.Pull(ctx, pair[0], userRepo.FieldMatchRequests, pair[1]); err != nil {
			utils.GetLogger().Warn("Delete: match request not cleared", zap.String("username", pair[0]), zap.Error(err))
		}
	}
	return nil
}

func (s *DefaultMatchService) fail(op, username string, err error) error {
	utils.GetLogger().Error(op+": repository error", zap.String("username", username), zap.Error(err))
	return fmt.Errorf("%s failed, please try again", op)
}
