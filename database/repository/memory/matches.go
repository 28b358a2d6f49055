package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	matchRepo "schedulematch/database/repository/match"
	"schedulematch/models"
)

// MatchRepo implements matchRepo.MatchRepository on a Store.
type MatchRepo struct {
	store *Store
}

// NewMatchRepo returns a MatchRepository backed by s.
func NewMatchRepo(s *Store) matchRepo.MatchRepository {
	return &MatchRepo{store: s}
}

func key(a, b string) string {
	return strings.Join(models.MatchPair(a, b), "\x00")
}

func (r *MatchRepo) Get(_ context.Context, a, b string) (*models.ScheduleMatch, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	m, ok := r.store.matches[key(a, b)]
	if !ok {
		return nil, nil
	}
	m = cloneMatch(m)
	return &m, nil
}

func (r *MatchRepo) GetActive(ctx context.Context, a, b string) (*models.ScheduleMatch, error) {
	m, err := r.Get(ctx, a, b)
	if err != nil || m == nil || m.Status != models.MatchActive {
		return nil, err
	}
	return m, nil
}

func (r *MatchRepo) ListActive(_ context.Context, username string) ([]models.ScheduleMatch, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matches := []models.ScheduleMatch{}
	for _, m := range r.store.matches {
		if m.Status != models.MatchActive {
			continue
		}
		if m.Users[0] == username || m.Users[1] == username {
			matches = append(matches, cloneMatch(m))
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].MatchID < matches[j].MatchID })
	return matches, nil
}

func (r *MatchRepo) Create(_ context.Context, match *models.ScheduleMatch) error {
	if len(match.Users) != 2 {
		return fmt.Errorf("match must have exactly two users, got %d", len(match.Users))
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	k := key(match.Users[0], match.Users[1])
	if _, exists := r.store.matches[k]; exists {
		return matchRepo.ErrDuplicateMatch
	}
	match.Users = models.MatchPair(match.Users[0], match.Users[1])
	r.store.matches[k] = cloneMatch(*match)
	return nil
}

func (r *MatchRepo) Activate(_ context.Context, a, b, requestedBy string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	k := key(a, b)
	m, ok := r.store.matches[k]
	if !ok || m.RequestedBy != requestedBy {
		return false, nil
	}
	m.Status = models.MatchActive
	r.store.matches[k] = m
	return true, nil
}

func (r *MatchRepo) Delete(_ context.Context, a, b string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	k := key(a, b)
	if _, ok := r.store.matches[k]; !ok {
		return false, nil
	}
	delete(r.store.matches, k)
	return true, nil
}
