package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	userRepo "schedulematch/database/repository/user"
	"schedulematch/models"
)

// UserRepo implements userRepo.UserRepository on a Store.
type UserRepo struct {
	store *Store
}

// NewUserRepo returns a UserRepository backed by s.
func NewUserRepo(s *Store) userRepo.UserRepository {
	return &UserRepo{store: s}
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.users[username]
	if !ok {
		return nil, nil
	}
	u = cloneUser(u)
	u.Normalize()
	return &u, nil
}

func (r *UserRepo) GetByUsernames(_ context.Context, usernames []string) ([]models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	users := []models.User{}
	for _, name := range usernames {
		if u, ok := r.store.users[name]; ok {
			u = cloneUser(u)
			u.Normalize()
			users = append(users, u)
		}
	}
	return users, nil
}

func (r *UserRepo) Search(_ context.Context, query, exclude string, limit int64) ([]models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	q := strings.ToLower(query)
	names := make([]string, 0, len(r.store.users))
	for name := range r.store.users {
		names = append(names, name)
	}
	sort.Strings(names)

	users := []models.User{}
	for _, name := range names {
		if int64(len(users)) >= limit {
			break
		}
		u := r.store.users[name]
		if u.Username == exclude {
			continue
		}
		if strings.Contains(strings.ToLower(u.Username), q) || strings.Contains(strings.ToLower(u.DisplayName), q) {
			u = cloneUser(u)
			u.Normalize()
			users = append(users, u)
		}
	}
	return users, nil
}

func (r *UserRepo) Create(_ context.Context, user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.users[user.Username]; exists {
		return userRepo.ErrDuplicateUsername
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.Normalize()
	r.store.users[user.Username] = cloneUser(*user)
	return nil
}

func (r *UserRepo) UpdateProfile(_ context.Context, username string, update models.UserProfileUpdate) error {
	return r.mutate(username, func(u *models.User) error {
		if update.DisplayName != nil {
			u.DisplayName = *update.DisplayName
		}
		if update.Timezone != nil {
			u.Timezone = *update.Timezone
		}
		return nil
	})
}

func (r *UserRepo) SetTokenHash(_ context.Context, username, tokenHash string) error {
	return r.mutate(username, func(u *models.User) error {
		u.TokenHash = tokenHash
		return nil
	})
}

func (r *UserRepo) AddToSet(_ context.Context, username, field, value string) error {
	return r.mutate(username, func(u *models.User) error {
		set, err := setField(u, field)
		if err != nil {
			return err
		}
		for _, v := range *set {
			if v == value {
				return nil
			}
		}
		*set = append(*set, value)
		return nil
	})
}

func (r *UserRepo) Pull(_ context.Context, username, field, value string) error {
	return r.mutate(username, func(u *models.User) error {
		set, err := setField(u, field)
		if err != nil {
			return err
		}
		kept := (*set)[:0]
		for _, v := range *set {
			if v != value {
				kept = append(kept, v)
			}
		}
		*set = kept
		return nil
	})
}

func (r *UserRepo) mutate(username string, fn func(*models.User) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	u, ok := r.store.users[username]
	if !ok {
		return fmt.Errorf("user %s not found", username)
	}
	u = cloneUser(u)
	if err := fn(&u); err != nil {
		return err
	}
	u.UpdatedAt = time.Now()
	r.store.users[username] = u
	return nil
}

func setField(u *models.User, field string) (*[]string, error) {
	switch field {
	case userRepo.FieldFriends:
		return &u.Friends, nil
	case userRepo.FieldFriendRequests:
		return &u.FriendRequests, nil
	case userRepo.FieldMatchRequests:
		return &u.MatchRequests, nil
	}
	return nil, fmt.Errorf("unknown set field %q", field)
}
