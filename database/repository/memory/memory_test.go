package memory

import (
	"context"
	"testing"

	matchRepo "schedulematch/database/repository/match"
	userRepo "schedulematch/database/repository/user"
	"schedulematch/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo(NewStore())

	u, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, u)

	require.NoError(t, repo.Create(ctx, &models.User{Username: "alice", DisplayName: "Alice"}))
	assert.ErrorIs(t, repo.Create(ctx, &models.User{Username: "alice"}), userRepo.ErrDuplicateUsername)

	require.NoError(t, repo.AddToSet(ctx, "alice", userRepo.FieldFriends, "bob"))
	require.NoError(t, repo.AddToSet(ctx, "alice", userRepo.FieldFriends, "bob"))
	u, err = repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, u.Friends)
	assert.Equal(t, models.DefaultTimezone, u.Timezone)

	// Callers get copies.
	u.Friends[0] = "mallory"
	u, err = repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, u.Friends)

	require.NoError(t, repo.Pull(ctx, "alice", userRepo.FieldFriends, "bob"))
	u, err = repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, u.Friends)

	assert.Error(t, repo.AddToSet(ctx, "alice", "enemies", "bob"))
	assert.Error(t, repo.SetTokenHash(ctx, "ghost", "x"))
}

func TestUserRepo_Search(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo(NewStore())
	for _, u := range []models.User{
		{Username: "alice", DisplayName: "Alice"},
		{Username: "bob", DisplayName: "Bob Alison"},
		{Username: "carol", DisplayName: "Carol"},
		{Username: "a.b", DisplayName: "Dotty"},
	} {
		u := u
		require.NoError(t, repo.Create(ctx, &u))
	}

	found, err := repo.Search(ctx, "ALI", "alice", 10)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "bob", found[0].Username)

	// Queries are literal text, not patterns.
	found, err = repo.Search(ctx, ".", "", 10)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "a.b", found[0].Username)

	found, err = repo.Search(ctx, "o", "", 2)
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestScheduleRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewScheduleRepo(NewStore())

	day := models.EmptyDaySchedule("2024-06-03")
	day.FreeTimes = append(day.FreeTimes, models.TimeSlot{Start: "09:00", End: "10:00"})
	require.NoError(t, repo.Upsert(ctx, "alice", day))

	got, err := repo.Get(ctx, "alice", "2024-06-03")
	require.NoError(t, err)
	assert.Equal(t, day, *got)

	got, err = repo.Get(ctx, "bob", "2024-06-03")
	require.NoError(t, err)
	assert.Nil(t, got)

	deleted, err := repo.Delete(ctx, "alice", "2024-06-03")
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = repo.Delete(ctx, "alice", "2024-06-03")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestMatchRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewMatchRepo(NewStore())

	m := &models.ScheduleMatch{MatchID: "m1", Users: []string{"bob", "alice"}, Status: models.MatchPending, RequestedBy: "bob"}
	require.NoError(t, repo.Create(ctx, m))
	assert.Equal(t, []string{"alice", "bob"}, m.Users)

	dup := &models.ScheduleMatch{MatchID: "m2", Users: []string{"alice", "bob"}, Status: models.MatchPending, RequestedBy: "alice"}
	assert.ErrorIs(t, repo.Create(ctx, dup), matchRepo.ErrDuplicateMatch)

	active, err := repo.GetActive(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Nil(t, active)

	ok, err := repo.Activate(ctx, "alice", "bob", "alice")
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = repo.Activate(ctx, "alice", "bob", "bob")
	require.NoError(t, err)
	assert.True(t, ok)

	active, err = repo.GetActive(ctx, "bob", "alice")
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, "m1", active.MatchID)

	list, err := repo.ListActive(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, list, 1)
	list, err = repo.ListActive(ctx, "carol")
	require.NoError(t, err)
	assert.Empty(t, list)

	deleted, err := repo.Delete(ctx, "bob", "alice")
	require.NoError(t, err)
	assert.True(t, deleted)
}
