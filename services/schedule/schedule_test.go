package schedule

import (
	"context"
	"testing"

	"schedulematch/database/repository/memory"
	"schedulematch/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *DefaultScheduleService {
	return NewScheduleService(memory.NewScheduleRepo(memory.NewStore()))
}

func TestUpsertAndGet(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	got, err := svc.Get(ctx, "alice", "2024-06-03")
	require.NoError(t, err)
	assert.Equal(t, models.EmptyDaySchedule("2024-06-03"), *got)

	unavailable := false
	saved, err := svc.Upsert(ctx, "alice", models.ScheduleUpdateRequest{
		Date:        "2024-06-03",
		FreeTimes:   []models.TimeSlot{{Start: "09:00", End: "12:00"}},
		IsAvailable: &unavailable,
	})
	require.NoError(t, err)
	assert.False(t, saved.IsAvailable)
	assert.Equal(t, []models.TimeSlot{}, saved.BusyTimes)

	got, err = svc.Get(ctx, "alice", "2024-06-03")
	require.NoError(t, err)
	assert.Equal(t, *saved, *got)

	// Replaces rather than merges.
	_, err = svc.Upsert(ctx, "alice", models.ScheduleUpdateRequest{Date: "2024-06-03"})
	require.NoError(t, err)
	got, err = svc.Get(ctx, "alice", "2024-06-03")
	require.NoError(t, err)
	assert.True(t, got.IsAvailable)
	assert.Empty(t, got.FreeTimes)
}

func TestInvalidDates(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Upsert(ctx, "alice", models.ScheduleUpdateRequest{Date: "2024-02-30"})
	assert.ErrorIs(t, err, ErrInvalidDate)
	_, err = svc.Get(ctx, "alice", "06/03/2024")
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.ErrorIs(t, svc.Delete(ctx, "alice", "nope"), ErrInvalidDate)
	_, err = svc.Range(ctx, "alice", "2024-06-05", "2024-06-01")
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestRange(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	for _, d := range []string{"2024-06-05", "2024-06-01", "2024-06-03", "2024-07-01"} {
		_, err := svc.Upsert(ctx, "alice", models.ScheduleUpdateRequest{Date: d})
		require.NoError(t, err)
	}
	_, err := svc.Upsert(ctx, "bob", models.ScheduleUpdateRequest{Date: "2024-06-02"})
	require.NoError(t, err)

	days, err := svc.Range(ctx, "alice", "2024-06-01", "2024-06-05")
	require.NoError(t, err)
	var dates []string
	for _, d := range days {
		dates = append(dates, d.Date)
	}
	assert.Equal(t, []string{"2024-06-01", "2024-06-03", "2024-06-05"}, dates)
}

func TestDeleteAndFetch(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	date, err := models.ParseCalendarDate("2024-06-03")
	require.NoError(t, err)

	day, err := svc.FetchDaySchedule(ctx, "alice", date)
	require.NoError(t, err)
	assert.Nil(t, day)

	_, err = svc.Upsert(ctx, "alice", models.ScheduleUpdateRequest{Date: "2024-06-03"})
	require.NoError(t, err)
	day, err = svc.FetchDaySchedule(ctx, "alice", date)
	require.NoError(t, err)
	require.NotNil(t, day)

	require.NoError(t, svc.Delete(ctx, "alice", "2024-06-03"))
	assert.ErrorIs(t, svc.Delete(ctx, "alice", "2024-06-03"), ErrScheduleNotFound)
}
