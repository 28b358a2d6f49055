package overlap

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"schedulematch/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func free(slots ...string) *models.DaySchedule {
	day := models.EmptyDaySchedule("")
	for i := 0; i+1 < len(slots); i += 2 {
		day.FreeTimes = append(day.FreeTimes, models.TimeSlot{Start: slots[i], End: slots[i+1]})
	}
	return &day
}

func slot(start, end string) models.TimeSlot {
	return models.TimeSlot{Start: start, End: end}
}

func TestCompute_SameTimezone(t *testing.T) {
	engine := DefaultOverlapEngine{}
	date := mustDate(t, "2024-06-03")

	res, err := engine.Compute(date,
		free("09:00", "12:00", "14:00", "15:00"), "UTC",
		free("11:00", "14:30"), "UTC",
		"UTC")
	require.NoError(t, err)

	assert.Equal(t, "2024-06-03", res.Date)
	assert.Equal(t, []models.TimeSlot{slot("11:00", "12:00"), slot("14:00", "14:30")}, res.Overlaps)
	assert.Equal(t, []models.TimeSlot{slot("09:00", "12:00"), slot("14:00", "15:00")}, res.UserASlots)
	assert.Equal(t, []models.TimeSlot{slot("11:00", "14:30")}, res.UserBSlots)
}

func TestCompute_AdjacentSlotsMerge(t *testing.T) {
	res, err := DefaultOverlapEngine{}.Compute(mustDate(t, "2024-06-03"),
		free("09:00", "10:00", "10:00", "11:00"), "UTC",
		free("09:00", "11:00"), "UTC",
		"UTC")
	require.NoError(t, err)

	assert.Equal(t, []models.TimeSlot{slot("09:00", "11:00")}, res.UserASlots)
	assert.Equal(t, []models.TimeSlot{slot("09:00", "11:00")}, res.Overlaps)
}

func TestCompute_TouchingSlotsAreNotAnOverlap(t *testing.T) {
	res, err := DefaultOverlapEngine{}.Compute(mustDate(t, "2024-06-03"),
		free("09:00", "10:00"), "UTC",
		free("10:00", "11:00"), "UTC",
		"UTC")
	require.NoError(t, err)

	assert.Empty(t, res.Overlaps)
	assert.Len(t, res.UserASlots, 1)
	assert.Len(t, res.UserBSlots, 1)
}

func TestCompute_OverlappingOverlapsCollapse(t *testing.T) {
	// A's two slots are merged first, so B's single slot yields one block.
	res, err := DefaultOverlapEngine{}.Compute(mustDate(t, "2024-06-03"),
		free("09:00", "11:00", "10:00", "12:00"), "UTC",
		free("08:00", "13:00"), "UTC",
		"UTC")
	require.NoError(t, err)
	assert.Equal(t, []models.TimeSlot{slot("09:00", "12:00")}, res.Overlaps)
}

func TestCompute_CrossTimezone(t *testing.T) {
	// 18:00-21:00 in Tokyo is 09:00-12:00 UTC.
	res, err := DefaultOverlapEngine{}.Compute(mustDate(t, "2024-01-15"),
		free("18:00", "21:00"), "Asia/Tokyo",
		free("11:30", "13:00"), "UTC",
		"Asia/Tokyo")
	require.NoError(t, err)

	assert.Equal(t, []models.TimeSlot{slot("20:30", "21:00")}, res.Overlaps)
	assert.Equal(t, []models.TimeSlot{slot("18:00", "21:00")}, res.UserASlots)
	assert.Equal(t, []models.TimeSlot{slot("20:30", "22:00")}, res.UserBSlots)
}

func TestCompute_CrossTimezoneAcrossUTCDate(t *testing.T) {
	// Tokyo 06:00-09:00 on the 15th is 21:00-24:00 UTC on the 14th, and so is
	// Kiritimati (UTC+14) 11:00-14:00 on the 15th.
	res, err := DefaultOverlapEngine{}.Compute(mustDate(t, "2024-01-15"),
		free("06:00", "09:00"), "Asia/Tokyo",
		free("11:30", "13:00"), "Pacific/Kiritimati",
		"Asia/Tokyo")
	require.NoError(t, err)

	assert.Equal(t, []models.TimeSlot{slot("06:30", "08:00")}, res.Overlaps)
}

func TestCompute_SameDateDifferentUTCDays(t *testing.T) {
	// Composed on the same calendar date, Tokyo morning and UTC evening are a day apart.
	res, err := DefaultOverlapEngine{}.Compute(mustDate(t, "2024-01-15"),
		free("06:00", "09:00"), "Asia/Tokyo",
		free("21:30", "23:00"), "UTC",
		"UTC")
	require.NoError(t, err)

	assert.Empty(t, res.Overlaps)
	assert.Equal(t, []models.TimeSlot{slot("21:00", "00:00")}, res.UserASlots)
}

func TestCompute_UnavailableDay(t *testing.T) {
	unavailable := free("09:00", "17:00")
	unavailable.IsAvailable = false

	res, err := DefaultOverlapEngine{}.Compute(mustDate(t, "2024-06-03"),
		unavailable, "UTC",
		free("09:00", "17:00"), "UTC",
		"UTC")
	require.NoError(t, err)

	assert.Empty(t, res.Overlaps)
	assert.Empty(t, res.UserASlots)
	assert.Equal(t, []models.TimeSlot{slot("09:00", "17:00")}, res.UserBSlots)
}

func TestCompute_MissingSchedule(t *testing.T) {
	res, err := DefaultOverlapEngine{}.Compute(mustDate(t, "2024-06-03"),
		nil, "UTC",
		free("09:00", "17:00"), "UTC",
		"UTC")
	require.NoError(t, err)

	assert.NotNil(t, res.Overlaps)
	assert.Empty(t, res.Overlaps)
	assert.Empty(t, res.UserASlots)
}

func TestCompute_MalformedSlotTolerated(t *testing.T) {
	res, err := DefaultOverlapEngine{}.Compute(mustDate(t, "2024-06-03"),
		free("09:00", "10:00", "25:99", "26:00"), "UTC",
		free("08:00", "12:00"), "UTC",
		"UTC")
	require.NoError(t, err)

	assert.Equal(t, []models.TimeSlot{slot("09:00", "10:00")}, res.Overlaps)
	assert.Equal(t, []models.TimeSlot{slot("09:00", "10:00")}, res.UserASlots)
}

func TestCompute_InvalidTimezone(t *testing.T) {
	date := mustDate(t, "2024-06-03")
	engine := DefaultOverlapEngine{}

	cases := [][3]string{
		{"Not/AZone", "UTC", "UTC"},
		{"UTC", "Not/AZone", "UTC"},
		{"UTC", "UTC", "Not/AZone"},
	}
	for _, tz := range cases {
		res, err := engine.Compute(date, free("09:00", "10:00"), tz[0], free("09:00", "10:00"), tz[1], tz[2])
		assert.Nil(t, res)
		assert.True(t, errors.Is(err, ErrInvalidTimezone), "%v", tz)
	}
}

func TestCompute_InvalidTimezoneWithoutSchedules(t *testing.T) {
	res, err := DefaultOverlapEngine{}.Compute(mustDate(t, "2024-06-03"), nil, "Not/AZone", nil, "UTC", "UTC")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}

func TestRender_RoundTrip(t *testing.T) {
	date := mustDate(t, "2024-01-15")
	source := mustLoc(t, "America/New_York")
	display := mustLoc(t, "Asia/Kolkata")

	original := []models.TimeSlot{slot("08:15", "09:45")}
	intervals := ToIntervals(date, original, source)
	require.Len(t, intervals, 1)

	shown := Render(intervals, display)
	assert.Equal(t, []models.TimeSlot{slot("18:45", "20:15")}, shown)

	back := ToIntervals(date, shown, display)
	require.Len(t, back, 1)
	assert.Equal(t, original, Render(back, source))
}

func TestCompute_Concurrent(t *testing.T) {
	engine := DefaultOverlapEngine{}
	date := mustDate(t, "2024-06-03")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			start := fmt.Sprintf("%02d:00", i%12)
			res, err := engine.Compute(date, free(start, "23:00"), "Europe/Berlin", free("00:00", "23:59"), "Europe/Berlin", "UTC")
			assert.NoError(t, err)
			assert.Len(t, res.Overlaps, 1)
		}(i)
	}
	wg.Wait()
}
