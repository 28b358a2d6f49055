package overlap

import (
	"errors"
	"testing"
	"time"

	"schedulematch/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) models.CalendarDate {
	t.Helper()
	d, err := models.ParseCalendarDate(s)
	require.NoError(t, err)
	return d
}

func mustLoc(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in     string
		hour   int
		minute int
		ok     bool
	}{
		{in: "00:00", hour: 0, minute: 0, ok: true},
		{in: "09:30", hour: 9, minute: 30, ok: true},
		{in: "23:59", hour: 23, minute: 59, ok: true},
		{in: "24:00"},
		{in: "25:99"},
		{in: "12:60"},
		{in: "9:00"},
		{in: "09:00:00"},
		{in: "ab:cd"},
		{in: "09-00"},
		{in: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			h, m, ok := parseClock(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.hour, h)
				assert.Equal(t, tt.minute, m)
			}
		})
	}
}

func TestLoadLocation(t *testing.T) {
	loc, err := LoadLocation("")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	loc, err = LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", loc.String())

	for _, name := range []string{"Not/AZone", "Local", "../etc/passwd"} {
		_, err := LoadLocation(name)
		assert.True(t, errors.Is(err, ErrInvalidTimezone), name)
	}
}

func TestToIntervals_SkipsMalformedSlots(t *testing.T) {
	date := mustDate(t, "2024-06-03")
	slots := []models.TimeSlot{
		{Start: "25:99", End: "10:00"},
		{Start: "09:00", End: "10:00"},
		{Start: "11:00", End: "noon"},
	}

	got := ToIntervals(date, slots, time.UTC)
	require.Len(t, got, 1)
	assert.True(t, got[0].Start.Equal(time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)))
	assert.True(t, got[0].End.Equal(time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)))
}

func TestToIntervals_KeepsInputOrderAndReversedSlots(t *testing.T) {
	date := mustDate(t, "2024-06-03")
	slots := []models.TimeSlot{
		{Start: "15:00", End: "16:00"},
		{Start: "12:00", End: "11:00"},
		{Start: "08:00", End: "09:00"},
	}

	got := ToIntervals(date, slots, time.UTC)
	require.Len(t, got, 3)
	assert.Equal(t, 15, got[0].Start.Hour())
	assert.Equal(t, 12, got[1].Start.Hour())
	assert.Equal(t, 8, got[2].Start.Hour())
}

func TestToIntervals_UsesOffsetOfTheDate(t *testing.T) {
	ny := mustLoc(t, "America/New_York")
	slot := []models.TimeSlot{{Start: "09:00", End: "10:00"}}

	winter := ToIntervals(mustDate(t, "2024-01-15"), slot, ny)
	summer := ToIntervals(mustDate(t, "2024-07-15"), slot, ny)

	require.Len(t, winter, 1)
	require.Len(t, summer, 1)
	assert.Equal(t, 14, winter[0].Start.UTC().Hour())
	assert.Equal(t, 13, summer[0].Start.UTC().Hour())
}

func TestToIntervals_DropsNonexistentLocalTime(t *testing.T) {
	ny := mustLoc(t, "America/New_York")
	date := mustDate(t, "2024-03-10") // clocks jump 02:00 -> 03:00
	slots := []models.TimeSlot{
		{Start: "02:30", End: "04:00"},
		{Start: "01:00", End: "03:00"},
	}

	got := ToIntervals(date, slots, ny)
	require.Len(t, got, 1)
	assert.Equal(t, time.Hour, got[0].End.Sub(got[0].Start))
}

func TestToIntervals_DropsAmbiguousLocalTime(t *testing.T) {
	ny := mustLoc(t, "America/New_York")
	date := mustDate(t, "2024-11-03") // 01:00-02:00 happens twice
	slots := []models.TimeSlot{
		{Start: "01:30", End: "03:00"},
		{Start: "00:00", End: "03:00"},
	}

	got := ToIntervals(date, slots, ny)
	require.Len(t, got, 1)
	assert.Equal(t, 4*time.Hour, got[0].End.Sub(got[0].Start))
}
