package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		minutes int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"9:30am", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.minutes, got, tt.input)
	}
}

func TestFormatClockWraparound(t *testing.T) {
	assert.Equal(t, "22:00", FormatClock(22*60))
	assert.Equal(t, "00:00", FormatClock(24*60))
	assert.Equal(t, "01:30", FormatClock(25*60+30))
	assert.Equal(t, "23:00", FormatClock(-60))
}

func TestExpandCalendarGrid(t *testing.T) {
	tests := []struct {
		month     string
		gridStart string
		gridEnd   string
	}{
		// March 2025 starts on a Saturday and ends on a Monday.
		{"2025-03", "2025-02-24", "2025-04-06"},
		// September 2025 starts on a Monday.
		{"2025-09", "2025-09-01", "2025-10-05"},
		// February 2026 ends on a Saturday.
		{"2026-02", "2026-01-26", "2026-03-01"},
	}

	for _, tt := range tests {
		start, end, err := ExpandCalendarGrid(tt.month)
		require.NoError(t, err, tt.month)
		assert.Equal(t, tt.gridStart, FormatDate(start), tt.month)
		assert.Equal(t, tt.gridEnd, FormatDate(end), tt.month)
		assert.Equal(t, time.Monday, start.Weekday(), tt.month)
		assert.Equal(t, time.Sunday, end.Weekday(), tt.month)
	}
}

func TestExpandCalendarGridInvalidMonth(t *testing.T) {
	_, _, err := ExpandCalendarGrid("2025-3")
	assert.Error(t, err)

	_, _, err = ExpandCalendarGrid("march")
	assert.Error(t, err)
}

func TestToLocationTime(t *testing.T) {
	// Ho Chi Minh (UTC+7, no DST) to Rome (UTC+1 in winter, UTC+2 in summer).
	date, clock, err := ToLocationTime("2025-01-15", "18:00", "Asia/Ho_Chi_Minh", "Europe/Rome")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-15", date)
	assert.Equal(t, "12:00", clock)

	// Same wall clock in July lands an hour later in Rome because of DST.
	date, clock, err = ToLocationTime("2025-07-15", "18:00", "Asia/Ho_Chi_Minh", "Europe/Rome")
	require.NoError(t, err)
	assert.Equal(t, "2025-07-15", date)
	assert.Equal(t, "13:00", clock)
}

func TestToLocationTimeCrossesDateBoundary(t *testing.T) {
	date, clock, err := ToLocationTime("2025-01-15", "03:00", "Asia/Tokyo", "America/New_York")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-14", date)
	assert.Equal(t, "13:00", clock)
}

func TestToLocationTimeInvalidZone(t *testing.T) {
	_, _, err := ToLocationTime("2025-01-15", "03:00", "Mars/Olympus", "UTC")
	assert.Error(t, err)
}

func TestHasPassedAt(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	passed, err := HasPassedAt("2025-06-10", "11:00", "UTC", now)
	require.NoError(t, err)
	assert.True(t, passed)

	passed, err = HasPassedAt("2025-06-10", "13:00", "UTC", now)
	require.NoError(t, err)
	assert.False(t, passed)

	// 13:00 in Rome (UTC+2 in June) is 11:00 UTC, already gone.
	passed, err = HasPassedAt("2025-06-10", "13:00", "Europe/Rome", now)
	require.NoError(t, err)
	assert.True(t, passed)
}

func TestWeekdayKey(t *testing.T) {
	// 2025-06-09 is a Monday.
	day := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	keys := []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}
	for i, want := range keys {
		assert.Equal(t, want, WeekdayKey(day.AddDate(0, 0, i)))
	}
}

func TestDatesOverlap(t *testing.T) {
	// Shared boundary is a turnover day, not a conflict.
	assert.False(t, DatesOverlap("2025-03-10", "2025-03-15", "2025-03-15", "2025-03-18"))
	assert.True(t, DatesOverlap("2025-03-10", "2025-03-15", "2025-03-14", "2025-03-16"))
	assert.False(t, DatesOverlap("2025-03-10", "2025-03-15", "2025-03-20", "2025-03-22"))
	assert.True(t, DatesOverlap("2025-03-10", "2025-03-15", "2025-03-01", "2025-03-31"))
}
