package reservations

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staybook/internal/blocks"
	"staybook/pkg/timeutil"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := timeutil.ParseDate(value)
	require.NoError(t, err)
	return date
}

func strptr(s string) *string { return &s }

func TestEncodeWindowWholeDayStay(t *testing.T) {
	startAt, endAt, err := encodeWindow(mustDate(t, "2025-06-10"), mustDate(t, "2025-06-13"), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), startAt)
	assert.Equal(t, time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC), endAt)
}

func TestEncodeWindowTimedSeating(t *testing.T) {
	date := mustDate(t, "2025-06-10")

	startAt, endAt, err := encodeWindow(date, date, strptr("19:00"), strptr("21:30"))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 10, 19, 0, 0, 0, time.UTC), startAt)
	assert.Equal(t, time.Date(2025, 6, 10, 21, 30, 0, 0, time.UTC), endAt)
}

func TestEncodeWindowOvernightSeating(t *testing.T) {
	date := mustDate(t, "2025-06-10")

	// A seating ending past midnight rolls into the next day.
	startAt, endAt, err := encodeWindow(date, date, strptr("22:00"), strptr("01:00"))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 10, 22, 0, 0, 0, time.UTC), startAt)
	assert.Equal(t, time.Date(2025, 6, 11, 1, 0, 0, 0, time.UTC), endAt)
	assert.True(t, endAt.After(startAt))
}

func TestEncodeWindowRejectsBadClock(t *testing.T) {
	date := mustDate(t, "2025-06-10")

	_, _, err := encodeWindow(date, date, strptr("25:00"), strptr("26:00"))
	require.Error(t, err)
}

func TestTurnoverDayDoesNotOverlap(t *testing.T) {
	// Stay A checks out on the day stay B checks in; the encoded ranges
	// touch at the boundary and must not intersect.
	aStart, aEnd, err := encodeWindow(mustDate(t, "2025-06-10"), mustDate(t, "2025-06-12"), nil, nil)
	require.NoError(t, err)
	bStart, bEnd, err := encodeWindow(mustDate(t, "2025-06-12"), mustDate(t, "2025-06-14"), nil, nil)
	require.NoError(t, err)

	overlaps := aStart.Before(bEnd) && bStart.Before(aEnd)
	assert.False(t, overlaps)
}

func TestBackToBackSeatingsDoNotOverlap(t *testing.T) {
	date := mustDate(t, "2025-06-10")

	aStart, aEnd, err := encodeWindow(date, date, strptr("18:00"), strptr("20:00"))
	require.NoError(t, err)
	bStart, bEnd, err := encodeWindow(date, date, strptr("20:00"), strptr("22:00"))
	require.NoError(t, err)

	overlaps := aStart.Before(bEnd) && bStart.Before(aEnd)
	assert.False(t, overlaps)

	// One minute of overlap flips the result.
	cStart, cEnd, err := encodeWindow(date, date, strptr("19:59"), strptr("22:00"))
	require.NoError(t, err)
	overlaps = aStart.Before(cEnd) && cStart.Before(aEnd)
	assert.True(t, overlaps)
}

func TestReservationCoversDate(t *testing.T) {
	r := &Reservation{
		DateFrom: mustDate(t, "2025-06-10"),
		DateTo:   mustDate(t, "2025-06-12"),
	}
	var err error
	r.StartAt, r.EndAt, err = encodeWindow(r.DateFrom, r.DateTo, nil, nil)
	require.NoError(t, err)

	assert.True(t, r.CoversDate(mustDate(t, "2025-06-10")))
	assert.True(t, r.CoversDate(mustDate(t, "2025-06-11")))
	assert.False(t, r.CoversDate(mustDate(t, "2025-06-12")), "checkout day is free for new arrivals")
	assert.False(t, r.CoversDate(mustDate(t, "2025-06-09")))
}

func TestReservationOccupies(t *testing.T) {
	for _, status := range []Status{StatusPending, StatusPendingPayment, StatusConfirmed, StatusCheckedIn, StatusCheckedOut} {
		r := &Reservation{Status: string(status)}
		assert.True(t, r.Occupies(), "status %s should occupy", status)
	}
	r := &Reservation{Status: string(StatusCancelled)}
	assert.False(t, r.Occupies())
}

func TestBlockCollides(t *testing.T) {
	fullDay := &blocks.Block{Kind: blocks.KindFullDay}
	timed := &blocks.Block{
		Kind:      blocks.KindMaintenance,
		StartTime: strptr("14:00"),
		EndTime:   strptr("16:00"),
	}
	overnight := &blocks.Block{
		Kind:      blocks.KindPrivateEvent,
		StartTime: strptr("22:00"),
		EndTime:   strptr("02:00"),
	}

	// Full-day blocks collide with everything sharing a date.
	assert.True(t, blockCollides(fullDay, nil, nil))
	assert.True(t, blockCollides(fullDay, strptr("19:00"), strptr("21:00")))

	// Timed blocks only collide with intersecting clock windows.
	assert.True(t, blockCollides(timed, nil, nil), "whole-day stay hits any block")
	assert.True(t, blockCollides(timed, strptr("15:00"), strptr("17:00")))
	assert.False(t, blockCollides(timed, strptr("16:00"), strptr("18:00")))
	assert.False(t, blockCollides(timed, strptr("12:00"), strptr("14:00")))

	// Overnight block window wraps past midnight.
	assert.True(t, blockCollides(overnight, strptr("23:00"), strptr("23:30")))
	assert.False(t, blockCollides(overnight, strptr("20:00"), strptr("22:00")))
}
