package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"staybook/internal/history"
	"staybook/internal/scheduling"
)

type memoryRepository struct {
	records map[uuid.UUID]*Reservation
}

func newMemoryRepository(list ...*Reservation) *memoryRepository {
	repo := &memoryRepository{records: make(map[uuid.UUID]*Reservation)}
	for _, r := range list {
		if r.ID == uuid.Nil {
			r.ID = uuid.New()
		}
		repo.records[r.ID] = r
	}
	return repo
}

func (m *memoryRepository) Create(ctx context.Context, reservation *Reservation) error {
	if reservation.ID == uuid.Nil {
		reservation.ID = uuid.New()
	}
	m.records[reservation.ID] = reservation
	return nil
}

func (m *memoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	r, ok := m.records[id]
	if !ok {
		return nil, &scheduling.NotFoundError{Entity: "reservation", ID: id.String()}
	}
	return r, nil
}

func (m *memoryRepository) GetByCode(ctx context.Context, code string) (*Reservation, error) {
	for _, r := range m.records {
		if r.Code == code {
			return r, nil
		}
	}
	return nil, &scheduling.NotFoundError{Entity: "reservation", ID: code}
}

func (m *memoryRepository) List(ctx context.Context, filter ListFilter) ([]Reservation, error) {
	return nil, nil
}

func (m *memoryRepository) FindOverlapping(ctx context.Context, resourceID uuid.UUID, startAt, endAt time.Time) ([]Reservation, error) {
	var out []Reservation
	for _, r := range m.records {
		if r.ResourceID == resourceID && r.Occupies() && r.StartAt.Before(endAt) && r.EndAt.After(startAt) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memoryRepository) ListInRange(ctx context.Context, propertyID uuid.UUID, startAt, endAt time.Time, resourceID *uuid.UUID) ([]Reservation, error) {
	var out []Reservation
	for _, r := range m.records {
		if r.PropertyID != propertyID || !r.Occupies() {
			continue
		}
		if resourceID != nil && r.ResourceID != *resourceID {
			continue
		}
		if r.StartAt.Before(endAt) && r.EndAt.After(startAt) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memoryRepository) UpdateWithLock(ctx context.Context, id uuid.UUID, fn func(tx *gorm.DB, reservation *Reservation) error) (*Reservation, error) {
	r, ok := m.records[id]
	if !ok {
		return nil, &scheduling.NotFoundError{Entity: "reservation", ID: id.String()}
	}
	updated := *r
	if err := fn(nil, &updated); err != nil {
		return nil, err
	}
	m.records[id] = &updated
	return &updated, nil
}

type memoryHistory struct {
	entries []history.Entry
}

func (m *memoryHistory) RecordTx(tx *gorm.DB, entry history.Entry) error {
	m.entries = append(m.entries, entry)
	return nil
}

func (m *memoryHistory) ListForReservation(ctx context.Context, reservationID uuid.UUID) ([]history.Entry, error) {
	var out []history.Entry
	for _, e := range m.entries {
		if e.ReservationID == reservationID {
			out = append(out, e)
		}
	}
	return out, nil
}

func newLifecycleFixture(t *testing.T, status Status) (Service, *memoryRepository, *memoryHistory, uuid.UUID) {
	t.Helper()
	reservation := &Reservation{
		ID:         uuid.New(),
		Code:       "RSV-20250610-TESTAA",
		PropertyID: uuid.New(),
		ResourceID: uuid.New(),
		GuestName:  "Ada",
		PartySize:  2,
		DateFrom:   mustDate(t, "2025-06-10"),
		DateTo:     mustDate(t, "2025-06-12"),
		Status:     string(status),
	}
	var err error
	reservation.StartAt, reservation.EndAt, err = encodeWindow(reservation.DateFrom, reservation.DateTo, nil, nil)
	require.NoError(t, err)

	repo := newMemoryRepository(reservation)
	hist := &memoryHistory{}
	svc := NewService(repo, nil, hist, nil)
	return svc, repo, hist, reservation.ID
}

func TestApplyActionCancelWithoutReason(t *testing.T) {
	svc, repo, hist, id := newLifecycleFixture(t, StatusPending)

	resp, err := svc.ApplyAction(context.Background(), id, ApplyActionRequest{Action: "cancel"})
	require.NoError(t, err)
	assert.Equal(t, string(StatusCancelled), resp.Status)
	assert.Empty(t, resp.CancellationReason)

	stored := repo.records[id]
	assert.Equal(t, string(StatusCancelled), stored.Status)
	assert.Empty(t, stored.CancellationReason)

	require.Len(t, hist.entries, 1)
	assert.Equal(t, "cancel", hist.entries[0].Action)
	assert.Empty(t, hist.entries[0].Reason)
}

func TestApplyActionCancelRecordsReasonWhenSupplied(t *testing.T) {
	svc, repo, hist, id := newLifecycleFixture(t, StatusConfirmed)

	resp, err := svc.ApplyAction(context.Background(), id, ApplyActionRequest{
		Action: "cancel",
		Reason: "guest request",
		Actor:  "front desk",
	})
	require.NoError(t, err)
	assert.Equal(t, "guest request", resp.CancellationReason)
	assert.Equal(t, "guest request", repo.records[id].CancellationReason)

	require.Len(t, hist.entries, 1)
	assert.Equal(t, "guest request", hist.entries[0].Reason)
	assert.Equal(t, "front desk", hist.entries[0].Actor)
}

func TestApplyActionCheckinStampsArrival(t *testing.T) {
	svc, repo, hist, id := newLifecycleFixture(t, StatusConfirmed)

	resp, err := svc.ApplyAction(context.Background(), id, ApplyActionRequest{Action: "checkin"})
	require.NoError(t, err)
	assert.Equal(t, string(StatusCheckedIn), resp.Status)
	require.NotNil(t, resp.ActualCheckIn)

	// Confirming a checked-in reservation is not a legal move.
	_, err = svc.ApplyAction(context.Background(), id, ApplyActionRequest{Action: "confirm"})
	require.Error(t, err)

	var transitionErr *scheduling.TransitionError
	require.True(t, errors.As(err, &transitionErr))
	assert.Equal(t, string(StatusCheckedIn), transitionErr.Current)
	assert.Equal(t, string(StatusConfirmed), transitionErr.Attempted)

	// The failed action changed nothing and wrote no audit row.
	assert.Equal(t, string(StatusCheckedIn), repo.records[id].Status)
	assert.Len(t, hist.entries, 1)
}

func TestApplyActionCheckoutFlow(t *testing.T) {
	svc, repo, _, id := newLifecycleFixture(t, StatusCheckedIn)

	resp, err := svc.ApplyAction(context.Background(), id, ApplyActionRequest{Action: "checkout"})
	require.NoError(t, err)
	assert.Equal(t, string(StatusCheckedOut), resp.Status)
	require.NotNil(t, resp.ActualCheckOut)

	// checked_out is terminal; cancelling it must fail.
	_, err = svc.ApplyAction(context.Background(), id, ApplyActionRequest{Action: "cancel"})
	var transitionErr *scheduling.TransitionError
	require.True(t, errors.As(err, &transitionErr))
	assert.Equal(t, string(StatusCheckedOut), repo.records[id].Status)
}

func TestApplyActionTerminalStateImmutable(t *testing.T) {
	svc, _, hist, id := newLifecycleFixture(t, StatusCancelled)

	for _, action := range []string{"confirm", "checkin", "checkout", "cancel"} {
		_, err := svc.ApplyAction(context.Background(), id, ApplyActionRequest{Action: action})
		var transitionErr *scheduling.TransitionError
		require.True(t, errors.As(err, &transitionErr), "action %s", action)
	}
	assert.Empty(t, hist.entries)
}

func TestApplyActionUnknownAction(t *testing.T) {
	svc, _, _, id := newLifecycleFixture(t, StatusPending)

	_, err := svc.ApplyAction(context.Background(), id, ApplyActionRequest{Action: "approve"})
	require.Error(t, err)

	var validationErr *scheduling.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestApplyActionUnknownReservation(t *testing.T) {
	svc, _, _, _ := newLifecycleFixture(t, StatusPending)

	_, err := svc.ApplyAction(context.Background(), uuid.New(), ApplyActionRequest{Action: "confirm"})
	var notFound *scheduling.NotFoundError
	require.True(t, errors.As(err, &notFound))
}
