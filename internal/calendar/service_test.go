package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staybook/internal/blocks"
	"staybook/internal/pricing"
	"staybook/internal/reservations"
	"staybook/internal/scheduling"
)

type fakeReservationSource struct {
	list    []reservations.Reservation
	startAt time.Time
	endAt   time.Time
	err     error
}

func (f *fakeReservationSource) ReservationsForRange(ctx context.Context, propertyID uuid.UUID, startAt, endAt time.Time, resourceID *uuid.UUID) ([]reservations.Reservation, error) {
	f.startAt, f.endAt = startAt, endAt
	return f.list, f.err
}

type fakeBlockSource struct {
	list []blocks.Block
	from time.Time
	to   time.Time
}

func (f *fakeBlockSource) BlocksForRange(ctx context.Context, propertyID uuid.UUID, dateFrom, dateTo time.Time, resourceID *uuid.UUID) ([]blocks.Block, error) {
	f.from, f.to = dateFrom, dateTo
	return f.list, nil
}

type fakePriceSource struct {
	list []pricing.SeasonalPrice
}

func (f *fakePriceSource) PricesForRange(ctx context.Context, propertyID uuid.UUID, dateFrom, dateTo time.Time, resourceID *uuid.UUID) ([]pricing.SeasonalPrice, error) {
	return f.list, nil
}

func TestGetMonthExpandsGridRange(t *testing.T) {
	resSource := &fakeReservationSource{}
	blockSource := &fakeBlockSource{}
	service := NewService(resSource, blockSource, &fakePriceSource{})

	resp, err := service.GetMonth(context.Background(), uuid.New(), "2025-03", nil)
	require.NoError(t, err)

	// March 2025 starts on a Saturday and ends on a Monday; the grid runs
	// from Monday 02-24 to Sunday 04-06.
	assert.Equal(t, "2025-03", resp.Month)
	assert.Equal(t, "2025-02-24", resp.RangeStart)
	assert.Equal(t, "2025-04-06", resp.RangeEnd)

	// Occupancy query extends one day past the grid end (half-open).
	assert.Equal(t, time.Date(2025, 2, 24, 0, 0, 0, 0, time.UTC), resSource.startAt)
	assert.Equal(t, time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC), resSource.endAt)

	// Block and price queries use the inclusive grid dates.
	assert.Equal(t, time.Date(2025, 2, 24, 0, 0, 0, 0, time.UTC), blockSource.from)
	assert.Equal(t, time.Date(2025, 4, 6, 0, 0, 0, 0, time.UTC), blockSource.to)
}

func TestGetMonthMergesCollections(t *testing.T) {
	resourceID := uuid.New()
	resSource := &fakeReservationSource{list: []reservations.Reservation{{
		ID:         uuid.New(),
		Code:       "RSV-20250310-ABCDEF",
		ResourceID: resourceID,
		GuestName:  "Ada",
		PartySize:  2,
		DateFrom:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		DateTo:     time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		Status:     "confirmed",
	}}}
	blockSource := &fakeBlockSource{list: []blocks.Block{{
		ID:       uuid.New(),
		DateFrom: time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC),
		DateTo:   time.Date(2025, 3, 18, 0, 0, 0, 0, time.UTC),
		Kind:     blocks.KindMaintenance,
		Reason:   "painting",
	}}}
	priceSource := &fakePriceSource{list: []pricing.SeasonalPrice{{
		ID:       uuid.New(),
		Label:    "spring rate",
		DateFrom: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		DateTo:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		Amount:   120,
		Currency: "EUR",
	}}}

	service := NewService(resSource, blockSource, priceSource)
	resp, err := service.GetMonth(context.Background(), uuid.New(), "2025-03", nil)
	require.NoError(t, err)

	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, "RSV-20250310-ABCDEF", resp.Reservations[0].Code)
	assert.Equal(t, "2025-03-10", resp.Reservations[0].DateFrom)

	require.Len(t, resp.Blocks, 1)
	assert.Equal(t, "2025-03-17", resp.Blocks[0].DateFrom)

	require.Len(t, resp.Prices, 1)
	assert.Equal(t, 120.0, resp.Prices[0].Amount)
}

func TestGetMonthEmptyResultsAreNotErrors(t *testing.T) {
	service := NewService(&fakeReservationSource{}, &fakeBlockSource{}, &fakePriceSource{})

	resp, err := service.GetMonth(context.Background(), uuid.New(), "2025-11", nil)
	require.NoError(t, err)
	assert.Empty(t, resp.Reservations)
	assert.Empty(t, resp.Blocks)
	assert.Empty(t, resp.Prices)
}

func TestGetMonthInvalidMonth(t *testing.T) {
	service := NewService(&fakeReservationSource{}, &fakeBlockSource{}, &fakePriceSource{})

	_, err := service.GetMonth(context.Background(), uuid.New(), "March 2025", nil)
	require.Error(t, err)

	var validationErr *scheduling.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestGetMonthPropagatesSourceErrors(t *testing.T) {
	resSource := &fakeReservationSource{err: &scheduling.StoreError{Op: "list", Err: errors.New("down")}}
	service := NewService(resSource, &fakeBlockSource{}, &fakePriceSource{})

	_, err := service.GetMonth(context.Background(), uuid.New(), "2025-03", nil)
	require.Error(t, err)

	var storeErr *scheduling.StoreError
	assert.True(t, errors.As(err, &storeErr))
}
