package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"staybook/internal/blocks"
	"staybook/internal/pricing"
	"staybook/internal/reservations"
	"staybook/internal/scheduling"
	"staybook/internal/shared/constants"
	"staybook/pkg/cache"
	"staybook/pkg/timeutil"
)

// ReservationSource, BlockSource and PriceSource are the slices of the
// domain services the aggregator reads from (to avoid circular dependency).
type ReservationSource interface {
	ReservationsForRange(ctx context.Context, propertyID uuid.UUID, startAt, endAt time.Time, resourceID *uuid.UUID) ([]reservations.Reservation, error)
}

type BlockSource interface {
	BlocksForRange(ctx context.Context, propertyID uuid.UUID, dateFrom, dateTo time.Time, resourceID *uuid.UUID) ([]blocks.Block, error)
}

type PriceSource interface {
	PricesForRange(ctx context.Context, propertyID uuid.UUID, dateFrom, dateTo time.Time, resourceID *uuid.UUID) ([]pricing.SeasonalPrice, error)
}

type Service interface {
	SetCacheService(cacheService cache.Service)

	// GetMonth merges reservations, blocks and seasonal prices over the full
	// calendar-grid range of a month (first Monday on or before the 1st to
	// the last Sunday on or after the month's end). A pure merge: no overlap
	// validation, no lifecycle logic.
	GetMonth(ctx context.Context, propertyID uuid.UUID, yearMonth string, resourceID *uuid.UUID) (*MonthResponse, error)
}

type service struct {
	reservationSource ReservationSource
	blockSource       BlockSource
	priceSource       PriceSource
	cacheService      cache.Service
}

func NewService(reservationSource ReservationSource, blockSource BlockSource, priceSource PriceSource) Service {
	return &service{
		reservationSource: reservationSource,
		blockSource:       blockSource,
		priceSource:       priceSource,
	}
}

func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

// MonthResponse is the calendar payload: the grid date range plus three
// parallel collections intersecting it.
type MonthResponse struct {
	Month      string `json:"month"`
	RangeStart string `json:"range_start"`
	RangeEnd   string `json:"range_end"`

	Reservations []reservations.ReservationSummary `json:"reservations"`
	Blocks       []blocks.BlockResponse            `json:"blocks"`
	Prices       []pricing.PriceResponse           `json:"prices"`
}

func (s *service) GetMonth(ctx context.Context, propertyID uuid.UUID, yearMonth string, resourceID *uuid.UUID) (*MonthResponse, error) {
	gridStart, gridEnd, err := timeutil.ExpandCalendarGrid(yearMonth)
	if err != nil {
		return nil, scheduling.NewValidationError("month", err.Error())
	}

	cacheKey := fmt.Sprintf("%s:month:%s:resource:%s",
		constants.CacheKeyCalendarPrefix(propertyID.String()), yearMonth, resourceFilterKey(resourceID))
	if s.cacheService != nil {
		var cached MonthResponse
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	// The grid's occupancy range is half-open past the last grid day.
	rangeStart := gridStart
	rangeEnd := gridEnd.AddDate(0, 0, 1)

	reservationList, err := s.reservationSource.ReservationsForRange(ctx, propertyID, rangeStart, rangeEnd, resourceID)
	if err != nil {
		return nil, err
	}
	blockList, err := s.blockSource.BlocksForRange(ctx, propertyID, gridStart, gridEnd, resourceID)
	if err != nil {
		return nil, err
	}
	priceList, err := s.priceSource.PricesForRange(ctx, propertyID, gridStart, gridEnd, resourceID)
	if err != nil {
		return nil, err
	}

	resp := &MonthResponse{
		Month:        yearMonth,
		RangeStart:   timeutil.FormatDate(gridStart),
		RangeEnd:     timeutil.FormatDate(gridEnd),
		Reservations: reservations.ToSummaries(reservationList),
		Blocks:       blocks.ToResponses(blockList),
		Prices:       pricing.ToResponses(priceList),
	}

	if s.cacheService != nil {
		_ = s.cacheService.Set(ctx, cacheKey, resp, constants.TTL_CALENDAR_MONTH)
	}
	return resp, nil
}

func resourceFilterKey(resourceID *uuid.UUID) string {
	if resourceID == nil {
		return "all"
	}
	return resourceID.String()
}
