package pricing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"staybook/internal/resources"
	"staybook/internal/scheduling"
	"staybook/pkg/timeutil"
)

type Service interface {
	CreatePrice(ctx context.Context, req CreatePriceRequest) (*PriceResponse, error)
	DeletePrice(ctx context.Context, id uuid.UUID) error
	ListPrices(ctx context.Context, query ListPricesQuery) ([]PriceResponse, error)

	// PricesForRange feeds the calendar aggregator with raw override records
	// intersecting a date range.
	PricesForRange(ctx context.Context, propertyID uuid.UUID, dateFrom, dateTo time.Time, resourceID *uuid.UUID) ([]SeasonalPrice, error)

	// Quote snapshots the total for a reservation window: per night for
	// stays, one unit for single-date seatings. Resource-scoped overrides
	// beat property-wide ones; uncovered nights fall back to the base rate.
	Quote(ctx context.Context, resourceID uuid.UUID, dateFrom, dateTo time.Time) (float64, string, error)
}

type service struct {
	repo            Repository
	resourceService resources.Service
}

func NewService(repo Repository, resourceService resources.Service) Service {
	return &service{repo: repo, resourceService: resourceService}
}

func (s *service) CreatePrice(ctx context.Context, req CreatePriceRequest) (*PriceResponse, error) {
	dateFrom, err := timeutil.ParseDate(req.DateFrom)
	if err != nil {
		return nil, scheduling.NewValidationError("date_from", err.Error())
	}
	dateTo, err := timeutil.ParseDate(req.DateTo)
	if err != nil {
		return nil, scheduling.NewValidationError("date_to", err.Error())
	}
	if dateTo.Before(dateFrom) {
		return nil, scheduling.NewValidationError("date_to", "must not be before date_from")
	}

	currency := req.Currency
	if currency == "" {
		currency = "EUR"
	}

	price := &SeasonalPrice{
		PropertyID: req.PropertyID,
		ResourceID: req.ResourceID,
		Label:      req.Label,
		DateFrom:   dateFrom,
		DateTo:     dateTo,
		Amount:     req.Amount,
		Currency:   currency,
	}
	if err := s.repo.Create(ctx, price); err != nil {
		return nil, err
	}
	return toPriceResponse(price), nil
}

func (s *service) DeletePrice(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) ListPrices(ctx context.Context, query ListPricesQuery) ([]PriceResponse, error) {
	dateFrom, err := timeutil.ParseDate(query.DateFrom)
	if err != nil {
		return nil, scheduling.NewValidationError("dateFrom", err.Error())
	}
	dateTo, err := timeutil.ParseDate(query.DateTo)
	if err != nil {
		return nil, scheduling.NewValidationError("dateTo", err.Error())
	}

	list, err := s.repo.ListInRange(ctx, query.PropertyID, dateFrom, dateTo, query.ResourceID)
	if err != nil {
		return nil, err
	}
	return ToResponses(list), nil
}

func (s *service) PricesForRange(ctx context.Context, propertyID uuid.UUID, dateFrom, dateTo time.Time, resourceID *uuid.UUID) ([]SeasonalPrice, error) {
	return s.repo.ListInRange(ctx, propertyID, dateFrom, dateTo, resourceID)
}

func (s *service) Quote(ctx context.Context, resourceID uuid.UUID, dateFrom, dateTo time.Time) (float64, string, error) {
	resource, err := s.resourceService.GetResource(ctx, resourceID)
	if err != nil {
		return 0, "", err
	}

	// Stays price per night up to the eve of checkout; a single-date window
	// (table seating) prices one unit on its date.
	lastDate := dateTo.AddDate(0, 0, -1)
	if lastDate.Before(dateFrom) {
		lastDate = dateFrom
	}

	overrides, err := s.repo.ListForResource(ctx, resourceID, dateFrom, lastDate)
	if err != nil {
		return 0, "", err
	}

	currency := resource.Currency
	if currency == "" {
		currency = "EUR"
	}

	total := 0.0
	for date := dateFrom; !date.After(lastDate); date = date.AddDate(0, 0, 1) {
		amount, overrideCurrency := rateFor(overrides, resourceID, date, resource.BaseRate)
		if overrideCurrency != "" {
			currency = overrideCurrency
		}
		total += amount
	}
	return total, currency, nil
}

// rateFor picks the override for one date. Resource-scoped overrides beat
// property-wide ones; with none covering, the base rate applies.
func rateFor(overrides []SeasonalPrice, resourceID uuid.UUID, date time.Time, baseRate float64) (float64, string) {
	var propertyWide *SeasonalPrice
	for i := range overrides {
		o := &overrides[i]
		if !o.CoversDate(date) {
			continue
		}
		if o.ResourceID != nil && *o.ResourceID == resourceID {
			return o.Amount, o.Currency
		}
		if o.ResourceID == nil && propertyWide == nil {
			propertyWide = o
		}
	}
	if propertyWide != nil {
		return propertyWide.Amount, propertyWide.Currency
	}
	return baseRate, ""
}
