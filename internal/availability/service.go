package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"staybook/internal/blocks"
	"staybook/internal/resources"
	"staybook/internal/scheduling"
	"staybook/internal/shared/constants"
	"staybook/pkg/cache"
	"staybook/pkg/timeutil"
)

// BlockSource feeds the resolver with blocks touching a date range
// (to avoid circular dependency).
type BlockSource interface {
	BlocksForRange(ctx context.Context, propertyID uuid.UUID, dateFrom, dateTo time.Time, resourceID *uuid.UUID) ([]blocks.Block, error)
}

// Config carries the resolver defaults from the scheduling configuration.
type Config struct {
	DefaultOpenTime    string
	DefaultCloseTime   string
	DefaultTimezone    string
	DefaultSlotMinutes int
}

type Service interface {
	SetCacheService(cacheService cache.Service)

	// GetDayAvailability resolves the effective window and slot list for one
	// resource and date.
	GetDayAvailability(ctx context.Context, resourceID uuid.UUID, date string, granularityMinutes int) (*DayAvailabilityResponse, error)
}

type service struct {
	resourceService resources.Service
	blockSource     BlockSource
	config          Config
	cacheService    cache.Service

	// now is swappable in tests.
	now func() time.Time
}

func NewService(resourceService resources.Service, blockSource BlockSource, config Config) Service {
	return &service{
		resourceService: resourceService,
		blockSource:     blockSource,
		config:          config,
		now:             time.Now,
	}
}

func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

// DayAvailabilityResponse is the resolved schedule for one resource-date.
type DayAvailabilityResponse struct {
	ResourceID uuid.UUID `json:"resource_id"`
	Date       string    `json:"date"`
	Closed     bool      `json:"closed"`
	Open       string    `json:"open,omitempty"`
	Close      string    `json:"close,omitempty"`
	Timezone   string    `json:"timezone"`
	Slots      []string  `json:"slots"`
}

func (s *service) GetDayAvailability(ctx context.Context, resourceID uuid.UUID, date string, granularityMinutes int) (*DayAvailabilityResponse, error) {
	day, err := timeutil.ParseDate(date)
	if err != nil {
		return nil, scheduling.NewValidationError("date", err.Error())
	}
	if granularityMinutes <= 0 {
		granularityMinutes = s.config.DefaultSlotMinutes
	}

	resource, err := s.resourceService.GetResource(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("%s:resource:%s:date:%s:gran:%d",
		constants.CacheKeySlotsPrefix(resource.PropertyID.String()), resourceID, date, granularityMinutes)
	if s.cacheService != nil {
		var cached DayAvailabilityResponse
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	dayBlocks, err := s.blockSource.BlocksForRange(ctx, resource.PropertyID, day, day, &resourceID)
	if err != nil {
		return nil, err
	}

	resp := s.resolve(resource, day, dayBlocks, granularityMinutes)

	if s.cacheService != nil {
		_ = s.cacheService.Set(ctx, cacheKey, resp, constants.TTL_SLOT_AVAILABILITY)
	}
	return resp, nil
}

func (s *service) resolve(resource *resources.Resource, day time.Time, dayBlocks []blocks.Block, granularityMinutes int) *DayAvailabilityResponse {
	defaults := DefaultHours{Open: s.config.DefaultOpenTime, Close: s.config.DefaultCloseTime}
	zone := resource.EffectiveTimezone(s.config.DefaultTimezone)

	window := EffectiveHours(resource, day, dayBlocks, defaults)
	resp := &DayAvailabilityResponse{
		ResourceID: resource.ID,
		Date:       timeutil.FormatDate(day),
		Closed:     window.Closed,
		Timezone:   zone,
		Slots:      []string{},
	}
	if window.Closed {
		return resp
	}

	resp.Open = timeutil.FormatClock(window.OpenMinutes)
	resp.Close = timeutil.FormatClock(window.CloseMinutes)
	resp.Slots = s.filterPast(day, zone, SlotMinutes(resource, day, window, granularityMinutes, dayBlocks))
	return resp
}

// filterPast drops slots whose start already lies behind "now" in the
// resource's zone, so today's response only offers reachable times. Offsets
// past 24h belong to the following calendar date.
func (s *service) filterPast(day time.Time, zone string, slotMinutes []int) []string {
	filtered := make([]string, 0, len(slotMinutes))
	for _, m := range slotMinutes {
		slotDate := day.AddDate(0, 0, m/timeutil.MinutesPerDay)
		clock := timeutil.FormatClock(m)
		passed, err := timeutil.HasPassedAt(timeutil.FormatDate(slotDate), clock, zone, s.now())
		if err == nil && passed {
			continue
		}
		filtered = append(filtered, clock)
	}
	return filtered
}
