package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"staybook/internal/scheduling"
	"staybook/internal/shared/constants"
	"staybook/pkg/cache"
	"staybook/pkg/timeutil"
)

// Service defines the analytics service interface
type Service interface {
	SetCacheService(cacheService cache.Service)

	GetPropertyStats(ctx context.Context, propertyID uuid.UUID, dateFrom, dateTo string) (*PropertyStats, error)
}

// service implements the Service interface
type service struct {
	repo         Repository
	cacheService cache.Service
}

// NewService creates a new analytics service instance
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// SetCacheService injects the cache service dependency
func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) GetPropertyStats(ctx context.Context, propertyID uuid.UUID, dateFrom, dateTo string) (*PropertyStats, error) {
	from, err := timeutil.ParseDate(dateFrom)
	if err != nil {
		return nil, scheduling.NewValidationError("dateFrom", err.Error())
	}
	to, err := timeutil.ParseDate(dateTo)
	if err != nil {
		return nil, scheduling.NewValidationError("dateTo", err.Error())
	}
	if to.Before(from) {
		return nil, scheduling.NewValidationError("dateTo", "must not be before dateFrom")
	}

	cacheKey := fmt.Sprintf("%s:range:%s:%s", constants.CacheKeyStatsPrefix(propertyID.String()), dateFrom, dateTo)
	if s.cacheService != nil {
		var cached PropertyStats
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	stats, err := s.repo.GetPropertyStats(ctx, propertyID, from, to)
	if err != nil {
		return nil, err
	}
	stats.DateFrom = dateFrom
	stats.DateTo = dateTo

	daily, err := s.repo.GetDailyStats(ctx, propertyID, from, to)
	if err != nil {
		return nil, err
	}
	stats.Daily = daily

	resourceCount, err := s.repo.CountResources(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	stats.OccupancyRate = occupancyRate(daily, resourceCount, from, to)

	if s.cacheService != nil {
		_ = s.cacheService.Set(ctx, cacheKey, stats, constants.TTL_PROPERTY_STATS)
	}
	return stats, nil
}

// occupancyRate approximates occupancy as occupied resource-days over
// available resource-days in the range, capped at 100.
func occupancyRate(daily []DailyStats, resourceCount int64, from, to time.Time) float64 {
	if resourceCount == 0 {
		return 0
	}
	days := int(to.Sub(from).Hours()/24) + 1
	if days <= 0 {
		return 0
	}

	occupied := 0
	for _, d := range daily {
		occupied += d.Reservations
	}
	rate := float64(occupied) / float64(int(resourceCount)*days) * 100
	if rate > 100 {
		rate = 100
	}
	return rate
}
