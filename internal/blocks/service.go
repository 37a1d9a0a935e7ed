package blocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"staybook/internal/scheduling"
	"staybook/internal/shared/constants"
	"staybook/pkg/cache"
	"staybook/pkg/logger"
	"staybook/pkg/timeutil"
)

// ReservationGuard is the advisory overlap check against non-terminal
// reservations, implemented by the reservations service. An interface keeps
// the two packages from depending on each other.
type ReservationGuard interface {
	CheckOverlap(ctx context.Context, resourceID uuid.UUID, dateFrom, dateTo time.Time, excludeStatuses []string) ([]scheduling.Conflict, error)
	CheckPropertyOverlap(ctx context.Context, propertyID uuid.UUID, dateFrom, dateTo time.Time, excludeStatuses []string) ([]scheduling.Conflict, error)
}

type Service interface {
	SetCacheService(cacheService cache.Service)
	SetReservationGuard(guard ReservationGuard)

	CreateBlock(ctx context.Context, req CreateBlockRequest) (*BlockResponse, error)
	DeleteBlock(ctx context.Context, id uuid.UUID) error
	ListBlocks(ctx context.Context, query ListBlocksQuery) ([]BlockResponse, error)

	// BlocksForRange feeds the availability resolver and calendar aggregator
	// with raw block records intersecting a date range.
	BlocksForRange(ctx context.Context, propertyID uuid.UUID, dateFrom, dateTo time.Time, resourceID *uuid.UUID) ([]Block, error)
}

type service struct {
	repo         Repository
	guard        ReservationGuard
	cacheService cache.Service
	log          *logger.Logger
}

func NewService(repo Repository) Service {
	return &service{repo: repo, log: logger.GetDefault()}
}

func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) SetReservationGuard(guard ReservationGuard) {
	s.guard = guard
}

func (s *service) CreateBlock(ctx context.Context, req CreateBlockRequest) (*BlockResponse, error) {
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

	kind := Kind(req.Kind)
	if !kind.IsValid() {
		return nil, scheduling.NewValidationError("kind", fmt.Sprintf("unknown kind %q", req.Kind))
	}

	if req.StartTime != nil {
		if _, err := timeutil.ParseClock(*req.StartTime); err != nil {
			return nil, scheduling.NewValidationError("start_time", err.Error())
		}
	}
	if req.EndTime != nil {
		if _, err := timeutil.ParseClock(*req.EndTime); err != nil {
			return nil, scheduling.NewValidationError("end_time", err.Error())
		}
	}

	// Advisory pre-check against occupying reservations. A resource-scoped
	// block checks its one resource; a property-wide block checks the whole
	// property, since it closes every resource at once.
	if s.guard != nil {
		occupancyEnd := dateTo.AddDate(0, 0, 1)
		var conflicts []scheduling.Conflict
		if req.ResourceID != nil {
			conflicts, err = s.guard.CheckOverlap(ctx, *req.ResourceID, dateFrom, occupancyEnd, nil)
		} else {
			conflicts, err = s.guard.CheckPropertyOverlap(ctx, req.PropertyID, dateFrom, occupancyEnd, nil)
		}
		if err != nil {
			return nil, err
		}
		if len(conflicts) > 0 {
			return nil, &scheduling.ConflictError{Conflicts: conflicts}
		}
	}

	// Pre-check against other blocks too, so staff get a precise conflict
	// report instead of a raw constraint-violation message.
	existing, err := s.repo.FindOverlapping(ctx, req.PropertyID, req.ResourceID, dateFrom, dateTo)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, &scheduling.ConflictError{Conflicts: blockConflicts(existing)}
	}

	block := &Block{
		PropertyID: req.PropertyID,
		ResourceID: req.ResourceID,
		SectionID:  req.SectionID,
		TableID:    req.TableID,
		DateFrom:   dateFrom,
		DateTo:     dateTo,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Kind:       kind,
		Reason:     req.Reason,
		Notes:      req.Notes,
		CreatedBy:  req.CreatedBy,
	}
	if err := s.repo.Create(ctx, block); err != nil {
		return nil, err
	}

	s.log.LogBlockCreated(ctx, block.ID.String(), block.PropertyID.String(), string(block.Kind))
	s.invalidateScheduleCache(ctx, req.PropertyID)
	return toBlockResponse(block), nil
}

func (s *service) DeleteBlock(ctx context.Context, id uuid.UUID) error {
	block, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateScheduleCache(ctx, block.PropertyID)
	return nil
}

func (s *service) ListBlocks(ctx context.Context, query ListBlocksQuery) ([]BlockResponse, error) {
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

func (s *service) BlocksForRange(ctx context.Context, propertyID uuid.UUID, dateFrom, dateTo time.Time, resourceID *uuid.UUID) ([]Block, error) {
	return s.repo.ListInRange(ctx, propertyID, dateFrom, dateTo, resourceID)
}

func (s *service) invalidateScheduleCache(ctx context.Context, propertyID uuid.UUID) {
	if s.cacheService == nil {
		return
	}
	pattern := constants.ScheduleInvalidationPattern(propertyID.String())
	if err := s.cacheService.DeletePattern(ctx, pattern); err != nil {
		// Stale cache entries expire on their own TTL; a failed invalidation
		// is not worth failing the write.
		return
	}
}

func blockConflicts(list []Block) []scheduling.Conflict {
	conflicts := make([]scheduling.Conflict, len(list))
	for i, b := range list {
		conflicts[i] = scheduling.Conflict{
			ID:       b.ID.String(),
			Label:    fmt.Sprintf("%s block (%s)", b.Kind, b.Reason),
			DateFrom: timeutil.FormatDate(b.DateFrom),
			DateTo:   timeutil.FormatDate(b.DateTo),
		}
	}
	return conflicts
}
