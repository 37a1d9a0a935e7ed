package reservations

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"staybook/internal/blocks"
	"staybook/internal/history"
	"staybook/internal/notifications"
	"staybook/internal/resources"
	"staybook/internal/scheduling"
	"staybook/internal/shared/constants"
	"staybook/pkg/cache"
	"staybook/pkg/logger"
	"staybook/pkg/timeutil"
)

// BlockService is the slice of the blocks service the guard needs
// (to avoid circular dependency).
type BlockService interface {
	BlocksForRange(ctx context.Context, propertyID uuid.UUID, dateFrom, dateTo time.Time, resourceID *uuid.UUID) ([]blocks.Block, error)
}

// PriceQuoter resolves the nightly or per-seating rate snapshot at booking
// time, implemented by the pricing service (to avoid circular dependency).
type PriceQuoter interface {
	Quote(ctx context.Context, resourceID uuid.UUID, dateFrom, dateTo time.Time) (float64, string, error)
}

// Service interface defines the contract for reservation business logic
type Service interface {
	SetCacheService(cacheService cache.Service)
	SetBlockService(blockService BlockService)
	SetEventProducer(producer notifications.Producer)

	CreateReservation(ctx context.Context, req CreateReservationRequest) (*ReservationResponse, error)
	GetReservation(ctx context.Context, id uuid.UUID) (*ReservationResponse, error)
	GetReservationByCode(ctx context.Context, code string) (*ReservationResponse, error)
	ListReservations(ctx context.Context, filter ListFilter) ([]ReservationResponse, error)
	GetReservationHistory(ctx context.Context, id uuid.UUID) ([]history.Entry, error)

	// ApplyAction moves a reservation through its lifecycle. The read,
	// validation and write happen inside one transaction under a row lock so
	// concurrent actions on the same reservation serialize.
	ApplyAction(ctx context.Context, id uuid.UUID, req ApplyActionRequest) (*ReservationResponse, error)

	// CheckOverlap reports occupying reservations intersecting the half-open
	// instant range on a resource. Also serves the blocks service as its
	// advisory guard.
	CheckOverlap(ctx context.Context, resourceID uuid.UUID, startAt, endAt time.Time, excludeStatuses []string) ([]scheduling.Conflict, error)

	// CheckPropertyOverlap is CheckOverlap across every resource of a
	// property, for property-wide blocks.
	CheckPropertyOverlap(ctx context.Context, propertyID uuid.UUID, startAt, endAt time.Time, excludeStatuses []string) ([]scheduling.Conflict, error)

	// ReservationsForRange feeds the calendar aggregator.
	ReservationsForRange(ctx context.Context, propertyID uuid.UUID, startAt, endAt time.Time, resourceID *uuid.UUID) ([]Reservation, error)
}

// service implements the Service interface
type service struct {
	repo            Repository
	resourceService resources.Service
	historyService  history.Service
	priceQuoter     PriceQuoter
	blockService    BlockService
	cacheService    cache.Service
	producer        notifications.Producer
	log             *logger.Logger
}

// NewService creates a new reservation service instance
func NewService(repo Repository, resourceService resources.Service, historyService history.Service, priceQuoter PriceQuoter) Service {
	return &service{
		repo:            repo,
		resourceService: resourceService,
		historyService:  historyService,
		priceQuoter:     priceQuoter,
		log:             logger.GetDefault(),
	}
}

func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) SetBlockService(blockService BlockService) {
	s.blockService = blockService
}

func (s *service) SetEventProducer(producer notifications.Producer) {
	s.producer = producer
}

func (s *service) CreateReservation(ctx context.Context, req CreateReservationRequest) (*ReservationResponse, error) {
	dateFrom, err := timeutil.ParseDate(req.DateFrom)
	if err != nil {
		return nil, scheduling.NewValidationError("date_from", err.Error())
	}
	dateTo, err := timeutil.ParseDate(req.DateTo)
	if err != nil {
		return nil, scheduling.NewValidationError("date_to", err.Error())
	}
	if (req.StartTime == nil) != (req.EndTime == nil) {
		return nil, scheduling.NewValidationError("end_time", "start_time and end_time must be given together")
	}

	timed := req.StartTime != nil
	if timed {
		if dateTo.Before(dateFrom) {
			return nil, scheduling.NewValidationError("date_to", "must not be before date_from")
		}
	} else if !dateTo.After(dateFrom) {
		// Whole-day stays need at least one night; checkout day is exclusive.
		return nil, scheduling.NewValidationError("date_to", "must be after date_from")
	}

	resource, err := s.resourceService.GetResource(ctx, req.ResourceID)
	if err != nil {
		return nil, err
	}
	if !resource.IsActive {
		return nil, scheduling.NewValidationError("resource_id", "resource is not active")
	}
	if resource.PropertyID != req.PropertyID {
		return nil, scheduling.NewValidationError("resource_id", "resource does not belong to the property")
	}
	if req.PartySize > resource.Capacity {
		return nil, scheduling.NewValidationError("party_size",
			fmt.Sprintf("exceeds resource capacity of %d", resource.Capacity))
	}

	startAt, endAt, err := encodeWindow(dateFrom, dateTo, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	if conflicts, err := s.blockConflicts(ctx, req.PropertyID, req.ResourceID, dateFrom, dateTo, req.StartTime, req.EndTime); err != nil {
		return nil, err
	} else if len(conflicts) > 0 {
		return nil, &scheduling.ConflictError{Conflicts: conflicts}
	}

	// Advisory pre-check; the exclusion constraint still catches races.
	overlapping, err := s.repo.FindOverlapping(ctx, req.ResourceID, startAt, endAt)
	if err != nil {
		return nil, err
	}
	if len(overlapping) > 0 {
		return nil, &scheduling.ConflictError{Conflicts: reservationConflicts(overlapping)}
	}

	amount, currency := 0.0, "EUR"
	if s.priceQuoter != nil {
		amount, currency, err = s.priceQuoter.Quote(ctx, req.ResourceID, dateFrom, dateTo)
		if err != nil {
			return nil, err
		}
	}

	code, err := s.generateReservationCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate reservation code: %w", err)
	}

	partySize := req.PartySize
	if partySize == 0 {
		partySize = 1
	}
	source := req.Source
	if source == "" {
		source = "direct"
	}

	reservation := &Reservation{
		Code:            code,
		PropertyID:      req.PropertyID,
		ResourceID:      req.ResourceID,
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
		GuestPhone:      req.GuestPhone,
		PartySize:       partySize,
		DateFrom:        dateFrom,
		DateTo:          dateTo,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		StartAt:         startAt,
		EndAt:           endAt,
		Status:          string(StatusPending),
		Source:          source,
		SpecialRequests: req.SpecialRequests,
		RateAmount:      amount,
		Currency:        currency,
	}
	if err := s.repo.Create(ctx, reservation); err != nil {
		return nil, err
	}

	s.log.LogReservationCreated(ctx, reservation.ID.String(), reservation.ResourceID.String(), reservation.Code)
	s.publishEvent(ctx, reservation, notifications.EventReservationCreated, "", "")
	s.invalidateScheduleCache(ctx, reservation.PropertyID)
	return toReservationResponse(reservation), nil
}

func (s *service) GetReservation(ctx context.Context, id uuid.UUID) (*ReservationResponse, error) {
	reservation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toReservationResponse(reservation), nil
}

func (s *service) GetReservationByCode(ctx context.Context, code string) (*ReservationResponse, error) {
	reservation, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return toReservationResponse(reservation), nil
}

func (s *service) ListReservations(ctx context.Context, filter ListFilter) ([]ReservationResponse, error) {
	list, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toReservationResponses(list), nil
}

func (s *service) GetReservationHistory(ctx context.Context, id uuid.UUID) ([]history.Entry, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.historyService.ListForReservation(ctx, id)
}

func (s *service) ApplyAction(ctx context.Context, id uuid.UUID, req ApplyActionRequest) (*ReservationResponse, error) {
	action := Action(req.Action)
	target, err := TargetForAction(action)
	if err != nil {
		return nil, err
	}

	var previous Status
	updated, err := s.repo.UpdateWithLock(ctx, id, func(tx *gorm.DB, reservation *Reservation) error {
		current := reservation.CurrentStatus()
		if !current.CanTransitionTo(target) {
			return &scheduling.TransitionError{Current: string(current), Attempted: string(target)}
		}
		previous = current

		now := time.Now()
		switch action {
		case ActionCheckin:
			if reservation.ActualCheckIn == nil {
				reservation.ActualCheckIn = &now
			}
		case ActionCheckout:
			if reservation.ActualCheckOut == nil {
				reservation.ActualCheckOut = &now
			}
		case ActionDecline, ActionCancel:
			// Reason is optional; record it only when supplied.
			if req.Reason != "" {
				reservation.CancellationReason = req.Reason
			}
		}
		reservation.Status = string(target)

		return s.historyService.RecordTx(tx, history.Entry{
			ReservationID: reservation.ID,
			FromStatus:    string(current),
			ToStatus:      string(target),
			Action:        string(action),
			Reason:        req.Reason,
			Actor:         req.Actor,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.LogReservationAction(ctx, updated.ID.String(), string(action), updated.Status)
	s.publishEvent(ctx, updated, eventTypeForAction(action), string(previous), req.Reason)
	s.invalidateScheduleCache(ctx, updated.PropertyID)
	return toReservationResponse(updated), nil
}

func (s *service) CheckOverlap(ctx context.Context, resourceID uuid.UUID, startAt, endAt time.Time, excludeStatuses []string) ([]scheduling.Conflict, error) {
	overlapping, err := s.repo.FindOverlapping(ctx, resourceID, startAt, endAt)
	if err != nil {
		return nil, err
	}
	return reservationConflicts(withoutStatuses(overlapping, excludeStatuses)), nil
}

func (s *service) CheckPropertyOverlap(ctx context.Context, propertyID uuid.UUID, startAt, endAt time.Time, excludeStatuses []string) ([]scheduling.Conflict, error) {
	overlapping, err := s.repo.ListInRange(ctx, propertyID, startAt, endAt, nil)
	if err != nil {
		return nil, err
	}
	return reservationConflicts(withoutStatuses(overlapping, excludeStatuses)), nil
}

func withoutStatuses(list []Reservation, excludeStatuses []string) []Reservation {
	if len(excludeStatuses) == 0 {
		return list
	}
	excluded := make(map[string]bool, len(excludeStatuses))
	for _, status := range excludeStatuses {
		excluded[status] = true
	}
	filtered := list[:0]
	for _, r := range list {
		if !excluded[r.Status] {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func (s *service) ReservationsForRange(ctx context.Context, propertyID uuid.UUID, startAt, endAt time.Time, resourceID *uuid.UUID) ([]Reservation, error) {
	return s.repo.ListInRange(ctx, propertyID, startAt, endAt, resourceID)
}

// blockConflicts checks the requested window against blocked ranges on the
// resource. Full-day blocks collide with anything on a shared date; timed
// blocks only collide with timed seatings whose clock windows overlap.
func (s *service) blockConflicts(ctx context.Context, propertyID, resourceID uuid.UUID, dateFrom, dateTo time.Time, startTime, endTime *string) ([]scheduling.Conflict, error) {
	if s.blockService == nil {
		return nil, nil
	}

	// A stay occupies nights only, so its last occupied date is the eve of
	// checkout. A timed seating occupies its own date span.
	lastDate := dateTo
	if startTime == nil {
		lastDate = dateTo.AddDate(0, 0, -1)
	}

	list, err := s.blockService.BlocksForRange(ctx, propertyID, dateFrom, lastDate, &resourceID)
	if err != nil {
		return nil, err
	}

	var conflicts []scheduling.Conflict
	for i := range list {
		b := &list[i]
		if !blockCollides(b, startTime, endTime) {
			continue
		}
		conflicts = append(conflicts, scheduling.Conflict{
			ID:       b.ID.String(),
			Label:    fmt.Sprintf("%s block (%s)", b.Kind, b.Reason),
			DateFrom: timeutil.FormatDate(b.DateFrom),
			DateTo:   timeutil.FormatDate(b.DateTo),
		})
	}
	return conflicts, nil
}

func blockCollides(b *blocks.Block, startTime, endTime *string) bool {
	if !b.HasTimeWindow() || startTime == nil {
		return true
	}
	blockStart := clockOrDefault(b.StartTime, 0)
	blockEnd := clockOrDefault(b.EndTime, timeutil.MinutesPerDay)
	reqStart, err := timeutil.ParseClock(*startTime)
	if err != nil {
		return true
	}
	reqEnd, err := timeutil.ParseClock(*endTime)
	if err != nil {
		return true
	}
	if blockEnd <= blockStart {
		blockEnd += timeutil.MinutesPerDay
	}
	if reqEnd <= reqStart {
		reqEnd += timeutil.MinutesPerDay
	}
	return timeutil.MinuteRangesOverlap(reqStart, reqEnd, blockStart, blockEnd)
}

// clockOrDefault resolves an optional clock bound, treating an absent or
// unparsable side as unrestricted.
func clockOrDefault(clock *string, fallback int) int {
	if clock == nil {
		return fallback
	}
	minutes, err := timeutil.ParseClock(*clock)
	if err != nil {
		return fallback
	}
	return minutes
}

// encodeWindow derives the half-open occupancy range backing the exclusion
// constraint. Whole-day stays span midnight to midnight; timed seatings span
// their clock window, with an overnight end rolling into the next day.
func encodeWindow(dateFrom, dateTo time.Time, startTime, endTime *string) (time.Time, time.Time, error) {
	startAt := time.Date(dateFrom.Year(), dateFrom.Month(), dateFrom.Day(), 0, 0, 0, 0, time.UTC)
	endAt := time.Date(dateTo.Year(), dateTo.Month(), dateTo.Day(), 0, 0, 0, 0, time.UTC)
	if startTime == nil {
		return startAt, endAt, nil
	}

	startMin, err := timeutil.ParseClock(*startTime)
	if err != nil {
		return time.Time{}, time.Time{}, scheduling.NewValidationError("start_time", err.Error())
	}
	endMin, err := timeutil.ParseClock(*endTime)
	if err != nil {
		return time.Time{}, time.Time{}, scheduling.NewValidationError("end_time", err.Error())
	}

	startAt = startAt.Add(time.Duration(startMin) * time.Minute)
	endAt = endAt.Add(time.Duration(endMin) * time.Minute)
	if !endAt.After(startAt) {
		endAt = endAt.Add(24 * time.Hour)
	}
	return startAt, endAt, nil
}

// generateReservationCode generates a unique guest-facing reservation code
func (s *service) generateReservationCode() (string, error) {
	timestamp := time.Now().Format("20060102")

	const letters = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
	randomPart := make([]byte, 6)

	for i := range randomPart {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(letters))))
		if err != nil {
			return "", err
		}
		randomPart[i] = letters[num.Int64()]
	}

	return fmt.Sprintf("RSV-%s-%s", timestamp, string(randomPart)), nil
}

func (s *service) publishEvent(ctx context.Context, r *Reservation, eventType notifications.EventType, previous, reason string) {
	if s.producer == nil {
		return
	}
	event := &notifications.ReservationEvent{
		Type:           eventType,
		ReservationID:  r.ID,
		Code:           r.Code,
		PropertyID:     r.PropertyID,
		ResourceID:     r.ResourceID,
		GuestName:      r.GuestName,
		GuestEmail:     r.GuestEmail,
		DateFrom:       timeutil.FormatDate(r.DateFrom),
		DateTo:         timeutil.FormatDate(r.DateTo),
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		Status:         r.Status,
		PreviousStatus: previous,
		Reason:         reason,
	}
	// Event delivery is best-effort; the committed state is authoritative.
	_ = s.producer.PublishReservationEvent(ctx, event)
}

func (s *service) invalidateScheduleCache(ctx context.Context, propertyID uuid.UUID) {
	if s.cacheService == nil {
		return
	}
	pattern := constants.ScheduleInvalidationPattern(propertyID.String())
	_ = s.cacheService.DeletePattern(ctx, pattern)
}

func eventTypeForAction(action Action) notifications.EventType {
	switch action {
	case ActionConfirm:
		return notifications.EventReservationConfirmed
	case ActionCheckin:
		return notifications.EventReservationCheckedIn
	case ActionCheckout:
		return notifications.EventReservationCheckedOut
	default:
		return notifications.EventReservationCancelled
	}
}

func reservationConflicts(list []Reservation) []scheduling.Conflict {
	conflicts := make([]scheduling.Conflict, len(list))
	for i, r := range list {
		conflicts[i] = scheduling.Conflict{
			ID:       r.ID.String(),
			Label:    fmt.Sprintf("reservation %s (%s)", r.Code, r.GuestName),
			DateFrom: timeutil.FormatDate(r.DateFrom),
			DateTo:   timeutil.FormatDate(r.DateTo),
		}
	}
	return conflicts
}
