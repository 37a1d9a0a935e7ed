package reservations

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"staybook/internal/scheduling"
)

type Repository interface {
	Create(ctx context.Context, reservation *Reservation) error
	GetByID(ctx context.Context, id uuid.UUID) (*Reservation, error)
	GetByCode(ctx context.Context, code string) (*Reservation, error)
	List(ctx context.Context, filter ListFilter) ([]Reservation, error)

	// FindOverlapping returns occupying reservations on the resource whose
	// encoded half-open range intersects [startAt, endAt).
	FindOverlapping(ctx context.Context, resourceID uuid.UUID, startAt, endAt time.Time) ([]Reservation, error)

	// ListInRange returns occupying reservations for a property intersecting
	// the half-open instant range, for the calendar aggregator.
	ListInRange(ctx context.Context, propertyID uuid.UUID, startAt, endAt time.Time, resourceID *uuid.UUID) ([]Reservation, error)

	// UpdateWithLock re-reads the reservation under FOR UPDATE inside a
	// transaction and hands it to fn. fn mutates the record and may write
	// additional rows on the same tx; a non-nil error rolls everything back.
	UpdateWithLock(ctx context.Context, id uuid.UUID, fn func(tx *gorm.DB, reservation *Reservation) error) (*Reservation, error)
}

// ListFilter narrows reservation listings. Zero values mean "no filter".
type ListFilter struct {
	PropertyID uuid.UUID
	ResourceID *uuid.UUID
	Status     string
	DateFrom   *time.Time
	DateTo     *time.Time
	GuestEmail string
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, reservation *Reservation) error {
	err := r.db.WithContext(ctx).Create(reservation).Error
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23P01" {
		// Lost the race past the advisory pre-check. Re-query so the caller
		// gets the same conflict report either way.
		overlapping, qerr := r.FindOverlapping(ctx, reservation.ResourceID, reservation.StartAt, reservation.EndAt)
		if qerr != nil {
			return qerr
		}
		return &scheduling.ConflictError{Conflicts: reservationConflicts(overlapping)}
	}
	return &scheduling.StoreError{Op: "create reservation", Err: err}
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	var reservation Reservation
	err := r.db.WithContext(ctx).Preload("Resource").Where("id = ?", id).First(&reservation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &scheduling.NotFoundError{Entity: "reservation", ID: id.String()}
		}
		return nil, &scheduling.StoreError{Op: "get reservation", Err: err}
	}
	return &reservation, nil
}

func (r *repository) GetByCode(ctx context.Context, code string) (*Reservation, error) {
	var reservation Reservation
	err := r.db.WithContext(ctx).Preload("Resource").Where("code = ?", code).First(&reservation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &scheduling.NotFoundError{Entity: "reservation", ID: code}
		}
		return nil, &scheduling.StoreError{Op: "get reservation by code", Err: err}
	}
	return &reservation, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Reservation, error) {
	query := r.db.WithContext(ctx).Model(&Reservation{})
	if filter.PropertyID != uuid.Nil {
		query = query.Where("property_id = ?", filter.PropertyID)
	}
	if filter.ResourceID != nil {
		query = query.Where("resource_id = ?", *filter.ResourceID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.DateFrom != nil {
		query = query.Where("date_to >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("date_from <= ?", *filter.DateTo)
	}
	if filter.GuestEmail != "" {
		query = query.Where("guest_email = ?", filter.GuestEmail)
	}

	var list []Reservation
	if err := query.Order("start_at ASC").Find(&list).Error; err != nil {
		return nil, &scheduling.StoreError{Op: "list reservations", Err: err}
	}
	return list, nil
}

func (r *repository) FindOverlapping(ctx context.Context, resourceID uuid.UUID, startAt, endAt time.Time) ([]Reservation, error) {
	var list []Reservation
	err := r.db.WithContext(ctx).
		Where("resource_id = ?", resourceID).
		Where("status <> ?", StatusCancelled).
		Where("start_at < ? AND end_at > ?", endAt, startAt).
		Order("start_at ASC").
		Find(&list).Error
	if err != nil {
		return nil, &scheduling.StoreError{Op: "find overlapping reservations", Err: err}
	}
	return list, nil
}

func (r *repository) ListInRange(ctx context.Context, propertyID uuid.UUID, startAt, endAt time.Time, resourceID *uuid.UUID) ([]Reservation, error) {
	query := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Where("status <> ?", StatusCancelled).
		Where("start_at < ? AND end_at > ?", endAt, startAt)
	if resourceID != nil {
		query = query.Where("resource_id = ?", *resourceID)
	}

	var list []Reservation
	if err := query.Order("start_at ASC").Find(&list).Error; err != nil {
		return nil, &scheduling.StoreError{Op: "list reservations in range", Err: err}
	}
	return list, nil
}

func (r *repository) UpdateWithLock(ctx context.Context, id uuid.UUID, fn func(tx *gorm.DB, reservation *Reservation) error) (*Reservation, error) {
	var updated *Reservation
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reservation Reservation
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&reservation).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &scheduling.NotFoundError{Entity: "reservation", ID: id.String()}
			}
			return &scheduling.StoreError{Op: "lock reservation", Err: err}
		}

		if err := fn(tx, &reservation); err != nil {
			return err
		}

		if err := tx.Save(&reservation).Error; err != nil {
			return &scheduling.StoreError{Op: "update reservation", Err: err}
		}
		updated = &reservation
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
