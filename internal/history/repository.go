package history

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"staybook/internal/scheduling"
)

type Repository interface {
	// CreateTx writes an entry on the caller's transaction so the audit row
	// commits or rolls back together with the status change.
	CreateTx(tx *gorm.DB, entry *Entry) error
	ListByReservation(ctx context.Context, reservationID uuid.UUID) ([]Entry, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateTx(tx *gorm.DB, entry *Entry) error {
	if err := tx.Create(entry).Error; err != nil {
		return &scheduling.StoreError{Op: "record history entry", Err: err}
	}
	return nil
}

func (r *repository) ListByReservation(ctx context.Context, reservationID uuid.UUID) ([]Entry, error) {
	var list []Entry
	err := r.db.WithContext(ctx).
		Where("reservation_id = ?", reservationID).
		Order("created_at ASC").
		Find(&list).Error
	if err != nil {
		return nil, &scheduling.StoreError{Op: "list history entries", Err: err}
	}
	return list, nil
}
