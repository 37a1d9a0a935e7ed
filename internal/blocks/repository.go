package blocks

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"staybook/internal/scheduling"
)

type Repository interface {
	Create(ctx context.Context, block *Block) error
	GetByID(ctx context.Context, id uuid.UUID) (*Block, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// ListInRange returns blocks whose inclusive date range intersects
	// [dateFrom, dateTo], optionally narrowed to one resource (property-wide
	// blocks always included).
	ListInRange(ctx context.Context, propertyID uuid.UUID, dateFrom, dateTo time.Time, resourceID *uuid.UUID) ([]Block, error)

	// FindOverlapping returns existing blocks on the same resource (or
	// property-wide) intersecting the inclusive range.
	FindOverlapping(ctx context.Context, propertyID uuid.UUID, resourceID *uuid.UUID, dateFrom, dateTo time.Time) ([]Block, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, block *Block) error {
	if err := r.db.WithContext(ctx).Create(block).Error; err != nil {
		return &scheduling.StoreError{Op: "create block", Err: err}
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Block, error) {
	var block Block
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&block).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &scheduling.NotFoundError{Entity: "block", ID: id.String()}
		}
		return nil, &scheduling.StoreError{Op: "get block", Err: err}
	}
	return &block, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&Block{}, "id = ?", id)
	if result.Error != nil {
		return &scheduling.StoreError{Op: "delete block", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return &scheduling.NotFoundError{Entity: "block", ID: id.String()}
	}
	return nil
}

func (r *repository) ListInRange(ctx context.Context, propertyID uuid.UUID, dateFrom, dateTo time.Time, resourceID *uuid.UUID) ([]Block, error) {
	query := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Where("date_from <= ? AND date_to >= ?", dateTo, dateFrom)
	if resourceID != nil {
		query = query.Where("(resource_id IS NULL OR resource_id = ?)", *resourceID)
	}

	var list []Block
	if err := query.Order("date_from ASC").Find(&list).Error; err != nil {
		return nil, &scheduling.StoreError{Op: "list blocks", Err: err}
	}
	return list, nil
}

func (r *repository) FindOverlapping(ctx context.Context, propertyID uuid.UUID, resourceID *uuid.UUID, dateFrom, dateTo time.Time) ([]Block, error) {
	query := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Where("date_from <= ? AND date_to >= ?", dateTo, dateFrom)
	if resourceID != nil {
		query = query.Where("(resource_id IS NULL OR resource_id = ?)", *resourceID)
	}

	var list []Block
	if err := query.Find(&list).Error; err != nil {
		return nil, &scheduling.StoreError{Op: "find overlapping blocks", Err: err}
	}
	return list, nil
}
