package pricing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"staybook/internal/scheduling"
)

type Repository interface {
	Create(ctx context.Context, price *SeasonalPrice) error
	GetByID(ctx context.Context, id uuid.UUID) (*SeasonalPrice, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// ListInRange returns overrides whose inclusive date range intersects
	// [dateFrom, dateTo], optionally narrowed to one resource (property-wide
	// overrides always included).
	ListInRange(ctx context.Context, propertyID uuid.UUID, dateFrom, dateTo time.Time, resourceID *uuid.UUID) ([]SeasonalPrice, error)

	// ListForResource returns overrides applying to a resource in a range,
	// property-wide ones included.
	ListForResource(ctx context.Context, resourceID uuid.UUID, dateFrom, dateTo time.Time) ([]SeasonalPrice, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, price *SeasonalPrice) error {
	if err := r.db.WithContext(ctx).Create(price).Error; err != nil {
		return &scheduling.StoreError{Op: "create seasonal price", Err: err}
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*SeasonalPrice, error) {
	var price SeasonalPrice
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&price).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &scheduling.NotFoundError{Entity: "seasonal price", ID: id.String()}
		}
		return nil, &scheduling.StoreError{Op: "get seasonal price", Err: err}
	}
	return &price, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&SeasonalPrice{}, "id = ?", id)
	if result.Error != nil {
		return &scheduling.StoreError{Op: "delete seasonal price", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return &scheduling.NotFoundError{Entity: "seasonal price", ID: id.String()}
	}
	return nil
}

func (r *repository) ListInRange(ctx context.Context, propertyID uuid.UUID, dateFrom, dateTo time.Time, resourceID *uuid.UUID) ([]SeasonalPrice, error) {
	query := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Where("date_from <= ? AND date_to >= ?", dateTo, dateFrom)
	if resourceID != nil {
		query = query.Where("(resource_id IS NULL OR resource_id = ?)", *resourceID)
	}

	var list []SeasonalPrice
	if err := query.Order("date_from ASC").Find(&list).Error; err != nil {
		return nil, &scheduling.StoreError{Op: "list seasonal prices", Err: err}
	}
	return list, nil
}

func (r *repository) ListForResource(ctx context.Context, resourceID uuid.UUID, dateFrom, dateTo time.Time) ([]SeasonalPrice, error) {
	var list []SeasonalPrice
	err := r.db.WithContext(ctx).
		Where("(resource_id IS NULL OR resource_id = ?)", resourceID).
		Where("date_from <= ? AND date_to >= ?", dateTo, dateFrom).
		Order("date_from ASC").
		Find(&list).Error
	if err != nil {
		return nil, &scheduling.StoreError{Op: "list seasonal prices for resource", Err: err}
	}
	return list, nil
}
