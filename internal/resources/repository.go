package resources

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"staybook/internal/scheduling"
)

type Repository interface {
	// Property operations
	CreateProperty(ctx context.Context, property *Property) error
	GetPropertyByID(ctx context.Context, id uuid.UUID) (*Property, error)
	GetPropertyBySlug(ctx context.Context, slug string) (*Property, error)
	UpdateProperty(ctx context.Context, property *Property) error

	// Resource operations
	CreateResource(ctx context.Context, resource *Resource) error
	GetResourceByID(ctx context.Context, id uuid.UUID) (*Resource, error)
	GetResourcesByProperty(ctx context.Context, propertyID uuid.UUID, activeOnly bool) ([]Resource, error)
	UpdateResource(ctx context.Context, resource *Resource) error
	DeleteResource(ctx context.Context, id uuid.UUID) error

	// Section operations
	CreateSection(ctx context.Context, section *Section) error
	GetSectionsByProperty(ctx context.Context, propertyID uuid.UUID) ([]Section, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateProperty(ctx context.Context, property *Property) error {
	if err := r.db.WithContext(ctx).Create(property).Error; err != nil {
		return &scheduling.StoreError{Op: "create property", Err: err}
	}
	return nil
}

func (r *repository) GetPropertyByID(ctx context.Context, id uuid.UUID) (*Property, error) {
	var property Property
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&property).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &scheduling.NotFoundError{Entity: "property", ID: id.String()}
		}
		return nil, &scheduling.StoreError{Op: "get property", Err: err}
	}
	return &property, nil
}

func (r *repository) GetPropertyBySlug(ctx context.Context, slug string) (*Property, error) {
	var property Property
	err := r.db.WithContext(ctx).Where("slug = ? AND is_active = true", slug).First(&property).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &scheduling.NotFoundError{Entity: "property", ID: slug}
		}
		return nil, &scheduling.StoreError{Op: "get property by slug", Err: err}
	}
	return &property, nil
}

func (r *repository) UpdateProperty(ctx context.Context, property *Property) error {
	if err := r.db.WithContext(ctx).Save(property).Error; err != nil {
		return &scheduling.StoreError{Op: "update property", Err: err}
	}
	return nil
}

func (r *repository) CreateResource(ctx context.Context, resource *Resource) error {
	if err := r.db.WithContext(ctx).Create(resource).Error; err != nil {
		return &scheduling.StoreError{Op: "create resource", Err: err}
	}
	return nil
}

func (r *repository) GetResourceByID(ctx context.Context, id uuid.UUID) (*Resource, error) {
	var resource Resource
	err := r.db.WithContext(ctx).
		Preload("Property").
		Where("id = ?", id).
		First(&resource).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &scheduling.NotFoundError{Entity: "resource", ID: id.String()}
		}
		return nil, &scheduling.StoreError{Op: "get resource", Err: err}
	}
	return &resource, nil
}

func (r *repository) GetResourcesByProperty(ctx context.Context, propertyID uuid.UUID, activeOnly bool) ([]Resource, error) {
	query := r.db.WithContext(ctx).Where("property_id = ?", propertyID)
	if activeOnly {
		query = query.Where("is_active = true")
	}

	var list []Resource
	if err := query.Order("name ASC").Find(&list).Error; err != nil {
		return nil, &scheduling.StoreError{Op: "list resources", Err: err}
	}
	return list, nil
}

func (r *repository) UpdateResource(ctx context.Context, resource *Resource) error {
	if err := r.db.WithContext(ctx).Save(resource).Error; err != nil {
		return &scheduling.StoreError{Op: "update resource", Err: err}
	}
	return nil
}

func (r *repository) DeleteResource(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&Resource{}, "id = ?", id)
	if result.Error != nil {
		return &scheduling.StoreError{Op: "delete resource", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return &scheduling.NotFoundError{Entity: "resource", ID: id.String()}
	}
	return nil
}

func (r *repository) CreateSection(ctx context.Context, section *Section) error {
	if err := r.db.WithContext(ctx).Create(section).Error; err != nil {
		return &scheduling.StoreError{Op: "create section", Err: err}
	}
	return nil
}

func (r *repository) GetSectionsByProperty(ctx context.Context, propertyID uuid.UUID) ([]Section, error) {
	var list []Section
	err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("name ASC").
		Find(&list).Error
	if err != nil {
		return nil, &scheduling.StoreError{Op: "list sections", Err: err}
	}
	return list, nil
}
