package resources

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"staybook/internal/scheduling"
	"staybook/pkg/timeutil"
)

type Service interface {
	CreateProperty(ctx context.Context, req CreatePropertyRequest) (*Property, error)
	GetProperty(ctx context.Context, id uuid.UUID) (*Property, error)
	UpdateProperty(ctx context.Context, id uuid.UUID, req UpdatePropertyRequest) (*Property, error)

	CreateResource(ctx context.Context, req CreateResourceRequest) (*Resource, error)
	GetResource(ctx context.Context, id uuid.UUID) (*Resource, error)
	ListResources(ctx context.Context, propertyID uuid.UUID, activeOnly bool) ([]Resource, error)
	UpdateResource(ctx context.Context, id uuid.UUID, req UpdateResourceRequest) (*Resource, error)
	DeleteResource(ctx context.Context, id uuid.UUID) error

	CreateSection(ctx context.Context, req CreateSectionRequest) (*Section, error)
	ListSections(ctx context.Context, propertyID uuid.UUID) ([]Section, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateProperty(ctx context.Context, req CreatePropertyRequest) (*Property, error) {
	if err := validateTimezone(req.Timezone); err != nil {
		return nil, err
	}
	if err := validateWeeklyHours(req.WeeklyHours); err != nil {
		return nil, err
	}

	property := &Property{
		Name:        req.Name,
		Slug:        req.Slug,
		Timezone:    req.Timezone,
		WeeklyHours: req.WeeklyHours,
		IsActive:    true,
	}
	if err := s.repo.CreateProperty(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *service) GetProperty(ctx context.Context, id uuid.UUID) (*Property, error) {
	return s.repo.GetPropertyByID(ctx, id)
}

func (s *service) UpdateProperty(ctx context.Context, id uuid.UUID, req UpdatePropertyRequest) (*Property, error) {
	property, err := s.repo.GetPropertyByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		property.Name = *req.Name
	}
	if req.Timezone != nil {
		if err := validateTimezone(*req.Timezone); err != nil {
			return nil, err
		}
		property.Timezone = *req.Timezone
	}
	if req.WeeklyHours != nil {
		if err := validateWeeklyHours(*req.WeeklyHours); err != nil {
			return nil, err
		}
		property.WeeklyHours = *req.WeeklyHours
	}
	if req.IsActive != nil {
		property.IsActive = *req.IsActive
	}

	if err := s.repo.UpdateProperty(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *service) CreateResource(ctx context.Context, req CreateResourceRequest) (*Resource, error) {
	if _, err := s.repo.GetPropertyByID(ctx, req.PropertyID); err != nil {
		return nil, err
	}
	if req.Timezone != "" {
		if err := validateTimezone(req.Timezone); err != nil {
			return nil, err
		}
	}
	if err := validateWeeklyHours(req.WeeklyHours); err != nil {
		return nil, err
	}

	kind := ResourceKind(req.Kind)
	if !kind.IsValid() {
		return nil, scheduling.NewValidationError("kind", "must be room or table")
	}

	currency := req.Currency
	if currency == "" {
		currency = "EUR"
	}

	resource := &Resource{
		PropertyID:  req.PropertyID,
		SectionID:   req.SectionID,
		Name:        req.Name,
		Kind:        kind,
		Capacity:    req.Capacity,
		BaseRate:    req.BaseRate,
		Currency:    currency,
		Timezone:    req.Timezone,
		WeeklyHours: req.WeeklyHours,
		IsActive:    true,
	}
	if err := s.repo.CreateResource(ctx, resource); err != nil {
		return nil, err
	}
	return resource, nil
}

func (s *service) GetResource(ctx context.Context, id uuid.UUID) (*Resource, error) {
	return s.repo.GetResourceByID(ctx, id)
}

func (s *service) ListResources(ctx context.Context, propertyID uuid.UUID, activeOnly bool) ([]Resource, error) {
	return s.repo.GetResourcesByProperty(ctx, propertyID, activeOnly)
}

func (s *service) UpdateResource(ctx context.Context, id uuid.UUID, req UpdateResourceRequest) (*Resource, error) {
	resource, err := s.repo.GetResourceByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		resource.Name = *req.Name
	}
	if req.SectionID != nil {
		resource.SectionID = req.SectionID
	}
	if req.Capacity != nil {
		resource.Capacity = *req.Capacity
	}
	if req.BaseRate != nil {
		resource.BaseRate = *req.BaseRate
	}
	if req.Timezone != nil {
		if *req.Timezone != "" {
			if err := validateTimezone(*req.Timezone); err != nil {
				return nil, err
			}
		}
		resource.Timezone = *req.Timezone
	}
	if req.WeeklyHours != nil {
		if err := validateWeeklyHours(*req.WeeklyHours); err != nil {
			return nil, err
		}
		resource.WeeklyHours = *req.WeeklyHours
	}
	if req.IsActive != nil {
		resource.IsActive = *req.IsActive
	}

	if err := s.repo.UpdateResource(ctx, resource); err != nil {
		return nil, err
	}
	return resource, nil
}

func (s *service) DeleteResource(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteResource(ctx, id)
}

func (s *service) CreateSection(ctx context.Context, req CreateSectionRequest) (*Section, error) {
	if _, err := s.repo.GetPropertyByID(ctx, req.PropertyID); err != nil {
		return nil, err
	}

	section := &Section{
		PropertyID: req.PropertyID,
		Name:       req.Name,
	}
	if err := s.repo.CreateSection(ctx, section); err != nil {
		return nil, err
	}
	return section, nil
}

func (s *service) ListSections(ctx context.Context, propertyID uuid.UUID) ([]Section, error) {
	return s.repo.GetSectionsByProperty(ctx, propertyID)
}

func validateTimezone(zone string) error {
	if _, err := time.LoadLocation(zone); err != nil {
		return scheduling.NewValidationError("timezone", fmt.Sprintf("unknown IANA zone %q", zone))
	}
	return nil
}

var weekdayKeys = map[string]bool{
	"mon": true, "tue": true, "wed": true, "thu": true,
	"fri": true, "sat": true, "sun": true,
}

func validateWeeklyHours(hours WeeklyHours) error {
	for day, entry := range hours {
		if !weekdayKeys[day] {
			return scheduling.NewValidationError("weekly_hours", fmt.Sprintf("unknown weekday key %q", day))
		}
		if entry.Closed {
			continue
		}
		if entry.Open == "" && entry.Close == "" {
			continue
		}
		if _, err := timeutil.ParseClock(entry.Open); err != nil {
			return scheduling.NewValidationError("weekly_hours", fmt.Sprintf("%s open: %v", day, err))
		}
		if _, err := timeutil.ParseClock(entry.Close); err != nil {
			return scheduling.NewValidationError("weekly_hours", fmt.Sprintf("%s close: %v", day, err))
		}
	}
	return nil
}
