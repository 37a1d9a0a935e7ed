package resources

import "github.com/google/uuid"

type CreatePropertyRequest struct {
	Name        string      `json:"name" binding:"required,min=2,max=120"`
	Slug        string      `json:"slug" binding:"required,min=2,max=60"`
	Timezone    string      `json:"timezone" binding:"required"`
	WeeklyHours WeeklyHours `json:"weekly_hours,omitempty"`
}

type UpdatePropertyRequest struct {
	Name        *string      `json:"name,omitempty" binding:"omitempty,min=2,max=120"`
	Timezone    *string      `json:"timezone,omitempty"`
	WeeklyHours *WeeklyHours `json:"weekly_hours,omitempty"`
	IsActive    *bool        `json:"is_active,omitempty"`
}

type CreateResourceRequest struct {
	PropertyID  uuid.UUID   `json:"property_id" binding:"required"`
	SectionID   *uuid.UUID  `json:"section_id,omitempty"`
	Name        string      `json:"name" binding:"required,min=1,max=60"`
	Kind        string      `json:"kind" binding:"required,oneof=room table"`
	Capacity    int         `json:"capacity" binding:"required,min=1,max=100"`
	BaseRate    float64     `json:"base_rate,omitempty" binding:"omitempty,min=0"`
	Currency    string      `json:"currency,omitempty" binding:"omitempty,len=3"`
	Timezone    string      `json:"timezone,omitempty"`
	WeeklyHours WeeklyHours `json:"weekly_hours,omitempty"`
}

type UpdateResourceRequest struct {
	Name        *string      `json:"name,omitempty" binding:"omitempty,min=1,max=60"`
	SectionID   *uuid.UUID   `json:"section_id,omitempty"`
	Capacity    *int         `json:"capacity,omitempty" binding:"omitempty,min=1,max=100"`
	BaseRate    *float64     `json:"base_rate,omitempty" binding:"omitempty,min=0"`
	Timezone    *string      `json:"timezone,omitempty"`
	WeeklyHours *WeeklyHours `json:"weekly_hours,omitempty"`
	IsActive    *bool        `json:"is_active,omitempty"`
}

type CreateSectionRequest struct {
	PropertyID uuid.UUID `json:"property_id" binding:"required"`
	Name       string    `json:"name" binding:"required,min=1,max=60"`
}
