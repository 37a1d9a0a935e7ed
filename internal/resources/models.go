package resources

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ResourceKind distinguishes the two bookable unit types.
type ResourceKind string

const (
	KindRoom  ResourceKind = "room"
	KindTable ResourceKind = "table"
)

func (k ResourceKind) IsValid() bool {
	return k == KindRoom || k == KindTable
}

// DayHours is one weekday entry of a weekly-hours map. A close earlier than
// open denotes an overnight window that closes after midnight.
type DayHours struct {
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
	Closed bool   `json:"closed,omitempty"`
}

// WeeklyHours maps weekday keys (mon..sun) to hours. Once any day is
// configured, a missing day means closed; a fully unconfigured schedule
// falls back to the default hours instead. Stored as JSONB.
type WeeklyHours map[string]DayHours

func (h WeeklyHours) Value() (driver.Value, error) {
	if h == nil {
		return nil, nil
	}
	return json.Marshal(h)
}

func (h *WeeklyHours) Scan(value interface{}) error {
	if value == nil {
		*h = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported weekly hours column type %T", value)
	}
	return json.Unmarshal(raw, h)
}

// Property is an owning location: a hotel, a restaurant, a wellness studio.
// Created by an external onboarding flow; the engine only reads it.
type Property struct {
	ID          uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string      `gorm:"not null" json:"name"`
	Slug        string      `gorm:"uniqueIndex;not null" json:"slug"`
	Timezone    string      `gorm:"not null" json:"timezone"`
	WeeklyHours WeeklyHours `gorm:"type:jsonb" json:"weekly_hours,omitempty"`
	IsActive    bool        `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (Property) TableName() string {
	return "properties"
}

// Section groups table resources inside a property (terrace, main room).
type Section struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PropertyID uuid.UUID `gorm:"type:uuid;index;not null" json:"property_id"`
	Name       string    `gorm:"not null" json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Section) TableName() string {
	return "sections"
}

// Resource is a bookable unit: a room for stays or a table for seatings.
type Resource struct {
	ID          uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PropertyID  uuid.UUID    `gorm:"type:uuid;index;not null" json:"property_id"`
	SectionID   *uuid.UUID   `gorm:"type:uuid;index" json:"section_id,omitempty"`
	Name        string       `gorm:"not null" json:"name"`
	Kind        ResourceKind `gorm:"type:varchar(10);not null;check:kind IN ('room', 'table')" json:"kind"`
	Capacity    int          `gorm:"not null;default:2" json:"capacity"`
	BaseRate    float64      `gorm:"not null;default:0" json:"base_rate"`
	Currency    string       `gorm:"type:varchar(3);default:'EUR'" json:"currency"`
	Timezone    string       `json:"timezone,omitempty"`
	WeeklyHours WeeklyHours  `gorm:"type:jsonb" json:"weekly_hours,omitempty"`
	IsActive    bool         `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`

	Property *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE;"`
}

func (Resource) TableName() string {
	return "resources"
}

// EffectiveTimezone resolves the resource's zone, falling back to the owning
// property and then to the supplied default.
func (r *Resource) EffectiveTimezone(fallback string) string {
	if r.Timezone != "" {
		return r.Timezone
	}
	if r.Property != nil && r.Property.Timezone != "" {
		return r.Property.Timezone
	}
	return fallback
}

// HoursFor returns the weekly-hours entry for a weekday key, consulting the
// resource's own schedule first and the property's second. The second return
// reports whether any entry was configured.
func (r *Resource) HoursFor(dayKey string) (DayHours, bool) {
	if day, ok := r.WeeklyHours[dayKey]; ok {
		return day, true
	}
	if r.Property != nil {
		if day, ok := r.Property.WeeklyHours[dayKey]; ok {
			return day, true
		}
	}
	return DayHours{}, false
}

// HasConfiguredHours reports whether any weekly schedule exists on the
// resource or its property.
func (r *Resource) HasConfiguredHours() bool {
	if len(r.WeeklyHours) > 0 {
		return true
	}
	return r.Property != nil && len(r.Property.WeeklyHours) > 0
}
