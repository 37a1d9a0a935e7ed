package blocks

import (
	"time"

	"github.com/google/uuid"
)

// Kind classifies a blocked range. Full-day and holiday blocks with no time
// window close the entire day regardless of weekly hours.
type Kind string

const (
	KindFullDay      Kind = "full_day"
	KindHoliday      Kind = "holiday"
	KindPrivateEvent Kind = "private_event"
	KindMaintenance  Kind = "maintenance"
	KindOther        Kind = "other"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindFullDay, KindHoliday, KindPrivateEvent, KindMaintenance, KindOther:
		return true
	}
	return false
}

// ClosesWholeDay reports whether a block of this kind with no time window
// shuts the day completely.
func (k Kind) ClosesWholeDay() bool {
	return k == KindFullDay || k == KindHoliday
}

// Block removes availability for part or all of a date range. A nil
// ResourceID makes it property-wide; StartTime/EndTime narrow it to a
// [start, end) clock window; SectionID/TableID narrow it to a sub-unit
// ("apply if null, else must match").
type Block struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PropertyID uuid.UUID  `gorm:"type:uuid;index;not null" json:"property_id"`
	ResourceID *uuid.UUID `gorm:"type:uuid;index" json:"resource_id,omitempty"`
	SectionID  *uuid.UUID `gorm:"type:uuid" json:"section_id,omitempty"`
	TableID    *uuid.UUID `gorm:"type:uuid" json:"table_id,omitempty"`
	DateFrom   time.Time  `gorm:"type:date;not null;index" json:"-"`
	DateTo     time.Time  `gorm:"type:date;not null;index" json:"-"`
	StartTime  *string    `gorm:"type:varchar(5)" json:"start_time,omitempty"`
	EndTime    *string    `gorm:"type:varchar(5)" json:"end_time,omitempty"`
	Kind       Kind       `gorm:"type:varchar(20);not null;check:kind IN ('full_day', 'holiday', 'private_event', 'maintenance', 'other')" json:"kind"`
	Reason     string     `gorm:"not null" json:"reason"`
	Notes      string     `json:"notes,omitempty"`
	CreatedBy  string     `json:"created_by,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (Block) TableName() string {
	return "blocked_ranges"
}

// CoversDate reports whether the block's inclusive date range contains the
// given calendar date.
func (b *Block) CoversDate(date time.Time) bool {
	return !date.Before(b.DateFrom) && !date.After(b.DateTo)
}

// AppliesToResource reports whether the block targets the given resource.
// Property-wide blocks apply to every resource of the property.
func (b *Block) AppliesToResource(resourceID uuid.UUID) bool {
	return b.ResourceID == nil || *b.ResourceID == resourceID
}

// HasTimeWindow reports whether the block is narrowed to a clock window on
// at least one side.
func (b *Block) HasTimeWindow() bool {
	return b.StartTime != nil || b.EndTime != nil
}
