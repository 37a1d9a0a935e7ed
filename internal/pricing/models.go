package pricing

import (
	"time"

	"github.com/google/uuid"
)

// SeasonalPrice overrides a resource's base rate for an inclusive date range.
// A nil ResourceID applies the override property-wide; a resource-scoped
// override wins over a property-wide one on the same date. Informational
// only: prices never gate availability.
type SeasonalPrice struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PropertyID uuid.UUID  `gorm:"type:uuid;index;not null" json:"property_id"`
	ResourceID *uuid.UUID `gorm:"type:uuid;index" json:"resource_id,omitempty"`
	Label      string     `gorm:"not null" json:"label"`
	DateFrom   time.Time  `gorm:"type:date;not null;index" json:"-"`
	DateTo     time.Time  `gorm:"type:date;not null;index" json:"-"`
	Amount     float64    `gorm:"not null" json:"amount"`
	Currency   string     `gorm:"type:varchar(3);default:'EUR'" json:"currency"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (SeasonalPrice) TableName() string {
	return "seasonal_prices"
}

// CoversDate reports whether the override's inclusive date range contains
// the given calendar date.
func (p *SeasonalPrice) CoversDate(date time.Time) bool {
	return !date.Before(p.DateFrom) && !date.After(p.DateTo)
}
