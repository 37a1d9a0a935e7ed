package reservations

import (
	"time"

	"github.com/google/uuid"

	"staybook/internal/resources"
)

// Reservation is a guest's hold on one resource. DateFrom/DateTo carry the
// calendar dates and StartTime/EndTime the local wall-clock window (nil for
// whole-day stays). StartAt/EndAt are the derived half-open occupancy range
// backing the store-level exclusion constraint: date midnight UTC plus the
// clock minutes, so stays and timed seatings share one non-overlap rule.
type Reservation struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Code       string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"code"`
	PropertyID uuid.UUID `gorm:"type:uuid;index;not null" json:"property_id"`
	ResourceID uuid.UUID `gorm:"type:uuid;index;not null" json:"resource_id"`

	GuestName  string `gorm:"type:varchar(200);not null" json:"guest_name"`
	GuestEmail string `gorm:"type:varchar(254);index" json:"guest_email,omitempty"`
	GuestPhone string `gorm:"type:varchar(30)" json:"guest_phone,omitempty"`
	PartySize  int    `gorm:"not null;default:1" json:"party_size"`

	DateFrom  time.Time `gorm:"type:date;not null" json:"-"`
	DateTo    time.Time `gorm:"type:date;not null" json:"-"`
	StartTime *string   `gorm:"type:varchar(5)" json:"start_time,omitempty"`
	EndTime   *string   `gorm:"type:varchar(5)" json:"end_time,omitempty"`
	StartAt   time.Time `gorm:"type:timestamptz;not null;index" json:"-"`
	EndAt     time.Time `gorm:"type:timestamptz;not null" json:"-"`

	Status string `gorm:"type:varchar(20);check:status IN ('pending', 'pending_payment', 'confirmed', 'checked_in', 'checked_out', 'cancelled');default:'pending'" json:"status"`
	Source string `gorm:"type:varchar(30);default:'direct'" json:"source"`

	SpecialRequests    string `gorm:"type:text" json:"special_requests,omitempty"`
	CancellationReason string `gorm:"type:text" json:"cancellation_reason,omitempty"`

	ActualCheckIn  *time.Time `json:"actual_check_in,omitempty"`
	ActualCheckOut *time.Time `json:"actual_check_out,omitempty"`

	RateAmount float64 `gorm:"not null;default:0" json:"rate_amount"`
	Currency   string  `gorm:"type:varchar(3);default:'EUR'" json:"currency"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Resource *resources.Resource `json:"resource,omitempty" gorm:"foreignKey:ResourceID;constraint:OnDelete:RESTRICT;"`
}

// TableName sets the table name for Reservation
func (Reservation) TableName() string {
	return "reservations"
}

// CurrentStatus returns the status as its typed form.
func (r *Reservation) CurrentStatus() Status {
	return Status(r.Status)
}

// Occupies reports whether the reservation still counts against its
// resource's availability. Cancelled bookings release their dates; every
// other status, including checked_out, keeps the historical occupancy.
func (r *Reservation) Occupies() bool {
	return r.CurrentStatus() != StatusCancelled
}

// CoversDate reports whether the reservation occupies any part of the given
// calendar date. Works off the encoded half-open range, so a stay's checkout
// day and a turnover seating boundary do not count as occupied.
func (r *Reservation) CoversDate(date time.Time) bool {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)
	return r.StartAt.Before(dayEnd) && r.EndAt.After(dayStart)
}
