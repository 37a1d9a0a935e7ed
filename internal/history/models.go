package history

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one row in a reservation's audit trail. Written in the same
// transaction as the status change it records.
type Entry struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ReservationID uuid.UUID `gorm:"type:uuid;index;not null" json:"reservation_id"`
	FromStatus    string    `gorm:"type:varchar(20);not null" json:"from_status"`
	ToStatus      string    `gorm:"type:varchar(20);not null" json:"to_status"`
	Action        string    `gorm:"type:varchar(20);not null" json:"action"`
	Reason        string    `gorm:"type:text" json:"reason,omitempty"`
	Actor         string    `gorm:"type:varchar(200)" json:"actor,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName sets the table name for Entry
func (Entry) TableName() string {
	return "reservation_history"
}
