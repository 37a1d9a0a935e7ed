package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventType identifies a reservation lifecycle event on the wire.
type EventType string

const (
	EventReservationCreated    EventType = "RESERVATION_CREATED"
	EventReservationConfirmed  EventType = "RESERVATION_CONFIRMED"
	EventReservationCheckedIn  EventType = "RESERVATION_CHECKED_IN"
	EventReservationCheckedOut EventType = "RESERVATION_CHECKED_OUT"
	EventReservationCancelled  EventType = "RESERVATION_CANCELLED"
	EventBlockCreated          EventType = "BLOCK_CREATED"
)

// ReservationEvent is the message published to Kafka whenever a reservation
// is created or changes status. Downstream consumers (guest email, channel
// managers, reporting) subscribe to the reservation-events topic.
type ReservationEvent struct {
	ID   uuid.UUID `json:"id"`
	Type EventType `json:"type"`

	ReservationID uuid.UUID `json:"reservation_id"`
	Code          string    `json:"code"`
	PropertyID    uuid.UUID `json:"property_id"`
	ResourceID    uuid.UUID `json:"resource_id"`

	GuestName  string `json:"guest_name"`
	GuestEmail string `json:"guest_email,omitempty"`

	DateFrom  string  `json:"date_from"`
	DateTo    string  `json:"date_to"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`

	Status         string `json:"status"`
	PreviousStatus string `json:"previous_status,omitempty"`
	Reason         string `json:"reason,omitempty"`

	OccurredAt time.Time `json:"occurred_at"`
}

// GetPartitionKey keys messages by reservation so every event for one
// reservation lands on the same partition, in order.
func (e *ReservationEvent) GetPartitionKey() string {
	return e.ReservationID.String()
}

func (e *ReservationEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}
