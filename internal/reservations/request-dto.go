package reservations

import (
	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	PropertyID uuid.UUID `json:"property_id" validate:"required"`
	ResourceID uuid.UUID `json:"resource_id" validate:"required"`

	GuestName  string `json:"guest_name" validate:"required,min=2,max=200"`
	GuestEmail string `json:"guest_email,omitempty" validate:"omitempty,email"`
	GuestPhone string `json:"guest_phone,omitempty" validate:"omitempty,max=30"`
	PartySize  int    `json:"party_size,omitempty" validate:"omitempty,min=1,max=500"`

	DateFrom  string  `json:"date_from" validate:"required"`
	DateTo    string  `json:"date_to" validate:"required"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`

	Source          string `json:"source,omitempty" validate:"omitempty,oneof=direct phone walk_in partner"`
	SpecialRequests string `json:"special_requests,omitempty" validate:"omitempty,max=1000"`
}

type ApplyActionRequest struct {
	Action string `json:"action" validate:"required,oneof=confirm decline checkin checkout cancel"`
	Reason string `json:"reason,omitempty" validate:"omitempty,max=500"`
	Actor  string `json:"actor,omitempty" validate:"omitempty,max=200"`
}
