package reservations

import (
	"time"

	"github.com/google/uuid"

	"staybook/pkg/timeutil"
)

// ReservationResponse renders dates as ISO strings for the wire contract.
type ReservationResponse struct {
	ID         uuid.UUID `json:"id"`
	Code       string    `json:"code"`
	PropertyID uuid.UUID `json:"property_id"`
	ResourceID uuid.UUID `json:"resource_id"`

	GuestName  string `json:"guest_name"`
	GuestEmail string `json:"guest_email,omitempty"`
	GuestPhone string `json:"guest_phone,omitempty"`
	PartySize  int    `json:"party_size"`

	DateFrom  string  `json:"date_from"`
	DateTo    string  `json:"date_to"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`

	Status string `json:"status"`
	Source string `json:"source"`

	SpecialRequests    string `json:"special_requests,omitempty"`
	CancellationReason string `json:"cancellation_reason,omitempty"`

	ActualCheckIn  *time.Time `json:"actual_check_in,omitempty"`
	ActualCheckOut *time.Time `json:"actual_check_out,omitempty"`

	RateAmount float64 `json:"rate_amount"`
	Currency   string  `json:"currency"`

	ResourceName string `json:"resource_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toReservationResponse(r *Reservation) *ReservationResponse {
	resp := &ReservationResponse{
		ID:                 r.ID,
		Code:               r.Code,
		PropertyID:         r.PropertyID,
		ResourceID:         r.ResourceID,
		GuestName:          r.GuestName,
		GuestEmail:         r.GuestEmail,
		GuestPhone:         r.GuestPhone,
		PartySize:          r.PartySize,
		DateFrom:           timeutil.FormatDate(r.DateFrom),
		DateTo:             timeutil.FormatDate(r.DateTo),
		StartTime:          r.StartTime,
		EndTime:            r.EndTime,
		Status:             r.Status,
		Source:             r.Source,
		SpecialRequests:    r.SpecialRequests,
		CancellationReason: r.CancellationReason,
		ActualCheckIn:      r.ActualCheckIn,
		ActualCheckOut:     r.ActualCheckOut,
		RateAmount:         r.RateAmount,
		Currency:           r.Currency,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
	if r.Resource != nil {
		resp.ResourceName = r.Resource.Name
	}
	return resp
}

func toReservationResponses(list []Reservation) []ReservationResponse {
	out := make([]ReservationResponse, len(list))
	for i := range list {
		out[i] = *toReservationResponse(&list[i])
	}
	return out
}

// ReservationSummary is the compact shape calendar views render.
type ReservationSummary struct {
	ID         uuid.UUID `json:"id"`
	Code       string    `json:"code"`
	ResourceID uuid.UUID `json:"resource_id"`
	GuestName  string    `json:"guest_name"`
	PartySize  int       `json:"party_size"`
	DateFrom   string    `json:"date_from"`
	DateTo     string    `json:"date_to"`
	StartTime  *string   `json:"start_time,omitempty"`
	EndTime    *string   `json:"end_time,omitempty"`
	Status     string    `json:"status"`
}

func ToSummaries(list []Reservation) []ReservationSummary {
	out := make([]ReservationSummary, len(list))
	for i := range list {
		r := &list[i]
		out[i] = ReservationSummary{
			ID:         r.ID,
			Code:       r.Code,
			ResourceID: r.ResourceID,
			GuestName:  r.GuestName,
			PartySize:  r.PartySize,
			DateFrom:   timeutil.FormatDate(r.DateFrom),
			DateTo:     timeutil.FormatDate(r.DateTo),
			StartTime:  r.StartTime,
			EndTime:    r.EndTime,
			Status:     r.Status,
		}
	}
	return out
}
