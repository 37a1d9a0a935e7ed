package pricing

import (
	"time"

	"github.com/google/uuid"

	"staybook/pkg/timeutil"
)

type CreatePriceRequest struct {
	PropertyID uuid.UUID  `json:"property_id" binding:"required"`
	ResourceID *uuid.UUID `json:"resource_id,omitempty"`
	Label      string     `json:"label" binding:"required,min=2,max=120"`
	DateFrom   string     `json:"date_from" binding:"required"`
	DateTo     string     `json:"date_to" binding:"required"`
	Amount     float64    `json:"amount" binding:"required,min=0"`
	Currency   string     `json:"currency,omitempty" binding:"omitempty,len=3"`
}

type ListPricesQuery struct {
	PropertyID uuid.UUID
	ResourceID *uuid.UUID
	DateFrom   string
	DateTo     string
}

// PriceResponse renders dates as ISO strings for the wire contract.
type PriceResponse struct {
	ID         uuid.UUID  `json:"id"`
	PropertyID uuid.UUID  `json:"property_id"`
	ResourceID *uuid.UUID `json:"resource_id,omitempty"`
	Label      string     `json:"label"`
	DateFrom   string     `json:"date_from"`
	DateTo     string     `json:"date_to"`
	Amount     float64    `json:"amount"`
	Currency   string     `json:"currency"`
	CreatedAt  time.Time  `json:"created_at"`
}

func toPriceResponse(p *SeasonalPrice) *PriceResponse {
	return &PriceResponse{
		ID:         p.ID,
		PropertyID: p.PropertyID,
		ResourceID: p.ResourceID,
		Label:      p.Label,
		DateFrom:   timeutil.FormatDate(p.DateFrom),
		DateTo:     timeutil.FormatDate(p.DateTo),
		Amount:     p.Amount,
		Currency:   p.Currency,
		CreatedAt:  p.CreatedAt,
	}
}

// ToResponses converts raw override records for callers outside the package.
func ToResponses(list []SeasonalPrice) []PriceResponse {
	out := make([]PriceResponse, len(list))
	for i := range list {
		out[i] = *toPriceResponse(&list[i])
	}
	return out
}
