package blocks

import (
	"time"

	"github.com/google/uuid"
)

type CreateBlockRequest struct {
	PropertyID uuid.UUID  `json:"property_id" binding:"required"`
	ResourceID *uuid.UUID `json:"resource_id,omitempty"`
	SectionID  *uuid.UUID `json:"section_id,omitempty"`
	TableID    *uuid.UUID `json:"table_id,omitempty"`
	DateFrom   string     `json:"date_from" binding:"required"`
	DateTo     string     `json:"date_to" binding:"required"`
	StartTime  *string    `json:"start_time,omitempty"`
	EndTime    *string    `json:"end_time,omitempty"`
	Kind       string     `json:"kind" binding:"required,oneof=full_day holiday private_event maintenance other"`
	Reason     string     `json:"reason" binding:"required,min=2,max=200"`
	Notes      string     `json:"notes,omitempty" binding:"omitempty,max=1000"`
	CreatedBy  string     `json:"created_by,omitempty"`
}

type ListBlocksQuery struct {
	PropertyID uuid.UUID
	ResourceID *uuid.UUID
	DateFrom   string
	DateTo     string
}

// BlockResponse renders dates as ISO strings for the wire contract.
type BlockResponse struct {
	ID         uuid.UUID  `json:"id"`
	PropertyID uuid.UUID  `json:"property_id"`
	ResourceID *uuid.UUID `json:"resource_id,omitempty"`
	SectionID  *uuid.UUID `json:"section_id,omitempty"`
	TableID    *uuid.UUID `json:"table_id,omitempty"`
	DateFrom   string     `json:"date_from"`
	DateTo     string     `json:"date_to"`
	StartTime  *string    `json:"start_time,omitempty"`
	EndTime    *string    `json:"end_time,omitempty"`
	Kind       Kind       `json:"kind"`
	Reason     string     `json:"reason"`
	Notes      string     `json:"notes,omitempty"`
	CreatedBy  string     `json:"created_by,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func toBlockResponse(b *Block) *BlockResponse {
	return &BlockResponse{
		ID:         b.ID,
		PropertyID: b.PropertyID,
		ResourceID: b.ResourceID,
		SectionID:  b.SectionID,
		TableID:    b.TableID,
		DateFrom:   b.DateFrom.Format("2006-01-02"),
		DateTo:     b.DateTo.Format("2006-01-02"),
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		Kind:       b.Kind,
		Reason:     b.Reason,
		Notes:      b.Notes,
		CreatedBy:  b.CreatedBy,
		CreatedAt:  b.CreatedAt,
	}
}

// ToResponses converts raw block records for callers outside the package.
func ToResponses(list []Block) []BlockResponse {
	out := make([]BlockResponse, len(list))
	for i := range list {
		out[i] = *toBlockResponse(&list[i])
	}
	return out
}
