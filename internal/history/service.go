package history

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service interface {
	RecordTx(tx *gorm.DB, entry Entry) error
	ListForReservation(ctx context.Context, reservationID uuid.UUID) ([]Entry, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) RecordTx(tx *gorm.DB, entry Entry) error {
	return s.repo.CreateTx(tx, &entry)
}

func (s *service) ListForReservation(ctx context.Context, reservationID uuid.UUID) ([]Entry, error) {
	return s.repo.ListByReservation(ctx, reservationID)
}
