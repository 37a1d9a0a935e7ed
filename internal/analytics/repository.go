package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines the analytics repository interface
type Repository interface {
	GetPropertyStats(ctx context.Context, propertyID uuid.UUID, dateFrom, dateTo time.Time) (*PropertyStats, error)
	GetDailyStats(ctx context.Context, propertyID uuid.UUID, dateFrom, dateTo time.Time) ([]DailyStats, error)
	CountResources(ctx context.Context, propertyID uuid.UUID) (int64, error)
}

// repository implements the Repository interface
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new analytics repository instance
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

type statusCount struct {
	Status string
	Count  int
}

func (r *repository) GetPropertyStats(ctx context.Context, propertyID uuid.UUID, dateFrom, dateTo time.Time) (*PropertyStats, error) {
	stats := &PropertyStats{PropertyID: propertyID.String()}

	var counts []statusCount
	err := r.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) as count
		FROM reservations
		WHERE property_id = ? AND date_from <= ? AND date_to >= ?
		GROUP BY status
	`, propertyID, dateTo, dateFrom).Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count reservations by status: %w", err)
	}

	for _, c := range counts {
		stats.TotalReservations += c.Count
		switch c.Status {
		case "pending":
			stats.Pending = c.Count
		case "pending_payment":
			stats.PendingPayment = c.Count
		case "confirmed":
			stats.Confirmed = c.Count
		case "checked_in":
			stats.CheckedIn = c.Count
		case "checked_out":
			stats.CheckedOut = c.Count
		case "cancelled":
			stats.Cancelled = c.Count
		}
	}
	if stats.TotalReservations > 0 {
		stats.CancellationRate = float64(stats.Cancelled) / float64(stats.TotalReservations) * 100
	}

	err = r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(party_size), 0) as total_guests,
		       COALESCE(SUM(rate_amount), 0) as total_revenue
		FROM reservations
		WHERE property_id = ? AND date_from <= ? AND date_to >= ? AND status <> 'cancelled'
	`, propertyID, dateTo, dateFrom).Row().Scan(&stats.TotalGuests, &stats.TotalRevenue)
	if err != nil {
		return nil, fmt.Errorf("failed to sum guests and revenue: %w", err)
	}

	return stats, nil
}

func (r *repository) GetDailyStats(ctx context.Context, propertyID uuid.UUID, dateFrom, dateTo time.Time) ([]DailyStats, error) {
	var daily []DailyStats
	err := r.db.WithContext(ctx).Raw(`
		SELECT TO_CHAR(date_from, 'YYYY-MM-DD') as date,
		       COUNT(*) as reservations,
		       COALESCE(SUM(party_size), 0) as guests,
		       COALESCE(SUM(rate_amount), 0) as revenue
		FROM reservations
		WHERE property_id = ? AND date_from BETWEEN ? AND ? AND status <> 'cancelled'
		GROUP BY date_from
		ORDER BY date_from
	`, propertyID, dateFrom, dateTo).Scan(&daily).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get daily stats: %w", err)
	}
	return daily, nil
}

func (r *repository) CountResources(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("resources").
		Where("property_id = ? AND is_active = ?", propertyID, true).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count resources: %w", err)
	}
	return count, nil
}
