package database

import (
	"staybook/internal/blocks"
	"staybook/internal/history"
	"staybook/internal/pricing"
	"staybook/internal/reservations"
	"staybook/internal/resources"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&resources.Property{},
		&resources.Section{},
		&resources.Resource{},
		&blocks.Block{},
		&pricing.SeasonalPrice{},
		&reservations.Reservation{},
		&history.Entry{},
	)
}
