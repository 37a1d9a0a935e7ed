package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds the exclusion constraint that makes double booking
// impossible at the database level, regardless of application-level checks.
func MigrateConstraints(db *gorm.DB) error {
	// tstzrange exclusion needs btree_gist for the resource_id equality part
	err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist;`).Error
	if err != nil {
		return err
	}

	// Two reservations for the same resource may never hold overlapping
	// occupancy windows unless one of them is cancelled. Checked-out stays
	// keep their window so history stays consistent with past occupancy.
	err = db.Exec(`
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1 FROM pg_constraint WHERE conname = 'no_overlapping_reservations'
			) THEN
				ALTER TABLE reservations
				ADD CONSTRAINT no_overlapping_reservations
				EXCLUDE USING gist (
					resource_id WITH =,
					tstzrange(start_at, end_at) WITH &&
				) WHERE (status <> 'cancelled');
			END IF;
		END
		$$;
	`).Error
	if err != nil {
		return err
	}

	// Index for the advisory overlap query and the calendar range scans
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_reservations_resource_window
		ON reservations (resource_id, start_at, end_at);
	`).Error
	if err != nil {
		return err
	}

	// Index for block range scans by property and date
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_blocked_ranges_property_dates
		ON blocked_ranges (property_id, date_from, date_to);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
