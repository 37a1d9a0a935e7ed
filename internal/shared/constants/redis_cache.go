package constants

import (
	"time"
)

// Redis Cache Configuration
// This file centralizes all Redis cache keys and TTL values for the Staybook application
// Pattern: staybook:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

// Semi-Static Data (Medium TTL: changes occasionally)
const (
	TTL_SEMI_STATIC_MEDIUM = 2 * time.Hour    // 2 hours - for resource and property details
	TTL_SEMI_STATIC_SHORT  = 1 * time.Hour    // 1 hour - for weekly schedules
	TTL_SEMI_STATIC_QUICK  = 15 * time.Minute // 15 minutes - for seasonal prices
)

// Dynamic Data (Short TTL: changes frequently)
const (
	TTL_DYNAMIC_MEDIUM = 10 * time.Minute // 10 minutes - for property stats
	TTL_DYNAMIC_SHORT  = 5 * time.Minute  // 5 minutes - for calendar months
	TTL_DYNAMIC_QUICK  = 2 * time.Minute  // 2 minutes - for slot availability
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "staybook"

	// All schedule-derived caches share this prefix so a single pattern
	// delete per property can clear slots, calendars and stats at once.
	SCHEDULE_PREFIX = CACHE_PREFIX + ":schedule"
)

// ================== SCHEDULE MODULE ==================

// Schedule Cache TTLs
const (
	TTL_SLOT_AVAILABILITY = TTL_DYNAMIC_QUICK  // 2 minutes
	TTL_CALENDAR_MONTH    = TTL_DYNAMIC_SHORT  // 5 minutes
	TTL_PROPERTY_STATS    = TTL_DYNAMIC_MEDIUM // 10 minutes
)

// ================== HELPER FUNCTIONS ==================

// CacheKeySlotsPrefix returns the key prefix for day-availability entries.
// Callers append :resource:X:date:Y:gran:Z.
func CacheKeySlotsPrefix(propertyID string) string {
	return SCHEDULE_PREFIX + ":slots:property:" + propertyID
}

// CacheKeyCalendarPrefix returns the key prefix for calendar month entries.
// Callers append :month:X:resource:Y.
func CacheKeyCalendarPrefix(propertyID string) string {
	return SCHEDULE_PREFIX + ":calendar:property:" + propertyID
}

// CacheKeyStatsPrefix returns the key prefix for property stats entries.
// Callers append :range:X:Y.
func CacheKeyStatsPrefix(propertyID string) string {
	return SCHEDULE_PREFIX + ":stats:property:" + propertyID
}

// ScheduleInvalidationPattern matches every schedule-derived cache entry
// for a property. Used after reservation and block mutations.
func ScheduleInvalidationPattern(propertyID string) string {
	return SCHEDULE_PREFIX + ":*:property:" + propertyID + ":*"
}
