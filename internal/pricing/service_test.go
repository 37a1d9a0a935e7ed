package pricing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staybook/pkg/timeutil"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := timeutil.ParseDate(value)
	require.NoError(t, err)
	return date
}

func TestRateForPrefersResourceScopedOverride(t *testing.T) {
	resourceID := uuid.New()
	overrides := []SeasonalPrice{
		{
			Label:    "summer property-wide",
			DateFrom: mustDate(t, "2025-07-01"),
			DateTo:   mustDate(t, "2025-08-31"),
			Amount:   150,
			Currency: "EUR",
		},
		{
			Label:      "summer suite",
			ResourceID: &resourceID,
			DateFrom:   mustDate(t, "2025-07-01"),
			DateTo:     mustDate(t, "2025-08-31"),
			Amount:     220,
			Currency:   "EUR",
		},
	}

	amount, currency := rateFor(overrides, resourceID, mustDate(t, "2025-07-15"), 100)
	assert.Equal(t, 220.0, amount)
	assert.Equal(t, "EUR", currency)

	// Another resource only sees the property-wide override.
	amount, _ = rateFor(overrides, uuid.New(), mustDate(t, "2025-07-15"), 100)
	assert.Equal(t, 150.0, amount)
}

func TestRateForFallsBackToBaseRate(t *testing.T) {
	resourceID := uuid.New()
	overrides := []SeasonalPrice{{
		Label:    "new year",
		DateFrom: mustDate(t, "2025-12-30"),
		DateTo:   mustDate(t, "2026-01-02"),
		Amount:   300,
	}}

	amount, currency := rateFor(overrides, resourceID, mustDate(t, "2025-06-10"), 95)
	assert.Equal(t, 95.0, amount)
	assert.Empty(t, currency)

	amount, _ = rateFor(overrides, resourceID, mustDate(t, "2025-12-31"), 95)
	assert.Equal(t, 300.0, amount)
}

func TestSeasonalPriceCoversDate(t *testing.T) {
	price := &SeasonalPrice{
		DateFrom: mustDate(t, "2025-07-01"),
		DateTo:   mustDate(t, "2025-07-31"),
	}

	assert.True(t, price.CoversDate(mustDate(t, "2025-07-01")))
	assert.True(t, price.CoversDate(mustDate(t, "2025-07-31")))
	assert.False(t, price.CoversDate(mustDate(t, "2025-08-01")))
	assert.False(t, price.CoversDate(mustDate(t, "2025-06-30")))
}
