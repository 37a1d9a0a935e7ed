package availability

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staybook/internal/blocks"
	"staybook/internal/resources"
	"staybook/pkg/timeutil"
)

var testDefaults = DefaultHours{Open: "11:00", Close: "22:00"}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := timeutil.ParseDate(value)
	require.NoError(t, err)
	return date
}

func strptr(s string) *string { return &s }

func newTestResource(hours resources.WeeklyHours) *resources.Resource {
	return &resources.Resource{
		ID:          uuid.New(),
		PropertyID:  uuid.New(),
		Name:        "Table 4",
		Kind:        resources.KindTable,
		Capacity:    4,
		WeeklyHours: hours,
		IsActive:    true,
	}
}

func TestEffectiveHoursUsesWeeklySchedule(t *testing.T) {
	resource := newTestResource(resources.WeeklyHours{
		"mon": {Open: "09:00", Close: "18:00"},
	})

	// 2025-03-10 is a Monday.
	window := EffectiveHours(resource, mustDate(t, "2025-03-10"), nil, testDefaults)
	require.False(t, window.Closed)
	assert.Equal(t, 9*60, window.OpenMinutes)
	assert.Equal(t, 18*60, window.CloseMinutes)
}

func TestEffectiveHoursMissingDayClosesConfiguredSchedule(t *testing.T) {
	resource := newTestResource(resources.WeeklyHours{
		"mon": {Open: "09:00", Close: "18:00"},
	})

	// Tuesday has no entry while Monday does, so Tuesday is closed.
	window := EffectiveHours(resource, mustDate(t, "2025-03-11"), nil, testDefaults)
	assert.True(t, window.Closed)
}

func TestEffectiveHoursUnconfiguredResourceGetsDefaults(t *testing.T) {
	resource := newTestResource(nil)

	window := EffectiveHours(resource, mustDate(t, "2025-03-11"), nil, testDefaults)
	require.False(t, window.Closed)
	assert.Equal(t, 11*60, window.OpenMinutes)
	assert.Equal(t, 22*60, window.CloseMinutes)
}

func TestEffectiveHoursClosedDayEntry(t *testing.T) {
	resource := newTestResource(resources.WeeklyHours{
		"mon": {Closed: true},
		"tue": {Open: "09:00", Close: "18:00"},
	})

	window := EffectiveHours(resource, mustDate(t, "2025-03-10"), nil, testDefaults)
	assert.True(t, window.Closed)
}

func TestEffectiveHoursPropertyFallback(t *testing.T) {
	resource := newTestResource(nil)
	resource.Property = &resources.Property{
		WeeklyHours: resources.WeeklyHours{
			"wed": {Open: "10:00", Close: "20:00"},
		},
	}

	// 2025-03-12 is a Wednesday; hours come from the property.
	window := EffectiveHours(resource, mustDate(t, "2025-03-12"), nil, testDefaults)
	require.False(t, window.Closed)
	assert.Equal(t, 10*60, window.OpenMinutes)

	// Thursday missing from the property schedule means closed.
	window = EffectiveHours(resource, mustDate(t, "2025-03-13"), nil, testDefaults)
	assert.True(t, window.Closed)
}

func TestEffectiveHoursFullDayBlockClosesDay(t *testing.T) {
	resource := newTestResource(resources.WeeklyHours{
		"mon": {Open: "09:00", Close: "18:00"},
	})
	date := mustDate(t, "2025-03-10")

	dayBlocks := []blocks.Block{{
		PropertyID: resource.PropertyID,
		DateFrom:   date,
		DateTo:     date,
		Kind:       blocks.KindFullDay,
		Reason:     "deep clean",
	}}

	window := EffectiveHours(resource, date, dayBlocks, testDefaults)
	assert.True(t, window.Closed)

	slots := Slots(resource, date, window, 30, dayBlocks)
	assert.Empty(t, slots)
}

func TestEffectiveHoursTimedBlockDoesNotCloseDay(t *testing.T) {
	resource := newTestResource(resources.WeeklyHours{
		"mon": {Open: "09:00", Close: "18:00"},
	})
	date := mustDate(t, "2025-03-10")

	dayBlocks := []blocks.Block{{
		PropertyID: resource.PropertyID,
		DateFrom:   date,
		DateTo:     date,
		StartTime:  strptr("12:00"),
		EndTime:    strptr("14:00"),
		Kind:       blocks.KindMaintenance,
		Reason:     "boiler service",
	}}

	window := EffectiveHours(resource, date, dayBlocks, testDefaults)
	assert.False(t, window.Closed)
}

func TestEffectiveHoursBlockForOtherResourceIgnored(t *testing.T) {
	resource := newTestResource(resources.WeeklyHours{
		"mon": {Open: "09:00", Close: "18:00"},
	})
	otherID := uuid.New()
	date := mustDate(t, "2025-03-10")

	dayBlocks := []blocks.Block{{
		PropertyID: resource.PropertyID,
		ResourceID: &otherID,
		DateFrom:   date,
		DateTo:     date,
		Kind:       blocks.KindFullDay,
		Reason:     "renovation",
	}}

	window := EffectiveHours(resource, date, dayBlocks, testDefaults)
	assert.False(t, window.Closed)
}

func TestSlotsMondayHalfHour(t *testing.T) {
	resource := newTestResource(resources.WeeklyHours{
		"mon": {Open: "09:00", Close: "18:00"},
	})
	date := mustDate(t, "2025-03-10")

	window := EffectiveHours(resource, date, nil, testDefaults)
	slots := Slots(resource, date, window, 30, nil)

	require.Len(t, slots, 18)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "09:30", slots[1])
	assert.Equal(t, "17:30", slots[17])
	assert.NotContains(t, slots, "18:00")
}

func TestSlotsOvernightWraparound(t *testing.T) {
	resource := newTestResource(resources.WeeklyHours{
		"mon": {Open: "22:00", Close: "02:00"},
	})
	date := mustDate(t, "2025-03-10")

	window := EffectiveHours(resource, date, nil, testDefaults)
	slots := Slots(resource, date, window, 60, nil)

	assert.Equal(t, []string{"22:00", "23:00", "00:00", "01:00"}, slots)
	assert.NotContains(t, slots, "02:00")
}

func TestSlotsExcludedByTimedBlock(t *testing.T) {
	resource := newTestResource(resources.WeeklyHours{
		"mon": {Open: "09:00", Close: "12:00"},
	})
	date := mustDate(t, "2025-03-10")

	dayBlocks := []blocks.Block{{
		PropertyID: resource.PropertyID,
		DateFrom:   date,
		DateTo:     date,
		StartTime:  strptr("10:00"),
		EndTime:    strptr("11:00"),
		Kind:       blocks.KindPrivateEvent,
		Reason:     "tasting",
	}}

	window := EffectiveHours(resource, date, dayBlocks, testDefaults)
	slots := Slots(resource, date, window, 30, dayBlocks)

	// The [10:00, 11:00) window swallows 10:00 and 10:30; 11:00 survives.
	assert.Equal(t, []string{"09:00", "09:30", "11:00", "11:30"}, slots)
}

func TestSlotsOpenEndedBlockBounds(t *testing.T) {
	resource := newTestResource(resources.WeeklyHours{
		"mon": {Open: "09:00", Close: "12:00"},
	})
	date := mustDate(t, "2025-03-10")

	// No end time: blocked from 10:30 to close of day.
	dayBlocks := []blocks.Block{{
		PropertyID: resource.PropertyID,
		DateFrom:   date,
		DateTo:     date,
		StartTime:  strptr("10:30"),
		Kind:       blocks.KindOther,
		Reason:     "staff meeting",
	}}

	window := EffectiveHours(resource, date, dayBlocks, testDefaults)
	slots := Slots(resource, date, window, 30, dayBlocks)

	assert.Equal(t, []string{"09:00", "09:30", "10:00"}, slots)
}

func TestSlotsSectionScoping(t *testing.T) {
	sectionID := uuid.New()
	otherSection := uuid.New()
	resource := newTestResource(resources.WeeklyHours{
		"mon": {Open: "09:00", Close: "11:00"},
	})
	resource.SectionID = &sectionID
	date := mustDate(t, "2025-03-10")

	blockFor := func(section uuid.UUID) []blocks.Block {
		return []blocks.Block{{
			PropertyID: resource.PropertyID,
			SectionID:  &section,
			DateFrom:   date,
			DateTo:     date,
			StartTime:  strptr("09:00"),
			EndTime:    strptr("10:00"),
			Kind:       blocks.KindPrivateEvent,
			Reason:     "party",
		}}
	}

	window := EffectiveHours(resource, date, nil, testDefaults)

	// Block pinned to another section leaves this resource alone.
	slots := Slots(resource, date, window, 60, blockFor(otherSection))
	assert.Equal(t, []string{"09:00", "10:00"}, slots)

	// Pinned to the resource's own section, it bites.
	slots = Slots(resource, date, window, 60, blockFor(sectionID))
	assert.Equal(t, []string{"10:00"}, slots)
}

func TestSlotsClosedWindowEmpty(t *testing.T) {
	resource := newTestResource(nil)
	date := mustDate(t, "2025-03-10")

	slots := Slots(resource, date, DayWindow{Closed: true}, 30, nil)
	assert.Empty(t, slots)
}
