package availability

import (
	"time"

	"github.com/google/uuid"

	"staybook/internal/blocks"
	"staybook/internal/resources"
	"staybook/pkg/timeutil"
)

// DefaultHours is the hard fallback for resources with no configured weekly
// schedule.
type DefaultHours struct {
	Open  string
	Close string
}

// DayWindow is the resolved open/close window for one resource and date, in
// minutes since midnight. Close may exceed 24h for overnight windows.
type DayWindow struct {
	OpenMinutes  int
	CloseMinutes int
	Closed       bool
}

// EffectiveHours computes the open window for a resource on a calendar date.
// Pure: the caller supplies the blocks touching the date.
//
// A full-day or holiday block with no time window closes the day outright.
// Otherwise the resource's weekly schedule decides, falling back to the
// property's schedule and finally to the default hours when nothing is
// configured at all.
func EffectiveHours(resource *resources.Resource, date time.Time, dayBlocks []blocks.Block, defaults DefaultHours) DayWindow {
	for i := range dayBlocks {
		b := &dayBlocks[i]
		if !b.CoversDate(date) || !b.AppliesToResource(resource.ID) {
			continue
		}
		if b.Kind.ClosesWholeDay() && !b.HasTimeWindow() {
			return DayWindow{Closed: true}
		}
	}

	dayKey := timeutil.WeekdayKey(date)
	day, found := resource.HoursFor(dayKey)
	if !found {
		if resource.HasConfiguredHours() {
			return DayWindow{Closed: true}
		}
		day = DayHoursFromDefaults(defaults)
	}
	if day.Closed {
		return DayWindow{Closed: true}
	}
	if day.Open == "" || day.Close == "" {
		day = DayHoursFromDefaults(defaults)
	}

	open, err := timeutil.ParseClock(day.Open)
	if err != nil {
		return DayWindow{Closed: true}
	}
	close, err := timeutil.ParseClock(day.Close)
	if err != nil {
		return DayWindow{Closed: true}
	}
	// Overnight window: closing time on the far side of midnight.
	if close <= open {
		close += timeutil.MinutesPerDay
	}
	return DayWindow{OpenMinutes: open, CloseMinutes: close}
}

func DayHoursFromDefaults(defaults DefaultHours) resources.DayHours {
	return resources.DayHours{Open: defaults.Open, Close: defaults.Close}
}

// SlotMinutes enumerates bookable start offsets for a resolved window at the
// given granularity, dropping slots covered by a time-scoped block. Offsets
// are minutes since the date's midnight and exceed 24h for the overnight
// tail of a wrapped window.
func SlotMinutes(resource *resources.Resource, date time.Time, window DayWindow, granularityMinutes int, dayBlocks []blocks.Block) []int {
	if window.Closed || granularityMinutes <= 0 {
		return []int{}
	}

	slots := make([]int, 0, (window.CloseMinutes-window.OpenMinutes)/granularityMinutes)
	for minutes := window.OpenMinutes; minutes < window.CloseMinutes; minutes += granularityMinutes {
		if slotBlocked(resource, date, minutes%timeutil.MinutesPerDay, dayBlocks) {
			continue
		}
		slots = append(slots, minutes)
	}
	return slots
}

// Slots renders SlotMinutes as wall-clock strings, normalized back into
// [0, 24h), so an overnight window yields "22:00, 23:00, 00:00, 01:00"
// style lists.
func Slots(resource *resources.Resource, date time.Time, window DayWindow, granularityMinutes int, dayBlocks []blocks.Block) []string {
	minutes := SlotMinutes(resource, date, window, granularityMinutes, dayBlocks)
	slots := make([]string, len(minutes))
	for i, m := range minutes {
		slots[i] = timeutil.FormatClock(m)
	}
	return slots
}

// slotBlocked applies time-scoped blocks to a single slot. Scope fields use
// "apply if null, else must match": a block with no section/table pins hits
// every sub-unit, a pinned one only its target.
func slotBlocked(resource *resources.Resource, date time.Time, slotMinutes int, dayBlocks []blocks.Block) bool {
	for i := range dayBlocks {
		b := &dayBlocks[i]
		if !b.CoversDate(date) || !b.AppliesToResource(resource.ID) || !b.HasTimeWindow() {
			continue
		}
		if !scopeMatches(b.SectionID, resource.SectionID) {
			continue
		}
		if b.TableID != nil && *b.TableID != resource.ID {
			continue
		}

		start := 0
		if b.StartTime != nil {
			parsed, err := timeutil.ParseClock(*b.StartTime)
			if err != nil {
				continue
			}
			start = parsed
		}
		end := timeutil.MinutesPerDay
		if b.EndTime != nil {
			parsed, err := timeutil.ParseClock(*b.EndTime)
			if err != nil {
				continue
			}
			end = parsed
		}

		if start <= slotMinutes && slotMinutes < end {
			return true
		}
	}
	return false
}

func scopeMatches(blockScope, resourceScope *uuid.UUID) bool {
	if blockScope == nil {
		return true
	}
	return resourceScope != nil && *blockScope == *resourceScope
}
