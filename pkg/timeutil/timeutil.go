// Package timeutil provides the pure calendar and wall-clock helpers used by
// the scheduling engine. All functions are side-effect free; variants that
// depend on the current instant accept it as a parameter.
package timeutil

import (
	"fmt"
	"time"
)

// Wire layouts. Dates are calendar dates with no time component, times are
// local wall-clock HH:mm strings scoped to a resource's timezone.
const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
	ClockLayout = "15:04"
)

// MinutesPerDay is the size of the wall-clock domain used for wraparound math.
const MinutesPerDay = 24 * 60

// ParseDate parses an ISO calendar date (YYYY-MM-DD).
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return t, nil
}

// FormatDate renders a calendar date in ISO form.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseMonth parses a year-month (YYYY-MM) and returns the first day of that
// month.
func ParseMonth(s string) (time.Time, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q: want YYYY-MM", s)
	}
	return t, nil
}

// ParseClock parses a wall-clock HH:mm string into minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: want HH:mm", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes since midnight as HH:mm, normalizing values
// outside [0, 24h) with modulo arithmetic so overnight walks render correctly.
func FormatClock(minutes int) string {
	minutes %= MinutesPerDay
	if minutes < 0 {
		minutes += MinutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// WeekdayKey returns the lowercase three-letter weekday key (mon..sun) used
// by weekly-hours maps.
func WeekdayKey(t time.Time) string {
	switch t.Weekday() {
	case time.Monday:
		return "mon"
	case time.Tuesday:
		return "tue"
	case time.Wednesday:
		return "wed"
	case time.Thursday:
		return "thu"
	case time.Friday:
		return "fri"
	case time.Saturday:
		return "sat"
	default:
		return "sun"
	}
}

// ExpandCalendarGrid returns the full calendar-grid range for a month: the
// first Monday on or before the 1st and the last Sunday on or after the last
// day. UI month views use it to show partial weeks of adjacent months.
func ExpandCalendarGrid(yearMonth string) (time.Time, time.Time, error) {
	monthStart, err := ParseMonth(yearMonth)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	monthEnd := monthStart.AddDate(0, 1, -1)

	// Week starts on Monday: Mon=0 .. Sun=6.
	startOffset := (int(monthStart.Weekday()) + 6) % 7
	endOffset := (7 - int(monthEnd.Weekday())) % 7

	gridStart := monthStart.AddDate(0, 0, -startOffset)
	gridEnd := monthEnd.AddDate(0, 0, endOffset)
	return gridStart, gridEnd, nil
}

// ToLocationTime reinterprets a wall-clock date+time as occurring in
// sourceZone and re-renders the same instant in targetZone. Zone rules are
// IANA (DST-aware), not fixed offsets.
func ToLocationTime(date, clock, sourceZone, targetZone string) (string, string, error) {
	src, err := time.LoadLocation(sourceZone)
	if err != nil {
		return "", "", fmt.Errorf("invalid timezone %q: %w", sourceZone, err)
	}
	dst, err := time.LoadLocation(targetZone)
	if err != nil {
		return "", "", fmt.Errorf("invalid timezone %q: %w", targetZone, err)
	}

	instant, err := time.ParseInLocation(DateLayout+" "+ClockLayout, date+" "+clock, src)
	if err != nil {
		return "", "", fmt.Errorf("invalid date/time %q %q: %w", date, clock, err)
	}

	local := instant.In(dst)
	return local.Format(DateLayout), local.Format(ClockLayout), nil
}

// HasPassed reports whether the zoned instant date+clock is before now.
func HasPassed(date, clock, zone string) (bool, error) {
	return HasPassedAt(date, clock, zone, time.Now())
}

// HasPassedAt is HasPassed against an explicit reference instant.
func HasPassedAt(date, clock, zone string, now time.Time) (bool, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return false, fmt.Errorf("invalid timezone %q: %w", zone, err)
	}
	instant, err := time.ParseInLocation(DateLayout+" "+ClockLayout, date+" "+clock, loc)
	if err != nil {
		return false, fmt.Errorf("invalid date/time %q %q: %w", date, clock, err)
	}
	return instant.Before(now), nil
}

// RangesOverlap reports whether two half-open ranges [aFrom, aTo) and
// [bFrom, bTo) intersect. A shared boundary (aTo == bFrom) is not an overlap,
// which is what allows same-day checkout/check-in turnover.
func RangesOverlap(aFrom, aTo, bFrom, bTo time.Time) bool {
	return aFrom.Before(bTo) && bFrom.Before(aTo)
}

// DatesOverlap is RangesOverlap on ISO date strings. Lexicographic comparison
// is safe because the layout is fixed-width.
func DatesOverlap(aFrom, aTo, bFrom, bTo string) bool {
	return aFrom < bTo && bFrom < aTo
}

// MinuteRangesOverlap is RangesOverlap on minute offsets. Overnight windows
// must be unrolled past MinutesPerDay by the caller first.
func MinuteRangesOverlap(aFrom, aTo, bFrom, bTo int) bool {
	return aFrom < bTo && bFrom < aTo
}
