package calendar

import "time"

// =============================================================================
// WEEKDAY RULES - "Nth weekday of month" style date derivation
// =============================================================================

// NthWeekday returns the nth occurrence (1-based) of a weekday in a month,
// e.g. NthWeekday(2026, time.January, time.Monday, 3) is MLK Day 2026.
// Dates derived this way never fall on a weekend unless the weekday asked
// for is itself a weekend day.
func NthWeekday(year int, month time.Month, weekday time.Weekday, n int) Date {
	first := New(year, month, 1)
	offset := (int(weekday) - int(first.Weekday()) + 7) % 7
	return first.AddDays(offset + 7*(n-1))
}

// LastWeekday returns the last occurrence of a weekday in a month,
// e.g. LastWeekday(2026, time.May, time.Monday) is Memorial Day 2026.
func LastWeekday(year int, month time.Month, weekday time.Weekday) Date {
	last := New(year, month, 1).EndOfMonth()
	offset := (int(last.Weekday()) - int(weekday) + 7) % 7
	return last.AddDays(-offset)
}

// Observed applies the weekend observance shift used for fixed-date
// holidays: a Saturday moves back one day and a Sunday moves back two, so
// both land on the preceding Friday. Weekdays are returned unchanged.
func Observed(d Date) Date {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDays(-1)
	case time.Sunday:
		return d.AddDays(-2)
	default:
		return d
	}
}
