/*
Package calendar provides pure date arithmetic for the planner.

PURPOSE:
  Everything in this system is a calendar date: accrual cadences, holidays,
  selected days off, the projection window. This package owns the Date value
  type and the date math the rest of the module builds on. No time-of-day,
  no timezones - a Date is a day, normalized to UTC midnight internally.

KEY CONCEPTS IN THIS FILE (date.go):
  - Date: A calendar date value type, usable as a map key
  - Parsing/formatting via ISO "2006-01-02" strings at the boundary

DESIGN PRINCIPLES:
  1. Value semantics: Dates are immutable; arithmetic returns new values
  2. Keyed lookups: Date replaces string-keyed maps to avoid parse fragility
  3. UTC day granularity: comparisons never depend on wall-clock time

SEE ALSO:
  - datemath.go: nth-weekday rules and weekend observance shifts
  - grid.go: calendar-month grid for the rendering adapter
*/
package calendar

import (
	"fmt"
	"time"
)

// ISO is the wire format for dates everywhere in this module.
const ISO = "2006-01-02"

// Date is a calendar date at day granularity, normalized to UTC midnight.
// Always construct through New, Parse, or the arithmetic methods so values
// stay comparable and safe to use as map keys.
type Date struct {
	t time.Time
}

func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Parse parses an ISO calendar date string ("2026-03-02").
func Parse(s string) (Date, error) {
	t, err := time.Parse(ISO, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid calendar date %q: %w", s, err)
	}
	return New(t.Year(), t.Month(), t.Day()), nil
}

// MustParse is Parse for compile-time-known literals (tests, defaults).
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Today returns the current calendar date.
func Today() Date {
	now := time.Now().UTC()
	return New(now.Year(), now.Month(), now.Day())
}

// FromTime truncates a time.Time to its calendar date.
func FromTime(t time.Time) Date {
	return New(t.Year(), t.Month(), t.Day())
}

// Comparison
func (d Date) Before(other Date) bool        { return d.t.Before(other.t) }
func (d Date) After(other Date) bool         { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool         { return d.t.Equal(other.t) }
func (d Date) BeforeOrEqual(other Date) bool { return !d.After(other) }
func (d Date) AfterOrEqual(other Date) bool  { return !d.Before(other) }

// Arithmetic
func (d Date) AddDays(n int) Date   { return FromTime(d.t.AddDate(0, 0, n)) }
func (d Date) AddMonths(n int) Date { return FromTime(d.t.AddDate(0, n, 0)) }
func (d Date) AddYears(n int) Date  { return FromTime(d.t.AddDate(n, 0, 0)) }

// Properties
func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }
func (d Date) IsZero() bool          { return d.t.IsZero() }

func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func (d Date) String() string { return d.t.Format(ISO) }

// Time returns the underlying UTC midnight instant.
func (d Date) Time() time.Time { return d.t }

// DaysBetween returns the number of calendar days from 'from' to 'to'
// (negative if 'to' precedes 'from').
func DaysBetween(from, to Date) int {
	return int(to.t.Sub(from.t).Hours() / 24)
}

// StartOfMonth returns the first day of the month containing d.
func (d Date) StartOfMonth() Date { return New(d.Year(), d.Month(), 1) }

// EndOfMonth returns the last day of the month containing d.
func (d Date) EndOfMonth() Date {
	return New(d.Year(), d.Month()+1, 1).AddDays(-1)
}
