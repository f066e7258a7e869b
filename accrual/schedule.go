/*
Package accrual enumerates accrual event dates.

PURPOSE:
  An accrual schedule answers one question: on which dates does the
  balance grow? The amount added per event belongs to the configuration,
  not the schedule - the engine multiplies.

CADENCES:
  Only the biweekly cadence (a fixed 14-day step from an anchor date) is
  implemented. The Cadence type exists so the configuration format can
  grow without changing its wire shape; any other value is a
  configuration error surfaced as ErrUnsupportedCadence.

SEE ALSO:
  - engine: seeds the schedule from the configuration's first accrual date
*/
package accrual

import (
	"fmt"

	"github.com/warp/pto-planner/calendar"
)

// Cadence identifies how accrual dates repeat.
type Cadence string

const (
	// Biweekly steps exactly 14 calendar days from the anchor.
	Biweekly Cadence = "biweekly"
)

const biweeklyStepDays = 14

// UnsupportedCadenceError reports a cadence the scheduler cannot generate.
type UnsupportedCadenceError struct {
	Cadence Cadence
}

func (e *UnsupportedCadenceError) Error() string {
	return fmt.Sprintf("unsupported accrual cadence %q (only %q is implemented)", e.Cadence, Biweekly)
}

func (e *UnsupportedCadenceError) Unwrap() error { return ErrUnsupportedCadence }

// Schedule generates accrual dates for a range.
type Schedule interface {
	// Dates returns accrual dates in [from, to] inclusive, ascending.
	Dates(from, to calendar.Date) []calendar.Date

	// Contains reports whether d is an accrual date.
	Contains(d calendar.Date) bool
}

// NewSchedule builds the schedule for a cadence anchored at the first
// accrual date. Returns UnsupportedCadenceError for unknown cadences.
func NewSchedule(cadence Cadence, anchor calendar.Date) (Schedule, error) {
	switch cadence {
	case Biweekly:
		return &BiweeklySchedule{Anchor: anchor}, nil
	default:
		return nil, &UnsupportedCadenceError{Cadence: cadence}
	}
}

// BiweeklySchedule steps 14 calendar days at a time from Anchor. All
// generated dates are >= Anchor.
type BiweeklySchedule struct {
	Anchor calendar.Date
}

func (bs *BiweeklySchedule) Dates(from, to calendar.Date) []calendar.Date {
	if to.Before(from) || to.Before(bs.Anchor) {
		return nil
	}

	current := bs.Anchor
	if from.After(current) {
		// Jump to the first step at or after 'from' instead of walking.
		gap := calendar.DaysBetween(current, from)
		steps := gap / biweeklyStepDays
		if gap%biweeklyStepDays != 0 {
			steps++
		}
		current = current.AddDays(steps * biweeklyStepDays)
	}

	var dates []calendar.Date
	for current.BeforeOrEqual(to) {
		dates = append(dates, current)
		current = current.AddDays(biweeklyStepDays)
	}
	return dates
}

func (bs *BiweeklySchedule) Contains(d calendar.Date) bool {
	if d.Before(bs.Anchor) {
		return false
	}
	return calendar.DaysBetween(bs.Anchor, d)%biweeklyStepDays == 0
}
