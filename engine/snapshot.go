/*
snapshot.go - Serializable plan state

PURPOSE:
  The persistence boundary. A Snapshot is the plain-data form of a plan:
  ISO date strings, floats, enum strings, window months. Nothing
  engine-internal leaks into it, so any store (SQLite, memory, a browser)
  can hold one.

COERCION:
  Snapshots arrive from untrusted edits. Config() recovers every invalid
  field locally - negative or non-finite numbers become zero, malformed
  or missing dates fall back to sensible anchors - and never fails. The
  one thing that cannot be coerced is an unknown accrual cadence; that is
  surfaced later by Config.Validate, refusing computation until fixed.
*/
package engine

import (
	"math"
	"sort"

	"github.com/warp/pto-planner/accrual"
	"github.com/warp/pto-planner/calendar"
)

// Snapshot is the persisted form of a plan.
type Snapshot struct {
	StartingBalance  float64  `json:"starting_balance"`
	AsOfDate         string   `json:"as_of_date"`
	AccrualAmount    float64  `json:"accrual_amount"`
	AccrualCadence   string   `json:"accrual_cadence"`
	FirstAccrualDate string   `json:"first_accrual_date"`
	SelectedDates    []string `json:"selected_dates"`
	WindowMonths     int      `json:"window_months"`
}

// Config converts the snapshot's configuration fields, coercing invalid
// input to safe defaults relative to 'today'.
func (s Snapshot) Config(today calendar.Date) Config {
	cfg := Config{
		StartingBalance: coerceHours(s.StartingBalance),
		AccrualAmount:   coerceHours(s.AccrualAmount),
		AccrualCadence:  accrual.Cadence(s.AccrualCadence),
	}
	if d, err := calendar.Parse(s.AsOfDate); err == nil {
		cfg.AsOfDate = d
	}
	if d, err := calendar.Parse(s.FirstAccrualDate); err == nil {
		cfg.FirstAccrualDate = d
	}
	return cfg.Normalize(today)
}

// Selections parses the selected dates, dropping malformed entries, and
// returns them deduplicated in ascending order.
func (s Snapshot) Selections() []calendar.Date {
	seen := make(map[calendar.Date]bool)
	var dates []calendar.Date
	for _, raw := range s.SelectedDates {
		d, err := calendar.Parse(raw)
		if err != nil || seen[d] {
			continue
		}
		seen[d] = true
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// Months returns the window size, degraded to 6 when out of range.
func (s Snapshot) Months() int {
	if s.WindowMonths == 12 {
		return 12
	}
	return 6
}

// MakeSnapshot serializes a plan back to its persisted form.
func MakeSnapshot(cfg Config, selections []calendar.Date, windowMonths int) Snapshot {
	snap := Snapshot{
		StartingBalance:  cfg.StartingBalance.Float64(),
		AsOfDate:         cfg.AsOfDate.String(),
		AccrualAmount:    cfg.AccrualAmount.Float64(),
		AccrualCadence:   string(cfg.AccrualCadence),
		FirstAccrualDate: cfg.FirstAccrualDate.String(),
		WindowMonths:     windowMonths,
		SelectedDates:    make([]string, 0, len(selections)),
	}
	for _, d := range selections {
		snap.SelectedDates = append(snap.SelectedDates, d.String())
	}
	return snap
}

func coerceHours(v float64) Hours {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return Hours{}
	}
	return NewHours(v)
}
