package engine

import (
	"github.com/warp/pto-planner/accrual"
	"github.com/warp/pto-planner/calendar"
)

// =============================================================================
// CONFIGURATION - The authoritative balance anchor plus accrual settings
// =============================================================================

// Config describes one person's PTO situation. StartingBalance is the
// authoritative balance exactly at AsOfDate; nothing before AsOfDate is
// modeled.
type Config struct {
	StartingBalance  Hours
	AsOfDate         calendar.Date
	AccrualAmount    Hours
	AccrualCadence   accrual.Cadence
	FirstAccrualDate calendar.Date
}

// Normalize coerces a degraded configuration into a computable one.
// Negative amounts become zero and missing dates are filled (AsOfDate
// from 'today', FirstAccrualDate from AsOfDate). Invalid input is
// recovered locally, never fatal. An empty cadence defaults to biweekly;
// an unknown cadence is left alone for Validate to refuse.
func (c Config) Normalize(today calendar.Date) Config {
	if c.StartingBalance.IsNegative() {
		c.StartingBalance = Hours{}
	}
	if c.AccrualAmount.IsNegative() {
		c.AccrualAmount = Hours{}
	}
	if c.AsOfDate.IsZero() {
		c.AsOfDate = today
	}
	if c.FirstAccrualDate.IsZero() {
		c.FirstAccrualDate = c.AsOfDate
	}
	if c.AccrualCadence == "" {
		c.AccrualCadence = accrual.Biweekly
	}
	return c
}

// Validate refuses configurations the engine cannot compute. The only
// hard failure is an unsupported cadence; everything else is coerced by
// Normalize.
func (c Config) Validate() error {
	_, err := accrual.NewSchedule(c.AccrualCadence, c.FirstAccrualDate)
	return err
}
