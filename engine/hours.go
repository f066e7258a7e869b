/*
Package engine computes PTO balance projections.

PURPOSE:
  This is the core of the planner: a pure, event-sourced balance model.
  Given a configuration (starting balance, accrual schedule), a set of
  selected days off, and a holiday catalog, the engine answers:
    - what is the balance on any date?
    - would taking a specific day off drive the balance below zero?
    - what does the whole window look like (segments, curve, markers)?

DESIGN PRINCIPLES:
  1. Purity: every operation is a deterministic function of its inputs;
     no hidden mutable state, no I/O
  2. Precision: decimal.Decimal for every hour quantity - the published
     balance vectors (23.51 + 11.08 = 34.59) must be exact
  3. Degrade, don't abort: invalid numeric input coerces to zero, dates
     outside the holiday span are simply not holidays; public operations
     always return a fully formed result

KEY CONCEPTS IN THIS FILE (hours.go):
  - Hours: a decimal-backed quantity of PTO hours
  - Workday (8h) and FullWeek (40h) modeling constants

SEE ALSO:
  - config.go: configuration record, coercion, validation
  - balance.go: BalanceAt / WouldExceedBalance / per-day flags
  - timeline.go: the window walk producing segments and the balance curve
*/
package engine

import "github.com/shopspring/decimal"

// =============================================================================
// HOURS - Quantity of PTO time (the only unit this system models)
// =============================================================================

// Hours is a quantity of PTO hours backed by decimal arithmetic.
type Hours struct {
	Value decimal.Decimal
}

func NewHours(v float64) Hours        { return Hours{Value: decimal.NewFromFloat(v)} }
func NewHoursFromInt(v int) Hours     { return Hours{Value: decimal.NewFromInt(int64(v))} }
func (h Hours) Add(o Hours) Hours     { return Hours{Value: h.Value.Add(o.Value)} }
func (h Hours) Sub(o Hours) Hours     { return Hours{Value: h.Value.Sub(o.Value)} }
func (h Hours) Neg() Hours            { return Hours{Value: h.Value.Neg()} }
func (h Hours) MulInt(n int) Hours    { return Hours{Value: h.Value.Mul(decimal.NewFromInt(int64(n)))} }
func (h Hours) IsNegative() bool      { return h.Value.IsNegative() }
func (h Hours) IsZero() bool          { return h.Value.IsZero() }
func (h Hours) Equal(o Hours) bool    { return h.Value.Equal(o.Value) }
func (h Hours) LessThan(o Hours) bool { return h.Value.LessThan(o.Value) }
func (h Hours) GreaterThanOrEqual(o Hours) bool {
	return h.Value.GreaterThanOrEqual(o.Value)
}

func (h Hours) Max(o Hours) Hours {
	if h.Value.GreaterThan(o.Value) {
		return h
	}
	return o
}

// Float64 converts for presentation. Engine-internal math never rounds.
func (h Hours) Float64() float64 {
	f, _ := h.Value.Float64()
	return f
}

func (h Hours) String() string { return h.Value.String() }

// Modeling constants. One selected or holiday day consumes a standard
// 8-hour workday; 40 hours marks "a full 5-day week is affordable".
// Neither is user-configurable.
var (
	Workday  = NewHoursFromInt(8)
	FullWeek = NewHoursFromInt(40)
)
