/*
balance.go - Point-in-time balance and day-off feasibility

PURPOSE:
  Implements the running-balance model. The balance is seeded at
  StartingBalance on AsOfDate, grows by AccrualAmount at each accrual
  date, and shrinks by one Workday for each distinct day off (selected
  or holiday). Everything is replayed from the configuration on every
  call - no cached state can drift.

MODEL:
  balanceAt(d) for d >= asOf:
      starting
    + accrualAmount * |accrual dates in [asOf, d]|
    - 8h           * |distinct PTO dates in [asOf, d]|
  For d < asOf the starting balance is returned unchanged: the engine
  never projects backward.

"ALL PTO DATES":
  Selected days union observed holidays. Holidays are folded in for a
  fixed 12 months past the as-of date regardless of the visible window
  size; see timeline.go for why that quirk is preserved.

SEE ALSO:
  - timeline.go: window walk and balance curve
  - snapshot.go: serializable plan state
*/
package engine

import (
	"sort"

	"github.com/warp/pto-planner/accrual"
	"github.com/warp/pto-planner/calendar"
	"github.com/warp/pto-planner/holiday"
)

// holidayLookAheadMonths fixes how far past the as-of date holidays are
// folded into the PTO date set. Deliberately independent of the visible
// window size to match the planner's historical behavior.
const holidayLookAheadMonths = 12

// Engine computes balances and projections for one plan. Immutable after
// construction; all operations are pure and safe for repeated calls.
type Engine struct {
	cfg      Config
	schedule accrual.Schedule
	catalog  holiday.Catalog

	selected map[calendar.Date]bool
	ptoSet   map[calendar.Date]bool
	ptoDates []calendar.Date // ascending
}

// New builds an engine from a normalized configuration, the user's
// selected days, and a holiday catalog. Selections on weekends or on
// holiday dates are ignored (weekends are never independently selectable
// and holidays are mandatory days off already). The only error is an
// unsupported accrual cadence.
func New(cfg Config, selections []calendar.Date, catalog holiday.Catalog) (*Engine, error) {
	schedule, err := accrual.NewSchedule(cfg.AccrualCadence, cfg.FirstAccrualDate)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:      cfg,
		schedule: schedule,
		catalog:  catalog,
		selected: make(map[calendar.Date]bool),
		ptoSet:   make(map[calendar.Date]bool),
	}

	for _, d := range selections {
		if d.IsWeekend() || catalog.Contains(d) {
			continue
		}
		e.selected[d] = true
	}

	// All PTO dates: selections plus holidays within the look-ahead.
	lookStart := cfg.AsOfDate.StartOfMonth()
	lookEnd := cfg.AsOfDate.AddMonths(holidayLookAheadMonths)
	for d := range e.selected {
		e.ptoSet[d] = true
	}
	for _, d := range catalog.InRange(lookStart, lookEnd) {
		e.ptoSet[d] = true
	}

	e.ptoDates = make([]calendar.Date, 0, len(e.ptoSet))
	for d := range e.ptoSet {
		e.ptoDates = append(e.ptoDates, d)
	}
	sort.Slice(e.ptoDates, func(i, j int) bool { return e.ptoDates[i].Before(e.ptoDates[j]) })

	return e, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config { return e.cfg }

// SelectedDates returns the accepted selections in ascending order.
func (e *Engine) SelectedDates() []calendar.Date {
	dates := make([]calendar.Date, 0, len(e.selected))
	for d := range e.selected {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// IsPTODay reports whether d is a day off: selected, a holiday within the
// look-ahead, either way it consumes one workday of balance.
func (e *Engine) IsPTODay(d calendar.Date) bool { return e.ptoSet[d] }

// usageCount counts distinct PTO dates in [asOf, d]. Usage before the
// as-of date is not modeled; the starting balance already reflects it.
func (e *Engine) usageCount(d calendar.Date) int {
	n := 0
	for _, p := range e.ptoDates {
		if p.After(d) {
			break
		}
		if p.AfterOrEqual(e.cfg.AsOfDate) {
			n++
		}
	}
	return n
}

// BalanceAt returns the balance at end of day d. Dates before the as-of
// date return the starting balance unchanged.
func (e *Engine) BalanceAt(d calendar.Date) Hours {
	if d.Before(e.cfg.AsOfDate) {
		return e.cfg.StartingBalance
	}

	accruals := len(e.schedule.Dates(e.cfg.AsOfDate, d))
	used := e.usageCount(d)

	return e.cfg.StartingBalance.
		Add(e.cfg.AccrualAmount.MulInt(accruals)).
		Sub(Workday.MulInt(used))
}

// WouldExceedBalance simulates taking d off: the balance the evening
// before, plus that day's accrual if one lands on it, must cover a full
// workday. Strictly less than 8 hours means the day would drive the
// balance below zero. This is a warning for the UI, not a block.
func (e *Engine) WouldExceedBalance(d calendar.Date) bool {
	projected := e.BalanceAt(d.AddDays(-1))
	if d.AfterOrEqual(e.cfg.AsOfDate) && e.schedule.Contains(d) {
		projected = projected.Add(e.cfg.AccrualAmount)
	}
	return projected.LessThan(Workday)
}

// =============================================================================
// PER-DAY FLAGS - Contract for the calendar widget
// =============================================================================

// DayInfo carries everything the calendar widget needs to paint one day.
// Plain data only.
type DayInfo struct {
	Date               calendar.Date
	IsHoliday          bool
	HolidayName        string
	IsAccrualDate      bool
	IsSelected         bool
	WouldExceedBalance bool
	IsWeekend          bool
	IsPast             bool
}

// DayInfo computes the widget flags for a single day.
func (e *Engine) DayInfo(d calendar.Date) DayInfo {
	name, isHoliday := e.catalog.NameOf(d)
	return DayInfo{
		Date:               d,
		IsHoliday:          isHoliday,
		HolidayName:        name,
		IsAccrualDate:      e.schedule.Contains(d),
		IsSelected:         e.selected[d],
		WouldExceedBalance: e.WouldExceedBalance(d),
		IsWeekend:          d.IsWeekend(),
		IsPast:             d.Before(e.cfg.AsOfDate),
	}
}
