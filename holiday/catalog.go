/*
Package holiday derives the observed public-holiday catalog.

PURPOSE:
  Computes the fixed date -> name mapping of US public holidays for a
  bounded year span. The catalog is a pure function of that span:
  deriving it twice yields identical mappings. Holiday dates are
  mandatory days off - the engine treats them exactly like selected PTO
  days, except they cannot be toggled.

RULES:
  Fixed-date holidays (New Year's Day, Independence Day, Christmas) shift
  to the preceding Friday when the nominal date lands on a weekend.
  Weekday-rule holidays (MLK, Memorial, Labor, Thanksgiving) are defined
  as "the Nth weekday" and never need shifting.

COVERAGE:
  A catalog knows the year span it was computed for. Lookups outside the
  span report "not a holiday" rather than failing - coverage is
  best-effort beyond the computed bound, so callers pick a generous span
  (the engine defaults to asOf year -1 through +5).

SEE ALSO:
  - calendar/datemath.go: NthWeekday, LastWeekday, Observed
  - engine: folds catalog dates into the set of PTO days
*/
package holiday

import (
	"sort"
	"time"

	"github.com/warp/pto-planner/calendar"
)

// Catalog is an immutable mapping from observed holiday date to name,
// valid for the year span it was derived from.
type Catalog struct {
	byDate   map[calendar.Date]string
	fromYear int
	toYear   int
}

// ForYears derives the catalog for every year in [from, to]. Pure and
// idempotent; a reversed span yields an empty catalog.
func ForYears(from, to int) Catalog {
	c := Catalog{byDate: make(map[calendar.Date]string), fromYear: from, toYear: to}
	for year := from; year <= to; year++ {
		c.addYear(year)
	}
	return c
}

func (c *Catalog) addYear(year int) {
	// Fixed dates, observed on the preceding Friday when on a weekend.
	c.byDate[calendar.Observed(calendar.New(year, time.January, 1))] = "New Year's Day"
	c.byDate[calendar.Observed(calendar.New(year, time.July, 4))] = "Independence Day"
	c.byDate[calendar.Observed(calendar.New(year, time.December, 25))] = "Christmas Day"

	// Weekday-rule holidays, never on a weekend by construction.
	c.byDate[calendar.NthWeekday(year, time.January, time.Monday, 3)] = "Martin Luther King Jr. Day"
	c.byDate[calendar.LastWeekday(year, time.May, time.Monday)] = "Memorial Day"
	c.byDate[calendar.NthWeekday(year, time.September, time.Monday, 1)] = "Labor Day"
	c.byDate[calendar.NthWeekday(year, time.November, time.Thursday, 4)] = "Thanksgiving"
}

// NameOf returns the holiday name for a date, if it is one.
func (c Catalog) NameOf(d calendar.Date) (string, bool) {
	name, ok := c.byDate[d]
	return name, ok
}

// Contains reports whether the date is an observed holiday.
func (c Catalog) Contains(d calendar.Date) bool {
	_, ok := c.byDate[d]
	return ok
}

// Covers reports whether the date falls inside the derived year span.
// Outside the span Contains simply returns false; Covers lets callers
// distinguish "not a holiday" from "never computed".
func (c Catalog) Covers(d calendar.Date) bool {
	if d.Year() >= c.fromYear && d.Year() <= c.toYear {
		return true
	}
	// An observed New Year's Day can land in the prior December.
	return d.Year() == c.fromYear-1 && d.Month() == time.December
}

// Span returns the derived year range.
func (c Catalog) Span() (from, to int) { return c.fromYear, c.toYear }

// Dates returns every holiday date in ascending order.
func (c Catalog) Dates() []calendar.Date {
	dates := make([]calendar.Date, 0, len(c.byDate))
	for d := range c.byDate {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// InRange returns holiday dates within [from, to] inclusive, ascending.
func (c Catalog) InRange(from, to calendar.Date) []calendar.Date {
	var dates []calendar.Date
	for _, d := range c.Dates() {
		if d.AfterOrEqual(from) && d.BeforeOrEqual(to) {
			dates = append(dates, d)
		}
	}
	return dates
}

// Len returns the number of holiday dates in the catalog.
func (c Catalog) Len() int { return len(c.byDate) }
