package holiday_test

import (
	"testing"

	"github.com/warp/pto-planner/calendar"
	"github.com/warp/pto-planner/holiday"
)

func date(s string) calendar.Date {
	return calendar.MustParse(s)
}

func TestForYears_KnownDates2026(t *testing.T) {
	c := holiday.ForYears(2026, 2026)

	want := map[string]string{
		"2026-01-01": "New Year's Day",
		"2026-01-19": "Martin Luther King Jr. Day",
		"2026-05-25": "Memorial Day",
		"2026-07-03": "Independence Day", // Jul 4 2026 is a Saturday
		"2026-09-07": "Labor Day",
		"2026-11-26": "Thanksgiving",
		"2026-12-25": "Christmas Day",
	}
	for ds, name := range want {
		got, ok := c.NameOf(date(ds))
		if !ok {
			t.Errorf("expected %s to be a holiday", ds)
			continue
		}
		if got != name {
			t.Errorf("%s: expected %q, got %q", ds, name, got)
		}
	}
	if c.Contains(date("2026-07-04")) {
		t.Error("nominal July 4 should not appear once shifted to Friday")
	}
}

func TestForYears_NewYears2028_ObservedPriorFriday(t *testing.T) {
	// New Year's Day 2028 is a Saturday: observed Friday Dec 31 2027.
	c := holiday.ForYears(2028, 2028)
	name, ok := c.NameOf(date("2027-12-31"))
	if !ok || name != "New Year's Day" {
		t.Errorf("expected New Year's Day on 2027-12-31, got %q (ok=%v)", name, ok)
	}
}

func TestForYears_Idempotent(t *testing.T) {
	a := holiday.ForYears(2025, 2028)
	b := holiday.ForYears(2025, 2028)

	da, db := a.Dates(), b.Dates()
	if len(da) != len(db) {
		t.Fatalf("derivations differ in size: %d vs %d", len(da), len(db))
	}
	for i := range da {
		if !da[i].Equal(db[i]) {
			t.Errorf("date %d differs: %s vs %s", i, da[i], db[i])
		}
		na, _ := a.NameOf(da[i])
		nb, _ := b.NameOf(db[i])
		if na != nb {
			t.Errorf("%s: names differ: %q vs %q", da[i], na, nb)
		}
	}
}

func TestForYears_ObservedHolidaysNeverOnWeekend(t *testing.T) {
	c := holiday.ForYears(2020, 2035)
	for _, d := range c.Dates() {
		if d.IsWeekend() {
			name, _ := c.NameOf(d)
			t.Errorf("%s (%s) falls on a weekend", d, name)
		}
	}
}

func TestDates_SortedAscending(t *testing.T) {
	c := holiday.ForYears(2025, 2027)
	dates := c.Dates()
	for i := 1; i < len(dates); i++ {
		if !dates[i-1].Before(dates[i]) {
			t.Errorf("dates not strictly ascending at %d: %s, %s", i, dates[i-1], dates[i])
		}
	}
}

func TestInRange_Filters(t *testing.T) {
	c := holiday.ForYears(2026, 2026)
	got := c.InRange(date("2026-01-01"), date("2026-06-30"))
	// New Year's, MLK, Memorial
	if len(got) != 3 {
		t.Fatalf("expected 3 holidays in H1 2026, got %d", len(got))
	}
	if !got[0].Equal(date("2026-01-01")) || !got[2].Equal(date("2026-05-25")) {
		t.Errorf("unexpected range contents: %v", got)
	}
}

func TestCovers_OutsideSpanIsNotAnError(t *testing.T) {
	// A date past the computed span is simply not a holiday.
	c := holiday.ForYears(2026, 2027)
	far := date("2031-01-01")
	if c.Covers(far) {
		t.Error("2031 should be outside the span")
	}
	if c.Contains(far) {
		t.Error("uncovered date must report not-a-holiday")
	}
	// The prior December is covered: observed New Year's can land there.
	if !c.Covers(date("2025-12-31")) {
		t.Error("December before the span start should be covered")
	}
}
