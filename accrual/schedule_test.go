package accrual_test

import (
	"errors"
	"testing"

	"github.com/warp/pto-planner/accrual"
	"github.com/warp/pto-planner/calendar"
)

func date(s string) calendar.Date {
	return calendar.MustParse(s)
}

func biweekly(t *testing.T, anchor string) accrual.Schedule {
	t.Helper()
	s, err := accrual.NewSchedule(accrual.Biweekly, date(anchor))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func TestBiweekly_StepsFromAnchor(t *testing.T) {
	s := biweekly(t, "2026-01-23")

	got := s.Dates(date("2026-01-01"), date("2026-03-31"))
	want := []string{"2026-01-23", "2026-02-06", "2026-02-20", "2026-03-06", "2026-03-20"}

	if len(got) != len(want) {
		t.Fatalf("expected %d dates, got %d: %v", len(want), len(got), got)
	}
	for i, w := range want {
		if got[i].String() != w {
			t.Errorf("date %d: expected %s, got %s", i, w, got[i])
		}
	}
}

func TestBiweekly_RangeStartsMidCycle(t *testing.T) {
	// Jumping into the cycle must land on real step dates, not offsets
	// of the range start.
	s := biweekly(t, "2026-01-23")

	got := s.Dates(date("2026-02-01"), date("2026-03-01"))
	want := []string{"2026-02-06", "2026-02-20"}

	if len(got) != len(want) {
		t.Fatalf("expected %d dates, got %d: %v", len(want), len(got), got)
	}
	for i, w := range want {
		if got[i].String() != w {
			t.Errorf("date %d: expected %s, got %s", i, w, got[i])
		}
	}
}

func TestBiweekly_NothingBeforeAnchor(t *testing.T) {
	s := biweekly(t, "2026-01-23")

	if got := s.Dates(date("2025-01-01"), date("2026-01-22")); len(got) != 0 {
		t.Errorf("expected no dates before anchor, got %v", got)
	}
	// Range start before the anchor still yields the anchor itself.
	got := s.Dates(date("2026-01-01"), date("2026-01-23"))
	if len(got) != 1 || !got[0].Equal(date("2026-01-23")) {
		t.Errorf("expected just the anchor, got %v", got)
	}
}

func TestBiweekly_InclusiveBounds(t *testing.T) {
	s := biweekly(t, "2026-01-23")

	got := s.Dates(date("2026-01-23"), date("2026-02-06"))
	if len(got) != 2 {
		t.Errorf("both endpoints are accrual dates and must be included, got %v", got)
	}
}

func TestBiweekly_Contains(t *testing.T) {
	s := biweekly(t, "2026-01-23")

	for _, tc := range []struct {
		date string
		want bool
	}{
		{"2026-01-23", true},
		{"2026-02-06", true},
		{"2026-02-07", false},
		{"2026-01-09", false}, // 14-day multiple but before anchor
		{"2027-01-22", true},  // 26 steps out
	} {
		if got := s.Contains(date(tc.date)); got != tc.want {
			t.Errorf("Contains(%s): expected %v, got %v", tc.date, tc.want, got)
		}
	}
}

func TestNewSchedule_UnsupportedCadence(t *testing.T) {
	_, err := accrual.NewSchedule("monthly", date("2026-01-23"))
	if err == nil {
		t.Fatal("expected error for monthly cadence")
	}
	if !errors.Is(err, accrual.ErrUnsupportedCadence) {
		t.Errorf("expected ErrUnsupportedCadence, got %v", err)
	}
	var ucErr *accrual.UnsupportedCadenceError
	if !errors.As(err, &ucErr) {
		t.Errorf("expected UnsupportedCadenceError, got %T", err)
	}
}
