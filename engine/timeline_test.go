package engine_test

import (
	"math"
	"testing"

	"github.com/warp/pto-planner/calendar"
	"github.com/warp/pto-planner/engine"
	"github.com/warp/pto-planner/holiday"
)

const positionEpsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < positionEpsilon
}

// =============================================================================
// WINDOW GEOMETRY
// =============================================================================

func TestProject_WindowBounds(t *testing.T) {
	// GIVEN: As-of date 2026-01-09
	// THEN: The 6-month window runs Jan 1 through Jun 30 inclusive

	e := newEngine(t, baseConfig(), nil, noHolidays())
	p := e.Project(6)

	if !p.Window.Start.Equal(date("2026-01-01")) {
		t.Errorf("window should start at the first of the as-of month, got %s", p.Window.Start)
	}
	if !p.Window.End.Equal(date("2026-06-30")) {
		t.Errorf("6-month window should end 2026-06-30, got %s", p.Window.End)
	}
	if p.Window.Days() != 181 {
		t.Errorf("Jan-Jun 2026 spans 181 days, got %d", p.Window.Days())
	}

	p12 := e.Project(12)
	if !p12.Window.End.Equal(date("2026-12-31")) {
		t.Errorf("12-month window should end 2026-12-31, got %s", p12.Window.End)
	}
	if p12.Window.Days() != 365 {
		t.Errorf("2026 spans 365 days, got %d", p12.Window.Days())
	}
}

func TestProject_UnsupportedWindowDegradesToSix(t *testing.T) {
	e := newEngine(t, baseConfig(), nil, noHolidays())

	for _, months := range []int{0, 1, 9, -6, 24} {
		p := e.Project(months)
		if !p.Window.End.Equal(date("2026-06-30")) {
			t.Errorf("Project(%d): expected the 6-month window, got end %s", months, p.Window.End)
		}
	}
}

// =============================================================================
// SEGMENTS
// =============================================================================

func TestProject_SegmentsTileTheWindow(t *testing.T) {
	// The segments partition [0,100] with no gaps, no overlap, and no two
	// adjacent segments sharing a classification.

	sel := []calendar.Date{date("2026-01-20"), date("2026-02-13"), date("2026-02-16")}
	e := newEngine(t, baseConfig(), sel, holiday.ForYears(2026, 2026))
	p := e.Project(6)

	if len(p.Segments) == 0 {
		t.Fatal("expected at least one segment")
	}

	cursor := 0.0
	for i, seg := range p.Segments {
		if !almostEqual(seg.Left, cursor) {
			t.Errorf("segment %d: left %v, expected %v", i, seg.Left, cursor)
		}
		if seg.Width <= 0 {
			t.Errorf("segment %d: non-positive width %v", i, seg.Width)
		}
		if i > 0 {
			prev := p.Segments[i-1]
			if prev.Type == seg.Type && prev.HighBalance == seg.HighBalance {
				t.Errorf("segments %d and %d were not merged: %+v / %+v", i-1, i, prev, seg)
			}
		}
		cursor += seg.Width
	}
	if !almostEqual(cursor, 100) {
		t.Errorf("segments should tile to 100%%, got %v", cursor)
	}
}

func TestProject_BridgedWeekendJoinsPTO(t *testing.T) {
	// GIVEN: Friday Feb 13 and Monday Feb 16 selected, nothing else off
	// THEN: The enclosed weekend is painted PTO, one 4-day segment

	sel := []calendar.Date{date("2026-02-13"), date("2026-02-16")}
	e := newEngine(t, baseConfig(), sel, noHolidays())
	p := e.Project(6)

	seg, ok := findPTOSegment(p)
	if !ok {
		t.Fatal("expected a PTO segment")
	}

	wantLeft := 43.0 / 181 * 100  // Feb 13 is day index 43
	wantWidth := 4.0 / 181 * 100  // Fri through Mon
	if !almostEqual(seg.Left, wantLeft) {
		t.Errorf("PTO segment left: expected %v, got %v", wantLeft, seg.Left)
	}
	if !almostEqual(seg.Width, wantWidth) {
		t.Errorf("PTO segment width: expected %v, got %v", wantWidth, seg.Width)
	}
}

func TestProject_IsolatedFridayLeavesWeekendWorking(t *testing.T) {
	// A single Friday off without the following Monday does not bridge.
	sel := []calendar.Date{date("2026-02-13")}
	e := newEngine(t, baseConfig(), sel, noHolidays())
	p := e.Project(6)

	seg, ok := findPTOSegment(p)
	if !ok {
		t.Fatal("expected a PTO segment")
	}
	if !almostEqual(seg.Width, 1.0/181*100) {
		t.Errorf("lone Friday should be a 1-day segment, got width %v", seg.Width)
	}
}

func findPTOSegment(p *engine.Projection) (engine.Segment, bool) {
	for _, seg := range p.Segments {
		if seg.Type == engine.SegmentPTO {
			return seg, true
		}
	}
	return engine.Segment{}, false
}

// =============================================================================
// THRESHOLD MARKERS
// =============================================================================

func TestProject_ThresholdMarkedOnCrossingDay(t *testing.T) {
	// GIVEN: 32h starting balance, 11.08h accruing Friday Jan 23
	// THEN: Exactly one marker, on Jan 23, where the balance steps 32 -> 43.08

	cfg := baseConfig()
	cfg.StartingBalance = hours(32)
	e := newEngine(t, cfg, nil, noHolidays())
	p := e.Project(6)

	if len(p.ThresholdDates) != 1 {
		t.Fatalf("expected one threshold marker, got %d", len(p.ThresholdDates))
	}
	if !p.ThresholdDates[0].Date.Equal(date("2026-01-23")) {
		t.Errorf("threshold should land on 2026-01-23, got %s", p.ThresholdDates[0].Date)
	}
}

func TestProject_NoThresholdWhenAlreadyHigh(t *testing.T) {
	cfg := baseConfig()
	cfg.StartingBalance = hours(50)
	e := newEngine(t, cfg, nil, noHolidays())
	p := e.Project(6)

	if len(p.ThresholdDates) != 0 {
		t.Errorf("starting above 40h should produce no markers, got %d", len(p.ThresholdDates))
	}
}

// =============================================================================
// BALANCE CURVE
// =============================================================================

func TestProject_CurveSpansTheWindow(t *testing.T) {
	sel := []calendar.Date{date("2026-01-20")}
	e := newEngine(t, baseConfig(), sel, holiday.ForYears(2026, 2026))
	p := e.Project(6)

	if len(p.BalancePoints) < 2 {
		t.Fatal("expected at least the two endpoint vertices")
	}

	first := p.BalancePoints[0]
	if !first.Date.Equal(p.Window.Start) || !almostEqual(first.Position, 0) {
		t.Errorf("curve should start at the window's left edge, got %+v", first)
	}

	last := p.BalancePoints[len(p.BalancePoints)-1]
	if !almostEqual(last.Position, 100) {
		t.Errorf("curve should end at position 100, got %v", last.Position)
	}
	if !last.Balance.Equal(e.BalanceAt(p.Window.End)) {
		t.Errorf("final vertex should carry the end-of-window balance")
	}

	for i := 1; i < len(p.BalancePoints); i++ {
		if !p.BalancePoints[i-1].Date.Before(p.BalancePoints[i].Date) {
			t.Fatalf("curve dates not strictly ascending at index %d", i)
		}
	}
}

func TestProject_CurveVerticesMatchBalanceAt(t *testing.T) {
	// Every vertex must agree with the point query; one model, two views.
	e := newEngine(t, baseConfig(), []calendar.Date{date("2026-03-03")}, holiday.ForYears(2026, 2026))
	p := e.Project(12)

	for _, pt := range p.BalancePoints {
		if !pt.Balance.Equal(e.BalanceAt(pt.Date)) {
			t.Errorf("vertex at %s: curve says %v, BalanceAt says %v",
				pt.Date, pt.Balance, e.BalanceAt(pt.Date))
		}
	}
}

func TestProject_MaxBalanceDominatesCurve(t *testing.T) {
	e := newEngine(t, baseConfig(), nil, holiday.ForYears(2026, 2026))
	p := e.Project(6)

	for _, pt := range p.BalancePoints {
		if p.MaxBalance.LessThan(pt.Balance) {
			t.Errorf("MaxBalance %v is below vertex %v at %s", p.MaxBalance, pt.Balance, pt.Date)
		}
	}
}

// =============================================================================
// MONTH MARKERS
// =============================================================================

func TestProject_MonthMarkers(t *testing.T) {
	e := newEngine(t, baseConfig(), nil, noHolidays())
	p := e.Project(6)

	if len(p.MonthMarkers) != 6 {
		t.Fatalf("expected 6 markers, got %d", len(p.MonthMarkers))
	}
	if p.MonthMarkers[0].Label != "Jan 2026" || !almostEqual(p.MonthMarkers[0].Position, 0) {
		t.Errorf("first marker should be Jan 2026 at 0, got %+v", p.MonthMarkers[0])
	}
	if p.MonthMarkers[5].Label != "Jun 2026" {
		t.Errorf("last marker should be Jun 2026, got %q", p.MonthMarkers[5].Label)
	}

	wantFeb := 31.0 / 181 * 100
	if !almostEqual(p.MonthMarkers[1].Position, wantFeb) {
		t.Errorf("Feb marker: expected position %v, got %v", wantFeb, p.MonthMarkers[1].Position)
	}

	p12 := e.Project(12)
	if len(p12.MonthMarkers) != 12 {
		t.Errorf("expected 12 markers for the year window, got %d", len(p12.MonthMarkers))
	}
	if p12.MonthMarkers[11].Label != "Dec 2026" {
		t.Errorf("last annual marker should be Dec 2026, got %q", p12.MonthMarkers[11].Label)
	}
}
