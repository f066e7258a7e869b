/*
timeline.go - Window projection: segments, balance curve, markers

PURPOSE:
  Produces everything the chart renders for a 6- or 12-month window: a
  gapless run-length-merged partition of the window into work/PTO
  segments, the event-ordered balance curve, threshold-crossing markers,
  and month tick positions. The walk is a single ascending pass carrying
  a running balance; the curve is built independently from the same
  event set so the two can be cross-checked.

CLASSIFICATION:
  A day is PTO when it is selected, a holiday, or a bridged weekend - a
  Saturday/Sunday whose adjacent Friday AND Monday are both PTO dates.
  An isolated weekend next to a single day off stays "work". Work days
  additionally carry a high-balance flag (running balance >= 40h); PTO
  days do not track the distinction.

GEOMETRY:
  Positions are window-relative percentages. A day's position is the
  left edge of its band; the synthesized final curve point sits at 100.
  Segments tile [0,100] exactly - clamping tiny widths to something
  visible is the renderer's job, not the engine's.

KNOWN QUIRK (preserved):
  Holidays are folded into the PTO set for 12 months past the as-of
  date even when the visible window is 6 months, so a holiday beyond
  the chart still consumes balance. Aligning the two ranges would
  silently change published balances; the mismatch is kept on purpose.
*/
package engine

import (
	"sort"
	"time"

	"github.com/warp/pto-planner/calendar"
)

// =============================================================================
// PROJECTION RESULT - Plain-data contract for the renderer
// =============================================================================

type SegmentType string

const (
	SegmentWork SegmentType = "work"
	SegmentPTO  SegmentType = "pto"
)

// Segment is one run of identically classified days, in window-relative
// percentages. Consecutive segments never share the same classification.
type Segment struct {
	Type        SegmentType
	HighBalance bool // meaningful for work segments only
	Left        float64
	Width       float64
}

// BalancePoint is one vertex of the balance curve.
type BalancePoint struct {
	Date     calendar.Date
	Balance  Hours
	Position float64
}

// ThresholdMarker flags the exact day the balance crosses into "a full
// 5-day week is affordable" territory.
type ThresholdMarker struct {
	Date     calendar.Date
	Position float64
}

// MonthMarker is a chart axis tick.
type MonthMarker struct {
	Position float64
	Label    string
}

// Window is the projected date range, inclusive on both ends.
type Window struct {
	Start calendar.Date
	End   calendar.Date
}

func (w Window) Days() int { return calendar.DaysBetween(w.Start, w.End) + 1 }

// Projection is the full renderer contract.
type Projection struct {
	Window         Window
	Segments       []Segment
	BalancePoints  []BalancePoint
	MaxBalance     Hours
	ThresholdDates []ThresholdMarker
	MonthMarkers   []MonthMarker
}

// =============================================================================
// PROJECT - Single-pass window walk
// =============================================================================

// Project computes the projection for a window of 6 or 12 months starting
// at the first day of the as-of month. Any other window size degrades to
// 6 months; the result is always fully formed.
func (e *Engine) Project(windowMonths int) *Projection {
	if windowMonths != 6 && windowMonths != 12 {
		windowMonths = 6
	}

	start := e.cfg.AsOfDate.StartOfMonth()
	end := start.AddMonths(windowMonths).AddDays(-1)
	window := Window{Start: start, End: end}
	totalDays := window.Days()

	// Left edge of a day's band as a percentage of the window.
	position := func(d calendar.Date) float64 {
		return float64(calendar.DaysBetween(start, d)) / float64(totalDays) * 100
	}

	p := &Projection{Window: window}
	p.walkDays(e, position)
	p.buildCurve(e, position)
	p.buildMonthMarkers(windowMonths)
	return p
}

type dayClass struct {
	pto  bool
	high bool // work days only
}

// walkDays classifies every day, merges runs into segments, and records
// threshold crossings. Runs once, ascending, carrying the balance.
func (p *Projection) walkDays(e *Engine, position func(calendar.Date) float64) {
	totalDays := p.Window.Days()
	running := e.cfg.StartingBalance // balance just before the window's first modeled event

	var (
		current  dayClass
		runStart int
		runLen   int
	)

	flush := func() {
		if runLen == 0 {
			return
		}
		seg := Segment{
			Type:  SegmentWork,
			Left:  float64(runStart) / float64(totalDays) * 100,
			Width: float64(runLen) / float64(totalDays) * 100,
		}
		if current.pto {
			seg.Type = SegmentPTO
		} else {
			seg.HighBalance = current.high
		}
		p.Segments = append(p.Segments, seg)
	}

	for i := 0; i < totalDays; i++ {
		d := p.Window.Start.AddDays(i)
		before := running
		running = running.Add(e.dayDelta(d))

		class := dayClass{pto: e.classifyPTO(d)}
		if !class.pto {
			class.high = running.GreaterThanOrEqual(FullWeek)
		}

		// Threshold crossing: a working weekday stepping from below 40h
		// to at or above it.
		if !class.pto && !d.IsWeekend() &&
			before.LessThan(FullWeek) && running.GreaterThanOrEqual(FullWeek) {
			p.ThresholdDates = append(p.ThresholdDates, ThresholdMarker{
				Date:     d,
				Position: position(d),
			})
		}

		if runLen == 0 {
			current, runStart, runLen = class, i, 1
			continue
		}
		if class == current {
			runLen++
			continue
		}
		flush()
		current, runStart, runLen = class, i, 1
	}
	flush()
}

// dayDelta is the balance change scheduled for one day. Nothing before
// the as-of date moves the balance.
func (e *Engine) dayDelta(d calendar.Date) Hours {
	var delta Hours
	if d.Before(e.cfg.AsOfDate) {
		return delta
	}
	if e.schedule.Contains(d) {
		delta = delta.Add(e.cfg.AccrualAmount)
	}
	if e.ptoSet[d] {
		delta = delta.Sub(Workday)
	}
	return delta
}

// classifyPTO marks selected days, holidays, and bridged weekends - a
// Saturday or Sunday is painted only when BOTH the Friday before and the
// Monday after are themselves PTO dates.
func (e *Engine) classifyPTO(d calendar.Date) bool {
	if e.ptoSet[d] {
		return true
	}
	switch d.Weekday() {
	case time.Saturday:
		return e.ptoSet[d.AddDays(-1)] && e.ptoSet[d.AddDays(2)]
	case time.Sunday:
		return e.ptoSet[d.AddDays(-2)] && e.ptoSet[d.AddDays(1)]
	}
	return false
}

// buildCurve assembles the balance curve from the deduplicated event set:
// window start, every accrual date, every PTO date, window end.
func (p *Projection) buildCurve(e *Engine, position func(calendar.Date) float64) {
	seen := map[calendar.Date]bool{p.Window.Start: true}
	events := []calendar.Date{p.Window.Start}

	add := func(d calendar.Date) {
		if seen[d] || d.Before(p.Window.Start) || d.After(p.Window.End) {
			return
		}
		seen[d] = true
		events = append(events, d)
	}
	for _, d := range e.schedule.Dates(p.Window.Start, p.Window.End) {
		add(d)
	}
	for _, d := range e.ptoDates {
		add(d)
	}

	sort.Slice(events, func(i, j int) bool { return events[i].Before(events[j]) })

	max := e.cfg.StartingBalance
	for _, d := range events {
		b := e.BalanceAt(d)
		max = max.Max(b)
		p.BalancePoints = append(p.BalancePoints, BalancePoint{
			Date:     d,
			Balance:  b,
			Position: position(d),
		})
	}

	// The curve always runs to the right edge; synthesize the end point
	// unless an event landed exactly there.
	last := p.BalancePoints[len(p.BalancePoints)-1]
	if !last.Date.Equal(p.Window.End) {
		p.BalancePoints = append(p.BalancePoints, BalancePoint{
			Date:     p.Window.End,
			Balance:  e.BalanceAt(p.Window.End),
			Position: 100,
		})
	} else {
		p.BalancePoints[len(p.BalancePoints)-1].Position = 100
	}
	p.MaxBalance = max.Max(e.BalanceAt(p.Window.End))
}

func (p *Projection) buildMonthMarkers(windowMonths int) {
	totalDays := p.Window.Days()
	for m := 0; m < windowMonths; m++ {
		first := p.Window.Start.AddMonths(m)
		p.MonthMarkers = append(p.MonthMarkers, MonthMarker{
			Position: float64(calendar.DaysBetween(p.Window.Start, first)) / float64(totalDays) * 100,
			Label:    first.Time().Format("Jan 2006"),
		})
	}
}
