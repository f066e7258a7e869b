package calendar

import "time"

// =============================================================================
// MONTH GRID - Week-aligned layout for the calendar widget
// =============================================================================

// Week is one row of a calendar grid, Sunday first.
type Week [7]Date

// MonthGrid returns the weeks covering a calendar month, padded on both
// sides with adjacent-month days so every row holds exactly seven dates.
// The widget decides how padding days are rendered; the grid only reports
// geometry.
func MonthGrid(year int, month time.Month) []Week {
	first := New(year, month, 1)
	last := first.EndOfMonth()

	// Back up to the Sunday on or before the 1st.
	cursor := first.AddDays(-int(first.Weekday()))

	var weeks []Week
	for cursor.BeforeOrEqual(last) {
		var w Week
		for i := 0; i < 7; i++ {
			w[i] = cursor
			cursor = cursor.AddDays(1)
		}
		weeks = append(weeks, w)
	}
	return weeks
}

// InMonth reports whether d belongs to the given month (used to distinguish
// padding days in a grid row).
func InMonth(d Date, year int, month time.Month) bool {
	return d.Year() == year && d.Month() == month
}
