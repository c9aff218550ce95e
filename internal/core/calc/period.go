package calc

import "time"

// MonthBounds returns the half-open range [start, end) of the calendar month
// containing t, evaluated in loc.
func MonthBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}

// PreviousMonthBounds returns the range of the calendar month before the one
// containing t.
func PreviousMonthBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	start, _ := MonthBounds(t, loc)
	return start.AddDate(0, -1, 0), start
}

// YearBounds returns [Jan 1 of year, Jan 1 of year+1) in loc.
func YearBounds(year int, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(1, 0, 0)
}

// MonthOf returns the [start, end) range of the given month of year in loc.
func MonthOf(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}
