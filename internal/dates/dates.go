// Package dates holds the calendar arithmetic shared by the picker widgets.
// All computations use the wall clock of the input's location; the zero
// time.Time stands in for "no date".
package dates

import "time"

// GridCells is the number of day cells in a month grid (6 rows of 7).
const GridCells = 42

// yearSpanRadius is how many years before and after today the year grid lists.
const yearSpanRadius = 50

// WeekInfo describes the Sunday-to-Saturday week containing a date.
type WeekInfo struct {
	WeekOfMonth int
	Start       time.Time
	End         time.Time
}

// Week returns the week containing d. WeekOfMonth is 1-indexed and counts
// calendar rows of d's month, so day 1 is always in week 1.
func Week(d time.Time) WeekInfo {
	loc := d.Location()
	y, m, day := d.Date()
	dow := int(d.Weekday())

	first := time.Date(y, m, 1, 0, 0, 0, 0, loc)
	offset := int(first.Weekday())

	return WeekInfo{
		WeekOfMonth: (day + offset + 6) / 7,
		Start:       time.Date(y, m, day-dow, 0, 0, 0, 0, loc),
		End:         time.Date(y, m, day+(6-dow), 23, 59, 59, int(999*time.Millisecond), loc),
	}
}

// SameDay reports whether a and b fall on the same calendar day.
// A zero time never matches anything, not even another zero time.
func SameDay(a, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SameWeek reports whether a and b share the same Sunday start.
func SameWeek(a, b time.Time) bool {
	return Week(a).Start.Equal(Week(b).Start)
}

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysInMonth uses day 0 of the following month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Disabled reports whether d lies strictly outside [minDate, maxDate] at day
// granularity. Zero bounds are open.
func Disabled(d, minDate, maxDate time.Time) bool {
	day := DateOnly(d)
	if !minDate.IsZero() {
		lo := time.Date(minDate.Year(), minDate.Month(), minDate.Day(), 0, 0, 0, 0, d.Location())
		if day.Before(lo) {
			return true
		}
	}
	if !maxDate.IsZero() {
		hi := time.Date(maxDate.Year(), maxDate.Month(), maxDate.Day(), 0, 0, 0, 0, d.Location())
		if day.After(hi) {
			return true
		}
	}
	return false
}

// ValidDates drops zero entries.
func ValidDates(in []time.Time) []time.Time {
	out := make([]time.Time, 0, len(in))
	for _, d := range in {
		if d.IsZero() {
			continue
		}
		out = append(out, d)
	}
	return out
}

// ContainsDay reports whether any of days is the same day as d.
func ContainsDay(days []time.Time, d time.Time) bool {
	for _, h := range days {
		if SameDay(h, d) {
			return true
		}
	}
	return false
}

// MonthGrid returns the 42 dates shown for year/month: trailing days of the
// previous month, the month itself, then leading days of the next month.
func MonthGrid(year int, month time.Month, loc *time.Location) [GridCells]time.Time {
	if loc == nil {
		loc = time.Local
	}
	var grid [GridCells]time.Time
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	startPadding := int(first.Weekday())
	// time.Date normalizes day <= 0 into the previous month and overflow into
	// the next one, so a single run covers all three segments.
	for i := range grid {
		grid[i] = time.Date(year, month, 1-startPadding+i, 0, 0, 0, 0, loc)
	}
	return grid
}

// StartPadding is the weekday index of the first of the month.
func StartPadding(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// YearSpan lists the selectable years around today's year, ascending.
func YearSpan(today time.Time) []int {
	years := make([]int, 0, 2*yearSpanRadius+1)
	for y := today.Year() - yearSpanRadius; y <= today.Year()+yearSpanRadius; y++ {
		years = append(years, y)
	}
	return years
}

// AddMonths moves year/month by delta months and normalizes.
func AddMonths(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}
