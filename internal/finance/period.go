package finance

import "time"

// Calendar helpers behind the period picker. Everything works on zero-padded
// ISO strings so range checks stay plain string comparisons.

const isoDate = "2006-01-02"

func toISO(t time.Time) string { return t.Format(isoDate) }

// CurrentMonth spans the first through last calendar day of now's month.
func CurrentMonth(now time.Time) DateRange {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, -1)
	return DateRange{Start: toISO(first), End: toISO(last)}
}

// LastMonth spans the previous calendar month.
func LastMonth(now time.Time) DateRange {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
	last := first.AddDate(0, 1, -1)
	return DateRange{Start: toISO(first), End: toISO(last)}
}

// LastThreeMonths spans from the first day of the month before last through
// the last day of the current month.
func LastThreeMonths(now time.Time) DateRange {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -2, 0)
	return DateRange{Start: toISO(first), End: CurrentMonth(now).End}
}

// ThisYear spans January 1 through the last day of the current month.
func ThisYear(now time.Time) DateRange {
	first := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	return DateRange{Start: toISO(first), End: CurrentMonth(now).End}
}

// MonthGrid lays out a month as 7-column calendar cells: empty strings pad
// up to the weekday of day 1 (Sunday-first), then one ISO date per day.
// Malformed year/month input is not defended against.
func MonthGrid(year int, month time.Month) []string {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()
	cells := make([]string, 0, int(first.Weekday())+days)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, "")
	}
	for d := 1; d <= days; d++ {
		cells = append(cells, toISO(time.Date(year, month, d, 0, 0, 0, 0, time.UTC)))
	}
	return cells
}

// NextMonth steps a year/month pair forward, for the picker's two-month view.
func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// PrevMonth steps a year/month pair backward.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// NextRecurrenceDate advances an ISO date one calendar month, clamping to
// the target month's last day (Jan 31 -> Feb 28/29).
func NextRecurrenceDate(date string) string {
	t, err := time.Parse(isoDate, date)
	if err != nil {
		return date
	}
	year, month := NextMonth(t.Year(), t.Month())
	last := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
	day := t.Day()
	if day > last {
		day = last
	}
	return toISO(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}
