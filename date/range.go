package date

import (
	"fmt"
	"time"
)

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// LastDays returns the range covering the n days ending at 'to', boundaries
// included. LastDays(7, today) is the journal's "last 7 days" window.
func LastDays(n int, to Date) Range {
	return Range{From: to.Add(-n), To: to}
}

// Contains reports whether the date is included in the range (boundaries included).
func (r Range) Contains(d Date) bool { return !d.Before(r.From) && !d.After(r.To) }

// String formats the range as "from to to".
func (r Range) String() string { return fmt.Sprintf("%s to %s", r.From, r.To) }

// CalendarMonth identifies one calendar month, used to bucket trades for the
// monthly profit-factor series.
type CalendarMonth struct {
	Year  int
	Month time.Month
}

// MonthOf returns the calendar month containing d.
func MonthOf(d Date) CalendarMonth { return CalendarMonth{d.Year(), d.Month()} }

// Contains reports whether the date falls within the calendar month.
func (m CalendarMonth) Contains(d Date) bool {
	return d.Year() == m.Year && d.Month() == m.Month
}

// Label returns a short display label like "Jan 26".
func (m CalendarMonth) Label() string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 06")
}

// LastMonths returns the n calendar months ending with the month of 'to',
// oldest first.
func LastMonths(n int, to Date) []CalendarMonth {
	months := make([]CalendarMonth, 0, n)
	for i := n - 1; i >= 0; i-- {
		months = append(months, MonthOf(to.AddMonths(-i)))
	}
	return months
}
