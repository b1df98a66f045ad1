package date

import (
	"reflect"
	"testing"
	"time"
)

func TestLastDays(t *testing.T) {
	to := New(2026, time.August, 29)
	r := LastDays(7, to)
	if r.From != New(2026, time.August, 22) || r.To != to {
		t.Fatalf("LastDays(7) = %v", r)
	}
	if !r.Contains(r.From) || !r.Contains(r.To) {
		t.Errorf("range boundaries should be included")
	}
	if r.Contains(New(2026, time.August, 21)) {
		t.Errorf("range should not contain the day before From")
	}
}

func TestNewRangeSwaps(t *testing.T) {
	from := New(2026, time.March, 10)
	to := New(2026, time.March, 1)
	r := NewRange(from, to)
	if r.From != to || r.To != from {
		t.Errorf("NewRange should swap reversed boundaries, got %v", r)
	}
}

func TestCalendarMonth(t *testing.T) {
	m := MonthOf(New(2026, time.February, 14))
	if !m.Contains(New(2026, time.February, 1)) || !m.Contains(New(2026, time.February, 28)) {
		t.Errorf("month should contain its boundary days")
	}
	if m.Contains(New(2026, time.March, 1)) || m.Contains(New(2025, time.February, 14)) {
		t.Errorf("month should not contain other months or years")
	}
	if m.Label() != "Feb 26" {
		t.Errorf("Label = %q", m.Label())
	}
}

func TestLastMonths(t *testing.T) {
	got := LastMonths(3, New(2026, time.January, 15))
	expected := []CalendarMonth{
		{2025, time.November},
		{2025, time.December},
		{2026, time.January},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("LastMonths(3) = %v, want %v", got, expected)
	}
}
