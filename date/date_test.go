package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2026-01-15", New(2026, time.January, 15), false},
		{"2026-7-1", New(2026, time.July, 1), false},
		{"2026-02-29", Date{}, true}, // not a leap year
		{"invalid-date", Date{}, true},
		{"", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.err {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.err)
			}
			if !tt.err && got != tt.expected {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name     string
		start    Date
		days     int
		expected Date
	}{
		{"within month", New(2026, time.March, 10), 5, New(2026, time.March, 15)},
		{"across month", New(2026, time.January, 30), 5, New(2026, time.February, 4)},
		{"across year backward", New(2026, time.January, 3), -7, New(2025, time.December, 27)},
		{"leap day", New(2024, time.February, 28), 1, New(2024, time.February, 29)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.start.Add(tt.days); got != tt.expected {
				t.Errorf("Add(%d) = %v, want %v", tt.days, got, tt.expected)
			}
		})
	}
}

func TestAddMonths(t *testing.T) {
	// Month arithmetic normalizes overflow days forward, like time.Date.
	got := New(2026, time.January, 31).AddMonths(1)
	want := New(2026, time.March, 3)
	if got != want {
		t.Errorf("AddMonths(1) = %v, want %v", got, want)
	}
	if got := New(2026, time.March, 15).AddMonths(-12); got != New(2025, time.March, 15) {
		t.Errorf("AddMonths(-12) = %v", got)
	}
}

func TestCompare(t *testing.T) {
	a := New(2026, time.May, 1)
	b := New(2026, time.May, 2)
	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before is wrong for %v vs %v", a, b)
	}
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Errorf("Compare is wrong for %v vs %v", a, b)
	}
}

func TestMonthsSince(t *testing.T) {
	tests := []struct {
		name     string
		from, to Date
		expected int
	}{
		{"same month", New(2026, time.March, 1), New(2026, time.March, 28), 1},
		{"partial month floors at one", New(2026, time.March, 28), New(2026, time.April, 2), 1},
		{"one year", New(2025, time.March, 15), New(2026, time.March, 15), 12},
		{"future date floors at one", New(2026, time.June, 1), New(2026, time.March, 1), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.MonthsSince(tt.to); got != tt.expected {
				t.Errorf("MonthsSince = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestStringSortsChronologically(t *testing.T) {
	a := New(2025, time.December, 31)
	b := New(2026, time.January, 1)
	if !(a.String() < b.String()) {
		t.Errorf("ISO strings do not sort chronologically: %q vs %q", a, b)
	}
}

func TestDateJSON(t *testing.T) {
	d := New(2026, time.August, 29)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"2026-08-29"` {
		t.Errorf("Marshal = %s", data)
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}
