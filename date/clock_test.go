package date

import "testing"

func TestParseClock(t *testing.T) {
	tests := []struct {
		input    string
		expected Clock
		err      bool
	}{
		{"09:30", NewClock(9, 30), false},
		{"00:00", Clock{}, false},
		{"23:59", NewClock(23, 59), false},
		{"9:30", NewClock(9, 30), false},
		{"24:00", Clock{}, true},
		{"12:60", Clock{}, true},
		{"nope", Clock{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if (err != nil) != tt.err {
				t.Fatalf("ParseClock(%q) error = %v, wantErr %v", tt.input, err, tt.err)
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseClock(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestClockCompare(t *testing.T) {
	early := NewClock(9, 15)
	late := NewClock(14, 5)
	if early.Compare(late) != -1 || late.Compare(early) != 1 {
		t.Errorf("Compare ordering is wrong")
	}
	if early.Compare(NewClock(9, 15)) != 0 {
		t.Errorf("Compare equality is wrong")
	}
	if NewClock(9, 5).Compare(NewClock(9, 45)) != -1 {
		t.Errorf("Compare same-hour ordering is wrong")
	}
}

func TestClockString(t *testing.T) {
	if got := NewClock(7, 5).String(); got != "07:05" {
		t.Errorf("String = %q, want %q", got, "07:05")
	}
}
