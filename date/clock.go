package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// ClockFormat is the HH:MM format used for trade times of day.
const ClockFormat = "15:04"

// Clock is a wall-clock time of day with minute granularity and no timezone.
type Clock struct {
	h int
	m int
}

// NewClock returns a Clock for the given hour and minute.
func NewClock(hour, minute int) Clock {
	t := time.Date(0, 1, 1, hour, minute, 0, 0, time.UTC)
	return Clock{t.Hour(), t.Minute()}
}

// Hour returns the hour of the clock, in [0,23].
func (c Clock) Hour() int { return c.h }

// Minute returns the minute of the clock, in [0,59].
func (c Clock) Minute() int { return c.m }

// IsZero reports whether c is midnight, the zero clock.
func (c Clock) IsZero() bool { return c == Clock{} }

// Compare returns -1, 0, or +1 when c is before, equal to, or after x.
func (c Clock) Compare(x Clock) int {
	if c.h != x.h {
		if c.h < x.h {
			return -1
		}
		return 1
	}
	if c.m != x.m {
		if c.m < x.m {
			return -1
		}
		return 1
	}
	return 0
}

// String formats the clock as HH:MM.
func (c Clock) String() string { return fmt.Sprintf("%02d:%02d", c.h, c.m) }

// ParseClock parses a Clock from an HH:MM string.
func ParseClock(str string) (Clock, error) {
	t, err := time.Parse(ClockFormat, str)
	if err != nil {
		return Clock{}, fmt.Errorf("invalid time %q want format %q: %w", str, ClockFormat, err)
	}
	return Clock{t.Hour(), t.Minute()}, nil
}

// MustParseClock is like ParseClock but panics on error.
func MustParseClock(str string) Clock {
	c, err := ParseClock(str)
	if err != nil {
		panic(err.Error())
	}
	return c
}

// UnmarshalJSON decodes a clock from a JSON string.
func (c *Clock) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := ParseClock(str)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalJSON encodes the clock as a JSON string.
func (c Clock) MarshalJSON() ([]byte, error) {
	str := c.String()
	return json.Marshal(&str)
}

var _ json.Marshaler = (*Clock)(nil)
var _ json.Unmarshaler = (*Clock)(nil)
