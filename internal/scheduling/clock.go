package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// Clock time of day in minutes since midnight
type Clock int

// SlotLabel canonical 12-hour slot label, e.g. "2:00 PM"
type SlotLabel string

// NewClock builds a Clock from hours and minutes.
func NewClock(hour, minute int) (Clock, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %02d:%02d", ErrInvalidClock, hour, minute)
	}
	return Clock(hour*60 + minute), nil
}

// ParseClock parses a 24-hour "HH:MM" value. "24:00" is accepted as end of day.
func ParseClock(s string) (Clock, error) {
	s = strings.TrimSpace(s)
	if s == "24:00" {
		return Clock(minutesPerDay), nil
	}

	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return Clock(t.Hour()*60 + t.Minute()), nil
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

// Add returns the clock shifted by the given number of minutes.
func (c Clock) Add(minutes int) Clock {
	return c + Clock(minutes)
}

// String formats the clock as 24-hour "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// Label formats the clock as a 12-hour slot label.
// Hour 0 renders as 12 AM, hour 12 as 12 PM.
func (c Clock) Label() SlotLabel {
	hour, minute := c.Hour()%24, c.Minute()

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}

	display := hour % 12
	if display == 0 {
		display = 12
	}

	return SlotLabel(fmt.Sprintf("%d:%02d %s", display, minute, period))
}

// On returns the moment this clock denotes on the given day in loc.
func (c Clock) On(day time.Time, loc *time.Location) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc).Add(time.Duration(c) * time.Minute)
}

// ParseSlotLabel parses a label produced by Clock.Label.
func ParseSlotLabel(label SlotLabel) (Clock, error) {
	s := string(label)

	space := strings.IndexByte(s, ' ')
	colon := strings.IndexByte(s, ':')
	if space < 0 || colon < 1 || colon > space {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSlotLabel, s)
	}

	hourPart, minutePart, period := s[:colon], s[colon+1:space], s[space+1:]
	if len(minutePart) != 2 || (len(hourPart) > 1 && hourPart[0] == '0') {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSlotLabel, s)
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil || hour < 1 || hour > 12 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSlotLabel, s)
	}
	minute, err := strconv.Atoi(minutePart)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSlotLabel, s)
	}

	switch period {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSlotLabel, s)
	}

	return Clock(hour*60 + minute), nil
}
