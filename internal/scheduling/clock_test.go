package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClock_Label(t *testing.T) {
	tests := []struct {
		clock string
		want  SlotLabel
	}{
		{clock: "00:00", want: "12:00 AM"},
		{clock: "00:30", want: "12:30 AM"},
		{clock: "09:30", want: "9:30 AM"},
		{clock: "12:00", want: "12:00 PM"},
		{clock: "12:30", want: "12:30 PM"},
		{clock: "13:05", want: "1:05 PM"},
		{clock: "23:59", want: "11:59 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.clock, func(t *testing.T) {
			assert.Equal(t, tt.want, mustClock(t, tt.clock).Label())
		})
	}
}

func TestParseSlotLabel_RoundTripWholeDay(t *testing.T) {
	seen := make(map[SlotLabel]struct{}, minutesPerDay)

	for m := 0; m < minutesPerDay; m++ {
		label := Clock(m).Label()

		_, dup := seen[label]
		require.False(t, dup, "duplicate label %s", label)
		seen[label] = struct{}{}

		parsed, err := ParseSlotLabel(label)
		require.NoError(t, err)
		require.Equal(t, Clock(m), parsed)
	}
}

func TestParseSlotLabel_Invalid(t *testing.T) {
	for _, label := range []SlotLabel{"", "14:00 PM", "02:00 PM", "2:0 PM", "2:00pm", "2:00 XM", "0:30 AM", "2:60 PM"} {
		t.Run(string(label), func(t *testing.T) {
			_, err := ParseSlotLabel(label)
			assert.ErrorIs(t, err, ErrInvalidSlotLabel)
		})
	}
}

func TestParseClock(t *testing.T) {
	c, err := ParseClock("10:30")
	require.NoError(t, err)
	assert.Equal(t, Clock(630), c)
	assert.Equal(t, "10:30", c.String())

	c, err = ParseClock("24:00")
	require.NoError(t, err)
	assert.Equal(t, Clock(minutesPerDay), c)

	_, err = ParseClock("25:00")
	assert.ErrorIs(t, err, ErrInvalidClock)

	_, err = ParseClock("noon")
	assert.ErrorIs(t, err, ErrInvalidClock)
}

func TestClock_On(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	got := mustClock(t, "14:30").On(day, loc)

	assert.Equal(t, time.Date(2025, 3, 14, 14, 30, 0, 0, loc), got)
}
