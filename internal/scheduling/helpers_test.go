package scheduling

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/GameLounge-BookingService/internal/domain"
)

func mustClock(t *testing.T, s string) Clock {
	t.Helper()
	c, err := ParseClock(s)
	require.NoError(t, err)
	return c
}

// loungeGrid 10:00-22:00 with 30-minute slots
func loungeGrid(t *testing.T) *Grid {
	t.Helper()
	grid, err := NewGrid(mustClock(t, "10:00"), mustClock(t, "22:00"), 30)
	require.NoError(t, err)
	return grid
}

func booking(slot string, duration int, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		GameType:        "vr",
		TimeSlot:        slot,
		DurationMinutes: duration,
		Status:          status,
	}
}
