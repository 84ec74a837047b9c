package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/GameLounge-BookingService/internal/domain"
)

func TestOccupancy_CountsOverlappingBookings(t *testing.T) {
	grid := loungeGrid(t)
	bookings := []*domain.Booking{
		booking("2:00 PM", 90, domain.StatusConfirmed),
		booking("3:00 PM", 60, domain.StatusPending),
	}

	assert.Equal(t, 0, Occupancy(grid, bookings, "1:30 PM"))
	assert.Equal(t, 1, Occupancy(grid, bookings, "2:00 PM"))
	assert.Equal(t, 1, Occupancy(grid, bookings, "2:30 PM"))
	assert.Equal(t, 2, Occupancy(grid, bookings, "3:00 PM"))
	assert.Equal(t, 1, Occupancy(grid, bookings, "3:30 PM"))
	assert.Equal(t, 0, Occupancy(grid, bookings, "4:00 PM"))
}

func TestOccupancy_SkipsCancelled(t *testing.T) {
	grid := loungeGrid(t)
	bookings := []*domain.Booking{
		booking("4:00 PM", 60, domain.StatusConfirmed),
		booking("4:00 PM", 60, domain.StatusCancelled),
		booking("4:00 PM", 60, domain.StatusCompleted),
	}

	assert.Equal(t, 2, Occupancy(grid, bookings, "4:00 PM"))
}

func TestOccupancy_StartOutsideGridContributesNothing(t *testing.T) {
	grid := loungeGrid(t)
	bookings := []*domain.Booking{booking("8:00 AM", 180, domain.StatusConfirmed)}

	for _, slot := range grid.Slots() {
		assert.Equal(t, 0, Occupancy(grid, bookings, slot))
	}
}

func TestOccupancy_StoredIrregularDurations(t *testing.T) {
	grid := loungeGrid(t)

	// 45 minutes also holds the partially covered slot
	partial := []*domain.Booking{booking("2:00 PM", 45, domain.StatusConfirmed)}
	assert.Equal(t, 1, Occupancy(grid, partial, "2:30 PM"))
	assert.Equal(t, 0, Occupancy(grid, partial, "3:00 PM"))

	// run crossing closing is clipped at the last slot
	late := []*domain.Booking{booking("9:30 PM", 120, domain.StatusConfirmed)}
	assert.Equal(t, 1, Occupancy(grid, late, "9:30 PM"))

	zero := []*domain.Booking{booking("2:00 PM", 0, domain.StatusConfirmed)}
	assert.Equal(t, 0, Occupancy(grid, zero, "2:00 PM"))
}

func TestOccupancyBySlot_MatchesOccupancy(t *testing.T) {
	grid := loungeGrid(t)
	bookings := []*domain.Booking{
		booking("10:00 AM", 120, domain.StatusConfirmed),
		booking("11:00 AM", 30, domain.StatusPending),
		booking("11:00 AM", 60, domain.StatusCancelled),
		booking("9:00 PM", 60, domain.StatusConfirmed),
		booking("7:00 AM", 60, domain.StatusConfirmed),
		nil,
	}

	bySlot := OccupancyBySlot(grid, bookings)

	assert.Len(t, bySlot, grid.Len())
	for _, slot := range grid.Slots() {
		assert.Equal(t, Occupancy(grid, bookings, slot), bySlot[slot], "slot %s", slot)
	}
	assert.Equal(t, 2, bySlot["11:00 AM"])
}
