package scheduling

import "github.com/m04kA/GameLounge-BookingService/internal/domain"

// Occupancy counts the non-cancelled bookings holding target.
// Callers pass bookings of a single date and game type.
func Occupancy(grid *Grid, bookings []*domain.Booking, target SlotLabel) int {
	t, ok := grid.IndexOf(target)
	if !ok {
		return 0
	}

	count := 0
	for _, b := range bookings {
		if b == nil || b.IsCancelled() {
			continue
		}
		from, to, ok := occupiedRange(grid, SlotLabel(b.TimeSlot), b.DurationMinutes)
		if ok && t >= from && t < to {
			count++
		}
	}
	return count
}

// OccupancyBySlot computes the occupancy of every slot in a single pass.
// Slots without bookings are present with zero.
func OccupancyBySlot(grid *Grid, bookings []*domain.Booking) map[SlotLabel]int {
	counts := make([]int, grid.Len())
	for _, b := range bookings {
		if b == nil || b.IsCancelled() {
			continue
		}
		from, to, ok := occupiedRange(grid, SlotLabel(b.TimeSlot), b.DurationMinutes)
		if !ok {
			continue
		}
		for i := from; i < to; i++ {
			counts[i]++
		}
	}

	out := make(map[SlotLabel]int, grid.Len())
	for i, label := range grid.slots {
		out[label] = counts[i]
	}
	return out
}
