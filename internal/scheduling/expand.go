package scheduling

import "fmt"

// SlotCount converts a duration into a number of slots.
// The duration must be a positive multiple of the interval.
func SlotCount(durationMinutes, intervalMinutes int) (int, error) {
	if intervalMinutes <= 0 {
		return 0, ErrInvalidInterval
	}
	if durationMinutes <= 0 || durationMinutes%intervalMinutes != 0 {
		return 0, fmt.Errorf("%w: %d minutes with %d-minute slots", ErrInvalidDuration, durationMinutes, intervalMinutes)
	}
	return durationMinutes / intervalMinutes, nil
}

// SlotsForDuration returns the contiguous slots a booking starting at start covers.
// A start that is not in the grid yields an empty result and no error.
func SlotsForDuration(grid *Grid, start SlotLabel, durationMinutes int) ([]SlotLabel, error) {
	count, err := SlotCount(durationMinutes, grid.Interval())
	if err != nil {
		return nil, err
	}

	i, ok := grid.IndexOf(start)
	if !ok {
		return []SlotLabel{}, nil
	}

	if i+count > grid.Len() {
		return nil, fmt.Errorf("%w: %s for %d minutes", ErrExceedsClosingTime, start, durationMinutes)
	}

	out := make([]SlotLabel, count)
	copy(out, grid.slots[i:i+count])
	return out, nil
}

// occupiedRange returns the half-open grid range [from, to) held by a stored booking.
// Unlike SlotsForDuration it tolerates legacy data: a duration that is not a whole
// number of slots also holds the partially covered slot, and runs are clipped at closing.
func occupiedRange(grid *Grid, start SlotLabel, durationMinutes int) (from, to int, ok bool) {
	i, found := grid.IndexOf(start)
	if !found || durationMinutes <= 0 {
		return 0, 0, false
	}

	count := (durationMinutes + grid.Interval() - 1) / grid.Interval()
	end := i + count
	if end > grid.Len() {
		end = grid.Len()
	}
	return i, end, true
}
