package scheduling

import "errors"

// DefaultCapacity capacity of a game type missing from configuration
const DefaultCapacity = 1

// Reason why a slot is unavailable
type Reason string

const (
	ReasonNone        Reason = ""
	ReasonFull        Reason = "full"
	ReasonPastClosing Reason = "past_closing"
)

// SlotCheck result of a capacity check
type SlotCheck struct {
	Available bool
	Occupied  int
	Capacity  int
}

// CheckSlot reports whether one more booking fits. Capacity below 1 is treated as DefaultCapacity.
func CheckSlot(occupied, capacity int) SlotCheck {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return SlotCheck{
		Available: occupied < capacity,
		Occupied:  occupied,
		Capacity:  capacity,
	}
}

// Verdict availability of a start slot for a requested duration
type Verdict struct {
	Slot SlotLabel
	SlotCheck
	Reason Reason
}

// Evaluate decides whether a booking of durationMinutes can start at start.
// occupancy is the result of OccupancyBySlot for the same grid.
//
//   - run past the last slot: unavailable, ReasonPastClosing, Occupied of the start slot
//   - any covered slot at capacity: unavailable, ReasonFull, Occupied of the first full slot
//   - otherwise available, Occupied of the start slot
//
// A start outside the grid covers no slots and is reported available with zero occupancy.
func Evaluate(grid *Grid, occupancy map[SlotLabel]int, start SlotLabel, durationMinutes, capacity int) (Verdict, error) {
	run, err := SlotsForDuration(grid, start, durationMinutes)
	switch {
	case err == nil:
	case errors.Is(err, ErrExceedsClosingTime):
		check := CheckSlot(occupancy[start], capacity)
		check.Available = false
		return Verdict{Slot: start, SlotCheck: check, Reason: ReasonPastClosing}, nil
	default:
		return Verdict{}, err
	}

	for _, slot := range run {
		check := CheckSlot(occupancy[slot], capacity)
		if !check.Available {
			return Verdict{Slot: start, SlotCheck: check, Reason: ReasonFull}, nil
		}
	}

	return Verdict{Slot: start, SlotCheck: CheckSlot(occupancy[start], capacity)}, nil
}
