package get_availability

import (
	"time"

	"github.com/m04kA/GameLounge-BookingService/internal/scheduling"
)

// Request availability query for a single day
type Request struct {
	Date            time.Time // calendar day
	GameType        *string   // nil means limited mode without occupancy checks
	DurationMinutes int
}

// Response availability of every slot of the day
type Response struct {
	Date            time.Time
	GameType        *string
	DurationMinutes int
	Slots           []Slot
}

// Slot availability of a single start slot.
// Occupied and Capacity are nil in limited mode.
type Slot struct {
	Time      scheduling.SlotLabel
	Available bool
	Occupied  *int
	Capacity  *int
	Reason    scheduling.Reason
}
