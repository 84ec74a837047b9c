package get_availability

import (
	"github.com/m04kA/GameLounge-BookingService/internal/domain"
	getAvailability "github.com/m04kA/GameLounge-BookingService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date            string         `json:"date"`
	GameType        *string        `json:"gameType,omitempty"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

// SlotResponse availability of one start slot
type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Occupied  *int   `json:"occupied,omitempty"`
	Capacity  *int   `json:"capacity,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// FromUseCaseResponse converts the use case response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Time:      string(s.Time),
			Available: s.Available,
			Occupied:  s.Occupied,
			Capacity:  s.Capacity,
			Reason:    string(s.Reason),
		})
	}

	return &AvailabilityResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		GameType:        resp.GameType,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
