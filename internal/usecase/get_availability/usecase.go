package get_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/GameLounge-BookingService/internal/domain"
	"github.com/m04kA/GameLounge-BookingService/internal/scheduling"
	"github.com/m04kA/GameLounge-BookingService/pkg/ptr"
)

// UseCase computes per-slot availability for a day
type UseCase struct {
	bookingRepo BookingRepository
	schedule    *scheduling.Config
	logger      Logger
}

// NewUseCase creates a new use case instance
func NewUseCase(bookingRepo BookingRepository, schedule *scheduling.Config, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		schedule:    schedule,
		logger:      logger,
	}
}

// Execute returns the availability of every slot of the requested day
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	gameType := "-"
	if req.GameType != nil {
		gameType = *req.GameType
	}
	uc.logger.Info("GetAvailability: date=%s, gameType=%s, duration=%d",
		req.Date.Format(domain.DateFormat), gameType, req.DurationMinutes)

	grid := uc.schedule.Grid()

	// 1. Input validation
	if err := validateRequest(req, grid.Interval()); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	resp := &Response{
		Date:            req.Date,
		GameType:        req.GameType,
		DurationMinutes: req.DurationMinutes,
	}

	// 2. Limited mode: no game type, no occupancy checks
	if req.GameType == nil {
		resp.Slots = limitedSlots(grid)
		return resp, nil
	}

	// 3. Capacity of the game type
	capacity, ok := uc.schedule.Capacity(*req.GameType)
	if !ok {
		uc.logger.Warn("GetAvailability: unknown game type=%s", *req.GameType)
		return nil, fmt.Errorf("%w: %s", ErrUnknownGameType, *req.GameType)
	}

	// 4. Bookings of the day
	bookings, err := uc.bookingRepo.GetByDateAndGameType(ctx, req.Date, *req.GameType)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Occupancy once per slot, then a verdict per start slot
	occupancy := scheduling.OccupancyBySlot(grid, bookings)

	slots := make([]Slot, 0, grid.Len())
	for _, label := range grid.Slots() {
		verdict, err := scheduling.Evaluate(grid, occupancy, label, req.DurationMinutes, capacity)
		if err != nil {
			uc.logger.Error("GetAvailability: failed to evaluate slot %s: %v", label, err)
			return nil, fmt.Errorf("%w: failed to evaluate slot %s: %v", ErrInternal, label, err)
		}

		slots = append(slots, Slot{
			Time:      label,
			Available: verdict.Available,
			Occupied:  ptr.Ptr(verdict.Occupied),
			Capacity:  ptr.Ptr(verdict.Capacity),
			Reason:    verdict.Reason,
		})
	}
	resp.Slots = slots

	uc.logger.Info("GetAvailability: computed %d slots for date=%s, gameType=%s, bookings=%d",
		len(slots), req.Date.Format(domain.DateFormat), *req.GameType, len(bookings))

	return resp, nil
}

func limitedSlots(grid *scheduling.Grid) []Slot {
	slots := make([]Slot, 0, grid.Len())
	for _, label := range grid.Slots() {
		slots = append(slots, Slot{Time: label, Available: true})
	}
	return slots
}
