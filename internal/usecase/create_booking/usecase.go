package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/GameLounge-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/GameLounge-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/GameLounge-BookingService/internal/scheduling"
	"github.com/m04kA/GameLounge-BookingService/pkg/refnum"
	"github.com/m04kA/GameLounge-BookingService/pkg/txmanager"
)

// maxAttempts reference collisions and serialization conflicts are retried up to this many times
const maxAttempts = 3

// Options lounge rules applied by the use case
type Options struct {
	Schedule *scheduling.Config
	Location *time.Location
}

// UseCase creates bookings after a capacity check for every covered slot
type UseCase struct {
	bookingRepo  BookingRepository
	pricing      PriceCalculator
	txManager    TransactionManager
	metrics      Metrics
	opts         Options
	newReference func() (string, error)
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates a new use case instance
func NewUseCase(
	bookingRepo BookingRepository,
	pricing PriceCalculator,
	txManager TransactionManager,
	metrics Metrics,
	opts Options,
	logger Logger,
) *UseCase {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		pricing:      pricing,
		txManager:    txManager,
		metrics:      metrics,
		opts:         opts,
		newReference: refnum.Generate,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute creates a pending booking.
// The capacity check and the insert run in one serializable transaction.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: gameType=%s, date=%s, slot=%s, duration=%d, people=%d",
		req.GameType, req.Date.Format(domain.DateFormat), req.TimeSlot, req.DurationMinutes, req.NumPeople)

	// 1. Input validation
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}
	if err := validateSchedule(req, uc.opts.Schedule); err != nil {
		uc.logger.Warn("CreateBooking: schedule validation failed: %v", err)
		return nil, err
	}

	// 2. Slot must not have started yet
	if err := validateStart(req, uc.timeProvider.Now(), uc.opts.Location); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	// 3. Price
	price, err := uc.pricing.Calculate(req.GameType, req.DurationMinutes, req.NumPeople)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to calculate price: %v", err)
		return nil, fmt.Errorf("%w: failed to calculate price: %v", ErrInternal, err)
	}

	// 4. Check and insert, retrying reference collisions and serialization conflicts
	var result *domain.Booking
	for attempt := 1; ; attempt++ {
		result, err = uc.tryCreate(ctx, req, price)
		if err == nil {
			break
		}
		if !isRetryable(err) {
			return nil, err
		}
		if attempt == maxAttempts {
			uc.logger.Error("CreateBooking: giving up after %d attempts: %v", attempt, err)
			return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
		uc.logger.Warn("CreateBooking: attempt %d failed, retrying: %v", attempt, err)
	}

	uc.metrics.BookingCreated(result.GameType)
	uc.logger.Info("CreateBooking: created booking id=%s, ref=%s", result.ID, result.ReferenceNumber)

	return toResponse(result), nil
}

func (uc *UseCase) tryCreate(ctx context.Context, req *Request, price float64) (*domain.Booking, error) {
	reference, err := uc.newReference()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to generate reference: %v", ErrInternal, err)
	}

	schedule := uc.opts.Schedule
	grid := schedule.Grid()
	capacity, _ := schedule.Capacity(req.GameType)
	slot := scheduling.SlotLabel(req.TimeSlot)

	var result *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Day's bookings for the game type, locked
		bookings, err := uc.bookingRepo.GetByDateAndGameType(txCtx, req.Date, req.GameType)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		// 4.2. Capacity of every slot of the run
		occupancy := scheduling.OccupancyBySlot(grid, bookings)
		verdict, err := scheduling.Evaluate(grid, occupancy, slot, req.DurationMinutes, capacity)
		if err != nil {
			return fmt.Errorf("%w: failed to evaluate slot: %v", ErrInternal, err)
		}

		switch verdict.Reason {
		case scheduling.ReasonPastClosing:
			uc.metrics.SlotRejected(req.GameType, string(verdict.Reason))
			uc.logger.Warn("CreateBooking: %s for %d minutes runs past closing", slot, req.DurationMinutes)
			return fmt.Errorf("%w: %s for %d minutes", ErrExceedsClosingTime, slot, req.DurationMinutes)
		case scheduling.ReasonFull:
			uc.metrics.SlotRejected(req.GameType, string(verdict.Reason))
			uc.logger.Warn("CreateBooking: slot not available, %d/%d stations taken",
				verdict.Occupied, verdict.Capacity)
			return fmt.Errorf("%w: %d/%d stations taken", ErrSlotNotAvailable, verdict.Occupied, verdict.Capacity)
		}

		// 4.3. Insert
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			ReferenceNumber: reference,
			Name:            strings.TrimSpace(req.Name),
			Phone:           strings.TrimSpace(req.Phone),
			Email:           req.Email,
			GameType:        req.GameType,
			Date:            req.Date,
			TimeSlot:        req.TimeSlot,
			DurationMinutes: req.DurationMinutes,
			NumPeople:       req.NumPeople,
			Price:           price,
			Status:          domain.StatusPending,
			SpecialRequests: req.SpecialRequests,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrDuplicateReference) {
				return err
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func isRetryable(err error) bool {
	return errors.Is(err, bookingRepo.ErrDuplicateReference) ||
		errors.Is(err, txmanager.ErrSerializationFailure)
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:              b.ID,
		ReferenceNumber: b.ReferenceNumber,
		Name:            b.Name,
		Phone:           b.Phone,
		Email:           b.Email,
		GameType:        b.GameType,
		Date:            b.Date,
		TimeSlot:        b.TimeSlot,
		DurationMinutes: b.DurationMinutes,
		NumPeople:       b.NumPeople,
		Price:           b.Price,
		Status:          string(b.Status),
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
