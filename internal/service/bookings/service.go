package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/m04kA/GameLounge-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/GameLounge-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/GameLounge-BookingService/internal/scheduling"
	"github.com/m04kA/GameLounge-BookingService/internal/service/bookings/models"
	"github.com/m04kA/GameLounge-BookingService/pkg/refnum"
)

// Options lounge rules applied by the service
type Options struct {
	CancellationNotice time.Duration
	Location           *time.Location
}

// Service booking lookups and staff operations
type Service struct {
	bookingRepo  BookingRepository
	opts         Options
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates the booking service
func NewService(bookingRepo BookingRepository, opts Options, logger Logger) *Service {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Service{
		bookingRepo:  bookingRepo,
		opts:         opts,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID returns a booking by id
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetByReference returns a booking by its reference number.
// A malformed reference is reported as not found.
func (s *Service) GetByReference(ctx context.Context, reference string) (*models.BookingResponse, error) {
	booking, err := s.findByReference(ctx, "GetByReference", reference)
	if err != nil {
		return nil, err
	}
	return models.FromDomainBooking(booking), nil
}

// List returns bookings matching the optional filters, newest first
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter := domain.BookingsFilter{
		Date:     req.Date,
		GameType: req.GameType,
	}

	if req.Status != nil {
		status, err := domain.ParseBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
		}
		filter.Status = &status
	}

	bookings, err := s.bookingRepo.GetAll(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Update changes status and special requests of a booking
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	var upd domain.BookingUpdate

	if req.Status != nil {
		status, err := domain.ParseBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("Update: invalid status=%s for booking id=%s", *req.Status, id)
			return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
		}
		upd.Status = &status
	}

	if req.SpecialRequests != nil {
		if utf8.RuneCountInString(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
			return nil, fmt.Errorf("%w: special requests longer than %d characters",
				ErrInvalidInput, domain.MaxSpecialRequestsLength)
		}
		upd.SpecialRequests = req.SpecialRequests
	}

	booking, err := s.bookingRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Update: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Update: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: booking id=%s updated, status=%s", id, booking.Status)
	return models.FromDomainBooking(booking), nil
}

// Delete removes a booking
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: booking id=%s deleted", id)
	return nil
}

// CancelByReference cancels a booking by its reference number.
// Only pending and confirmed bookings can be cancelled, and only while
// the slot starts more than the cancellation notice from now.
func (s *Service) CancelByReference(ctx context.Context, reference string) (*models.BookingResponse, error) {
	// 1. Find the booking
	booking, err := s.findByReference(ctx, "CancelByReference", reference)
	if err != nil {
		return nil, err
	}

	// 2. Status check
	if !booking.CanBeCancelled() {
		s.logger.Warn("CancelByReference: booking ref=%s cannot be cancelled, status=%s",
			booking.ReferenceNumber, booking.Status)
		return nil, ErrCannotCancel
	}

	// 3. Notice check
	start, err := s.slotStart(booking)
	if err != nil {
		s.logger.Error("CancelByReference: booking ref=%s has invalid time slot %q: %v",
			booking.ReferenceNumber, booking.TimeSlot, err)
		return nil, fmt.Errorf("%w: invalid stored time slot: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	if now.Add(s.opts.CancellationNotice).After(start) {
		s.logger.Warn("CancelByReference: too late to cancel ref=%s, slot starts at %s",
			booking.ReferenceNumber, start.Format(time.RFC3339))
		return nil, ErrTooLateToCancel
	}

	// 4. Cancel
	if err := s.bookingRepo.UpdateStatus(ctx, booking.ID, domain.StatusCancelled); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("CancelByReference: repository error for ref=%s: %v", booking.ReferenceNumber, err)
		return nil, fmt.Errorf("%w: CancelByReference - repository error: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusCancelled
	booking.UpdatedAt = now

	s.logger.Info("CancelByReference: booking ref=%s cancelled", booking.ReferenceNumber)
	return models.FromDomainBooking(booking), nil
}

func (s *Service) findByReference(ctx context.Context, op, reference string) (*domain.Booking, error) {
	ref, err := refnum.Normalize(reference)
	if err != nil {
		s.logger.Warn("%s: malformed reference %q", op, reference)
		return nil, ErrBookingNotFound
	}

	booking, err := s.bookingRepo.GetByReference(ctx, ref)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking ref=%s not found", op, ref)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for ref=%s: %v", op, ref, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	return booking, nil
}

// slotStart returns the moment the booking starts in the lounge time zone
func (s *Service) slotStart(b *domain.Booking) (time.Time, error) {
	clock, err := scheduling.ParseSlotLabel(scheduling.SlotLabel(b.TimeSlot))
	if err != nil {
		return time.Time{}, err
	}
	return clock.On(b.Date, s.opts.Location), nil
}
