package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/GameLounge-BookingService/internal/api/handlers"
	"github.com/m04kA/GameLounge-BookingService/internal/domain"
	createBooking "github.com/m04kA/GameLounge-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid booking date format, expected YYYY-MM-DD"
	msgInvalidInput       = "invalid booking details"
	msgUnknownGameType    = "unknown game type"
	msgInvalidTimeSlot    = "invalid time slot"
	msgInvalidDuration    = "duration must be a positive multiple of the slot interval"
	msgInvalidBookingDate = "booking date or time slot is in the past"
	msgExceedsClosing     = "booking exceeds closing time"
	msgSlotNotAvailable   = "selected time slot is not available"
)

type Handler struct {
	useCase         CreateBookingUseCase
	defaultDuration int
	logger          Logger
}

func NewHandler(useCase CreateBookingUseCase, defaultDuration int, logger Logger) *Handler {
	if defaultDuration <= 0 {
		defaultDuration = domain.DefaultBookingDurationMinutes
	}
	return &Handler{
		useCase:         useCase,
		defaultDuration: defaultDuration,
		logger:          logger,
	}
}

// Handle POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(h.defaultDuration)
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date: %s", req.Date)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: game_type=%s, date=%s, slot=%s",
				req.GameType, req.Date, req.TimeSlot)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrExceedsClosingTime):
			h.logger.Warn("POST /bookings - Exceeds closing time: slot=%s, duration=%d", req.TimeSlot, useCaseReq.DurationMinutes)
			handlers.RespondBadRequest(w, msgExceedsClosing)

		case errors.Is(err, createBooking.ErrUnknownGameType):
			h.logger.Warn("POST /bookings - Unknown game type: %s", req.GameType)
			handlers.RespondBadRequest(w, msgUnknownGameType)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: %s", req.TimeSlot)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidDuration):
			h.logger.Warn("POST /bookings - Invalid duration: %d", useCaseReq.DurationMinutes)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Booking in the past: date=%s, slot=%s", req.Date, req.TimeSlot)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: game_type=%s, date=%s, error=%v",
				req.GameType, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, ref=%s",
		result.ID, result.ReferenceNumber)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
