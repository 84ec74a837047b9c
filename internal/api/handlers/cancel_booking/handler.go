package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/GameLounge-BookingService/internal/api/handlers"
	"github.com/m04kA/GameLounge-BookingService/internal/service/bookings"
)

const (
	msgNotFound        = "Booking not found"
	msgCannotCancel    = "booking is already cancelled or completed"
	msgTooLateToCancel = "Cannot cancel booking less than 1 hour before the scheduled time"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/bookings/reference/{reference}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	booking, err := h.service.CancelByReference(r.Context(), reference)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/reference/{ref}/cancel - Booking not found: ref=%s", reference)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("POST /bookings/reference/{ref}/cancel - Cannot cancel: ref=%s", reference)
			handlers.RespondBadRequest(w, msgCannotCancel)

		case errors.Is(err, bookings.ErrTooLateToCancel):
			h.logger.Warn("POST /bookings/reference/{ref}/cancel - Too late to cancel: ref=%s", reference)
			handlers.RespondBadRequest(w, msgTooLateToCancel)

		default:
			h.logger.Error("POST /bookings/reference/{ref}/cancel - Failed to cancel booking: ref=%s, error=%v", reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/reference/{ref}/cancel - Booking cancelled successfully: ref=%s", booking.ReferenceNumber)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
