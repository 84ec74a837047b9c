package get_booking_by_reference

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/GameLounge-BookingService/internal/api/handlers"
	"github.com/m04kA/GameLounge-BookingService/internal/service/bookings"
)

const msgNotFound = "Booking not found"

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

// Handle GET /api/bookings/reference/{reference}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	booking, err := h.service.GetByReference(r.Context(), reference)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/reference/{ref} - Booking not found: ref=%s", reference)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/reference/{ref} - Failed to get booking: ref=%s, error=%v", reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/reference/{ref} - Booking retrieved successfully: ref=%s", booking.ReferenceNumber)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
