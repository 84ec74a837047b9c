package calculate_price

import (
	"errors"
	"net/http"

	"github.com/m04kA/GameLounge-BookingService/internal/api/handlers"
	"github.com/m04kA/GameLounge-BookingService/internal/domain"
	"github.com/m04kA/GameLounge-BookingService/internal/service/pricing"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnknownGameType    = "unknown game type"
	msgInvalidDuration    = "duration must be positive"
	msgInvalidNumPeople   = "number of people must be at least 1"
)

type Handler struct {
	calculator PriceCalculator
	logger     Logger
}

func NewHandler(calculator PriceCalculator, logger Logger) *Handler {
	return &Handler{
		calculator: calculator,
		logger:     logger,
	}
}

// Handle POST /api/bookings/calculate-price
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CalculatePriceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/calculate-price - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	duration := domain.DefaultBookingDurationMinutes
	if req.DurationMinutes != nil {
		duration = *req.DurationMinutes
	}
	people := domain.MinNumPeople
	if req.NumPeople != nil {
		people = *req.NumPeople
	}

	price, err := h.calculator.Calculate(req.GameType, duration, people)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrUnknownGameType):
			h.logger.Warn("POST /bookings/calculate-price - Unknown game type: %s", req.GameType)
			handlers.RespondBadRequest(w, msgUnknownGameType)

		case errors.Is(err, pricing.ErrInvalidDuration):
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, pricing.ErrInvalidNumPeople):
			handlers.RespondBadRequest(w, msgInvalidNumPeople)

		default:
			h.logger.Error("POST /bookings/calculate-price - Failed to calculate price: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	rate, _ := h.calculator.Rate(req.GameType)
	handlers.RespondJSON(w, http.StatusOK, PriceResponse{
		GameType:        req.GameType,
		DurationMinutes: duration,
		NumPeople:       people,
		RatePerHour:     rate,
		Price:           price,
	})
}
