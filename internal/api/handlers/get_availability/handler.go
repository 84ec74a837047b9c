package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/GameLounge-BookingService/internal/api/handlers"
	"github.com/m04kA/GameLounge-BookingService/internal/domain"
	getAvailability "github.com/m04kA/GameLounge-BookingService/internal/usecase/get_availability"
)

const (
	msgInvalidDate     = "invalid date format, expected YYYY-MM-DD"
	msgInvalidDuration = "duration must be a positive multiple of the slot interval"
	msgUnknownGameType = "unknown game type"
	msgInvalidRequest  = "invalid request parameters"
)

type Handler struct {
	useCase         GetAvailabilityUseCase
	defaultDuration int
	logger          Logger
}

func NewHandler(useCase GetAvailabilityUseCase, defaultDuration int, logger Logger) *Handler {
	if defaultDuration <= 0 {
		defaultDuration = domain.DefaultBookingDurationMinutes
	}
	return &Handler{
		useCase:         useCase,
		defaultDuration: defaultDuration,
		logger:          logger,
	}
}

// Handle GET /api/availability/{date}?gameType=vr&duration=60
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := mux.Vars(r)["date"]
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /availability/{date} - Invalid date: %s", dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getAvailability.Request{
		Date:            date,
		DurationMinutes: h.defaultDuration,
	}

	query := r.URL.Query()
	if gameType := strings.TrimSpace(query.Get("gameType")); gameType != "" {
		req.GameType = &gameType
	}
	if durationStr := query.Get("duration"); durationStr != "" {
		duration, err := strconv.Atoi(durationStr)
		if err != nil {
			h.logger.Warn("GET /availability/{date} - Invalid duration: %s", durationStr)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
		req.DurationMinutes = duration
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidDuration):
			h.logger.Warn("GET /availability/{date} - Invalid duration: date=%s, duration=%d", dateStr, req.DurationMinutes)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, getAvailability.ErrUnknownGameType):
			h.logger.Warn("GET /availability/{date} - Unknown game type: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgUnknownGameType)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability/{date} - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /availability/{date} - Failed to compute availability: date=%s, error=%v", dateStr, err)
			handlers.RespondServiceUnavailable(w)
		}
		return
	}

	h.logger.Info("GET /availability/{date} - Availability computed: date=%s, slots=%d", dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
