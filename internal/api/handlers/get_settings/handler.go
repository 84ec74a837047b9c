package get_settings

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/GameLounge-BookingService/internal/api/handlers"
	"github.com/m04kA/GameLounge-BookingService/internal/service/catalog"
	"github.com/m04kA/GameLounge-BookingService/internal/service/catalog/models"
)

const msgNotFound = "Settings not found"

type CatalogService interface {
	GetSettings(ctx context.Context) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.GetSettings(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrSettingsNotFound):
			h.logger.Warn("GET /settings - Settings not found")
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /settings - Failed to get settings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, settings)
}
