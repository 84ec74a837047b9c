package get_game_types

import (
	"context"
	"net/http"

	"github.com/m04kA/GameLounge-BookingService/internal/api/handlers"
	"github.com/m04kA/GameLounge-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	GetGameTypes(ctx context.Context) ([]models.GameTypeResponse, error)
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

// Handle GET /api/game-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	gameTypes, err := h.service.GetGameTypes(r.Context())
	if err != nil {
		h.logger.Error("GET /game-types - Failed to get game types: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, gameTypes)
}
