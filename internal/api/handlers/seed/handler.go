package seed

import (
	"context"
	"net/http"

	"github.com/m04kA/GameLounge-BookingService/internal/api/handlers"
	"github.com/m04kA/GameLounge-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	Seed(ctx context.Context) (*models.SeedResponse, error)
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

// Handle POST /api/seed
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Seed(r.Context())
	if err != nil {
		h.logger.Error("POST /seed - Failed to seed database: error=%v", err)
		handlers.RespondError(w, http.StatusInternalServerError, "Failed to seed database")
		return
	}

	h.logger.Info("POST /seed - %s", result.Message)
	handlers.RespondJSON(w, http.StatusOK, result)
}
