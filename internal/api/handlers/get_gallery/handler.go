package get_gallery

import (
	"context"
	"net/http"

	"github.com/m04kA/GameLounge-BookingService/internal/api/handlers"
	"github.com/m04kA/GameLounge-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	GetGallery(ctx context.Context) ([]models.GalleryImageResponse, error)
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

// Handle GET /api/gallery
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	images, err := h.service.GetGallery(r.Context())
	if err != nil {
		h.logger.Error("GET /gallery - Failed to get gallery: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, images)
}
