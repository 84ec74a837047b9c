package create_gallery_image

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/GameLounge-BookingService/internal/api/handlers"
	"github.com/m04kA/GameLounge-BookingService/internal/service/catalog"
	"github.com/m04kA/GameLounge-BookingService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidImage       = "title, category and imageData are required"
)

type CatalogService interface {
	CreateGalleryImage(ctx context.Context, req *models.CreateGalleryImageRequest) (*models.GalleryImageResponse, error)
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

// Handle POST /api/gallery
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateGalleryImageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /gallery - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	image, err := h.service.CreateGalleryImage(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /gallery - Invalid image: %v", err)
			handlers.RespondBadRequest(w, msgInvalidImage)

		default:
			h.logger.Error("POST /gallery - Failed to create gallery image: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /gallery - Gallery image created: id=%s", image.ID)
	handlers.RespondJSON(w, http.StatusCreated, image)
}
