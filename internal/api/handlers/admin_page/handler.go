package admin_page

import (
	"bytes"
	"net/http"

	"github.com/m04kA/GameLounge-BookingService/internal/service/bookings/models"
)

type pageData struct {
	LoungeName string
	Total      int
	Bookings   []models.BookingResponse
}

type Handler struct {
	service    BookingService
	loungeName string
	logger     Logger
}

func NewHandler(service BookingService, loungeName string, logger Logger) *Handler {
	return &Handler{
		service:    service,
		loungeName: loungeName,
		logger:     logger,
	}
}

// Handle GET /admin/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), &models.ListBookingsRequest{})
	if err != nil {
		h.logger.Error("GET /admin/bookings - Failed to list bookings: error=%v", err)
		http.Error(w, "Failed to load bookings", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	err = pageTemplate.Execute(&buf, pageData{
		LoungeName: h.loungeName,
		Total:      result.Total,
		Bookings:   result.Bookings,
	})
	if err != nil {
		h.logger.Error("GET /admin/bookings - Failed to render page: error=%v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
