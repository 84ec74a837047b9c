package health

import (
	"fmt"
	"net/http"

	"github.com/m04kA/GameLounge-BookingService/internal/api/handlers"
)

// Response HTTP response model
type Response struct {
	Message string `json:"message"`
}

type Handler struct {
	message string
}

func NewHandler(loungeName string) *Handler {
	return &Handler{message: fmt.Sprintf("%s API is running!", loungeName)}
}

// Handle GET /api/
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Response{Message: h.message})
}
