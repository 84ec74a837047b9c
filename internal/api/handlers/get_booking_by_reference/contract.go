package get_booking_by_reference

import (
	"context"

	"github.com/m04kA/GameLounge-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetByReference(ctx context.Context, reference string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
