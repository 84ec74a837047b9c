package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/GameLounge-BookingService/internal/domain"
)

// BookingRepository booking storage
type BookingRepository interface {
	// GetByDateAndGameType returns every booking of the day for the game type, cancelled ones included
	GetByDateAndGameType(ctx context.Context, date time.Time, gameType string) ([]*domain.Booking, error)
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
