package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/GameLounge-BookingService/internal/domain"
)

// BookingRepository booking storage
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetByDateAndGameType locks the day's rows when called inside a transaction
	GetByDateAndGameType(ctx context.Context, date time.Time, gameType string) ([]*domain.Booking, error)
}

// PriceCalculator booking price
type PriceCalculator interface {
	Calculate(gameType string, durationMinutes, numPeople int) (float64, error)
}

// TransactionManager transaction runner
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics booking counters
type Metrics interface {
	BookingCreated(gameType string)
	SlotRejected(gameType, reason string)
}

// TimeProvider source of the current time (for tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider production time provider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
