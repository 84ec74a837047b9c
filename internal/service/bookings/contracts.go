package bookings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/GameLounge-BookingService/internal/domain"
)

// BookingRepository booking storage
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	GetAll(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Update(ctx context.Context, id uuid.UUID, upd domain.BookingUpdate) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TimeProvider source of the current time
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
