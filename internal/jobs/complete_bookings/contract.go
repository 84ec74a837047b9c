package complete_bookings

import (
	"context"
	"time"
)

// BookingRepository booking storage
type BookingRepository interface {
	CompletePastBookings(ctx context.Context, before time.Time) (int64, error)
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
