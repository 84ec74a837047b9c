package complete_bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/GameLounge-BookingService/internal/domain"
)

// runTimeout upper bound of a single run
const runTimeout = time.Minute

// Job marks pending and confirmed bookings of past days as completed
type Job struct {
	bookingRepo  BookingRepository
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

func NewJob(bookingRepo BookingRepository, location *time.Location, logger Logger) *Job {
	if location == nil {
		location = time.UTC
	}
	return &Job{
		bookingRepo:  bookingRepo,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Run completes every open booking dated before today in the lounge time zone
func (j *Job) Run(ctx context.Context) (int64, error) {
	today := j.timeProvider.Now().In(j.location)
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	completed, err := j.bookingRepo.CompletePastBookings(ctx, today)
	if err != nil {
		j.logger.Error("CompleteBookings: failed to complete bookings before %s: %v", today.Format(domain.DateFormat), err)
		return 0, fmt.Errorf("complete bookings: %w", err)
	}

	if completed == 0 {
		j.logger.Info("CompleteBookings: no open bookings before %s", today.Format(domain.DateFormat))
	} else {
		j.logger.Info("CompleteBookings: marked %d bookings before %s as completed", completed, today.Format(domain.DateFormat))
	}
	return completed, nil
}

// cronFunc adapts Run to a cron callback
func (j *Job) cronFunc() func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()
		_, _ = j.Run(ctx)
	}
}
