package complete_bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the job on a cron schedule in the lounge time zone
type Scheduler struct {
	cron   *cron.Cron
	logger Logger
}

// NewScheduler registers the job under spec, a standard five-field cron expression
func NewScheduler(job *Job, spec string, location *time.Location, logger Logger) (*Scheduler, error) {
	if location == nil {
		location = time.UTC
	}

	c := cron.New(
		cron.WithLocation(location),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	if _, err := c.AddFunc(spec, job.cronFunc()); err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", spec, err)
	}

	return &Scheduler{cron: c, logger: logger}, nil
}

// Start runs the scheduler in its own goroutine
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("CompleteBookings: scheduler started")
}

// Stop stops the scheduler and waits for a running job until ctx is done
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("CompleteBookings: scheduler stopped")
	case <-ctx.Done():
		s.logger.Warn("CompleteBookings: scheduler stop timed out")
	}
}

// Entries number of registered jobs
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}
