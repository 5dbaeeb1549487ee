package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/sparkd-app/sparkd/internal/logging"
)

// SwipeCountResetter is the persistence surface of the daily reset.
type SwipeCountResetter interface {
	ResetDailySwipes(ctx context.Context) (int64, error)
}

// Scheduler owns the background cron jobs.
type Scheduler struct {
	cron   *cron.Cron
	users  SwipeCountResetter
	logger *logging.Logger
}

func New(users SwipeCountResetter, logger *logging.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		users:  users,
		logger: logger,
	}
}

// Start registers the midnight swipe-count reset and launches the cron loop.
// The job is fire-and-forget: failures are logged, never retried, never
// surfaced to any request.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc("0 0 * * *", func() {
		s.logger.Info("running daily swipe count reset job")

		affected, err := s.users.ResetDailySwipes(context.Background())
		if err != nil {
			s.logger.Error("daily swipe count reset failed", "error", err.Error())
			return
		}

		s.logger.Info("daily swipe count reset successful", "accounts", affected)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule daily swipe count reset: %w", err)
	}

	s.cron.Start()
	return nil
}

// Stop halts the cron loop, waiting for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
