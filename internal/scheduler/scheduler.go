package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Sweeper removes expired entries and reports how many went.
type Sweeper interface {
	Sweep(ctx context.Context) (int, error)
}

type Scheduler struct {
	sweeper  Sweeper
	interval time.Duration
	logger   *slog.Logger
}

func New(
	sweeper Sweeper,
	interval time.Duration,
	logger *slog.Logger,
) *Scheduler {
	return &Scheduler{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
	}
}

// Start runs a sweep every interval until ctx is done.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started", "interval", s.interval)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	n, err := s.sweeper.Sweep(ctx)
	if err != nil {
		s.logger.Error("sweep failed", "error", err)
		return
	}
	if n > 0 {
		s.logger.Info("idle tabs closed", "count", n)
	}
}
