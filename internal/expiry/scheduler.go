package expiry

import (
	"context"
	"io"
	"log"
	"time"
)

// DefaultInterval is how often the expiration check fires.
const DefaultInterval = time.Minute

// Checker is the cart surface the scheduler drives.
type Checker interface {
	CheckExpiration(now time.Time) bool
}

// Scheduler periodically asks a cart whether its deadline has passed.
type Scheduler struct {
	target   Checker
	interval time.Duration
	logger   *log.Logger
	now      func() time.Time
}

func New(target Checker, interval time.Duration, logger *log.Logger) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Scheduler{
		target:   target,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

// Run fires Tick every interval until ctx is done.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Printf("expiry: scheduler started interval=%s", s.interval)
	for {
		select {
		case <-ticker.C:
			s.Tick()
		case <-ctx.Done():
			s.logger.Printf("expiry: scheduler stopped")
			return nil
		}
	}
}

// Tick runs one expiration check and reports whether the cart was cleared.
func (s *Scheduler) Tick() bool {
	if !s.target.CheckExpiration(s.now()) {
		return false
	}
	s.logger.Printf("expiry: cart has expired, please restart shopping")
	return true
}
