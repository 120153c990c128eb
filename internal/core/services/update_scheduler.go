package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/highcard-dev/companion/internal/core/ports"
	"github.com/highcard-dev/companion/internal/utils/logger"
	"go.uber.org/zap"
)

var (
	ErrSchedulerRunning = fmt.Errorf("update scheduler already running")
	ErrInvalidInterval  = fmt.Errorf("update check interval must be positive")
)

// UpdateScheduler runs non-forced checks on a fixed interval, the first one right away.
type UpdateScheduler struct {
	checker  ports.UpdateCheckerInterface
	interval time.Duration

	mu        sync.Mutex
	scheduler *gocron.Scheduler
	cancel    context.CancelFunc

	// held by a running check, Stop waits on it
	runMu   sync.Mutex
	stopped bool
}

func NewUpdateScheduler(checker ports.UpdateCheckerInterface, interval time.Duration) *UpdateScheduler {
	return &UpdateScheduler{
		checker:  checker,
		interval: interval,
	}
}

func (s *UpdateScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.scheduler != nil {
		return ErrSchedulerRunning
	}
	if s.interval <= 0 {
		return ErrInvalidInterval
	}

	ctx, cancel := context.WithCancel(ctx)
	scheduler := gocron.NewScheduler(time.UTC)

	_, err := scheduler.Every(s.interval).SingletonMode().Do(func() {
		s.runMu.Lock()
		defer s.runMu.Unlock()
		if s.stopped || ctx.Err() != nil {
			return
		}
		s.checker.Check(ctx, false)
	})
	if err != nil {
		cancel()
		return err
	}

	s.runMu.Lock()
	s.stopped = false
	s.runMu.Unlock()

	s.scheduler = scheduler
	s.cancel = cancel
	scheduler.StartAsync()

	logger.Log().Info("Periodic update check started",
		zap.String(logger.LogKeyContext, logger.LogContextCheck),
		zap.Duration("interval", s.interval),
	)
	return nil
}

// Stop cancels the schedule. A running check is allowed to finish first, so its
// result is recorded instead of a cancelled fetch. Once Stop returns no check is
// running and none will start.
func (s *UpdateScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.scheduler == nil {
		return
	}

	s.runMu.Lock()
	s.stopped = true
	s.runMu.Unlock()
	s.cancel()
	s.scheduler.Stop()

	s.scheduler = nil
	s.cancel = nil

	logger.Log().Info("Periodic update check stopped",
		zap.String(logger.LogKeyContext, logger.LogContextCheck),
	)
}
