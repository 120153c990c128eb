package services

import (
	"context"
	"time"

	"github.com/highcard-dev/companion/internal/core/domain"
	"github.com/highcard-dev/companion/internal/core/ports"
	"github.com/highcard-dev/companion/internal/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const DefaultStaleThreshold = 60 * time.Second

type UpdateChecker struct {
	state          *UpdateStateManager
	registry       ports.RegistryClientInterface
	settings       ports.SettingsServiceInterface
	metrics        *UpdateMetrics
	staleThreshold time.Duration
	now            func() time.Time
	inflight       singleflight.Group
}

type UpdateCheckerOption func(*UpdateChecker)

func WithClock(now func() time.Time) UpdateCheckerOption {
	return func(c *UpdateChecker) {
		c.now = now
	}
}

func WithCheckMetrics(metrics *UpdateMetrics) UpdateCheckerOption {
	return func(c *UpdateChecker) {
		c.metrics = metrics
	}
}

func NewUpdateChecker(
	state *UpdateStateManager,
	registry ports.RegistryClientInterface,
	settings ports.SettingsServiceInterface,
	staleThreshold time.Duration,
	opts ...UpdateCheckerOption,
) *UpdateChecker {
	c := &UpdateChecker{
		state:          state,
		registry:       registry,
		settings:       settings,
		staleThreshold: staleThreshold,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check refreshes the latest known version. Without force the registry is only
// contacted when the last attempt is older than the stale threshold. Failures are
// recorded in the state and never returned.
func (c *UpdateChecker) Check(ctx context.Context, force bool) {
	if !force && !c.state.Snapshot().IsStale(c.now(), c.staleThreshold) {
		logger.Log().Debug("Skipping update check, last result is fresh",
			zap.String(logger.LogKeyContext, logger.LogContextCheck),
		)
		return
	}

	// concurrent callers share one registry round trip
	c.inflight.Do("check", func() (interface{}, error) {
		c.check(ctx)
		return nil, nil
	})
}

func (c *UpdateChecker) check(ctx context.Context) {
	channel := c.settings.GetUpdateChannel()
	c.state.beginCheck(channel)

	var latest string
	var fetchErr error
	defer func() {
		c.state.finishCheck(channel, latest, c.now())
		c.metrics.ObserveCheck(fetchErr, c.state.Snapshot())
	}()

	latest, fetchErr = c.registry.FetchLatest(ctx, channel)
	if fetchErr != nil {
		latest = ""
		logger.Log().Warn("Update check failed",
			zap.String(logger.LogKeyContext, logger.LogContextCheck),
			zap.String("channel", string(channel)),
			zap.Error(fetchErr),
		)
		return
	}

	logger.Log().Info("Update check finished",
		zap.String(logger.LogKeyContext, logger.LogContextCheck),
		zap.String("channel", string(channel)),
		zap.String("latestVersion", latest),
		zap.String("currentVersion", c.state.Snapshot().CurrentVersion),
	)
}

func (c *UpdateChecker) IsUpdateAvailable() bool {
	return c.state.Snapshot().UpdateAvailable()
}

func (c *UpdateChecker) GetState() domain.UpdateState {
	return c.state.Snapshot()
}
