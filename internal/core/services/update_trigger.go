package services

import (
	"github.com/highcard-dev/companion/internal/core/domain"
	"github.com/highcard-dev/companion/internal/utils/logger"
	"go.uber.org/zap"
)

const UpdateStartedMessage = "Update started. The service will restart shortly."

type UpdateTrigger struct {
	state   *UpdateStateManager
	metrics *UpdateMetrics
}

func NewUpdateTrigger(state *UpdateStateManager, metrics *UpdateMetrics) *UpdateTrigger {
	return &UpdateTrigger{
		state:   state,
		metrics: metrics,
	}
}

// TriggerUpdate validates the preconditions in order (service mode, availability,
// nothing in progress) and marks the update as in progress. Check and flag flip
// happen under one lock, so two callers can never both succeed.
func (t *UpdateTrigger) TriggerUpdate() (string, error) {
	_, message, err := t.StartUpdate()
	return message, err
}

// StartUpdate is TriggerUpdate that also returns the state the preconditions were
// checked against. Its LatestVersion is the version the upgrade has to install.
func (t *UpdateTrigger) StartUpdate() (domain.UpdateState, string, error) {
	var validated domain.UpdateState
	err := t.state.mutate(func(s *domain.UpdateState) error {
		if !s.IsServiceMode {
			return domain.ErrNotServiceMode
		}
		if !s.UpdateAvailable() {
			return domain.ErrNoUpdateAvailable
		}
		if s.UpdateInProgress {
			return domain.ErrUpdateInProgress
		}
		s.UpdateInProgress = true
		validated = *s
		return nil
	})
	t.metrics.ObserveTrigger(err)

	if err != nil {
		logger.Log().Info("Update rejected",
			zap.String(logger.LogKeyContext, logger.LogContextUpdate),
			zap.Error(err),
		)
		return domain.UpdateState{}, "", err
	}

	logger.Log().Info("Update triggered",
		zap.String(logger.LogKeyContext, logger.LogContextUpdate),
		zap.String("targetVersion", validated.LatestVersion),
	)
	return validated, UpdateStartedMessage, nil
}
