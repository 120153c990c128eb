package services

import (
	"encoding/json"

	"github.com/highcard-dev/companion/internal/api"
	"github.com/highcard-dev/companion/internal/core/domain"
	"github.com/highcard-dev/companion/internal/utils/logger"
	"go.uber.org/zap"
)

// UpdateBroadcaster pushes every state change to websocket subscribers.
type UpdateBroadcaster struct {
	hub *domain.BroadcastChannel
}

func NewUpdateBroadcaster(hub *domain.BroadcastChannel) *UpdateBroadcaster {
	return &UpdateBroadcaster{hub: hub}
}

func (b *UpdateBroadcaster) Notify(state domain.UpdateState) {
	payload, err := json.Marshal(api.UpdateEvent{
		Type:  api.UpdateEventState,
		State: api.NewUpdateCheckResponse(state, state.UpdateAvailable()),
	})
	if err != nil {
		logger.Log().Error("Failed to encode update event", zap.Error(err))
		return
	}
	if !b.hub.Publish(payload) {
		logger.Log().Debug("Update event dropped, broadcast buffer full",
			zap.String(logger.LogKeyContext, logger.LogContextUpdate),
		)
	}
}
