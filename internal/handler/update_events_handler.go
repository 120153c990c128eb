package handler

import (
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/highcard-dev/companion/internal/core/domain"
	"github.com/highcard-dev/companion/internal/utils"
)

const pingInterval = 30 * time.Second

type UpdateEventsHandler struct {
	hub *domain.BroadcastChannel
}

func NewUpdateEventsHandler(hub *domain.BroadcastChannel) *UpdateEventsHandler {
	return &UpdateEventsHandler{hub: hub}
}

// HandleUpdates streams every update state change to the connected client.
func (uh UpdateEventsHandler) HandleUpdates(c *websocket.Conn) {
	conn := utils.NewWebSocketConnection(c)
	defer conn.Close()

	subscription := uh.hub.Subscribe()
	if subscription == nil {
		return
	}

	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	for {
		select {
		case message, ok := <-subscription:
			// closed by the hub on shutdown or because we were too slow
			if !ok {
				return
			}
			if err := conn.WriteText(message); err != nil {
				uh.hub.Unsubscribe(subscription)
				return
			}
		case <-ping.C:
			if err := conn.WritePing(); err != nil {
				uh.hub.Unsubscribe(subscription)
				return
			}
		case <-conn.Done():
			uh.hub.Unsubscribe(subscription)
			return
		}
	}
}
