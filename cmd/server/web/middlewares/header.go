package middlewares

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	constants "github.com/highcard-dev/companion/internal"
)

func NewHeaderMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		ctx.Response().Header.Set("Companion-Version", constants.Version)
		return ctx.Next()
	}
}

// NewWebsocketUpgradeMiddleware rejects plain HTTP requests on websocket routes.
func NewWebsocketUpgradeMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(ctx) {
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}
