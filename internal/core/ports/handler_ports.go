package ports

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type UpdateHandlerInterface interface {
	GetUpdateCheck(c *fiber.Ctx) error
	ForceUpdateCheck(c *fiber.Ctx) error
	TriggerUpdate(c *fiber.Ctx) error
}

type SettingsHandlerInterface interface {
	GetSettings(c *fiber.Ctx) error
	UpdateSettings(c *fiber.Ctx) error
}

type UpdateEventsHandlerInterface interface {
	HandleUpdates(c *websocket.Conn)
}
