package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/highcard-dev/companion/internal/api"
	"github.com/highcard-dev/companion/internal/core/domain"
	"github.com/highcard-dev/companion/internal/core/ports"
	"github.com/highcard-dev/companion/internal/utils/logger"
	"go.uber.org/zap"
)

type SettingsHandler struct {
	settings ports.SettingsServiceInterface
}

func NewSettingsHandler(settings ports.SettingsServiceInterface) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// @Summary Get settings
// @ID getSettings
// @Tags settings, companion
// @Accept */*
// @Produce json
// @Success 200 {object} api.SettingsResponse
// @Router /api/v1/settings [get]
func (sh SettingsHandler) GetSettings(c *fiber.Ctx) error {
	return c.JSON(api.SettingsResponse{
		UpdateChannel: string(sh.settings.GetUpdateChannel()),
	})
}

// @Summary Update settings
// @ID updateSettings
// @Tags settings, companion
// @Accept json
// @Produce json
// @Param body body api.UpdateSettingsRequest true "Settings"
// @Success 200 {object} api.SettingsResponse
// @Failure 400 {object} api.ErrorResponse
// @Failure 500 {object} api.ErrorResponse
// @Router /api/v1/settings [put]
func (sh SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	var requestBody api.UpdateSettingsRequest

	if err := c.BodyParser(&requestBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(api.NewErrorResponse(err))
	}

	channel, err := domain.ParseUpdateChannel(requestBody.UpdateChannel)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(api.NewErrorResponse(err))
	}

	if err := sh.settings.SetUpdateChannel(channel); err != nil {
		logger.Log().Error("Failed to store settings",
			zap.String(logger.LogKeyContext, logger.LogContextConfig),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(api.NewErrorResponse(err))
	}

	return c.JSON(api.SettingsResponse{
		UpdateChannel: string(channel),
	})
}
