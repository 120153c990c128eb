package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/highcard-dev/companion/internal/api"
	"github.com/highcard-dev/companion/internal/core/domain"
	"github.com/highcard-dev/companion/internal/core/ports"
	"github.com/highcard-dev/companion/internal/utils/logger"
	"go.uber.org/zap"
)

type UpdateHandler struct {
	checker  ports.UpdateCheckerInterface
	trigger  ports.UpdateTriggerInterface
	upgrader ports.UpgraderInterface
}

// NewUpdateHandler creates the update routes. upgrader may be nil, then a successful
// trigger only marks the update as in progress.
func NewUpdateHandler(
	checker ports.UpdateCheckerInterface,
	trigger ports.UpdateTriggerInterface,
	upgrader ports.UpgraderInterface,
) *UpdateHandler {
	return &UpdateHandler{
		checker,
		trigger,
		upgrader,
	}
}

// @Summary Get update status
// @Description Runs a check if the last result is stale and returns the current update state.
// @ID getUpdateCheck
// @Tags update, companion
// @Accept */*
// @Produce json
// @Success 200 {object} api.UpdateCheckResponse
// @Router /api/v1/update-check [get]
func (uh UpdateHandler) GetUpdateCheck(c *fiber.Ctx) error {
	uh.checker.Check(c.UserContext(), false)
	return c.JSON(uh.response())
}

// @Summary Force update check
// @Description Contacts the registry regardless of the last check time.
// @ID forceUpdateCheck
// @Tags update, companion
// @Accept */*
// @Produce json
// @Success 200 {object} api.UpdateCheckResponse
// @Router /api/v1/update-check [post]
func (uh UpdateHandler) ForceUpdateCheck(c *fiber.Ctx) error {
	uh.checker.Check(c.UserContext(), true)
	return c.JSON(uh.response())
}

// @Summary Start update
// @ID triggerUpdate
// @Tags update, companion
// @Accept */*
// @Produce json
// @Success 200 {object} api.UpdateResponse
// @Failure 400 {object} api.ErrorResponse
// @Failure 409 {object} api.ErrorResponse
// @Failure 500 {object} api.ErrorResponse
// @Router /api/v1/update [post]
func (uh UpdateHandler) TriggerUpdate(c *fiber.Ctx) error {
	state, message, err := uh.trigger.StartUpdate()
	if err != nil {
		return c.Status(triggerErrorStatus(err)).JSON(api.NewErrorResponse(err))
	}

	if uh.upgrader != nil {
		go func() {
			if err := uh.upgrader.Upgrade(context.Background(), state); err != nil {
				logger.Log().Error("Update failed",
					zap.String(logger.LogKeyContext, logger.LogContextUpgrade),
					zap.String("targetVersion", state.LatestVersion),
					zap.Error(err),
				)
			}
		}()
	}

	return c.JSON(api.UpdateResponse{
		Ok:      true,
		Message: message,
	})
}

func (uh UpdateHandler) response() api.UpdateCheckResponse {
	return api.NewUpdateCheckResponse(uh.checker.GetState(), uh.checker.IsUpdateAvailable())
}

func triggerErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotServiceMode), errors.Is(err, domain.ErrNoUpdateAvailable):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUpdateInProgress):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
