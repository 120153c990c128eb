package web

import (
	"errors"
	"fmt"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/highcard-dev/companion/cmd/server/web/middlewares"
	constants "github.com/highcard-dev/companion/internal"
	"github.com/highcard-dev/companion/internal/core/ports"
	"github.com/highcard-dev/companion/internal/utils/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Server struct {
	corsMiddleware      fiber.Handler
	headerMiddleware    fiber.Handler
	upgradeMiddleware   fiber.Handler
	updateHandler       ports.UpdateHandlerInterface
	settingsHandler     ports.SettingsHandlerInterface
	updateEventsHandler ports.UpdateEventsHandlerInterface
	gatherer            prometheus.Gatherer
}

func NewServer(
	updateHandler ports.UpdateHandlerInterface,
	settingsHandler ports.SettingsHandlerInterface,
	updateEventsHandler ports.UpdateEventsHandlerInterface,
	gatherer prometheus.Gatherer,
) *Server {
	return &Server{
		corsMiddleware: cors.New(cors.Config{
			AllowOrigins: "*",
			AllowHeaders: "Origin, Content-Type, Accept",
		}),
		headerMiddleware:    middlewares.NewHeaderMiddleware(),
		upgradeMiddleware:   middlewares.NewWebsocketUpgradeMiddleware(),
		updateHandler:       updateHandler,
		settingsHandler:     settingsHandler,
		updateEventsHandler: updateEventsHandler,
		gatherer:            gatherer,
	}
}

func (s *Server) Initialize() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
				return ctx.Status(code).JSON(e)
			} else {
				var e fiber.Error
				e.Code = 500
				e.Message = err.Error()
				return ctx.Status(code).JSON(e)
			}
		},
		DisableStartupMessage: true,
	})

	s.SetAPI(app)

	return app
}

func (s *Server) SetAPI(app *fiber.App) *fiber.App {
	app.Use(s.headerMiddleware)
	wsRoutes := app.Group("/ws/v1")
	apiRoutes := app.Use(s.corsMiddleware).Group("/api/v1")

	wsRoutes.Use(s.upgradeMiddleware)

	//Update Group
	apiRoutes.Get("/update-check", s.updateHandler.GetUpdateCheck).Name("update.check")
	apiRoutes.Post("/update-check", s.updateHandler.ForceUpdateCheck).Name("update.check.force")
	apiRoutes.Post("/update", s.updateHandler.TriggerUpdate).Name("update.start")

	//Settings Group
	apiRoutes.Get("/settings", s.settingsHandler.GetSettings).Name("settings.get")
	apiRoutes.Put("/settings", s.settingsHandler.UpdateSettings).Name("settings.update")

	wsRoutes.Get("/updates", websocket.New(s.updateEventsHandler.HandleUpdates)).Name("ws.updates")

	gatherer := s.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))).Name("metrics")

	app.Get("/info", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"version": constants.Version,
		})
	})

	//Catch-all 404 page
	app.Use(func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(404)
	})

	return app
}

func (s *Server) Serve(app *fiber.App, port int) error {
	addr := fmt.Sprintf(":%d", port)
	if err := app.Listen(addr); err != nil {
		logger.Log().Error("web server error",
			zap.String(logger.LogKeyContext, logger.LogContextHttp),
			zap.Error(err),
		)
		return err
	}
	return nil
}
