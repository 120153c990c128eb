package cmd

import (
	"context"
	"errors"
	"time"

	"github.com/highcard-dev/companion/cmd/server/web"
	constants "github.com/highcard-dev/companion/internal"
	"github.com/highcard-dev/companion/internal/core/domain"
	"github.com/highcard-dev/companion/internal/core/services"
	"github.com/highcard-dev/companion/internal/handler"
	"github.com/highcard-dev/companion/internal/signals"
	"github.com/highcard-dev/companion/internal/utils/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var port int
var shutdownWait int

var ServeCommand = &cobra.Command{
	Use:   "serve",
	Short: "Run the companion service",
	Long: `This command starts the companion API, checks the registry
for newer releases in the background and applies updates on request
when the process runs under a service supervisor.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		logger.Log().Info("Starting companion",
			zap.String(logger.LogKeyContext, logger.LogContextMain),
			zap.String("version", constants.Version),
		)

		isServiceMode, err := services.ResolveServiceMode(viper.GetString("service-mode"))
		if err != nil {
			return err
		}

		settings := services.NewSettingsService(viper.GetViper())

		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics := services.NewUpdateMetrics(reg)

		hub := domain.NewHub()
		go hub.Run()

		state := services.NewUpdateStateManager(constants.Version, settings.GetUpdateChannel(), services.NewUpdateBroadcaster(hub))
		state.SetServiceMode(isServiceMode)

		checker := services.NewUpdateChecker(
			state,
			newRegistryClient(),
			settings,
			viper.GetDuration("update.stale-threshold"),
			services.WithCheckMetrics(metrics),
		)
		trigger := services.NewUpdateTrigger(state, metrics)
		scheduler := services.NewUpdateScheduler(checker, viper.GetDuration("update.check-interval"))

		signalHandler := signals.NewSignalHandler(nil, shutdownWait, scheduler.Stop, cancel, hub.Stop)

		upgrader := services.NewCommandUpgrader(
			viper.GetString("update.command"),
			viper.GetDuration("update.restart-delay"),
			state,
			signalHandler.Restart,
		)

		s := web.NewServer(
			handler.NewUpdateHandler(checker, trigger, upgrader),
			handler.NewSettingsHandler(settings),
			handler.NewUpdateEventsHandler(hub),
			reg,
		)

		a := s.Initialize()

		signalHandler.SetApp(a)
		signalHandler.SetupSignals()

		logger.Log().Info("Update settings",
			zap.String(logger.LogKeyContext, logger.LogContextMain),
			zap.Bool("serviceMode", isServiceMode),
			zap.String("channel", string(settings.GetUpdateChannel())),
			zap.String("registry", viper.GetString("registry.url")),
		)

		err = scheduler.Start(ctx)
		if errors.Is(err, services.ErrInvalidInterval) {
			logger.Log().Info("Periodic update check disabled",
				zap.String(logger.LogKeyContext, logger.LogContextMain),
			)
		} else if err != nil {
			return err
		}
		defer scheduler.Stop()

		code, err := signalHandler.Serve(func() error {
			return s.Serve(a, port)
		})
		if err != nil {
			return err
		}

		logger.Log().Info("Shut down",
			zap.String(logger.LogKeyContext, logger.LogContextMain),
			zap.Int("exitCode", code),
		)
		if code != 0 {
			exit(code)
		}
		return nil
	},
}

func init() {
	ServeCommand.Flags().IntVarP(&port, "port", "p", 8081, "Port")

	ServeCommand.Flags().IntVarP(&shutdownWait, "shutdown-wait", "", 10, "Seconds the web server gets to finish open requests on shutdown")

	ServeCommand.Flags().String("service-mode", services.ServiceModeAuto, "Whether the process runs under a supervisor (auto, true, false)")
	viper.BindPFlag("service-mode", ServeCommand.Flags().Lookup("service-mode"))

	ServeCommand.Flags().Duration("check-interval", time.Hour, "Interval of the background update check, 0 disables it")
	viper.BindPFlag("update.check-interval", ServeCommand.Flags().Lookup("check-interval"))
}
