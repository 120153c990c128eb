package signals

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/highcard-dev/companion/internal/utils/logger"
	"go.uber.org/zap"
)

// RestartExitCode makes supervisors with Restart=on-failure bring the service back up.
const RestartExitCode = 75

type SignalHandler struct {
	app         *fiber.App
	stoppers    []func()
	waitSeconds int
	once        sync.Once
	exitCode    int
	// closed when GracefulShutdown starts and when it is finished
	stopping chan struct{}
	done     chan struct{}
}

// NewSignalHandler shuts down the stoppers in order, then the web app. app may be nil.
func NewSignalHandler(app *fiber.App, waitSeconds int, stoppers ...func()) *SignalHandler {
	return &SignalHandler{
		app:         app,
		stoppers:    stoppers,
		waitSeconds: waitSeconds,
		stopping:    make(chan struct{}),
		done:        make(chan struct{}),
	}
}

func (sh *SignalHandler) SetApp(app *fiber.App) {
	sh.app = app
}

func (sh *SignalHandler) SetupSignals() {
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
		os.Interrupt,
	)

	go func() {
		s := <-sigc
		logger.Log().Info("Received shutdown signal",
			zap.String(logger.LogKeyContext, logger.LogContextSignal),
			zap.String("signal", s.String()),
		)
		sh.GracefulShutdown(0)
	}()
}

// Serve runs the blocking serve func and returns the exit code the process should
// end with. A serve func that returns because of a shutdown only counts once the
// shutdown is complete, so the code requested by Restart is never lost.
func (sh *SignalHandler) Serve(serve func() error) (int, error) {
	err := serve()
	if err != nil {
		select {
		case <-sh.stopping:
		default:
			return 1, err
		}
	}
	return sh.Wait(), nil
}

// Wait blocks until GracefulShutdown finished and returns the requested exit code.
func (sh *SignalHandler) Wait() int {
	<-sh.done
	return sh.exitCode
}

// Stop ends the process with exit code 0.
func (sh *SignalHandler) Stop() {
	sh.GracefulShutdown(0)
}

// Restart ends the process with RestartExitCode so the supervisor starts the new version.
func (sh *SignalHandler) Restart() {
	sh.GracefulShutdown(RestartExitCode)
}

func (sh *SignalHandler) GracefulShutdown(code int) {
	sh.once.Do(func() {
		sh.exitCode = code
		close(sh.stopping)

		logger.Log().Info("Stopping background jobs",
			zap.String(logger.LogKeyContext, logger.LogContextSignal),
		)
		for _, stop := range sh.stoppers {
			stop()
		}

		if sh.app != nil {
			logger.Log().Info("Shutting down web server",
				zap.String(logger.LogKeyContext, logger.LogContextSignal),
				zap.Int("waitSeconds", sh.waitSeconds),
			)
			if err := sh.app.ShutdownWithTimeout(time.Duration(sh.waitSeconds) * time.Second); err != nil {
				logger.Log().Error("Web server shutdown failed",
					zap.String(logger.LogKeyContext, logger.LogContextSignal),
					zap.Error(err),
				)
			}
		}

		logger.Log().Info("Quitting...",
			zap.String(logger.LogKeyContext, logger.LogContextSignal),
			zap.Int("exitCode", code),
		)
		close(sh.done)
	})
}
