package logger

import (
	"sync"
	"testing"

	"github.com/highcard-dev/companion/internal/utils/env"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	LogKeyContext     = "context"
	LogContextMain    = "main"
	LogContextSignal  = "signal"
	LogContextHttp    = "http"
	LogContextUpdate  = "update"
	LogContextUpgrade = "upgrade"
	LogContextCheck   = "update-check"
	LogContextReg     = "registry"
	LogContextConfig  = "config"
)

const (
	FormatStructured = "structured"
	FormatCli        = "cli"
	FormatReduced    = "reduced"
)

var (
	logOnce        sync.Once
	logger         *zap.Logger
	testingContext bool
)

type LoggerOptions struct {
	WithStructureLogging bool
	WithReducedLogging   bool
	WithDefaultLogging   bool
	LogLevel             zapcore.Level
	DefaultFields        []zap.Field
}

type LoggerOptionsFunc func(*LoggerOptions) error

func Log(optFuncs ...LoggerOptionsFunc) *zap.Logger {
	logOnce.Do(func() {
		if testingContext {
			return
		}
		if len(optFuncs) == 0 {
			optFuncs = []LoggerOptionsFunc{WithDefaultLogging()}
		}
		logger = NewLogger(optFuncs...)
	})
	return logger
}

func SetTestLogger(t *testing.T) {
	logger = zaptest.NewLogger(t)
	testingContext = true
}

func SetupLogsCapture() *observer.ObservedLogs {
	core, logs := observer.New(zap.InfoLevel)
	logger = zap.New(core)
	testingContext = true
	return logs
}

// WithFormat maps the --log-format flag to an encoder. Unknown formats fall back to cli.
func WithFormat(format string) LoggerOptionsFunc {
	switch format {
	case FormatStructured:
		return WithStructuredLogging()
	case FormatReduced:
		return WithReducedLogging()
	default:
		return WithDefaultLogging()
	}
}

func WithStructuredLogging() LoggerOptionsFunc {
	return func(options *LoggerOptions) error {
		options.WithStructureLogging = true
		return nil
	}
}

func WithDefaultLogging() LoggerOptionsFunc {
	return func(options *LoggerOptions) error {
		options.WithDefaultLogging = true
		return nil
	}
}

func WithReducedLogging() LoggerOptionsFunc {
	return func(options *LoggerOptions) error {
		options.WithReducedLogging = true
		return nil
	}
}

func WithDefaultFields(fields []zap.Field) LoggerOptionsFunc {
	return func(options *LoggerOptions) error {
		options.DefaultFields = fields
		return nil
	}
}

func levelFromEnv() zapcore.Level {
	switch env.CanGet("LOG_LEVEL") {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "panic":
		return zapcore.PanicLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func NewLogger(optFuncs ...LoggerOptionsFunc) *zap.Logger {
	var options = &LoggerOptions{}
	var cores []zapcore.Core
	for _, optFunc := range optFuncs {
		if err := optFunc(options); err != nil {
			panic("error instantiating new logger: " + err.Error())
		}
	}

	options.LogLevel = levelFromEnv()

	if options.WithStructureLogging {
		cores = append(cores, NewProductionEncoder(options.LogLevel))
	}

	if options.WithDefaultLogging {
		cores = append(cores, NewDevelopmentEncoder(options.LogLevel))
	}
	if options.WithReducedLogging {
		cores = append(cores, NewReducedEncoder(options.LogLevel))
	}
	core := zapcore.NewTee(cores...)
	l := zap.New(core)
	if len(options.DefaultFields) > 0 {
		l = l.With(options.DefaultFields...)
	}
	return l
}
