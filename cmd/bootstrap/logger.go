package bootstrap

import (
	"log/slog"

	"sportsbook/internal/pkg/config"
	"sportsbook/internal/pkg/logging"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		func(l *logging.Logger) *slog.Logger {
			return l.GetSlogLogger()
		},
	),
)

func NewLogger(cfg config.Config) *logging.Logger {
	return logging.NewLogger(cfg.Log)
}

// FxLogger routes container events through slog at debug level so they
// stay out of the console.
var FxLogger = fx.WithLogger(func(l *slog.Logger) fxevent.Logger {
	logger := &fxevent.SlogLogger{Logger: l}
	logger.UseLogLevel(slog.LevelDebug)
	return logger
})
