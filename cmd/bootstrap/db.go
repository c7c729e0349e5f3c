package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"sportsbook/internal/infra/db"
	"sportsbook/internal/pkg/config"

	"go.uber.org/fx"
)

const defaultConnectTimeout = 5 * time.Second

var DBModule = fx.Module("db",
	fx.Provide(
		NewSession,
	),
)

// NewSession dials on start and closes on stop, after in-flight work.
func NewSession(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*db.Session, error) {
	timeout := cfg.DB.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	session, err := db.Connect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("closing database session")
			return session.Close(ctx)
		},
	})

	return session, nil
}
