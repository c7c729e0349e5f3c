package bootstrap

import (
	"sportsbook/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Core is everything both front ends share.
var Core = fx.Options(
	ConfigModule,
	LoggerModule,
	FxLogger,
	DBModule,
	components.PersistenceModule,
	components.UseCaseModule,
)

var ServerModule = fx.Options(
	Core,
	components.HandlerModule,
)

var ConsoleModule = fx.Options(
	Core,
	components.ConsoleModule,
)
