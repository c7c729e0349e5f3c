package components

import (
	"sportsbook/internal/usecase/commands"
	"sportsbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewMemberCommands,
		queries.NewBookingQueries,
		queries.NewMemberQueries,
	),
)
