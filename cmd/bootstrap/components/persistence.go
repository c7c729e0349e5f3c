package components

import (
	"log/slog"

	"sportsbook/internal/infra/db"
	"sportsbook/internal/infra/gateway"
	"sportsbook/internal/infra/readstore"
	"sportsbook/internal/pkg/config"
	"sportsbook/internal/pkg/password"
	"sportsbook/internal/usecase/commands"
	"sportsbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	sessionOption,
	gatewayModule,
	readstoreModule,
)

// The session is the only connection; every component borrows it.
var sessionOption = fx.Provide(
	func(s *db.Session) gateway.Transactor { return s },
	func(s *db.Session) readstore.Snapshotter { return s },
)

var gatewayModule = fx.Module("persistence/gateway",
	fx.Provide(
		NewStatusParser,
		fx.Annotate(
			password.NewBcryptHasher,
			fx.As(new(password.Hasher)),
		),
		fx.Annotate(
			NewReservationGateway,
			fx.As(new(commands.ReservationGateway)),
		),
		fx.Annotate(
			gateway.NewMemberGateway,
			fx.As(new(commands.MemberGateway)),
		),
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewMemberReadStore,
			fx.As(new(queries.MemberReadStore)),
		),
	),
)

func NewReservationGateway(session gateway.Transactor, status gateway.StatusParser, logger *slog.Logger) *gateway.ReservationGateway {
	return gateway.NewReservationGateway(session, status, logger,
		gateway.WithCancellationPredicate(gateway.MessageIndicatesCancellation))
}

func NewStatusParser(cfg config.Config) gateway.StatusParser {
	return gateway.NewStatusParser(cfg.Facility.SuccessStatus)
}
