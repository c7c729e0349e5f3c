package cli

import (
	"context"
	"fmt"
	"log/slog"

	"sportsbook/cmd/bootstrap"
	"sportsbook/internal/infra/db"
	"sportsbook/migrations"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded schema and stored procedures",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				session *db.Session
				logger  *slog.Logger
			)
			app := fx.New(
				bootstrap.ConfigModule,
				bootstrap.LoggerModule,
				bootstrap.FxLogger,
				bootstrap.DBModule,
				fx.Populate(&session, &logger),
			)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if err := app.Start(ctx); err != nil {
				return err
			}
			defer func() { _ = app.Stop(context.Background()) }()

			applied, err := migrations.Up(ctx, session, logger)
			if err != nil {
				return err
			}
			if len(applied) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
				return nil
			}
			for _, name := range applied {
				fmt.Fprintf(cmd.OutOrStdout(), "applied %s\n", name)
			}
			return nil
		},
	}
}
