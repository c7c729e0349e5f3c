package cli

import (
	"context"

	"sportsbook/cmd/bootstrap"
	"sportsbook/internal/handler/console"
	"sportsbook/internal/pkg/config"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newConsoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Run the interactive booking console",
		RunE: func(cmd *cobra.Command, args []string) error {
			var c *console.Console
			app := fx.New(
				bootstrap.ConsoleModule,
				// prompts own stdout
				fx.Decorate(func(cfg config.Config) config.Config {
					cfg.Log.Output = "stderr"
					return cfg
				}),
				fx.Populate(&c),
			)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if err := app.Start(ctx); err != nil {
				return err
			}
			runErr := c.Run(ctx)
			if err := app.Stop(context.Background()); err != nil && runErr == nil {
				return err
			}
			return runErr
		},
	}
}
