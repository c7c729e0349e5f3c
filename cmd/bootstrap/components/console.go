package components

import (
	"io"
	"os"
	"os/signal"

	"sportsbook/internal/handler/console"

	"go.uber.org/fx"
)

var ConsoleModule = fx.Module("console",
	fx.Provide(
		NewPrompter,
		func() io.Writer { return os.Stdout },
		console.NewConsole,
	),
)

// NewPrompter reads stdin and turns Ctrl+C into an interrupt instead of
// killing the process, so a half-typed booking is abandoned cleanly.
func NewPrompter(lc fx.Lifecycle) *console.Prompter {
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	lc.Append(fx.StopHook(func() {
		signal.Stop(interrupts)
	}))
	return console.NewPrompter(os.Stdin, os.Stdout, interrupts)
}
