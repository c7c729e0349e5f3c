package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"sportsbook/internal/domain/booking"
	"sportsbook/internal/usecase/commands"
	"sportsbook/internal/usecase/input"
	"sportsbook/internal/usecase/queries"
)

const rule = "--------------------------------------------------"

type option struct {
	key  string
	name string
	run  func(ctx context.Context)
}

type menu struct {
	title   string
	options []option
}

func (m menu) lookup(choice string) (option, bool) {
	for _, o := range m.options {
		if strings.EqualFold(o.key, choice) {
			return o, true
		}
	}
	return option{}, false
}

// Console is the interactive front end. Every action builds a fresh
// collector on the shared prompter and hands it to the command layer.
type Console struct {
	prompter *Prompter
	out      io.Writer
	bookings commands.BookingCommands
	members  commands.MemberCommands
	bookingQ queries.BookingQueries
	memberQ  queries.MemberQueries
	rules    booking.Rules
	logger   *slog.Logger
}

func NewConsole(
	prompter *Prompter,
	out io.Writer,
	bookings commands.BookingCommands,
	members commands.MemberCommands,
	bookingQ queries.BookingQueries,
	memberQ queries.MemberQueries,
	rules booking.Rules,
	logger *slog.Logger,
) *Console {
	return &Console{
		prompter: prompter,
		out:      out,
		bookings: bookings,
		members:  members,
		bookingQ: bookingQ,
		memberQ:  memberQ,
		rules:    rules,
		logger:   logger,
	}
}

// Run shows the main menu until the user quits. An interrupt or end of input
// at a menu quits as well; only a cancelled ctx is reported as an error.
func (c *Console) Run(ctx context.Context) error {
	memberMenu := menu{title: "Member Management", options: []option{
		{key: "A", name: "View All Members", run: c.listMembers},
		{key: "B", name: "Add New Member", run: c.member(c.members.ExecuteRegistration)},
		{key: "C", name: "Update Member Email", run: c.member(c.members.ExecuteEmailChange)},
		{key: "D", name: "Update Member Password", run: c.member(c.members.ExecutePasswordChange)},
		{key: "E", name: "Delete A Member", run: c.member(c.members.ExecuteDeletion)},
	}}
	roomMenu := menu{title: "Room Management", options: []option{
		{key: "A", name: "View All Rooms", run: c.listBookings},
		{key: "B", name: "Search A Room", run: c.searchRooms},
		{key: "C", name: "Book A Room", run: c.booking(c.bookings.ExecuteBooking)},
		{key: "D", name: "Cancel Booking", run: c.booking(c.bookings.ExecuteCancellation)},
	}}
	menus := []menu{memberMenu, roomMenu}

	for {
		fmt.Fprintf(c.out, "\n%s\nSPORTS COMPLEX BOOKING SYSTEM\n%s\nMain Menu:\n", rule, rule)
		fmt.Fprintln(c.out, "  A: Member Management")
		fmt.Fprintln(c.out, "  B: Room Management")
		fmt.Fprintln(c.out, "  Q: Quit")
		fmt.Fprintln(c.out, rule)

		choice, err := c.choose(ctx, "A", "B", "Q")
		if err != nil {
			return c.quit(err)
		}
		if choice == "Q" {
			return c.quit(nil)
		}
		sub := menus[0]
		if choice == "B" {
			sub = menus[1]
		}
		if err := c.runMenu(ctx, sub); err != nil {
			return c.quit(err)
		}
	}
}

func (c *Console) runMenu(ctx context.Context, m menu) error {
	keys := make([]string, 0, len(m.options)+1)
	for _, o := range m.options {
		keys = append(keys, o.key)
	}
	keys = append(keys, "X")

	for {
		fmt.Fprintf(c.out, "\n%s\n%s\n%s\n", rule, m.title, rule)
		for _, o := range m.options {
			fmt.Fprintf(c.out, "  %s: %s\n", o.key, o.name)
		}
		fmt.Fprintln(c.out, "  X: Back to Main Menu")
		fmt.Fprintln(c.out, rule)

		choice, err := c.choose(ctx, keys...)
		if err != nil {
			return err
		}
		if choice == "X" {
			return nil
		}
		selected, _ := m.lookup(choice)
		fmt.Fprintf(c.out, "\nExecuting: %s\n", selected.name)
		selected.run(ctx)

		c.prompter.discardInterrupts()
		fmt.Fprint(c.out, "\nPress Enter to continue...")
		if _, err := c.prompter.readLine(ctx); err != nil {
			return err
		}
	}
}

// choose re-asks until the answer is one of keys and returns it upper-cased.
func (c *Console) choose(ctx context.Context, keys ...string) (string, error) {
	for {
		fmt.Fprint(c.out, "Choose an option: ")
		line, err := c.prompter.readLine(ctx)
		if err != nil {
			return "", err
		}
		choice := strings.ToUpper(strings.TrimSpace(line))
		for _, k := range keys {
			if choice == k {
				return choice, nil
			}
		}
		fmt.Fprintln(c.out, "Invalid choice!")
	}
}

func (c *Console) quit(err error) error {
	if err != nil && !errors.Is(err, errInterrupted) && !errors.Is(err, io.EOF) {
		return err
	}
	fmt.Fprintln(c.out, "\nGoodbye!")
	return nil
}

func (c *Console) booking(execute func(context.Context, commands.BookingCollector) commands.Outcome) func(context.Context) {
	return func(ctx context.Context) {
		c.report(execute(ctx, input.NewBookingInputCollector(c.prompter, c.rules)))
	}
}

func (c *Console) member(execute func(context.Context, commands.MemberCollector) commands.Outcome) func(context.Context) {
	return func(ctx context.Context) {
		c.report(execute(ctx, input.NewMemberInputCollector(c.prompter)))
	}
}

func (c *Console) searchRooms(ctx context.Context) {
	out := c.bookings.ExecuteSearch(ctx, input.NewBookingInputCollector(c.prompter, c.rules))
	if !out.Succeeded {
		c.report(out)
		return
	}
	roomTable(out.Rooms).render(c.out)
}

func (c *Console) report(out commands.Outcome) {
	switch {
	case out.Succeeded:
		fmt.Fprintln(c.out, "✅ Operation completed successfully")
	case out.Failure == commands.FailureAbandoned:
		fmt.Fprintf(c.out, "⚠️  %s\n", out.Detail)
	default:
		fmt.Fprintf(c.out, "❌ %s\n", out.Detail)
	}
}

func (c *Console) listMembers(ctx context.Context) {
	views, err := c.memberQ.ListMembers(ctx)
	if err != nil {
		c.logger.ErrorContext(ctx, "list members failed", slog.String("error", err.Error()))
		fmt.Fprintln(c.out, "❌ Could not load members")
		return
	}
	memberTable(views).render(c.out)
}

func (c *Console) listBookings(ctx context.Context) {
	views, err := c.bookingQ.ListBookings(ctx)
	if err != nil {
		c.logger.ErrorContext(ctx, "list bookings failed", slog.String("error", err.Error()))
		fmt.Fprintln(c.out, "❌ Could not load bookings")
		return
	}
	bookingTable(views).render(c.out)
}
