package input

import (
	"context"
	"fmt"
	"strings"

	"sportsbook/internal/domain/booking"
	"sportsbook/internal/pkg/errs"
)

// BookingInputCollector asks for booking, search and cancellation fields one
// at a time and re-asks a field until it validates or the user abandons.
type BookingInputCollector struct {
	prompter Prompter
	rules    booking.Rules
}

func NewBookingInputCollector(prompter Prompter, rules booking.Rules) *BookingInputCollector {
	return &BookingInputCollector{prompter: prompter, rules: rules}
}

func (c *BookingInputCollector) CollectBookingRequest(ctx context.Context) (booking.BookingRequest, error) {
	c.prompter.Notify("=== Create Booking ===")

	roomID, err := collect(ctx, c.prompter,
		Field{Key: FieldRoomID, Label: "Room ID (e.g., AR, T1, B1, MPF1)"},
		booking.ValidateRoomID)
	if err != nil {
		return booking.BookingRequest{}, err
	}

	date, err := collect(ctx, c.prompter,
		Field{Key: FieldDate, Label: "Booking date (YYYY-MM-DD)"},
		func(s string) (booking.Date, error) { return c.rules.FutureDate(s, booking.LabelBookingDate) })
	if err != nil {
		return booking.BookingRequest{}, err
	}

	hours := c.rules.Hours()
	timeOfDay, err := collect(ctx, c.prompter,
		Field{Key: FieldTime, Label: fmt.Sprintf("Booking time (HH:MM, %s-%s)", hours.Open(), hours.Close())},
		func(s string) (booking.TimeOfDay, error) { return c.rules.OperatingTime(s, booking.LabelBookingTime) })
	if err != nil {
		return booking.BookingRequest{}, err
	}

	requester, err := collect(ctx, c.prompter,
		Field{Key: FieldMemberID, Label: booking.LabelMemberID},
		identifier(booking.LabelMemberID))
	if err != nil {
		return booking.BookingRequest{}, err
	}

	c.prompter.Notify(fmt.Sprintf("Booking summary:\n  Room: %s\n  Date: %s\n  Time: %s\n  Member: %s",
		roomID, date, timeOfDay, requester))
	if err := confirm(ctx, c.prompter, "Confirm booking creation? (y/n)", "Booking creation cancelled"); err != nil {
		return booking.BookingRequest{}, err
	}

	req, err := booking.NewBookingRequest(c.rules, roomID, date.String(), timeOfDay.String(), requester)
	if err != nil {
		// the clock may have crossed midnight while the user was confirming
		c.prompter.Notify(err.Error())
		return booking.BookingRequest{}, ErrAbandoned
	}
	return req, nil
}

func (c *BookingInputCollector) CollectSearchRequest(ctx context.Context) (booking.SearchRequest, error) {
	c.prompter.Notify("=== Search Available Rooms ===")

	var menu strings.Builder
	menu.WriteString("Available room types:")
	for i, t := range booking.RoomTypes {
		fmt.Fprintf(&menu, "\n  %d. %s", i+1, t)
	}
	c.prompter.Notify(menu.String())

	roomType, err := collect(ctx, c.prompter,
		Field{Key: FieldRoomType, Label: fmt.Sprintf("Select room type (1-%d)", len(booking.RoomTypes))},
		func(s string) (booking.RoomType, error) {
			t, ok := booking.RoomTypeFromChoice(s)
			if !ok {
				return "", errs.Newf("invalid choice, please select 1-%d", len(booking.RoomTypes))
			}
			return t, nil
		})
	if err != nil {
		return booking.SearchRequest{}, err
	}

	date, err := collect(ctx, c.prompter,
		Field{Key: FieldDate, Label: "Search date (YYYY-MM-DD)"},
		func(s string) (booking.Date, error) { return c.rules.FutureDate(s, booking.LabelSearchDate) })
	if err != nil {
		return booking.SearchRequest{}, err
	}

	hours := c.rules.Hours()
	timeOfDay, err := collect(ctx, c.prompter,
		Field{Key: FieldTime, Label: fmt.Sprintf("Search time (HH:MM, %s-%s)", hours.Open(), hours.Close())},
		func(s string) (booking.TimeOfDay, error) { return c.rules.OperatingTime(s, booking.LabelSearchTime) })
	if err != nil {
		return booking.SearchRequest{}, err
	}

	req, err := booking.NewSearchRequest(c.rules, roomType, date.String(), timeOfDay.String())
	if err != nil {
		c.prompter.Notify(err.Error())
		return booking.SearchRequest{}, ErrAbandoned
	}
	return req, nil
}

func (c *BookingInputCollector) CollectCancellationRequest(ctx context.Context) (booking.CancellationRequest, error) {
	c.prompter.Notify("=== Cancel Booking ===")

	bookingID, err := collect(ctx, c.prompter,
		Field{Key: FieldBookingID, Label: booking.LabelBookingID},
		func(s string) (int64, error) { return booking.ValidateNumericID(s, booking.LabelBookingID) })
	if err != nil {
		return booking.CancellationRequest{}, err
	}

	owner, err := collect(ctx, c.prompter,
		Field{Key: FieldOwnerID, Label: booking.LabelOwnerID},
		identifier(booking.LabelOwnerID))
	if err != nil {
		return booking.CancellationRequest{}, err
	}

	prompt := fmt.Sprintf("Cancel booking %d for %s? (y/n)", bookingID, owner)
	if err := confirm(ctx, c.prompter, prompt, "Booking cancellation aborted"); err != nil {
		return booking.CancellationRequest{}, err
	}

	req, err := booking.NewCancellationRequest(fmt.Sprint(bookingID), owner)
	if err != nil {
		c.prompter.Notify(err.Error())
		return booking.CancellationRequest{}, ErrAbandoned
	}
	return req, nil
}

// collect re-asks field until validate accepts the answer. Prompt errors end
// collection; ErrAbandoned passes through unwrapped.
func collect[T any](ctx context.Context, p Prompter, field Field, validate func(string) (T, error)) (T, error) {
	var zero T
	for {
		raw, err := p.Prompt(ctx, field)
		if err != nil {
			if errs.Is(err, ErrAbandoned) {
				return zero, ErrAbandoned
			}
			return zero, errs.Wrapf(err, "read %s", field.Key)
		}
		v, verr := validate(raw)
		if verr != nil {
			p.Notify("❌ " + verr.Error())
			continue
		}
		return v, nil
	}
}

func confirm(ctx context.Context, p Prompter, label, declined string) error {
	answer, err := p.Prompt(ctx, Field{Key: FieldConfirm, Label: label})
	if err != nil {
		if errs.Is(err, ErrAbandoned) {
			return ErrAbandoned
		}
		return errs.Wrap(err, "read confirmation")
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return nil
	default:
		p.Notify(declined)
		return ErrAbandoned
	}
}

func identifier(label string) func(string) (string, error) {
	return func(s string) (string, error) {
		return booking.ValidateIdentifier(s, label, booking.IdentifierMinLength, booking.IdentifierMaxLength)
	}
}
