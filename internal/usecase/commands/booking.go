package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/mock_booking.go -package=commandsmock

import (
	"context"
	"log/slog"
)

const (
	MsgBookingAbandoned      = "Booking creation cancelled or failed"
	MsgBookingRejected       = "Booking operation failed"
	MsgSearchAbandoned       = "Room search cancelled or failed"
	MsgSearchEmpty           = "No search results"
	MsgCancellationAbandoned = "Booking cancellation cancelled or failed"
	MsgCancellationRejected  = "Cancellation operation failed"
)

// BookingCommands runs one booking workflow per call. Methods never panic
// and never return an error; everything is folded into the Outcome.
type BookingCommands interface {
	ExecuteBooking(ctx context.Context, in BookingCollector) Outcome
	ExecuteSearch(ctx context.Context, in BookingCollector) Outcome
	ExecuteCancellation(ctx context.Context, in BookingCollector) Outcome
}

type bookingCommandsImpl struct {
	gateway ReservationGateway
	logger  *slog.Logger
}

func NewBookingCommands(gateway ReservationGateway, logger *slog.Logger) BookingCommands {
	return &bookingCommandsImpl{gateway: gateway, logger: logger}
}

func (c *bookingCommandsImpl) ExecuteBooking(ctx context.Context, in BookingCollector) (outcome Outcome) {
	op := newOperation(c.logger, "booking")
	defer op.recover(ctx, &outcome)

	req, err := in.CollectBookingRequest(ctx)
	if err != nil {
		return op.collectFailed(ctx, err, MsgBookingAbandoned)
	}
	op.logger.InfoContext(ctx, "booking requested",
		slog.String("room_id", req.RoomID()),
		slog.String("date", req.Date().String()),
		slog.String("time", req.Time().String()),
		slog.String("member_id", req.RequesterID()))

	if !c.gateway.Book(ctx, req) {
		return op.rejected(ctx, MsgBookingRejected)
	}
	return op.done(ctx, succeeded())
}

func (c *bookingCommandsImpl) ExecuteSearch(ctx context.Context, in BookingCollector) (outcome Outcome) {
	op := newOperation(c.logger, "search")
	defer op.recover(ctx, &outcome)

	req, err := in.CollectSearchRequest(ctx)
	if err != nil {
		return op.collectFailed(ctx, err, MsgSearchAbandoned)
	}

	rooms := c.gateway.Search(ctx, req)
	if len(rooms) == 0 {
		return op.rejected(ctx, MsgSearchEmpty)
	}
	out := succeeded()
	out.Rooms = rooms
	return op.done(ctx, out)
}

func (c *bookingCommandsImpl) ExecuteCancellation(ctx context.Context, in BookingCollector) (outcome Outcome) {
	op := newOperation(c.logger, "cancellation")
	defer op.recover(ctx, &outcome)

	req, err := in.CollectCancellationRequest(ctx)
	if err != nil {
		return op.collectFailed(ctx, err, MsgCancellationAbandoned)
	}

	if !c.gateway.Cancel(ctx, req) {
		return op.rejected(ctx, MsgCancellationRejected)
	}
	return op.done(ctx, succeeded())
}
