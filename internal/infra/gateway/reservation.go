package gateway

import (
	"context"
	"log/slog"

	"sportsbook/internal/domain/booking"
	"sportsbook/internal/infra"
	"sportsbook/internal/pkg/errs"
	"sportsbook/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	callMakeBooking   = `CALL make_booking($1::varchar, $2::date, $3::time, $4::varchar, NULL::bigint, NULL::varchar, NULL::text)`
	callSearchRoom    = `CALL search_room($1::varchar, $2::date, $3::time, NULL::varchar, NULL::text, NULL::refcursor)`
	callCancelBooking = `CALL cancel_booking($1::bigint, $2::varchar, NULL::text)`
)

// Transactor runs work on the database session. Within commits only when fn
// returns nil; Snapshot is read-only and never commits.
type Transactor interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
	Snapshot(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}

type ReservationGateway struct {
	session   Transactor
	status    StatusParser
	cancelled CancellationPredicate
	logger    *slog.Logger
}

type Option func(*ReservationGateway)

func WithCancellationPredicate(p CancellationPredicate) Option {
	return func(g *ReservationGateway) {
		g.cancelled = p
	}
}

func NewReservationGateway(session Transactor, status StatusParser, logger *slog.Logger, opts ...Option) *ReservationGateway {
	g := &ReservationGateway{
		session:   session,
		status:    status,
		cancelled: MessageIndicatesCancellation,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *ReservationGateway) Book(ctx context.Context, req booking.BookingRequest) bool {
	var (
		bookingID pgtype.Int8
		status    pgtype.Text
		message   pgtype.Text
	)

	err := g.session.Within(ctx, func(ctx context.Context, tx pgx.Tx) error {
		d, t := req.Date(), req.Time()
		err := tx.QueryRow(ctx, callMakeBooking,
			req.RoomID(),
			pgconv.DateToPgtype(d.Year(), d.Month(), d.Day()),
			pgconv.TimeOfDayToPgtype(t.Hour(), t.Minute()),
			req.RequesterID(),
		).Scan(&bookingID, &status, &message)
		if err != nil {
			return errs.Wrap(err, "call make_booking")
		}
		return g.requireSuccess("make_booking", status, message)
	})
	if err != nil {
		return g.failed("make_booking", err,
			slog.String("room_id", req.RoomID()),
			slog.String("member_id", req.RequesterID()))
	}

	g.logger.InfoContext(ctx, "booking created",
		slog.Any("booking_id", pgconv.Int64PtrFromPgtype(bookingID)),
		slog.String("room_id", req.RoomID()),
		slog.String("date", req.Date().String()),
		slog.String("time", req.Time().String()),
		slog.String("member_id", req.RequesterID()),
		slog.String("message", pgconv.StringFromPgtype(message)))
	return true
}

// Search returns an empty slice for every failure, including a non-success status.
func (g *ReservationGateway) Search(ctx context.Context, req booking.SearchRequest) []booking.Room {
	rooms := []booking.Room{}

	err := g.session.Snapshot(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var status, message, cursor pgtype.Text
		d, t := req.Date(), req.Time()
		err := tx.QueryRow(ctx, callSearchRoom,
			req.RoomType().String(),
			pgconv.DateToPgtype(d.Year(), d.Month(), d.Day()),
			pgconv.TimeOfDayToPgtype(t.Hour(), t.Minute()),
		).Scan(&status, &message, &cursor)
		if err != nil {
			return errs.Wrap(err, "call search_room")
		}
		if err := g.requireSuccess("search_room", status, message); err != nil {
			return err
		}
		if !cursor.Valid {
			return nil
		}

		found, err := fetchRooms(ctx, tx, cursor.String)
		if err != nil {
			return err
		}
		rooms = found
		return nil
	})
	if err != nil {
		g.failed("search_room", err,
			slog.String("room_type", req.RoomType().String()),
			slog.String("date", req.Date().String()),
			slog.String("time", req.Time().String()))
		return []booking.Room{}
	}

	g.logger.DebugContext(ctx, "room search finished",
		slog.String("room_type", req.RoomType().String()),
		slog.Int("rooms", len(rooms)))
	return rooms
}

func fetchRooms(ctx context.Context, tx pgx.Tx, cursor string) ([]booking.Room, error) {
	name := pgx.Identifier{cursor}.Sanitize()

	rows, err := tx.Query(ctx, "FETCH ALL FROM "+name)
	if err != nil {
		return nil, errs.Wrap(err, "fetch search cursor")
	}
	rooms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (booking.Room, error) {
		var id, roomType string
		if err := row.Scan(&id, &roomType); err != nil {
			return booking.Room{}, err
		}
		return booking.Room{ID: id, Type: booking.RoomType(roomType)}, nil
	})
	if err != nil {
		return nil, errs.Wrap(err, "scan search cursor")
	}

	if _, err := tx.Exec(ctx, "CLOSE "+name); err != nil {
		return nil, errs.Wrap(err, "close search cursor")
	}
	return rooms, nil
}

func (g *ReservationGateway) Cancel(ctx context.Context, req booking.CancellationRequest) bool {
	var message pgtype.Text

	err := g.session.Within(ctx, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, callCancelBooking, req.BookingID(), req.OwnerID()).Scan(&message)
		if err != nil {
			return errs.Wrap(err, "call cancel_booking")
		}
		if !g.cancelled(pgconv.StringFromPgtype(message)) {
			return errs.Mark(errs.Newf("cancel_booking: %s", pgconv.StringFromPgtype(message)), errs.ErrProcedureRejected)
		}
		return nil
	})
	if err != nil {
		return g.failed("cancel_booking", err,
			slog.Int64("booking_id", req.BookingID()),
			slog.String("member_id", req.OwnerID()))
	}

	g.logger.InfoContext(ctx, "booking cancelled",
		slog.Int64("booking_id", req.BookingID()),
		slog.String("member_id", req.OwnerID()),
		slog.String("message", pgconv.StringFromPgtype(message)))
	return true
}

func (g *ReservationGateway) requireSuccess(procedure string, status, message pgtype.Text) error {
	parsed := g.status.Parse(status)
	if parsed == StatusSuccess {
		return nil
	}
	return errs.Mark(
		errs.Newf("%s returned %s status %q: %s", procedure, parsed, pgconv.StringFromPgtype(status), pgconv.StringFromPgtype(message)),
		errs.ErrProcedureRejected,
	)
}

// failed logs a rolled back procedure call. Callers only ever see false.
func (g *ReservationGateway) failed(procedure string, err error, attrs ...slog.Attr) bool {
	return reportFailure(g.logger.With(attrsToArgs(attrs)...), procedure, err)
}

func reportFailure(logger *slog.Logger, procedure string, err error) bool {
	_ = infra.WrapRepoErr(logger, infra.Classify(err), procedure+" rolled back", err)
	return false
}

func attrsToArgs(attrs []slog.Attr) []any {
	args := make([]any, 0, len(attrs))
	for _, a := range attrs {
		args = append(args, a)
	}
	return args
}
