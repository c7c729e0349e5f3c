package readstore

import (
	"context"
	"log/slog"

	"sportsbook/internal/infra"
	"sportsbook/internal/pkg/pgconv"
	"sportsbook/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	selectBookings = `
SELECT booking_id, room_id, room_type, datetime_of_booking, member_id, payment_status
FROM member_bookings
ORDER BY datetime_of_booking, booking_id`

	selectMemberBookings = `
SELECT booking_id, room_id, room_type, datetime_of_booking, member_id, payment_status
FROM member_bookings
WHERE member_id = $1
ORDER BY datetime_of_booking, booking_id`
)

// Snapshotter runs read-only work on the database session.
type Snapshotter interface {
	Snapshot(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}

type BookingReadStore struct {
	session Snapshotter
	logger  *slog.Logger
}

func NewBookingReadStore(session Snapshotter, logger *slog.Logger) *BookingReadStore {
	return &BookingReadStore{session: session, logger: logger}
}

func (r *BookingReadStore) FindAll(ctx context.Context) ([]*readmodel.BookingRM, error) {
	return r.find(ctx, selectBookings)
}

func (r *BookingReadStore) FindByMember(ctx context.Context, memberID string) ([]*readmodel.BookingRM, error) {
	return r.find(ctx, selectMemberBookings, memberID)
}

func (r *BookingReadStore) find(ctx context.Context, sql string, args ...any) ([]*readmodel.BookingRM, error) {
	var bookings []*readmodel.BookingRM
	err := r.session.Snapshot(ctx, func(ctx context.Context, tx pgx.Tx) error {
		rows, err := tx.Query(ctx, sql, args...)
		if err != nil {
			return err
		}
		bookings, err = pgx.CollectRows(rows, scanBooking)
		return err
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.Classify(err), "failed to list bookings", err)
	}
	return bookings, nil
}

func scanBooking(row pgx.CollectableRow) (*readmodel.BookingRM, error) {
	var (
		bookingID     int64
		roomID        string
		roomType      pgtype.Text
		bookedFor     pgtype.Timestamp
		memberID      string
		paymentStatus pgtype.Text
	)
	if err := row.Scan(&bookingID, &roomID, &roomType, &bookedFor, &memberID, &paymentStatus); err != nil {
		return nil, err
	}
	return &readmodel.BookingRM{
		BookingID:     bookingID,
		RoomID:        roomID,
		RoomType:      pgconv.StringFromPgtype(roomType),
		BookedFor:     pgconv.TimeFromPgtype(bookedFor),
		MemberID:      memberID,
		PaymentStatus: pgconv.StringFromPgtype(paymentStatus),
	}, nil
}
