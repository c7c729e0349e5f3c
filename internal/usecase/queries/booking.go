package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/mock_booking.go -package=queriesmock

import (
	"context"

	"sportsbook/internal/pkg/errs"
	"sportsbook/internal/usecase/readmodel"

	"github.com/jinzhu/copier"
)

var ErrBookingsUnavailable = errs.New("bookings unavailable")

type BookingQueries interface {
	ListBookings(ctx context.Context) ([]*BookingView, error)
	ListMemberBookings(ctx context.Context, memberID string) ([]*BookingView, error)
}

type BookingReadStore interface {
	FindAll(ctx context.Context) ([]*readmodel.BookingRM, error)
	FindByMember(ctx context.Context, memberID string) ([]*readmodel.BookingRM, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) ListBookings(ctx context.Context) ([]*BookingView, error) {
	rms, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingsUnavailable)
	}
	return toViews[readmodel.BookingRM, BookingView](rms)
}

func (q *bookingQueriesImpl) ListMemberBookings(ctx context.Context, memberID string) ([]*BookingView, error) {
	rms, err := q.readStore.FindByMember(ctx, memberID)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingsUnavailable)
	}
	return toViews[readmodel.BookingRM, BookingView](rms)
}

func toViews[RM any, V any](rms []*RM) ([]*V, error) {
	views := make([]*V, 0, len(rms))
	for _, rm := range rms {
		v := new(V)
		if err := copier.Copy(v, rm); err != nil {
			return nil, errs.Wrap(err, "map read model")
		}
		views = append(views, v)
	}
	return views, nil
}
