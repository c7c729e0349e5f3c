//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"sportsbook/internal/pkg/errs"
	"sportsbook/internal/usecase/queries"
	"sportsbook/internal/usecase/readmodel"
	queriesmock "sportsbook/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingQueries(t *testing.T) {
	ctx := context.Background()
	bookedFor := time.Date(2025, time.June, 20, 14, 0, 0, 0, time.UTC)

	t.Run("maps every read model field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().FindAll(gomock.Any()).Return([]*readmodel.BookingRM{
			{BookingID: 7, RoomID: "T1", RoomType: "Tennis Court", BookedFor: bookedFor, MemberID: "alice", PaymentStatus: "Unpaid"},
		}, nil)

		views, err := queries.NewBookingQueries(store).ListBookings(ctx)
		require.NoError(t, err)

		want := []*queries.BookingView{
			{BookingID: 7, RoomID: "T1", RoomType: "Tennis Court", BookedFor: bookedFor, MemberID: "alice", PaymentStatus: "Unpaid"},
		}
		if diff := cmp.Diff(want, views); diff != "" {
			t.Errorf("BookingView mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty store yields empty slice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().FindByMember(gomock.Any(), "bob").Return(nil, nil)

		views, err := queries.NewBookingQueries(store).ListMemberBookings(ctx, "bob")
		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})

	t.Run("store failure is marked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("connection refused"))

		_, err := queries.NewBookingQueries(store).ListBookings(ctx)
		assert.True(t, errs.Is(err, queries.ErrBookingsUnavailable))
	})
}

func TestMemberQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockMemberReadStore(ctrl)
	since := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
	store.EXPECT().FindAll(gomock.Any()).Return([]*readmodel.MemberRM{
		{ID: "alice", Email: "alice@example.com", PaymentDue: "0.00", MemberSince: since},
		{ID: "bob", Email: "bob@example.com", PaymentDue: "12.50", MemberSince: since},
	}, nil)

	views, err := queries.NewMemberQueries(store).ListMembers(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "bob", views[1].ID)
	assert.Equal(t, "12.50", views[1].PaymentDue)
}
