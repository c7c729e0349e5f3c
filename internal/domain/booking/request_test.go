//go:build unit

package booking_test

import (
	"testing"
	"time"

	"sportsbook/internal/domain/booking"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookingRequest(t *testing.T) {
	rules := testRules()

	t.Run("normalizes every field", func(t *testing.T) {
		req, err := booking.NewBookingRequest(rules, " t1", "2025-06-20", "14:00", " member01 ")
		require.NoError(t, err)

		assert.Equal(t, "T1", req.RoomID())
		assert.Equal(t, booking.NewDate(2025, time.June, 20), req.Date())
		assert.Equal(t, booking.MustTimeOfDay(14, 0), req.Time())
		assert.Equal(t, "member01", req.RequesterID())
	})

	t.Run("equal inputs build equal values", func(t *testing.T) {
		a, err := booking.NewBookingRequest(rules, "B1", "2025-07-01", "06:00", "alice")
		require.NoError(t, err)
		b, err := booking.NewBookingRequest(rules, "b1", "2025-07-01", "06:00", "alice")
		require.NoError(t, err)

		if diff := cmp.Diff(a, b, cmp.AllowUnexported(booking.BookingRequest{}, booking.Date{}, booking.TimeOfDay{})); diff != "" {
			t.Errorf("BookingRequest mismatch (-a +b):\n%s", diff)
		}
	})

	cases := []struct {
		name      string
		room      string
		date      string
		timeOfDay string
		requester string
		errIs     error
	}{
		{name: "room missing", room: "", date: "2025-06-20", timeOfDay: "10:00", requester: "alice", errIs: booking.ErrEmptyField},
		{name: "date today", room: "T1", date: "2025-06-15", timeOfDay: "10:00", requester: "alice", errIs: booking.ErrNotInFuture},
		{name: "time too late", room: "T1", date: "2025-06-20", timeOfDay: "23:00", requester: "alice", errIs: booking.ErrOutsideOperatingHours},
		{name: "requester too short", room: "T1", date: "2025-06-20", timeOfDay: "10:00", requester: "al", errIs: booking.ErrLengthOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := booking.NewBookingRequest(rules, tc.room, tc.date, tc.timeOfDay, tc.requester)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestNewSearchRequest(t *testing.T) {
	rules := testRules()

	req, err := booking.NewSearchRequest(rules, booking.RoomTypeArcheryRange, "2025-06-16", "22:00")
	require.NoError(t, err)
	assert.Equal(t, booking.RoomTypeArcheryRange, req.RoomType())
	assert.Equal(t, "2025-06-16", req.Date().String())
	assert.Equal(t, "22:00", req.Time().String())

	_, err = booking.NewSearchRequest(rules, booking.RoomType("Swimming Pool"), "2025-06-16", "10:00")
	assert.ErrorIs(t, err, booking.ErrFormat)
}

func TestNewCancellationRequest(t *testing.T) {
	req, err := booking.NewCancellationRequest("42", "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(42), req.BookingID())
	assert.Equal(t, "alice", req.OwnerID())

	_, err = booking.NewCancellationRequest("4x2", "alice")
	assert.ErrorIs(t, err, booking.ErrNotNumeric)

	_, err = booking.NewCancellationRequest("42", "")
	assert.ErrorIs(t, err, booking.ErrEmptyField)
}

func TestRoomTypeFromChoice(t *testing.T) {
	cases := []struct {
		choice string
		want   booking.RoomType
		ok     bool
	}{
		{choice: "1", want: booking.RoomTypeTennisCourt, ok: true},
		{choice: "2", want: booking.RoomTypeBadmintonCourt, ok: true},
		{choice: "3", want: booking.RoomTypeArcheryRange, ok: true},
		{choice: " 4 ", want: booking.RoomTypeMultiPurposeField, ok: true},
		{choice: "badminton court", want: booking.RoomTypeBadmintonCourt, ok: true},
		{choice: "0"},
		{choice: "5"},
		{choice: ""},
		{choice: "squash"},
	}
	for _, tc := range cases {
		t.Run(tc.choice, func(t *testing.T) {
			got, ok := booking.RoomTypeFromChoice(tc.choice)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
