//go:build e2e

package booking_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"sportsbook/cmd/bootstrap"
	"sportsbook/internal/domain/booking"
	reqdto "sportsbook/internal/handler/dto/request"
	resdto "sportsbook/internal/handler/dto/response"
	"sportsbook/internal/infra/db"
	"sportsbook/internal/infra/gateway"
	"sportsbook/internal/usecase/commands"
	"sportsbook/tests/common/dbtest"
	"sportsbook/tests/common/httptest"
	"sportsbook/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type BookingTestSuite struct {
	e2e.SharedSuite
	rules booking.Rules
	date  string
}

func TestBookingSuite(t *testing.T) {
	suite.Run(t, new(BookingTestSuite))
}

func (s *BookingTestSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()

	rules, err := bootstrap.NewRules(s.Config)
	s.Require().NoError(err)
	s.rules = rules
	s.date = time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02")
}

func (s *BookingTestSuite) bookingRequest(roomID, at, memberID string) booking.BookingRequest {
	req, err := booking.NewBookingRequest(s.rules, roomID, s.date, at, memberID)
	s.Require().NoError(err)
	return req
}

// ================================================================================
// HTTP flow
// ================================================================================

func (s *BookingTestSuite) TestBookSearchCancelOverHTTP() {
	s.Run("full booking lifecycle", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/members", reqdto.CreateMemberRequest{
			ID: "alice", Email: "alice@example.com", Password: "secret1", PasswordConfirmation: "secret1",
		})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

		createBody := reqdto.CreateBookingRequest{RoomID: "t1", Date: s.date, Time: "14:00", MemberID: "alice"}
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", createBody)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
		s.Equal("10.00", dbtest.PaymentDue(s.T(), s.DB, "alice"))

		// same slot again
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", createBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, commands.MsgBookingRejected)
		s.Equal(1, dbtest.CountBookings(s.T(), s.DB, "T1"))

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("/api/rooms/availability?room_type=1&date=%s&time=14:00", s.date), nil)
		var rooms resdto.RoomSearchResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &rooms)
		s.Equal([]*resdto.RoomResponse{{RoomID: "T2", RoomType: "Tennis Court"}}, rooms.Rooms)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings?member_id=alice", nil)
		var bookings []*resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &bookings)
		s.Require().Len(bookings, 1)
		s.Equal(s.date+" 14:00", bookings[0].BookedFor)
		bookingPath := fmt.Sprintf("/api/bookings/%d", bookings[0].BookingID)

		// someone else's booking
		dbtest.CreateTestMember(s.T(), s.DB, "mallory", "mallory@example.com")
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, bookingPath, reqdto.CancelBookingRequest{MemberID: "mallory"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, commands.MsgCancellationRejected)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, bookingPath, reqdto.CancelBookingRequest{MemberID: "alice"})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Equal(0, dbtest.CountBookings(s.T(), s.DB, "T1"))
		s.Equal("0.00", dbtest.PaymentDue(s.T(), s.DB, "alice"))
	})

	s.Run("validation never reaches the database", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings",
			reqdto.CreateBookingRequest{RoomID: "T1", Date: "2020-01-01", Time: "14:00", MemberID: "alice"})

		resp := httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, commands.MsgBookingAbandoned)
		s.Equal([]string{"Booking date must be in the future"}, resp.Detail)
		s.Equal(0, dbtest.CountBookings(s.T(), s.DB, "T1"))
	})

	s.Run("deleting a member removes their bookings", func() {
		dbtest.CreateTestMember(s.T(), s.DB, "bob", "bob@example.com")
		s.Require().True(s.Components.Gateway.Book(context.Background(), s.bookingRequest("B1", "09:00", "bob")))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/members/bob?confirm=DELETE", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Equal(0, dbtest.CountBookings(s.T(), s.DB, "B1"))
	})
}

// ================================================================================
// Gateway against the real procedures
// ================================================================================

func (s *BookingTestSuite) TestGateway() {
	ctx := context.Background()

	s.Run("unknown member is a negative result and leaves no row", func() {
		s.False(s.Components.Gateway.Book(ctx, s.bookingRequest("T1", "10:00", "ghost")))
		s.Equal(0, dbtest.CountBookings(s.T(), s.DB, "T1"))
	})

	s.Run("unknown room", func() {
		dbtest.CreateTestMember(s.T(), s.DB, "alice", "alice@example.com")
		s.False(s.Components.Gateway.Book(ctx, s.bookingRequest("ZZ9", "10:00", "alice")))
	})

	s.Run("cancelling a missing booking", func() {
		dbtest.CreateTestMember(s.T(), s.DB, "alice", "alice@example.com")
		req, err := booking.NewCancellationRequest("999", "alice")
		s.Require().NoError(err)
		s.False(s.Components.Gateway.Cancel(ctx, req))
	})

	s.Run("search leaves the session usable", func() {
		dbtest.CreateTestMember(s.T(), s.DB, "alice", "alice@example.com")
		search, err := booking.NewSearchRequest(s.rules, booking.RoomTypeMultiPurposeField, s.date, "08:00")
		s.Require().NoError(err)

		s.Len(s.Components.Gateway.Search(ctx, search), 2)
		s.True(s.Components.Gateway.Book(ctx, s.bookingRequest("MPF1", "08:00", "alice")))
		s.Equal([]booking.Room{{ID: "MPF2", Type: booking.RoomTypeMultiPurposeField}},
			s.Components.Gateway.Search(ctx, search))
		s.NoError(s.Components.Session.Ping(ctx))
	})
}

// TestConcurrentDoubleBooking races separate connections for one slot. The
// procedure, not the caller, must guarantee that exactly one wins.
func (s *BookingTestSuite) TestConcurrentDoubleBooking() {
	s.Run("exactly one booking wins", func() {
		const contenders = 8
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))

		gateways := make([]*gateway.ReservationGateway, contenders)
		for i := range gateways {
			dbtest.CreateTestMember(s.T(), s.DB, fmt.Sprintf("racer%02d", i), fmt.Sprintf("racer%02d@example.com", i))
			session, err := db.Connect(ctx, s.Config.DB, logger)
			s.Require().NoError(err)
			s.T().Cleanup(func() { _ = session.Close(context.Background()) })
			gateways[i] = gateway.NewReservationGateway(session, gateway.NewStatusParser(""), logger)
		}

		var (
			wg    sync.WaitGroup
			start = make(chan struct{})
			wins  = make(chan int, contenders)
		)
		for i, g := range gateways {
			req := s.bookingRequest("AR", "18:00", fmt.Sprintf("racer%02d", i))
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				if g.Book(ctx, req) {
					wins <- i
				}
			}()
		}
		close(start)
		wg.Wait()
		close(wins)

		var winners []int
		for i := range wins {
			winners = append(winners, i)
		}
		require.Len(s.T(), winners, 1)
		s.Equal(1, dbtest.CountBookings(s.T(), s.DB, "AR"))
		s.Equal("120.00", dbtest.PaymentDue(s.T(), s.DB, fmt.Sprintf("racer%02d", winners[0])))
	})
}
