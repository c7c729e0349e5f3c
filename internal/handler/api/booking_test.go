//go:build unit

package api_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"sportsbook/internal/domain/booking"
	"sportsbook/internal/handler/api"
	reqdto "sportsbook/internal/handler/dto/request"
	resdto "sportsbook/internal/handler/dto/response"
	"sportsbook/internal/handler/middleware"
	"sportsbook/internal/pkg/clock"
	"sportsbook/internal/usecase/commands"
	"sportsbook/internal/usecase/queries"
	"sportsbook/tests/common/httptest"
	commandsmock "sportsbook/tests/mock/commands"
	queriesmock "sportsbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRules() booking.Rules {
	now := time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)
	return booking.NewRules(clock.NewMockClock(now), booking.DefaultOperatingHours())
}

// BookingHandlerTestSuite drives the real orchestrator and collector; only
// the gateway and read side are mocked.
type BookingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockGateway *commandsmock.MockReservationGateway
	mockQueries *queriesmock.MockBookingQueries
	handler     *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler(discardLogger()))

	s.mockCtrl = gomock.NewController(s.T())
	s.mockGateway = commandsmock.NewMockReservationGateway(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	cmds := commands.NewBookingCommands(s.mockGateway, discardLogger())
	s.handler = api.NewBookingHandler(cmds, s.mockQueries, testRules())

	s.router.POST("/bookings", s.handler.Create)
	s.router.GET("/bookings", s.handler.List)
	s.router.DELETE("/bookings/:id", s.handler.Cancel)
	s.router.GET("/rooms/availability", s.handler.SearchRooms)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	reqBody := reqdto.CreateBookingRequest{RoomID: "t1", Date: "2025-06-20", Time: "14:00", MemberID: "alice"}

	s.Run("success: 201 and the gateway sees the normalized request", func() {
		s.mockGateway.EXPECT().Book(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req booking.BookingRequest) bool {
				s.Equal("T1", req.RoomID())
				s.Equal("2025-06-20", req.Date().String())
				s.Equal("14:00", req.Time().String())
				s.Equal("alice", req.RequesterID())
				return true
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.OperationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.True(body.Succeeded)
		s.Empty(body.Detail)
	})

	s.Run("error: 409 when the procedure rejects", func() {
		s.mockGateway.EXPECT().Book(gomock.Any(), gomock.Any()).Return(false)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		resp := httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, commands.MsgBookingRejected)
		s.Equal(string(commands.FailureRejected), resp.Error.Kind)
		s.Empty(resp.Detail)
	})

	validation := []struct {
		name       string
		mutate     func(map[string]any)
		wantDetail string
	}{
		{name: "past date", mutate: httptest.Field("date", "2025-06-10"), wantDetail: "Booking date must be in the future"},
		{name: "today", mutate: httptest.Field("date", "2025-06-15"), wantDetail: "Booking date must be in the future"},
		{name: "bad date format", mutate: httptest.Field("date", "20-06-2025"), wantDetail: "Invalid date format. Please use YYYY-MM-DD"},
		{name: "before opening", mutate: httptest.Field("time", "05:59"), wantDetail: "Booking time must be between 06:00 and 22:00"},
		{name: "missing room", mutate: httptest.Field("room_id", nil), wantDetail: "Room ID cannot be empty"},
		{name: "short member id", mutate: httptest.Field("member_id", "al"), wantDetail: "Member ID must be at least 3 characters"},
	}

	for _, tc := range validation {
		s.Run("error: 422 on "+tc.name, func() {
			body := httptest.BodyMap(s.T(), reqBody, tc.mutate)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

			resp := httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, commands.MsgBookingAbandoned)
			s.Equal(string(commands.FailureAbandoned), resp.Error.Kind)
			s.Equal([]string{tc.wantDetail}, resp.Detail)
		})
	}

	s.Run("error: 400 on malformed JSON", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, "not an object")
		resp := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		s.Empty(resp.Error.Kind)
	})

	s.Run("error: 500 when the gateway panics", func() {
		s.mockGateway.EXPECT().Book(gomock.Any(), gomock.Any()).Do(func(context.Context, booking.BookingRequest) {
			panic(errors.New("connection reset"))
		})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		resp := httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "connection reset")
		s.Equal(string(commands.FailureUnexpected), resp.Error.Kind)
	})
}

// ================================================================================
// TestSearchRooms
// ================================================================================

func (s *BookingHandlerTestSuite) TestSearchRooms() {
	s.Run("success: rooms are listed", func() {
		s.mockGateway.EXPECT().Search(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req booking.SearchRequest) []booking.Room {
				s.Equal(booking.RoomTypeBadmintonCourt, req.RoomType())
				return []booking.Room{{ID: "B1", Type: booking.RoomTypeBadmintonCourt}}
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/availability?room_type=2&date=2025-06-20&time=10:00", nil)

		var body resdto.RoomSearchResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]*resdto.RoomResponse{{RoomID: "B1", RoomType: "Badminton Court"}}, body.Rooms)
	})

	s.Run("error: 404 when nothing is free", func() {
		s.mockGateway.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]booking.Room{})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/availability?room_type=Tennis%20Court&date=2025-06-20&time=10:00", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, commands.MsgSearchEmpty)
	})

	s.Run("error: 422 on unknown room type", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/availability?room_type=9&date=2025-06-20&time=10:00", nil)

		resp := httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, commands.MsgSearchAbandoned)
		s.Equal([]string{"invalid choice, please select 1-4"}, resp.Detail)
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancel() {
	body := reqdto.CancelBookingRequest{MemberID: "alice"}

	s.Run("success: owner is forwarded", func() {
		s.mockGateway.EXPECT().Cancel(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req booking.CancellationRequest) bool {
				s.Equal(int64(42), req.BookingID())
				s.Equal("alice", req.OwnerID())
				return true
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/42", body)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 409 when the procedure refuses", func() {
		s.mockGateway.EXPECT().Cancel(gomock.Any(), gomock.Any()).Return(false)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/42", body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, commands.MsgCancellationRejected)
	})

	s.Run("error: 422 on non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/abc", body)

		resp := httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, commands.MsgCancellationAbandoned)
		s.Equal([]string{"Booking ID must be a number"}, resp.Detail)
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	at := time.Date(2025, time.June, 20, 14, 0, 0, 0, time.UTC)
	views := []*queries.BookingView{
		{BookingID: 1, RoomID: "T1", RoomType: "Tennis Court", BookedFor: at, MemberID: "alice", PaymentStatus: "Unpaid"},
	}

	s.Run("success: all bookings", func() {
		s.mockQueries.EXPECT().ListBookings(gomock.Any()).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil)

		var body []*resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]*resdto.BookingResponse{
			{BookingID: 1, RoomID: "T1", RoomType: "Tennis Court", BookedFor: "2025-06-20 14:00", MemberID: "alice", PaymentStatus: "Unpaid"},
		}, body)
	})

	s.Run("success: filtered by member", func() {
		s.mockQueries.EXPECT().ListMemberBookings(gomock.Any(), "alice").Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?member_id=alice", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 500 when the read side fails", func() {
		s.mockQueries.EXPECT().ListBookings(gomock.Any()).Return(nil, queries.ErrBookingsUnavailable)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to list bookings")
	})
}
