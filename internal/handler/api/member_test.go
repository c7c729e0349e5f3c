//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"sportsbook/internal/domain/member"
	"sportsbook/internal/handler/api"
	reqdto "sportsbook/internal/handler/dto/request"
	resdto "sportsbook/internal/handler/dto/response"
	"sportsbook/internal/handler/middleware"
	"sportsbook/internal/usecase/commands"
	"sportsbook/internal/usecase/queries"
	"sportsbook/tests/common/httptest"
	commandsmock "sportsbook/tests/mock/commands"
	queriesmock "sportsbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MemberHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockGateway *commandsmock.MockMemberGateway
	mockQueries *queriesmock.MockMemberQueries
	handler     *api.MemberHandler
}

func (s *MemberHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler(discardLogger()))

	s.mockCtrl = gomock.NewController(s.T())
	s.mockGateway = commandsmock.NewMockMemberGateway(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockMemberQueries(s.mockCtrl)
	s.handler = api.NewMemberHandler(commands.NewMemberCommands(s.mockGateway, discardLogger()), s.mockQueries)

	s.router.GET("/members", s.handler.List)
	s.router.POST("/members", s.handler.Create)
	s.router.PATCH("/members/:id/email", s.handler.UpdateEmail)
	s.router.PATCH("/members/:id/password", s.handler.UpdatePassword)
	s.router.DELETE("/members/:id", s.handler.Delete)
}

func (s *MemberHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMemberHandlerSuite(t *testing.T) {
	suite.Run(t, new(MemberHandlerTestSuite))
}

func (s *MemberHandlerTestSuite) TestCreate() {
	reqBody := reqdto.CreateMemberRequest{
		ID: "alice", Email: "alice@example.com", Password: "secret1", PasswordConfirmation: "secret1",
	}

	s.Run("success: 201", func() {
		s.mockGateway.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, reg member.Registration) bool {
				s.Equal("alice", reg.ID().Value())
				s.Equal("alice@example.com", reg.Email().Value())
				return true
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/members", reqBody)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 409 when the id is taken", func() {
		s.mockGateway.EXPECT().Create(gomock.Any(), gomock.Any()).Return(false)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/members", reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, commands.MsgMemberCreateRejected)
	})

	s.Run("error: 422 on mismatched confirmation", func() {
		body := httptest.BodyMap(s.T(), reqBody, httptest.Field("password_confirmation", "secret2"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/members", body)

		resp := httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, commands.MsgMemberCreateAbandoned)
		s.Equal([]string{member.ErrPasswordMismatch.Error()}, resp.Detail)
	})

	s.Run("error: 422 on invalid email", func() {
		body := httptest.BodyMap(s.T(), reqBody, httptest.Field("email", "alice"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/members", body)

		resp := httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, commands.MsgMemberCreateAbandoned)
		s.Equal([]string{member.ErrInvalidEmail.Error()}, resp.Detail)
	})
}

func (s *MemberHandlerTestSuite) TestUpdate() {
	s.Run("success: email", func() {
		s.mockGateway.EXPECT().UpdateEmail(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, change member.EmailChange) bool {
				s.Equal("alice", change.ID().Value())
				s.Equal("alice@example.org", change.Email().Value())
				return true
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/members/alice/email",
			reqdto.UpdateEmailRequest{Email: "alice@example.org"})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 409 for an unknown member", func() {
		s.mockGateway.EXPECT().UpdatePassword(gomock.Any(), gomock.Any()).Return(false)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/members/ghost/password",
			reqdto.UpdatePasswordRequest{Password: "secret9", PasswordConfirmation: "secret9"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, commands.MsgMemberPasswordRejected)
	})

	s.Run("error: 422 on a weak password", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/members/alice/password",
			reqdto.UpdatePasswordRequest{Password: "abc", PasswordConfirmation: "abc"})

		resp := httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, commands.MsgMemberPasswordAbandoned)
		s.Equal([]string{member.ErrPasswordTooWeak.Error()}, resp.Detail)
	})
}

func (s *MemberHandlerTestSuite) TestDelete() {
	s.Run("success: confirmed", func() {
		s.mockGateway.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(true)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/members/alice?confirm=DELETE", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 422 without the confirmation word", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/members/alice?confirm=delete", nil)

		resp := httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, commands.MsgMemberDeleteAbandoned)
		s.Empty(resp.Detail)
	})
}

func (s *MemberHandlerTestSuite) TestList() {
	since := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

	s.Run("success", func() {
		s.mockQueries.EXPECT().ListMembers(gomock.Any()).Return([]*queries.MemberView{
			{ID: "alice", Email: "alice@example.com", PaymentDue: "10.00", MemberSince: since},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/members", nil)

		var body []*resdto.MemberResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]*resdto.MemberResponse{
			{ID: "alice", Email: "alice@example.com", PaymentDue: "10.00", MemberSince: since.Unix()},
		}, body)
	})

	s.Run("error: 500", func() {
		s.mockQueries.EXPECT().ListMembers(gomock.Any()).Return(nil, queries.ErrMembersUnavailable)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/members", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to list members")
	})
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		ping       error
		wantStatus int
	}{
		{name: "healthy", wantStatus: http.StatusOK},
		{name: "database down", ping: errors.New("connection refused"), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			h := api.NewHealthHandler(pingerFunc(func(ctx context.Context) error {
				if _, ok := ctx.Deadline(); !ok {
					t.Error("ping without deadline")
				}
				return tt.ping
			}))
			router.GET("/health", h.Check)

			rec := httptest.PerformRequest(t, router, http.MethodGet, "/health", nil)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
