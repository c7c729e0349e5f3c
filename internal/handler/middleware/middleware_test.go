//go:build unit

package middleware_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"sportsbook/internal/handler/httperr"
	"sportsbook/internal/handler/middleware"
	"sportsbook/internal/pkg/config"
	"sportsbook/internal/pkg/logging"
	"sportsbook/internal/usecase/commands"
	"sportsbook/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := gin.New()
	e.Use(middleware.CustomRecovery(logger))
	e.Use(middleware.NewCORSMiddleware(config.NewTestConfig().CORS, logger))
	e.Use(middleware.LoggingMiddleware(logging.NewLoggerTo(config.LogConfig{Level: "error"}, io.Discard)))
	e.Use(middleware.ErrorHandler(logger))
	return e
}

func TestMiddleware(t *testing.T) {
	t.Run("panic becomes an unexpected failure", func(t *testing.T) {
		e := newEngine(t)
		e.GET("/boom", func(*gin.Context) { panic("kaboom") })

		rec := httptest.PerformRequest(t, e, http.MethodGet, "/boom", nil)

		resp := httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
		assert.Equal(t, string(commands.FailureUnexpected), resp.Error.Kind)
	})

	t.Run("public error written by a handler passes through", func(t *testing.T) {
		e := newEngine(t)
		e.GET("/conflict", func(c *gin.Context) {
			httperr.Abort(c, errors.New("taken"),
				httperr.New(http.StatusConflict, string(commands.FailureRejected), "Booking operation failed", nil))
		})

		rec := httptest.PerformRequest(t, e, http.MethodGet, "/conflict", nil)

		resp := httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Booking operation failed")
		assert.Equal(t, string(commands.FailureRejected), resp.Error.Kind)
	})

	t.Run("private error without a response is a 500", func(t *testing.T) {
		e := newEngine(t)
		e.GET("/private", func(c *gin.Context) { _ = c.Error(errors.New("lost")) })

		rec := httptest.PerformRequest(t, e, http.MethodGet, "/private", nil)

		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("request id is generated and echoed", func(t *testing.T) {
		e := newEngine(t)
		var seen string
		e.GET("/ok", func(c *gin.Context) {
			seen = middleware.GetRequestID(c)
			c.Status(http.StatusNoContent)
		})

		rec := httptest.PerformRequest(t, e, http.MethodGet, "/ok", nil)

		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))
	})

	t.Run("incoming request id is reused", func(t *testing.T) {
		e := newEngine(t)
		e.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		rec := httptest.PerformRequestWithHeaders(t, e, http.MethodGet, "/ok", nil,
			map[string]string{"X-Request-ID": "front-desk-42"})

		assert.Equal(t, "front-desk-42", rec.Header().Get("X-Request-ID"))
	})
}
