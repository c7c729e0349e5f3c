package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"sportsbook/internal/handler/httperr"
	"sportsbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the last public error if the handler left the response
// empty. Private errors are logged and answered with a bare 500.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		if len(c.Errors) > 0 {
			logger.ErrorContext(c.Request.Context(), "unhandled handler error",
				slog.String("request_id", GetRequestID(c)),
				slog.String("errors", c.Errors.String()))
		}
		c.JSON(http.StatusInternalServerError, internalError())
	}
}

// CustomRecovery turns a handler panic into the same body an unexpected
// command failure produces.
func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.ErrorContext(c.Request.Context(), "recovered from panic",
					slog.String("error", fmt.Sprint(r)),
					slog.String("path", c.Request.URL.Path),
					slog.String("request_id", GetRequestID(c)))

				c.AbortWithStatusJSON(http.StatusInternalServerError, internalError())
			}
		}()
		c.Next()
	}
}

func internalError() httperr.Response {
	return httperr.New(http.StatusInternalServerError, string(commands.FailureUnexpected), "Internal server error", nil)
}
