package api

import (
	"net/http"

	"sportsbook/internal/handler/httperr"
	"sportsbook/internal/pkg/errs"
	"sportsbook/internal/usecase/commands"
	"sportsbook/internal/usecase/input"

	"github.com/gin-gonic/gin"
)

var errOperationFailed = errs.New("operation failed")

// abortOnFailure writes the error response for a failed outcome and reports
// whether it did. Abandoned requests carry the validation messages the form
// produced as detail.
func abortOnFailure(c *gin.Context, out commands.Outcome, form *input.FormPrompter, rejectedStatus int) bool {
	if out.Succeeded {
		return false
	}

	status := http.StatusInternalServerError
	var detail []string
	switch out.Failure {
	case commands.FailureAbandoned:
		status = http.StatusUnprocessableEntity
		detail = form.Rejections()
	case commands.FailureRejected:
		status = rejectedStatus
	}

	httperr.Abort(c, errs.Mark(errs.New(out.Detail), errOperationFailed),
		httperr.New(status, string(out.Failure), out.Detail, detail))
	return true
}
