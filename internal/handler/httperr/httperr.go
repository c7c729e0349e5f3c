package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the body of every non-2xx answer. Kind mirrors the failure
// class of the operation (ABANDONED, REJECTED, UNEXPECTED) when there is one;
// Detail lists the validation messages that stopped an abandoned request.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Kind    string `json:"kind,omitempty"`
	} `json:"error"`
	Detail []string `json:"detail,omitempty"`
}

func New(status int, kind, msg string, detail []string) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	resp.Error.Kind = kind
	return resp
}

// AbortWithError keeps err on the gin context so the logging middleware can
// report it, and writes msg to the client.
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	Abort(c, err, New(status, "", msg, nil))
}

func Abort(c *gin.Context, err error, resp Response) {
	if err == nil {
		panic("httperr.Abort: err cannot be nil")
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}
