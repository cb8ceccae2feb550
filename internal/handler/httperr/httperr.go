package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func New(status int, message string) Response {
	resp := Response{Status: status}
	resp.Error.Message = message
	return resp
}

func (r Response) WithDetail(detail any) Response {
	r.Detail = detail
	return r
}

// Abort attaches the response as a public gin error; the ErrorHandler
// middleware renders it once the handler chain unwinds.
func Abort(c *gin.Context, resp Response) {
	_ = c.Error(gin.Error{
		Err:  errFromResponse(resp),
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.Abort()
}

type responseError struct {
	message string
}

func (e *responseError) Error() string {
	return e.message
}

func errFromResponse(resp Response) error {
	return &responseError{message: resp.Error.Message}
}
