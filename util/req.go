package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/navbryce/daily-sns/types"
)

type HTTPError struct {
	Status  int
	Message string
}

func (he *HTTPError) Error() string {
	return fmt.Sprintf("%v (statusCode=%v)", he.Message, he.Status)
}

var MalformedIdHTTPErr = HTTPError{
	Message: "id malformed",
	Status:  http.StatusBadRequest,
}

type HandlerOpts struct {
	// SuccessStatus overrides the default 200 response code.
	SuccessStatus int
}

type Handler func(c *gin.Context) (interface{}, *HTTPError)

// HandlerWrapper writes the handler's result in the standard envelope.
func HandlerWrapper(handler Handler, opts *HandlerOpts) gin.HandlerFunc {
	status := http.StatusOK
	if opts != nil && opts.SuccessStatus != 0 {
		status = opts.SuccessStatus
	}
	return func(c *gin.Context) {
		data, httpErr := handler(c)
		if httpErr != nil {
			HandleHTTPErrorRes(c, httpErr)
			return
		}
		c.JSON(status, &types.Envelope{
			Success: true,
			Data:    data,
		})
	}
}

// HandleHTTPErrorRes writes the error envelope and aborts the chain.
func HandleHTTPErrorRes(c *gin.Context, err *HTTPError) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(err.Status, &types.Envelope{
		Success: false,
		Message: err.Message,
	})
}

func BuildJSONBindHTTPErr(err error) *HTTPError {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("malformed request body: %v", err),
	}
}

// BuildServiceHTTPErr maps a data service failure onto a response.
func BuildServiceHTTPErr(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Message: err.Error(),
	}
}
