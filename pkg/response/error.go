package response

import (
	"Skyline/pkg/log"
	"Skyline/pkg/utils"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BizError is an error whose Code is the HTTP status written to the client.
type BizError struct {
	Code int
	Msg  string
	// Marker is an optional machine-readable tag, e.g. "service unavailable".
	Marker string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

func NewMarkedError(code int, msg, marker string) *BizError {
	return &BizError{
		Code:   code,
		Msg:    msg,
		Marker: marker,
	}
}

func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.L.Error("panic recovered", zap.String("trace", utils.PanicTrace(r)))
				c.AbortWithStatusJSON(http.StatusInternalServerError, Response{
					Code: http.StatusInternalServerError,
					Msg:  "internal server error",
				})
			}
		}()

		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			err := c.Errors.Last().Err

			var be *BizError
			if errors.As(err, &be) {
				FailWith(c, be)
			} else {
				Fail(c, http.StatusInternalServerError, err.Error())
			}
			c.Abort()
		}
	}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
		Data: nil,
	})
}
