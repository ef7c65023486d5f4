package context

import (
	"Skyline/pkg/errs"
	"Skyline/pkg/log"
	"Skyline/pkg/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxUserID    = "user_id"
	CtxRequestID = "request_id"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}

			var be *response.BizError
			if errors.As(err, &be) {
				response.FailWith(c, be)
				return
			}

			status := errs.Status(err)
			if status == http.StatusInternalServerError {
				log.L.Error("request failed",
					zap.String("path", c.FullPath()),
					zap.Any("request_id", c.Value(CtxRequestID)),
					zap.Error(err))
				response.Fail(c, status, "internal server error")
				return
			}

			be = response.NewError(status, err.Error())
			if errors.Is(err, errs.ErrCollaboratorUnavailable) {
				be.Marker = errs.ErrCollaboratorUnavailable.Error()
			}
			response.FailWith(c, be)
		}
	}
}

// GetUserID returns the session user, or 0 when the request is anonymous.
func GetUserID(c *gin.Context) uint {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0
	}

	uid, ok := v.(uint)
	if !ok {
		return 0
	}

	return uid
}

// MustUserID returns the session user or errs.ErrAuthRequired.
func MustUserID(c *gin.Context) (uint, error) {
	uid := GetUserID(c)
	if uid == 0 {
		return 0, errs.ErrAuthRequired
	}
	return uid, nil
}
