package middleware

import (
	"Skyline/pkg/context"
	"Skyline/pkg/snowflake"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	RequestIDHeader  = "X-Request-ID"
	slowRequestAfter = time.Second
)

// GinZap tags each request with an id and logs it once it completes.
func GinZap(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = snowflake.GenRequestID()
		}
		c.Set(context.CtxRequestID, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		latency := time.Since(start)
		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
		}
		if uid := context.GetUserID(c); uid != 0 {
			fields = append(fields, zap.Uint("user_id", uid))
		}

		switch {
		case len(c.Errors) > 0:
			logger.Error(c.Errors.String(), fields...)
		case latency > slowRequestAfter:
			logger.Warn("slow request", fields...)
		default:
			logger.Info("request", fields...)
		}
	}
}
