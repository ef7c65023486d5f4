package middleware

import (
	"Skyline/pkg/context"
	"Skyline/pkg/jwt"
	"Skyline/pkg/log"
	"Skyline/pkg/response"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionCookie holds the signed session token.
const SessionCookie = "sid"

// Session resolves the session cookie into the request's user id. Requests
// without a valid session pass through anonymously.
func Session(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}

		claims, err := jwt.ParseToken(secret, jwt.TypeSession, token)
		if err != nil {
			log.L.Debug("ignoring invalid session", zap.Error(err))
			c.Next()
			return
		}
		c.Set(context.CtxUserID, claims.UserID)

		c.Next()
	}
}

// RequireAuth rejects anonymous requests with 401.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if context.GetUserID(c) == 0 {
			response.Abort(c, http.StatusUnauthorized, "authentication required")
			return
		}
		c.Next()
	}
}
