package middleware

import (
	"Skyline/pkg/context"
	"Skyline/pkg/jwt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func newSessionRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Session(testSecret))
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": context.GetUserID(c)})
	})
	r.GET("/private", RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func doWithCookie(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSession(t *testing.T) {
	r := newSessionRouter()

	token, err := jwt.GenerateToken(testSecret, 42, jwt.TypeSession, time.Hour)
	require.NoError(t, err)
	expired, err := jwt.GenerateToken(testSecret, 42, jwt.TypeSession, -time.Minute)
	require.NoError(t, err)
	forged, err := jwt.GenerateToken([]byte("other"), 42, jwt.TypeSession, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantUID string
		private int
	}{
		{"valid", token, `{"user_id":42}`, http.StatusNoContent},
		{"anonymous", "", `{"user_id":0}`, http.StatusUnauthorized},
		{"expired", expired, `{"user_id":0}`, http.StatusUnauthorized},
		{"wrong key", forged, `{"user_id":0}`, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doWithCookie(r, "/whoami", tt.token)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.wantUID, w.Body.String())

			w = doWithCookie(r, "/private", tt.token)
			assert.Equal(t, tt.private, w.Code)
		})
	}
}
