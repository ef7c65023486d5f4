package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRouteGroup(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/flights", "flights"},
		{"/api/flights/:id/like", "flights"},
		{"/api/users/manual-flight/:id", "users"},
		{"/api/popular-map", "popular-map"},
		{"/metrics", "metrics"},
		{"/", "root"},
		{"unknown", "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, routeGroup(tt.path))
		})
	}
}

func TestPrometheusMiddleware_CountsByGroup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(PrometheusMiddleware())
	r.GET("/api/flights/:id/reviews", func(c *gin.Context) { c.Status(http.StatusOK) })

	counter := httpRequestsTotal.WithLabelValues("flights", http.MethodGet, "/api/flights/:id/reviews", "200")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"AA100", "UA200"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/flights/"+id+"/reviews", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}
