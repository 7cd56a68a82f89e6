package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sofibear01/MantenimientoProducto/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func rateLimitedRouter(limit int, window time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RateLimiter(limit, window))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func ping(r *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiterRejectsAboveLimit(t *testing.T) {
	r := rateLimitedRouter(2, time.Minute)

	assert.Equal(t, http.StatusOK, ping(r).Code)
	assert.Equal(t, http.StatusOK, ping(r).Code)

	w := ping(r)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestRateLimiterResetsAfterWindow(t *testing.T) {
	r := rateLimitedRouter(1, 20*time.Millisecond)

	assert.Equal(t, http.StatusOK, ping(r).Code)
	assert.Equal(t, http.StatusTooManyRequests, ping(r).Code)

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, http.StatusOK, ping(r).Code)
}
