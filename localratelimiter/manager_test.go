package localratelimiter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitedRouter(rps float64, burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(NewRateLimiter(rps, burst).RateLimiterMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return router
}

func get(router *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.1:51234"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAllowsBurstThenRejects(t *testing.T) {
	router := newLimitedRouter(1, 3)

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, get(router).Code, "request %d within burst", i)
	}

	w := get(router)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Rate limit exceeded")
}

func TestSeparateClientsGetSeparateBuckets(t *testing.T) {
	router := newLimitedRouter(1, 1)

	first := httptest.NewRequest(http.MethodGet, "/ping", nil)
	first.RemoteAddr = "10.0.0.1:1000"
	w1 := httptest.NewRecorder()
	router.ServeHTTP(w1, first)
	require.Equal(t, http.StatusOK, w1.Code)

	// Same client is now drained.
	again := httptest.NewRequest(http.MethodGet, "/ping", nil)
	again.RemoteAddr = "10.0.0.1:1001"
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, again)
	require.Equal(t, http.StatusTooManyRequests, w2.Code)

	// A different client is not.
	other := httptest.NewRequest(http.MethodGet, "/ping", nil)
	other.RemoteAddr = "10.0.0.2:1000"
	w3 := httptest.NewRecorder()
	router.ServeHTTP(w3, other)
	assert.Equal(t, http.StatusOK, w3.Code)
}
