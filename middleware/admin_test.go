package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func callWithKey(t *testing.T, adminKey, providedKey, header string) error {
	t.Helper()

	e := echo.New()
	target := "/admin"
	if providedKey != "" {
		target += "?key=" + providedKey
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if header != "" {
		req.Header.Set("X-Admin-Key", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequireAdminKey(adminKey)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	return handler(c)
}

func TestRequireAdminKey(t *testing.T) {
	t.Run("accepts correct query key", func(t *testing.T) {
		err := callWithKey(t, "s3cret-key", "s3cret-key", "")
		assert.NoError(t, err)
	})

	t.Run("accepts correct header key", func(t *testing.T) {
		err := callWithKey(t, "s3cret-key", "", "s3cret-key")
		assert.NoError(t, err)
	})

	t.Run("rejects wrong key", func(t *testing.T) {
		err := callWithKey(t, "s3cret-key", "wrong", "")
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusForbidden, httpErr.Code)
	})

	t.Run("rejects missing key", func(t *testing.T) {
		err := callWithKey(t, "s3cret-key", "", "")
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusForbidden, httpErr.Code)
	})

	t.Run("unavailable when no key configured", func(t *testing.T) {
		err := callWithKey(t, "", "anything", "")
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusServiceUnavailable, httpErr.Code)
	})
}

func TestRateLimiterBlocksAfterLimit(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{Requests: 2, Window: time.Minute})
	e := echo.New()

	handler := rl.Middleware()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		assert.NoError(t, handler(e.NewContext(req, rec)))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	err := handler(e.NewContext(req, rec))
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusTooManyRequests, httpErr.Code)
}
