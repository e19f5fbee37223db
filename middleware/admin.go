package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireAdminKey protects admin routes with a shared key passed either as
// the ?key= query parameter or the X-Admin-Key header. Comparison is
// constant time so the key cannot be probed byte by byte.
func RequireAdminKey(adminKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if adminKey == "" {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "Panel de administración no configurado")
			}

			provided := c.QueryParam("key")
			if provided == "" {
				provided = c.Request().Header.Get("X-Admin-Key")
			}

			if subtle.ConstantTimeCompare([]byte(provided), []byte(adminKey)) != 1 {
				return echo.NewHTTPError(http.StatusForbidden, "Acceso denegado")
			}
			return next(c)
		}
	}
}
