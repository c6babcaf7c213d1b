package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adminhub/console-api/internal/api/metrics"
	"github.com/adminhub/console-api/internal/core/domain"
)

// RequirePermission gates a route on the permission matrix. A missing or
// unknown role is denied rather than erroring, so an unauthenticated caller
// that slipped past Auth still gets 403.
func RequirePermission(action domain.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if !domain.IsAllowed(domain.Role(role), action) {
				metrics.PermissionDenialsTotal.WithLabelValues(string(action)).Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
