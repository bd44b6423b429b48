package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/venuelink/venue-services/internal/core/domain"
)

// RequireRole enforces hierarchical role-based access control: a principal
// passes when its role ranks at or above min. An unknown or missing role
// ranks 0, so a garbage role string never satisfies a non-customer gate.
func RequireRole(min domain.Role) echo.MiddlewareFunc {
	required := domain.RoleRank(min)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextKeyRole).(string)
			if domain.RoleRank(domain.Role(role)) < required {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "insufficient permissions"})
			}
			return next(c)
		}
	}
}
