package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/venuelink/venue-services/internal/api/middleware"
	"github.com/venuelink/venue-services/internal/core/domain"
)

// ctxPrincipal extracts the authenticated user injected by the Authenticate
// middleware. Handlers mounted behind that middleware can rely on the
// principal being present; a missing principal means the route was wired
// without it, so fail closed with 401.
func ctxPrincipal(c echo.Context) (*domain.User, error) {
	user, ok := middleware.PrincipalFrom(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}
