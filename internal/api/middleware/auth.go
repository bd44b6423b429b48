package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/venuelink/venue-services/internal/core/domain"
	"github.com/venuelink/venue-services/internal/core/ports"
	"github.com/venuelink/venue-services/internal/pkg/token"
)

// Context keys populated by the authentication middleware.
const (
	ContextKeyPrincipal = "principal"
	ContextKeyRole      = "role"
)

// All token and lookup failures collapse to this one message so the
// response body cannot be used to probe which sub-case occurred.
const msgUnauthenticated = "invalid or missing credentials"

// PrincipalFrom returns the authenticated principal stored by
// Authenticate, if any.
func PrincipalFrom(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(ContextKeyPrincipal).(*domain.User)
	return user, ok
}

// Authenticate validates the bearer access token, resolves the principal
// and injects it into the request context. The token must be access-typed;
// a refresh token is rejected here no matter how it leaked.
func Authenticate(codec *token.Codec, users ports.AuthRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, msgUnauthenticated)
			}

			user, err := resolve(c, codec, users, raw)
			if err != nil {
				return err
			}

			c.Set(ContextKeyPrincipal, user)
			c.Set(ContextKeyRole, string(user.Role))
			return next(c)
		}
	}
}

// AuthenticateOptional resolves the principal when a valid token is
// presented but degrades every failure to an anonymous request: absent,
// malformed, expired and revoked-principal tokens all fall through to the
// handler with no principal set.
func AuthenticateOptional(codec *token.Codec, users ports.AuthRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c)
			if !ok {
				return next(c)
			}

			user, err := resolve(c, codec, users, raw)
			if err != nil {
				return next(c)
			}

			c.Set(ContextKeyPrincipal, user)
			c.Set(ContextKeyRole, string(user.Role))
			return next(c)
		}
	}
}

// resolve runs the strict resolution chain: verify the access token, load
// the principal, and enforce the active flag. Token failures and a deleted
// principal map to 401; a disabled account maps to 403 since the identity
// itself was valid.
func resolve(c echo.Context, codec *token.Codec, users ports.AuthRepository, raw string) (*domain.User, error) {
	claims, err := codec.Verify(raw, token.TypeAccess)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, msgUnauthenticated)
	}

	user, err := users.FindByID(c.Request().Context(), claims.Subject)
	if err != nil {
		if err == domain.ErrUserNotFound {
			// Principal deleted after the token was issued.
			return nil, echo.NewHTTPError(http.StatusUnauthorized, msgUnauthenticated)
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, echo.NewHTTPError(http.StatusForbidden, "account disabled")
	}
	return user, nil
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
