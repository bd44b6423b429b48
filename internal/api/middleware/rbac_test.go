package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/venuelink/venue-services/internal/core/domain"
)

func roleContext(role string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set(ContextKeyRole, role)
	}
	return c, rec
}

func TestRequireRole_HigherRankSatisfiesLowerRequirement(t *testing.T) {
	c, rec := roleContext("venue_admin")

	called := false
	handler := RequireRole(domain.RoleVenueStaff)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_LowerRankDenied(t *testing.T) {
	c, rec := roleContext("customer")

	handler := RequireRole(domain.RoleVenueAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	_ = handler(c)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRole_ExactRankAllowed(t *testing.T) {
	c, rec := roleContext("venue_staff")

	handler := RequireRole(domain.RoleVenueStaff)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_UnknownRoleRanksZero(t *testing.T) {
	// An unrecognised role string must never grant elevated access.
	c, rec := roleContext("owner-of-everything")

	handler := RequireRole(domain.RoleVenueStaff)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	_ = handler(c)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRole_UnknownRoleSatisfiesCustomerGate(t *testing.T) {
	// Rank 0 still satisfies a rank-0 requirement.
	c, rec := roleContext("not-a-role")

	handler := RequireRole(domain.RoleCustomer)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_MissingRoleDenied(t *testing.T) {
	c, rec := roleContext("")

	handler := RequireRole(domain.RoleVenueStaff)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	_ = handler(c)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
