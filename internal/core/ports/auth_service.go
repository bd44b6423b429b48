package ports

import (
	"context"
	"time"

	"github.com/venuelink/venue-services/internal/core/domain"
)

// RegisterInput carries the data needed to create an account.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Phone    *string
	// Role is forced to customer on the public register endpoint; the
	// admin provisioning endpoint passes an explicit role.
	Role domain.Role
}

// UpdateProfileInput carries optional profile mutations; nil fields are
// left unchanged.
type UpdateProfileInput struct {
	FullName *string
	Phone    *string
}

// TokenPair is the credential set returned at login and refresh time.
type TokenPair struct {
	AccessToken     string
	RefreshToken    string
	AccessExpiresAt time.Time
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*TokenPair, *domain.User, error)
	// Refresh exchanges a refresh-typed token for a fresh pair; the
	// principal must still exist and be active.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*domain.User, error)
	SetActive(ctx context.Context, userID string, active bool) (*domain.User, error)
}
