package ports

import (
	"context"

	"github.com/venuelink/venue-services/internal/core/domain"
)

// AuthRepository defines the persistence operations the auth core consumes.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Update persists profile mutations and last-login timestamping.
	Update(ctx context.Context, user *domain.User) error
}
