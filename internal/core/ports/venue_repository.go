package ports

import (
	"context"

	"github.com/venuelink/venue-services/internal/core/domain"
)

// VenueFilter narrows venue listings.
type VenueFilter struct {
	City       string // empty = all cities
	ActiveOnly bool
}

// VenueRepository defines persistence operations for venues.
type VenueRepository interface {
	Create(ctx context.Context, v *domain.Venue) error
	FindByID(ctx context.Context, id string) (*domain.Venue, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Venue, error)
	List(ctx context.Context, filter VenueFilter) ([]*domain.Venue, error)
	Update(ctx context.Context, v *domain.Venue) error
	Delete(ctx context.Context, id string) error
}
