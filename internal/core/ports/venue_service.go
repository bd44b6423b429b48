package ports

import (
	"context"

	"github.com/venuelink/venue-services/internal/core/domain"
)

// VenueInput carries the writable venue fields for create and update.
type VenueInput struct {
	Name     string
	Slug     string
	Address  string
	City     string
	Timezone string
	Capacity int
}

type VenueService interface {
	CreateVenue(ctx context.Context, input VenueInput) (*domain.Venue, error)
	GetVenue(ctx context.Context, idOrSlug string) (*domain.Venue, error)
	ListVenues(ctx context.Context, filter VenueFilter) ([]*domain.Venue, error)
	UpdateVenue(ctx context.Context, id string, input VenueInput) (*domain.Venue, error)
	DeleteVenue(ctx context.Context, id string) error
}
