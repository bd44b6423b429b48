package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/venuelink/venue-services/internal/core/domain"
	"github.com/venuelink/venue-services/internal/core/ports"
)

type VenueService struct {
	repo ports.VenueRepository
	log  zerolog.Logger
}

func NewVenueService(repo ports.VenueRepository, log zerolog.Logger) *VenueService {
	return &VenueService{repo: repo, log: log}
}

func (s *VenueService) CreateVenue(ctx context.Context, input ports.VenueInput) (*domain.Venue, error) {
	now := time.Now().UTC()
	venue := &domain.Venue{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Slug:      input.Slug,
		Address:   input.Address,
		City:      input.City,
		Timezone:  input.Timezone,
		Capacity:  input.Capacity,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, venue); err != nil {
		return nil, err
	}
	s.log.Info().Str("venue_id", venue.ID).Str("slug", venue.Slug).Msg("venue created")
	return venue, nil
}

// GetVenue accepts either a venue id or a slug; ids are UUIDs so the two
// namespaces cannot collide.
func (s *VenueService) GetVenue(ctx context.Context, idOrSlug string) (*domain.Venue, error) {
	venue, err := s.repo.FindByID(ctx, idOrSlug)
	if err == nil {
		return venue, nil
	}
	if err != domain.ErrVenueNotFound {
		return nil, err
	}
	return s.repo.FindBySlug(ctx, idOrSlug)
}

func (s *VenueService) ListVenues(ctx context.Context, filter ports.VenueFilter) ([]*domain.Venue, error) {
	return s.repo.List(ctx, filter)
}

func (s *VenueService) UpdateVenue(ctx context.Context, id string, input ports.VenueInput) (*domain.Venue, error) {
	venue, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	venue.Name = input.Name
	venue.Slug = input.Slug
	venue.Address = input.Address
	venue.City = input.City
	venue.Timezone = input.Timezone
	venue.Capacity = input.Capacity
	venue.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, venue); err != nil {
		return nil, err
	}
	return venue, nil
}

func (s *VenueService) DeleteVenue(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
