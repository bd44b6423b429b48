package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/venuelink/venue-services/internal/core/domain"
	"github.com/venuelink/venue-services/internal/core/ports"
)

type OpportunityService struct {
	repo   ports.OpportunityRepository
	venues ports.VenueRepository
	log    zerolog.Logger
}

func NewOpportunityService(repo ports.OpportunityRepository, venues ports.VenueRepository, log zerolog.Logger) *OpportunityService {
	return &OpportunityService{repo: repo, venues: venues, log: log}
}

func (s *OpportunityService) CreateOpportunity(ctx context.Context, input ports.OpportunityInput) (*domain.Opportunity, error) {
	if _, err := s.venues.FindByID(ctx, input.VenueID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	opp := &domain.Opportunity{
		ID:          uuid.NewString(),
		VenueID:     input.VenueID,
		Title:       input.Title,
		Description: input.Description,
		Status:      domain.OpportunityOpen,
		Deadline:    input.Deadline,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, opp); err != nil {
		return nil, err
	}
	s.log.Info().Str("opportunity_id", opp.ID).Str("venue_id", opp.VenueID).Msg("opportunity created")
	return opp, nil
}

func (s *OpportunityService) GetOpportunity(ctx context.Context, id string) (*domain.Opportunity, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *OpportunityService) ListOpportunities(ctx context.Context, venueID string, openOnly bool) ([]*domain.Opportunity, error) {
	return s.repo.List(ctx, venueID, openOnly)
}

func (s *OpportunityService) SetStatus(ctx context.Context, id string, status domain.OpportunityStatus) (*domain.Opportunity, error) {
	opp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	opp.Status = status
	opp.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, opp); err != nil {
		return nil, err
	}
	return opp, nil
}
