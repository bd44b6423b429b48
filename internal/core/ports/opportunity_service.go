package ports

import (
	"context"
	"time"

	"github.com/venuelink/venue-services/internal/core/domain"
)

// OpportunityInput carries the writable opportunity fields.
type OpportunityInput struct {
	VenueID     string
	Title       string
	Description string
	Deadline    *time.Time
}

type OpportunityService interface {
	CreateOpportunity(ctx context.Context, input OpportunityInput) (*domain.Opportunity, error)
	GetOpportunity(ctx context.Context, id string) (*domain.Opportunity, error)
	ListOpportunities(ctx context.Context, venueID string, openOnly bool) ([]*domain.Opportunity, error)
	SetStatus(ctx context.Context, id string, status domain.OpportunityStatus) (*domain.Opportunity, error)
}
