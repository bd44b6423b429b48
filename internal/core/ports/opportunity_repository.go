package ports

import (
	"context"

	"github.com/venuelink/venue-services/internal/core/domain"
)

// OpportunityRepository defines persistence operations for partner opportunities.
type OpportunityRepository interface {
	Create(ctx context.Context, o *domain.Opportunity) error
	FindByID(ctx context.Context, id string) (*domain.Opportunity, error)
	List(ctx context.Context, venueID string, openOnly bool) ([]*domain.Opportunity, error)
	Update(ctx context.Context, o *domain.Opportunity) error
}
