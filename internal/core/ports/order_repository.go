package ports

import (
	"context"

	"github.com/venuelink/venue-services/internal/core/domain"
)

// CatalogRepository defines persistence operations for concierge catalog items.
type CatalogRepository interface {
	Create(ctx context.Context, item *domain.CatalogItem) error
	FindByID(ctx context.Context, id string) (*domain.CatalogItem, error)
	ListByVenue(ctx context.Context, venueID string, activeOnly bool) ([]*domain.CatalogItem, error)
	Update(ctx context.Context, item *domain.CatalogItem) error
}

// OrderRepository defines persistence operations for orders. Create persists
// the order together with its line items.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Order, error)
	// UpdateStatus moves the order from one status to the next as a
	// compare-and-set; it returns domain.ErrInvalidOrderTransition when
	// the order is no longer in the expected status.
	UpdateStatus(ctx context.Context, id string, from, to domain.OrderStatus) error
}
