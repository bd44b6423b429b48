package ports

import (
	"context"

	"github.com/venuelink/venue-services/internal/core/domain"
)

// CatalogItemInput carries the writable catalog fields for create and update.
type CatalogItemInput struct {
	VenueID    string
	Name       string
	PriceCents int64
	IsActive   bool
}

// OrderLineInput is one requested line of a new order.
type OrderLineInput struct {
	CatalogItemID string
	Quantity      int
}

// PlaceOrderInput carries everything needed to place a concierge order.
type PlaceOrderInput struct {
	VenueID string
	UserID  string
	Lines   []OrderLineInput
}

type CatalogService interface {
	CreateItem(ctx context.Context, input CatalogItemInput) (*domain.CatalogItem, error)
	UpdateItem(ctx context.Context, id string, input CatalogItemInput) (*domain.CatalogItem, error)
	ListItems(ctx context.Context, venueID string, activeOnly bool) ([]*domain.CatalogItem, error)
}

type OrderService interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListUserOrders(ctx context.Context, userID string) ([]*domain.Order, error)
	// AdvanceOrder moves an order along the placed → accepted → delivered
	// machine (or cancels it); invalid moves fail with
	// domain.ErrInvalidOrderTransition.
	AdvanceOrder(ctx context.Context, id string, next domain.OrderStatus) (*domain.Order, error)
}
