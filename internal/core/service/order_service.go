package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/venuelink/venue-services/internal/api/metrics"
	"github.com/venuelink/venue-services/internal/core/domain"
	"github.com/venuelink/venue-services/internal/core/ports"
)

type CatalogService struct {
	items  ports.CatalogRepository
	venues ports.VenueRepository
	log    zerolog.Logger
}

func NewCatalogService(items ports.CatalogRepository, venues ports.VenueRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{items: items, venues: venues, log: log}
}

func (s *CatalogService) CreateItem(ctx context.Context, input ports.CatalogItemInput) (*domain.CatalogItem, error) {
	if _, err := s.venues.FindByID(ctx, input.VenueID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	item := &domain.CatalogItem{
		ID:         uuid.NewString(),
		VenueID:    input.VenueID,
		Name:       input.Name,
		PriceCents: input.PriceCents,
		IsActive:   input.IsActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CatalogService) UpdateItem(ctx context.Context, id string, input ports.CatalogItemInput) (*domain.CatalogItem, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	item.Name = input.Name
	item.PriceCents = input.PriceCents
	item.IsActive = input.IsActive
	item.UpdatedAt = time.Now().UTC()
	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CatalogService) ListItems(ctx context.Context, venueID string, activeOnly bool) ([]*domain.CatalogItem, error) {
	return s.items.ListByVenue(ctx, venueID, activeOnly)
}

type OrderService struct {
	orders   ports.OrderRepository
	items    ports.CatalogRepository
	notifier Notifier
	log      zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, items ports.CatalogRepository, notifier Notifier, log zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, items: items, notifier: notifier, log: log}
}

// PlaceOrder resolves each requested line against the venue catalog,
// snapshots names and unit prices, and persists the order as placed.
func (s *OrderService) PlaceOrder(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error) {
	if len(input.Lines) == 0 {
		return nil, domain.ErrCatalogItemNotFound
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ID:        uuid.NewString(),
		VenueID:   input.VenueID,
		UserID:    input.UserID,
		Status:    domain.OrderPlaced,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, line := range input.Lines {
		item, err := s.items.FindByID(ctx, line.CatalogItemID)
		if err != nil {
			return nil, err
		}
		if !item.IsActive || item.VenueID != input.VenueID {
			return nil, domain.ErrCatalogItemNotFound
		}
		qty := line.Quantity
		if qty < 1 {
			qty = 1
		}
		order.Items = append(order.Items, domain.OrderItem{
			ID:             uuid.NewString(),
			OrderID:        order.ID,
			CatalogItemID:  item.ID,
			Name:           item.Name,
			Quantity:       qty,
			UnitPriceCents: item.PriceCents,
		})
		order.TotalCents += int64(qty) * item.PriceCents
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	metrics.OrdersPlacedTotal.Inc()
	s.log.Info().Str("order_id", order.ID).Str("user_id", order.UserID).Int64("total_cents", order.TotalCents).Msg("order placed")

	if s.notifier != nil {
		s.notifier.Enqueue(ports.NotificationInput{
			Kind:      "order_placed",
			SubjectID: order.ID,
			UserID:    order.UserID,
			Occurred:  order.CreatedAt,
		})
	}
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.FindByID(ctx, id)
}

func (s *OrderService) ListUserOrders(ctx context.Context, userID string) ([]*domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

func (s *OrderService) AdvanceOrder(ctx context.Context, id string, next domain.OrderStatus) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, domain.ErrInvalidOrderTransition
	}
	// Compare-and-set so a concurrent advance cannot skip the machine.
	if err := s.orders.UpdateStatus(ctx, id, order.Status, next); err != nil {
		return nil, err
	}
	order.Status = next
	s.log.Info().Str("order_id", id).Str("status", string(next)).Msg("order advanced")
	return order, nil
}
