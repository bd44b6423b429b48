package ports

import (
	"context"
	"time"

	"github.com/venuelink/venue-services/internal/core/domain"
)

// EventRepository defines persistence operations for events.
type EventRepository interface {
	Create(ctx context.Context, e *domain.Event) error
	FindByID(ctx context.Context, id string) (*domain.Event, error)
	ListByVenue(ctx context.Context, venueID string, publishedOnly bool) ([]*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	// ReserveTicket atomically increments tickets_sold while capacity
	// remains; it returns domain.ErrEventSoldOut once the counter would
	// exceed ticket_capacity.
	ReserveTicket(ctx context.Context, eventID string) error
}

// TicketRepository defines persistence operations for issued tickets.
type TicketRepository interface {
	Create(ctx context.Context, t *domain.Ticket) error
	FindByCode(ctx context.Context, code string) (*domain.Ticket, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Ticket, error)
	// Redeem atomically flips an issued ticket to redeemed; it returns
	// domain.ErrTicketAlreadyRedeemed when a concurrent redemption won
	// the flip first.
	Redeem(ctx context.Context, code string, at time.Time) error
}
