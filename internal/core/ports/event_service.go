package ports

import (
	"context"
	"time"

	"github.com/venuelink/venue-services/internal/core/domain"
)

// EventInput carries the writable event fields for create and update.
type EventInput struct {
	VenueID        string
	Name           string
	Description    string
	Status         domain.EventStatus
	StartsAt       time.Time
	EndsAt         time.Time
	BasePriceCents int64
	TicketCapacity int
}

type EventService interface {
	CreateEvent(ctx context.Context, input EventInput) (*domain.Event, error)
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
	ListEvents(ctx context.Context, venueID string, publishedOnly bool) ([]*domain.Event, error)
	UpdateEvent(ctx context.Context, id string, input EventInput) (*domain.Event, error)
}

type TicketService interface {
	// PurchaseTicket issues a ticket for a published event with remaining
	// capacity. The ticket price snapshots the event base price.
	PurchaseTicket(ctx context.Context, eventID, userID string) (*domain.Ticket, error)
	ListUserTickets(ctx context.Context, userID string) ([]*domain.Ticket, error)
	// RedeemTicket marks a ticket used; a ticket redeems exactly once.
	RedeemTicket(ctx context.Context, code string) (*domain.Ticket, error)
}
