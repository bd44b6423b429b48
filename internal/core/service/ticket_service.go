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

// Notifier is the interface the ticket and order services use to enqueue
// notifications without blocking the request.
type Notifier interface {
	Enqueue(n ports.NotificationInput)
}

type TicketService struct {
	tickets  ports.TicketRepository
	events   ports.EventRepository
	notifier Notifier
	log      zerolog.Logger
}

func NewTicketService(tickets ports.TicketRepository, events ports.EventRepository, notifier Notifier, log zerolog.Logger) *TicketService {
	return &TicketService{tickets: tickets, events: events, notifier: notifier, log: log}
}

func (s *TicketService) PurchaseTicket(ctx context.Context, eventID, userID string) (*domain.Ticket, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Status != domain.EventPublished {
		return nil, domain.ErrEventNotPublished
	}

	// The conditional increment is what actually guards capacity under
	// concurrent purchases; the published check above is advisory.
	if err := s.events.ReserveTicket(ctx, eventID); err != nil {
		return nil, err
	}

	ticket := &domain.Ticket{
		ID:         uuid.NewString(),
		Code:       uuid.NewString(),
		EventID:    eventID,
		UserID:     userID,
		PriceCents: event.BasePriceCents,
		Status:     domain.TicketIssued,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}

	metrics.TicketsIssuedTotal.Inc()
	s.log.Info().Str("ticket_id", ticket.ID).Str("event_id", eventID).Str("user_id", userID).Msg("ticket issued")

	if s.notifier != nil {
		s.notifier.Enqueue(ports.NotificationInput{
			Kind:      "ticket_issued",
			SubjectID: ticket.ID,
			UserID:    userID,
			Occurred:  ticket.CreatedAt,
		})
	}
	return ticket, nil
}

func (s *TicketService) ListUserTickets(ctx context.Context, userID string) ([]*domain.Ticket, error) {
	return s.tickets.ListByUser(ctx, userID)
}

func (s *TicketService) RedeemTicket(ctx context.Context, code string) (*domain.Ticket, error) {
	ticket, err := s.tickets.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	// The conditional flip in Redeem is the exactly-once guard; the read
	// above only supplies the response body.
	now := time.Now().UTC()
	if err := s.tickets.Redeem(ctx, code, now); err != nil {
		return nil, err
	}

	ticket.Status = domain.TicketRedeemed
	ticket.RedeemedAt = &now
	s.log.Info().Str("ticket_id", ticket.ID).Msg("ticket redeemed")
	return ticket, nil
}
