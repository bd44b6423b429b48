package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/venuelink/venue-services/internal/core/domain"
	"github.com/venuelink/venue-services/internal/core/ports"
)

type EventService struct {
	events ports.EventRepository
	venues ports.VenueRepository
	log    zerolog.Logger
}

func NewEventService(events ports.EventRepository, venues ports.VenueRepository, log zerolog.Logger) *EventService {
	return &EventService{events: events, venues: venues, log: log}
}

func (s *EventService) CreateEvent(ctx context.Context, input ports.EventInput) (*domain.Event, error) {
	if _, err := s.venues.FindByID(ctx, input.VenueID); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.EventDraft
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:             uuid.NewString(),
		VenueID:        input.VenueID,
		Name:           input.Name,
		Description:    input.Description,
		Status:         status,
		StartsAt:       input.StartsAt,
		EndsAt:         input.EndsAt,
		BasePriceCents: input.BasePriceCents,
		TicketCapacity: input.TicketCapacity,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}
	s.log.Info().Str("event_id", event.ID).Str("venue_id", event.VenueID).Msg("event created")
	return event, nil
}

func (s *EventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	return s.events.FindByID(ctx, id)
}

func (s *EventService) ListEvents(ctx context.Context, venueID string, publishedOnly bool) ([]*domain.Event, error) {
	return s.events.ListByVenue(ctx, venueID, publishedOnly)
}

func (s *EventService) UpdateEvent(ctx context.Context, id string, input ports.EventInput) (*domain.Event, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	event.Name = input.Name
	event.Description = input.Description
	if input.Status != "" {
		event.Status = input.Status
	}
	event.StartsAt = input.StartsAt
	event.EndsAt = input.EndsAt
	event.BasePriceCents = input.BasePriceCents
	event.TicketCapacity = input.TicketCapacity
	event.UpdatedAt = time.Now().UTC()
	if err := s.events.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}
