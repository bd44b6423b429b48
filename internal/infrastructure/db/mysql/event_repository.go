package mysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/venuelink/venue-services/internal/core/domain"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*domain.Event, error) {
	var event domain.Event
	if err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return &event, nil
}

func (r *EventRepository) ListByVenue(ctx context.Context, venueID string, publishedOnly bool) ([]*domain.Event, error) {
	q := r.db.WithContext(ctx).Model(&domain.Event{}).Where("venue_id = ?", venueID)
	if publishedOnly {
		q = q.Where("status = ?", domain.EventPublished)
	}

	var events []*domain.Event
	if err := q.Order("starts_at").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	if err := r.db.WithContext(ctx).Save(e).Error; err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

// ReserveTicket claims one unit of capacity with a single conditional
// UPDATE, so concurrent purchases cannot oversell the event.
func (r *EventRepository) ReserveTicket(ctx context.Context, eventID string) error {
	res := r.db.WithContext(ctx).Model(&domain.Event{}).
		Where("id = ? AND tickets_sold < ticket_capacity", eventID).
		UpdateColumn("tickets_sold", gorm.Expr("tickets_sold + 1"))
	if res.Error != nil {
		return fmt.Errorf("reserve ticket: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// Either the event is gone or it is at capacity.
		if _, err := r.FindByID(ctx, eventID); err != nil {
			return err
		}
		return domain.ErrEventSoldOut
	}
	return nil
}
