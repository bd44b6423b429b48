package domain

import (
	"errors"
	"time"
)

// EventStatus represents the publication state of an event.
type EventStatus string

const (
	EventDraft     EventStatus = "draft"
	EventPublished EventStatus = "published"
	EventCancelled EventStatus = "cancelled"
)

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrEventNotPublished = errors.New("event is not open for sale")
	ErrEventSoldOut      = errors.New("event is sold out")
)

// Event is a ticketed occurrence hosted at a venue. TicketsSold is a
// plain counter guarded by the repository's conditional update; inventory
// economics beyond the capacity check are out of scope.
type Event struct {
	ID             string      `json:"id" gorm:"primaryKey;size:36"`
	VenueID        string      `json:"venue_id" gorm:"size:36;not null;index"`
	Name           string      `json:"name" gorm:"size:255;not null"`
	Description    string      `json:"description" gorm:"type:text"`
	Status         EventStatus `json:"status" gorm:"size:32;not null;default:draft"`
	StartsAt       time.Time   `json:"starts_at"`
	EndsAt         time.Time   `json:"ends_at"`
	BasePriceCents int64       `json:"base_price_cents"`
	TicketCapacity int         `json:"ticket_capacity"`
	TicketsSold    int         `json:"tickets_sold"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}
