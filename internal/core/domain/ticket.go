package domain

import (
	"errors"
	"time"
)

// TicketStatus is the lifecycle state of an issued ticket.
type TicketStatus string

const (
	TicketIssued   TicketStatus = "issued"
	TicketRedeemed TicketStatus = "redeemed"
)

var (
	ErrTicketNotFound        = errors.New("ticket not found")
	ErrTicketAlreadyRedeemed = errors.New("ticket already redeemed")
)

// Ticket is a purchased admission for an event. Code is the opaque value
// presented at the gate; it is redeemable exactly once.
type Ticket struct {
	ID         string       `json:"id" gorm:"primaryKey;size:36"`
	Code       string       `json:"code" gorm:"uniqueIndex;size:36;not null"`
	EventID    string       `json:"event_id" gorm:"size:36;not null;index"`
	UserID     string       `json:"user_id" gorm:"size:36;not null;index"`
	PriceCents int64        `json:"price_cents"`
	Status     TicketStatus `json:"status" gorm:"size:32;not null;default:issued"`
	RedeemedAt *time.Time   `json:"redeemed_at,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}
