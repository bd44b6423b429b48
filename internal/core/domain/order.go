package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of a concierge order.
type OrderStatus string

const (
	OrderPlaced    OrderStatus = "placed"
	OrderAccepted  OrderStatus = "accepted"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// validOrderTransitions defines the allowed state machine transitions.
var validOrderTransitions = map[OrderStatus][]OrderStatus{
	OrderPlaced:   {OrderAccepted, OrderCancelled},
	OrderAccepted: {OrderDelivered, OrderCancelled},
}

var (
	ErrOrderNotFound          = errors.New("order not found")
	ErrCatalogItemNotFound    = errors.New("catalog item not found")
	ErrInvalidOrderTransition = errors.New("invalid order status transition")
)

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validOrderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CatalogItem is a purchasable concierge/convenience item offered by a venue.
type CatalogItem struct {
	ID         string    `json:"id" gorm:"primaryKey;size:36"`
	VenueID    string    `json:"venue_id" gorm:"size:36;not null;index"`
	Name       string    `json:"name" gorm:"size:255;not null"`
	PriceCents int64     `json:"price_cents"`
	IsActive   bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// OrderItem is a single line of an order. Unit price is captured at order
// time so later catalog edits do not rewrite history.
type OrderItem struct {
	ID             string `json:"id" gorm:"primaryKey;size:36"`
	OrderID        string `json:"order_id" gorm:"size:36;not null;index"`
	CatalogItemID  string `json:"catalog_item_id" gorm:"size:36;not null"`
	Name           string `json:"name" gorm:"size:255"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

// Order is a customer's concierge order at a venue.
type Order struct {
	ID         string      `json:"id" gorm:"primaryKey;size:36"`
	VenueID    string      `json:"venue_id" gorm:"size:36;not null;index"`
	UserID     string      `json:"user_id" gorm:"size:36;not null;index"`
	Status     OrderStatus `json:"status" gorm:"size:32;not null;default:placed"`
	TotalCents int64       `json:"total_cents"`
	Items      []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}
