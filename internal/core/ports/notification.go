package ports

import (
	"context"
	"time"
)

// NotificationInput is the DTO handed to the notification dispatcher when a
// domain event (ticket issued, order placed, ...) should notify a user.
type NotificationInput struct {
	Kind      string // e.g. "ticket_issued", "order_placed"
	SubjectID string // id of the ticket/order the notification refers to
	UserID    string
	Occurred  time.Time
}

// NotificationService processes queued notifications.
type NotificationService interface {
	Process(ctx context.Context, n NotificationInput) error
}
