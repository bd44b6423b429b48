package ports

import (
	"context"
	"time"

	"github.com/venuelink/venue-services/internal/core/domain"
)

// ParkingLotRepository defines persistence operations for parking lots.
type ParkingLotRepository interface {
	Create(ctx context.Context, lot *domain.ParkingLot) error
	FindByID(ctx context.Context, id string) (*domain.ParkingLot, error)
	ListByVenue(ctx context.Context, venueID string) ([]*domain.ParkingLot, error)
	Update(ctx context.Context, lot *domain.ParkingLot) error
	// Occupy atomically claims one space while any remain; it returns
	// domain.ErrParkingLotFull when the lot is at capacity.
	Occupy(ctx context.Context, lotID string) error
	// Release atomically frees one space; freeing below zero is a no-op.
	Release(ctx context.Context, lotID string) error
}

// ParkingSessionRepository defines persistence operations for sessions.
type ParkingSessionRepository interface {
	Create(ctx context.Context, s *domain.ParkingSession) error
	FindByID(ctx context.Context, id string) (*domain.ParkingSession, error)
	ListOpenByLot(ctx context.Context, lotID string) ([]*domain.ParkingSession, error)
	// Close stamps closed_at only while the session is still open; it
	// returns domain.ErrParkingSessionClosed when another close already
	// stamped it, so a space is never released twice.
	Close(ctx context.Context, id string, at time.Time) error
}
