package ports

import (
	"context"

	"github.com/venuelink/venue-services/internal/core/domain"
)

// ParkingLotInput carries the writable lot fields for create and update.
type ParkingLotInput struct {
	VenueID string
	Name    string
	Spaces  int
}

type ParkingService interface {
	CreateLot(ctx context.Context, input ParkingLotInput) (*domain.ParkingLot, error)
	UpdateLot(ctx context.Context, id string, input ParkingLotInput) (*domain.ParkingLot, error)
	ListLots(ctx context.Context, venueID string) ([]*domain.ParkingLot, error)
	// OpenSession claims a space in the lot for the user's vehicle.
	OpenSession(ctx context.Context, lotID, userID, plateNumber string) (*domain.ParkingSession, error)
	// CloseSession ends a session. The session owner may close it, as may
	// any principal ranked venue_staff or above.
	CloseSession(ctx context.Context, sessionID string, actor *domain.User) (*domain.ParkingSession, error)
	ListOpenSessions(ctx context.Context, lotID string) ([]*domain.ParkingSession, error)
}
