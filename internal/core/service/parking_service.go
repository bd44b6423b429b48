package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/venuelink/venue-services/internal/core/domain"
	"github.com/venuelink/venue-services/internal/core/ports"
)

type ParkingService struct {
	lots     ports.ParkingLotRepository
	sessions ports.ParkingSessionRepository
	venues   ports.VenueRepository
	log      zerolog.Logger
}

func NewParkingService(lots ports.ParkingLotRepository, sessions ports.ParkingSessionRepository, venues ports.VenueRepository, log zerolog.Logger) *ParkingService {
	return &ParkingService{lots: lots, sessions: sessions, venues: venues, log: log}
}

func (s *ParkingService) CreateLot(ctx context.Context, input ports.ParkingLotInput) (*domain.ParkingLot, error) {
	if _, err := s.venues.FindByID(ctx, input.VenueID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	lot := &domain.ParkingLot{
		ID:        uuid.NewString(),
		VenueID:   input.VenueID,
		Name:      input.Name,
		Spaces:    input.Spaces,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.lots.Create(ctx, lot); err != nil {
		return nil, err
	}
	s.log.Info().Str("lot_id", lot.ID).Str("venue_id", lot.VenueID).Msg("parking lot created")
	return lot, nil
}

func (s *ParkingService) UpdateLot(ctx context.Context, id string, input ports.ParkingLotInput) (*domain.ParkingLot, error) {
	lot, err := s.lots.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	lot.Name = input.Name
	lot.Spaces = input.Spaces
	lot.UpdatedAt = time.Now().UTC()
	if err := s.lots.Update(ctx, lot); err != nil {
		return nil, err
	}
	return lot, nil
}

func (s *ParkingService) ListLots(ctx context.Context, venueID string) ([]*domain.ParkingLot, error) {
	return s.lots.ListByVenue(ctx, venueID)
}

func (s *ParkingService) OpenSession(ctx context.Context, lotID, userID, plateNumber string) (*domain.ParkingSession, error) {
	if _, err := s.lots.FindByID(ctx, lotID); err != nil {
		return nil, err
	}

	// Occupy is the concurrency guard; it fails once the lot is full.
	if err := s.lots.Occupy(ctx, lotID); err != nil {
		return nil, err
	}

	session := &domain.ParkingSession{
		ID:          uuid.NewString(),
		LotID:       lotID,
		UserID:      userID,
		PlateNumber: plateNumber,
		OpenedAt:    time.Now().UTC(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		// Give the claimed space back so the counter does not drift.
		if relErr := s.lots.Release(ctx, lotID); relErr != nil {
			s.log.Error().Err(relErr).Str("lot_id", lotID).Msg("failed to release space after create failure")
		}
		return nil, err
	}
	s.log.Info().Str("session_id", session.ID).Str("lot_id", lotID).Msg("parking session opened")
	return session, nil
}

func (s *ParkingService) CloseSession(ctx context.Context, sessionID string, actor *domain.User) (*domain.ParkingSession, error) {
	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, domain.ErrForbidden
	}
	if session.UserID != actor.ID && domain.RoleRank(actor.Role) < domain.RoleRank(domain.RoleVenueStaff) {
		return nil, domain.ErrForbidden
	}

	// Close only succeeds for the first caller, so the space below is
	// released exactly once per session.
	now := time.Now().UTC()
	if err := s.sessions.Close(ctx, sessionID, now); err != nil {
		return nil, err
	}
	session.ClosedAt = &now
	if err := s.lots.Release(ctx, session.LotID); err != nil {
		s.log.Error().Err(err).Str("lot_id", session.LotID).Msg("failed to release space on close")
	}
	s.log.Info().Str("session_id", session.ID).Msg("parking session closed")
	return session, nil
}

func (s *ParkingService) ListOpenSessions(ctx context.Context, lotID string) ([]*domain.ParkingSession, error) {
	return s.sessions.ListOpenByLot(ctx, lotID)
}
