package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/venuelink/venue-services/internal/core/domain"
)

type ParkingLotRepository struct {
	db *gorm.DB
}

func NewParkingLotRepository(db *gorm.DB) *ParkingLotRepository {
	return &ParkingLotRepository{db: db}
}

func (r *ParkingLotRepository) Create(ctx context.Context, lot *domain.ParkingLot) error {
	if err := r.db.WithContext(ctx).Create(lot).Error; err != nil {
		return fmt.Errorf("insert parking lot: %w", err)
	}
	return nil
}

func (r *ParkingLotRepository) FindByID(ctx context.Context, id string) (*domain.ParkingLot, error) {
	var lot domain.ParkingLot
	if err := r.db.WithContext(ctx).First(&lot, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrParkingLotNotFound
		}
		return nil, fmt.Errorf("find parking lot: %w", err)
	}
	return &lot, nil
}

func (r *ParkingLotRepository) ListByVenue(ctx context.Context, venueID string) ([]*domain.ParkingLot, error) {
	var lots []*domain.ParkingLot
	err := r.db.WithContext(ctx).
		Where("venue_id = ? AND is_active = ?", venueID, true).
		Order("name").
		Find(&lots).Error
	if err != nil {
		return nil, fmt.Errorf("list parking lots: %w", err)
	}
	return lots, nil
}

func (r *ParkingLotRepository) Update(ctx context.Context, lot *domain.ParkingLot) error {
	if err := r.db.WithContext(ctx).Save(lot).Error; err != nil {
		return fmt.Errorf("update parking lot: %w", err)
	}
	return nil
}

// Occupy claims one space with a conditional UPDATE so concurrent arrivals
// cannot overfill the lot.
func (r *ParkingLotRepository) Occupy(ctx context.Context, lotID string) error {
	res := r.db.WithContext(ctx).Model(&domain.ParkingLot{}).
		Where("id = ? AND occupied < spaces", lotID).
		UpdateColumn("occupied", gorm.Expr("occupied + 1"))
	if res.Error != nil {
		return fmt.Errorf("occupy space: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		if _, err := r.FindByID(ctx, lotID); err != nil {
			return err
		}
		return domain.ErrParkingLotFull
	}
	return nil
}

// Release frees one space; releasing an already-empty lot is a no-op.
func (r *ParkingLotRepository) Release(ctx context.Context, lotID string) error {
	res := r.db.WithContext(ctx).Model(&domain.ParkingLot{}).
		Where("id = ? AND occupied > 0", lotID).
		UpdateColumn("occupied", gorm.Expr("occupied - 1"))
	if res.Error != nil {
		return fmt.Errorf("release space: %w", res.Error)
	}
	return nil
}

type ParkingSessionRepository struct {
	db *gorm.DB
}

func NewParkingSessionRepository(db *gorm.DB) *ParkingSessionRepository {
	return &ParkingSessionRepository{db: db}
}

func (r *ParkingSessionRepository) Create(ctx context.Context, s *domain.ParkingSession) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("insert parking session: %w", err)
	}
	return nil
}

func (r *ParkingSessionRepository) FindByID(ctx context.Context, id string) (*domain.ParkingSession, error) {
	var session domain.ParkingSession
	if err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrParkingSessionNotFound
		}
		return nil, fmt.Errorf("find parking session: %w", err)
	}
	return &session, nil
}

func (r *ParkingSessionRepository) ListOpenByLot(ctx context.Context, lotID string) ([]*domain.ParkingSession, error) {
	var sessions []*domain.ParkingSession
	err := r.db.WithContext(ctx).
		Where("lot_id = ? AND closed_at IS NULL", lotID).
		Order("opened_at").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("list open sessions: %w", err)
	}
	return sessions, nil
}

// Close stamps closed_at only while it is still null, mirroring the
// conditional counter updates on the lot. The caller releases the space
// only after a successful close, so one session frees one space.
func (r *ParkingSessionRepository) Close(ctx context.Context, id string, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&domain.ParkingSession{}).
		Where("id = ? AND closed_at IS NULL", id).
		Update("closed_at", at)
	if res.Error != nil {
		return fmt.Errorf("close parking session: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		if _, err := r.FindByID(ctx, id); err != nil {
			return err
		}
		return domain.ErrParkingSessionClosed
	}
	return nil
}
