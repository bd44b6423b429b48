package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/venuelink/venue-services/internal/core/domain"
)

type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) Create(ctx context.Context, t *domain.Ticket) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("insert ticket: %w", err)
	}
	return nil
}

func (r *TicketRepository) FindByCode(ctx context.Context, code string) (*domain.Ticket, error) {
	var ticket domain.Ticket
	if err := r.db.WithContext(ctx).First(&ticket, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("find ticket: %w", err)
	}
	return &ticket, nil
}

func (r *TicketRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Ticket, error) {
	var tickets []*domain.Ticket
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tickets).Error
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, nil
}

// Redeem marks the ticket used with a single conditional UPDATE, so two
// concurrent redemptions of the same code cannot both succeed.
func (r *TicketRepository) Redeem(ctx context.Context, code string, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&domain.Ticket{}).
		Where("code = ? AND status = ?", code, domain.TicketIssued).
		Updates(map[string]interface{}{
			"status":      domain.TicketRedeemed,
			"redeemed_at": at,
		})
	if res.Error != nil {
		return fmt.Errorf("redeem ticket: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// Either the code does not exist or the ticket was already used.
		if _, err := r.FindByCode(ctx, code); err != nil {
			return err
		}
		return domain.ErrTicketAlreadyRedeemed
	}
	return nil
}
