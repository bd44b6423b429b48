package mysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/venuelink/venue-services/internal/core/domain"
)

type OpportunityRepository struct {
	db *gorm.DB
}

func NewOpportunityRepository(db *gorm.DB) *OpportunityRepository {
	return &OpportunityRepository{db: db}
}

func (r *OpportunityRepository) Create(ctx context.Context, o *domain.Opportunity) error {
	if err := r.db.WithContext(ctx).Create(o).Error; err != nil {
		return fmt.Errorf("insert opportunity: %w", err)
	}
	return nil
}

func (r *OpportunityRepository) FindByID(ctx context.Context, id string) (*domain.Opportunity, error) {
	var opp domain.Opportunity
	if err := r.db.WithContext(ctx).First(&opp, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOpportunityNotFound
		}
		return nil, fmt.Errorf("find opportunity: %w", err)
	}
	return &opp, nil
}

func (r *OpportunityRepository) List(ctx context.Context, venueID string, openOnly bool) ([]*domain.Opportunity, error) {
	q := r.db.WithContext(ctx).Model(&domain.Opportunity{})
	if venueID != "" {
		q = q.Where("venue_id = ?", venueID)
	}
	if openOnly {
		q = q.Where("status = ?", domain.OpportunityOpen)
	}

	var opps []*domain.Opportunity
	if err := q.Order("created_at DESC").Find(&opps).Error; err != nil {
		return nil, fmt.Errorf("list opportunities: %w", err)
	}
	return opps, nil
}

func (r *OpportunityRepository) Update(ctx context.Context, o *domain.Opportunity) error {
	if err := r.db.WithContext(ctx).Save(o).Error; err != nil {
		return fmt.Errorf("update opportunity: %w", err)
	}
	return nil
}
