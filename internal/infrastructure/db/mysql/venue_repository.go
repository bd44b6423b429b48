package mysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/venuelink/venue-services/internal/core/domain"
	"github.com/venuelink/venue-services/internal/core/ports"
)

type VenueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

func (r *VenueRepository) Create(ctx context.Context, v *domain.Venue) error {
	if err := r.db.WithContext(ctx).Create(v).Error; err != nil {
		return fmt.Errorf("insert venue: %w", err)
	}
	return nil
}

func (r *VenueRepository) FindByID(ctx context.Context, id string) (*domain.Venue, error) {
	var venue domain.Venue
	if err := r.db.WithContext(ctx).First(&venue, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVenueNotFound
		}
		return nil, fmt.Errorf("find venue: %w", err)
	}
	return &venue, nil
}

func (r *VenueRepository) FindBySlug(ctx context.Context, slug string) (*domain.Venue, error) {
	var venue domain.Venue
	if err := r.db.WithContext(ctx).First(&venue, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVenueNotFound
		}
		return nil, fmt.Errorf("find venue by slug: %w", err)
	}
	return &venue, nil
}

func (r *VenueRepository) List(ctx context.Context, filter ports.VenueFilter) ([]*domain.Venue, error) {
	q := r.db.WithContext(ctx).Model(&domain.Venue{})
	if filter.City != "" {
		q = q.Where("city = ?", filter.City)
	}
	if filter.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}

	var venues []*domain.Venue
	if err := q.Order("name").Find(&venues).Error; err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	return venues, nil
}

func (r *VenueRepository) Update(ctx context.Context, v *domain.Venue) error {
	if err := r.db.WithContext(ctx).Save(v).Error; err != nil {
		return fmt.Errorf("update venue: %w", err)
	}
	return nil
}

func (r *VenueRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Venue{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete venue: %w", err)
	}
	return nil
}
