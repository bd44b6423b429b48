package mysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/venuelink/venue-services/internal/core/domain"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) Create(ctx context.Context, item *domain.CatalogItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("insert catalog item: %w", err)
	}
	return nil
}

func (r *CatalogRepository) FindByID(ctx context.Context, id string) (*domain.CatalogItem, error) {
	var item domain.CatalogItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCatalogItemNotFound
		}
		return nil, fmt.Errorf("find catalog item: %w", err)
	}
	return &item, nil
}

func (r *CatalogRepository) ListByVenue(ctx context.Context, venueID string, activeOnly bool) ([]*domain.CatalogItem, error) {
	q := r.db.WithContext(ctx).Model(&domain.CatalogItem{}).Where("venue_id = ?", venueID)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var items []*domain.CatalogItem
	if err := q.Order("name").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list catalog items: %w", err)
	}
	return items, nil
}

func (r *CatalogRepository) Update(ctx context.Context, item *domain.CatalogItem) error {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return fmt.Errorf("update catalog item: %w", err)
	}
	return nil
}

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create persists the order and its line items in one transaction.
func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	if err := r.db.WithContext(ctx).Create(o).Error; err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	if err := r.db.WithContext(ctx).Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return &order, nil
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	var orders []*domain.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus is a compare-and-set on the status column, so a concurrent
// transition cannot slip past the state machine between read and write.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, from, to domain.OrderStatus) error {
	res := r.db.WithContext(ctx).Model(&domain.Order{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return fmt.Errorf("update order status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		if _, err := r.FindByID(ctx, id); err != nil {
			return err
		}
		// Another request moved the order first.
		return domain.ErrInvalidOrderTransition
	}
	return nil
}
