package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"spendtrack/internal/model"
)

// ItemRepository defines item persistence operations.
type ItemRepository interface {
	CreateBatch(ctx context.Context, items []model.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Item, error)
	UpdatePrice(ctx context.Context, id uuid.UUID, newPrice decimal.Decimal) error
	List(ctx context.Context) ([]model.Item, error)
	ListByMinPrice(ctx context.Context, minPrice decimal.Decimal) ([]model.Item, error)
	DeleteAll(ctx context.Context) error
}

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new item repository.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

// CreateBatch inserts the given items.
func (r *itemRepository) CreateBatch(ctx context.Context, items []model.Item) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

// FindByID finds an item by ID.
func (r *itemRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Item, error) {
	var item model.Item
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdatePrice updates the price of an item. Callers verify the item exists
// first; affected-row counts are unreliable for no-op updates on MySQL.
func (r *itemRepository) UpdatePrice(ctx context.Context, id uuid.UUID, newPrice decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&model.Item{}).
		Where("id = ?", id).
		Update("price", newPrice).Error
}

// List returns all items.
func (r *itemRepository) List(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListByMinPrice returns items priced at or above minPrice, ascending by price.
func (r *itemRepository) ListByMinPrice(ctx context.Context, minPrice decimal.Decimal) ([]model.Item, error) {
	var items []model.Item
	if err := r.db.WithContext(ctx).
		Where("price >= ?", minPrice).
		Order("price asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteAll removes every item. Deleting zero rows is not an error.
func (r *itemRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.Item{}).Error
}
