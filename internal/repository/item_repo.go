package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/goshop-tools/goshop_backend/internal/models"
)

// GormItemRepository implements ItemRepository on GORM
type GormItemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// Create creates a new item
func (r *GormItemRepository) Create(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Omit("Categories").Create(item).Error
}

// GetByID finds an item by ID
func (r *GormItemRepository) GetByID(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	err := r.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Update persists changes to an existing item. The caller copies the changed
// fields onto an entity loaded in the same request; detached snapshots are
// never written back wholesale.
func (r *GormItemRepository) Update(ctx context.Context, item *models.Item) error {
	result := r.db.WithContext(ctx).Omit("Categories").Save(item)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrItemNotFound
	}
	return nil
}

// List returns a page of items
func (r *GormItemRepository) List(ctx context.Context, limit, offset int) ([]models.Item, error) {
	var items []models.Item
	err := r.db.WithContext(ctx).Order("id").Limit(limit).Offset(offset).Find(&items).Error
	return items, err
}

// Count returns the total number of items
func (r *GormItemRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Item{}).Count(&count).Error
	return count, err
}

// Ensure GormItemRepository implements ItemRepository
var _ ItemRepository = (*GormItemRepository)(nil)
