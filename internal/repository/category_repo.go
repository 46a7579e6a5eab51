package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/goshop-tools/goshop_backend/internal/models"
)

// GormCategoryRepository implements CategoryRepository on GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// ListTree returns the root categories with their children loaded
func (r *GormCategoryRepository) ListTree(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Where("parent_id IS NULL").
		Preload("Children").
		Order("id").
		Find(&categories).Error
	return categories, err
}

// GetByID finds a category by ID with its children loaded
func (r *GormCategoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Preload("Children").First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// ListItems returns the items filed under a category
func (r *GormCategoryRepository) ListItems(ctx context.Context, id uint) ([]models.Item, error) {
	category, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var items []models.Item
	err = r.db.WithContext(ctx).
		Joins("JOIN category_items ON category_items.item_id = items.id").
		Where("category_items.category_id = ?", category.ID).
		Order("items.id").
		Find(&items).Error
	return items, err
}

// Ensure GormCategoryRepository implements CategoryRepository
var _ CategoryRepository = (*GormCategoryRepository)(nil)
