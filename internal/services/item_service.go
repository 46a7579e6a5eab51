package services

import (
	"context"

	"github.com/goshop-tools/goshop_backend/internal/models"
	"github.com/goshop-tools/goshop_backend/internal/repository"
)

// UpdateItemInput carries the changeable item fields; nil means unchanged
type UpdateItemInput struct {
	Name          *string
	Price         *int
	StockQuantity *int
	Author        *string
	ISBN          *string
	Artist        *string
	Etc           *string
	Director      *string
	Actor         *string
}

// ItemService handles item business logic
type ItemService interface {
	// Save persists a new item after type validation
	Save(ctx context.Context, item *models.Item) (uint, error)

	// Update loads the item and copies the changed fields onto it.
	// #BUSINESS_RULE: Updates always go through the loaded entity; writing a
	// detached snapshot back wholesale would silently null out every field
	// the caller didn't send.
	Update(ctx context.Context, id uint, input UpdateItemInput) (*models.Item, error)

	// Get retrieves an item by ID
	Get(ctx context.Context, id uint) (*models.Item, error)

	// List returns a page of items
	List(ctx context.Context, limit, offset int) ([]models.Item, int64, error)
}

// itemService implements ItemService
type itemService struct {
	itemRepo repository.ItemRepository
}

// NewItemService creates a new item service
func NewItemService(itemRepo repository.ItemRepository) ItemService {
	return &itemService{itemRepo: itemRepo}
}

// Save persists a new item
func (s *itemService) Save(ctx context.Context, item *models.Item) (uint, error) {
	if !item.Type.IsValid() {
		return 0, models.ErrInvalidItemType
	}
	if item.Price < 0 || item.StockQuantity < 0 {
		return 0, models.ErrInvalidInput
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return 0, err
	}
	return item.ID, nil
}

// Update applies the changed fields to a freshly loaded item
func (s *itemService) Update(ctx context.Context, id uint, input UpdateItemInput) (*models.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, models.ErrInvalidInput
		}
		item.Price = *input.Price
	}
	if input.StockQuantity != nil {
		if *input.StockQuantity < 0 {
			return nil, models.ErrInvalidInput
		}
		item.StockQuantity = *input.StockQuantity
	}
	if input.Author != nil {
		item.Author = *input.Author
	}
	if input.ISBN != nil {
		item.ISBN = *input.ISBN
	}
	if input.Artist != nil {
		item.Artist = *input.Artist
	}
	if input.Etc != nil {
		item.Etc = *input.Etc
	}
	if input.Director != nil {
		item.Director = *input.Director
	}
	if input.Actor != nil {
		item.Actor = *input.Actor
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Get retrieves an item by ID
func (s *itemService) Get(ctx context.Context, id uint) (*models.Item, error) {
	return s.itemRepo.GetByID(ctx, id)
}

// List returns a page of items with the total count
func (s *itemService) List(ctx context.Context, limit, offset int) ([]models.Item, int64, error) {
	items, err := s.itemRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.itemRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
