package services

import (
	"context"

	"github.com/goshop-tools/goshop_backend/internal/models"
	"github.com/goshop-tools/goshop_backend/internal/repository"
)

// OrderService handles the order commands: placing, canceling, searching
type OrderService interface {
	// PlaceOrder creates an order of count units of one item, shipped to
	// the member's address. Returns the new order's ID.
	PlaceOrder(ctx context.Context, memberID, itemID uint, count int) (uint, error)

	// CancelOrder cancels an order and restores the ordered stock
	CancelOrder(ctx context.Context, orderID uint) error

	// Search returns bare order rows matching the filter
	Search(ctx context.Context, search repository.OrderSearch) ([]models.Order, error)
}

// orderService implements OrderService
type orderService struct {
	orderRepo  repository.OrderRepository
	memberRepo repository.MemberRepository
	itemRepo   repository.ItemRepository
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	memberRepo repository.MemberRepository,
	itemRepo repository.ItemRepository,
) OrderService {
	return &orderService{
		orderRepo:  orderRepo,
		memberRepo: memberRepo,
		itemRepo:   itemRepo,
	}
}

// PlaceOrder creates an order aggregate and persists it
// #BUSINESS_RULE: The delivery address snapshots the member's address at
// order time; later member address changes do not move pending deliveries.
func (s *orderService) PlaceOrder(ctx context.Context, memberID, itemID uint, count int) (uint, error) {
	if count <= 0 {
		return 0, models.ErrInvalidInput
	}

	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return 0, err
	}
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return 0, err
	}

	delivery := &models.Delivery{
		Address: member.Address,
		Status:  models.DeliveryStatusReady,
	}
	orderItem, err := models.NewOrderItem(item, item.Price, count)
	if err != nil {
		return 0, err
	}

	order := models.NewOrder(member, delivery, orderItem)
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return 0, err
	}
	return order.ID, nil
}

// CancelOrder cancels an order. The domain entity decides whether the
// cancellation is legal; the repository persists the outcome atomically.
func (s *orderService) CancelOrder(ctx context.Context, orderID uint) error {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if err := order.Cancel(); err != nil {
		return err
	}
	return s.orderRepo.SaveCanceled(ctx, order)
}

// Search returns bare order rows matching the filter
func (s *orderService) Search(ctx context.Context, search repository.OrderSearch) ([]models.Order, error) {
	return s.orderRepo.Search(ctx, search)
}
