package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goshop-tools/goshop_backend/internal/models"
	"github.com/goshop-tools/goshop_backend/internal/repository"
	"github.com/goshop-tools/goshop_backend/internal/services"
)

type orderServiceFixture struct {
	orderService services.OrderService
	orderRepo    repository.OrderRepository
	itemRepo     repository.ItemRepository
	memberID     uint
	itemID       uint
}

func newOrderServiceFixture(t *testing.T) *orderServiceFixture {
	t.Helper()

	client := newTestClient(t)
	memberRepo := repository.NewMemberRepository(client.DB())
	itemRepo := repository.NewItemRepository(client.DB())
	orderRepo := repository.NewOrderRepository(client.DB())
	ctx := context.Background()

	member := &models.Member{
		Name:    "userA",
		Email:   "usera@goshop.dev",
		Address: models.Address{City: "Seoul", Street: "1", ZipCode: "1111"},
	}
	require.NoError(t, memberRepo.Create(ctx, member))

	item := &models.Item{
		Type:          models.ItemTypeBook,
		Name:          "JPA1 BOOK",
		Price:         10000,
		StockQuantity: 10,
		Author:        "Kim",
	}
	require.NoError(t, itemRepo.Create(ctx, item))

	return &orderServiceFixture{
		orderService: services.NewOrderService(orderRepo, memberRepo, itemRepo),
		orderRepo:    orderRepo,
		itemRepo:     itemRepo,
		memberID:     member.ID,
		itemID:       item.ID,
	}
}

func TestOrderServicePlaceOrder(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()

	orderID, err := f.orderService.PlaceOrder(ctx, f.memberID, f.itemID, 3)
	require.NoError(t, err)
	require.NotZero(t, orderID)

	order, err := f.orderRepo.GetByID(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusOrder, order.Status)
	assert.Equal(t, models.DeliveryStatusReady, order.Delivery.Status)
	assert.Equal(t, "Seoul", order.Delivery.Address.City, "delivery snapshots the member's address")
	require.Len(t, order.OrderItems, 1)
	assert.Equal(t, 30000, order.TotalPrice())

	item, err := f.itemRepo.GetByID(ctx, f.itemID)
	require.NoError(t, err)
	assert.Equal(t, 7, item.StockQuantity)
}

func TestOrderServicePlaceOrderValidation(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()

	t.Run("non-positive count", func(t *testing.T) {
		_, err := f.orderService.PlaceOrder(ctx, f.memberID, f.itemID, 0)
		assert.ErrorIs(t, err, models.ErrInvalidInput)
	})

	t.Run("unknown member", func(t *testing.T) {
		_, err := f.orderService.PlaceOrder(ctx, 9999, f.itemID, 1)
		assert.ErrorIs(t, err, models.ErrMemberNotFound)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := f.orderService.PlaceOrder(ctx, f.memberID, 9999, 1)
		assert.ErrorIs(t, err, models.ErrItemNotFound)
	})

	t.Run("not enough stock", func(t *testing.T) {
		_, err := f.orderService.PlaceOrder(ctx, f.memberID, f.itemID, 11)
		assert.ErrorIs(t, err, models.ErrNotEnoughStock)

		item, err := f.itemRepo.GetByID(ctx, f.itemID)
		require.NoError(t, err)
		assert.Equal(t, 10, item.StockQuantity, "failed order must not touch stock")
	})
}

func TestOrderServiceCancelOrder(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()

	orderID, err := f.orderService.PlaceOrder(ctx, f.memberID, f.itemID, 4)
	require.NoError(t, err)

	require.NoError(t, f.orderService.CancelOrder(ctx, orderID))

	order, err := f.orderRepo.GetByID(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancel, order.Status)

	item, err := f.itemRepo.GetByID(ctx, f.itemID)
	require.NoError(t, err)
	assert.Equal(t, 10, item.StockQuantity, "cancel restores the ordered stock")

	t.Run("cancel twice", func(t *testing.T) {
		err := f.orderService.CancelOrder(ctx, orderID)
		assert.ErrorIs(t, err, models.ErrOrderAlreadyCanceled)

		item, err := f.itemRepo.GetByID(ctx, f.itemID)
		require.NoError(t, err)
		assert.Equal(t, 10, item.StockQuantity, "stock restored exactly once")
	})

	t.Run("unknown order", func(t *testing.T) {
		err := f.orderService.CancelOrder(ctx, 9999)
		assert.ErrorIs(t, err, models.ErrOrderNotFound)
	})
}

func TestOrderServiceSearch(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()

	_, err := f.orderService.PlaceOrder(ctx, f.memberID, f.itemID, 1)
	require.NoError(t, err)
	canceledID, err := f.orderService.PlaceOrder(ctx, f.memberID, f.itemID, 1)
	require.NoError(t, err)
	require.NoError(t, f.orderService.CancelOrder(ctx, canceledID))

	all, err := f.orderService.Search(ctx, repository.OrderSearch{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	canceled, err := f.orderService.Search(ctx, repository.OrderSearch{Status: models.OrderStatusCancel})
	require.NoError(t, err)
	require.Len(t, canceled, 1)
	assert.Equal(t, canceledID, canceled[0].ID)

	named, err := f.orderService.Search(ctx, repository.OrderSearch{MemberName: "userA"})
	require.NoError(t, err)
	assert.Len(t, named, 2)
}
