package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func book(stock int) *Item {
	return &Item{
		ID:            1,
		Type:          ItemTypeBook,
		Name:          "Pragmatic Gopher",
		Price:         10000,
		StockQuantity: stock,
		Author:        "kim",
		ISBN:          "12345",
	}
}

func TestNewOrderItem(t *testing.T) {
	item := book(10)

	oi, err := NewOrderItem(item, item.Price, 3)
	if err != nil {
		t.Fatalf("NewOrderItem() error = %v", err)
	}
	if item.StockQuantity != 7 {
		t.Errorf("StockQuantity = %d, want 7", item.StockQuantity)
	}
	if oi.TotalPrice() != 30000 {
		t.Errorf("TotalPrice() = %d, want 30000", oi.TotalPrice())
	}
}

func TestNewOrderItemNotEnoughStock(t *testing.T) {
	item := book(2)

	_, err := NewOrderItem(item, item.Price, 3)
	if !errors.Is(err, ErrNotEnoughStock) {
		t.Fatalf("NewOrderItem() error = %v, want ErrNotEnoughStock", err)
	}
	if item.StockQuantity != 2 {
		t.Errorf("StockQuantity = %d, want 2 (untouched on failure)", item.StockQuantity)
	}
}

func TestOrderCancel(t *testing.T) {
	item := book(10)
	member := &Member{ID: 1, Name: "userA"}
	delivery := &Delivery{Status: DeliveryStatusReady}

	oi, err := NewOrderItem(item, item.Price, 4)
	if err != nil {
		t.Fatalf("NewOrderItem() error = %v", err)
	}
	order := NewOrder(member, delivery, oi)

	if order.Status != OrderStatusOrder {
		t.Fatalf("Status = %v, want ORDER", order.Status)
	}

	if err := order.Cancel(); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	if order.Status != OrderStatusCancel {
		t.Errorf("Status = %v, want CANCEL", order.Status)
	}
	if got := order.OrderItems[0].Item.StockQuantity; got != 10 {
		t.Errorf("StockQuantity after cancel = %d, want 10", got)
	}
}

func TestOrderCancelTwice(t *testing.T) {
	item := book(10)
	oi, _ := NewOrderItem(item, item.Price, 1)
	order := NewOrder(&Member{ID: 1}, &Delivery{Status: DeliveryStatusReady}, oi)

	if err := order.Cancel(); err != nil {
		t.Fatalf("first Cancel() error = %v", err)
	}
	if err := order.Cancel(); !errors.Is(err, ErrOrderAlreadyCanceled) {
		t.Errorf("second Cancel() error = %v, want ErrOrderAlreadyCanceled", err)
	}
	if got := order.OrderItems[0].Item.StockQuantity; got != 10 {
		t.Errorf("StockQuantity = %d, want 10 (restored exactly once)", got)
	}
}

func TestOrderCancelAfterDelivery(t *testing.T) {
	item := book(10)
	oi, _ := NewOrderItem(item, item.Price, 1)
	order := NewOrder(&Member{ID: 1}, &Delivery{Status: DeliveryStatusComp}, oi)

	if err := order.Cancel(); !errors.Is(err, ErrDeliveryCompleted) {
		t.Errorf("Cancel() error = %v, want ErrDeliveryCompleted", err)
	}
	if order.Status != OrderStatusOrder {
		t.Errorf("Status = %v, want ORDER (unchanged)", order.Status)
	}
}

func TestOrderTotalPrice(t *testing.T) {
	itemA := book(100)
	itemB := book(100)
	itemB.ID = 2
	itemB.Price = 20000

	oiA, _ := NewOrderItem(itemA, itemA.Price, 1)
	oiB, _ := NewOrderItem(itemB, itemB.Price, 2)
	order := NewOrder(&Member{ID: 1}, &Delivery{Status: DeliveryStatusReady}, oiA, oiB)

	if got := order.TotalPrice(); got != 50000 {
		t.Errorf("TotalPrice() = %d, want 50000", got)
	}
}

func TestOrderStatusJSON(t *testing.T) {
	data, err := json.Marshal(OrderStatusOrder)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"order"` {
		t.Errorf("Marshal() = %s, want \"order\"", data)
	}

	var status OrderStatus
	if err := json.Unmarshal([]byte(`"cancel"`), &status); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if status != OrderStatusCancel {
		t.Errorf("Unmarshal() = %v, want CANCEL", status)
	}
	if !status.IsValid() {
		t.Error("IsValid() = false, want true")
	}
	if OrderStatus("SHIPPED").IsValid() {
		t.Error("IsValid(SHIPPED) = true, want false")
	}
}
