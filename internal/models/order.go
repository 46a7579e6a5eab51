package models

import (
	"encoding/json"
	"strings"
	"time"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusOrder  OrderStatus = "ORDER"
	OrderStatusCancel OrderStatus = "CANCEL"
)

// MarshalJSON converts OrderStatus to lowercase for JSON serialization
func (os OrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.ToLower(string(os)))
}

// UnmarshalJSON converts lowercase JSON to OrderStatus
func (os *OrderStatus) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*os = OrderStatus(strings.ToUpper(s))
	return nil
}

// IsValid checks if the OrderStatus is a valid value
func (os OrderStatus) IsValid() bool {
	switch os {
	case OrderStatusOrder, OrderStatusCancel:
		return true
	}
	return false
}

// Order is the aggregate root of the order graph: it owns its order items
// and its delivery, and references the ordering member.
//
// The to-one associations (Member, Delivery) and the to-many association
// (OrderItems) are NOT loaded by default; each read strategy in the
// repository layer decides how to materialize them. That decision is the
// whole point of the versioned order endpoints.
type Order struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	MemberID   uint        `gorm:"index" json:"member_id"`
	Member     Member      `json:"member"`
	OrderItems []OrderItem `gorm:"foreignKey:OrderID" json:"order_items"`
	DeliveryID uint        `json:"delivery_id"`
	Delivery   Delivery    `json:"delivery"`
	OrderedAt  time.Time   `json:"ordered_at"`
	Status     OrderStatus `json:"status"`
}

// OrderItem is one line of an order. OrderPrice snapshots the item price at
// order time; the live Item price may change later.
type OrderItem struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	OrderID    uint `gorm:"index" json:"order_id"`
	ItemID     uint `json:"item_id"`
	Item       Item `json:"item"`
	OrderPrice int  `json:"order_price"`
	Count      int  `json:"count"`
}

// NewOrderItem creates an order line and removes the ordered count from the
// item's stock. It fails with ErrNotEnoughStock without touching the item.
func NewOrderItem(item *Item, orderPrice, count int) (*OrderItem, error) {
	if err := item.RemoveStock(count); err != nil {
		return nil, err
	}
	return &OrderItem{
		ItemID:     item.ID,
		Item:       *item,
		OrderPrice: orderPrice,
		Count:      count,
	}, nil
}

// Cancel restores the ordered count to the item's stock
func (oi *OrderItem) Cancel() {
	oi.Item.AddStock(oi.Count)
}

// TotalPrice returns the line total
func (oi *OrderItem) TotalPrice() int {
	return oi.OrderPrice * oi.Count
}

// NewOrder assembles an order aggregate from its parts. The order starts in
// ORDER status with the order time set to now.
func NewOrder(member *Member, delivery *Delivery, orderItems ...*OrderItem) *Order {
	order := &Order{
		MemberID:  member.ID,
		Member:    *member,
		Delivery:  *delivery,
		Status:    OrderStatusOrder,
		OrderedAt: time.Now().UTC(),
	}
	for _, oi := range orderItems {
		order.OrderItems = append(order.OrderItems, *oi)
	}
	return order
}

// Cancel transitions the order to CANCEL and restores stock for every line.
// #BUSINESS_RULE: An order whose delivery has already shipped cannot be
// canceled; a canceled order cannot be canceled twice.
func (o *Order) Cancel() error {
	if o.Delivery.IsCompleted() {
		return ErrDeliveryCompleted
	}
	if o.Status == OrderStatusCancel {
		return ErrOrderAlreadyCanceled
	}
	o.Status = OrderStatusCancel
	for i := range o.OrderItems {
		o.OrderItems[i].Cancel()
	}
	return nil
}

// TotalPrice returns the sum of all line totals
func (o *Order) TotalPrice() int {
	total := 0
	for i := range o.OrderItems {
		total += o.OrderItems[i].TotalPrice()
	}
	return total
}
