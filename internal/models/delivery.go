package models

import (
	"encoding/json"
	"strings"
)

// DeliveryStatus represents the shipping state of an order's delivery
type DeliveryStatus string

const (
	DeliveryStatusReady DeliveryStatus = "READY"
	DeliveryStatusComp  DeliveryStatus = "COMP"
)

// MarshalJSON converts DeliveryStatus to lowercase for JSON serialization
func (ds DeliveryStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.ToLower(string(ds)))
}

// UnmarshalJSON converts lowercase JSON to DeliveryStatus
func (ds *DeliveryStatus) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*ds = DeliveryStatus(strings.ToUpper(s))
	return nil
}

// IsValid checks if the DeliveryStatus is a valid value
func (ds DeliveryStatus) IsValid() bool {
	switch ds {
	case DeliveryStatusReady, DeliveryStatusComp:
		return true
	}
	return false
}

// Delivery carries the shipping address and state for exactly one order.
// #CARDINALITY_ASSUMPTION: Order 1:1 Delivery - the owning side is Order
type Delivery struct {
	ID      uint           `gorm:"primaryKey" json:"id"`
	Address Address        `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	Status  DeliveryStatus `json:"status"`
}

// IsCompleted returns true once the delivery has shipped; a completed
// delivery blocks order cancellation.
func (d *Delivery) IsCompleted() bool {
	return d.Status == DeliveryStatusComp
}
