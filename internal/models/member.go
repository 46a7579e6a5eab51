// Package models defines the persistence-mapped domain entities and the
// domain rules that live on them.
package models

import "time"

// Member represents a shop customer.
// #CARDINALITY_ASSUMPTION: Member 1:N Orders - one member places many orders
// #DATA_ASSUMPTION: Email is unique across the entire system
type Member struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"index" json:"name"`
	Email   string  `gorm:"uniqueIndex" json:"email,omitempty"`
	Address Address `gorm:"embedded;embeddedPrefix:address_" json:"address"`

	// PasswordHash is never serialized across the API boundary.
	PasswordHash string `json:"-"`

	// Orders is the inverse side of Order.Member. It is deliberately
	// excluded from JSON: serializing it would drag the whole order graph
	// through the member endpoint.
	Orders []Order `gorm:"foreignKey:MemberID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
