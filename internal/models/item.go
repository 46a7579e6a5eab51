package models

import (
	"encoding/json"
	"strings"
	"time"
)

// ItemType discriminates the concrete kind of item stored in the single
// items table.
// #IMPLEMENTATION_DECISION: UPPERCASE in Go code, lowercase in JSON serialization
type ItemType string

const (
	ItemTypeBook  ItemType = "BOOK"
	ItemTypeAlbum ItemType = "ALBUM"
	ItemTypeMovie ItemType = "MOVIE"
)

// MarshalJSON converts ItemType to lowercase for JSON serialization
func (it ItemType) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.ToLower(string(it)))
}

// UnmarshalJSON converts lowercase JSON to ItemType
func (it *ItemType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*it = ItemType(strings.ToUpper(s))
	return nil
}

// IsValid checks if the ItemType is a valid value
func (it ItemType) IsValid() bool {
	switch it {
	case ItemTypeBook, ItemTypeAlbum, ItemTypeMovie:
		return true
	}
	return false
}

// Item is a sellable product. The book/album/movie variants share one table
// with a discriminator column; the variant-specific columns are simply empty
// for the other kinds.
// #IMPLEMENTATION_DECISION: Single-table layout keeps every stock mutation a
// one-row UPDATE regardless of item kind.
type Item struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	Type          ItemType `gorm:"index" json:"type"`
	Name          string   `json:"name"`
	Price         int      `json:"price"`
	StockQuantity int      `json:"stock_quantity"`

	// Book
	Author string `json:"author,omitempty"`
	ISBN   string `json:"isbn,omitempty"`

	// Album
	Artist string `json:"artist,omitempty"`
	Etc    string `json:"etc,omitempty"`

	// Movie
	Director string `json:"director,omitempty"`
	Actor    string `json:"actor,omitempty"`

	Categories []Category `gorm:"many2many:category_items" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AddStock increases the stock quantity, e.g. when an order is canceled.
func (i *Item) AddStock(quantity int) {
	i.StockQuantity += quantity
}

// RemoveStock decreases the stock quantity when an order is placed.
// #BUSINESS_RULE: Stock never goes negative; the caller must roll back the
// surrounding transaction on ErrNotEnoughStock.
func (i *Item) RemoveStock(quantity int) error {
	rest := i.StockQuantity - quantity
	if rest < 0 {
		return ErrNotEnoughStock
	}
	i.StockQuantity = rest
	return nil
}
