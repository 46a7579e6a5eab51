package database

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/goshop-tools/goshop_backend/internal/models"
)

// SeedData loads the demo data set: two members, four books filed under a
// small category tree, and one order of two lines per member. Running
// against a non-empty database is a no-op.
// #DATA_ASSUMPTION: Demo accounts use the password "password"
func (c *Client) SeedData() error {
	var count int64
	if err := c.db.Model(&models.Member{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Seed skipped: members already present")
		return nil
	}

	return c.db.Transaction(func(tx *gorm.DB) error {
		if err := seedMemberWithOrder(tx, "userA", "usera@goshop.dev",
			models.Address{City: "Seoul", Street: "1", ZipCode: "1111"},
			[2]models.Item{
				{Type: models.ItemTypeBook, Name: "JPA1 BOOK", Price: 10000, StockQuantity: 100, Author: "Kim", ISBN: "11111"},
				{Type: models.ItemTypeBook, Name: "JPA2 BOOK", Price: 20000, StockQuantity: 100, Author: "Kim", ISBN: "22222"},
			},
			[2]int{1, 2},
		); err != nil {
			return err
		}

		if err := seedMemberWithOrder(tx, "userB", "userb@goshop.dev",
			models.Address{City: "Jinju", Street: "2", ZipCode: "2222"},
			[2]models.Item{
				{Type: models.ItemTypeBook, Name: "SPRING1 BOOK", Price: 20000, StockQuantity: 200, Author: "Lee", ISBN: "33333"},
				{Type: models.ItemTypeBook, Name: "SPRING2 BOOK", Price: 40000, StockQuantity: 300, Author: "Lee", ISBN: "44444"},
			},
			[2]int{3, 4},
		); err != nil {
			return err
		}

		return seedCategories(tx)
	})
}

// seedCategories builds a two-level category tree and files every seeded
// item under the leaf.
func seedCategories(tx *gorm.DB) error {
	root := models.Category{Name: "CATALOG"}
	if err := tx.Create(&root).Error; err != nil {
		return fmt.Errorf("failed to seed root category: %w", err)
	}

	var items []models.Item
	if err := tx.Find(&items).Error; err != nil {
		return err
	}

	books := models.Category{Name: "BOOKS", ParentID: &root.ID}
	if err := tx.Create(&books).Error; err != nil {
		return fmt.Errorf("failed to seed book category: %w", err)
	}
	if err := tx.Model(&books).Association("Items").Append(items); err != nil {
		return fmt.Errorf("failed to file items under category: %w", err)
	}
	return nil
}

// seedMemberWithOrder creates one member, two items and a two-line order
func seedMemberWithOrder(tx *gorm.DB, name, email string, addr models.Address, items [2]models.Item, counts [2]int) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	member := models.Member{Name: name, Email: email, Address: addr, PasswordHash: string(hash)}
	if err := tx.Create(&member).Error; err != nil {
		return fmt.Errorf("failed to seed member %s: %w", name, err)
	}

	for i := range items {
		if err := tx.Create(&items[i]).Error; err != nil {
			return fmt.Errorf("failed to seed item %s: %w", items[i].Name, err)
		}
	}

	line1, err := models.NewOrderItem(&items[0], items[0].Price, counts[0])
	if err != nil {
		return err
	}
	line2, err := models.NewOrderItem(&items[1], items[1].Price, counts[1])
	if err != nil {
		return err
	}
	for i := range items {
		if err := tx.Save(&items[i]).Error; err != nil {
			return err
		}
	}

	delivery := models.Delivery{Address: member.Address, Status: models.DeliveryStatusReady}
	order := models.NewOrder(&member, &delivery, line1, line2)
	// Member and the items already exist; only the order graph itself is new.
	if err := tx.Omit("Member", "OrderItems.Item").Create(order).Error; err != nil {
		return fmt.Errorf("failed to seed order for %s: %w", name, err)
	}
	return nil
}
