package repository

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"

	"github.com/goshop-tools/goshop_backend/internal/models"
)

// GormOrderRepository implements OrderRepository on GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Create persists a new order graph. Stock is decremented with a guarded
// UPDATE so two concurrent orders can never oversell an item, even though
// the domain check already ran in memory.
func (r *GormOrderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range order.OrderItems {
			oi := &order.OrderItems[i]
			result := tx.Model(&models.Item{}).
				Where("id = ? AND stock_quantity >= ?", oi.ItemID, oi.Count).
				UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", oi.Count))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return models.ErrNotEnoughStock
			}
		}

		// Member and the items already exist; only the order, its delivery
		// and its lines are new rows.
		return tx.Omit("Member", "OrderItems.Item").Create(order).Error
	})
}

// GetByID loads the full order graph: member, delivery, lines and items
func (r *GormOrderRepository) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Joins("Member").
		Joins("Delivery").
		Preload("OrderItems", sortByID).
		Preload("OrderItems.Item").
		First(&order, "orders.id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// SaveCanceled persists a cancellation: the order status flips and every
// ordered count goes back onto its item's stock, atomically.
func (r *GormOrderRepository) SaveCanceled(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Order{}).
			Where("id = ?", order.ID).
			Update("status", order.Status)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return models.ErrOrderNotFound
		}

		for i := range order.OrderItems {
			oi := &order.OrderItems[i]
			if err := tx.Model(&models.Item{}).
				Where("id = ?", oi.ItemID).
				UpdateColumn("stock_quantity", gorm.Expr("stock_quantity + ?", oi.Count)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Search returns bare order rows matching the filter. The member table is
// joined only to evaluate the name filter; nothing is fetched from it.
func (r *GormOrderRepository) Search(ctx context.Context, search OrderSearch) ([]models.Order, error) {
	db := r.db.WithContext(ctx).Model(&models.Order{}).Select("orders.*")

	if search.MemberName != "" {
		db = db.Joins("JOIN members ON members.id = orders.member_id").
			Where("members.name LIKE ?", "%"+search.MemberName+"%")
	}
	if search.Status != "" {
		db = db.Where("orders.status = ?", search.Status)
	}

	var orders []models.Order
	err := db.Order("orders.id").Limit(MaxSearchResults).Find(&orders).Error
	return orders, err
}

// FindAllWithMemberDelivery join-fetches Member and Delivery in one query.
// To-one joins add columns, not rows, so LIMIT/OFFSET stay correct.
func (r *GormOrderRepository) FindAllWithMemberDelivery(ctx context.Context, limit, offset int) ([]models.Order, error) {
	var orders []models.Order
	db := r.db.WithContext(ctx).Joins("Member").Joins("Delivery").Order("orders.id")
	if limit > 0 {
		db = db.Limit(limit).Offset(offset)
	}
	err := db.Find(&orders).Error
	return orders, err
}

// FindAllWithItems join-fetches the to-one associations and loads the whole
// collection fan-out with one grouped query per association: three
// statements total, independent of result size. The root result cannot be
// paginated here because the caller gets every order.
func (r *GormOrderRepository) FindAllWithItems(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Joins("Member").
		Joins("Delivery").
		Preload("OrderItems", sortByID).
		Preload("OrderItems.Item").
		Order("orders.id").
		Find(&orders).Error
	return orders, err
}

// FindPageWithBatch paginates on the order root, then loads the collection
// fan-out with IN-clause batches of at most batchSize keys. Query count is
// 1 + ceil(orders/batchSize) + ceil(items/batchSize).
func (r *GormOrderRepository) FindPageWithBatch(ctx context.Context, limit, offset, batchSize int) ([]models.Order, error) {
	if batchSize <= 0 {
		batchSize = 100
	}

	var orders []models.Order
	tx := r.db.WithContext(ctx)
	if err := tx.Joins("Member").Joins("Delivery").
		Order("orders.id").Limit(limit).Offset(offset).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	orderIDs := make([]uint, 0, len(orders))
	for i := range orders {
		orderIDs = append(orderIDs, orders[i].ID)
	}

	linesByOrder := make(map[uint][]models.OrderItem, len(orders))
	itemIDSet := make(map[uint]struct{})
	for _, chunk := range chunkKeys(orderIDs, batchSize) {
		var lines []models.OrderItem
		if err := tx.Where("order_id IN ?", chunk).Order("id").Find(&lines).Error; err != nil {
			return nil, err
		}
		for _, line := range lines {
			linesByOrder[line.OrderID] = append(linesByOrder[line.OrderID], line)
			itemIDSet[line.ItemID] = struct{}{}
		}
	}

	itemsByID := make(map[uint]models.Item, len(itemIDSet))
	for _, chunk := range chunkKeys(sortedKeys(itemIDSet), batchSize) {
		var items []models.Item
		if err := tx.Where("id IN ?", chunk).Find(&items).Error; err != nil {
			return nil, err
		}
		for _, item := range items {
			itemsByID[item.ID] = item
		}
	}

	for i := range orders {
		lines := linesByOrder[orders[i].ID]
		for j := range lines {
			lines[j].Item = itemsByID[lines[j].ItemID]
		}
		orders[i].OrderItems = lines
	}
	return orders, nil
}

// LoadMember loads the ordering member for a single order row
func (r *GormOrderRepository) LoadMember(ctx context.Context, order *models.Order) error {
	err := r.db.WithContext(ctx).First(&order.Member, order.MemberID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrMemberNotFound
	}
	return err
}

// LoadDelivery loads the delivery for a single order row
func (r *GormOrderRepository) LoadDelivery(ctx context.Context, order *models.Order) error {
	err := r.db.WithContext(ctx).First(&order.Delivery, order.DeliveryID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrNotFound
	}
	return err
}

// LoadOrderItems loads the order lines with one query, then each line's
// item with its own query. Deliberately per-row: this is the behavior the
// grouped and batched strategies exist to replace.
func (r *GormOrderRepository) LoadOrderItems(ctx context.Context, order *models.Order) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Where("order_id = ?", order.ID).Order("id").Find(&order.OrderItems).Error; err != nil {
		return err
	}
	for i := range order.OrderItems {
		oi := &order.OrderItems[i]
		if err := tx.First(&oi.Item, oi.ItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrItemNotFound
			}
			return err
		}
	}
	return nil
}

// sortByID orders preloaded collections deterministically
func sortByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

// chunkKeys splits keys into slices of at most size elements
func chunkKeys(keys []uint, size int) [][]uint {
	var chunks [][]uint
	for len(keys) > size {
		chunks = append(chunks, keys[:size])
		keys = keys[size:]
	}
	if len(keys) > 0 {
		chunks = append(chunks, keys)
	}
	return chunks
}

// sortedKeys returns the set's keys in ascending order
func sortedKeys(set map[uint]struct{}) []uint {
	keys := make([]uint, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Ensure GormOrderRepository implements OrderRepository
var _ OrderRepository = (*GormOrderRepository)(nil)
