package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/goshop-tools/goshop_backend/internal/models"
)

// OrderSimpleQueryDTO is the response shape of the direct-projection simple
// order read: only the columns the API returns are selected.
type OrderSimpleQueryDTO struct {
	OrderID   uint               `gorm:"column:order_id" json:"order_id"`
	Name      string             `gorm:"column:name" json:"name"`
	OrderedAt time.Time          `gorm:"column:ordered_at" json:"ordered_at"`
	Status    models.OrderStatus `gorm:"column:status" json:"status"`
	Address   models.Address     `gorm:"embedded" json:"address"`
}

// OrderQueryDTO is the response shape of the collection order reads. The
// line slice cannot come out of the root query; each strategy fills it
// differently.
type OrderQueryDTO struct {
	OrderID    uint                `gorm:"column:order_id" json:"order_id"`
	Name       string              `gorm:"column:name" json:"name"`
	OrderedAt  time.Time           `gorm:"column:ordered_at" json:"ordered_at"`
	Status     models.OrderStatus  `gorm:"column:status" json:"status"`
	Address    models.Address      `gorm:"embedded" json:"address"`
	OrderItems []OrderItemQueryDTO `gorm:"-" json:"order_items"`
}

// OrderItemQueryDTO is one projected order line
type OrderItemQueryDTO struct {
	OrderID    uint   `gorm:"column:order_id" json:"-"`
	ItemName   string `gorm:"column:item_name" json:"item_name"`
	OrderPrice int    `gorm:"column:order_price" json:"order_price"`
	Count      int    `gorm:"column:count" json:"count"`
}

// OrderFlatDTO is one row of the single-join projection: root columns
// duplicated onto every line row.
type OrderFlatDTO struct {
	OrderID    uint               `gorm:"column:order_id" json:"order_id"`
	Name       string             `gorm:"column:name" json:"name"`
	OrderedAt  time.Time          `gorm:"column:ordered_at" json:"ordered_at"`
	Status     models.OrderStatus `gorm:"column:status" json:"status"`
	Address    models.Address     `gorm:"embedded" json:"address"`
	ItemName   string             `gorm:"column:item_name" json:"item_name"`
	OrderPrice int                `gorm:"column:order_price" json:"order_price"`
	Count      int                `gorm:"column:count" json:"count"`
}

const orderRootSelect = `orders.id AS order_id, members.name AS name,
orders.ordered_at AS ordered_at, orders.status AS status,
deliveries.address_city AS city, deliveries.address_street AS street,
deliveries.address_zip_code AS zip_code`

// GormOrderQueryRepository implements OrderQueryRepository on GORM
type GormOrderQueryRepository struct {
	db *gorm.DB
}

// NewOrderQueryRepository creates a new DTO-returning order repository
func NewOrderQueryRepository(db *gorm.DB) *GormOrderQueryRepository {
	return &GormOrderQueryRepository{db: db}
}

// FindOrderDTOs projects orders with their to-one associations into flat
// DTOs in a single query with a narrow SELECT.
func (r *GormOrderQueryRepository) FindOrderDTOs(ctx context.Context) ([]OrderSimpleQueryDTO, error) {
	var dtos []OrderSimpleQueryDTO
	err := r.rootQuery(ctx).Scan(&dtos).Error
	return dtos, err
}

// FindOrderQueryDTOs runs the root projection, then one line query per
// order: 1+N statements. Kept because the per-order query is trivially
// readable; FindAllByDTOOptimized is the same result in two statements.
func (r *GormOrderQueryRepository) FindOrderQueryDTOs(ctx context.Context) ([]OrderQueryDTO, error) {
	roots, err := r.findRoots(ctx)
	if err != nil {
		return nil, err
	}
	for i := range roots {
		var lines []OrderItemQueryDTO
		err := r.lineQuery(ctx).
			Where("order_items.order_id = ?", roots[i].OrderID).
			Scan(&lines).Error
		if err != nil {
			return nil, err
		}
		roots[i].OrderItems = lines
	}
	return roots, nil
}

// FindAllByDTOOptimized runs the root projection plus one grouped IN line
// query and merges the two in memory: two statements total.
func (r *GormOrderQueryRepository) FindAllByDTOOptimized(ctx context.Context) ([]OrderQueryDTO, error) {
	roots, err := r.findRoots(ctx)
	if err != nil {
		return nil, err
	}
	if len(roots) == 0 {
		return roots, nil
	}

	orderIDs := make([]uint, 0, len(roots))
	for i := range roots {
		orderIDs = append(orderIDs, roots[i].OrderID)
	}

	var lines []OrderItemQueryDTO
	err = r.lineQuery(ctx).
		Where("order_items.order_id IN ?", orderIDs).
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}

	linesByOrder := make(map[uint][]OrderItemQueryDTO, len(roots))
	for _, line := range lines {
		linesByOrder[line.OrderID] = append(linesByOrder[line.OrderID], line)
	}
	for i := range roots {
		roots[i].OrderItems = linesByOrder[roots[i].OrderID]
	}
	return roots, nil
}

// FindAllByDTOFlat joins the entire order graph in one statement and
// regroups the duplicated root rows in memory. One query, but the root
// columns travel once per line and the root cannot be paginated.
func (r *GormOrderQueryRepository) FindAllByDTOFlat(ctx context.Context) ([]OrderQueryDTO, error) {
	var flats []OrderFlatDTO
	err := r.db.WithContext(ctx).Table("orders").
		Select(orderRootSelect + `,
items.name AS item_name, order_items.order_price AS order_price, order_items.count AS count`).
		Joins("JOIN members ON members.id = orders.member_id").
		Joins("JOIN deliveries ON deliveries.id = orders.delivery_id").
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Joins("JOIN items ON items.id = order_items.item_id").
		Order("orders.id, order_items.id").
		Scan(&flats).Error
	if err != nil {
		return nil, err
	}
	return regroupFlat(flats), nil
}

// regroupFlat folds flat rows into one DTO per order, preserving row order
func regroupFlat(flats []OrderFlatDTO) []OrderQueryDTO {
	var result []OrderQueryDTO
	index := make(map[uint]int, len(flats))
	for _, flat := range flats {
		i, seen := index[flat.OrderID]
		if !seen {
			result = append(result, OrderQueryDTO{
				OrderID:   flat.OrderID,
				Name:      flat.Name,
				OrderedAt: flat.OrderedAt,
				Status:    flat.Status,
				Address:   flat.Address,
			})
			i = len(result) - 1
			index[flat.OrderID] = i
		}
		result[i].OrderItems = append(result[i].OrderItems, OrderItemQueryDTO{
			OrderID:    flat.OrderID,
			ItemName:   flat.ItemName,
			OrderPrice: flat.OrderPrice,
			Count:      flat.Count,
		})
	}
	return result
}

// rootQuery projects the order root with its to-one associations
func (r *GormOrderQueryRepository) rootQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table("orders").
		Select(orderRootSelect).
		Joins("JOIN members ON members.id = orders.member_id").
		Joins("JOIN deliveries ON deliveries.id = orders.delivery_id").
		Order("orders.id")
}

// findRoots scans the root projection into collection DTOs
func (r *GormOrderQueryRepository) findRoots(ctx context.Context) ([]OrderQueryDTO, error) {
	var roots []OrderQueryDTO
	err := r.rootQuery(ctx).Scan(&roots).Error
	return roots, err
}

// lineQuery projects order lines joined with their item's name
func (r *GormOrderQueryRepository) lineQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table("order_items").
		Select(`order_items.order_id AS order_id, items.name AS item_name,
order_items.order_price AS order_price, order_items.count AS count`).
		Joins("JOIN items ON items.id = order_items.item_id").
		Order("order_items.id")
}

// Ensure GormOrderQueryRepository implements OrderQueryRepository
var _ OrderQueryRepository = (*GormOrderQueryRepository)(nil)
