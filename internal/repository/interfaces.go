// Package repository defines interfaces for data access and their GORM
// implementations.
// #ORM_PATTERN: Two repository families exist on purpose. Entity-returning
// repositories are reusable and leave the fetch strategy to the caller;
// DTO-returning repositories are shaped after one API response and trade
// reuse for fewer, narrower queries.
package repository

import (
	"context"

	"github.com/goshop-tools/goshop_backend/internal/models"
)

// MaxSearchResults bounds unpaginated order searches
// #DATA_ASSUMPTION: The tutorial data set never approaches this limit
const MaxSearchResults = 1000

// OrderSearch holds the dynamic filter for order searches
type OrderSearch struct {
	MemberName string             // LIKE match on the ordering member's name
	Status     models.OrderStatus // empty means any status
}

// MemberRepository provides member persistence
type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	GetByID(ctx context.Context, id uint) (*models.Member, error)
	GetByEmail(ctx context.Context, email string) (*models.Member, error)
	FindByName(ctx context.Context, name string) ([]models.Member, error)
	Update(ctx context.Context, member *models.Member) error
	List(ctx context.Context) ([]models.Member, error)
	Delete(ctx context.Context, id uint) error
}

// ItemRepository provides item persistence
type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	GetByID(ctx context.Context, id uint) (*models.Item, error)
	Update(ctx context.Context, item *models.Item) error
	List(ctx context.Context, limit, offset int) ([]models.Item, error)
	Count(ctx context.Context) (int64, error)
}

// CategoryRepository provides read access to the category tree
type CategoryRepository interface {
	ListTree(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	ListItems(ctx context.Context, id uint) ([]models.Item, error)
}

// OrderRepository is the entity-returning order repository. Each finder
// materializes the association graph differently; the Load* methods emulate
// per-row deferred loading for the endpoints that demonstrate the N+1
// problem on purpose.
type OrderRepository interface {
	// Create persists a new order graph and the stock decrement of every
	// ordered item in one transaction.
	Create(ctx context.Context, order *models.Order) error

	// GetByID loads the full order graph (member, delivery, lines + items)
	GetByID(ctx context.Context, id uint) (*models.Order, error)

	// SaveCanceled persists a canceled order's status and the restored
	// stock of its items in one transaction.
	SaveCanceled(ctx context.Context, order *models.Order) error

	// Search returns bare order rows matching the filter, associations
	// untouched. This is the N+1 baseline every later version improves on.
	Search(ctx context.Context, search OrderSearch) ([]models.Order, error)

	// FindAllWithMemberDelivery join-fetches the to-one associations in a
	// single query. Paginates safely because to-one joins never fan out.
	FindAllWithMemberDelivery(ctx context.Context, limit, offset int) ([]models.Order, error)

	// FindAllWithItems join-fetches the to-one associations and loads the
	// order lines and their items with one grouped IN query each: a fixed
	// number of queries regardless of result size, but no root pagination.
	FindAllWithItems(ctx context.Context) ([]models.Order, error)

	// FindPageWithBatch paginates on the order root, join-fetches the
	// to-one associations, then loads lines and items with IN-clause
	// batches of at most batchSize keys.
	FindPageWithBatch(ctx context.Context, limit, offset, batchSize int) ([]models.Order, error)

	// LoadMember loads the ordering member for a single order row
	LoadMember(ctx context.Context, order *models.Order) error

	// LoadDelivery loads the delivery for a single order row
	LoadDelivery(ctx context.Context, order *models.Order) error

	// LoadOrderItems loads the order lines for a single order row, and each
	// line's item with its own query (the per-row loading this package
	// exists to show the cost of).
	LoadOrderItems(ctx context.Context, order *models.Order) error
}

// OrderQueryRepository is the DTO-returning order repository: every method
// projects straight into an API response shape.
type OrderQueryRepository interface {
	// FindOrderDTOs projects the to-one graph into flat DTOs in one query
	FindOrderDTOs(ctx context.Context) ([]OrderSimpleQueryDTO, error)

	// FindOrderQueryDTOs runs one root query, then one line query per order
	FindOrderQueryDTOs(ctx context.Context) ([]OrderQueryDTO, error)

	// FindAllByDTOOptimized runs one root query plus one grouped IN line
	// query, merged in memory: two queries total.
	FindAllByDTOOptimized(ctx context.Context) ([]OrderQueryDTO, error)

	// FindAllByDTOFlat runs a single flat join across the whole graph and
	// regroups the duplicated root rows in memory: one query total, at the
	// cost of transferring the root columns once per line.
	FindAllByDTOFlat(ctx context.Context) ([]OrderQueryDTO, error)
}
