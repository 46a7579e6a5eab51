package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/goshop-tools/goshop_backend/internal/models"
	"github.com/goshop-tools/goshop_backend/internal/repository"
)

// OrderSimpleHandler serves the to-one order read path: orders with their
// member and delivery, no collections. The four versions return the same
// data; they differ only in how many queries they cost.
//
//	v1  entities, per-row loads        1 + 2N queries
//	v2  DTOs, per-row loads            1 + 2N queries
//	v3  DTOs, to-one join fetch        1 query
//	v4  direct DTO projection          1 query, narrow SELECT
type OrderSimpleHandler struct {
	orderRepo      repository.OrderRepository
	orderQueryRepo repository.OrderQueryRepository
}

// NewOrderSimpleHandler creates a new simple order handler
func NewOrderSimpleHandler(orderRepo repository.OrderRepository, orderQueryRepo repository.OrderQueryRepository) *OrderSimpleHandler {
	return &OrderSimpleHandler{
		orderRepo:      orderRepo,
		orderQueryRepo: orderQueryRepo,
	}
}

// SimpleOrderResponse is the boundary shape of the simple order read
type SimpleOrderResponse struct {
	OrderID   uint               `json:"order_id"`
	Name      string             `json:"name"`
	OrderedAt time.Time          `json:"ordered_at"`
	Status    models.OrderStatus `json:"status"`
	Address   models.Address     `json:"address"`
}

// newSimpleOrderResponse maps an order whose Member and Delivery are loaded
func newSimpleOrderResponse(o *models.Order) SimpleOrderResponse {
	return SimpleOrderResponse{
		OrderID:   o.ID,
		Name:      o.Member.Name,
		OrderedAt: o.OrderedAt,
		Status:    o.Status,
		Address:   o.Delivery.Address,
	}
}

// OrdersV1 handles GET /api/v1/simple-orders
// @Summary Simple orders, entities with per-row loads
// @Description Returns order entities after loading member and delivery row by row: the N+1 baseline, and the entity graph leaks across the boundary.
// @Tags SimpleOrders
// @Produce json
// @Success 200 {array} models.Order
// @Router /v1/simple-orders [get]
func (h *OrderSimpleHandler) OrdersV1(c *gin.Context) {
	ctx := c.Request.Context()
	orders, err := h.orderRepo.Search(ctx, parseOrderSearch(c))
	if err != nil {
		respondError(c, err)
		return
	}

	// One member query and one delivery query per row.
	for i := range orders {
		if err := h.orderRepo.LoadMember(ctx, &orders[i]); err != nil {
			respondError(c, err)
			return
		}
		if err := h.orderRepo.LoadDelivery(ctx, &orders[i]); err != nil {
			respondError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, orders)
}

// OrdersV2 handles GET /api/v2/simple-orders
// @Summary Simple orders, DTOs with per-row loads
// @Description Maps to DTOs but still loads member and delivery row by row: the boundary is fixed, the query count is not.
// @Tags SimpleOrders
// @Produce json
// @Success 200 {object} ListResponse[SimpleOrderResponse]
// @Router /v2/simple-orders [get]
func (h *OrderSimpleHandler) OrdersV2(c *gin.Context) {
	ctx := c.Request.Context()
	orders, err := h.orderRepo.Search(ctx, parseOrderSearch(c))
	if err != nil {
		respondError(c, err)
		return
	}

	dtos := make([]SimpleOrderResponse, 0, len(orders))
	for i := range orders {
		if err := h.orderRepo.LoadMember(ctx, &orders[i]); err != nil {
			respondError(c, err)
			return
		}
		if err := h.orderRepo.LoadDelivery(ctx, &orders[i]); err != nil {
			respondError(c, err)
			return
		}
		dtos = append(dtos, newSimpleOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, ListResponse[SimpleOrderResponse]{Count: len(dtos), Data: dtos})
}

// OrdersV3 handles GET /api/v3/simple-orders
// @Summary Simple orders, join fetch
// @Description Join-fetches member and delivery in a single query, then maps to DTOs
// @Tags SimpleOrders
// @Produce json
// @Success 200 {object} ListResponse[SimpleOrderResponse]
// @Router /v3/simple-orders [get]
func (h *OrderSimpleHandler) OrdersV3(c *gin.Context) {
	limit, offset := parsePaging(c, 0)
	orders, err := h.orderRepo.FindAllWithMemberDelivery(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	dtos := make([]SimpleOrderResponse, 0, len(orders))
	for i := range orders {
		dtos = append(dtos, newSimpleOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, ListResponse[SimpleOrderResponse]{Count: len(dtos), Data: dtos})
}

// OrdersV4 handles GET /api/v4/simple-orders
// @Summary Simple orders, direct DTO projection
// @Description Projects straight into the response DTO in one query selecting only the returned columns. Fastest, but the query is unusable for anything else.
// @Tags SimpleOrders
// @Produce json
// @Success 200 {object} ListResponse[repository.OrderSimpleQueryDTO]
// @Router /v4/simple-orders [get]
func (h *OrderSimpleHandler) OrdersV4(c *gin.Context) {
	dtos, err := h.orderQueryRepo.FindOrderDTOs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ListResponse[repository.OrderSimpleQueryDTO]{Count: len(dtos), Data: dtos})
}

// RegisterRoutes registers simple order routes
func (h *OrderSimpleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/v1/simple-orders", h.OrdersV1)
	rg.GET("/v2/simple-orders", h.OrdersV2)
	rg.GET("/v3/simple-orders", h.OrdersV3)
	rg.GET("/v4/simple-orders", h.OrdersV4)
}

// parseOrderSearch reads the order search filter from query parameters
func parseOrderSearch(c *gin.Context) repository.OrderSearch {
	return repository.OrderSearch{
		MemberName: c.Query("member_name"),
		Status:     models.OrderStatus(strings.ToUpper(c.Query("status"))),
	}
}
