package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/goshop-tools/goshop_backend/internal/models"
	"github.com/goshop-tools/goshop_backend/internal/repository"
	"github.com/goshop-tools/goshop_backend/internal/services"
)

// OrderHandler serves the order commands and the collection read path:
// orders fanned out to their lines and items. The versions return the same
// data with different query profiles.
//
//	v1   entities, per-row loads          1 + N*(2 + 1 + lines) queries
//	v2   DTOs, per-row loads              same as v1
//	v3   join fetch + grouped loads       3 queries, no root paging
//	v3.1 paged roots + batched IN loads   1 + ceil(N/b) + ceil(M/b) queries
//	v4   DTO root + per-order line query  1 + N queries
//	v5   DTO root + grouped line query    2 queries
//	v6   single flat join, regrouped      1 query, no root paging
type OrderHandler struct {
	orderService   services.OrderService
	orderRepo      repository.OrderRepository
	orderQueryRepo repository.OrderQueryRepository

	batchFetchSize   int
	defaultPageLimit int
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(
	orderService services.OrderService,
	orderRepo repository.OrderRepository,
	orderQueryRepo repository.OrderQueryRepository,
	batchFetchSize, defaultPageLimit int,
) *OrderHandler {
	return &OrderHandler{
		orderService:     orderService,
		orderRepo:        orderRepo,
		orderQueryRepo:   orderQueryRepo,
		batchFetchSize:   batchFetchSize,
		defaultPageLimit: defaultPageLimit,
	}
}

// PlaceOrderRequest is the order placement request
type PlaceOrderRequest struct {
	MemberID uint `json:"member_id" binding:"required"`
	ItemID   uint `json:"item_id" binding:"required"`
	Count    int  `json:"count" binding:"required,min=1"`
}

// PlaceOrderResponse returns the new order's ID
type PlaceOrderResponse struct {
	ID uint `json:"id"`
}

// CancelOrderResponse confirms a cancellation
type CancelOrderResponse struct {
	ID     uint               `json:"id"`
	Status models.OrderStatus `json:"status"`
}

// OrderSummaryResponse is the thin shape returned by the order search
type OrderSummaryResponse struct {
	ID         uint               `json:"id"`
	MemberID   uint               `json:"member_id"`
	DeliveryID uint               `json:"delivery_id"`
	OrderedAt  time.Time          `json:"ordered_at"`
	Status     models.OrderStatus `json:"status"`
}

// OrderResponse is the boundary shape of the collection order read
type OrderResponse struct {
	OrderID    uint                `json:"order_id"`
	Name       string              `json:"name"`
	OrderedAt  time.Time           `json:"ordered_at"`
	Status     models.OrderStatus  `json:"status"`
	Address    models.Address      `json:"address"`
	TotalPrice int                 `json:"total_price"`
	OrderItems []OrderItemResponse `json:"order_items"`
}

// OrderItemResponse is one order line in API responses
type OrderItemResponse struct {
	ItemName   string `json:"item_name"`
	OrderPrice int    `json:"order_price"`
	Count      int    `json:"count"`
}

// newOrderResponse maps an order whose full graph is loaded
func newOrderResponse(o *models.Order) OrderResponse {
	lines := make([]OrderItemResponse, 0, len(o.OrderItems))
	for i := range o.OrderItems {
		oi := &o.OrderItems[i]
		lines = append(lines, OrderItemResponse{
			ItemName:   oi.Item.Name,
			OrderPrice: oi.OrderPrice,
			Count:      oi.Count,
		})
	}
	return OrderResponse{
		OrderID:    o.ID,
		Name:       o.Member.Name,
		OrderedAt:  o.OrderedAt,
		Status:     o.Status,
		Address:    o.Delivery.Address,
		TotalPrice: o.TotalPrice(),
		OrderItems: lines,
	}
}

// PlaceOrder handles POST /api/orders
// @Summary Place an order
// @Description Orders count units of one item, shipped to the member's address
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body PlaceOrderRequest true "Order data"
// @Success 201 {object} PlaceOrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
		return
	}

	id, err := h.orderService.PlaceOrder(c.Request.Context(), req.MemberID, req.ItemID, req.Count)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, PlaceOrderResponse{ID: id})
}

// CancelOrder handles POST /api/orders/:id/cancel
// @Summary Cancel an order
// @Description Cancels an order and restores the ordered stock. Fails once the delivery has shipped.
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} CancelOrderResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /orders/{id}/cancel [post]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	if err := h.orderService.CancelOrder(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, CancelOrderResponse{ID: id, Status: models.OrderStatusCancel})
}

// SearchOrders handles GET /api/orders
// @Summary Search orders
// @Description Filters orders by member name and status, returning thin summaries
// @Tags Orders
// @Produce json
// @Param member_name query string false "Member name filter (substring)"
// @Param status query string false "Order status (order|cancel)"
// @Success 200 {object} ListResponse[OrderSummaryResponse]
// @Router /orders [get]
func (h *OrderHandler) SearchOrders(c *gin.Context) {
	orders, err := h.orderService.Search(c.Request.Context(), parseOrderSearch(c))
	if err != nil {
		respondError(c, err)
		return
	}

	dtos := make([]OrderSummaryResponse, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		dtos = append(dtos, OrderSummaryResponse{
			ID:         o.ID,
			MemberID:   o.MemberID,
			DeliveryID: o.DeliveryID,
			OrderedAt:  o.OrderedAt,
			Status:     o.Status,
		})
	}
	c.JSON(http.StatusOK, ListResponse[OrderSummaryResponse]{Count: len(dtos), Data: dtos})
}

// OrdersV1 handles GET /api/v1/orders
// @Summary Orders with lines, entities with per-row loads
// @Description Returns order entities after loading member, delivery, lines and each line's item row by row: the collection N+1 baseline.
// @Tags Orders
// @Produce json
// @Success 200 {array} models.Order
// @Router /v1/orders [get]
func (h *OrderHandler) OrdersV1(c *gin.Context) {
	ctx := c.Request.Context()
	orders, err := h.orderRepo.Search(ctx, parseOrderSearch(c))
	if err != nil {
		respondError(c, err)
		return
	}

	for i := range orders {
		if err := h.loadGraph(c, &orders[i]); err != nil {
			return
		}
	}
	c.JSON(http.StatusOK, orders)
}

// OrdersV2 handles GET /api/v2/orders
// @Summary Orders with lines, DTOs with per-row loads
// @Description Maps to DTOs but still loads every association row by row
// @Tags Orders
// @Produce json
// @Success 200 {object} ListResponse[OrderResponse]
// @Router /v2/orders [get]
func (h *OrderHandler) OrdersV2(c *gin.Context) {
	ctx := c.Request.Context()
	orders, err := h.orderRepo.Search(ctx, parseOrderSearch(c))
	if err != nil {
		respondError(c, err)
		return
	}

	dtos := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		if err := h.loadGraph(c, &orders[i]); err != nil {
			return
		}
		dtos = append(dtos, newOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, ListResponse[OrderResponse]{Count: len(dtos), Data: dtos})
}

// OrdersV3 handles GET /api/v3/orders
// @Summary Orders with lines, join fetch + grouped loads
// @Description Join-fetches the to-one associations and loads the collections with one grouped query each: three statements regardless of result size, but the root cannot be paginated.
// @Tags Orders
// @Produce json
// @Success 200 {object} ListResponse[OrderResponse]
// @Router /v3/orders [get]
func (h *OrderHandler) OrdersV3(c *gin.Context) {
	orders, err := h.orderRepo.FindAllWithItems(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	dtos := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		dtos = append(dtos, newOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, ListResponse[OrderResponse]{Count: len(dtos), Data: dtos})
}

// OrdersV3Paged handles GET /api/v3.1/orders
// @Summary Orders with lines, paged roots + batched IN loads
// @Description Paginates on the order root, then loads lines and items with IN-clause batches of a bounded size. Keeps pagination AND a bounded query count.
// @Tags Orders
// @Produce json
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} ListResponse[OrderResponse]
// @Router /v3.1/orders [get]
func (h *OrderHandler) OrdersV3Paged(c *gin.Context) {
	limit, offset := parsePaging(c, h.defaultPageLimit)

	orders, err := h.orderRepo.FindPageWithBatch(c.Request.Context(), limit, offset, h.batchFetchSize)
	if err != nil {
		respondError(c, err)
		return
	}

	dtos := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		dtos = append(dtos, newOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, ListResponse[OrderResponse]{Count: len(dtos), Data: dtos})
}

// OrdersV4 handles GET /api/v4/orders
// @Summary Orders with lines, DTO root + per-order line query
// @Description Projects the root into DTOs in one query, then runs one line query per order
// @Tags Orders
// @Produce json
// @Success 200 {object} ListResponse[repository.OrderQueryDTO]
// @Router /v4/orders [get]
func (h *OrderHandler) OrdersV4(c *gin.Context) {
	dtos, err := h.orderQueryRepo.FindOrderQueryDTOs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ListResponse[repository.OrderQueryDTO]{Count: len(dtos), Data: dtos})
}

// OrdersV5 handles GET /api/v5/orders
// @Summary Orders with lines, DTO root + grouped line query
// @Description Two statements total: the root projection and one IN-clause line query merged in memory
// @Tags Orders
// @Produce json
// @Success 200 {object} ListResponse[repository.OrderQueryDTO]
// @Router /v5/orders [get]
func (h *OrderHandler) OrdersV5(c *gin.Context) {
	dtos, err := h.orderQueryRepo.FindAllByDTOOptimized(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ListResponse[repository.OrderQueryDTO]{Count: len(dtos), Data: dtos})
}

// OrdersV6 handles GET /api/v6/orders
// @Summary Orders with lines, single flat join
// @Description One statement joining the whole graph, regrouped in memory. The root columns travel once per line and the root cannot be paginated.
// @Tags Orders
// @Produce json
// @Success 200 {object} ListResponse[repository.OrderQueryDTO]
// @Router /v6/orders [get]
func (h *OrderHandler) OrdersV6(c *gin.Context) {
	dtos, err := h.orderQueryRepo.FindAllByDTOFlat(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ListResponse[repository.OrderQueryDTO]{Count: len(dtos), Data: dtos})
}

// loadGraph loads an order's full graph row by row, responding on error
func (h *OrderHandler) loadGraph(c *gin.Context, order *models.Order) error {
	ctx := c.Request.Context()
	if err := h.orderRepo.LoadMember(ctx, order); err != nil {
		respondError(c, err)
		return err
	}
	if err := h.orderRepo.LoadDelivery(ctx, order); err != nil {
		respondError(c, err)
		return err
	}
	if err := h.orderRepo.LoadOrderItems(ctx, order); err != nil {
		respondError(c, err)
		return err
	}
	return nil
}

// RegisterRoutes registers order handler routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/orders", h.PlaceOrder)
	rg.POST("/orders/:id/cancel", h.CancelOrder)
	rg.GET("/orders", h.SearchOrders)

	rg.GET("/v1/orders", h.OrdersV1)
	rg.GET("/v2/orders", h.OrdersV2)
	rg.GET("/v3/orders", h.OrdersV3)
	rg.GET("/v3.1/orders", h.OrdersV3Paged)
	rg.GET("/v4/orders", h.OrdersV4)
	rg.GET("/v5/orders", h.OrdersV5)
	rg.GET("/v6/orders", h.OrdersV6)
}
