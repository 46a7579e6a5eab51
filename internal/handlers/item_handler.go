package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/goshop-tools/goshop_backend/internal/models"
	"github.com/goshop-tools/goshop_backend/internal/services"
)

// ItemHandler handles item management endpoints
type ItemHandler struct {
	itemService services.ItemService
}

// NewItemHandler creates a new item handler
func NewItemHandler(itemService services.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// CreateItemRequest is the item creation request
type CreateItemRequest struct {
	Type          string `json:"type" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Price         int    `json:"price" binding:"min=0"`
	StockQuantity int    `json:"stock_quantity" binding:"min=0"`
	Author        string `json:"author,omitempty"`
	ISBN          string `json:"isbn,omitempty"`
	Artist        string `json:"artist,omitempty"`
	Etc           string `json:"etc,omitempty"`
	Director      string `json:"director,omitempty"`
	Actor         string `json:"actor,omitempty"`
}

// UpdateItemRequest carries partial item updates; absent fields stay as-is
type UpdateItemRequest struct {
	Name          *string `json:"name,omitempty"`
	Price         *int    `json:"price,omitempty"`
	StockQuantity *int    `json:"stock_quantity,omitempty"`
	Author        *string `json:"author,omitempty"`
	ISBN          *string `json:"isbn,omitempty"`
	Artist        *string `json:"artist,omitempty"`
	Etc           *string `json:"etc,omitempty"`
	Director      *string `json:"director,omitempty"`
	Actor         *string `json:"actor,omitempty"`
}

// ItemResponse represents an item in API responses
type ItemResponse struct {
	ID            uint            `json:"id"`
	Type          models.ItemType `json:"type"`
	Name          string          `json:"name"`
	Price         int             `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	Author        string          `json:"author,omitempty"`
	ISBN          string          `json:"isbn,omitempty"`
	Artist        string          `json:"artist,omitempty"`
	Etc           string          `json:"etc,omitempty"`
	Director      string          `json:"director,omitempty"`
	Actor         string          `json:"actor,omitempty"`
}

// CreateItem handles POST /api/items
// @Summary Create an item
// @Tags Items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateItemRequest true "Item data"
// @Success 201 {object} ItemResponse
// @Failure 400 {object} ErrorResponse
// @Router /items [post]
func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
		return
	}

	item := models.Item{
		Type:          models.ItemType(strings.ToUpper(req.Type)),
		Name:          req.Name,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		Author:        req.Author,
		ISBN:          req.ISBN,
		Artist:        req.Artist,
		Etc:           req.Etc,
		Director:      req.Director,
		Actor:         req.Actor,
	}
	if _, err := h.itemService.Save(c.Request.Context(), &item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toItemResponse(&item))
}

// GetItem handles GET /api/items/:id
// @Summary Get an item
// @Tags Items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} ItemResponse
// @Failure 404 {object} ErrorResponse
// @Router /items/{id} [get]
func (h *ItemHandler) GetItem(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	item, err := h.itemService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toItemResponse(item))
}

// ListItems handles GET /api/items
// @Summary List items
// @Tags Items
// @Produce json
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} ListResponse[ItemResponse]
// @Router /items [get]
func (h *ItemHandler) ListItems(c *gin.Context) {
	limit, offset := parsePaging(c, 100)

	items, total, err := h.itemService.List(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	dtos := make([]ItemResponse, 0, len(items))
	for i := range items {
		dtos = append(dtos, toItemResponse(&items[i]))
	}
	c.JSON(http.StatusOK, ListResponse[ItemResponse]{Count: int(total), Data: dtos})
}

// UpdateItem handles PUT /api/items/:id
// @Summary Update an item
// @Description Loads the item and applies only the fields present in the request
// @Tags Items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Param request body UpdateItemRequest true "Item updates"
// @Success 200 {object} ItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /items/{id} [put]
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
		return
	}

	item, err := h.itemService.Update(c.Request.Context(), id, services.UpdateItemInput{
		Name:          req.Name,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		Author:        req.Author,
		ISBN:          req.ISBN,
		Artist:        req.Artist,
		Etc:           req.Etc,
		Director:      req.Director,
		Actor:         req.Actor,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toItemResponse(item))
}

// RegisterRoutes registers item handler routes
func (h *ItemHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	items := rg.Group("/items")
	items.GET("", h.ListItems)
	items.GET("/:id", h.GetItem)
	items.POST("", authMiddleware, h.CreateItem)
	items.PUT("/:id", authMiddleware, h.UpdateItem)
}

// toItemResponse converts an item to its API response
func toItemResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ID:            item.ID,
		Type:          item.Type,
		Name:          item.Name,
		Price:         item.Price,
		StockQuantity: item.StockQuantity,
		Author:        item.Author,
		ISBN:          item.ISBN,
		Artist:        item.Artist,
		Etc:           item.Etc,
		Director:      item.Director,
		Actor:         item.Actor,
	}
}

// parsePaging reads limit/offset query parameters with a default page size
func parsePaging(c *gin.Context, defaultLimit int) (limit, offset int) {
	limit = defaultLimit
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "")); err == nil && v > 0 {
		limit = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("offset", "0")); err == nil && v >= 0 {
		offset = v
	}
	return limit, offset
}
