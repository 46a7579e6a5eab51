package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goshop-tools/goshop_backend/internal/models"
	"github.com/goshop-tools/goshop_backend/internal/repository"
)

// CategoryHandler serves the category tree and category item listings
type CategoryHandler struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryRepo repository.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{categoryRepo: categoryRepo}
}

// CategoryResponse represents a category node in API responses
type CategoryResponse struct {
	ID       uint               `json:"id"`
	Name     string             `json:"name"`
	Children []CategoryResponse `json:"children,omitempty"`
}

// ListCategories handles GET /api/categories
// @Summary List the category tree
// @Tags Categories
// @Produce json
// @Success 200 {object} ListResponse[CategoryResponse]
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryRepo.ListTree(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	dtos := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		dtos = append(dtos, toCategoryResponse(&categories[i]))
	}
	c.JSON(http.StatusOK, ListResponse[CategoryResponse]{Count: len(dtos), Data: dtos})
}

// ListCategoryItems handles GET /api/categories/:id/items
// @Summary List the items filed under a category
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} ListResponse[ItemResponse]
// @Failure 404 {object} ErrorResponse
// @Router /categories/{id}/items [get]
func (h *CategoryHandler) ListCategoryItems(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	items, err := h.categoryRepo.ListItems(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	dtos := make([]ItemResponse, 0, len(items))
	for i := range items {
		dtos = append(dtos, toItemResponse(&items[i]))
	}
	c.JSON(http.StatusOK, ListResponse[ItemResponse]{Count: len(dtos), Data: dtos})
}

// RegisterRoutes registers category handler routes
func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	categories := rg.Group("/categories")
	categories.GET("", h.ListCategories)
	categories.GET("/:id/items", h.ListCategoryItems)
}

// toCategoryResponse converts a category subtree to its API response
func toCategoryResponse(category *models.Category) CategoryResponse {
	dto := CategoryResponse{ID: category.ID, Name: category.Name}
	for i := range category.Children {
		dto.Children = append(dto.Children, toCategoryResponse(&category.Children[i]))
	}
	return dto
}
