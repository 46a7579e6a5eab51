package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/goshop-tools/goshop_backend/internal/models"
	"github.com/goshop-tools/goshop_backend/internal/services"
)

// MemberHandler handles member management endpoints.
//
// The v1 endpoints bind and expose the Member entity directly; the v2
// endpoints go through request/response DTOs. Both are kept because the
// pair is the point: v1 couples the API contract to the table layout, so
// renaming a column becomes a breaking API change.
type MemberHandler struct {
	memberService services.MemberService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService services.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// CreateMemberRequest is the v2 registration request
type CreateMemberRequest struct {
	Name    string         `json:"name" binding:"required"`
	Email   string         `json:"email" binding:"omitempty,email"`
	Address models.Address `json:"address"`
}

// UpdateMemberRequest is the v2 rename request
type UpdateMemberRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateMemberResponse returns the new member's ID
type CreateMemberResponse struct {
	ID uint `json:"id"`
}

// UpdateMemberResponse returns the updated identity fields
type UpdateMemberResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// MemberDTO is the boundary shape of a member: exactly what the list
// endpoint promises, nothing the persistence layer happens to have.
type MemberDTO struct {
	ID      uint           `json:"id"`
	Name    string         `json:"name"`
	Address models.Address `json:"address"`
}

// CreateMemberV1 handles POST /api/v1/members
// @Summary Register a member (entity-bound)
// @Description Binds the persistence entity straight from the request body. Kept to contrast with v2: any entity field rename breaks this API.
// @Tags Members
// @Accept json
// @Produce json
// @Param request body models.Member true "Member entity"
// @Success 201 {object} CreateMemberResponse
// @Failure 400 {object} ErrorResponse
// @Router /v1/members [post]
func (h *MemberHandler) CreateMemberV1(c *gin.Context) {
	var member models.Member
	if err := c.ShouldBindJSON(&member); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
		return
	}
	if member.Name == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "name is required",
		})
		return
	}

	id, err := h.memberService.Join(c.Request.Context(), &member)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, CreateMemberResponse{ID: id})
}

// CreateMemberV2 handles POST /api/v2/members
// @Summary Register a member
// @Description Registers a member through a request DTO decoupled from the entity
// @Tags Members
// @Accept json
// @Produce json
// @Param request body CreateMemberRequest true "Member data"
// @Success 201 {object} CreateMemberResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /v2/members [post]
func (h *MemberHandler) CreateMemberV2(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
		return
	}

	member := models.Member{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
	}
	id, err := h.memberService.Join(c.Request.Context(), &member)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, CreateMemberResponse{ID: id})
}

// UpdateMemberV2 handles PUT /api/v2/members/:id
// @Summary Rename a member
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Param request body UpdateMemberRequest true "New name"
// @Success 200 {object} UpdateMemberResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v2/members/{id} [put]
func (h *MemberHandler) UpdateMemberV2(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
		return
	}

	if err := h.memberService.UpdateName(c.Request.Context(), id, req.Name); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, UpdateMemberResponse{ID: id, Name: req.Name})
}

// ListMembersV1 handles GET /api/v1/members
// @Summary List members (entity-exposing)
// @Description Returns the Member entities directly as a bare JSON array. Kept to contrast with v2: no envelope, and every entity field leaks.
// @Tags Members
// @Produce json
// @Success 200 {array} models.Member
// @Router /v1/members [get]
func (h *MemberHandler) ListMembersV1(c *gin.Context) {
	members, err := h.memberService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// ListMembersV2 handles GET /api/v2/members
// @Summary List members
// @Description Returns member DTOs in a count envelope
// @Tags Members
// @Produce json
// @Success 200 {object} ListResponse[MemberDTO]
// @Router /v2/members [get]
func (h *MemberHandler) ListMembersV2(c *gin.Context) {
	members, err := h.memberService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	dtos := make([]MemberDTO, 0, len(members))
	for i := range members {
		dtos = append(dtos, MemberDTO{
			ID:      members[i].ID,
			Name:    members[i].Name,
			Address: members[i].Address,
		})
	}
	c.JSON(http.StatusOK, ListResponse[MemberDTO]{Count: len(dtos), Data: dtos})
}

// RegisterRoutes registers member handler routes
func (h *MemberHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	rg.POST("/v1/members", h.CreateMemberV1)
	rg.GET("/v1/members", h.ListMembersV1)
	rg.POST("/v2/members", h.CreateMemberV2)
	rg.GET("/v2/members", h.ListMembersV2)
	rg.PUT("/v2/members/:id", authMiddleware, h.UpdateMemberV2)
}

// parseIDParam parses the :id path parameter, writing the 400 itself
func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid ID parameter",
		})
		return 0, err
	}
	return uint(id), nil
}
