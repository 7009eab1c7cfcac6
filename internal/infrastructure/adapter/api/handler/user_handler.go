package handler

import (
	"net/http"
	"strconv"

	coreport "github.com/astrodash/astro-api/internal/domain/port/core"
	"github.com/astrodash/astro-api/internal/domain/port/persistence"
	"github.com/astrodash/astro-api/internal/domain/usecase/user"
	"github.com/astrodash/astro-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// UserHandler handles user management HTTP requests
type UserHandler struct {
	userUseCase *user.UseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(userUseCase *user.UseCase, logger coreport.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// userID extracts and validates the :id path parameter
func userID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondBadRequest(c, "Invalid user ID format")
		return 0, false
	}
	return id, true
}

// toCreateInput maps an API request to the usecase input
func toCreateInput(req dto.UserRequest) user.CreateInput {
	return user.CreateInput{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		CountryCode: req.CountryCode,
		Package:     req.Package,
		City:        req.City,
		Country:     req.Country,
		DateOfBirth: req.DateOfBirth,
		TimeOfBirth: req.TimeOfBirth,
		BirthPlace:  req.BirthPlace,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Balance:     req.Balance,
	}
}

// Create handles the POST /api/users endpoint
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	created, err := h.userUseCase.Create(c.Request.Context(), toCreateInput(req))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewUserResponse(created))
}

// GetByID handles the GET /api/users/:id endpoint
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	found, err := h.userUseCase.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(found))
}

// List handles the GET /api/users endpoint
func (h *UserHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	filter := persistence.UserListFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	}

	users, total, err := h.userUseCase.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, dto.NewUserResponse(u))
	}

	totalPages := int64(0)
	if filter.Limit > 0 {
		totalPages = (total + int64(filter.Limit) - 1) / int64(filter.Limit)
	}

	c.JSON(http.StatusOK, dto.UserListResponse{
		Users: items,
		Pagination: dto.PaginationResponse{
			Total:      total,
			Page:       filter.Page,
			Limit:      filter.Limit,
			TotalPages: totalPages,
		},
	})
}

// Update handles the PUT /api/users/:id endpoint
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	updated, err := h.userUseCase.Update(c.Request.Context(), id, toCreateInput(req))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(updated))
}

// SetStatus handles the PATCH /api/users/:id/status endpoint
func (h *UserHandler) SetStatus(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	var req dto.UserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	updated, err := h.userUseCase.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(updated))
}

// Bulk handles the POST /api/users/bulk endpoint
func (h *UserHandler) Bulk(c *gin.Context) {
	var req dto.BulkUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request. Operation and userIds array are required")
		return
	}

	result, err := h.userUseCase.Bulk(c.Request.Context(), user.BulkInput{
		Operation: req.Operation,
		UserIDs:   req.UserIDs,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BulkUserResponse{
		Success:   true,
		Operation: result.Operation,
		Count:     result.Count,
	})
}

// Delete handles the DELETE /api/users/:id endpoint
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	if err := h.userUseCase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
