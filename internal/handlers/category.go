// internal/handlers/category.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/motorinci/motorinci-api/internal/services"
	"github.com/motorinci/motorinci-api/internal/utils"
)

type CategoryHandler struct {
	categories *services.CategoryService
}

func NewCategoryHandler(categories *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

func (h *CategoryHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	categories, total, err := h.categories.ListCategories(params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.PaginatedResponse(c, "Motorinci categories retrieved successfully", categories, utils.CreatePaginationMeta(total, params))
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	category, err := h.categories.GetCategory(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci category retrieved successfully", category)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req services.CategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request payload")
		return
	}
	image, _ := c.FormFile("image")

	category, err := h.categories.CreateCategory(&req, image)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, "Motorinci category created successfully", category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req services.CategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request payload")
		return
	}
	image, _ := c.FormFile("image")

	category, err := h.categories.UpdateCategory(id, &req, image)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci category updated successfully", category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.categories.DeleteCategory(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci category deleted successfully", nil)
}

func (h *CategoryHandler) Motors(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	motors, err := h.categories.MotorsByCategory(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci motors retrieved successfully", motors)
}
