// internal/handlers/color.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/motorinci/motorinci-api/internal/services"
	"github.com/motorinci/motorinci-api/internal/utils"
)

type ColorHandler struct {
	colors *services.ColorService
}

func NewColorHandler(colors *services.ColorService) *ColorHandler {
	return &ColorHandler{colors: colors}
}

// Master colors.

func (h *ColorHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	colors, total, err := h.colors.ListColors(params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.PaginatedResponse(c, "Motorinci colors retrieved successfully", colors, utils.CreatePaginationMeta(total, params))
}

func (h *ColorHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	color, err := h.colors.GetColor(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci color retrieved successfully", color)
}

func (h *ColorHandler) Create(c *gin.Context) {
	var req services.ColorRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request payload")
		return
	}
	color, err := h.colors.CreateColor(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, "Motorinci color created successfully", color)
}

func (h *ColorHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req services.ColorRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request payload")
		return
	}
	color, err := h.colors.UpdateColor(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci color updated successfully", color)
}

func (h *ColorHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.colors.DeleteColor(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci color deleted successfully", nil)
}

// Per-motor color availability.

func (h *ColorHandler) ListAvailable(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	rows, total, err := h.colors.ListAvailableColors(params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.PaginatedResponse(c, "Motorinci available colors retrieved successfully", rows, utils.CreatePaginationMeta(total, params))
}

func (h *ColorHandler) GetAvailable(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	row, err := h.colors.GetAvailableColor(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci available color retrieved successfully", row)
}

func (h *ColorHandler) CreateAvailable(c *gin.Context) {
	var req services.AvailableColorRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request payload")
		return
	}
	image, _ := c.FormFile("image")

	row, err := h.colors.CreateAvailableColor(&req, image)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, "Motorinci available color created successfully", row)
}

func (h *ColorHandler) UpdateAvailable(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req services.AvailableColorRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request payload")
		return
	}
	image, _ := c.FormFile("image")

	row, err := h.colors.UpdateAvailableColor(id, &req, image)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci available color updated successfully", row)
}

func (h *ColorHandler) DeleteAvailable(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.colors.DeleteAvailableColor(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci available color deleted successfully", nil)
}
