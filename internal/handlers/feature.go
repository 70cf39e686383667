// internal/handlers/feature.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/motorinci/motorinci-api/internal/services"
	"github.com/motorinci/motorinci-api/internal/utils"
)

type FeatureHandler struct {
	features *services.FeatureService
}

func NewFeatureHandler(features *services.FeatureService) *FeatureHandler {
	return &FeatureHandler{features: features}
}

// Feature catalog.

func (h *FeatureHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	items, total, err := h.features.ListFeatureItems(params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.PaginatedResponse(c, "Motorinci features retrieved successfully", items, utils.CreatePaginationMeta(total, params))
}

func (h *FeatureHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	item, err := h.features.GetFeatureItem(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci feature retrieved successfully", item)
}

func (h *FeatureHandler) Create(c *gin.Context) {
	var req services.FeatureItemRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request payload")
		return
	}
	icon, _ := c.FormFile("icon")

	item, err := h.features.CreateFeatureItem(&req, icon)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, "Motorinci feature created successfully", item)
}

func (h *FeatureHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req services.FeatureItemRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request payload")
		return
	}
	icon, _ := c.FormFile("icon")

	item, err := h.features.UpdateFeatureItem(id, &req, icon)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci feature updated successfully", item)
}

func (h *FeatureHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.features.DeleteFeatureItem(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci feature deleted successfully", nil)
}

// Per-motor feature assignments.

func (h *FeatureHandler) ListMotorFeatures(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	rows, total, err := h.features.ListMotorFeatures(params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.PaginatedResponse(c, "Motorinci motor features retrieved successfully", rows, utils.CreatePaginationMeta(total, params))
}

func (h *FeatureHandler) GetMotorFeature(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	row, err := h.features.GetMotorFeature(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci motor feature retrieved successfully", row)
}

func (h *FeatureHandler) CreateMotorFeature(c *gin.Context) {
	var req services.MotorFeatureRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request payload")
		return
	}
	row, err := h.features.CreateMotorFeature(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, "Motorinci motor feature created successfully", row)
}

func (h *FeatureHandler) UpdateMotorFeature(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req services.MotorFeatureRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request payload")
		return
	}
	row, err := h.features.UpdateMotorFeature(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci motor feature updated successfully", row)
}

func (h *FeatureHandler) DeleteMotorFeature(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.features.DeleteMotorFeature(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci motor feature deleted successfully", nil)
}
