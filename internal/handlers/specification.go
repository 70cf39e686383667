// internal/handlers/specification.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/motorinci/motorinci-api/internal/services"
	"github.com/motorinci/motorinci-api/internal/utils"
)

type SpecificationHandler struct {
	specs *services.SpecificationService
}

func NewSpecificationHandler(specs *services.SpecificationService) *SpecificationHandler {
	return &SpecificationHandler{specs: specs}
}

// Groups.

func (h *SpecificationHandler) ListGroups(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	groups, total, err := h.specs.ListGroups(params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.PaginatedResponse(c, "Motorinci specification groups retrieved successfully", groups, utils.CreatePaginationMeta(total, params))
}

func (h *SpecificationHandler) GetGroup(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	group, err := h.specs.GetGroup(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci specification group retrieved successfully", group)
}

func (h *SpecificationHandler) CreateGroup(c *gin.Context) {
	var req services.SpecificationGroupRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request payload")
		return
	}
	group, err := h.specs.CreateGroup(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, "Motorinci specification group created successfully", group)
}

func (h *SpecificationHandler) UpdateGroup(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req services.SpecificationGroupRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request payload")
		return
	}
	group, err := h.specs.UpdateGroup(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci specification group updated successfully", group)
}

func (h *SpecificationHandler) DeleteGroup(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.specs.DeleteGroup(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci specification group deleted successfully", nil)
}

// Items.

func (h *SpecificationHandler) ListItems(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	items, total, err := h.specs.ListItems(params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.PaginatedResponse(c, "Motorinci specification items retrieved successfully", items, utils.CreatePaginationMeta(total, params))
}

func (h *SpecificationHandler) GetItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	item, err := h.specs.GetItem(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci specification item retrieved successfully", item)
}

func (h *SpecificationHandler) CreateItem(c *gin.Context) {
	var req services.SpecificationItemRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request payload")
		return
	}
	item, err := h.specs.CreateItem(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, "Motorinci specification item created successfully", item)
}

func (h *SpecificationHandler) UpdateItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req services.SpecificationItemRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request payload")
		return
	}
	item, err := h.specs.UpdateItem(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci specification item updated successfully", item)
}

func (h *SpecificationHandler) DeleteItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.specs.DeleteItem(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci specification item deleted successfully", nil)
}

// Motor specification values.

func (h *SpecificationHandler) ListMotorSpecifications(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	rows, total, err := h.specs.ListMotorSpecifications(params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.PaginatedResponse(c, "Motorinci motor specifications retrieved successfully", rows, utils.CreatePaginationMeta(total, params))
}

func (h *SpecificationHandler) GetMotorSpecification(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	row, err := h.specs.GetMotorSpecification(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci motor specification retrieved successfully", row)
}

func (h *SpecificationHandler) CreateMotorSpecification(c *gin.Context) {
	var req services.MotorSpecificationRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request payload")
		return
	}
	row, err := h.specs.CreateMotorSpecification(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, "Motorinci motor specification created successfully", row)
}

func (h *SpecificationHandler) UpdateMotorSpecification(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req services.MotorSpecificationRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request payload")
		return
	}
	row, err := h.specs.UpdateMotorSpecification(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci motor specification updated successfully", row)
}

func (h *SpecificationHandler) DeleteMotorSpecification(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.specs.DeleteMotorSpecification(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci motor specification deleted successfully", nil)
}
