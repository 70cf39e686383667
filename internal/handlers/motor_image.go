// internal/handlers/motor_image.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/motorinci/motorinci-api/internal/services"
	"github.com/motorinci/motorinci-api/internal/utils"
)

type MotorImageHandler struct {
	images *services.MotorImageService
}

func NewMotorImageHandler(images *services.MotorImageService) *MotorImageHandler {
	return &MotorImageHandler{images: images}
}

func (h *MotorImageHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	images, total, err := h.images.ListMotorImages(params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.PaginatedResponse(c, "Motorinci motor images retrieved successfully", images, utils.CreatePaginationMeta(total, params))
}

func (h *MotorImageHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	image, err := h.images.GetMotorImage(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci motor image retrieved successfully", image)
}

func (h *MotorImageHandler) Create(c *gin.Context) {
	var req services.MotorImageRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request payload")
		return
	}
	file, _ := c.FormFile("image")

	image, err := h.images.CreateMotorImage(&req, file)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, "Motorinci motor image created successfully", image)
}

func (h *MotorImageHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req services.MotorImageRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request payload")
		return
	}
	file, _ := c.FormFile("image")

	image, err := h.images.UpdateMotorImage(id, &req, file)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci motor image updated successfully", image)
}

func (h *MotorImageHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.images.DeleteMotorImage(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci motor image deleted successfully", nil)
}
