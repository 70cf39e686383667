// internal/handlers/brand.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/motorinci/motorinci-api/internal/services"
	"github.com/motorinci/motorinci-api/internal/utils"
)

type BrandHandler struct {
	brands *services.BrandService
}

func NewBrandHandler(brands *services.BrandService) *BrandHandler {
	return &BrandHandler{brands: brands}
}

func (h *BrandHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	brands, total, err := h.brands.ListBrands(params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.PaginatedResponse(c, "Motorinci brands retrieved successfully", brands, utils.CreatePaginationMeta(total, params))
}

func (h *BrandHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	brand, err := h.brands.GetBrand(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci brand retrieved successfully", brand)
}

func (h *BrandHandler) Create(c *gin.Context) {
	var req services.BrandRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request payload")
		return
	}
	icon, _ := c.FormFile("icon")
	image, _ := c.FormFile("image")

	brand, err := h.brands.CreateBrand(&req, icon, image)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, "Motorinci brand created successfully", brand)
}

func (h *BrandHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req services.BrandRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request payload")
		return
	}
	icon, _ := c.FormFile("icon")
	image, _ := c.FormFile("image")

	brand, err := h.brands.UpdateBrand(id, &req, icon, image)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci brand updated successfully", brand)
}

func (h *BrandHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.brands.DeleteBrand(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci brand deleted successfully", nil)
}

// Motors lists the catalog of one brand.
func (h *BrandHandler) Motors(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	motors, err := h.brands.MotorsByBrand(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci motors retrieved successfully", motors)
}
