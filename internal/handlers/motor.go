// internal/handlers/motor.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/motorinci/motorinci-api/internal/services"
	"github.com/motorinci/motorinci-api/internal/utils"
)

type MotorHandler struct {
	motors *services.MotorService
}

func NewMotorHandler(motors *services.MotorService) *MotorHandler {
	return &MotorHandler{motors: motors}
}

func (h *MotorHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	motors, total, err := h.motors.ListMotors(params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.PaginatedResponse(c, "Motorinci motors retrieved successfully", motors, utils.CreatePaginationMeta(total, params))
}

func (h *MotorHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	motor, err := h.motors.GetMotor(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci motor retrieved successfully", motor)
}

func (h *MotorHandler) Create(c *gin.Context) {
	var req services.MotorRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request payload")
		return
	}
	motor, err := h.motors.CreateMotor(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, "Motorinci motor created successfully", motor)
}

func (h *MotorHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req services.MotorRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request payload")
		return
	}
	motor, err := h.motors.UpdateMotor(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci motor updated successfully", motor)
}

func (h *MotorHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.motors.DeleteMotor(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci motor deleted successfully", nil)
}

// Search filters motors on a case-insensitive name fragment.
func (h *MotorHandler) Search(c *gin.Context) {
	search := c.Query("search")
	if search == "" {
		utils.BadRequestResponse(c, "The search parameter is required")
		return
	}
	motors, err := h.motors.SearchMotors(search)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci motors retrieved successfully", motors)
}

// Random returns a random sample, 20 motors unless limit says otherwise.
func (h *MotorHandler) Random(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	motors, err := h.motors.RandomMotors(limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci motors retrieved successfully", motors)
}

// Compare loads two motors side by side.
func (h *MotorHandler) Compare(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	id2, ok := parseIDParam(c, "id2")
	if !ok {
		return
	}

	first, second, err := h.motors.CompareMotors(id, id2)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci motors retrieved successfully", gin.H{
		"motor":  first,
		"motor2": second,
	})
}

// FrontHome aggregates the landing page payload.
func (h *MotorHandler) FrontHome(c *gin.Context) {
	home, err := h.motors.FrontHome()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci home retrieved successfully", home)
}
