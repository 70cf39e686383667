// internal/handlers/auth.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/motorinci/motorinci-api/internal/services"
	"github.com/motorinci/motorinci-api/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login exchanges an email (or username) and password for a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request payload")
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		if err.Error() == "invalid credentials" {
			utils.UnauthorizedResponse(c, "Invalid credentials")
			return
		}
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Login successful", resp)
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required")
		return
	}

	user, err := h.authService.GetUserByID(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "User retrieved successfully", user)
}
