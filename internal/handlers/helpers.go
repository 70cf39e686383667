// internal/handlers/helpers.go
package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/motorinci/motorinci-api/internal/services"
	"github.com/motorinci/motorinci-api/internal/utils"
)

// respondServiceError maps service errors onto HTTP responses: validation
// failures become 422 field maps, missing records become 404, everything
// else a generic 500.
func respondServiceError(c *gin.Context, err error) {
	var failure *services.ValidationFailure
	if errors.As(err, &failure) {
		utils.ValidationErrorResponse(c, failure.Errors)
		return
	}
	if strings.Contains(err.Error(), "not found") {
		utils.NotFoundResponse(c, err.Error())
		return
	}

	logrus.WithError(err).Error("Request processing failed")
	utils.InternalErrorResponse(c, "Internal server error")
}

// parseIDParam reads a positive integer route parameter, replying 400 itself
// when the value is malformed.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.BadRequestResponse(c, "Invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}
