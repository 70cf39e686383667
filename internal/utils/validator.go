// internal/utils/validator.go
package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// Six hex digits only; the shorthand #fff form is rejected.
var colorHexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("colorhex", validateColorHex)
	validate.RegisterValidation("username", validateUsername)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateColorHex(fl validator.FieldLevel) bool {
	return colorHexPattern.MatchString(fl.Field().String())
}

func validateUsername(fl validator.FieldLevel) bool {
	username := fl.Field().String()

	// Username should be alphanumeric and underscores, 3-50 characters
	if len(username) < 3 || len(username) > 50 {
		return false
	}

	matched, _ := regexp.MatchString("^[a-zA-Z0-9_]+$", username)
	return matched
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

// GetValidationErrorMap shapes validator errors as field -> messages,
// the form the 422 responses carry.
func GetValidationErrorMap(err error) map[string][]string {
	errorMap := make(map[string][]string)

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			field := strings.ToLower(e.Field())
			errorMap[field] = append(errorMap[field], getValidationMessage(e))
		}
	}

	return errorMap
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "The " + strings.ToLower(e.Field()) + " field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return "The " + strings.ToLower(e.Field()) + " must be at least " + e.Param()
	case "max":
		return "The " + strings.ToLower(e.Field()) + " may not be greater than " + e.Param()
	case "colorhex":
		return "The " + strings.ToLower(e.Field()) + " must be a hex color like #1a2b3c"
	case "username":
		return "Username must be 3-50 characters and contain only letters, numbers, and underscores"
	default:
		return "The " + strings.ToLower(e.Field()) + " field is invalid"
	}
}
