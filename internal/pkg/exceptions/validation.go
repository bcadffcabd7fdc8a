package exceptions

import (
	"carexpert-service/internal/pkg/constvars"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatFirstValidationError converts the first field error from validator/v10
// into a short client-facing sentence.
func FormatFirstValidationError(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}

	fieldErr := validationErrors[0]
	field := strings.ToLower(fieldErr.Field())

	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("Field %s is required", field)
	case "email":
		return fmt.Sprintf("Field %s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("Field %s must be at least %s characters", field, fieldErr.Param())
	case "max":
		return fmt.Sprintf("Field %s must be at most %s characters", field, fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("Field %s must be one of: %s", field, fieldErr.Param())
	case "password":
		return "Password must be at least 8 characters with one uppercase letter and one special character"
	case "user_type":
		return "Field role must be either patient or doctor"
	default:
		return fmt.Sprintf("Field %s is invalid", field)
	}
}
