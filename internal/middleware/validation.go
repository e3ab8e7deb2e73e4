package middleware

import (
	"github.com/go-playground/validator/v10"
	"github.com/tolgaakgoz/attendly/internal/app/models/dto"
)

var validate = validator.New()

// ValidateStruct runs validator tags over an already-bound request body
// and returns a field-level error detail, or nil when the body is valid.
func ValidateStruct(obj interface{}) *dto.ErrorDetail {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
	}

	first := validationErrors[0]
	return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, formatValidationError(first)).
		WithField(first.Field())
}

func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
