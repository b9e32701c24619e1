package validator

import (
	"fmt"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const (
	ErrRequired       = "is required"
	ErrMinValue       = "must be at least %s"
	ErrMaxValue       = "must be at most %s"
	ErrMaxLength      = "must be at most %s characters long"
	ErrSearchTerm     = "must not contain control characters"
	ErrDefaultInvalid = "is invalid"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("search_term", validateSearchTerm)

	return validator
}

func validateSearchTerm(fl validator.FieldLevel) bool {
	for _, ch := range fl.Field().String() {
		if unicode.IsControl(ch) {
			return false
		}
	}

	return true
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "min":
		return fmt.Sprintf(ErrMinValue, err.Param())
	case "max":
		if err.Kind().String() == "string" {
			return fmt.Sprintf(ErrMaxLength, err.Param())
		}
		return fmt.Sprintf(ErrMaxValue, err.Param())
	case "search_term":
		return ErrSearchTerm
	default:
		return ErrDefaultInvalid
	}
}
