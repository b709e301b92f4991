package api

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator plugs go-playground/validator into Echo.
type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(),
	}
}

// Validate returns the raw validator error; the response package knows
// how to flatten validator.ValidationErrors into field messages.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
