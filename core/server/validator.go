package server

import "github.com/go-playground/validator/v10"

// CustomValidator adapts go-playground/validator to echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

func (v *CustomValidator) Validate(i any) error {
	return v.validator.Struct(i)
}
