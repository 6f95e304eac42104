package handlers

import (
	"github.com/go-playground/validator/v10"
)

// PayloadValidator menyambungkan go-playground/validator ke echo.Validator.
type PayloadValidator struct {
	v *validator.Validate
}

func NewPayloadValidator() *PayloadValidator {
	return &PayloadValidator{v: validator.New()}
}

func (pv *PayloadValidator) Validate(i any) error {
	return pv.v.Struct(i)
}
