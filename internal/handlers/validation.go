package handlers

import (
	"errors"

	"github.com/SscSPs/cashflow_dashboard/internal/dto"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators teaches gin's validator about decimal.Decimal fields.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	dto.RegisterDecimalType(v)
	return nil
}
