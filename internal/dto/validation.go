package dto

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// DecimalTypeFunc lets numeric tags such as gte=0 run against decimal.Decimal fields.
func DecimalTypeFunc(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// RegisterDecimalType installs DecimalTypeFunc on v.
func RegisterDecimalType(v *validator.Validate) {
	v.RegisterCustomTypeFunc(DecimalTypeFunc, decimal.Decimal{})
}

// NewValidator returns a validator reading the same binding tags gin uses,
// for callers outside the HTTP layer.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	RegisterDecimalType(v)
	return v
}
