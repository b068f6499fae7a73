package config

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/floralqr/internal/qrcode"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("hex_color", func(fl validator.FieldLevel) bool {
			_, err := qrcode.ParseHexColor(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("size_preset", func(fl validator.FieldLevel) bool {
			_, err := qrcode.ParseSizePreset(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

