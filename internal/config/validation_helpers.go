package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	floralerrors "github.com/alexisbeaulieu97/floralqr/pkg/errors"
)

var camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// ValidateConfig performs schema validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return floralerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return floralerrors.NewValidationError(field, msg, err)
	}

	return floralerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName turns Config.Background.Images[0].Tint into
// background.images[0].tint to match the keys users write.
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(camelBoundary.ReplaceAllString(part, "${1}_${2}")))
	}
	return strings.Join(lowered, ".")
}
