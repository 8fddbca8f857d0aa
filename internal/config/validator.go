package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	huegenerrors "github.com/lmarchand/huegen/pkg/errors"
)

// ValidateConfig runs struct-level tag validation plus the override rules
// tags cannot express.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return huegenerrors.NewValidationError("config", "configuration is empty", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	for key, value := range cfg.Overrides {
		if !isOverrideKey(key) {
			return huegenerrors.NewValidationError(
				fieldForOverride(key),
				fmt.Sprintf("%q is not a role path (expected e.g. surface.neutral.surfaceBase)", key),
				nil,
			)
		}
		if !isOverrideValue(value) {
			return huegenerrors.NewValidationError(
				fieldForOverride(key),
				fmt.Sprintf("%q is neither a token reference nor a hex color", value),
				nil,
			)
		}
	}

	return nil
}

// convertValidationError normalizes validator errors into huegen
// validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return huegenerrors.NewValidationError(field, msg, err)
	}

	return huegenerrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForOverride(key string) string {
	return fmt.Sprintf("overrides[%s]", key)
}
