package config

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/lmarchand/huegen/internal/color"
	"github.com/lmarchand/huegen/internal/semantic"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	prefixPattern = regexp.MustCompile(`^[a-z0-9.-]+$`)

	// Role paths as they appear in override keys: a theme-agnostic
	// "group.family.name" or the same with a light/dark theme qualifier.
	overrideKeyPattern = regexp.MustCompile(`^((light|dark)\.)?(surface|text|outline)\.(neutral|primary)\.[a-zA-Z]+$`)

	// Override values are either token references or raw hex literals.
	referencePattern = regexp.MustCompile(`^\{[a-zA-Z0-9.-]+\}$`)
)

// validatorInstance configures and returns the shared validator instance
// used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("seed_hex", func(fl validator.FieldLevel) bool {
			_, ok := color.NormalizeHex(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("compliance", func(fl validator.FieldLevel) bool {
			_, ok := semantic.ParseCompliance(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("token_prefix", func(fl validator.FieldLevel) bool {
			return prefixPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the configured validator instance for use outside
// the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// isOverrideKey reports whether an override map key addresses a role path.
func isOverrideKey(key string) bool {
	return overrideKeyPattern.MatchString(key)
}

// isOverrideValue reports whether an override value is a reference or a
// parseable hex literal.
func isOverrideValue(value string) bool {
	if referencePattern.MatchString(value) {
		return true
	}
	_, ok := color.NormalizeHex(value)
	return ok
}
