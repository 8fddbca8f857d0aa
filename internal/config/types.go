package config

import (
	"github.com/lmarchand/huegen/internal/semantic"
)

// Config is the declarative description of one token generation pass.
type Config struct {
	Version     string  `yaml:"version,omitempty"`
	Name        string  `yaml:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description string  `yaml:"description,omitempty"`
	Seed        string  `yaml:"seed" validate:"required,seed_hex"`
	Saturation  float64 `yaml:"saturation,omitempty" validate:"min=0,max=0.3"`
	Compliance  string  `yaml:"compliance,omitempty" validate:"omitempty,compliance"`
	Tint        float64 `yaml:"tint,omitempty" validate:"min=-180,max=180"`
	Prefix      string  `yaml:"prefix,omitempty" validate:"omitempty,token_prefix"`

	// Overrides replace derived references per role path. Values must be
	// token references or hex literals; they are applied verbatim and may
	// break the compliance target.
	Overrides map[string]string `yaml:"overrides,omitempty"`
}

// ComplianceMode translates the configured compliance string, defaulting
// to AA when the field is omitted.
func (c *Config) ComplianceMode() semantic.Compliance {
	mode, ok := semantic.ParseCompliance(c.Compliance)
	if !ok {
		return semantic.ComplianceAA
	}
	return mode
}
