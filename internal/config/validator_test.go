package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	huegenerrors "github.com/lmarchand/huegen/pkg/errors"
)

func validConfig() *Config {
	return &Config{
		Name:       "brand",
		Seed:       "#3366FF",
		Saturation: 0.14,
		Compliance: "AA",
		Prefix:     "color",
	}
}

func TestValidateConfigAcceptsValid(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateConfig(validConfig()))
}

func TestValidateConfigNil(t *testing.T) {
	t.Parallel()

	require.Error(t, ValidateConfig(nil))
}

func TestValidateConfigFieldRules(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "missing seed", mutate: func(c *Config) { c.Seed = "" }},
		{name: "malformed seed", mutate: func(c *Config) { c.Seed = "#12" }},
		{name: "saturation above cap", mutate: func(c *Config) { c.Saturation = 0.5 }},
		{name: "negative saturation", mutate: func(c *Config) { c.Saturation = -0.1 }},
		{name: "unknown compliance", mutate: func(c *Config) { c.Compliance = "AAAA" }},
		{name: "uppercase prefix", mutate: func(c *Config) { c.Prefix = "Color" }},
		{name: "tint out of range", mutate: func(c *Config) { c.Tint = 400 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tc.mutate(cfg)

			err := ValidateConfig(cfg)
			require.Error(t, err)

			var validationErr *huegenerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestValidateConfigOverrideRules(t *testing.T) {
	t.Parallel()

	t.Run("accepts reference and hex values", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.Overrides = map[string]string{
			"surface.neutral.surfaceBase": "{seed.black}",
			"light.outline.neutral.default": "{palettes.neutral.700}",
			"dark.text.neutral.primary":     "#EEEEEE",
		}
		require.NoError(t, ValidateConfig(cfg))
	})

	t.Run("rejects non-role key", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.Overrides = map[string]string{"random.key": "{seed.black}"}

		err := ValidateConfig(cfg)
		require.Error(t, err)

		var validationErr *huegenerrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		require.Contains(t, validationErr.Error(), "overrides[")
	})

	t.Run("rejects malformed value", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.Overrides = map[string]string{"surface.neutral.surfaceBase": "blue"}
		require.Error(t, ValidateConfig(cfg))
	})
}
