// Package generate runs the full derivation pipeline: seed to scales to
// role assignment to token tree. Each run is a pure, synchronous function
// of its request; a fresh contrast cache is created per pass so stale
// memoization can never leak between seeds.
package generate

import (
	"errors"

	"github.com/lmarchand/huegen/internal/config"
	"github.com/lmarchand/huegen/internal/contrast"
	"github.com/lmarchand/huegen/internal/scale"
	"github.com/lmarchand/huegen/internal/semantic"
	"github.com/lmarchand/huegen/internal/tokens"
	huegenerrors "github.com/lmarchand/huegen/pkg/errors"
)

// Request describes one generation pass.
type Request struct {
	Seed       string
	Saturation float64
	Tint       float64
	Compliance semantic.Compliance
	Overrides  map[string]string
	Prefix     string
}

// FromConfig translates a parsed config file into a Request.
func FromConfig(cfg *config.Config) Request {
	if cfg == nil {
		return Request{}
	}
	return Request{
		Seed:       cfg.Seed,
		Saturation: cfg.Saturation,
		Tint:       cfg.Tint,
		Compliance: cfg.ComplianceMode(),
		Overrides:  cfg.Overrides,
		Prefix:     cfg.Prefix,
	}
}

// Result carries every intermediate product of a pass alongside the final
// tree, so callers like the inspector and the preview TUI can render
// scales and contrast data without re-deriving them.
type Result struct {
	Neutral *scale.Scale
	Primary *scale.Scale
	Light   semantic.Assignment
	Tree    *tokens.Tree
	Prefix  string
	Mode    semantic.Compliance
}

// Run executes the pipeline. Invalid input surfaces as a typed error, not
// a panic; partial results are never returned.
func Run(req Request) (*Result, error) {
	neutral, ok := scale.Neutral(req.Seed, req.Saturation, req.Tint)
	if !ok {
		return nil, huegenerrors.NewGenerateError("scale", errors.New("seed is not a parseable hex color"))
	}
	primary, ok := scale.Primary(req.Seed, req.Tint)
	if !ok {
		return nil, huegenerrors.NewGenerateError("scale", errors.New("seed is not a parseable hex color"))
	}

	light, ok := semantic.Resolve(neutral, primary, req.Compliance, contrast.NewCache(0))
	if !ok {
		return nil, huegenerrors.NewGenerateError("resolve", errors.New("scales are malformed"))
	}

	tree, err := tokens.Build(tokens.Input{
		Neutral:   neutral,
		Primary:   primary,
		Light:     light,
		Overrides: req.Overrides,
	})
	if err != nil {
		return nil, huegenerrors.NewGenerateError("build", err)
	}

	return &Result{
		Neutral: neutral,
		Primary: primary,
		Light:   light,
		Tree:    tree,
		Prefix:  tokens.SanitizePrefix(req.Prefix),
		Mode:    req.Compliance,
	}, nil
}
