package engine

import (
	"runtime"

	"github.com/pkg/errors"

	"github.com/wildfunctions/formula_tree/pkg/expr"
	"github.com/wildfunctions/formula_tree/pkg/parser"
	"github.com/wildfunctions/formula_tree/pkg/pool"
)

// Formats lists the accepted report formats.
var Formats = []string{"text", "json", "latex"}

// Config holds all parameters for a run. Formula, Vars, Evaluate and
// NoSimplify drive Run; Pool, Trees, MaxDepth, Seed and Workers drive Check.
type Config struct {
	Formula    string    `json:"formula,omitempty"`
	Vars       expr.Vars `json:"vars,omitempty"`
	Evaluate   bool      `json:"evaluate"`
	NoSimplify bool      `json:"no_simplify"`
	MaxNesting int       `json:"max_nesting"`
	Format     string    `json:"format"` // "text", "json" or "latex"

	Pool     string `json:"pool"`
	Trees    int    `json:"trees"`
	MaxDepth int    `json:"max_depth"`
	Seed     int64  `json:"seed"`
	Workers  int    `json:"workers"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxNesting: parser.DefaultMaxNesting,
		Format:     "text",
		Pool:       "kitchensink",
		Trees:      1000,
		MaxDepth:   6,
		Seed:       0, // 0 = random
		Workers:    runtime.NumCPU(),
	}
}

// Validate reports the first setting that cannot work.
func (c Config) Validate() error {
	if c.MaxNesting < 0 {
		return errors.Errorf("max nesting must not be negative, got %d", c.MaxNesting)
	}
	if !contains(Formats, c.Format) {
		return errors.Errorf("unknown format: %s (available: %v)", c.Format, Formats)
	}
	if _, err := pool.Get(c.Pool); err != nil {
		return err
	}
	if c.Trees <= 0 {
		return errors.Errorf("trees must be positive, got %d", c.Trees)
	}
	if c.MaxDepth < 1 {
		return errors.Errorf("max depth must be at least 1, got %d", c.MaxDepth)
	}
	// A tree of depth d renders with d-1 levels of parentheses.
	if c.MaxDepth-1 > c.MaxNesting {
		return errors.Errorf("max depth %d renders deeper than the nesting limit %d", c.MaxDepth, c.MaxNesting)
	}
	if c.Workers <= 0 {
		return errors.Errorf("workers must be positive, got %d", c.Workers)
	}
	for name := range c.Vars {
		if !expr.IsVariableName(name) {
			return errors.Errorf("variable name %q is not a single letter", name)
		}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
