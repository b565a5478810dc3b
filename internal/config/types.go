// Package config provides configuration management for the geomgrid CLI.
//
// Configuration is layered with koanf. Precedence (highest to lowest):
// flags > environment variables > config file > defaults.
package config

import (
	"fmt"

	"github.com/leapstack-labs/geomgrid/pkg/geom"
)

// Default configuration values.
const (
	DefaultPrecision = "floating"
	DefaultStateFile = ".geomgrid/models.db"
	DefaultOutput    = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)

// Config holds all CLI configuration options.
type Config struct {
	// Precision selects the model regime: floating, floating-single or fixed.
	Precision string `koanf:"precision"`
	// Scale is the fixed-model scale factor. Negative values request an
	// explicit grid size. Ignored for floating regimes; 0 means the fixed
	// default of scale 1.
	Scale        float64 `koanf:"scale"`
	StatePath    string  `koanf:"state_path"`
	OutputFormat string  `koanf:"output"`
	Verbose      bool    `koanf:"verbose"`

	// ProjectRoot is the directory the config was anchored to. Not read
	// from the file itself.
	ProjectRoot string `koanf:"-"`
}

// PrecisionModel builds the effective precision model from the config.
// This is the single place a zero-scale contract violation or an unknown
// precision name surfaces to the CLI.
func (c *Config) PrecisionModel() (geom.PrecisionModel, error) {
	typ, ok := geom.ParseType(c.Precision)
	if !ok {
		return geom.PrecisionModel{}, fmt.Errorf("unknown precision %q (want floating, floating-single or fixed)", c.Precision)
	}
	if typ != geom.TypeFixed {
		return geom.NewTypedPrecisionModel(typ), nil
	}
	if c.Scale == 0 {
		// Fixed with no scale configured defaults to scale 1.
		return geom.NewTypedPrecisionModel(geom.TypeFixed), nil
	}
	return geom.NewFixedPrecisionModel(c.Scale)
}
