// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/matcalc/calc"
	"github.com/katalvlaran/matcalc/matfile"
)

// DefaultScalarPrecision is the significant digits used for scalar results.
const DefaultScalarPrecision = 10

// maxDigits bounds every precision setting; more digits carry no float64 information.
const maxDigits = 17

// Config is the optional YAML configuration selected with --config.
// Keys absent from the file keep their defaults.
type Config struct {
	MaxRowsCols     int  `yaml:"max_rows_cols"`
	MaxLineLength   int  `yaml:"max_line_length"`
	Precision       int  `yaml:"precision"`
	ScalarPrecision int  `yaml:"scalar_precision"`
	AllowNonFinite  bool `yaml:"allow_non_finite"`
}

// DefaultConfig mirrors the matfile defaults.
func DefaultConfig() Config {
	return Config{
		MaxRowsCols:     matfile.DefaultMaxRowsCols,
		MaxLineLength:   matfile.DefaultMaxLineLength,
		Precision:       matfile.DefaultPrecision,
		ScalarPrecision: DefaultScalarPrecision,
		AllowNonFinite:  matfile.DefaultAllowNonFinite,
	}
}

// LoadConfig reads path on top of DefaultConfig. Unknown keys are rejected.
// Every failure is an argument error: the user asked for a configuration we cannot honor.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("%w: config: %w", calc.ErrArguments, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: config %s: %w", calc.ErrArguments, path, err)
	}
	if err = cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%w: config %s: %w", calc.ErrArguments, path, err)
	}

	klog.V(1).InfoS("Loaded config", "file", path, "config", cfg)

	return cfg, nil
}

// Validate checks every field against the ranges the matfile options accept.
func (c Config) Validate() error {
	switch {
	case c.MaxRowsCols < 1 || c.MaxRowsCols > matfile.DefaultMaxRowsCols:
		return fmt.Errorf("max_rows_cols must be in [1, %d], got %d", matfile.DefaultMaxRowsCols, c.MaxRowsCols)
	case c.MaxLineLength < 1:
		return fmt.Errorf("max_line_length must be positive, got %d", c.MaxLineLength)
	case c.Precision < 1 || c.Precision > maxDigits:
		return fmt.Errorf("precision must be in [1, %d], got %d", maxDigits, c.Precision)
	case c.ScalarPrecision < 1 || c.ScalarPrecision > maxDigits:
		return fmt.Errorf("scalar_precision must be in [1, %d], got %d", maxDigits, c.ScalarPrecision)
	}

	return nil
}

// MatfileOptions converts a validated Config into reader and writer options.
func (c Config) MatfileOptions() []matfile.Option {
	opts := []matfile.Option{
		matfile.WithMaxRowsCols(c.MaxRowsCols),
		matfile.WithMaxLineLength(c.MaxLineLength),
		matfile.WithPrecision(c.Precision),
	}
	if c.AllowNonFinite {
		opts = append(opts, matfile.WithNonFinite())
	}

	return opts
}
