package sample

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

var (
	// ErrInvalidCurve is wrapped by every error about a single curve definition.
	ErrInvalidCurve = errors.New("invalid curve")

	// ErrInvalidConfig is wrapped by errors about settings shared by all curves.
	ErrInvalidConfig = errors.New("invalid config")
)

// Config describes a set of curves and how densely to sample them.
type Config struct {
	// Samples is the number of weights in [0, 1], both ends included.
	Samples int     `yaml:"samples"`
	Curves  []Curve `yaml:"curves"`
}

// Load reads the embedded defaults and overlays the file at path on top.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	var data []byte

	if path != "" {
		var err error

		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	return Parse(data)
}

// Parse overlays data on the embedded defaults and validates the result.
// Fields missing from data keep their default value. A curve list in data
// replaces the default list.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if len(data) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)

		// a document with nothing but comments decodes to io.EOF
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Samples < 2 {
		return fmt.Errorf("samples: need at least 2, got %d: %w", cfg.Samples, ErrInvalidConfig)
	}

	seen := map[string]bool{}

	for idx := range cfg.Curves {
		curve := &cfg.Curves[idx]

		if err := curve.validate(); err != nil {
			return err
		}

		if seen[curve.Name] {
			return fmt.Errorf("curve %q: duplicate name: %w", curve.Name, ErrInvalidCurve)
		}

		seen[curve.Name] = true
	}

	return nil
}
