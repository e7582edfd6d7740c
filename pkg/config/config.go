package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ccollicutt/eyecatcher/pkg/eyecatcher"
	"github.com/ccollicutt/eyecatcher/pkg/output"
)

// Load reads and validates a configuration file. An empty path yields the
// defaults. Environment overrides are applied in both cases.
func Load(_ context.Context, path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.applyEnvironmentOverrides(); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors and compiles the marker.
func Validate(cfg *Config) error {
	if cfg.ChunkSize <= 0 {
		return fmt.Errorf("chunk_size: must be > 0, got %d", cfg.ChunkSize)
	}

	m, err := eyecatcher.NewMarker(cfg.Marker.Prefix, cfg.Marker.Width)
	if err != nil {
		return fmt.Errorf("marker: %w", err)
	}
	cfg.Marker.compiled = m

	if cfg.MinRun < 1 {
		return fmt.Errorf("min_run: must be >= 1, got %d", cfg.MinRun)
	}

	switch cfg.SummaryFormat {
	case output.FormatText, output.FormatJSON:
	case "":
		cfg.SummaryFormat = DefaultSummaryFormat
	default:
		return fmt.Errorf("summary_format: invalid format %q (must be text or json)", cfg.SummaryFormat)
	}

	if cfg.Top < 0 {
		return errors.New("top: must be >= 0")
	}

	return nil
}
