package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ccollicutt/eyecatcher/pkg/dump"
	"github.com/ccollicutt/eyecatcher/pkg/eyecatcher"
	"github.com/ccollicutt/eyecatcher/pkg/output"
)

// Default values for configuration.
const (
	DefaultChunkSize     = dump.DefaultChunkSize
	DefaultMarkerPrefix  = eyecatcher.DefaultPrefix
	DefaultMarkerWidth   = eyecatcher.DefaultWidth
	DefaultMinRun        = eyecatcher.DefaultMinRun
	DefaultSummaryFormat = output.FormatText
)

// Environment variable names.
const (
	EnvChunkSize    = "EYECATCHER_CHUNK_SIZE"
	EnvMarkerPrefix = "EYECATCHER_MARKER_PREFIX"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ChunkSize: DefaultChunkSize,
		Marker: MarkerConfig{
			Prefix: DefaultMarkerPrefix,
			Width:  DefaultMarkerWidth,
		},
		MinRun:        DefaultMinRun,
		SummaryFormat: DefaultSummaryFormat,
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() error {
	if v := os.Getenv(EnvChunkSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: invalid integer %q", EnvChunkSize, v)
		}
		c.ChunkSize = n
	}

	if prefix := os.Getenv(EnvMarkerPrefix); prefix != "" {
		c.Marker.Prefix = prefix
	}

	return nil
}
