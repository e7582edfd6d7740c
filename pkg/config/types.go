// Package config provides configuration loading and validation for eyecatcher.
package config

import "github.com/ccollicutt/eyecatcher/pkg/eyecatcher"

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// ChunkSize is the number of bytes read from a dump per read call.
	ChunkSize int `yaml:"chunk_size"`

	// Marker defines what qualifies a printable run as an eyecatcher.
	Marker MarkerConfig `yaml:"marker"`

	// MinRun is the minimum length of a printable run.
	MinRun int `yaml:"min_run"`

	// SummaryFormat is the summarizer output format (text or json).
	SummaryFormat string `yaml:"summary_format"`

	// Top limits the summary to the most frequent entries. Zero means all.
	Top int `yaml:"top,omitempty"`
}

// MarkerConfig defines the eyecatcher marker.
type MarkerConfig struct {
	// Prefix is the literal that starts a marker, e.g. ">BIP".
	Prefix string `yaml:"prefix"`

	// Width is the number of word characters required after Prefix.
	Width int `yaml:"width"`

	// compiled is populated during validation.
	compiled eyecatcher.Marker
}

// Compiled returns the marker built during validation.
func (m *MarkerConfig) Compiled() eyecatcher.Marker {
	return m.compiled
}
