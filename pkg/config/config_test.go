package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ccollicutt/eyecatcher/pkg/eyecatcher"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	content := `
chunk_size: 4096
marker:
  prefix: "AMQ"
  width: 4
min_run: 6
summary_format: json
top: 20
`
	path := writeTempFile(t, "config.yaml", content)
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ChunkSize != 4096 {
		t.Errorf("ChunkSize = %d, want 4096", cfg.ChunkSize)
	}
	if cfg.Marker.Prefix != "AMQ" {
		t.Errorf("Marker.Prefix = %q, want %q", cfg.Marker.Prefix, "AMQ")
	}
	if cfg.MinRun != 6 {
		t.Errorf("MinRun = %d, want 6", cfg.MinRun)
	}
	if cfg.SummaryFormat != "json" {
		t.Errorf("SummaryFormat = %q, want json", cfg.SummaryFormat)
	}
	if cfg.Top != 20 {
		t.Errorf("Top = %d, want 20", cfg.Top)
	}
	if !cfg.Marker.Compiled().Match([]byte("AMQ9999")) {
		t.Error("compiled marker does not match AMQ9999")
	}
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	path := writeTempFile(t, "config.yaml", "min_run: 8\n")
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ChunkSize != DefaultChunkSize {
		t.Errorf("ChunkSize = %d, want default %d", cfg.ChunkSize, DefaultChunkSize)
	}
	if cfg.Marker.Prefix != ">BIP" || cfg.Marker.Width != 4 {
		t.Errorf("Marker = %+v, want >BIP/4", cfg.Marker)
	}
	if cfg.MinRun != 8 {
		t.Errorf("MinRun = %d, want 8", cfg.MinRun)
	}
}

func TestLoad_NoPath(t *testing.T) {
	cfg, err := Load(context.Background(), "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ChunkSize != 8*1024*1024 {
		t.Errorf("ChunkSize = %d, want 8388608", cfg.ChunkSize)
	}
	if cfg.SummaryFormat != "text" {
		t.Errorf("SummaryFormat = %q, want text", cfg.SummaryFormat)
	}
	if !cfg.Marker.Compiled().Match([]byte(">BIP1234")) {
		t.Error("default marker does not match >BIP1234")
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(context.Background(), "/nonexistent/config.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeTempFile(t, "invalid.yaml", `invalid: yaml: content: [`)
	_, err := Load(context.Background(), path)
	if err == nil {
		t.Error("Load() expected error for invalid YAML")
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvChunkSize, "16")
	t.Setenv(EnvMarkerPrefix, "AMQ")

	path := writeTempFile(t, "config.yaml", "chunk_size: 1024\n")
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ChunkSize != 16 {
		t.Errorf("ChunkSize = %d, want 16 from environment", cfg.ChunkSize)
	}
	if cfg.Marker.Compiled().Prefix() != "AMQ" {
		t.Errorf("Marker prefix = %q, want AMQ from environment", cfg.Marker.Compiled().Prefix())
	}
}

func TestLoad_InvalidEnvironment(t *testing.T) {
	t.Setenv(EnvChunkSize, "lots")

	_, err := Load(context.Background(), "")
	if err == nil || !strings.Contains(err.Error(), EnvChunkSize) {
		t.Errorf("Load() error = %v, want mention of %s", err, EnvChunkSize)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"zero chunk size", func(c *Config) { c.ChunkSize = 0 }, "chunk_size"},
		{"negative chunk size", func(c *Config) { c.ChunkSize = -1 }, "chunk_size"},
		{"empty prefix", func(c *Config) { c.Marker.Prefix = "" }, "marker"},
		{"zero width", func(c *Config) { c.Marker.Width = 0 }, "marker"},
		{"zero min run", func(c *Config) { c.MinRun = 0 }, "min_run"},
		{"bad format", func(c *Config) { c.SummaryFormat = "xml" }, "summary_format"},
		{"empty format defaults", func(c *Config) { c.SummaryFormat = "" }, ""},
		{"negative top", func(c *Config) { c.Top = -3 }, "top"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_MarkerErrorIsMatchable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Marker.Width = -1

	err := Validate(cfg)
	if !errors.Is(err, eyecatcher.ErrInvalidMarker) {
		t.Errorf("Validate() error = %v, want ErrInvalidMarker", err)
	}
}

func TestValidate_EmptyFormatDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SummaryFormat = ""
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.SummaryFormat != DefaultSummaryFormat {
		t.Errorf("SummaryFormat = %q, want %q", cfg.SummaryFormat, DefaultSummaryFormat)
	}
}
