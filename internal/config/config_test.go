package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/faizmokh/pushups/internal/files"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PUSHUPS_TARGET", "PUSHUPS_DATA", "PUSHUPS_LOG_LEVEL", "PUSHUPS_LOG_FILE"} {
		t.Setenv(key, "")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Target != DefaultTarget {
		t.Fatalf("Target = %d, want %d", cfg.Target, DefaultTarget)
	}
	if cfg.DataPath != files.DefaultDataFile {
		t.Fatalf("DataPath = %q, want %q", cfg.DataPath, files.DefaultDataFile)
	}
	if cfg.HoursInDay != DefaultHoursInDay {
		t.Fatalf("HoursInDay = %d, want %d", cfg.HoursInDay, DefaultHoursInDay)
	}
	if cfg.DateFormat != DateFormatRFC2822 || cfg.ProjectionRounding != RoundingFloor {
		t.Fatalf("unexpected defaults: %#v", cfg)
	}
}

func TestLoadReadsYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := strings.TrimLeft(`
target: 5000
data_path: ~/pushups.json
date_format: rfc3339
projection_rounding: ceil
log:
  level: debug
  json: true
`, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Target != 5000 {
		t.Fatalf("Target = %d, want 5000", cfg.Target)
	}
	if cfg.DataPath != "~/pushups.json" {
		t.Fatalf("DataPath = %q, want %q", cfg.DataPath, "~/pushups.json")
	}
	if cfg.HoursInDay != DefaultHoursInDay {
		t.Fatalf("HoursInDay = %d, want default %d", cfg.HoursInDay, DefaultHoursInDay)
	}
	if cfg.DateFormat != DateFormatRFC3339 {
		t.Fatalf("DateFormat = %q, want %q", cfg.DateFormat, DateFormatRFC3339)
	}
	if cfg.ProjectionRounding != RoundingCeil {
		t.Fatalf("ProjectionRounding = %q, want %q", cfg.ProjectionRounding, RoundingCeil)
	}
	if cfg.Log.Level != "debug" || !cfg.Log.JSON {
		t.Fatalf("Log = %#v, want debug/json", cfg.Log)
	}
}

func TestLoadNormalizesCase(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "date_format: RFC3339\nprojection_rounding: \" CEIL \"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DateFormat != DateFormatRFC3339 {
		t.Fatalf("DateFormat = %q, want %q", cfg.DateFormat, DateFormatRFC3339)
	}
	if cfg.ProjectionRounding != RoundingCeil {
		t.Fatalf("ProjectionRounding = %q, want %q", cfg.ProjectionRounding, RoundingCeil)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PUSHUPS_TARGET", "2500")
	t.Setenv("PUSHUPS_DATA", "/tmp/other.json")
	t.Setenv("PUSHUPS_LOG_LEVEL", "info")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Target != 2500 {
		t.Fatalf("Target = %d, want 2500", cfg.Target)
	}
	if cfg.DataPath != "/tmp/other.json" {
		t.Fatalf("DataPath = %q, want %q", cfg.DataPath, "/tmp/other.json")
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("Log.Level = %q, want info", cfg.Log.Level)
	}
}

func TestLoadRejectsInvalidTargetEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PUSHUPS_TARGET", "lots")

	if _, err := Load(""); err == nil {
		t.Fatalf("Load expected error, got nil")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("target: [oops"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "parsing config file") {
		t.Fatalf("Load error = %v, want parsing error", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero target", func(c *Config) { c.Target = 0 }, "target"},
		{"zero hours", func(c *Config) { c.HoursInDay = 0 }, "hours_in_day"},
		{"empty path", func(c *Config) { c.DataPath = "" }, "data_path"},
		{"bad format", func(c *Config) { c.DateFormat = "unix" }, "date_format"},
		{"bad rounding", func(c *Config) { c.ProjectionRounding = "nearest" }, "projection_rounding"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Validate() = %v, want error mentioning %q", err, tt.want)
			}
		})
	}

	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, want nil", err)
	}
}
