package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/faizmokh/pushups/internal/files"
	"github.com/faizmokh/pushups/internal/stats"
)

const (
	DefaultTarget     = stats.DefaultTarget
	DefaultHoursInDay = stats.DefaultHoursInDay

	DateFormatRFC2822 = "rfc2822"
	DateFormatRFC3339 = "rfc3339"

	RoundingFloor = "floor"
	RoundingCeil  = "ceil"
)

// Config is the merged result of defaults, the YAML file and environment
// overrides. Command-line flags are applied on top by the cli package.
type Config struct {
	Target             uint      `yaml:"target"`
	DataPath           string    `yaml:"data_path"`
	HoursInDay         uint      `yaml:"hours_in_day"`
	DateFormat         string    `yaml:"date_format"`
	ProjectionRounding string    `yaml:"projection_rounding"`
	Log                LogConfig `yaml:"log"`
}

// LogConfig controls the logrus output. An empty File logs to stderr.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
	JSON  bool   `yaml:"json"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Target:             DefaultTarget,
		DataPath:           files.DefaultDataFile,
		HoursInDay:         DefaultHoursInDay,
		DateFormat:         DateFormatRFC2822,
		ProjectionRounding: RoundingFloor,
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load reads config from a YAML file on top of the defaults, then applies
// environment variable overrides:
//
//	PUSHUPS_TARGET, PUSHUPS_DATA, PUSHUPS_LOG_LEVEL, PUSHUPS_LOG_FILE
//
// A missing file is not an error. An empty path skips the file entirely.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file: %w", err)
			}
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	cfg.DateFormat = strings.ToLower(strings.TrimSpace(cfg.DateFormat))
	cfg.ProjectionRounding = strings.ToLower(strings.TrimSpace(cfg.ProjectionRounding))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv("PUSHUPS_TARGET")); v != "" {
		target, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return fmt.Errorf("PUSHUPS_TARGET: %w", err)
		}
		cfg.Target = uint(target)
	}
	if v := strings.TrimSpace(os.Getenv("PUSHUPS_DATA")); v != "" {
		cfg.DataPath = v
	}
	if v := strings.TrimSpace(os.Getenv("PUSHUPS_LOG_LEVEL")); v != "" {
		cfg.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("PUSHUPS_LOG_FILE")); v != "" {
		cfg.Log.File = v
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Target == 0 {
		return fmt.Errorf("target must be greater than zero")
	}
	if c.HoursInDay == 0 {
		return fmt.Errorf("hours_in_day must be greater than zero")
	}
	if c.DataPath == "" {
		return fmt.Errorf("data_path is required")
	}
	switch strings.ToLower(c.DateFormat) {
	case DateFormatRFC2822, DateFormatRFC3339:
	default:
		return fmt.Errorf("unknown date_format %q (expected %s|%s)", c.DateFormat, DateFormatRFC2822, DateFormatRFC3339)
	}
	switch strings.ToLower(c.ProjectionRounding) {
	case RoundingFloor, RoundingCeil:
	default:
		return fmt.Errorf("unknown projection_rounding %q (expected %s|%s)", c.ProjectionRounding, RoundingFloor, RoundingCeil)
	}
	return nil
}
