package files

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultDirName defines the folder under the user's home directory that
	// holds the config file and, optionally, logs.
	DefaultDirName = ".pushups"
	// DefaultDataFile is where records are stored when nothing else is configured.
	DefaultDataFile = "./pushups_data.json"
	// ConfigFileName is looked up inside the home directory.
	ConfigFileName = "config.yaml"
)

// ResolveHome determines the pushups home directory, defaulting to ~/.pushups.
// The location can be overridden by exporting PUSHUPS_HOME.
func ResolveHome() (string, error) {
	if override, ok := os.LookupEnv("PUSHUPS_HOME"); ok {
		override = strings.TrimSpace(override)
		if override != "" {
			return NormalizePath(override)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDirName), nil
}

// ResolveConfigPath returns the default config file location inside the home directory.
func ResolveConfigPath() (string, error) {
	home, err := ResolveHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ConfigFileName), nil
}

// NormalizePath expands a leading ~ to the user's home directory.
func NormalizePath(input string) (string, error) {
	if strings.HasPrefix(input, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		input = filepath.Join(home, strings.TrimPrefix(input, "~"))
	}
	return input, nil
}
