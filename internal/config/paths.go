package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const appName = "fuzzydate"

var customConfigDir string

// SetCustomConfigDir overrides the config directory (--config-dir).
func SetCustomConfigDir(dir string) {
	customConfigDir = dir
}

// GetConfigDir returns the per-user config directory, honouring
// $XDG_CONFIG_HOME.
func GetConfigDir() (string, error) {
	if customConfigDir != "" {
		return customConfigDir, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}

	return filepath.Join(base, appName), nil
}
