package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fuzzydate/internal/sinks"
	"fuzzydate/pkg/models"

	"gopkg.in/yaml.v3"
)

const ConfigFileName = "config.yaml"

// LoadConfig loads configuration from the standard search paths.
func LoadConfig() (*models.Config, error) {
	// Search for config file in order:
	// 1. Custom config dir (if set)
	// 2. Global config directory
	// 3. Current directory
	configPaths := getConfigSearchPaths()

	for _, configPath := range configPaths {
		if _, err := os.Stat(configPath); err == nil {
			slog.Debug("loading config", "path", configPath)

			return loadConfigFromFile(configPath)
		}
	}

	return nil, fmt.Errorf("no config file found in search paths: %v", configPaths)
}

// LoadConfigOrDefault loads the config file, falling back to the defaults when
// none exists. A file that exists but cannot be read or parsed is an error.
func LoadConfigOrDefault() (*models.Config, error) {
	for _, configPath := range getConfigSearchPaths() {
		if _, err := os.Stat(configPath); err == nil {
			slog.Debug("loading config", "path", configPath)

			cfg, err := loadConfigFromFile(configPath)
			if err != nil {
				return nil, err
			}

			applyDefaults(cfg)

			return cfg, nil
		}
	}

	slog.Debug("no config file found, using defaults")

	return GetDefaultConfig(), nil
}

// SaveConfig saves configuration to the appropriate location and returns the
// path written.
func SaveConfig(cfg *models.Config) (string, error) {
	configPath, err := getConfigFilePath()
	if err != nil {
		return "", fmt.Errorf("failed to get config file path: %w", err)
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configPath, nil
}

// GetDefaultConfig returns the default configuration.
func GetDefaultConfig() *models.Config {
	return &models.Config{
		Format:         time.RFC3339,
		InputTimezone:  "", // time.Local
		OutputTimezone: "",
		WeekStart:      "monday",
		Batch: models.BatchConfig{
			Workers:   0, // GOMAXPROCS
			CacheSize: 256,
			Output:    "text",
		},
	}
}

// CreateDefaultConfig creates and saves a default configuration.
func CreateDefaultConfig() (string, error) {
	return SaveConfig(GetDefaultConfig())
}

// applyDefaults fills fields a partial config file left empty.
func applyDefaults(cfg *models.Config) {
	defaults := GetDefaultConfig()

	if cfg.Format == "" {
		cfg.Format = defaults.Format
	}

	if cfg.WeekStart == "" {
		cfg.WeekStart = defaults.WeekStart
	}

	if cfg.Batch.Output == "" {
		cfg.Batch.Output = defaults.Batch.Output
	}
}

// getConfigSearchPaths returns the list of paths to search for config files.
func getConfigSearchPaths() []string {
	var paths []string

	// Custom config dir (if set via --config-dir flag)
	if customConfigDir != "" {
		paths = append(paths, filepath.Join(customConfigDir, ConfigFileName))
	}

	// Global config directory
	if globalConfigDir, err := GetConfigDir(); err == nil {
		paths = append(paths, filepath.Join(globalConfigDir, ConfigFileName))
	}

	// Current directory
	paths = append(paths, ConfigFileName)

	return paths
}

// getConfigFilePath returns the path where config should be saved.
func getConfigFilePath() (string, error) {
	if customConfigDir != "" {
		return filepath.Join(customConfigDir, ConfigFileName), nil
	}

	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, ConfigFileName), nil
}

// loadConfigFromFile loads configuration from a specific file.
func loadConfigFromFile(configPath string) (*models.Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg models.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return &cfg, nil
}

// ValidateConfig checks every field that is consulted at runtime.
func ValidateConfig(cfg *models.Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	if strings.TrimSpace(cfg.Format) == "" {
		return fmt.Errorf("format is required")
	}

	if _, err := LoadLocation(cfg.InputTimezone); err != nil {
		return fmt.Errorf("input_timezone: %w", err)
	}

	if _, err := LoadLocation(cfg.OutputTimezone); err != nil {
		return fmt.Errorf("output_timezone: %w", err)
	}

	if _, err := ParseWeekday(cfg.WeekStart); err != nil {
		return fmt.Errorf("week_start: %w", err)
	}

	if err := validateBatchConfig(&cfg.Batch); err != nil {
		return fmt.Errorf("batch configuration error: %w", err)
	}

	return nil
}

// validateBatchConfig validates the batch section.
func validateBatchConfig(batch *models.BatchConfig) error {
	if batch.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", batch.Workers)
	}

	if batch.CacheSize < 0 {
		return fmt.Errorf("cache_size must not be negative, got %d", batch.CacheSize)
	}

	if _, err := sinks.NewSink(batch.Output, nil, sinks.Options{}); err != nil {
		return err
	}

	return nil
}

// LoadLocation resolves an IANA zone name. Empty and "local" mean time.Local.
func LoadLocation(name string) (*time.Location, error) {
	switch strings.ToLower(name) {
	case "", "local":
		return time.Local, nil
	case "utc":
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone '%s': %w", name, err)
	}

	return loc, nil
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday parses a full weekday name. Empty means Monday.
func ParseWeekday(name string) (time.Weekday, error) {
	if name == "" {
		return time.Monday, nil
	}

	day, ok := weekdays[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown weekday '%s'", name)
	}

	return day, nil
}
