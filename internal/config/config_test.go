package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fuzzydate/pkg/models"
)

func useConfigDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	SetCustomConfigDir(dir)
	t.Cleanup(func() { SetCustomConfigDir("") })

	return dir
}

func TestSaveAndLoadConfig(t *testing.T) {
	dir := useConfigDir(t)

	cfg := GetDefaultConfig()
	cfg.OutputTimezone = "UTC"
	cfg.Batch.Workers = 4

	path, err := SaveConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ConfigFileName), path)

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadConfigOrDefault(t *testing.T) {
	t.Run("no file", func(t *testing.T) {
		useConfigDir(t)
		t.Chdir(t.TempDir())
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())

		cfg, err := LoadConfigOrDefault()
		require.NoError(t, err)
		assert.Equal(t, GetDefaultConfig(), cfg)
	})

	t.Run("partial file", func(t *testing.T) {
		dir := useConfigDir(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("week_start: sunday\nbatch:\n  workers: 2\n"), 0644))

		cfg, err := LoadConfigOrDefault()
		require.NoError(t, err)
		assert.Equal(t, "sunday", cfg.WeekStart)
		assert.Equal(t, 2, cfg.Batch.Workers)
		assert.Equal(t, time.RFC3339, cfg.Format)
		assert.Equal(t, "text", cfg.Batch.Output)
	})

	t.Run("malformed file", func(t *testing.T) {
		dir := useConfigDir(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("batch: [unterminated"), 0644))

		_, err := LoadConfigOrDefault()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *models.Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*models.Config) {}},
		{name: "iana zones", mutate: func(cfg *models.Config) {
			cfg.InputTimezone = "UTC"
			cfg.OutputTimezone = "Local"
		}},
		{name: "empty format", mutate: func(cfg *models.Config) { cfg.Format = " " }, wantErr: "format is required"},
		{name: "bad zone", mutate: func(cfg *models.Config) { cfg.InputTimezone = "Mars/Olympus" }, wantErr: "input_timezone"},
		{name: "bad week start", mutate: func(cfg *models.Config) { cfg.WeekStart = "funday" }, wantErr: "week_start"},
		{name: "negative workers", mutate: func(cfg *models.Config) { cfg.Batch.Workers = -1 }, wantErr: "workers must not be negative"},
		{name: "negative cache", mutate: func(cfg *models.Config) { cfg.Batch.CacheSize = -5 }, wantErr: "cache_size"},
		{name: "bad output", mutate: func(cfg *models.Config) { cfg.Batch.Output = "xml" }, wantErr: "unknown output format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.mutate(cfg)

			err := ValidateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	assert.Error(t, ValidateConfig(nil))
}

func TestParseWeekday(t *testing.T) {
	day, err := ParseWeekday("")
	require.NoError(t, err)
	assert.Equal(t, time.Monday, day)

	day, err = ParseWeekday("Sunday")
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, day)

	_, err = ParseWeekday("sun")
	assert.Error(t, err)
}

func TestLoadLocation(t *testing.T) {
	loc, err := LoadLocation("")
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = LoadLocation("utc")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	_, err = LoadLocation("Nowhere/Special")
	assert.Error(t, err)
}
