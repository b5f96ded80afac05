package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "https://docs.google.com/spreadsheets/d", cfg.Sheet.BaseURL)
	assert.NotEmpty(t, cfg.Sheet.SpreadsheetID)
	assert.Equal(t, 10*time.Second, cfg.Sheet.Timeout)
	assert.Equal(t, 5, cfg.Sheet.Breaker.FailThreshold)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  addr: "127.0.0.1:9000"
sheet:
  spreadsheet_id: "custom-sheet"
kafka:
  brokers: ["k1:9092", "k2:9092"]
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.HTTP.Addr)
	assert.Equal(t, "custom-sheet", cfg.Sheet.SpreadsheetID)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 10*time.Second, cfg.Sheet.Timeout, "untouched keys keep defaults")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BIKERENT_SHEET_SPREADSHEET_ID", "from-env")
	t.Setenv("BIKERENT_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Sheet.SpreadsheetID)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
}

func TestLoad_RejectsBlankSpreadsheet(t *testing.T) {
	t.Setenv("BIKERENT_SHEET_SPREADSHEET_ID", " ")

	_, err := Load("")
	assert.Error(t, err)
}
