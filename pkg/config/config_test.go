package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Contains(t, cfg.DataDir, filepath.Join(".chaptercheck", "database"))
	assert.Equal(t, "https://www.mangaupdates.com/series.html", cfg.Source.SeriesURL)
	assert.NotEmpty(t, cfg.Source.SearchKey)
	assert.NotEmpty(t, cfg.Source.SearchEngineID)
	assert.Equal(t, 30*time.Second, cfg.Source.Timeout())
	assert.Equal(t, "INFO", cfg.Logging.Level)
}

func TestLoadConfigFileOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".chaptercheck")
	require.NoError(t, os.MkdirAll(dir, 0755))
	toml := "data_dir = \"/tmp/elsewhere\"\n\n[source]\ntimeout_seconds = 5\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(toml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/elsewhere", cfg.DataDir)
	assert.Equal(t, 5*time.Second, cfg.Source.Timeout())
	// untouched keys keep their defaults
	assert.Equal(t, "https://www.mangaupdates.com/series.html", cfg.Source.SeriesURL)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("WARNING"))
	assert.Equal(t, slog.LevelError, parseLogLevel("ERROR"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("bogus"))
}

func TestSetupLoggerCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	logger, err := SetupLogger(LoggingConfig{Level: "INFO", File: path})
	require.NoError(t, err)

	logger.Info("hello")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}
