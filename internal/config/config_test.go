package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"olexsmir.xyz/ltwords/internal/humanize"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindConfigFile(t *testing.T) {
	t.Run("returns user provided path when it exists", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "")
		got, err := findConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, path, got)
	})

	t.Run("user path must exist", func(t *testing.T) {
		path, err := findConfigFile("/nonexistent/user/config.yaml")
		assert.ErrorIs(t, err, ErrConfigNotFound)
		assert.Equal(t, "", path)
	})

	t.Run("finds config in user config directory", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := writeConfig(t, filepath.Join(tmpDir, "ltwords"), "test")
		t.Setenv("XDG_CONFIG_HOME", tmpDir)

		path, err := findConfigFile("")
		require.NoError(t, err)

		if path == "/var/lib/ltwords/config.yaml" {
			_, statErr := os.Stat(path)
			assert.NoError(t, statErr)
		} else {
			assert.Equal(t, configFile, path)
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("defaults without a config file", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/nonexistent")
		t.Setenv("HOME", "/nonexistent")
		if _, err := findConfigFile(""); err == nil {
			t.Skip("a system wide config is installed")
		}

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, humanize.Noun, cfg.Variant())
		assert.Equal(t, time.Local, cfg.Location())
		assert.Equal(t, humanize.CalendarOptions{Time: true}, cfg.CalendarOptions())
	})

	t.Run("explicit missing path", func(t *testing.T) {
		_, err := Load("/nonexistent/config.yaml")
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("reads file", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), `
server:
  host: 127.0.0.1
  port: 9090
humanize:
  variant: since
  detailed: true
  timezone: Europe/Vilnius
  capitalize: true
calendar:
  time: false
  weekday: true
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1", cfg.Server.Host)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, humanize.Since, cfg.Variant())
		assert.True(t, cfg.Humanize.Detailed)
		assert.True(t, cfg.Humanize.Capitalize)
		assert.Equal(t, "Europe/Vilnius", cfg.Location().String())
		assert.Equal(t, humanize.CalendarOptions{Weekday: true}, cfg.CalendarOptions())
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "server: [")
		_, err := Load(path)
		assert.ErrorContains(t, err, "parsing config")
	})

	t.Run("invalid values", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "humanize:\n  variant: tomorrow\n")
		_, err := Load(path)
		assert.ErrorContains(t, err, "humanize.variant")
	})
}
