package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		// Given: a config file that sets only the log level
		path := writeConfig(t, "log-level: debug\n")

		// When: loading it
		conf, err := Load(path)

		// Then: the rest falls back to defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 15, conf.Game.BoardSize)
		assert.InDelta(t, 1.2, conf.Game.AIBias, 1e-9)
		assert.Equal(t, 24*time.Hour, conf.Game.TTL)
	})

	t.Run("File values", func(t *testing.T) {
		path := writeConfig(t, `
redis:
  host: redis
  port: "6380"
game:
  board-size: 19
  ai-bias: 1.5
  ttl: 1h
`)

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "redis:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, 19, conf.Game.BoardSize)
		assert.InDelta(t, 1.5, conf.Game.AIBias, 1e-9)
		assert.Equal(t, time.Hour, conf.Game.TTL)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "absent.yml")) })
	})
}
