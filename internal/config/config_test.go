package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
env: test
sync_db:
  dsn: postgres://localhost/sync
petpooja:
  base_url: http://vendor.local
background:
  order_push_interval: 1m
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, "postgres://localhost/sync", cfg.SyncDB.Dsn)
	assert.Equal(t, "8080", cfg.HTTPServer.Port)
	assert.Equal(t, "sync-events", cfg.KafkaService.Topic)
	assert.False(t, cfg.KafkaService.Enabled)
	assert.Equal(t, "http://vendor.local", cfg.Petpooja.BaseURL)
	assert.Equal(t, "/save_order", cfg.Petpooja.OrderPath)
	assert.Equal(t, 30*time.Second, cfg.Petpooja.Timeout)
	assert.Equal(t, time.Minute, cfg.Background.OrderPushInterval)
}

func TestLoadRequiresDsn(t *testing.T) {
	// restored after the test by t.Setenv
	t.Setenv("SYNC_DB_DSN", "")
	require.NoError(t, os.Unsetenv("SYNC_DB_DSN"))
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("env: test\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
