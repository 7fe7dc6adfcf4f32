package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medcatalog/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "ADMIN_PASSWORD", "STORE_DRIVER", "DATA_DIR", "BODY_LIMIT"} {
		t.Setenv(k, "")
	}
	cfg := config.Load()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "changeme", cfg.AdminPassword)
	assert.Equal(t, "file", cfg.StoreDriver)
	assert.Equal(t, 1_000_000, cfg.BodyLimit)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	t.Setenv("BODY_LIMIT", "2048")
	t.Setenv("WRITE_RATE_LIMIT", "nope")

	cfg := config.Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "s3cret", cfg.AdminPassword)
	assert.Equal(t, 2048, cfg.BodyLimit)
	assert.Equal(t, 120, cfg.WriteRateLimit, "invalid number keeps the default")
}

func TestLoadFileEnvWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "medcatalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"4000\"\nstore_driver: sqlite\ndata_dir: /srv/data\n"), 0o644))
	t.Setenv("PORT", "")
	t.Setenv("STORE_DRIVER", "redis")
	t.Setenv("DATA_DIR", "")

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "redis", cfg.StoreDriver)
	assert.Equal(t, "/srv/data", cfg.DataDir)
	assert.Equal(t, "changeme", cfg.AdminPassword)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("port: [1, 2"), 0o644))
	_, err = config.LoadFile(bad)
	require.Error(t, err)
}
