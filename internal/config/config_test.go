package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mpelle/corekeep/internal/config"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "corekeep.db", cfg.DB.Path)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "stdio", cfg.Transport.Mode)
	require.Empty(t, cfg.Catalog.Path)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("COREKEEP_SERVER_PORT", "9090")
	t.Setenv("COREKEEP_DB_PATH", "/tmp/keep.db")
	t.Setenv("COREKEEP_CATALOG_URL", "https://example.com/para.json")
	t.Setenv("COREKEEP_TRANSPORT", "http")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "/tmp/keep.db", cfg.DB.Path)
	require.Equal(t, "https://example.com/para.json", cfg.Catalog.URL)
	require.Equal(t, "http", cfg.Transport.Mode)
}

func TestLoad_YAMLFileThenEnvWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("server:\n  port: 7000\nlog:\n  level: debug\ncatalog:\n  path: ./para.json\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	t.Setenv("COREKEEP_CONFIG_PATH", path)
	t.Setenv("COREKEEP_LOG_LEVEL", "warn")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, 7000, cfg.Server.Port)
	require.Equal(t, "./para.json", cfg.Catalog.Path)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_BadValues(t *testing.T) {
	t.Setenv("COREKEEP_SERVER_PORT", "not-a-port")
	_, err := config.Load()
	require.Error(t, err)
}

func TestLoad_BadTransport(t *testing.T) {
	t.Setenv("COREKEEP_TRANSPORT", "websocket")
	_, err := config.Load()
	require.Error(t, err)
}
