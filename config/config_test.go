package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{EnvPort, EnvGinMode, EnvFEOrigins, EnvMockDelay, EnvLogLevel} {
		t.Setenv(key, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "1", cfg.Client.UserId)

	delay, err := cfg.MockDelay()
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, delay)

	interval, err := cfg.AlbumRefreshInterval()
	require.NoError(t, err)
	assert.Equal(t, 20*time.Minute, interval)
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Server.Port = "9090"
	cfg.Mock.Delay = "25ms"
	cfg.Client.APIBaseURL = "http://127.0.0.1:9090"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	loaded, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), loaded)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPort, "7000")
	t.Setenv(EnvFEOrigins, "http://a.test;http://b.test")
	t.Setenv(EnvMockDelay, "1ms")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CORSOrigins)
	delay, err := cfg.MockDelay()
	require.NoError(t, err)
	assert.Equal(t, time.Millisecond, delay)
}

func TestLoad_InvalidValues(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("mock:\n  delay: soon\n"), 0o644))
	_, err := Load(bad)
	assert.ErrorContains(t, err, "mock.delay")

	garbage := filepath.Join(dir, "garbage.yaml")
	require.NoError(t, os.WriteFile(garbage, []byte("server: [unclosed"), 0o644))
	_, err = Load(garbage)
	assert.Error(t, err)

	cfg := DefaultConfig()
	cfg.Albums.RefreshInterval = "0s"
	assert.Error(t, cfg.Validate())
}
