package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
port: 8081
scheduler:
  round_robin:
    time_quantum: 4
  idle_strategy: tick
log:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 8081, cfg.Port)
	require.Equal(t, 4, cfg.RoundRobinTimeQuantum)
	require.Equal(t, "tick", cfg.IdleStrategy)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_SearchPathWithoutFileUsesDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 9095, cfg.Port)
	require.Equal(t, 2, cfg.RoundRobinTimeQuantum)
	require.Equal(t, "jump", cfg.IdleStrategy)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	require.True(t, errors.Is(err, fs.ErrNotExist), err)
}

func TestLoad_SearchPathFindsConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("port: 8123\n"), 0o644))
	chdir(t, dir)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 8123, cfg.Port)
}

func TestGetSchedulerConfig_ReturnsCopies(t *testing.T) {
	first, err := GetSchedulerConfig()
	require.NoError(t, err)
	first.Port = 1

	second, err := GetSchedulerConfig()
	require.NoError(t, err)
	require.NotEqual(t, 1, second.Port)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SCHEDULER_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM", "7")
	path := writeConfig(t, "port: 9000\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 9000, cfg.Port)
	require.Equal(t, 7, cfg.RoundRobinTimeQuantum)
}

func TestLoad_Malformed(t *testing.T) {
	path := writeConfig(t, "port: [unterminated\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_InvalidPort(t *testing.T) {
	path := writeConfig(t, "port: 70000\n")
	_, err := Load(path)
	require.Error(t, err)
}
