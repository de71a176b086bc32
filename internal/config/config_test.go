package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "nvme", cfg.Binary)
	require.Equal(t, time.Duration(0), cfg.CommandTimeout)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("NVME_UTIL_BINARY", "/usr/local/sbin/nvme")
	t.Setenv("NVME_UTIL_COMMAND_TIMEOUT", "30s")
	t.Setenv("NVME_UTIL_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "/usr/local/sbin/nvme", cfg.Binary)
	require.Equal(t, 30*time.Second, cfg.CommandTimeout)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	t.Setenv("NVME_UTIL_COMMAND_TIMEOUT", "not-a-duration")

	_, err := Load()
	require.Error(t, err)
}
