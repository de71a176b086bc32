// Package config provides application configuration from environment variables.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Settings holds the application configuration.
type Settings struct {
	// Binary is the nvme-cli executable to invoke.
	Binary string `envconfig:"BINARY" default:"nvme"`

	// CommandTimeout bounds each external invocation; zero means no timeout,
	// matching the tool's blocking behavior.
	CommandTimeout time.Duration `envconfig:"COMMAND_TIMEOUT" default:"0"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads settings from NVME_UTIL_* environment variables, applying
// defaults for anything unset.
func Load() (*Settings, error) {
	s := &Settings{}
	if err := envconfig.Process("NVME_UTIL", s); err != nil {
		return nil, err
	}
	return s, nil
}
