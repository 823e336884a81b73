// Package config provides the server runtime configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nomis52/activities/logging"
)

const (
	defaultListenAddr       = ":8080"
	defaultMetricsPrefix    = "activities"
	defaultSnapshotSchedule = "*/15 * * * *"
)

// ServerConfig represents the server runtime configuration.
type ServerConfig struct {
	Listener   ListenerConfig   `yaml:"listener"`
	Logging    logging.Config   `yaml:"logging"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	// SeedFile is an optional path to a YAML activity roster.
	// When empty, the built-in roster is used.
	SeedFile string `yaml:"seed_file"`
}

// ListenerConfig holds HTTP server listener settings.
type ListenerConfig struct {
	// The listen address, defaults to :8080
	Addr string `yaml:"addr"`
}

// MonitoringConfig holds metrics push settings.
type MonitoringConfig struct {
	// VictoriaMetricsURL is the remote write endpoint for roster snapshots.
	// Empty disables the snapshot push.
	VictoriaMetricsURL string `yaml:"victoriametrics_url"`
	// MetricsPrefix is prepended to all metric names.
	MetricsPrefix string `yaml:"metrics_prefix"`
	// SnapshotSchedule is the cron spec for snapshot pushes.
	SnapshotSchedule string `yaml:"snapshot_schedule"`
}

// LoadConfig reads the YAML config file at the given path and returns a ServerConfig.
func LoadConfig(path string) (*ServerConfig, error) {
	var cfg ServerConfig
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open server config file %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode YAML server config: %w", err)
	}

	cfg.SetDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SetDefaults sets reasonable default values for optional fields.
func (c *ServerConfig) SetDefaults() {
	if c.Listener.Addr == "" {
		c.Listener.Addr = defaultListenAddr
	}
	if c.Monitoring.MetricsPrefix == "" {
		c.Monitoring.MetricsPrefix = defaultMetricsPrefix
	}
	if c.Monitoring.SnapshotSchedule == "" {
		c.Monitoring.SnapshotSchedule = defaultSnapshotSchedule
	}
}

// Validate performs basic validation on the configuration.
func (c *ServerConfig) Validate() error {
	if c.SeedFile != "" {
		if _, err := os.Stat(c.SeedFile); err != nil {
			return fmt.Errorf("seed file %s: %w", c.SeedFile, err)
		}
	}
	return nil
}
