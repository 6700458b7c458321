package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// option carries the command-line flags shared by every subcommand.
type option struct {
	address    string
	slaveID    int
	timeout    time.Duration
	tags       string
	configPath string
	sim        bool
	debug      bool
}

// config mirrors the YAML config file. Flags given on the command line win
// over file values.
type config struct {
	Address string        `yaml:"address"`
	SlaveID int           `yaml:"slave_id"`
	Timeout time.Duration `yaml:"timeout"`
	Tags    string        `yaml:"tags"`
}

const (
	defaultPort    = "502"
	defaultTimeout = 10 * time.Second
)

// resolve merges flags, file and defaults into the effective config.
func (o *option) resolve() (config, error) {
	var cfg config
	if o.configPath != "" {
		raw, err := os.ReadFile(o.configPath)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("%s: %w", o.configPath, err)
		}
	}
	if o.address != "" {
		cfg.Address = o.address
	}
	if o.slaveID != 0 {
		cfg.SlaveID = o.slaveID
	}
	if o.timeout != 0 {
		cfg.Timeout = o.timeout
	}
	if o.tags != "" {
		cfg.Tags = o.tags
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Address != "" && !strings.Contains(cfg.Address, ":") {
		cfg.Address += ":" + defaultPort
	}
	if cfg.Address == "" && !o.sim {
		return cfg, fmt.Errorf("no device address given (use --address or a config file)")
	}
	return cfg, nil
}
