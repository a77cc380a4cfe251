// Package config loads the loom project configuration.
//
// Configuration lives in loom.json, loom.yaml, or loom.yml in the project
// directory, checked in that order. A missing file yields the defaults.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/loomui/loom/internal/errors"
)

const (
	// DefaultHost is the default listen host.
	DefaultHost = "localhost"

	// DefaultPort is the default listen port.
	DefaultPort = 3000
)

// candidates are the config file names checked, in order.
var candidates = []string{"loom.json", "loom.yaml", "loom.yml"}

// Config is the loom project configuration.
type Config struct {
	// Name is the project name, used as the page title and the metrics
	// namespace.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Host is the listen host.
	Host string `json:"host,omitempty" yaml:"host,omitempty"`

	// Port is the listen port.
	Port int `json:"port,omitempty" yaml:"port,omitempty"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Name: "loom",
		Host: DefaultHost,
		Port: DefaultPort,
	}
}

// Load reads the configuration from dir, falling back to defaults when no
// config file exists.
func Load(dir string) (*Config, error) {
	for _, name := range candidates {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, errors.Wrap(err, "L100", errors.CategoryConfig, "cannot read "+name)
		}
		return parse(name, data)
	}
	return Default(), nil
}

// parse decodes a config file by extension and validates the result.
func parse(name string, data []byte) (*Config, error) {
	cfg := Default()

	var err error
	if filepath.Ext(name) == ".json" {
		err = json.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.Wrap(err, "L101", errors.CategoryConfig, "cannot parse "+name)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return errors.New("L102", errors.CategoryConfig, "port out of range").
			WithDetail("port must be between 1 and 65535")
	}
	if c.Name == "" {
		return errors.New("L103", errors.CategoryConfig, "name must not be empty")
	}
	return nil
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}
