// Package config manages the YAML configuration file and its defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the persisted settings for both panes and the front end.
type Config struct {
	LeftPath   string `yaml:"left_path,omitempty"`
	RightPath  string `yaml:"right_path,omitempty"`
	ShowHidden bool   `yaml:"show_hidden"`
	Theme      string `yaml:"theme"`
	Watch      bool   `yaml:"watch"`
	LogFile    string `yaml:"log_file,omitempty"`

	// Path the config was loaded from, for saving.
	configPath string
}

// Default returns a configuration with default values.
func Default() *Config {
	return &Config{
		Theme: "dark",
		Watch: true,
	}
}

// Dir returns the configuration directory.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "dpane")
	}
	return filepath.Join(home, ".config", "dpane")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Load reads the config at path, or the default location when path is empty.
// A missing file yields the defaults; a malformed file is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg := Default()
	cfg.configPath = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cannot parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration back to the file it was loaded from.
func (c *Config) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(c.configPath, data, 0644)
}

// FilePath returns where the configuration is saved.
func (c *Config) FilePath() string {
	return c.configPath
}
