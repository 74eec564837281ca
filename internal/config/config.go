package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ExactMatch bool   `yaml:"exact_match"`
	Trace      bool   `yaml:"trace"`
	LogLevel   string `yaml:"log_level"`
	Slots      []Slot `yaml:"slots"`
}

type Slot struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

// Default returns the configuration used when no file exists yet.
func Default() *Config {
	return &Config{LogLevel: "info"}
}

// Load reads config.yaml
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Save writes config.yaml
func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0600)
}

func (c *Config) validate() error {
	seen := map[int]bool{}
	for _, s := range c.Slots {
		if s.ID < 0 || s.ID >= 100 {
			return fmt.Errorf("slot id %d out of range", s.ID)
		}
		if seen[s.ID] {
			return fmt.Errorf("slot id %d assigned twice", s.ID)
		}
		seen[s.ID] = true
		if s.Name == "" {
			return fmt.Errorf("slot %d has an empty window name", s.ID)
		}
	}
	return nil
}
