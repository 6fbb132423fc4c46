package strategy

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML strategy file and returns a validated Config.
// KnownFields(true) makes typos and unused fields fail immediately.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read strategy file: %w", err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode strategy file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("strategy validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault loads the strategy from path, or returns the compiled-in
// default when no path is configured. The default is validated too, so a bad
// code change cannot ship silently.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		cfg := Default()
		if err := Validate(cfg); err != nil {
			return nil, fmt.Errorf("default strategy invalid: %w", err)
		}
		return cfg, nil
	}
	return Load(path)
}

// Write marshals the config to a YAML file (used by `hunter strategy init`)
func Write(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal strategy: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write strategy file: %w", err)
	}
	return nil
}
