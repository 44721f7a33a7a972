package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Statsheet holds all configuration for the statsheet tool.
type Statsheet struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Item catalog files, loaded in parallel and merged in order.
	Catalogs []string `yaml:"catalogs"`

	// Item names to roll and equip, one per slot; later items replace earlier ones.
	Equip []string `yaml:"equip"`

	// Base contributions by stat name (class, passives).
	Base map[string]int32 `yaml:"base"`

	// Seed for affix rolls; the same seed rolls the same sheet.
	Seed uint64 `yaml:"seed"`

	// Print stats with a zero value too.
	ShowZero bool `yaml:"show_zero"`
}

// DefaultStatsheet returns Statsheet config with sensible defaults.
func DefaultStatsheet() Statsheet {
	return Statsheet{
		LogLevel: "info",
		Catalogs: []string{"config/items.yaml"},
		Seed:     1,
	}
}

// LoadStatsheet loads statsheet config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadStatsheet(path string) (Statsheet, error) {
	cfg := DefaultStatsheet()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
