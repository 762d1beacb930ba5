// Package config loads optional operator settings from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultSeed is the stock loaded at startup when no settings override it
const DefaultSeed = "A1, A2, A3, B1, B2, C3, C3, A1"

// Settings holds tunables for the ledger session.
type Settings struct {
	// LowStockThreshold triggers an alert when a withdrawal leaves a kind
	// strictly below it. Zero means the built-in default.
	LowStockThreshold int `yaml:"low_stock_threshold"`
	// AlertCapacity bounds the alert journal. Zero means the built-in default.
	AlertCapacity int `yaml:"alert_capacity"`
	// Seed is the comma-separated item codes ingested at startup.
	Seed string `yaml:"seed"`
}

// Defaults returns the settings used when no file is present
func Defaults() Settings {
	return Settings{Seed: DefaultSeed}
}

// Load reads settings from path. A missing file is not an error: the
// defaults are returned. Fields left unset in the file keep their defaults.
func Load(path string) (Settings, error) {
	s := Defaults()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("unmarshal %s: %w", path, err)
	}
	return s, nil
}
