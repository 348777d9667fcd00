// Package config loads YAML configuration files over caller-supplied defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads filename, expands ${VAR} references from the environment and
// decodes the result over target. Fields absent from the file keep the
// values target already holds.
func Load[T any](filename string, target *T) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), target); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}
	return nil
}

// LoadOptional behaves like Load but treats an empty filename as "no
// overrides". A named file that does not exist is still an error.
func LoadOptional[T any](filename string, target *T) error {
	if filename == "" {
		return nil
	}
	return Load(filename, target)
}
