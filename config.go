// Copyright © 2015 CurveKit Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package curve

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EngineConfig is the project-level configuration a host application
// persists alongside a tracking project: which tracking direction new
// curves default to, and how wide a moving-average window the filter
// package should apply. It follows the teacher's config.go pattern of a
// small, YAML-backed settings struct (load/shd.go uses the same
// yaml.Unmarshal approach for per-project shader pipelines).
type EngineConfig struct {
	DefaultDirection Direction `yaml:"default_direction"`
	SmoothingWindow  int       `yaml:"smoothing_window"`
}

// DefaultEngineConfig matches the original tool's factory defaults:
// forward tracking, no smoothing.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{DefaultDirection: Forward, SmoothingWindow: 1}
}

// LoadEngineConfig reads and parses a YAML project-configuration file,
// falling back to DefaultEngineConfig's fields for anything the file
// omits.
func LoadEngineConfig(path string) (EngineConfig, error) {
	cfg := DefaultEngineConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return EngineConfig{}, fmt.Errorf("curve: read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return EngineConfig{}, fmt.Errorf("curve: parse config %s: %w", path, err)
	}
	return cfg, nil
}
