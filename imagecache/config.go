// Copyright © 2015 CurveKit Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package imagecache

import (
	"fmt"
	"os"

	curve "github.com/galvanized/curvekit"
	"gopkg.in/yaml.v3"
)

// Option configures a Cache at construction time, the same functional-
// options shape the teacher's config.go uses for its engine settings.
type Option func(*Cache)

// WithLogger overrides the default logger.
func WithLogger(logger curve.Logger) Option {
	return func(c *Cache) { c.logger = logger }
}

// WithLoader registers a custom Loader for a file extension (a leading
// dot is optional), overriding or extending the default registry.
func WithLoader(ext string, loader Loader) Option {
	return func(c *Cache) { c.loaders.register(ext, loader) }
}

// WithHDRDecoder installs decoder as the .exr loader's HDRDecoder.
func WithHDRDecoder(decoder HDRDecoder) Option {
	return func(c *Cache) { c.loaders.register(".exr", HDRLoader{Decoder: decoder}) }
}

// WithPreloadWindow sets the radius PreloadAroundDefault uses.
func WithPreloadWindow(radius int) Option {
	return func(c *Cache) { c.defaultWindow = radius }
}

// WithFileConfig applies a parsed FileConfig's preload window. MaxSize
// is fixed at construction (New's maxSize parameter), matching the
// cache's own fail-fast constructor contract.
func WithFileConfig(fc *FileConfig) Option {
	return WithPreloadWindow(fc.PreloadWindow)
}

// FileConfig is the on-disk shape for persisted cache tuning, loaded
// with LoadFileConfig and applied with WithFileConfig — mirrors the
// teacher's load/shd.go yaml-configured pipeline stages.
type FileConfig struct {
	MaxSize       int `yaml:"max_size"`
	PreloadWindow int `yaml:"preload_window"`
}

// LoadFileConfig reads and parses a YAML cache-configuration file.
func LoadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("imagecache: read config %s: %w", path, err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("imagecache: parse config %s: %w", path, err)
	}
	if fc.MaxSize <= 0 {
		return nil, fmt.Errorf("%w: max_size must be positive, got %d", curve.ErrInvalidConfig, fc.MaxSize)
	}
	return &fc, nil
}
