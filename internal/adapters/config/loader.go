// Package config provides the configuration loader for provenv.
package config

import (
	"os"

	"go.trai.ch/provenv/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultCacheRoot is the shared cache directory used when the config names
// none.
const DefaultCacheRoot = "/srv/venv-cache"

// DefaultEnvironment is the environment base name used when the config
// names none.
const DefaultEnvironment = "venv"

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct{}

// Load reads the configuration file at path.
func (l *FileConfigLoader) Load(path string) (*domain.Config, error) {
	return Load(path)
}

// Load reads a provenv.yaml file and returns a domain.Config.
func Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var file Provfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	if file.Requirements == "" {
		return nil, zerr.With(zerr.New("config names no requirements manifest"), "config", path)
	}

	cfg := &domain.Config{
		CacheRoot:     file.CacheRoot,
		Environment:   file.Environment,
		Requirements:  file.Requirements,
		Bootstrap:     file.Bootstrap,
		Target:        file.Target,
		PatchActivate: file.PatchActivate,
		NativeDeps:    file.NativeDeps,
	}
	if cfg.CacheRoot == "" {
		cfg.CacheRoot = DefaultCacheRoot
	}
	if cfg.Environment == "" {
		cfg.Environment = DefaultEnvironment
	}
	return cfg, nil
}
