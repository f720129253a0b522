// Package config provides the configuration loader for explorer.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/explorer/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// NewLoader creates a loader reading domain.ConfigFileName.
func NewLoader() *FileConfigLoader {
	return &FileConfigLoader{Filename: domain.ConfigFileName}
}

// Load reads the configuration from the given working directory.
// Relative state paths are resolved against cwd.
func (l *FileConfigLoader) Load(cwd string) (*domain.Config, error) {
	cfg, err := Load(filepath.Join(cwd, l.Filename))
	if err != nil {
		return nil, err
	}
	if !filepath.IsAbs(cfg.StatePath) {
		cfg.StatePath = filepath.Join(cwd, cfg.StatePath)
	}
	return cfg, nil
}

// Load reads a configuration file from the given path.
// A missing file yields domain.DefaultConfig.
func Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if errors.Is(err, fs.ErrNotExist) {
		return domain.DefaultConfig(), nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}
	return Parse(data)
}

// Parse decodes explorer.yaml content and applies defaults.
func Parse(data []byte) (*domain.Config, error) {
	var file Explorerfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	cfg := domain.DefaultConfig()
	cfg.JSONLogs = file.Log.JSON

	if file.API.URL != "" {
		cfg.APIURL = file.API.URL
	}

	if file.API.Timeout != "" {
		timeout, err := time.ParseDuration(file.API.Timeout)
		if err != nil {
			return nil, invalid("api.timeout", file.API.Timeout)
		}
		if timeout <= 0 {
			return nil, invalid("api.timeout", file.API.Timeout)
		}
		cfg.APITimeout = timeout
	}

	if file.Cache.Size != nil {
		if *file.Cache.Size <= 0 {
			return nil, invalid("cache.size", *file.Cache.Size)
		}
		cfg.CacheSize = *file.Cache.Size
	}

	if file.View.PageSize != nil {
		if *file.View.PageSize <= 0 {
			return nil, invalid("view.pageSize", *file.View.PageSize)
		}
		cfg.PageSize = *file.View.PageSize
	}

	if file.State.Path != "" {
		cfg.StatePath = file.State.Path
	}

	return cfg, nil
}

func invalid(field string, value any) error {
	return zerr.With(zerr.With(domain.ErrInvalidConfig, "field", field), "value", value)
}
