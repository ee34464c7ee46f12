package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/desenhapp/svgprep/pkg/pipeline"
)

// Config is the optional TOML profile loaded from --config or the default
// profile path. Every field is optional; zero values defer to the pipeline
// defaults.
type Config struct {
	Classify  ClassifyConfig  `toml:"classify"`
	Transform TransformConfig `toml:"transform"`
	Cache     CacheConfig     `toml:"cache"`
}

// ClassifyConfig holds the [classify] profile section.
type ClassifyConfig struct {
	// MinArea overrides the tiny-area threshold.
	MinArea float64 `toml:"min_area"`
	// Palette overrides the decorative fill palette.
	Palette []string `toml:"palette"`
}

// TransformConfig holds the [transform] profile section.
type TransformConfig struct {
	// MinStrokeWidth overrides the stroke-width floor.
	MinStrokeWidth float64 `toml:"min_stroke_width"`
}

// Cache backends selectable in the [cache] profile section.
const (
	CacheBackendFile  = "file"
	CacheBackendRedis = "redis"
	CacheBackendNone  = "none"
)

// CacheConfig holds the [cache] profile section.
type CacheConfig struct {
	// Backend selects the cache implementation: file (default), redis,
	// or none.
	Backend string `toml:"backend"`
	// Dir overrides the file cache directory.
	Dir string `toml:"dir"`
	// RedisAddr is the host:port of the redis backend.
	RedisAddr string `toml:"redis_addr"`
	// RedisPassword authenticates against the redis backend.
	RedisPassword string `toml:"redis_password"`
	// RedisDB selects the redis database number.
	RedisDB int `toml:"redis_db"`
}

// defaultConfigPath returns the default profile location
// (~/.config/svgprep/config.toml, honoring XDG_CONFIG_HOME).
func defaultConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the profile at path. When path is empty the default
// location is tried; a missing default profile is not an error, a missing
// explicit one is.
func loadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		path, err = defaultConfigPath()
		if err != nil {
			return &Config{}, nil
		}
	}

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Cache.Backend {
	case "", CacheBackendFile, CacheBackendRedis, CacheBackendNone:
	default:
		return fmt.Errorf("unknown cache backend %q", c.Cache.Backend)
	}
	if c.Cache.Backend == CacheBackendRedis && c.Cache.RedisAddr == "" {
		return fmt.Errorf("cache backend redis requires redis_addr")
	}
	if c.Classify.MinArea < 0 {
		return fmt.Errorf("classify.min_area cannot be negative")
	}
	if c.Transform.MinStrokeWidth < 0 {
		return fmt.Errorf("transform.min_stroke_width cannot be negative")
	}
	return nil
}

// applyTo copies profile values onto pipeline options. Flags set by the
// user afterwards still win, since commands apply flag values on top.
func (c *Config) applyTo(opts *pipeline.Options) {
	if c.Classify.MinArea > 0 {
		opts.MinArea = c.Classify.MinArea
	}
	if len(c.Classify.Palette) > 0 {
		opts.Palette = c.Classify.Palette
	}
	if c.Transform.MinStrokeWidth > 0 {
		opts.MinStrokeWidth = c.Transform.MinStrokeWidth
	}
}
