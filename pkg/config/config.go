// Package config loads badgeicon settings from a TOML file.
//
// The file is looked up in order at the --config flag, $BADGEICON_CONFIG,
// and $XDG_CONFIG_HOME/badgeicon/config.toml (~/.config when unset). A
// missing file at the default location means defaults; a missing file that
// was asked for explicitly is an error.
//
// Example:
//
//	catalogs = ["~/icons/brand.yaml"]
//
//	[render]
//	size = 128
//	scheme = "both"
//	formats = ["svg", "png"]
//
//	[cache]
//	backend = "redis"
//	ttl = "72h"
//
//	[cache.redis]
//	addr = "localhost:6379"
//
//	[server]
//	addr = ":8080"
//	catalogs = ["/etc/badgeicon/catalogs/*.yaml"]
package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/badgeicon/pkg/cache"
	"github.com/matzehuels/badgeicon/pkg/catalog"
	"github.com/matzehuels/badgeicon/pkg/errors"
	"github.com/matzehuels/badgeicon/pkg/pipeline"
)

// EnvConfig names the environment variable holding the config file path.
const EnvConfig = "BADGEICON_CONFIG"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// DefaultAddr is the server listen address.
const DefaultAddr = ":8080"

// Config is the parsed configuration file.
type Config struct {
	Render   RenderConfig `toml:"render"`
	Cache    CacheConfig  `toml:"cache"`
	Server   ServerConfig `toml:"server"`
	Catalogs []string     `toml:"catalogs"`

	// path is the file the config was loaded from, if any.
	path string
}

// RenderConfig holds default rendering options.
type RenderConfig struct {
	Size      float64  `toml:"size"`
	Scheme    string   `toml:"scheme"`
	Formats   []string `toml:"formats"`
	Scale     float64  `toml:"scale"`
	PNGEngine string   `toml:"png_engine"`
}

// CacheConfig selects and configures the artifact cache.
type CacheConfig struct {
	Backend string      `toml:"backend"`
	Dir     string      `toml:"dir"`
	TTL     Duration    `toml:"ttl"`
	Redis   RedisConfig `toml:"redis"`
}

// RedisConfig configures the redis cache backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr         string   `toml:"addr"`
	ReadTimeout  Duration `toml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout"`
	// Catalogs are loaded by the server in addition to the top-level ones.
	Catalogs []string `toml:"catalogs"`
}

// Duration is a time.Duration written as a Go duration string ("90s").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Size:      pipeline.DefaultSize,
			Scheme:    pipeline.SchemeLight,
			Formats:   []string{pipeline.FormatSVG},
			Scale:     pipeline.DefaultScale,
			PNGEngine: "raster",
		},
		Cache: CacheConfig{
			Backend: BackendFile,
		},
		Server: ServerConfig{
			Addr:         DefaultAddr,
			ReadTimeout:  Duration{10 * time.Second},
			WriteTimeout: Duration{30 * time.Second},
		},
	}
}

// Path returns the config file location and whether it was chosen
// explicitly by flag or environment.
func Path(flag string) (string, bool) {
	if flag != "" {
		return flag, true
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return env, true
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "badgeicon", "config.toml"), false
}

// Load reads the config file selected by flag (see Path) over the defaults
// and validates the result.
func Load(flag string) (*Config, error) {
	path, explicit := Path(flag)
	if path == "" {
		return Default(), nil
	}
	cfg, err := LoadFile(path)
	if errors.Is(err, errors.ErrCodeFileNotFound) && !explicit {
		return Default(), nil
	}
	return cfg, err
}

// LoadFile reads one config file over the defaults and validates it.
// Unknown keys are rejected.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config %s", path)
	}

	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	cfg.path = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// File returns the path the config was loaded from, or "" for defaults.
func (c *Config) File() string { return c.path }

// Validate checks every section.
func (c *Config) Validate() error {
	opts := c.PipelineOptions()
	if err := opts.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "[render]")
	}

	switch c.Cache.Backend {
	case "", BackendFile, BackendNone:
	case BackendRedis:
		if c.Cache.Redis.Addr == "" {
			return errors.New(errors.ErrCodeInvalidInput, "[cache.redis] addr is required for the redis backend")
		}
	default:
		return errors.New(errors.ErrCodeInvalidInput, "[cache] unknown backend %q (want file, redis, or none)", c.Cache.Backend)
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "[cache] ttl must not be negative")
	}

	if c.Server.ReadTimeout.Duration < 0 || c.Server.WriteTimeout.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "[server] timeouts must not be negative")
	}
	return nil
}

// PipelineOptions converts the [render] section.
func (c *Config) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		Size:      c.Render.Size,
		Scheme:    c.Render.Scheme,
		Formats:   append([]string(nil), c.Render.Formats...),
		Scale:     c.Render.Scale,
		PNGEngine: c.Render.PNGEngine,
	}
}

// OpenCache opens the configured cache backend. With noCache set the
// null cache is returned whatever the configuration says.
func (c *Config) OpenCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}

	var store cache.Cache
	switch c.Cache.Backend {
	case BackendNone:
		return cache.NewNullCache(), nil
	case BackendRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     c.Cache.Redis.Addr,
			Password: c.Cache.Redis.Password,
			DB:       c.Cache.Redis.DB,
			Prefix:   c.Cache.Redis.Prefix,
		})
		if err != nil {
			return nil, err
		}
		store = rc
	default:
		dir, err := c.CacheDir()
		if err != nil {
			return nil, err
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			return nil, err
		}
		store = fc
	}
	return cache.WithTTL(store, c.Cache.TTL.Duration), nil
}

// CacheDir returns the file cache directory: [cache] dir, else
// $XDG_CACHE_HOME/badgeicon, else the user cache directory.
func (c *Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.resolve(c.Cache.Dir), nil
	}
	if home := os.Getenv("XDG_CACHE_HOME"); home != "" {
		return filepath.Join(home, "badgeicon"), nil
	}
	return cache.DefaultDir()
}

// LoadCatalog returns the built-in presets merged with every catalog file
// in the config followed by extra. Entries are glob patterns; relative
// patterns are resolved against the config file's directory.
func (c *Config) LoadCatalog(extra ...string) (*catalog.Catalog, error) {
	cat := catalog.Default()
	patterns := append(append([]string(nil), c.Catalogs...), extra...)
	for _, pattern := range patterns {
		matches, err := filepath.Glob(c.resolve(pattern))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "catalog pattern %q", pattern)
		}
		if len(matches) == 0 {
			return nil, errors.New(errors.ErrCodeFileNotFound, "no catalog matches %s", pattern)
		}
		for _, path := range matches {
			loaded, err := catalog.LoadFile(path)
			if err != nil {
				return nil, err
			}
			cat.Merge(loaded)
		}
	}
	return cat, nil
}

// resolve expands a leading "~/" and anchors relative paths at the config
// file's directory.
func (c *Config) resolve(p string) string {
	if strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, p[2:])
		}
	}
	if !filepath.IsAbs(p) && c.path != "" {
		p = filepath.Join(filepath.Dir(c.path), p)
	}
	return p
}
