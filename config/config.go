// Package config loads runtime configuration for the screenmesh binaries
// from a YAML file, environment variables (prefix SCREENMESH) and built-in
// defaults, in ascending precedence below explicit CLI flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root configuration consumed by the CLI and the HTTP server.
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Memory   MemoryConfig   `mapstructure:"memory"`
	Pipeline PipelineConfig `mapstructure:"pipeline"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json or text
}

// HTTPConfig controls the API server.
type HTTPConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// MemoryConfig selects the session store backend.
type MemoryConfig struct {
	// Backend is "memory" or "sqlite".
	Backend string `mapstructure:"backend"`
	// Path is the SQLite database file (sqlite backend only).
	Path string `mapstructure:"path"`
}

// PipelineConfig carries screening parameter defaults.
type PipelineConfig struct {
	DefaultLibrarySize int `mapstructure:"default_library_size"`
	DefaultTopN        int `mapstructure:"default_top_n"`
	ArchiveRetention   int `mapstructure:"archive_retention"`
}

// Load reads configuration from the given file path, or from the default
// search locations ("screenmesh.yaml" in the working directory) when path is
// empty. A missing config file is not an error; everything falls back to
// defaults and environment.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("http.host", "localhost")
	v.SetDefault("http.port", 8080)
	v.SetDefault("memory.backend", "memory")
	v.SetDefault("memory.path", "screenmesh.db")
	v.SetDefault("pipeline.default_library_size", 10)
	v.SetDefault("pipeline.default_top_n", 5)
	v.SetDefault("pipeline.archive_retention", 20)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("screenmesh")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("SCREENMESH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	switch c.Memory.Backend {
	case "memory", "sqlite":
	default:
		return fmt.Errorf("unknown memory backend %q (want memory or sqlite)", c.Memory.Backend)
	}
	if c.Memory.Backend == "sqlite" && c.Memory.Path == "" {
		return errors.New("memory.path is required for the sqlite backend")
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid http.port %d", c.HTTP.Port)
	}
	if c.Pipeline.DefaultLibrarySize <= 0 {
		return fmt.Errorf("pipeline.default_library_size must be positive, got %d", c.Pipeline.DefaultLibrarySize)
	}
	if c.Pipeline.DefaultTopN <= 0 {
		return fmt.Errorf("pipeline.default_top_n must be positive, got %d", c.Pipeline.DefaultTopN)
	}
	return nil
}
