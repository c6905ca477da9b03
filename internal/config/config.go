// Package config defines the runtime configuration of finance-calculator and
// the functions for loading it from a file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/iwvelando/finance-calculator/pkg/constants"
	"github.com/iwvelando/finance-calculator/pkg/validation"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Configuration holds all configuration for finance-calculator.
type Configuration struct {
	Server    ServerConfig    `mapstructure:"server" yaml:"server"`
	Logging   LoggingConfig   `mapstructure:"logging" yaml:"logging"`
	RateLimit RateLimitConfig `mapstructure:"rateLimit" yaml:"rateLimit"`
	Cache     CacheConfig     `mapstructure:"cache" yaml:"cache"`
}

// ServerConfig defines runtime parameters for the HTTP server.
type ServerConfig struct {
	Address         string `mapstructure:"address" yaml:"address"`
	MaxFormSize     string `mapstructure:"maxFormSize" yaml:"maxFormSize"`
	ShutdownTimeout int    `mapstructure:"shutdownTimeout" yaml:"shutdownTimeout"` // seconds
	formSizeBytes   int64
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level,omitempty"`           // debug, info, warn, error
	Format     string `mapstructure:"format" yaml:"format,omitempty"`         // json, console
	OutputFile string `mapstructure:"outputFile" yaml:"outputFile,omitempty"` // optional file output
}

// RateLimitConfig bounds how many requests one client may send per window.
type RateLimitConfig struct {
	Enabled  bool `mapstructure:"enabled" yaml:"enabled"`
	Requests int  `mapstructure:"requests" yaml:"requests"`
	Window   int  `mapstructure:"window" yaml:"window"` // seconds
}

// CacheConfig selects and tunes the calculation result cache.
type CacheConfig struct {
	Backend       string `mapstructure:"backend" yaml:"backend"` // none, memory, redis
	Entries       int    `mapstructure:"entries" yaml:"entries"`
	TTL           int    `mapstructure:"ttl" yaml:"ttl"` // seconds
	RedisAddress  string `mapstructure:"redisAddress" yaml:"redisAddress,omitempty"`
	RedisPassword string `mapstructure:"redisPassword" yaml:"-"`
	RedisDB       int    `mapstructure:"redisDB" yaml:"redisDB"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", constants.DefaultServerAddress)
	v.SetDefault("server.maxFormSize", fmt.Sprintf("%d", constants.DefaultMaxFormSizeBytes))
	v.SetDefault("server.shutdownTimeout", constants.DefaultShutdownTimeoutSeconds)
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("rateLimit.enabled", false)
	v.SetDefault("rateLimit.requests", constants.DefaultRateLimitRequests)
	v.SetDefault("rateLimit.window", constants.DefaultRateLimitWindowSeconds)
	v.SetDefault("cache.backend", constants.CacheBackendNone)
	v.SetDefault("cache.entries", constants.DefaultCacheEntries)
	v.SetDefault("cache.ttl", constants.DefaultCacheTTLSeconds)
	v.SetDefault("cache.redisAddress", "")
	v.SetDefault("cache.redisPassword", "")
	v.SetDefault("cache.redisDB", 0)
}

// LoadConfiguration loads the YAML configuration at configPath and applies
// FINCALC_* environment overrides (e.g. FINCALC_SERVER_ADDRESS). A missing
// file, or an empty path, yields the defaults.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yml")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file, %s", err)
		}
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	if err := configuration.normalize(); err != nil {
		return nil, err
	}
	return &configuration, nil
}

func (c *Configuration) normalize() error {
	if c.Server.Address == "" {
		c.Server.Address = constants.DefaultServerAddress
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = constants.DefaultShutdownTimeoutSeconds
	}

	size, err := ParseSize(c.Server.MaxFormSize)
	if err != nil {
		return err
	}
	if size <= 0 {
		size = constants.DefaultMaxFormSizeBytes
	}
	c.Server.formSizeBytes = size

	if err := validation.ValidateLogFormat(c.Logging.Format); err != nil {
		return err
	}

	if c.RateLimit.Requests <= 0 {
		c.RateLimit.Requests = constants.DefaultRateLimitRequests
	}
	if c.RateLimit.Window <= 0 {
		c.RateLimit.Window = constants.DefaultRateLimitWindowSeconds
	}

	c.Cache.Backend = strings.ToLower(strings.TrimSpace(c.Cache.Backend))
	if c.Cache.Backend == "" {
		c.Cache.Backend = constants.CacheBackendNone
	}
	if err := validation.ValidateCacheBackend(c.Cache.Backend); err != nil {
		return err
	}
	if c.Cache.Backend == constants.CacheBackendRedis && c.Cache.RedisAddress == "" {
		return errors.New("cache backend redis requires cache.redisAddress")
	}
	if c.Cache.Entries <= 0 {
		c.Cache.Entries = constants.DefaultCacheEntries
	}
	if c.Cache.TTL <= 0 {
		c.Cache.TTL = constants.DefaultCacheTTLSeconds
	}
	return nil
}

// FormSizeBytes returns the configured form size limit in bytes.
func (s ServerConfig) FormSizeBytes() int64 {
	if s.formSizeBytes <= 0 {
		return constants.DefaultMaxFormSizeBytes
	}
	return s.formSizeBytes
}

// ShutdownTimeoutDuration returns the graceful shutdown bound.
func (s ServerConfig) ShutdownTimeoutDuration() time.Duration {
	return time.Duration(s.ShutdownTimeout) * time.Second
}

// WindowDuration returns the rate limit refill window.
func (r RateLimitConfig) WindowDuration() time.Duration {
	return time.Duration(r.Window) * time.Second
}

// TTLDuration returns the lifetime of cached entries.
func (c CacheConfig) TTLDuration() time.Duration {
	return time.Duration(c.TTL) * time.Second
}

// YAML renders the effective configuration. Secrets are omitted.
func (c *Configuration) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
