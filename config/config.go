// Package config loads resolver configuration from YAML files.
package config

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/movekit/typeaccessor/source"
)

// Duration is a time.Duration that unmarshals from YAML strings like
// "10s" or "500ms".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Config holds everything needed to construct a module source and drive a
// build. Zero values fall back to the defaults in Default.
type Config struct {
	// Endpoint is the node REST API base URL.
	Endpoint string `yaml:"endpoint"`

	// Timeout bounds each HTTP request.
	Timeout Duration `yaml:"timeout"`

	// RateLimit caps outgoing requests per second. Zero disables limiting.
	RateLimit float64 `yaml:"rate_limit"`

	// Burst is the rate limiter burst size.
	Burst int `yaml:"burst"`

	// MaxRetries bounds retry attempts per fetch.
	MaxRetries int `yaml:"max_retries"`

	// CacheEntries sizes the module byte cache. Zero disables caching.
	CacheEntries int `yaml:"cache_entries"`

	// FetchConcurrency is the number of parallel fetches per frontier drain.
	FetchConcurrency int `yaml:"fetch_concurrency"`

	// NoRecurse limits resolution to the requested modules only.
	NoRecurse bool `yaml:"no_recurse"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Timeout:          Duration(source.DefaultTimeout),
		MaxRetries:       source.DefaultMaxRetries,
		CacheEntries:     256,
		FetchConcurrency: 1,
	}
}

// Load reads and validates a YAML configuration file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML configuration bytes. Empty input yields
// the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations that cannot work.
func (c Config) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("config: timeout must not be negative, got %s", time.Duration(c.Timeout))
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("config: rate_limit must not be negative, got %g", c.RateLimit)
	}
	if c.Burst < 0 {
		return fmt.Errorf("config: burst must not be negative, got %d", c.Burst)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("config: max_retries must not be negative, got %d", c.MaxRetries)
	}
	if c.CacheEntries < 0 {
		return fmt.Errorf("config: cache_entries must not be negative, got %d", c.CacheEntries)
	}
	if c.FetchConcurrency < 0 {
		return fmt.Errorf("config: fetch_concurrency must not be negative, got %d", c.FetchConcurrency)
	}
	return nil
}

// Source builds the configured module source: a REST client, wrapped in a
// caching layer when cache_entries is positive. Endpoint must be set.
func (c Config) Source() (source.ModuleSource, error) {
	rest, err := source.NewREST(source.RESTConfig{
		Endpoint:          c.Endpoint,
		Timeout:           time.Duration(c.Timeout),
		RequestsPerSecond: c.RateLimit,
		Burst:             c.Burst,
		MaxRetries:        c.MaxRetries,
	})
	if err != nil {
		return nil, err
	}
	if c.CacheEntries == 0 {
		return rest, nil
	}
	return source.NewCached(rest, c.CacheEntries), nil
}
