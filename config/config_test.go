package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/movekit/typeaccessor/source"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil): %v", err)
	}
	if cfg.Timeout != Duration(source.DefaultTimeout) {
		t.Errorf("Timeout = %v; want %v", cfg.Timeout, source.DefaultTimeout)
	}
	if cfg.MaxRetries != source.DefaultMaxRetries {
		t.Errorf("MaxRetries = %d; want %d", cfg.MaxRetries, source.DefaultMaxRetries)
	}
	if cfg.CacheEntries != 256 {
		t.Errorf("CacheEntries = %d; want 256", cfg.CacheEntries)
	}
	if cfg.FetchConcurrency != 1 {
		t.Errorf("FetchConcurrency = %d; want 1", cfg.FetchConcurrency)
	}
	if cfg.NoRecurse {
		t.Error("NoRecurse should default to false")
	}
}

func TestParseFull(t *testing.T) {
	cfg, err := Parse([]byte(`
endpoint: https://fullnode.testnet.aptoslabs.com/v1
timeout: 5s
rate_limit: 20
burst: 5
max_retries: 2
cache_entries: 64
fetch_concurrency: 8
no_recurse: true
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Endpoint != "https://fullnode.testnet.aptoslabs.com/v1" {
		t.Errorf("Endpoint = %q", cfg.Endpoint)
	}
	if time.Duration(cfg.Timeout) != 5*time.Second {
		t.Errorf("Timeout = %v; want 5s", time.Duration(cfg.Timeout))
	}
	if cfg.RateLimit != 20 || cfg.Burst != 5 {
		t.Errorf("RateLimit/Burst = %g/%d; want 20/5", cfg.RateLimit, cfg.Burst)
	}
	if cfg.MaxRetries != 2 || cfg.CacheEntries != 64 || cfg.FetchConcurrency != 8 {
		t.Errorf("MaxRetries/CacheEntries/FetchConcurrency = %d/%d/%d",
			cfg.MaxRetries, cfg.CacheEntries, cfg.FetchConcurrency)
	}
	if !cfg.NoRecurse {
		t.Error("NoRecurse = false; want true")
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("endpoint: https://example.com\nretries: 5\n"))
	if err == nil {
		t.Fatal("unknown field accepted")
	}
}

func TestParseRejectsBadDuration(t *testing.T) {
	_, err := Parse([]byte("timeout: soon\n"))
	if err == nil || !strings.Contains(err.Error(), "invalid duration") {
		t.Fatalf("error = %v; want invalid duration", err)
	}
}

func TestValidateNegatives(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"timeout", func(c *Config) { c.Timeout = Duration(-time.Second) }},
		{"rate_limit", func(c *Config) { c.RateLimit = -1 }},
		{"burst", func(c *Config) { c.Burst = -1 }},
		{"max_retries", func(c *Config) { c.MaxRetries = -1 }},
		{"cache_entries", func(c *Config) { c.CacheEntries = -1 }},
		{"fetch_concurrency", func(c *Config) { c.FetchConcurrency = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("negative %s accepted", tt.name)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("endpoint: https://example.com/v1\ntimeout: 2s\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Endpoint != "https://example.com/v1" {
		t.Errorf("Endpoint = %q", cfg.Endpoint)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of missing file should fail")
	}
}

func TestSourceConstruction(t *testing.T) {
	cfg := Default()
	cfg.Endpoint = "https://example.com/v1"

	src, err := cfg.Source()
	if err != nil {
		t.Fatalf("Source: %v", err)
	}
	if _, ok := src.(*source.Cached); !ok {
		t.Errorf("Source() = %T; want *source.Cached with cache_entries > 0", src)
	}

	cfg.CacheEntries = 0
	src, err = cfg.Source()
	if err != nil {
		t.Fatalf("Source: %v", err)
	}
	if _, ok := src.(*source.REST); !ok {
		t.Errorf("Source() = %T; want *source.REST with cache_entries = 0", src)
	}

	cfg.Endpoint = "not a url"
	if _, err := cfg.Source(); err == nil {
		t.Error("Source with invalid endpoint should fail")
	}
}
