package config

import (
	"strings"
	"testing"
	"time"
)

func valid() Config {
	return Config{
		Port:              "8082",
		LogLevel:          "info",
		ViewCacheSize:     64,
		ViewCacheTTL:      10 * time.Minute,
		RequestsPerMinute: 120,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errorString string
	}{
		{
			name:   "valid defaults",
			mutate: func(c *Config) {},
		},
		{
			name:        "invalid port - non-numeric",
			mutate:      func(c *Config) { c.Port = "abc" },
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name:        "invalid port - out of range",
			mutate:      func(c *Config) { c.Port = "70000" },
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name:        "invalid log level",
			mutate:      func(c *Config) { c.LogLevel = "verbose" },
			wantErr:     true,
			errorString: "invalid log level 'verbose'",
		},
		{
			name:        "cache size too small",
			mutate:      func(c *Config) { c.ViewCacheSize = 0 },
			wantErr:     true,
			errorString: "invalid view cache size 0",
		},
		{
			name:        "cache TTL too short",
			mutate:      func(c *Config) { c.ViewCacheTTL = time.Millisecond },
			wantErr:     true,
			errorString: "invalid view cache TTL",
		},
		{
			name:        "rate limit too small",
			mutate:      func(c *Config) { c.RequestsPerMinute = 0 },
			wantErr:     true,
			errorString: "invalid rate limit 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errorString) {
				t.Fatalf("error %q does not contain %q", err.Error(), tt.errorString)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
	if cfg.Port == "" {
		t.Fatal("port must have a default")
	}
}
