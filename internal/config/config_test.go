package config

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Backend.BaseURL != "http://localhost:8000" {
		t.Errorf("default base_url = %q", cfg.Backend.BaseURL)
	}
	if cfg.Backend.TimeoutSeconds != 15 {
		t.Errorf("default timeout = %d, want 15", cfg.Backend.TimeoutSeconds)
	}
	if cfg.Display.DistanceUnit != "km" {
		t.Errorf("default unit = %q, want km", cfg.Display.DistanceUnit)
	}
	if cfg.Display.DefaultFilter != "All" {
		t.Errorf("default filter = %q, want All", cfg.Display.DefaultFilter)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid defaults",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing base url",
			mutate:  func(c *Config) { c.Backend.BaseURL = "" },
			wantErr: "base_url",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.Backend.TimeoutSeconds = -1 },
			wantErr: "timeout_seconds",
		},
		{
			name:   "miles unit",
			mutate: func(c *Config) { c.Display.DistanceUnit = "mi" },
		},
		{
			name:    "bad unit",
			mutate:  func(c *Config) { c.Display.DistanceUnit = "furlongs" },
			wantErr: "distance_unit",
		},
		{
			name:   "empty unit allowed",
			mutate: func(c *Config) { c.Display.DistanceUnit = "" },
		},
		{
			name:   "ride filter",
			mutate: func(c *Config) { c.Display.DefaultFilter = "Ride" },
		},
		{
			name:    "bad filter",
			mutate:  func(c *Config) { c.Display.DefaultFilter = "Swim" },
			wantErr: "default_filter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error mentioning %q", err, tt.wantErr)
			}
		})
	}
}
