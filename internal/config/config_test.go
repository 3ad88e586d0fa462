package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}

	if cfg.Groups.Inclination != "iridium-next" {
		t.Errorf("groups.inclination = %q, want iridium-next", cfg.Groups.Inclination)
	}
	if cfg.Groups.Altitude != "starlink" {
		t.Errorf("groups.altitude = %q, want starlink", cfg.Groups.Altitude)
	}
	if cfg.Cache.MaxAge != 24*time.Hour {
		t.Errorf("cache.max_age = %v, want 24h", cfg.Cache.MaxAge)
	}
	if cfg.Histogram.Bins != 9 {
		t.Errorf("histogram.bins = %d, want 9", cfg.Histogram.Bins)
	}
	if cfg.Metrics.PushgatewayURL != "" {
		t.Errorf("metrics.pushgateway_url should default empty, got %q", cfg.Metrics.PushgatewayURL)
	}
}

func TestLoadFile(t *testing.T) {
	content := `
groups:
  inclination: oneweb
  altitude: starlink

source:
  base_url: "https://example.org/gp.php"
  timeout: 10s

cache:
  dir: "/tmp/dtcorbit-test"
  max_age: 12h

histogram:
  bins: 5

chart:
  output_path: "out.png"

metrics:
  pushgateway_url: "http://localhost:9091"
  job: "dtcorbit-test"

logging:
  level: "debug"
  format: "text"
`
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	if cfg.Groups.Inclination != "oneweb" {
		t.Errorf("groups.inclination = %q, want oneweb", cfg.Groups.Inclination)
	}
	if cfg.Source.Timeout != 10*time.Second {
		t.Errorf("source.timeout = %v, want 10s", cfg.Source.Timeout)
	}
	if cfg.Cache.MaxAge != 12*time.Hour {
		t.Errorf("cache.max_age = %v, want 12h", cfg.Cache.MaxAge)
	}
	if cfg.Histogram.Bins != 5 {
		t.Errorf("histogram.bins = %d, want 5", cfg.Histogram.Bins)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("logging.format = %q, want text", cfg.Logging.Format)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/dtcorbit.yaml"); err == nil {
		t.Fatal("expected error for missing config file, got nil")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	base := func() *Config {
		cfg, err := Load("")
		if err != nil {
			t.Fatal(err)
		}
		return cfg
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty inclination group", func(c *Config) { c.Groups.Inclination = "" }},
		{"zero timeout", func(c *Config) { c.Source.Timeout = 0 }},
		{"empty cache dir", func(c *Config) { c.Cache.Dir = "" }},
		{"negative max age", func(c *Config) { c.Cache.MaxAge = -time.Hour }},
		{"zero bins", func(c *Config) { c.Histogram.Bins = 0 }},
		{"empty chart path", func(c *Config) { c.Chart.OutputPath = "" }},
		{"pushgateway without job", func(c *Config) {
			c.Metrics.PushgatewayURL = "http://localhost:9091"
			c.Metrics.Job = ""
		}},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
