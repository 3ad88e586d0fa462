// Package config loads tool configuration from an optional YAML file and
// DTCORBIT_* environment variables, with sane defaults for every key.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the complete tool configuration.
type Config struct {
	Groups    GroupsConfig    `mapstructure:"groups"`
	Source    SourceConfig    `mapstructure:"source"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Histogram HistogramConfig `mapstructure:"histogram"`
	Chart     ChartConfig     `mapstructure:"chart"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// GroupsConfig names the CelesTrak constellation groups each tool analyzes.
type GroupsConfig struct {
	Inclination string `mapstructure:"inclination"`
	Altitude    string `mapstructure:"altitude"`
}

// SourceConfig holds the catalog endpoint configuration.
type SourceConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// CacheConfig holds the on-disk TLE cache configuration.
type CacheConfig struct {
	Dir    string        `mapstructure:"dir"`
	MaxAge time.Duration `mapstructure:"max_age"`
}

// HistogramConfig holds the altitude histogram configuration.
type HistogramConfig struct {
	Bins int `mapstructure:"bins"`
}

// ChartConfig holds the rendered chart configuration.
type ChartConfig struct {
	OutputPath string `mapstructure:"output_path"`
}

// MetricsConfig holds the optional Pushgateway configuration. An empty
// gateway URL disables the push.
type MetricsConfig struct {
	PushgatewayURL string `mapstructure:"pushgateway_url"`
	Job            string `mapstructure:"job"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration. path may be empty, in which case only defaults
// and environment variables apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("DTCORBIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("groups.inclination", "iridium-next")
	v.SetDefault("groups.altitude", "starlink")

	v.SetDefault("source.base_url", "https://celestrak.org/NORAD/elements/gp.php")
	v.SetDefault("source.timeout", "30s")

	v.SetDefault("cache.dir", "data")
	v.SetDefault("cache.max_age", "24h")

	v.SetDefault("histogram.bins", 9)

	v.SetDefault("chart.output_path", "starlink_altitude_histogram.png")

	v.SetDefault("metrics.pushgateway_url", "")
	v.SetDefault("metrics.job", "dtcorbit")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// Validate checks that all configuration values are usable.
func (c *Config) Validate() error {
	if c.Groups.Inclination == "" {
		return fmt.Errorf("groups.inclination is required")
	}
	if c.Groups.Altitude == "" {
		return fmt.Errorf("groups.altitude is required")
	}
	if c.Source.BaseURL == "" {
		return fmt.Errorf("source.base_url is required")
	}
	if c.Source.Timeout <= 0 {
		return fmt.Errorf("source.timeout must be positive")
	}
	if c.Cache.Dir == "" {
		return fmt.Errorf("cache.dir is required")
	}
	if c.Cache.MaxAge <= 0 {
		return fmt.Errorf("cache.max_age must be positive")
	}
	if c.Histogram.Bins < 1 {
		return fmt.Errorf("histogram.bins must be at least 1")
	}
	if c.Chart.OutputPath == "" {
		return fmt.Errorf("chart.output_path is required")
	}
	if c.Metrics.PushgatewayURL != "" && c.Metrics.Job == "" {
		return fmt.Errorf("metrics.job is required when a pushgateway is configured")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be one of: json, text")
	}

	return nil
}
