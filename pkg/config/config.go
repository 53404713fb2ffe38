package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kass/matchmap/pkg/bounds"
	"github.com/kass/matchmap/pkg/geo"
	"github.com/kass/matchmap/pkg/timezone"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds the CLI configuration. The core packages take their options
// per call; this only supplies the defaults the CLI passes them.
type Config struct {
	Log     LogConfig              `mapstructure:"log"`
	Format  timezone.FormatOptions `mapstructure:"format"`
	Bounds  bounds.Options         `mapstructure:"bounds"`
	Catalog CatalogConfig          `mapstructure:"catalog"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CatalogConfig names extra venue catalog sources
type CatalogConfig struct {
	// File is a gob catalog written by "matchmap catalog sync|export"
	File  string `mapstructure:"file"`
	DSN   string `mapstructure:"dsn"`
	Table string `mapstructure:"table"`
}

// Load reads configuration from defaults, an optional file and MATCHMAP_*
// environment variables. An explicitly named file must exist.
func Load(file string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	format := timezone.DefaultFormatOptions()
	v.SetDefault("format.show_timezone", format.ShowTimezone)
	v.SetDefault("format.show_date", format.ShowDate)
	v.SetDefault("format.show_year", format.ShowYear)
	v.SetDefault("format.time_format", string(format.TimeFormat))

	b := bounds.DefaultOptions()
	v.SetDefault("bounds.min_span", b.MinSpan)
	v.SetDefault("bounds.max_span", b.MaxSpan)
	v.SetDefault("bounds.base_padding", b.BasePadding)
	v.SetDefault("bounds.urban_padding", b.UrbanPadding)
	v.SetDefault("bounds.rural_padding", b.RuralPadding)
	v.SetDefault("bounds.fallback_center.lon", b.FallbackCenter.Lon)
	v.SetDefault("bounds.fallback_center.lat", b.FallbackCenter.Lat)
	v.SetDefault("bounds.default_span", b.DefaultSpan)

	v.SetDefault("catalog.file", "")
	v.SetDefault("catalog.dsn", "")
	v.SetDefault("catalog.table", "venues")

	// Config file
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	} else {
		v.SetConfigName("matchmap")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.matchmap")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	// Environment variables: MATCHMAP_BOUNDS_MIN_SPAN → bounds.min_span
	v.SetEnvPrefix("MATCHMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that configuration values are sane.
func (c *Config) Validate() error {
	var errs []string

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Sprintf("log.level: %v", err))
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		errs = append(errs, fmt.Sprintf("log.format must be text or json, got %q", c.Log.Format))
	}
	if tf := c.Format.TimeFormat; tf != timezone.Format12Hour && tf != timezone.Format24Hour {
		errs = append(errs, fmt.Sprintf("format.time_format must be 12hour or 24hour, got %q", tf))
	}

	spans := map[string]float64{
		"bounds.min_span":      c.Bounds.MinSpan,
		"bounds.max_span":      c.Bounds.MaxSpan,
		"bounds.base_padding":  c.Bounds.BasePadding,
		"bounds.urban_padding": c.Bounds.UrbanPadding,
		"bounds.rural_padding": c.Bounds.RuralPadding,
		"bounds.default_span":  c.Bounds.DefaultSpan,
	}
	for _, key := range []string{
		"bounds.min_span", "bounds.max_span", "bounds.base_padding",
		"bounds.urban_padding", "bounds.rural_padding", "bounds.default_span",
	} {
		if spans[key] <= 0 {
			errs = append(errs, fmt.Sprintf("%s must be positive, got %v", key, spans[key]))
		}
	}
	if c.Bounds.MinSpan > c.Bounds.MaxSpan {
		errs = append(errs, "bounds.min_span must not exceed bounds.max_span")
	}
	if !geo.ValidPoint(c.Bounds.FallbackCenter) {
		errs = append(errs, "bounds.fallback_center is out of range")
	}

	if c.Catalog.DSN != "" && c.Catalog.Table == "" {
		errs = append(errs, "catalog.table is required with catalog.dsn")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
