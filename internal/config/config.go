// Package config loads service settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the service settings. Command-line flags override these
// values.
type Config struct {
	DBPath            string `env:"GILDEDROSE_DB" envDefault:"gildedrose.sqlite3"`
	Addr              string `env:"GILDEDROSE_ADDR" envDefault:":8080"`
	AdminUser         string `env:"GILDEDROSE_ADMIN" envDefault:"Admin"`
	LogPath           string `env:"GILDEDROSE_LOG"`
	ImageMaxDimension int    `env:"GILDEDROSE_IMAGE_MAX_DIM" envDefault:"1024"`
}

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ImageMaxDimension <= 0 {
		return Config{}, fmt.Errorf("GILDEDROSE_IMAGE_MAX_DIM must be positive, got %d", cfg.ImageMaxDimension)
	}
	return cfg, nil
}
