// Package config loads runtime settings from the environment. Every knob has
// a sensible default so the game runs with no environment at all.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config captures every environment-driven setting.
type Config struct {
	WindowWidth  int    `env:"EMBERVALE_WINDOW_WIDTH" envDefault:"640"`
	WindowHeight int    `env:"EMBERVALE_WINDOW_HEIGHT" envDefault:"480"`
	DataDir      string `env:"EMBERVALE_DATA_DIR" envDefault:"data"`
	SaveDir      string `env:"EMBERVALE_SAVE_DIR"` // empty means the user config dir
	SpriteSheet  string `env:"EMBERVALE_SPRITE_SHEET"`
	LogFile      string `env:"EMBERVALE_LOG_FILE" envDefault:"embervale.log"`
	AudioEnabled bool   `env:"EMBERVALE_AUDIO" envDefault:"false"`
	HUDEnabled   bool   `env:"EMBERVALE_HUD" envDefault:"true"`
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.DataDir == "" {
		return nil, fmt.Errorf("data directory must not be empty")
	}
	return &cfg, nil
}
