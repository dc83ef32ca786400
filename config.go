package main

import (
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"
)

type Config struct {
	Port              string `env:"PORT" envDefault:"8080"`
	GinMode           string `env:"GIN_MODE" envDefault:"debug"`
	ThemeCookie       string `env:"THEME_COOKIE" envDefault:"theme"`
	ThemeCookieMaxAge int    `env:"THEME_COOKIE_MAX_AGE" envDefault:"31536000"`
	SecureCookies     bool   `env:"SECURE_COOKIES" envDefault:"false"`
	MetricsEnabled    bool   `env:"METRICS_ENABLED" envDefault:"true"`
	TrackVisitors     bool   `env:"TRACK_VISITORS" envDefault:"true"`
	VisitorHashSalt   string `env:"VISITOR_HASH_SALT"`
}

// loadConfig reads the environment. A .env file, if present, is already
// loaded by godotenv/autoload before main runs.
func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be a number between 1 and 65535, got %q", c.Port)
	}
	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("GIN_MODE must be debug, release or test, got %q", c.GinMode)
	}
	if c.ThemeCookie == "" {
		return fmt.Errorf("THEME_COOKIE must not be empty")
	}
	if c.ThemeCookieMaxAge <= 0 {
		return fmt.Errorf("THEME_COOKIE_MAX_AGE must be positive, got %d", c.ThemeCookieMaxAge)
	}
	return nil
}
