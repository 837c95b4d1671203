package main

import (
	"github.com/spf13/viper"

	"github.com/phanxgames/sanctuary"
	"github.com/phanxgames/sanctuary/window"
)

// Config holds all runtime configuration for a session.
// Values are populated from .sanctuary.toml, SANCTUARY_* env vars, and CLI flags.
type Config struct {
	Width         int          `mapstructure:"width"`
	Height        int          `mapstructure:"height"`
	Seed          int64        `mapstructure:"seed"`
	Journal       string       `mapstructure:"journal"`
	ScreenshotDir string       `mapstructure:"screenshot_dir"`
	DragDeadZone  float64      `mapstructure:"drag_dead_zone"`
	TwinklePeriod float64      `mapstructure:"twinkle_period"`
	Debug         bool         `mapstructure:"debug"`
	Window        WindowConfig `mapstructure:"window"`
}

// WindowConfig holds options for the interactive window.
type WindowConfig struct {
	Title string  `mapstructure:"title"`
	Scale float64 `mapstructure:"scale"`
	HUD   bool    `mapstructure:"hud"`
	Audio bool    `mapstructure:"audio"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("width", 800)
	viper.SetDefault("height", 500)
	viper.SetDefault("seed", 0)
	viper.SetDefault("journal", "gratitude.txt")
	viper.SetDefault("screenshot_dir", "screenshots")
	viper.SetDefault("drag_dead_zone", 4.0)
	viper.SetDefault("twinkle_period", 2.4)
	viper.SetDefault("debug", false)
	viper.SetDefault("window.title", "Sanctuary")
	viper.SetDefault("window.scale", 1.0)
	viper.SetDefault("window.hud", true)
	viper.SetDefault("window.audio", true)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}

// controllerConfig maps the loaded configuration onto the core.
func (c Config) controllerConfig() sanctuary.Config {
	return sanctuary.Config{
		Width:         c.Width,
		Height:        c.Height,
		Seed:          uint64(c.Seed),
		DragDeadZone:  c.DragDeadZone,
		TwinklePeriod: float32(c.TwinklePeriod),
		ScreenshotDir: c.ScreenshotDir,
		Debug:         c.Debug,
	}
}

// windowConfig maps the loaded configuration onto the window shell.
func (c Config) windowConfig() window.Config {
	return window.Config{
		Title: c.Window.Title,
		Scale: c.Window.Scale,
		HUD:   c.Window.HUD,
		Audio: c.Window.Audio,
	}
}
