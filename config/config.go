// Package config loads desktop settings from file, environment, and flags
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/retrodesk/core"
	"github.com/lixenwraith/retrodesk/render"
)

// Panel kinds
const (
	KindConsole = "console"
	KindStatic  = "static"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is the full desktop configuration
type Config struct {
	Background string        `mapstructure:"background"`
	Console    ConsoleConfig `mapstructure:"console"`
	Keymap     KeymapConfig  `mapstructure:"keymap"`
	Loop       LoopConfig    `mapstructure:"loop"`
	Audio      AudioConfig   `mapstructure:"audio"`
	Log        LogConfig     `mapstructure:"log"`
	Panels     []PanelConfig `mapstructure:"panels"`
}

type ConsoleConfig struct {
	Banner   string `mapstructure:"banner"`
	Prompt   string `mapstructure:"prompt"`
	Capacity int    `mapstructure:"capacity"`
}

type KeymapConfig struct {
	File string `mapstructure:"file"`
}

type LoopConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

type LogConfig struct {
	File  string `mapstructure:"file"`
	Debug bool   `mapstructure:"debug"`
}

// PanelConfig places one panel, listed bottom to top
type PanelConfig struct {
	Kind  string `mapstructure:"kind"`
	Name  string `mapstructure:"name"`
	X     int    `mapstructure:"x"`
	Y     int    `mapstructure:"y"`
	W     int    `mapstructure:"w"`
	H     int    `mapstructure:"h"`
	Color string `mapstructure:"color"` // Hex, empty uses the kind's default
}

// Rect returns the panel bounds
func (p PanelConfig) Rect() core.Rect {
	return core.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// RGB parses Color, returning fallback when unset
func (p PanelConfig) RGB(fallback render.RGB) (render.RGB, error) {
	if p.Color == "" {
		return fallback, nil
	}
	return render.ParseHex(p.Color)
}

// BackgroundRGB parses the desktop background color
func (c *Config) BackgroundRGB() (render.RGB, error) {
	if c.Background == "" {
		return render.RgbBackground, nil
	}
	return render.ParseHex(c.Background)
}

// Validate reports the first setting that cannot drive a desktop
func (c *Config) Validate() error {
	if c.Console.Capacity < 1 {
		return fmt.Errorf("%w: console.capacity must be positive, got %d", ErrInvalidConfig, c.Console.Capacity)
	}
	if c.Loop.Interval <= 0 {
		return fmt.Errorf("%w: loop.interval must be positive, got %s", ErrInvalidConfig, c.Loop.Interval)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume must be within [0,1], got %g", ErrInvalidConfig, c.Audio.Volume)
	}
	if _, err := c.BackgroundRGB(); err != nil {
		return fmt.Errorf("%w: background: %v", ErrInvalidConfig, err)
	}

	for i, p := range c.Panels {
		switch p.Kind {
		case KindConsole, KindStatic:
		default:
			return fmt.Errorf("%w: panels[%d]: unknown kind %q", ErrInvalidConfig, i, p.Kind)
		}
		if p.W <= 0 || p.H <= 0 {
			return fmt.Errorf("%w: panels[%d]: size %dx%d", ErrInvalidConfig, i, p.W, p.H)
		}
		if _, err := p.RGB(render.RGBBlack); err != nil {
			return fmt.Errorf("%w: panels[%d]: color: %v", ErrInvalidConfig, i, err)
		}
	}
	return nil
}
