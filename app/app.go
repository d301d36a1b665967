package app

import (
	"mathgraph/graph/plot"
	"mathgraph/hal"
	"mathgraph/internal/buildinfo"
	"mathgraph/internal/config"
)

// Config is the startup state of the plotter.
type Config struct {
	View     plot.ViewConfig
	Palette  []config.PaletteEntry
	Examples []config.Example
	// Headless logs a summary line after every render.
	Headless bool
}

// ConfigFrom builds the app config from a loaded file config.
func ConfigFrom(c *config.Config) Config {
	return Config{
		View:     c.ViewConfig(),
		Palette:  c.Palette,
		Examples: c.Examples,
	}
}

// New starts the plotter with the default config and returns its step function.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, ConfigFrom(config.DefaultConfig()))
}

// NewWithConfig starts the plotter and returns its step function. The host runner calls
// step once per tick; it handles pending input and redraws what changed.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	p := newPlotter(h, cfg)
	if l := h.Logger(); l != nil {
		l.WriteLineString(buildinfo.String())
	}
	return p.guard(p.step)
}
