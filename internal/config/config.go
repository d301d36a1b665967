// Package config loads the plotter configuration.
//
// Config file locations (priority order):
//  1. $MATHGRAPH_CONFIG
//  2. ./mathgraph.yaml
//  3. $XDG_CONFIG_HOME/mathgraph/config.yaml
//  4. ~/.config/mathgraph/config.yaml
//
// Command-line flags override file values after loading.
package config

import (
	"errors"
	"fmt"
	"os"

	"mathgraph/graph/plot"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every Validate error.
var ErrInvalid = errors.New("invalid config")

const (
	defaultWindowWidth  = 800
	defaultWindowHeight = 600
)

// DefaultPalette is the colour choice offered when the config names none.
func DefaultPalette() []PaletteEntry {
	return []PaletteEntry{
		{Name: "blue", Color: mustColor("#3498db")},
		{Name: "red", Color: mustColor("#e74c3c")},
		{Name: "green", Color: mustColor("#2ecc71")},
		{Name: "orange", Color: mustColor("#f39c12")},
		{Name: "purple", Color: mustColor("#9b59b6")},
	}
}

// DefaultExamples lists the built-in example functions.
func DefaultExamples() []Example {
	return []Example{
		{Label: "sine", Expression: "Math.sin(x)"},
		{Label: "cosine", Expression: "Math.cos(x)"},
		{Label: "square", Expression: "x*x"},
		{Label: "square root", Expression: "Math.sqrt(x)"},
		{Label: "absolute value", Expression: "Math.abs(x)"},
		{Label: "logarithm", Expression: "Math.log(x)"},
		{Label: "exponential", Expression: "Math.exp(x)"},
		{Label: "tangent", Expression: "Math.tan(x)"},
	}
}

// Load finds and loads the config file, or returns defaults if none found.
func Load() (*Config, string, error) {
	path := FindConfigPath()
	if path == "" {
		return DefaultConfig(), "", nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, path, nil
}

// Save writes config to the specified path.
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// applyDefaults fills in missing values with defaults.
func (c *Config) applyDefaults() {
	def := plot.DefaultView()
	setDefault(&c.View.XMin, def.DomainMin)
	setDefault(&c.View.XMax, def.DomainMax)
	setDefault(&c.View.YMin, def.RangeMin)
	setDefault(&c.View.YMax, def.RangeMax)
	if c.View.Expression == "" {
		c.View.Expression = def.Expression
	}

	if len(c.Palette) == 0 {
		c.Palette = DefaultPalette()
	}
	if c.View.Color.IsZero() {
		c.View.Color = c.Palette[0].Color
	}
	if len(c.Examples) == 0 {
		c.Examples = DefaultExamples()
	}

	if c.Window.Width <= 0 {
		c.Window.Width = defaultWindowWidth
	}
	if c.Window.Height <= 0 {
		c.Window.Height = defaultWindowHeight
	}
	if c.Window.Zoom <= 0 {
		c.Window.Zoom = 1
	}
}

func setDefault(p **float64, v float64) {
	if *p == nil {
		*p = &v
	}
}

// ViewConfig returns the startup view.
func (c *Config) ViewConfig() plot.ViewConfig {
	v := plot.DefaultView()
	if c.View.XMin != nil {
		v.DomainMin = *c.View.XMin
	}
	if c.View.XMax != nil {
		v.DomainMax = *c.View.XMax
	}
	if c.View.YMin != nil {
		v.RangeMin = *c.View.YMin
	}
	if c.View.YMax != nil {
		v.RangeMax = *c.View.YMax
	}
	if c.View.Expression != "" {
		v.Expression = c.View.Expression
	}
	if !c.View.Color.IsZero() {
		v.Stroke = c.View.Color.RGBA
	}
	return v
}

// Validate reports the first problem that would keep the plotter from starting.
func (c *Config) Validate() error {
	if err := c.ViewConfig().Validate(); err != nil {
		return fmt.Errorf("%w: view: %w", ErrInvalid, err)
	}
	for i, p := range c.Palette {
		if p.Color.IsZero() {
			return fmt.Errorf("%w: palette[%d] %q has no colour", ErrInvalid, i, p.Name)
		}
	}
	for i, ex := range c.Examples {
		if ex.Expression == "" {
			return fmt.Errorf("%w: examples[%d] %q has no expression", ErrInvalid, i, ex.Label)
		}
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	return nil
}

// Summary returns a one-line description for the startup log.
func (c *Config) Summary() string {
	v := c.ViewConfig()
	return fmt.Sprintf("view x=[%g,%g] y=[%g,%g] expr=%q color=%s palette=%d examples=%d",
		v.DomainMin, v.DomainMax, v.RangeMin, v.RangeMax, v.Expression,
		Color{v.Stroke}, len(c.Palette), len(c.Examples))
}
