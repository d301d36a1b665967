package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	View     ViewSection    `yaml:"view"`
	Palette  []PaletteEntry `yaml:"palette"`
	Examples []Example      `yaml:"examples"`
	Window   WindowSection  `yaml:"window"`
}

// ViewSection is the view shown at startup. Unset bounds take the defaults.
type ViewSection struct {
	XMin       *float64 `yaml:"xmin,omitempty"`
	XMax       *float64 `yaml:"xmax,omitempty"`
	YMin       *float64 `yaml:"ymin,omitempty"`
	YMax       *float64 `yaml:"ymax,omitempty"`
	Expression string   `yaml:"expression,omitempty"`
	Color      Color    `yaml:"color,omitempty"`
}

// PaletteEntry is one selectable curve colour.
type PaletteEntry struct {
	Name  string `yaml:"name"`
	Color Color  `yaml:"color"`
}

// Example is a ready-made expression the user can cycle through.
type Example struct {
	Label      string `yaml:"label"`
	Expression string `yaml:"expr"`
}

// WindowSection sizes the desktop window in logical pixels.
type WindowSection struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Zoom   float64 `yaml:"zoom"`
}

// Color is an opaque RGB colour written as "#rrggbb" (or "#rgb") in YAML.
type Color struct {
	color.RGBA
}

// IsZero reports whether the colour was never set.
func (c Color) IsZero() bool { return c.A == 0 }

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	rgba, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	c.RGBA = rgba
	return nil
}

func (c Color) MarshalYAML() (interface{}, error) {
	if c.IsZero() {
		return "", nil
	}
	return c.String(), nil
}

// ParseColor parses "#rrggbb" or "#rgb"; the leading '#' is optional.
func ParseColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}

func mustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return Color{c}
}
