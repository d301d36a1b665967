package plot

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// ErrInvalidView is wrapped by every ViewError.
var ErrInvalidView = errors.New("invalid view")

// ViewError reports a view configuration that cannot be rendered.
type ViewError struct {
	Field  string
	Reason string
}

func (e *ViewError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidView, e.Field, e.Reason)
}

func (e *ViewError) Unwrap() error { return ErrInvalidView }

// ViewConfig is everything one render pass needs to know about what to draw.
type ViewConfig struct {
	DomainMin float64
	DomainMax float64
	RangeMin  float64
	RangeMax  float64

	Stroke     color.RGBA
	Expression string
}

// DefaultStroke is the first colour of the default palette (#3498db).
var DefaultStroke = color.RGBA{R: 0x34, G: 0x98, B: 0xDB, A: 0xFF}

// DefaultView returns the view shown before the user changes anything.
func DefaultView() ViewConfig {
	return ViewConfig{
		DomainMin:  -10,
		DomainMax:  10,
		RangeMin:   -5,
		RangeMax:   5,
		Stroke:     DefaultStroke,
		Expression: "Math.sin(x)",
	}
}

// Validate checks that both intervals are finite and non-empty.
func (v ViewConfig) Validate() error {
	if err := validateInterval("domain", v.DomainMin, v.DomainMax); err != nil {
		return err
	}
	return validateInterval("range", v.RangeMin, v.RangeMax)
}

func validateInterval(name string, lo, hi float64) error {
	switch {
	case !isFinite(lo):
		return &ViewError{Field: name + " min", Reason: "must be finite"}
	case !isFinite(hi):
		return &ViewError{Field: name + " max", Reason: "must be finite"}
	case lo >= hi:
		return &ViewError{Field: name, Reason: fmt.Sprintf("min %g must be below max %g", lo, hi)}
	case !isFinite(hi - lo):
		return &ViewError{Field: name, Reason: "span overflows"}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Surface describes the drawing target in device pixels.
type Surface struct {
	PixelWidth  int
	PixelHeight int
	// Scale is the number of device pixels per logical pixel.
	Scale float64
}

func (s Surface) valid() bool {
	return s.PixelWidth > 0 && s.PixelHeight > 0 && s.Scale > 0 && isFinite(s.Scale)
}

// Logical returns the surface size in logical pixels.
func (s Surface) Logical() (w, h float64) {
	if !s.valid() {
		return 0, 0
	}
	return float64(s.PixelWidth) / s.Scale, float64(s.PixelHeight) / s.Scale
}
