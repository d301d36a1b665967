package config

import (
	"flag"
	"fmt"
)

// Flags binds the command-line overrides shared by the plotter binaries.
type Flags struct {
	fs *flag.FlagSet

	Path  string
	Expr  string
	XMin  float64
	XMax  float64
	YMin  float64
	YMax  float64
	Color string
}

// BindFlags registers -config, -expr, -xmin, -xmax, -ymin, -ymax and -color on fs.
func BindFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.Path, "config", "", "Config file path (default: search $"+EnvConfigPath+", ./"+ConfigFileName+", ~/.config/"+ConfigDirName+").")
	fs.StringVar(&f.Expr, "expr", "", "Expression in x to plot.")
	fs.Float64Var(&f.XMin, "xmin", 0, "Left end of the x range.")
	fs.Float64Var(&f.XMax, "xmax", 0, "Right end of the x range.")
	fs.Float64Var(&f.YMin, "ymin", 0, "Bottom of the y range.")
	fs.Float64Var(&f.YMax, "ymax", 0, "Top of the y range.")
	fs.StringVar(&f.Color, "color", "", "Curve colour as #rrggbb.")
	return f
}

// Load loads the config file named by -config (or found by FindConfigPath) and applies
// the flags that were set explicitly. Call it after the flag set is parsed.
func (f *Flags) Load() (*Config, string, error) {
	var (
		cfg  *Config
		path string
		err  error
	)
	if f.Path != "" {
		cfg, path, err = LoadFromPath(f.Path)
	} else {
		cfg, path, err = Load()
	}
	if err != nil {
		return nil, path, err
	}
	if err := f.Apply(cfg); err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// Apply copies the explicitly set flags into cfg.
func (f *Flags) Apply(cfg *Config) error {
	var err error
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "expr":
			cfg.View.Expression = f.Expr
		case "xmin":
			cfg.View.XMin = float64Ptr(f.XMin)
		case "xmax":
			cfg.View.XMax = float64Ptr(f.XMax)
		case "ymin":
			cfg.View.YMin = float64Ptr(f.YMin)
		case "ymax":
			cfg.View.YMax = float64Ptr(f.YMax)
		case "color":
			c, perr := ParseColor(f.Color)
			if perr != nil {
				err = fmt.Errorf("-color: %w", perr)
				return
			}
			cfg.View.Color = Color{c}
		}
	})
	return err
}

func float64Ptr(v float64) *float64 { return &v }
