// Command plotstat renders expressions off screen and prints what each render drew.
//
// It is used to check a config file's view and examples without opening a window.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"mathgraph/app"
	"mathgraph/graph/plot"
	"mathgraph/hal"
	"mathgraph/internal/config"
)

const (
	defaultWidth  = 400
	defaultHeight = 300
)

type options struct {
	width    int
	height   int
	examples bool
}

func main() {
	var opts options
	flags := config.BindFlags(flag.CommandLine)
	flag.IntVar(&opts.width, "width", defaultWidth, "Plot width in logical pixels.")
	flag.IntVar(&opts.height, "height", defaultHeight, "Plot height in logical pixels.")
	flag.BoolVar(&opts.examples, "examples", false, "Also render every configured example in the same view.")
	flag.Parse()

	if opts.width <= 0 || opts.height <= 0 {
		fmt.Fprintln(os.Stderr, "error: -width and -height must be positive")
		os.Exit(2)
	}

	cfg, _, err := flags.Load()
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	if err := run(cfg, opts, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// errNoCurve is returned when a render drew no curve at all.
var errNoCurve = errors.New("no curve drawn")

type job struct {
	label string
	view  plot.ViewConfig
}

func run(cfg *config.Config, opts options, out, logw io.Writer) error {
	base := cfg.ViewConfig()
	jobs := []job{{label: "view", view: base}}
	if opts.examples {
		for _, ex := range cfg.Examples {
			v := base
			v.Expression = ex.Expression
			jobs = append(jobs, job{label: ex.Label, view: v})
		}
	}

	rec := &plot.Recorder{}
	r := plot.NewRenderer(rec, plot.Options{Evaluator: app.Evaluator, Logger: hal.NewLogger(logw)})
	r.Resize(plot.Surface{PixelWidth: opts.width, PixelHeight: opts.height, Scale: 1})

	var empty []string
	for _, j := range jobs {
		rec.Reset()
		if err := r.Render(j.view); err != nil {
			return fmt.Errorf("%s: %w", j.label, err)
		}
		st := r.Stats()
		fmt.Fprintf(out, "%s: expr=%q samples=%d segments=%d points=%d gaps=%d failures=%d strokes=%d labels=%d\n",
			j.label, st.Expression, st.Samples, st.Paths, st.Points, st.Gaps, st.Failures,
			len(rec.Strokes()), len(rec.Texts()))
		if st.Paths == 0 {
			empty = append(empty, j.label)
		}
	}
	if len(empty) > 0 {
		return fmt.Errorf("%w: %s", errNoCurve, strings.Join(empty, ", "))
	}
	return nil
}
