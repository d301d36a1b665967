package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"mathgraph/app"
	"mathgraph/hal"
	"mathgraph/internal/config"
)

func main() {
	var hcfg hal.HeadlessConfig
	flags := config.BindFlags(flag.CommandLine)
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.Parse()

	cfg, path, err := flags.Load()
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
	if path != "" {
		fmt.Fprintln(os.Stderr, "config:", path)
	}
	fmt.Fprintln(os.Stderr, "config:", cfg.Summary())

	acfg := app.ConfigFrom(cfg)

	if hcfg.Enabled {
		acfg.Headless = true
		hcfg.Scale = cfg.Window.Zoom
		hcfg.Width = int(float64(cfg.Window.Width) * cfg.Window.Zoom)
		hcfg.Height = int(float64(cfg.Window.Height) * cfg.Window.Zoom)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, func(h hal.HAL) func() error {
			return app.NewWithConfig(h, acfg)
		}, hcfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	wcfg := hal.WindowConfig{Width: cfg.Window.Width, Height: cfg.Window.Height, Zoom: cfg.Window.Zoom}
	if err := hal.RunWindow(wcfg, func(h hal.HAL) func() error {
		return app.NewWithConfig(h, acfg)
	}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
