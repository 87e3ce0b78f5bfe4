// Command triangle opens a window and creates a Vulkan instance, with
// validation layers unless built with -tags release, then waits for the
// window to be closed.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"dasa.cc/triangle/app"
	"dasa.cc/triangle/nui/desktop"
	"dasa.cc/triangle/vk"
	"dasa.cc/triangle/vk/loader"
)

var (
	flagConfig     = flag.String("config", "", "TOML file overriding the default window and application settings.")
	flagValidation = flag.Bool("validation", app.DefaultConfig().Validation, "enable validation layers")
	flagVerbose    = flag.Bool("v", false, "log debug output to stderr")
)

// glfw must be driven from the main thread.
func init() { runtime.LockOSThread() }

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *flagVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	vk.SetLogger(logger)

	cfg := app.DefaultConfig()
	if *flagConfig != "" {
		var err error
		if cfg, err = app.LoadConfig(*flagConfig); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "validation" {
			cfg.Validation = *flagValidation
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	platform := desktop.Platform{}
	b := &app.Bootstrapper{
		Config:   cfg,
		Platform: platform,
		OpenDriver: func() (vk.Driver, error) {
			d, err := loader.Open(platform.ProcAddr())
			if err != nil {
				return nil, err
			}
			return d, nil
		},
		Diagnostics: os.Stdout,
		Log:         logger,
	}
	if err := b.Run(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
