// Command scene1 renders a cube that can be rotated with the mouse, using
// GLFW and OpenGL 4.1.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/plus3/we/backend/glfw"
	"github.com/plus3/we/engine"
	"github.com/plus3/we/internal/scene1"
)

func main() {
	configPath := flag.String("config", "assets/engine.toml", "Path to the engine TOML config.")
	assets := flag.String("assets", "assets", "Directory holding the model and shaders.")
	watch := flag.Bool("watch", false, "Recompile the shader when its source changes.")
	verbose := flag.Bool("v", false, "Enable debug logging.")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	engine.SetLogger(logger)

	if err := run(*configPath, *assets, *watch); err != nil {
		logger.Error("scene1 failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath, assets string, watch bool) error {
	cfg, err := engine.LoadConfig(configPath)
	if err != nil {
		return err
	}

	window, err := glfw.NewWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer window.Dispose()

	opts := scene1.DefaultOptions(assets)
	opts.Config = cfg
	opts.WatchShaders = watch

	demo, err := scene1.New(window, opts)
	if err != nil {
		return err
	}
	defer demo.Dispose()

	demo.Loop.Loop()
	return nil
}
