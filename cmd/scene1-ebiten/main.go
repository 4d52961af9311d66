// Command scene1-ebiten renders the cube demo through ebiten's software
// rasterizer, with optional Dear ImGui debug panels.
package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/plus3/we/backend/ebiten"
	"github.com/plus3/we/engine"
	"github.com/plus3/we/engine/debugui"
	debugui_ebiten "github.com/plus3/we/engine/debugui/ebiten"
	"github.com/plus3/we/internal/scene1"
)

func main() {
	configPath := flag.String("config", "assets/engine.toml", "Path to the engine TOML config.")
	assets := flag.String("assets", "assets", "Directory holding the model and shaders.")
	kage := flag.Bool("kage", false, "Use the Kage fragment shader instead of flat shading.")
	debugUI := flag.Bool("debug-ui", false, "Show the scene inspector panels.")
	verbose := flag.Bool("v", false, "Enable debug logging.")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	engine.SetLogger(logger)

	if err := run(*configPath, *assets, *kage, *debugUI); err != nil {
		logger.Error("scene1-ebiten failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath, assets string, kage, debugUI bool) error {
	cfg, err := engine.LoadConfig(configPath)
	if err != nil {
		return err
	}

	window := ebiten.NewWindow(cfg.Window)
	defer window.Dispose()

	opts := scene1.DefaultOptions(assets)
	opts.Config = cfg
	if kage {
		opts.FragShader = filepath.Join(assets, "shaders", "normal_shader.kage")
	}
	if debugUI {
		window.SetOverlay(debugui_ebiten.NewImguiBackend(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height))
		opts.InputBlocked = func() bool { return debugui.CurrentInputState().WantCaptureMouse }
	}

	demo, err := scene1.New(window, opts)
	if err != nil {
		return err
	}
	defer demo.Dispose()

	if debugUI {
		debugui.Spawn(demo.Scene, demo.Camera, demo.Loop, demo.Timer)
	}

	return window.Run(demo.Loop)
}
