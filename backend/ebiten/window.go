// Package ebiten implements engine.Window on top of ebiten.
//
// ebiten owns the frame loop, so the engine's GameLoop is driven one
// iteration per ebiten update through Run instead of GameLoop.Loop.
package ebiten

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/we/engine"
)

// Overlay is drawn on top of the scene, e.g. a Dear ImGui backend.
type Overlay interface {
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(width, height int)
}

// Window renders into an offscreen image presented by ebiten every frame.
type Window struct {
	settings  engine.WindowSettings
	engine    *RenderingEngine
	screen    *engine.FixedScreen
	target    *ebiten.Image
	listeners []engine.WindowListener
	pending   []func()
	overlay   Overlay
	mouseX    int
	mouseY    int
}

// NewWindow configures the ebiten window. Nothing is shown until Run.
func NewWindow(settings engine.WindowSettings) *Window {
	ebiten.SetWindowSize(settings.Width, settings.Height)
	ebiten.SetWindowTitle(settings.Title)
	ebiten.SetVsyncEnabled(settings.VSync)
	if settings.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetWindowClosingHandled(true)

	w := &Window{
		settings: settings,
		screen:   &engine.FixedScreen{Width: settings.Width, Height: settings.Height},
		target:   ebiten.NewImage(settings.Width, settings.Height),
	}
	w.engine = newRenderingEngine(w)
	return w
}

// SetOverlay installs an overlay drawn after the scene.
func (w *Window) SetOverlay(o Overlay) {
	w.overlay = o
}

func (w *Window) RenderingEngine() engine.RenderingEngine {
	return w.engine
}

func (w *Window) Screen() engine.Screen {
	return w.screen
}

func (w *Window) AddWindowListener(l engine.WindowListener) {
	w.listeners = append(w.listeners, l)
}

// PollEvents dispatches the input events gathered at the start of this ebiten update.
func (w *Window) PollEvents() {
	events := w.pending
	w.pending = nil
	for _, dispatch := range events {
		dispatch()
	}
}

func (w *Window) Dispose() {
	w.engine.Dispose()
	w.target.Deallocate()
}

// Run drives loop from ebiten's update callback until the loop is stopped.
func (w *Window) Run(loop *engine.GameLoop) error {
	loop.Start()
	err := ebiten.RunGame(&game{window: w, loop: loop})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (w *Window) queue(fn func(l engine.WindowListener)) {
	w.pending = append(w.pending, func() {
		for _, l := range w.listeners {
			fn(l)
		}
	})
}

func (w *Window) gatherInput() {
	for key, k := range keyMap {
		if inpututil.IsKeyJustPressed(key) {
			w.queue(func(l engine.WindowListener) { l.OnKeyPressed(w, k) })
		}
		if inpututil.IsKeyJustReleased(key) {
			w.queue(func(l engine.WindowListener) { l.OnKeyReleased(w, k) })
		}
	}

	x, y := ebiten.CursorPosition()
	if x != w.mouseX || y != w.mouseY {
		w.mouseX, w.mouseY = x, y
		w.queue(func(l engine.WindowListener) { l.OnMouseMoved(w, float32(x), float32(y)) })
	}

	for button, b := range buttonMap {
		if inpututil.IsMouseButtonJustPressed(button) {
			w.queue(func(l engine.WindowListener) { l.OnMousePressed(w, b) })
		}
		if inpututil.IsMouseButtonJustReleased(button) {
			w.queue(func(l engine.WindowListener) { l.OnMouseReleased(w, b) })
		}
	}

	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		w.queue(func(l engine.WindowListener) { l.OnMouseWheel(w, float32(dx), float32(dy)) })
	}

	if ebiten.IsWindowBeingClosed() {
		w.queue(func(l engine.WindowListener) { l.OnWindowRequestClose(w) })
	}
}

func (w *Window) resize(width, height int) {
	if width == w.screen.Width && height == w.screen.Height {
		return
	}
	w.screen.Resize(width, height)
	w.target.Deallocate()
	w.target = ebiten.NewImage(width, height)
	w.queue(func(l engine.WindowListener) { l.OnWindowResized(w, width, height) })
}

type game struct {
	window *Window
	loop   *engine.GameLoop
}

func (g *game) Update() error {
	if !g.loop.Running() {
		return ebiten.Termination
	}

	g.window.gatherInput()

	if g.window.overlay != nil {
		g.window.overlay.BeginFrame()
	}
	g.loop.Once()
	if g.window.overlay != nil {
		g.window.overlay.EndFrame()
	}

	if !g.loop.Running() {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.window.target, nil)
	if g.window.overlay != nil {
		g.window.overlay.Draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.window.resize(outsideWidth, outsideHeight)
	if g.window.overlay != nil {
		g.window.overlay.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

var keyMap = map[ebiten.Key]engine.Key{
	ebiten.KeyEscape:     engine.KeyEscape,
	ebiten.KeySpace:      engine.KeySpace,
	ebiten.KeyEnter:      engine.KeyEnter,
	ebiten.KeyTab:        engine.KeyTab,
	ebiten.KeyArrowUp:    engine.KeyUp,
	ebiten.KeyArrowDown:  engine.KeyDown,
	ebiten.KeyArrowLeft:  engine.KeyLeft,
	ebiten.KeyArrowRight: engine.KeyRight,
	ebiten.KeyW:          engine.KeyW,
	ebiten.KeyA:          engine.KeyA,
	ebiten.KeyS:          engine.KeyS,
	ebiten.KeyD:          engine.KeyD,
	ebiten.KeyQ:          engine.KeyQ,
	ebiten.KeyE:          engine.KeyE,
	ebiten.KeyF1:         engine.KeyF1,
}

var buttonMap = map[ebiten.MouseButton]engine.MouseButton{
	ebiten.MouseButtonLeft:   engine.MouseButtonLeft,
	ebiten.MouseButtonRight:  engine.MouseButtonRight,
	ebiten.MouseButtonMiddle: engine.MouseButtonMiddle,
}
