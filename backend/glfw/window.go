// Package glfw implements engine.Window with GLFW and an OpenGL 4.1 core context.
package glfw

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/plus3/we/backend/opengl"
	"github.com/plus3/we/engine"
)

func init() {
	// GLFW event handling must run on the main thread.
	runtime.LockOSThread()
}

// Window is a GLFW window owning an OpenGL rendering engine.
type Window struct {
	handle    *glfw.Window
	engine    *opengl.RenderingEngine
	screen    *engine.FixedScreen
	listeners []engine.WindowListener
}

// NewWindow initializes GLFW, opens a window and makes its context current.
func NewWindow(settings engine.WindowSettings) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("init glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	if settings.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}

	handle, err := glfw.CreateWindow(settings.Width, settings.Height, settings.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	handle.MakeContextCurrent()

	if settings.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	renderingEngine, err := opengl.NewRenderingEngine()
	if err != nil {
		handle.Destroy()
		glfw.Terminate()
		return nil, err
	}

	width, height := handle.GetFramebufferSize()
	w := &Window{
		handle: handle,
		engine: renderingEngine,
		screen: &engine.FixedScreen{Width: width, Height: height},
	}
	opengl.SetViewport(width, height)
	w.installCallbacks()

	engine.Logger().Info("window created", "title", settings.Title, "width", width, "height", height)
	return w, nil
}

func (w *Window) installCallbacks() {
	w.handle.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.screen.Resize(width, height)
		opengl.SetViewport(width, height)
		for _, l := range w.listeners {
			l.OnWindowResized(w, width, height)
		}
	})

	w.handle.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		k := translateKey(key)
		for _, l := range w.listeners {
			switch action {
			case glfw.Press:
				l.OnKeyPressed(w, k)
			case glfw.Release:
				l.OnKeyReleased(w, k)
			}
		}
	})

	w.handle.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		for _, l := range w.listeners {
			l.OnMouseMoved(w, float32(x), float32(y))
		}
	})

	w.handle.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		b, ok := translateButton(button)
		if !ok {
			return
		}
		for _, l := range w.listeners {
			switch action {
			case glfw.Press:
				l.OnMousePressed(w, b)
			case glfw.Release:
				l.OnMouseReleased(w, b)
			}
		}
	})

	w.handle.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		for _, l := range w.listeners {
			l.OnMouseWheel(w, float32(dx), float32(dy))
		}
	})

	w.handle.SetCloseCallback(func(_ *glfw.Window) {
		for _, l := range w.listeners {
			l.OnWindowRequestClose(w)
		}
	})
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

// PollEvents presents the frame drawn since the previous call and dispatches
// pending window events to the listeners.
func (w *Window) PollEvents() {
	w.handle.SwapBuffers()
	glfw.PollEvents()
}

// Dispose destroys the window and terminates GLFW.
func (w *Window) Dispose() {
	w.engine.Dispose()
	w.handle.Destroy()
	glfw.Terminate()
}

var keyMap = map[glfw.Key]engine.Key{
	glfw.KeyEscape: engine.KeyEscape,
	glfw.KeySpace:  engine.KeySpace,
	glfw.KeyEnter:  engine.KeyEnter,
	glfw.KeyTab:    engine.KeyTab,
	glfw.KeyUp:     engine.KeyUp,
	glfw.KeyDown:   engine.KeyDown,
	glfw.KeyLeft:   engine.KeyLeft,
	glfw.KeyRight:  engine.KeyRight,
	glfw.KeyW:      engine.KeyW,
	glfw.KeyA:      engine.KeyA,
	glfw.KeyS:      engine.KeyS,
	glfw.KeyD:      engine.KeyD,
	glfw.KeyQ:      engine.KeyQ,
	glfw.KeyE:      engine.KeyE,
	glfw.KeyF1:     engine.KeyF1,
}

func translateKey(key glfw.Key) engine.Key {
	if k, ok := keyMap[key]; ok {
		return k
	}
	return engine.KeyUnknown
}

func translateButton(button glfw.MouseButton) (engine.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return engine.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return engine.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return engine.MouseButtonMiddle, true
	}
	return 0, false
}
