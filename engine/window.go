package engine

// Window is a native window with a rendering context.
type Window interface {
	RenderingEngine() RenderingEngine
	Screen() Screen
	PollEvents()
	AddWindowListener(l WindowListener)
	Dispose()
}

// WindowListener receives window events from PollEvents.
type WindowListener interface {
	OnWindowResized(w Window, width, height int)
	OnKeyPressed(w Window, key Key)
	OnKeyReleased(w Window, key Key)
	OnMouseMoved(w Window, x, y float32)
	OnMousePressed(w Window, button MouseButton)
	OnMouseReleased(w Window, button MouseButton)
	OnMouseWheel(w Window, dx, dy float32)
	OnWindowRequestClose(w Window)
}

// WindowAdapter implements WindowListener with no-ops. Embed it to handle a subset of events.
type WindowAdapter struct{}

func (WindowAdapter) OnWindowResized(Window, int, int)      {}
func (WindowAdapter) OnKeyPressed(Window, Key)              {}
func (WindowAdapter) OnKeyReleased(Window, Key)             {}
func (WindowAdapter) OnMouseMoved(Window, float32, float32) {}
func (WindowAdapter) OnMousePressed(Window, MouseButton)    {}
func (WindowAdapter) OnMouseReleased(Window, MouseButton)   {}
func (WindowAdapter) OnMouseWheel(Window, float32, float32) {}
func (WindowAdapter) OnWindowRequestClose(Window)           {}

// WindowSettings describes the window to create.
type WindowSettings struct {
	Title     string `toml:"title"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	VSync     bool   `toml:"vsync"`
	Resizable bool   `toml:"resizable"`
}

// DefaultWindowSettings returns an 800x600 resizable window with vsync.
func DefaultWindowSettings() WindowSettings {
	return WindowSettings{
		Title:     "Untitled",
		Width:     800,
		Height:    600,
		VSync:     true,
		Resizable: true,
	}
}

// CameraResizer is a WindowListener that refreshes a camera's projection on resize.
type CameraResizer struct {
	WindowAdapter
	Camera *Camera
}

func (c *CameraResizer) OnWindowResized(Window, int, int) {
	c.Camera.Refresh()
}
