package engine

// Key identifies a keyboard key independently of the windowing backend.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyEnter
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeyF1
	keyCount
)

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	mouseButtonCount
)

// Input holds the per-frame input state. Deltas accumulate across events
// until EndFrame is called.
type Input struct {
	keys        [keyCount]bool
	buttons     [mouseButtonCount]bool
	mouseX      float32
	mouseY      float32
	deltaX      float32
	deltaY      float32
	wheelX      float32
	wheelY      float32
	hasMousePos bool
}

func NewInput() *Input {
	return &Input{}
}

func (in *Input) IsKeyDown(key Key) bool {
	if key < 0 || key >= keyCount {
		return false
	}
	return in.keys[key]
}

func (in *Input) IsMouseButtonDown(button MouseButton) bool {
	if button < 0 || button >= mouseButtonCount {
		return false
	}
	return in.buttons[button]
}

// MousePosition returns the last known cursor position in window coordinates.
func (in *Input) MousePosition() (x, y float32) {
	return in.mouseX, in.mouseY
}

// MouseDelta returns the cursor movement accumulated during this frame.
func (in *Input) MouseDelta() (dx, dy float32) {
	return in.deltaX, in.deltaY
}

// MouseWheel returns the scroll accumulated during this frame.
func (in *Input) MouseWheel() (dx, dy float32) {
	return in.wheelX, in.wheelY
}

// EndFrame resets the per-frame deltas.
func (in *Input) EndFrame() {
	in.deltaX = 0
	in.deltaY = 0
	in.wheelX = 0
	in.wheelY = 0
}

// setKey drops KeyUnknown, which backends report for every unmapped key.
func (in *Input) setKey(key Key, down bool) {
	if key <= KeyUnknown || key >= keyCount {
		return
	}
	in.keys[key] = down
}

func (in *Input) setButton(button MouseButton, down bool) {
	if button < 0 || button >= mouseButtonCount {
		return
	}
	in.buttons[button] = down
}

func (in *Input) moveMouse(x, y float32) {
	// The first event only establishes the position.
	if in.hasMousePos {
		in.deltaX += x - in.mouseX
		in.deltaY += y - in.mouseY
	}
	in.mouseX = x
	in.mouseY = y
	in.hasMousePos = true
}

func (in *Input) scroll(dx, dy float32) {
	in.wheelX += dx
	in.wheelY += dy
}

// userControls feeds window events into an Input.
type userControls struct {
	WindowAdapter
	input *Input
}

// BindUserControls registers a listener on window that keeps input up to date.
func BindUserControls(window Window, input *Input) {
	window.AddWindowListener(&userControls{input: input})
}

func (u *userControls) OnKeyPressed(_ Window, key Key)  { u.input.setKey(key, true) }
func (u *userControls) OnKeyReleased(_ Window, key Key) { u.input.setKey(key, false) }

func (u *userControls) OnMouseMoved(_ Window, x, y float32) { u.input.moveMouse(x, y) }

func (u *userControls) OnMousePressed(_ Window, button MouseButton) {
	u.input.setButton(button, true)
}

func (u *userControls) OnMouseReleased(_ Window, button MouseButton) {
	u.input.setButton(button, false)
}

func (u *userControls) OnMouseWheel(_ Window, dx, dy float32) { u.input.scroll(dx, dy) }
