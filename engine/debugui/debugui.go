// Package debugui provides Dear ImGui inspector windows for a running scene.
// Panels are attached to a game object through ImguiItem behaviors and render
// at the end of each scene update.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/we/engine"
)

// ImguiItem is a behavior holding a Dear ImGui render function.
// Attach it to objects that should draw ImGui widgets each frame.
type ImguiItem struct {
	Render func()
}

// Update defers the render function until the frame's commands are flushed,
// so widgets see the scene after every behavior has updated.
func (i *ImguiItem) Update(frame *engine.Frame) {
	if i.Render != nil {
		frame.Commands.Defer(i.Render)
	}
}

// InputState reports whether ImGui wants to consume mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// CurrentInputState reads the capture flags from the current ImGui context.
func CurrentInputState() InputState {
	io := imgui.CurrentIO()
	return InputState{
		WantCaptureMouse:    io.WantCaptureMouse(),
		WantCaptureKeyboard: io.WantCaptureKeyboard(),
	}
}

// Spawn adds a game object carrying the scene browser, object inspector,
// camera panel and loop statistics windows to scene.
func Spawn(scene *engine.Scene, camera *engine.Camera, loop *engine.GameLoop, timer *engine.Timer) *engine.GameObject {
	browser := NewSceneBrowser(100)
	inspector := NewObjectInspector()
	cameraPanel := NewCameraPanel()
	stats := NewLoopStatsPanel(120)

	obj := engine.NewGameObject("debug-ui")
	obj.AddBehavior(&ImguiItem{Render: func() {
		browser.Render(scene)
		inspector.Render(scene.GameObject(browser.Selected()))
		cameraPanel.Render(camera)
		stats.Render(loop, float32(timer.Delta()))
	}})
	scene.AddGameObject(obj)
	return obj
}
