// Package scene1 builds the rotating cube demo shared by the cmd binaries.
package scene1

import (
	"fmt"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/we/engine"
	"github.com/plus3/we/engine/resource"
)

// MouseSensitivity converts mouse movement in pixels to radians.
const MouseSensitivity = 0.01

// Options selects the assets used by the demo.
type Options struct {
	Config     engine.Config
	Model      string
	VertShader string
	FragShader string
	// WatchShaders recompiles the shader when its source files change.
	WatchShaders bool
	// InputBlocked suppresses mouse rotation while it returns true.
	InputBlocked func() bool
}

// DefaultOptions points at the assets directory next to the binary's working
// directory.
func DefaultOptions(assets string) Options {
	return Options{
		Config:     engine.DefaultConfig(),
		Model:      filepath.Join(assets, "cube.yaml"),
		VertShader: filepath.Join(assets, "shaders", "normal_shader.vert"),
		FragShader: filepath.Join(assets, "shaders", "normal_shader.frag"),
	}
}

// Demo is a scene with one cube that can be rotated by dragging the mouse.
type Demo struct {
	Window engine.Window
	Scene  *engine.Scene
	Camera *engine.Camera
	Loop   *engine.GameLoop
	Input  *engine.Input
	Timer  *engine.Timer
	Cube   *engine.GameObject

	mesh    engine.Mesh
	shader  engine.Shader
	watcher *resource.ShaderWatcher
	blocked func() bool
}

// New loads the demo assets into window and assembles the game loop.
func New(window engine.Window, opts Options) (*Demo, error) {
	d := &Demo{
		Window:  window,
		Scene:   engine.NewScene(),
		Loop:    engine.NewGameLoop(),
		Input:   engine.NewInput(),
		Timer:   engine.NewTimer(engine.NewSystemTime()),
		blocked: opts.InputBlocked,
	}

	resources, err := resource.NewModelLoader().LoadScene(opts.Model)
	if err != nil {
		return nil, err
	}
	if len(resources) == 0 {
		return nil, fmt.Errorf("model %s contains no meshes", opts.Model)
	}
	data, ok := resources[0].VertexData()
	if !ok {
		return nil, fmt.Errorf("resource %s is not a mesh", resources[0].Name)
	}

	code, err := resource.LoadShaderCode(opts.VertShader, opts.FragShader)
	if err != nil {
		return nil, err
	}

	rendering := window.RenderingEngine()
	d.shader = rendering.CreateShader()
	if err := d.shader.Compile(code); err != nil {
		d.shader.Dispose()
		return nil, err
	}
	d.mesh = rendering.CreateMesh()
	d.mesh.Update(data)

	if opts.WatchShaders {
		d.watcher, err = resource.WatchShader(d.shader, opts.VertShader, opts.FragShader)
		if err != nil {
			engine.Logger().Warn("shader hot reload disabled", "error", err)
		}
	}

	d.Cube = engine.NewGameObject(resources[0].Name)
	d.Cube.AddBehavior(&engine.RenderBehavior{Mesh: d.mesh, Material: engine.NewMaterial(d.shader)})
	d.Cube.Transform().SetRotation(mgl32.Quat{W: 1, V: mgl32.Vec3{0.5, 0.5, 0}}.Normalize())
	d.Scene.AddGameObject(d.Cube)

	d.Camera = engine.NewCamera(window.Screen())
	d.Camera.Transform().SetPosition(0, 0, 5)
	opts.Config.Camera.Apply(d.Camera)

	engine.BindUserControls(window, d.Input)
	window.AddWindowListener(&engine.CameraResizer{Camera: d.Camera})
	window.AddWindowListener(&exitListener{loop: d.Loop})

	d.Loop.SetMaxIterations(opts.Config.Loop.MaxIterations)
	d.addActions(rendering.ScreenClearHandler())
	return d, nil
}

func (d *Demo) addActions(clear engine.ScreenClearHandler) {
	d.Loop.AddNamedAction("timer", func() { d.Timer.Tick() })
	d.Loop.AddNamedAction("mouse-rotate", d.rotateCube)
	d.Loop.AddNamedAction("scene-update", func() { d.Scene.Update(d.Timer.Delta()) })
	d.Loop.AddNamedAction("clear", clear.ClearScreen)
	d.Loop.AddNamedAction("render", func() { d.Scene.Renderer().Render(d.Camera) })
	d.Loop.AddNamedAction("end-input", d.Input.EndFrame)
	d.Loop.AddNamedAction("poll-events", d.Window.PollEvents)
	if d.watcher != nil {
		d.Loop.AddNamedAction("shader-reload", func() { _, _ = d.watcher.Poll() })
	}
}

// rotateCube turns the cube while the left mouse button is held.
func (d *Demo) rotateCube() {
	if d.blocked != nil && d.blocked() {
		return
	}
	if !d.Input.IsMouseButtonDown(engine.MouseButtonLeft) {
		return
	}

	dx, dy := d.Input.MouseDelta()
	t := d.Cube.Transform()
	t.RotateX(dy * MouseSensitivity)
	t.RotateY(dx * MouseSensitivity)
}

// Dispose releases the scene and its GPU resources. The window is left to
// the caller.
func (d *Demo) Dispose() {
	if d.watcher != nil {
		if err := d.watcher.Close(); err != nil {
			engine.Logger().Warn("closing shader watcher", "error", err)
		}
	}
	d.Scene.Dispose()
	d.mesh.Dispose()
	d.shader.Dispose()
}

// exitListener stops the loop when Escape is released or when the window asks to close.
type exitListener struct {
	engine.WindowAdapter
	loop *engine.GameLoop
}

func (e *exitListener) OnKeyReleased(_ engine.Window, key engine.Key) {
	if key == engine.KeyEscape {
		e.loop.Stop()
	}
}

func (e *exitListener) OnWindowRequestClose(engine.Window) {
	e.loop.Stop()
}
