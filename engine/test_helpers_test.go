package engine_test

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/we/engine"
)

// Common test behaviors and fakes

type countingUpdater struct {
	updates int
	lastDT  float64
}

func (c *countingUpdater) Update(frame *engine.Frame) {
	c.updates++
	c.lastDT = frame.DeltaTime
}

type recordingRenderer struct {
	contexts []engine.RenderContext
}

func (r *recordingRenderer) Render(ctx *engine.RenderContext) {
	r.contexts = append(r.contexts, *ctx)
}

type lifecycleBehavior struct {
	owner    *engine.GameObject
	disposed int
}

func (l *lifecycleBehavior) Init(obj *engine.GameObject) { l.owner = obj }
func (l *lifecycleBehavior) Dispose()                    { l.disposed++ }

type fakeMesh struct {
	data     *engine.VertexData
	renders  int
	disposed bool
}

func (m *fakeMesh) Update(data *engine.VertexData) { m.data = data }
func (m *fakeMesh) Render()                        { m.renders++ }
func (m *fakeMesh) Dispose()                       { m.disposed = true }

type fakeShader struct {
	code     engine.RawShaderCode
	binds    int
	uniforms map[string]mgl32.Mat4
	disposed bool
}

func newFakeShader() *fakeShader {
	return &fakeShader{uniforms: make(map[string]mgl32.Mat4)}
}

func (s *fakeShader) Compile(code engine.RawShaderCode) error {
	s.code = code
	return nil
}
func (s *fakeShader) Bind()                                    { s.binds++ }
func (s *fakeShader) SetUniformMat4(name string, m mgl32.Mat4) { s.uniforms[name] = m }
func (s *fakeShader) Dispose()                                 { s.disposed = true }

type fakeWindow struct {
	listeners []engine.WindowListener
	screen    *engine.FixedScreen
}

func newFakeWindow() *fakeWindow {
	return &fakeWindow{screen: &engine.FixedScreen{Width: 800, Height: 600}}
}

func (w *fakeWindow) RenderingEngine() engine.RenderingEngine   { return nil }
func (w *fakeWindow) Screen() engine.Screen                     { return w.screen }
func (w *fakeWindow) PollEvents()                               {}
func (w *fakeWindow) AddWindowListener(l engine.WindowListener) { w.listeners = append(w.listeners, l) }
func (w *fakeWindow) Dispose()                                  {}

type fakeClock struct {
	now int64
}

func (c *fakeClock) NanoTime() int64 { return c.now }
