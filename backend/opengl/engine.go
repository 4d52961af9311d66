// Package opengl implements the engine rendering interfaces on an OpenGL 4.1 core context.
//
// Every call must happen on the thread owning the context.
package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/plus3/we/engine"
)

// RenderingEngine creates OpenGL meshes and shaders.
type RenderingEngine struct {
	clear *ScreenClear
}

// NewRenderingEngine loads the OpenGL function pointers for the current context
// and sets up the default pipeline state.
func NewRenderingEngine() (*RenderingEngine, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init opengl: %w", err)
	}

	engine.Logger().Info("opengl initialized",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)

	return &RenderingEngine{clear: &ScreenClear{Color: [4]float32{0.2, 0.2, 0.2, 1}}}, nil
}

func (r *RenderingEngine) CreateMesh() engine.Mesh {
	return newMesh()
}

func (r *RenderingEngine) CreateShader() engine.Shader {
	return newShader()
}

func (r *RenderingEngine) ScreenClearHandler() engine.ScreenClearHandler {
	return r.clear
}

func (r *RenderingEngine) Dispose() {}

// ScreenClear clears the color and depth buffers.
type ScreenClear struct {
	Color [4]float32
}

func (s *ScreenClear) ClearScreen() {
	gl.ClearColor(s.Color[0], s.Color[1], s.Color[2], s.Color[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetViewport resizes the rendering viewport.
func SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}
