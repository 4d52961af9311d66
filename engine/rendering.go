package engine

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrShaderCompile = errors.New("shader compilation failed")
	ErrDisposed      = errors.New("resource already disposed")
)

// VertexData is an interleaved vertex buffer with an index list.
// Attributes lists the float count of each attribute in order, e.g. {3, 3}
// for position followed by normal.
type VertexData struct {
	Data       []float32
	Triangles  []uint16
	Attributes []int
}

// Stride returns the number of floats per vertex.
func (v *VertexData) Stride() int {
	stride := 0
	for _, size := range v.Attributes {
		stride += size
	}
	return stride
}

// VertexCount returns the number of vertices held in Data.
func (v *VertexData) VertexCount() int {
	stride := v.Stride()
	if stride == 0 {
		return 0
	}
	return len(v.Data) / stride
}

// RawShaderCode holds uncompiled shader sources.
type RawShaderCode struct {
	Vert string
	Frag string
}

// Mesh is a GPU-side vertex buffer.
type Mesh interface {
	Update(data *VertexData)
	Render()
	Dispose()
}

// Shader is a compiled GPU program.
type Shader interface {
	Compile(code RawShaderCode) error
	Bind()
	SetUniformMat4(name string, m mgl32.Mat4)
	Dispose()
}

// ScreenClearHandler clears the render target at the start of a frame.
type ScreenClearHandler interface {
	ClearScreen()
}

// RenderingEngine creates GPU resources for a window.
type RenderingEngine interface {
	CreateMesh() Mesh
	CreateShader() Shader
	ScreenClearHandler() ScreenClearHandler
	Dispose()
}

// Material binds a shader for rendering.
type Material struct {
	shader Shader
}

func NewMaterial(shader Shader) *Material {
	return &Material{shader: shader}
}

func (m *Material) Shader() Shader {
	return m.shader
}

// Bind activates the shader.
func (m *Material) Bind() {
	m.shader.Bind()
}

// SetMVP uploads the model, view and projection matrices.
func (m *Material) SetMVP(model, view, projection mgl32.Mat4) {
	m.shader.SetUniformMat4("model", model)
	m.shader.SetUniformMat4("view", view)
	m.shader.SetUniformMat4("projection", projection)
}
