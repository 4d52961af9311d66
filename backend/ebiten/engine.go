package ebiten

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/we/engine"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// RenderingEngine rasterizes meshes on the CPU side and submits them as 2D
// triangles to the window's offscreen image.
type RenderingEngine struct {
	window *Window
	bound  *softShader
	clear  *ScreenClear
}

func newRenderingEngine(w *Window) *RenderingEngine {
	return &RenderingEngine{
		window: w,
		clear:  &ScreenClear{window: w, Color: color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}},
	}
}

func (r *RenderingEngine) CreateMesh() engine.Mesh {
	return &softMesh{engine: r}
}

func (r *RenderingEngine) CreateShader() engine.Shader {
	return &softShader{engine: r, color: [3]float32{0.8, 0.55, 0.3}}
}

func (r *RenderingEngine) ScreenClearHandler() engine.ScreenClearHandler {
	return r.clear
}

func (r *RenderingEngine) Dispose() {
	r.bound = nil
}

// ScreenClear fills the offscreen image with a solid color.
type ScreenClear struct {
	window *Window
	Color  color.RGBA
}

func (s *ScreenClear) ClearScreen() {
	s.window.target.Fill(s.Color)
}

type softMesh struct {
	engine   *RenderingEngine
	data     *engine.VertexData
	disposed bool
}

// Update keeps a private copy of the vertex data.
func (m *softMesh) Update(data *engine.VertexData) {
	m.data = &engine.VertexData{
		Data:       append([]float32(nil), data.Data...),
		Triangles:  append([]uint16(nil), data.Triangles...),
		Attributes: append([]int(nil), data.Attributes...),
	}
}

// Render draws the mesh using the matrices of the currently bound shader.
func (m *softMesh) Render() {
	s := m.engine.bound
	if m.disposed || m.data == nil || s == nil {
		return
	}

	target := m.engine.window.target
	bounds := target.Bounds()
	triangles := projectMesh(m.data, s.matrix("model"), s.matrix("view"), s.matrix("projection"), bounds.Dx(), bounds.Dy())
	if len(triangles) == 0 {
		return
	}

	vertices := make([]ebiten.Vertex, 0, len(triangles)*3)
	indices := make([]uint16, 0, len(triangles)*3)
	for _, tri := range triangles {
		base := uint16(len(vertices))
		for c := 0; c < 3; c++ {
			vertices = append(vertices, ebiten.Vertex{
				DstX:   tri.X[c],
				DstY:   tri.Y[c],
				SrcX:   1,
				SrcY:   1,
				ColorR: s.color[0] * tri.Shade,
				ColorG: s.color[1] * tri.Shade,
				ColorB: s.color[2] * tri.Shade,
				ColorA: 1,
			})
		}
		indices = append(indices, base, base+1, base+2)
	}

	if s.kage != nil {
		target.DrawTrianglesShader(vertices, indices, s.kage, &ebiten.DrawTrianglesShaderOptions{})
		return
	}
	target.DrawTriangles(vertices, indices, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

func (m *softMesh) Dispose() {
	m.data = nil
	m.disposed = true
}

// softShader stores uniforms for the CPU projection. A Kage fragment source
// is compiled into an ebiten shader; anything else (GLSL) falls back to flat
// Lambert shading.
type softShader struct {
	engine   *RenderingEngine
	uniforms map[string]mgl32.Mat4
	kage     *ebiten.Shader
	color    [3]float32
	disposed bool
}

func isKage(src string) bool {
	return strings.Contains(src, "//kage:") || strings.HasPrefix(strings.TrimSpace(src), "package main")
}

func (s *softShader) Compile(code engine.RawShaderCode) error {
	if s.disposed {
		return engine.ErrDisposed
	}
	if s.uniforms == nil {
		s.uniforms = make(map[string]mgl32.Mat4)
	}
	if !isKage(code.Frag) {
		engine.Logger().Debug("non-kage shader source, using flat shading")
		return nil
	}

	kage, err := ebiten.NewShader([]byte(code.Frag))
	if err != nil {
		return fmt.Errorf("%w: %v", engine.ErrShaderCompile, err)
	}
	if s.kage != nil {
		s.kage.Deallocate()
	}
	s.kage = kage
	return nil
}

func (s *softShader) Bind() {
	s.engine.bound = s
}

func (s *softShader) SetUniformMat4(name string, m mgl32.Mat4) {
	if s.uniforms == nil {
		s.uniforms = make(map[string]mgl32.Mat4)
	}
	s.uniforms[name] = m
}

func (s *softShader) matrix(name string) mgl32.Mat4 {
	if m, ok := s.uniforms[name]; ok {
		return m
	}
	return mgl32.Ident4()
}

func (s *softShader) Dispose() {
	if s.kage != nil {
		s.kage.Deallocate()
		s.kage = nil
	}
	if s.engine.bound == s {
		s.engine.bound = nil
	}
	s.disposed = true
}
