package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/plus3/we/engine"
)

type mesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	disposed   bool
}

func newMesh() *mesh {
	m := &mesh{}
	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.GenBuffers(1, &m.ebo)
	return m
}

// Update uploads data and rebuilds the attribute layout.
func (m *mesh) Update(data *engine.VertexData) {
	if m.disposed {
		engine.Logger().Error("update on disposed mesh", "error", engine.ErrDisposed)
		return
	}

	gl.BindVertexArray(m.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	if len(data.Data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data.Data)*4, gl.Ptr(data.Data), gl.STATIC_DRAW)
	}

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	if len(data.Triangles) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.Triangles)*2, gl.Ptr(data.Triangles), gl.STATIC_DRAW)
	}

	stride := int32(data.Stride() * 4)
	offset := 0
	for i, size := range data.Attributes {
		gl.EnableVertexAttribArray(uint32(i))
		gl.VertexAttribPointerWithOffset(uint32(i), int32(size), gl.FLOAT, false, stride, uintptr(offset*4))
		offset += size
	}

	gl.BindVertexArray(0)
	m.indexCount = int32(len(data.Triangles))
}

func (m *mesh) Render() {
	if m.disposed || m.indexCount == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_SHORT, 0)
	gl.BindVertexArray(0)
}

func (m *mesh) Dispose() {
	if m.disposed {
		return
	}
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
	gl.DeleteVertexArrays(1, &m.vao)
	m.disposed = true
}
