package engine

import "github.com/go-gl/mathgl/mgl32"

// RenderContext carries the matrices for one object during a scene render.
type RenderContext struct {
	Camera     *Camera
	Object     *GameObject
	Model      mgl32.Mat4
	View       mgl32.Mat4
	Projection mgl32.Mat4
}

// MVP returns projection * view * model.
func (r *RenderContext) MVP() mgl32.Mat4 {
	return r.Projection.Mul4(r.View).Mul4(r.Model)
}

// RenderBehavior draws a mesh with a material at its game object's transform.
type RenderBehavior struct {
	Mesh     Mesh
	Material *Material
}

func (r *RenderBehavior) SetMesh(mesh Mesh) {
	r.Mesh = mesh
}

func (r *RenderBehavior) SetMaterial(material *Material) {
	r.Material = material
}

func (r *RenderBehavior) Render(ctx *RenderContext) {
	if r.Mesh == nil || r.Material == nil {
		return
	}

	r.Material.Bind()
	r.Material.SetMVP(ctx.Model, ctx.View, ctx.Projection)
	r.Mesh.Render()
}
