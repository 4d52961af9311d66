package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultFov      = float32(math.Pi / 2)
	DefaultNearClip = float32(0.1)
	DefaultFarClip  = float32(1000)
)

// Camera determines the projection and view matrices used to render a scene.
//
// The projection matrix is rebuilt eagerly on construction and on every setter call.
// The aspect ratio is read from the Screen only at those moments, so resizing the
// screen leaves the matrix stale until a setter or Refresh is called.
type Camera struct {
	projection mgl32.Mat4
	transform  *Transform3D
	screen     Screen
	fov        float32
	nearClip   float32
	farClip    float32
}

// NewCamera creates a camera that owns its own transform.
func NewCamera(screen Screen) *Camera {
	return NewCameraWithTransform(NewTransform3D(), screen)
}

// NewCameraWithTransform creates a camera bound to an externally owned transform,
// such as the transform of a game object. The camera never takes ownership of it.
func NewCameraWithTransform(transform *Transform3D, screen Screen) *Camera {
	if screen == nil {
		panic("camera requires a screen")
	}
	if transform == nil {
		transform = NewTransform3D()
	}

	c := &Camera{
		transform: transform,
		screen:    screen,
		fov:       DefaultFov,
		nearClip:  DefaultNearClip,
		farClip:   DefaultFarClip,
	}
	c.rebuildProjectionMatrix()
	return c
}

func (c *Camera) rebuildProjectionMatrix() {
	c.projection = mgl32.Perspective(c.fov, c.screen.Aspect(), c.nearClip, c.farClip)
}

// ProjectionMatrix returns the projection matrix for the last applied settings.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// Fov returns the vertical field of view in radians.
func (c *Camera) Fov() float32 {
	return c.fov
}

// SetFov assigns the vertical field of view, in radians. No validation is performed.
func (c *Camera) SetFov(fov float32) {
	c.fov = fov
	c.rebuildProjectionMatrix()
}

func (c *Camera) NearClip() float32 {
	return c.nearClip
}

func (c *Camera) FarClip() float32 {
	return c.farClip
}

// SetClippingDistance assigns the near and far clipping plane distances.
// Inverted or non-positive values produce a degenerate matrix.
func (c *Camera) SetClippingDistance(near, far float32) {
	c.nearClip = near
	c.farClip = far
	c.rebuildProjectionMatrix()
}

// Refresh rebuilds the projection matrix with the current screen aspect.
// Backends call this from their resize handling.
func (c *Camera) Refresh() {
	c.rebuildProjectionMatrix()
}

// Transform returns the transform this camera reads its placement from.
func (c *Camera) Transform() *Transform3D {
	return c.transform
}

// ViewMatrix derives the world-to-camera matrix from the bound transform.
// Scale is ignored.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	pos := c.transform.Position
	rotation := c.transform.Rotation.Normalize().Inverse().Mat4()
	return rotation.Mul4(mgl32.Translate3D(-pos.X(), -pos.Y(), -pos.Z()))
}
