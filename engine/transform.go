package engine

import "github.com/go-gl/mathgl/mgl32"

// Transform3D describes the placement of an entity in world space.
// The rotation is expected to be a unit quaternion; this is not enforced.
type Transform3D struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

// NewTransform3D creates an identity transform
func NewTransform3D() *Transform3D {
	return &Transform3D{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

func (t *Transform3D) SetPosition(x, y, z float32) {
	t.Position = mgl32.Vec3{x, y, z}
}

func (t *Transform3D) SetRotation(q mgl32.Quat) {
	t.Rotation = q
}

func (t *Transform3D) SetScale(x, y, z float32) {
	t.Scale = mgl32.Vec3{x, y, z}
}

// Translate moves the transform by the given offset in world space.
func (t *Transform3D) Translate(offset mgl32.Vec3) {
	t.Position = t.Position.Add(offset)
}

// RotateX applies a rotation of angle radians around the local X axis.
func (t *Transform3D) RotateX(angle float32) {
	t.Rotation = t.Rotation.Mul(mgl32.QuatRotate(angle, mgl32.Vec3{1, 0, 0}))
}

// RotateY applies a rotation of angle radians around the local Y axis.
func (t *Transform3D) RotateY(angle float32) {
	t.Rotation = t.Rotation.Mul(mgl32.QuatRotate(angle, mgl32.Vec3{0, 1, 0}))
}

// RotateZ applies a rotation of angle radians around the local Z axis.
func (t *Transform3D) RotateZ(angle float32) {
	t.Rotation = t.Rotation.Mul(mgl32.QuatRotate(angle, mgl32.Vec3{0, 0, 1}))
}

// Matrix returns the local-to-world matrix, composed as translation * rotation * scale.
func (t *Transform3D) Matrix() mgl32.Mat4 {
	translation := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	rotation := t.Rotation.Normalize().Mat4()
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return translation.Mul4(rotation).Mul4(scale)
}
