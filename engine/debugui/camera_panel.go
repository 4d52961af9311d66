package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/we/engine"
)

// CameraPanel edits the projection parameters of a camera. Changes go
// through the camera setters so the projection matrix is rebuilt.
type CameraPanel struct {
	fovDegrees float32
	near       float32
	far        float32
	synced     *engine.Camera
}

func NewCameraPanel() *CameraPanel {
	return &CameraPanel{}
}

func (cp *CameraPanel) Render(camera *engine.Camera) {
	if !imgui.BeginV("Camera", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	if camera == nil {
		imgui.Text("No camera")
		return
	}
	cp.sync(camera)

	imgui.SetNextItemWidth(150)
	if imgui.InputFloat("FOV (deg)", &cp.fovDegrees) {
		cp.applyFov(camera)
	}

	imgui.SetNextItemWidth(150)
	nearChanged := imgui.InputFloat("Near", &cp.near)
	imgui.SetNextItemWidth(150)
	farChanged := imgui.InputFloat("Far", &cp.far)
	if nearChanged || farChanged {
		cp.applyClipping(camera)
	}

	if imgui.Button("Refresh Aspect") {
		camera.Refresh()
	}

	pos := camera.Transform().Position
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Position: %.2f, %.2f, %.2f", pos.X(), pos.Y(), pos.Z()))

	if imgui.TreeNodeStr("Projection Matrix") {
		m := camera.ProjectionMatrix()
		for row := 0; row < 4; row++ {
			imgui.Text(fmt.Sprintf("%8.3f %8.3f %8.3f %8.3f", m.At(row, 0), m.At(row, 1), m.At(row, 2), m.At(row, 3)))
		}
		imgui.TreePop()
	}
}

// sync copies the camera parameters into the edit fields when the camera
// changed outside the panel.
func (cp *CameraPanel) sync(camera *engine.Camera) {
	fov := mgl32.RadToDeg(camera.Fov())
	if cp.synced == camera && mgl32.FloatEqual(cp.fovDegrees, fov) &&
		cp.near == camera.NearClip() && cp.far == camera.FarClip() {
		return
	}
	cp.synced = camera
	cp.fovDegrees = fov
	cp.near = camera.NearClip()
	cp.far = camera.FarClip()
}

func (cp *CameraPanel) applyFov(camera *engine.Camera) {
	if cp.fovDegrees <= 0 || cp.fovDegrees >= 180 {
		return
	}
	camera.SetFov(mgl32.DegToRad(cp.fovDegrees))
}

func (cp *CameraPanel) applyClipping(camera *engine.Camera) {
	if cp.near <= 0 || cp.far <= cp.near {
		return
	}
	camera.SetClippingDistance(cp.near, cp.far)
}
