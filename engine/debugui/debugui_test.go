package debugui

import (
	"reflect"
	"testing"

	"github.com/plus3/we/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spinner struct {
	Speed   float32
	Count   int
	Enabled bool
	Label   string
	hidden  int
	Target  *engine.Transform3D
}

func TestImguiItemRendersAfterUpdate(t *testing.T) {
	scene := engine.NewScene()
	var order []string

	obj := engine.NewGameObject("hud")
	obj.AddBehavior(&ImguiItem{Render: func() { order = append(order, "render") }})
	obj.AddBehavior(&recordingUpdater{order: &order})
	scene.AddGameObject(obj)

	scene.Update(0.016)
	assert.Equal(t, []string{"update", "render"}, order)

	scene.Update(0.016)
	assert.Len(t, order, 4)
}

func TestImguiItemNilRender(t *testing.T) {
	scene := engine.NewScene()
	obj := engine.NewGameObject("empty")
	obj.AddBehavior(&ImguiItem{})
	scene.AddGameObject(obj)

	assert.NotPanics(t, func() { scene.Update(0.016) })
}

type recordingUpdater struct {
	order *[]string
}

func (r *recordingUpdater) Update(*engine.Frame) {
	*r.order = append(*r.order, "update")
}

func TestExportedFields(t *testing.T) {
	fields := exportedFields(reflect.TypeOf(spinner{}))

	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"Speed", "Count", "Enabled", "Label", "Target"}, names)
	assert.True(t, fields[4].IsPointer)
	assert.False(t, fields[0].IsPointer)

	again := exportedFields(reflect.TypeOf(spinner{}))
	assert.Equal(t, fields, again)

	assert.Empty(t, exportedFields(reflect.TypeOf(42)))
}

func TestSetField(t *testing.T) {
	s := &spinner{}
	val := reflect.ValueOf(s).Elem()

	assert.True(t, setField(val.FieldByName("Speed"), float64(2.5)))
	assert.True(t, setField(val.FieldByName("Count"), int64(7)))
	assert.True(t, setField(val.FieldByName("Enabled"), true))
	assert.True(t, setField(val.FieldByName("Label"), "fast"))

	assert.Equal(t, float32(2.5), s.Speed)
	assert.Equal(t, 7, s.Count)
	assert.True(t, s.Enabled)
	assert.Equal(t, "fast", s.Label)

	assert.False(t, setField(val.FieldByName("Count"), "nope"))
	assert.False(t, setField(val.FieldByName("hidden"), int64(1)))
	assert.False(t, setField(reflect.ValueOf(spinner{}).FieldByName("Count"), int64(1)))
}

func TestSceneBrowserRefreshAndSort(t *testing.T) {
	scene := engine.NewScene()
	b := engine.NewGameObject("bravo")
	a := engine.NewGameObject("alpha")
	a.AddBehavior(&ImguiItem{})
	scene.AddGameObject(b)
	scene.AddGameObject(a)

	sb := NewSceneBrowser(10)
	sb.refresh(scene)
	require.Len(t, sb.objects, 2)
	assert.Equal(t, b.ID(), sb.objects[0].ID)
	assert.Equal(t, []string{"ImguiItem"}, sb.objects[1].Behaviors)

	sb.sortColumn = 1
	sb.sort()
	assert.Equal(t, "alpha", sb.objects[0].Name)

	sb.sortAscending = false
	sb.sort()
	assert.Equal(t, "bravo", sb.objects[0].Name)
}

func TestSceneBrowserFilter(t *testing.T) {
	scene := engine.NewScene()
	scene.AddGameObject(engine.NewGameObject("Player"))
	hud := engine.NewGameObject("hud")
	hud.AddBehavior(&ImguiItem{})
	scene.AddGameObject(hud)

	sb := NewSceneBrowser(10)
	sb.refresh(scene)

	sb.filterText = "player"
	require.Len(t, sb.filtered(), 1)
	assert.Equal(t, "Player", sb.filtered()[0].Name)

	sb.filterText = "imgui"
	require.Len(t, sb.filtered(), 1)
	assert.Equal(t, "hud", sb.filtered()[0].Name)

	sb.filterText = ""
	assert.Len(t, sb.filtered(), 2)
}

func TestSceneBrowserDropsRemovedSelection(t *testing.T) {
	scene := engine.NewScene()
	obj := engine.NewGameObject("gone")
	scene.AddGameObject(obj)

	sb := NewSceneBrowser(10)
	sb.refresh(scene)
	sb.selected = obj.ID()

	scene.RemoveGameObject(obj.ID())
	sb.refresh(scene)
	assert.Zero(t, sb.Selected())
	assert.Empty(t, sb.objects)
}

func TestSceneBrowserPageBounds(t *testing.T) {
	sb := NewSceneBrowser(10)

	start, end := sb.pageBounds(25)
	assert.Equal(t, 0, start)
	assert.Equal(t, 10, end)

	sb.currentPage = 2
	start, end = sb.pageBounds(25)
	assert.Equal(t, 20, start)
	assert.Equal(t, 25, end)

	sb.currentPage = 5
	start, end = sb.pageBounds(25)
	assert.Equal(t, 0, start)
	assert.Equal(t, 10, end)
	assert.Equal(t, 0, sb.currentPage)

	unpaged := NewSceneBrowser(0)
	start, end = unpaged.pageBounds(25)
	assert.Equal(t, 0, start)
	assert.Equal(t, 25, end)
}

func TestLoopStatsHistory(t *testing.T) {
	ls := NewLoopStatsPanel(4)
	for range 4 {
		ls.record(0.010)
	}
	assert.InDelta(t, 10.0, ls.averageFrameTime(), 1e-4)

	ls.record(0.030)
	assert.Equal(t, 1, ls.frameIndex)
	assert.InDelta(t, 15.0, ls.averageFrameTime(), 1e-4)
}

func TestCameraPanelApply(t *testing.T) {
	camera := engine.NewCamera(&engine.FixedScreen{Width: 800, Height: 600})
	cp := NewCameraPanel()
	cp.sync(camera)
	assert.InDelta(t, 90.0, cp.fovDegrees, 1e-3)

	cp.fovDegrees = 60
	cp.applyFov(camera)
	assert.InDelta(t, 1.0471976, camera.Fov(), 1e-5)

	cp.fovDegrees = 0
	cp.applyFov(camera)
	assert.InDelta(t, 1.0471976, camera.Fov(), 1e-5)

	cp.near, cp.far = 1, 50
	cp.applyClipping(camera)
	assert.Equal(t, float32(1), camera.NearClip())
	assert.Equal(t, float32(50), camera.FarClip())

	cp.near, cp.far = 10, 5
	cp.applyClipping(camera)
	assert.Equal(t, float32(1), camera.NearClip())
}
