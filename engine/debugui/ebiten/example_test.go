package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"
	ebitenwindow "github.com/plus3/we/backend/ebiten"
	"github.com/plus3/we/engine"
	"github.com/plus3/we/engine/debugui"
	debugui_ebiten "github.com/plus3/we/engine/debugui/ebiten"
)

func Example() {
	settings := engine.DefaultWindowSettings()
	window := ebitenwindow.NewWindow(settings)

	// Draw ImGui on top of the scene
	window.SetOverlay(debugui_ebiten.NewImguiBackend(settings.Title, settings.Width, settings.Height))

	scene := engine.NewScene()
	obj := engine.NewGameObject("hud")
	obj.AddBehavior(&debugui.ImguiItem{
		Render: func() {
			imgui.Begin("Debug Window")
			imgui.Text("Hello from the scene!")
			imgui.End()
		},
	})
	scene.AddGameObject(obj)

	loop := engine.NewGameLoop()
	loop.AddNamedAction("update", func() { scene.Update(1.0 / 60.0) })

	if err := window.Run(loop); err != nil {
		panic(err)
	}
}
