package engine

// Frame is handed to every Updater during a scene update.
type Frame struct {
	DeltaTime float64
	Commands  *Commands
	Scene     *Scene
}

func newFrame(dt float64, scene *Scene) *Frame {
	return &Frame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Scene:     scene,
	}
}
