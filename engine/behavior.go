package engine

// Behavior is an attachable unit of per-object logic or data.
// A behavior opts into engine callbacks by implementing any of
// Initializer, Updater, Renderer or Disposer.
type Behavior any

// Initializer is called once when the behavior is attached to a game object.
type Initializer interface {
	Init(obj *GameObject)
}

// Updater is called once per scene update.
type Updater interface {
	Update(frame *Frame)
}

// Renderer is called once per scene render.
type Renderer interface {
	Render(ctx *RenderContext)
}

// Disposer is called when the behavior is removed or its game object is destroyed.
type Disposer interface {
	Dispose()
}
