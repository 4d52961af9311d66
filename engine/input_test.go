package engine_test

import (
	"testing"

	"github.com/plus3/we/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserControls(t *testing.T) {
	window := newFakeWindow()
	input := engine.NewInput()
	engine.BindUserControls(window, input)
	require.Len(t, window.listeners, 1)
	l := window.listeners[0]

	l.OnMouseMoved(window, 10, 10)
	dx, dy := input.MouseDelta()
	assert.Zero(t, dx, "first move only establishes the position")
	assert.Zero(t, dy)

	l.OnMouseMoved(window, 15, 8)
	l.OnMouseMoved(window, 20, 6)
	dx, dy = input.MouseDelta()
	assert.Equal(t, float32(10), dx)
	assert.Equal(t, float32(-4), dy)

	x, y := input.MousePosition()
	assert.Equal(t, float32(20), x)
	assert.Equal(t, float32(6), y)

	l.OnMousePressed(window, engine.MouseButtonLeft)
	l.OnKeyPressed(window, engine.KeyEscape)
	l.OnMouseWheel(window, 0, 2)
	assert.True(t, input.IsMouseButtonDown(engine.MouseButtonLeft))
	assert.False(t, input.IsMouseButtonDown(engine.MouseButtonRight))
	assert.True(t, input.IsKeyDown(engine.KeyEscape))
	_, wy := input.MouseWheel()
	assert.Equal(t, float32(2), wy)

	input.EndFrame()
	dx, dy = input.MouseDelta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
	_, wy = input.MouseWheel()
	assert.Zero(t, wy)
	assert.True(t, input.IsMouseButtonDown(engine.MouseButtonLeft), "button state survives EndFrame")

	l.OnMouseReleased(window, engine.MouseButtonLeft)
	l.OnKeyReleased(window, engine.KeyEscape)
	assert.False(t, input.IsMouseButtonDown(engine.MouseButtonLeft))
	assert.False(t, input.IsKeyDown(engine.KeyEscape))
}

func TestUnmappedKeysAreNotTracked(t *testing.T) {
	window := newFakeWindow()
	input := engine.NewInput()
	engine.BindUserControls(window, input)
	l := window.listeners[0]

	l.OnKeyPressed(window, engine.KeyUnknown)
	l.OnKeyPressed(window, engine.KeyUnknown)
	assert.False(t, input.IsKeyDown(engine.KeyUnknown))

	l.OnKeyPressed(window, engine.KeyW)
	assert.True(t, input.IsKeyDown(engine.KeyW))
}

func TestInputIgnoresOutOfRange(t *testing.T) {
	input := engine.NewInput()
	assert.False(t, input.IsKeyDown(engine.Key(-1)))
	assert.False(t, input.IsKeyDown(engine.Key(1000)))
	assert.False(t, input.IsMouseButtonDown(engine.MouseButton(99)))
}

func TestCameraResizer(t *testing.T) {
	window := newFakeWindow()
	camera := engine.NewCamera(window.Screen())
	before := camera.ProjectionMatrix()

	resizer := &engine.CameraResizer{Camera: camera}
	window.screen.Resize(1000, 500)
	resizer.OnWindowResized(window, 1000, 500)

	assert.NotEqual(t, before, camera.ProjectionMatrix())
}
