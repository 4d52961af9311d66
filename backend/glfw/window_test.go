package glfw

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/plus3/we/engine"
	"github.com/stretchr/testify/assert"
)

func TestTranslateKey(t *testing.T) {
	assert.Equal(t, engine.KeyEscape, translateKey(glfw.KeyEscape))
	assert.Equal(t, engine.KeyW, translateKey(glfw.KeyW))
	assert.Equal(t, engine.KeyUnknown, translateKey(glfw.KeyF12))
}

func TestTranslateButton(t *testing.T) {
	b, ok := translateButton(glfw.MouseButtonLeft)
	assert.True(t, ok)
	assert.Equal(t, engine.MouseButtonLeft, b)

	_, ok = translateButton(glfw.MouseButton4)
	assert.False(t, ok)
}
