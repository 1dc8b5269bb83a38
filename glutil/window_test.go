package glutil

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestWindowOptions(t *testing.T) {
	o := defaultWindowOptions()
	assert.Equal(t, DefaultWidth, o.width)
	assert.Equal(t, DefaultHeight, o.height)
	assert.Equal(t, 1, o.swapInterval)
	assert.True(t, o.visible)

	for _, opt := range []Option{
		WithSize(640, 480),
		WithSwapInterval(0),
		WithVisible(false),
		WithResizable(false),
	} {
		opt(&o)
	}
	assert.Equal(t, windowOptions{width: 640, height: 480}, o)
}

func TestWithSizeIgnoresNonPositive(t *testing.T) {
	o := defaultWindowOptions()
	WithSize(0, 100)(&o)
	WithSize(100, -1)(&o)
	assert.Equal(t, DefaultWidth, o.width)
	assert.Equal(t, DefaultHeight, o.height)
}

func TestCallbackFlags(t *testing.T) {
	flags := KeyCallback | WindowCloseCallback
	assert.True(t, flags.Has(KeyCallback))
	assert.False(t, flags.Has(ResizeCallback))
	assert.False(t, flags.Has(AllCallbacks))
	assert.True(t, AllCallbacks.Has(flags))

	assert.Equal(t, "none", CallbackFlags(0).String())
	assert.Equal(t, "key|close", flags.String())
	assert.Equal(t, "key|resize|close", AllCallbacks.String())
	assert.Equal(t, "resize|0x80", (ResizeCallback | 0x80).String())
}

func TestClosesWindow(t *testing.T) {
	assert.True(t, closesWindow(glfw.KeyEscape, glfw.Press))
	assert.False(t, closesWindow(glfw.KeyEscape, glfw.Release))
	assert.False(t, closesWindow(glfw.KeyEscape, glfw.Repeat))
	assert.False(t, closesWindow(glfw.KeySpace, glfw.Press))
}
