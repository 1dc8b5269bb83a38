package glutil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Default window dimensions.
const (
	DefaultWidth  = 800
	DefaultHeight = 800
)

type windowOptions struct {
	width, height int
	swapInterval  int
	visible       bool
	resizable     bool
}

func defaultWindowOptions() windowOptions {
	return windowOptions{
		width:        DefaultWidth,
		height:       DefaultHeight,
		swapInterval: 1,
		visible:      true,
		resizable:    true,
	}
}

// Option configures Init.
type Option func(*windowOptions)

// WithSize sets the window size in screen coordinates.
func WithSize(width, height int) Option {
	return func(o *windowOptions) {
		if width > 0 && height > 0 {
			o.width, o.height = width, height
		}
	}
}

// WithSwapInterval sets the number of screen updates to wait before
// swapping buffers. 0 disables vsync.
func WithSwapInterval(n int) Option {
	return func(o *windowOptions) { o.swapInterval = n }
}

// WithVisible controls whether the window is shown. Hidden windows still
// own a usable context.
func WithVisible(visible bool) Option {
	return func(o *windowOptions) { o.visible = visible }
}

// WithResizable controls whether the user can resize the window.
func WithResizable(resizable bool) Option {
	return func(o *windowOptions) { o.resizable = resizable }
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// Init initializes GLFW, opens a window titled title with an OpenGL 4.1
// core context, makes the context current and loads GL. On error GLFW is
// terminated. On success the caller owns both the window and the GLFW
// library and must call Terminate when done.
func Init(title string, opts ...Option) (*glfw.Window, error) {
	if title == "" {
		return nil, errors.New("init: window title is required")
	}
	o := defaultWindowOptions()
	for _, opt := range opts {
		opt(&o)
	}

	Logger().Info("initializing GLFW and creating window", "title", title, "width", o.width, "height", o.height)
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfwBool(o.visible))
	glfw.WindowHint(glfw.Resizable, glfwBool(o.resizable))

	window, err := glfw.CreateWindow(o.width, o.height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(o.swapInterval)

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}
	Logger().Info("loaded OpenGL", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	return window, nil
}

// Terminate destroys window and shuts GLFW down.
func Terminate(window *glfw.Window) {
	if window != nil {
		window.Destroy()
	}
	glfw.Terminate()
}

// CallbackFlags selects the stock GLFW callbacks installed by SetCallbacks.
type CallbackFlags uint8

const (
	// KeyCallback closes the window when escape is pressed.
	KeyCallback CallbackFlags = 1 << iota
	// ResizeCallback keeps the viewport equal to the framebuffer.
	ResizeCallback
	// WindowCloseCallback logs that the window is closing.
	WindowCloseCallback

	AllCallbacks = KeyCallback | ResizeCallback | WindowCloseCallback
)

// Has reports whether all bits of other are set in f.
func (f CallbackFlags) Has(other CallbackFlags) bool {
	return f&other == other
}

func (f CallbackFlags) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	if f.Has(KeyCallback) {
		parts = append(parts, "key")
	}
	if f.Has(ResizeCallback) {
		parts = append(parts, "resize")
	}
	if f.Has(WindowCloseCallback) {
		parts = append(parts, "close")
	}
	if rest := f &^ AllCallbacks; rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint8(rest)))
	}
	return strings.Join(parts, "|")
}

// SetCallbacks installs the callbacks selected by flags on window.
func SetCallbacks(window *glfw.Window, flags CallbackFlags) {
	if flags.Has(KeyCallback) {
		window.SetKeyCallback(keyCallback)
	}
	if flags.Has(ResizeCallback) {
		window.SetFramebufferSizeCallback(resizeCallback)
	}
	if flags.Has(WindowCloseCallback) {
		window.SetCloseCallback(closeCallback)
	}
	Logger().Debug("installed GLFW callbacks", "flags", flags.String())
}

func keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if closesWindow(key, action) {
		w.SetShouldClose(true)
	}
}

// closesWindow reports whether a key event should close the window.
func closesWindow(key glfw.Key, action glfw.Action) bool {
	return key == glfw.KeyEscape && action == glfw.Press
}

func resizeCallback(w *glfw.Window, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// The window is destroyed by Terminate once the loop exits.
func closeCallback(w *glfw.Window) {
	Logger().Info("closing window")
}
