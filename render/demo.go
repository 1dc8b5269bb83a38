// Package render contains the GL side of the demos: one renderer per demo
// and the frame loop that drives them.
package render

import (
	"fmt"
	"io"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/gldemos/glutil"
)

// Demo is a renderer driven by Run. All methods must be called on the
// thread owning the GL context.
type Demo interface {
	// Update advances the scene by one frame.
	Update()
	// Render draws the current scene into the back buffer.
	Render()
	// Resize reacts to a new framebuffer size.
	Resize(width, height int)
	// Delete releases the GL objects owned by the demo.
	Delete()
}

// Attach routes framebuffer size changes of window to d.
func Attach(window *glfw.Window, d Demo) {
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		d.Resize(width, height)
	})
}

type runOptions struct {
	fps      io.Writer
	strictGL bool
}

// RunOption configures Run.
type RunOption func(*runOptions)

// WithFPS prints the frame rate to w once per second, overwriting the
// previous report.
func WithFPS(w io.Writer) RunOption {
	return func(o *runOptions) { o.fps = w }
}

// WithStrictGL makes Run return the first GL error it finds instead of
// logging it.
func WithStrictGL(strict bool) RunOption {
	return func(o *runOptions) { o.strictGL = strict }
}

// Run drives d until window is asked to close: update, render, swap, poll.
// Once per second it reports the frame rate and drains the GL error queue.
func Run(window *glfw.Window, d Demo, opts ...RunOption) error {
	var o runOptions
	for _, opt := range opts {
		opt(&o)
	}

	d.Resize(window.GetFramebufferSize())

	counter := glutil.NewFrameCounter(glfw.GetTime())
	for !window.ShouldClose() {
		d.Update()
		d.Render()
		window.SwapBuffers()

		if fps, ok := counter.Frame(glfw.GetTime()); ok {
			if o.fps != nil {
				fmt.Fprintf(o.fps, "\r\x1b[A\x1b[2KFPS: %d\n", fps)
			}
			if err := glutil.CheckError("frame"); err != nil {
				if o.strictGL {
					return err
				}
				glutil.Logger().Warn("pending GL errors", "err", err)
			}
		}

		glfw.PollEvents()
	}
	return nil
}
