// Command rectangle3d shows a colored box in perspective, viewed from a
// fixed camera offset. Resizing the window keeps the aspect ratio; escape
// quits.
//
//	go run ./cmd/rectangle3d
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-theft-auto/gldemos/glutil"
	"github.com/go-theft-auto/gldemos/render"
)

const windowTitle = "Rectangle 3D"

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	strictGL := flag.Bool("strict-gl", false, "exit on the first GL error instead of logging it")
	flag.Parse()

	glutil.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err := run(*strictGL); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(strictGL bool) error {
	window, err := glutil.Init(windowTitle)
	if err != nil {
		return err
	}
	defer glutil.Terminate(window)

	glutil.SetCallbacks(window, glutil.KeyCallback|glutil.WindowCloseCallback)

	demo, err := render.NewRectangle()
	if err != nil {
		return fmt.Errorf("init program: %w", err)
	}
	defer demo.Delete()

	render.Attach(window, demo)
	return render.Run(window, demo, render.WithStrictGL(strictGL))
}
