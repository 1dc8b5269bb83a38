// Command triforce-feedback spins a triforce entirely on the GPU: each
// frame a transform feedback pass rotates the positions from one buffer
// into another, then the fresh buffer is drawn.
//
//	go run ./cmd/triforce-feedback
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

const windowTitle = "Triforce Transform Feedback"

func init() {
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
	window, err := glutil.Init(windowTitle, glutil.WithSwapInterval(1))
	if err != nil {
		return err
	}
	defer glutil.Terminate(window)

	glutil.SetCallbacks(window, glutil.AllCallbacks)

	demo, err := render.NewTriforceFeedback()
	if err != nil {
		return err
	}
	defer demo.Delete()

	return render.Run(window, demo, render.WithFPS(os.Stdout), render.WithStrictGL(strictGL))
}
