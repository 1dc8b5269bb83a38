// Command snapshot renders every demo in a hidden window for a number of
// frames and saves an image of the framebuffer for each. It also checks
// that the CPU and transform feedback triforces agree after the same
// number of frames.
//
// Usage:
//
//	go run ./cmd/snapshot -out doc/imgs -frames 25 -ext .png
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-theft-auto/gldemos/glutil"
	"github.com/go-theft-auto/gldemos/render"
	"github.com/go-theft-auto/gldemos/scene"
)

const (
	width  = 800
	height = 800

	// Tolerance between CPU and GPU positions after all frames; the two
	// sides use different trig implementations.
	parityTolerance = 1e-3
)

func init() {
	runtime.LockOSThread()
}

func main() {
	var (
		outDir = flag.String("out", filepath.Join("doc", "imgs"), "output directory")
		frames = flag.Int("frames", 25, "frames to render before capturing")
		ext    = flag.String("ext", ".jpg", "image format: .jpg, .png, .bmp or .tiff")
	)
	flag.Parse()

	glutil.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))
	if err := run(*outDir, *frames, *ext); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// shot is one demo to capture.
type shot struct {
	name string
	make func() (render.Demo, error)
}

func shots() []shot {
	return []shot{
		{"rectangle3d", func() (render.Demo, error) { return render.NewRectangle() }},
		{"triforce-cpu", func() (render.Demo, error) { return render.NewTriforceCPU() }},
		{"triforce-feedback", func() (render.Demo, error) { return render.NewTriforceFeedback() }},
	}
}

func run(outDir string, frames int, ext string) error {
	if frames < 1 {
		return fmt.Errorf("frames must be positive, got %d", frames)
	}

	window, err := glutil.Init("snapshot", glutil.WithSize(width, height), glutil.WithVisible(false))
	if err != nil {
		return err
	}
	defer glutil.Terminate(window)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	for _, s := range shots() {
		path := filepath.Join(outDir, s.name+ext)
		if err := capture(s, frames, path); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s (%dx%d, %d frames)\n", path, width, height, frames)
	}

	dev, err := parity(frames)
	if err != nil {
		return fmt.Errorf("parity: %w", err)
	}
	fmt.Printf("\ncpu/gpu triforce max deviation after %d frames: %g\n", frames, dev)
	if dev > parityTolerance {
		return fmt.Errorf("cpu and gpu triforce diverged: %g > %g", dev, parityTolerance)
	}
	return nil
}

// capture renders frames frames of a fresh demo without swapping and saves
// the back buffer. A frame holding only the clear color is an error.
func capture(s shot, frames int, path string) error {
	d, err := s.make()
	if err != nil {
		return err
	}
	defer d.Delete()

	d.Resize(width, height)
	for range frames {
		d.Update()
		d.Render()
	}
	if err := glutil.CheckError("render"); err != nil {
		return err
	}
	img := glutil.ReadFramebuffer(width, height)
	if glutil.Blank(img) {
		return fmt.Errorf("nothing drawn after %d frames", frames)
	}
	return glutil.SaveImage(path, img)
}

// parity advances both triforce demos by frames updates and returns the
// largest position difference.
func parity(frames int) (float32, error) {
	cpu, err := render.NewTriforceCPU()
	if err != nil {
		return 0, err
	}
	defer cpu.Delete()

	gpu, err := render.NewTriforceFeedback()
	if err != nil {
		return 0, err
	}
	defer gpu.Delete()

	for range frames {
		cpu.Update()
		gpu.Update()
	}
	return scene.MaxDeviation(cpu.Positions(), 4, gpu.ReadPositions(), 3), glutil.CheckError("parity")
}
