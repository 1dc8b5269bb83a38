package glutil

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ReadFramebuffer reads the lower-left width x height region of the
// current read framebuffer into a top-down RGBA image.
func ReadFramebuffer(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	// OpenGL's origin is bottom-left.
	FlipRows(img.Pix, img.Stride, height)
	return img
}

// FlipRows reverses the order of the rows of pix in place.
func FlipRows(pix []byte, stride, rows int) {
	tmp := make([]byte, stride)
	for y := 0; y < rows/2; y++ {
		top := y * stride
		bot := (rows - 1 - y) * stride
		copy(tmp, pix[top:top+stride])
		copy(pix[top:top+stride], pix[bot:bot+stride])
		copy(pix[bot:bot+stride], tmp)
	}
}

// Blank reports whether every pixel of img has the same color, as in a
// frame where nothing but the clear color reached the framebuffer.
func Blank(img *image.RGBA) bool {
	b := img.Bounds()
	if b.Empty() {
		return true
	}
	first := img.PixOffset(b.Min.X, b.Min.Y)
	ref := img.Pix[first : first+4]
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)]
		for x := 0; x < len(row); x += 4 {
			if !bytes.Equal(row[x:x+4], ref) {
				return false
			}
		}
	}
	return true
}

// Encode writes img to w in the format named by ext (".jpg", ".png",
// ".bmp", ".tiff", ...).
func Encode(w io.Writer, img image.Image, ext string) error {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
	case ".png":
		return png.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported image format %q", ext)
	}
}

// SaveImage encodes img into path, picking the format from its extension.
func SaveImage(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Encode(f, img, filepath.Ext(path))
}
