// Package scene holds the GL-free parts of the demos: fixed vertex data,
// projection and rotation math, and the GLSL sources.
package scene

import "github.com/go-gl/mathgl/mgl32"

// Rectangle layout: all positions first, then all colors.
const (
	RectangleVertices       = 36
	RectanglePositionFloats = 3
	RectangleColorFloats    = 3
)

// Perspective parameters of the rectangle viewer.
const (
	FrustumScale = float32(1.0)
	ZNear        = float32(0.5)
	ZFar         = float32(3.0)
)

// CameraOffset is added to every rectangle vertex before projection.
var CameraOffset = mgl32.Vec2{1.5, 0.5}

// RectangleData returns a fresh copy of the rectangle vertex data:
// RectangleVertices xyz positions followed by RectangleVertices rgb colors.
func RectangleData() []float32 {
	data := make([]float32, len(rectanglePositions)+len(rectangleColors))
	copy(data, rectanglePositions)
	copy(data[len(rectanglePositions):], rectangleColors)
	return data
}

// RectangleColorOffset is the byte offset of the color block inside
// RectangleData.
func RectangleColorOffset() int {
	return len(rectanglePositions) * 4
}

// Faces are wound clockwise as seen from outside.
var rectanglePositions = []float32{
	0.25, 0.25, -1.25,
	0.25, -0.25, -1.25,
	-0.25, 0.25, -1.25,

	0.25, -0.25, -1.25,
	-0.25, -0.25, -1.25,
	-0.25, 0.25, -1.25,

	0.25, 0.25, -2.75,
	-0.25, 0.25, -2.75,
	0.25, -0.25, -2.75,

	0.25, -0.25, -2.75,
	-0.25, 0.25, -2.75,
	-0.25, -0.25, -2.75,

	-0.25, 0.25, -1.25,
	-0.25, -0.25, -1.25,
	-0.25, -0.25, -2.75,

	-0.25, 0.25, -1.25,
	-0.25, -0.25, -2.75,
	-0.25, 0.25, -2.75,

	0.25, 0.25, -1.25,
	0.25, -0.25, -2.75,
	0.25, -0.25, -1.25,

	0.25, 0.25, -1.25,
	0.25, 0.25, -2.75,
	0.25, -0.25, -2.75,

	0.25, 0.25, -2.75,
	0.25, 0.25, -1.25,
	-0.25, 0.25, -1.25,

	0.25, 0.25, -2.75,
	-0.25, 0.25, -1.25,
	-0.25, 0.25, -2.75,

	0.25, -0.25, -2.75,
	-0.25, -0.25, -1.25,
	0.25, -0.25, -1.25,

	0.25, -0.25, -2.75,
	-0.25, -0.25, -2.75,
	-0.25, -0.25, -1.25,
}

// One color per face (two triangles).
var faceColors = []mgl32.Vec3{
	{0.0, 0.0, 1.0},
	{0.8, 0.8, 0.8},
	{0.0, 1.0, 0.0},
	{0.5, 0.5, 0.0},
	{1.0, 0.0, 0.0},
	{0.0, 1.0, 1.0},
}

var rectangleColors = func() []float32 {
	out := make([]float32, 0, RectangleVertices*RectangleColorFloats)
	for _, c := range faceColors {
		for range 6 {
			out = append(out, c[0], c[1], c[2])
		}
	}
	return out
}()

// Perspective returns the column-major projection used by the rectangle
// viewer: the eye looks down -z, x and y are scaled by frustumScale and z
// in [-near, -far] maps to [-1, 1].
func Perspective(frustumScale, near, far float32) mgl32.Mat4 {
	var m mgl32.Mat4
	m[0] = frustumScale
	m[5] = frustumScale
	m[10] = (near + far) / (near - far)
	m[11] = -1
	m[14] = (2 * near * far) / (near - far)
	return m
}

// AspectCorrect rescales x so that a width x height framebuffer keeps
// square pixels.
func AspectCorrect(m mgl32.Mat4, frustumScale float32, width, height int) mgl32.Mat4 {
	if width <= 0 || height <= 0 {
		return m
	}
	m[0] = frustumScale * float32(height) / float32(width)
	return m
}
