package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectangleData(t *testing.T) {
	data := RectangleData()
	require.Len(t, data, RectangleVertices*(RectanglePositionFloats+RectangleColorFloats))
	assert.Equal(t, len(data)*4/2, RectangleColorOffset(), "colors start half way")

	// Every face is two triangles sharing one color.
	colors := data[RectangleColorOffset()/4:]
	for face := 0; face < 6; face++ {
		first := colors[face*18 : face*18+3]
		for v := 1; v < 6; v++ {
			i := face*18 + v*3
			assert.Equal(t, first, colors[i:i+3], "face %d vertex %d", face, v)
		}
	}
	assert.Equal(t, []float32{0, 0, 1}, colors[0:3])
	assert.Equal(t, []float32{0, 1, 1}, colors[len(colors)-3:])

	// Positions stay inside the box in front of the camera.
	for i := 0; i < RectangleVertices; i++ {
		p := data[i*3 : i*3+3]
		assert.InDelta(t, 0, p[0], 0.25)
		assert.InDelta(t, 0, p[1], 0.25)
		assert.True(t, p[2] == -1.25 || p[2] == -2.75, "vertex %d z=%v", i, p[2])
	}
}

func TestRectangleDataIsACopy(t *testing.T) {
	a := RectangleData()
	a[0] = 42
	assert.NotEqual(t, float32(42), RectangleData()[0])
}

func TestPerspective(t *testing.T) {
	m := Perspective(FrustumScale, ZNear, ZFar)
	want := mgl32.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, -1.4, -1,
		0, 0, -1.2, 0,
	}
	for i := range want {
		assert.InDelta(t, want[i], m[i], 1e-6, "element %d", i)
	}

	// Near and far planes land on the ends of the depth range.
	near := m.Mul4x1(mgl32.Vec4{0, 0, -ZNear, 1})
	far := m.Mul4x1(mgl32.Vec4{0, 0, -ZFar, 1})
	assert.InDelta(t, -1, near.Z()/near.W(), 1e-6)
	assert.InDelta(t, 1, far.Z()/far.W(), 1e-6)
}

func TestAspectCorrect(t *testing.T) {
	m := Perspective(FrustumScale, ZNear, ZFar)

	wide := AspectCorrect(m, FrustumScale, 1600, 800)
	assert.Equal(t, float32(0.5), wide[0])
	assert.Equal(t, m[5], wide[5], "only x is rescaled")

	square := AspectCorrect(wide, FrustumScale, 800, 800)
	assert.Equal(t, float32(1), square[0])

	assert.Equal(t, wide, AspectCorrect(wide, FrustumScale, 0, 600), "minimized windows keep the last matrix")
}
