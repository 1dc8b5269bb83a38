package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rotateScalar is the per-component form of the triforce rotation.
func rotateScalar(x, y, z, t float64) (float64, float64, float64) {
	c, s := math.Cos, math.Sin
	nx := (2*x + 2*z + y*c(t) + 2*x*c(2*t) - 2*z*c(2*t) - y*c(3*t) + z*s(t) - 2*y*s(2*t) + z*s(3*t)) / 4
	ny := (2*y + z*c(t) + 2*y*c(2*t) - z*c(3*t) + 3*y*s(t) + 2*x*s(2*t) - 2*z*s(2*t) - y*s(3*t)) / 4
	nz := (z + z*c(2*t) - 2*x*s(t) + y*s(2*t)) / 2
	return nx, ny, nz
}

func TestTriforceData(t *testing.T) {
	xyz := TriforceData(3)
	require.Len(t, xyz, TriforceVertices*3)
	assert.Equal(t, []float32{0, 0.5, 0}, xyz[0:3])
	assert.Equal(t, []float32{0.5, -0.5, 0}, xyz[24:27])

	xyzw := TriforceData(4)
	require.Len(t, xyzw, TriforceVertices*4)
	for i := 0; i < TriforceVertices; i++ {
		assert.Equal(t, xyz[i*3:i*3+3], xyzw[i*4:i*4+3])
		assert.Equal(t, float32(1), xyzw[i*4+3], "w of vertex %d", i)
	}

	assert.Panics(t, func() { TriforceData(2) })
}

func TestRotationAtZeroIsIdentity(t *testing.T) {
	assert.True(t, Rotation(0).ApproxEqualThreshold(mgl32.Ident3(), 1e-6))
}

func TestRotateMatchesScalarForm(t *testing.T) {
	for _, angle := range []float32{DeltaAngle, 0.5, -1.3, math.Pi} {
		data := TriforceData(3)
		Rotate(data, 3, angle)
		for i, p := range triforcePositions {
			x, y, z := rotateScalar(float64(p[0]), float64(p[1]), float64(p[2]), float64(angle))
			assert.InDelta(t, x, data[i*3], 1e-5, "x of vertex %d at %v", i, angle)
			assert.InDelta(t, y, data[i*3+1], 1e-5, "y of vertex %d at %v", i, angle)
			assert.InDelta(t, z, data[i*3+2], 1e-5, "z of vertex %d at %v", i, angle)
		}
	}
}

func TestRotateLeavesExtraComponents(t *testing.T) {
	data := TriforceData(4)
	for frame := 0; frame < 10; frame++ {
		Rotate(data, 4, DeltaAngle)
	}
	for i := 0; i < TriforceVertices; i++ {
		assert.Equal(t, float32(1), data[i*4+3])
	}
}

func TestRotateStrideEdgeCases(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5}
	Rotate(data, 3, 0.7)
	assert.Equal(t, []float32{4, 5}, data[3:], "trailing partial vertex untouched")

	short := []float32{1, 2}
	Rotate(short, 2, 0.7)
	assert.Equal(t, []float32{1, 2}, short)
}

func TestMaxDeviation(t *testing.T) {
	a := TriforceData(4)
	b := TriforceData(3)
	assert.Zero(t, MaxDeviation(a, 4, b, 3))

	b[7] += 0.25
	b[20] -= 0.5
	assert.InDelta(t, 0.5, MaxDeviation(a, 4, b, 3), 1e-6)

	assert.Zero(t, MaxDeviation(a, 4, b[:2], 3), "no complete vertex in b")
	assert.Zero(t, MaxDeviation(a, 2, b, 3))
}
