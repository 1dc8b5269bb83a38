package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// TriforceVertices is the vertex count of the triforce: three triangles.
const TriforceVertices = 9

// DeltaAngle is the rotation applied to the triforce every frame.
const DeltaAngle = float32(2 * math.Pi / 100)

var triforcePositions = [TriforceVertices]mgl32.Vec3{
	// upper
	{0.0, 0.5, 0.0},
	{-0.25, 0.0, 0.0},
	{0.25, 0.0, 0.0},
	// lower left
	{-0.25, 0.0, 0.0},
	{-0.5, -0.5, 0.0},
	{0.0, -0.5, 0.0},
	// lower right
	{0.25, 0.0, 0.0},
	{0.0, -0.5, 0.0},
	{0.5, -0.5, 0.0},
}

// TriforceData returns the triforce positions packed with stride floats
// per vertex. Stride 3 gives xyz, stride 4 gives clip-space xyzw with w=1.
// It panics if stride is less than 3.
func TriforceData(stride int) []float32 {
	if stride < 3 {
		panic("scene: triforce stride must be at least 3")
	}
	data := make([]float32, TriforceVertices*stride)
	for i, p := range triforcePositions {
		copy(data[i*stride:], p[:])
		if stride > 3 {
			data[i*stride+3] = 1
		}
	}
	return data
}

// Rotation returns the combined rotation by t about the three axes that
// both triforce demos apply each frame. The feedback vertex shader encodes
// the same matrix.
func Rotation(t float32) mgl32.Mat3 {
	tt := float64(t)
	c1, s1 := float32(math.Cos(tt)), float32(math.Sin(tt))
	c2, s2 := float32(math.Cos(2*tt)), float32(math.Sin(2*tt))
	c3, s3 := float32(math.Cos(3*tt)), float32(math.Sin(3*tt))

	return mgl32.Mat3FromRows(
		mgl32.Vec3{(2 + 2*c2) / 4, (c1 - c3 - 2*s2) / 4, (2 - 2*c2 + s1 + s3) / 4},
		mgl32.Vec3{(2 * s2) / 4, (2 + 2*c2 + 3*s1 - s3) / 4, (c1 - c3 - 2*s2) / 4},
		mgl32.Vec3{-s1, s2 / 2, (1 + c2) / 2},
	)
}

// Rotate applies Rotation(t) in place to the xyz of every vertex in data.
// Components past the third are left alone. A trailing partial vertex is
// ignored.
func Rotate(data []float32, stride int, t float32) {
	if stride < 3 {
		return
	}
	m := Rotation(t)
	for i := 0; i+stride <= len(data); i += stride {
		v := m.Mul3x1(mgl32.Vec3{data[i], data[i+1], data[i+2]})
		data[i], data[i+1], data[i+2] = v[0], v[1], v[2]
	}
}

// MaxDeviation returns the largest absolute difference between the xyz of
// matching vertices in a (stride sa) and b (stride sb). Vertices present
// in only one of them are ignored.
func MaxDeviation(a []float32, sa int, b []float32, sb int) float32 {
	if sa < 3 || sb < 3 {
		return 0
	}
	var worst float32
	for i, j := 0, 0; i+sa <= len(a) && j+sb <= len(b); i, j = i+sa, j+sb {
		for k := 0; k < 3; k++ {
			d := a[i+k] - b[j+k]
			if d < 0 {
				d = -d
			}
			worst = max(worst, d)
		}
	}
	return worst
}
