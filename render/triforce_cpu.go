package render

import (
	"fmt"
	"slices"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/gldemos/glutil"
	"github.com/go-theft-auto/gldemos/scene"
)

const cpuStride = 4 // xyzw

// TriforceCPU rotates the triforce on the CPU every frame and re-uploads
// the whole vertex buffer.
type TriforceCPU struct {
	program  uint32
	vao, vbo uint32
	data     []float32
}

// NewTriforceCPU builds the program and uploads the initial positions.
func NewTriforceCPU() (*TriforceCPU, error) {
	t := &TriforceCPU{data: scene.TriforceData(cpuStride)}

	var err error
	t.program, err = glutil.NewProgram(scene.TriforceVertexShader, scene.TriforceFragmentShader, glutil.ProgramOptions{})
	if err != nil {
		return nil, fmt.Errorf("triforce cpu: %w", err)
	}

	gl.GenVertexArrays(1, &t.vao)
	gl.GenBuffers(1, &t.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, t.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(t.data)*4, gl.Ptr(t.data), gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if err := glutil.CheckError("triforce cpu setup"); err != nil {
		t.Delete()
		return nil, err
	}
	return t, nil
}

// Update rotates the positions by scene.DeltaAngle and copies them to the
// vertex buffer.
func (t *TriforceCPU) Update() {
	scene.Rotate(t.data, cpuStride, scene.DeltaAngle)
	gl.BindBuffer(gl.ARRAY_BUFFER, t.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(t.data)*4, gl.Ptr(t.data))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Render draws the triforce.
func (t *TriforceCPU) Render() {
	gl.ClearColor(0, 0, 0, 0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(t.program)
	gl.BindVertexArray(t.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, t.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, cpuStride, gl.FLOAT, false, 0, 0)

	gl.DrawArrays(gl.TRIANGLES, 0, scene.TriforceVertices)

	gl.DisableVertexAttribArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// Resize follows the framebuffer with the viewport.
func (t *TriforceCPU) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Delete releases GL resources.
func (t *TriforceCPU) Delete() {
	glutil.Logger().Info("deleting OpenGL objects", "demo", "triforce-cpu")
	if t.program != 0 {
		gl.DeleteProgram(t.program)
		t.program = 0
	}
	if t.vbo != 0 {
		gl.DeleteBuffers(1, &t.vbo)
		t.vbo = 0
	}
	if t.vao != 0 {
		gl.DeleteVertexArrays(1, &t.vao)
		t.vao = 0
	}
}

// Positions returns a copy of the current vertex data, four floats per
// vertex.
func (t *TriforceCPU) Positions() []float32 {
	return slices.Clone(t.data)
}
