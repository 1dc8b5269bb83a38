package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/gldemos/glutil"
	"github.com/go-theft-auto/gldemos/scene"
)

const feedbackStride = 3 // xyz

// TriforceFeedback rotates the triforce on the GPU. Two buffers take turns:
// the update pass reads src and captures rotated positions into the other
// buffer with rasterization disabled, the render pass draws the captured
// buffer, and the roles swap.
type TriforceFeedback struct {
	program uint32
	vaos    [2]uint32
	vbos    [2]uint32
	src     int

	inPos    uint32
	modeLoc  int32
	angleLoc int32
	angle    float32
}

// NewTriforceFeedback builds the feedback program and the two buffers.
func NewTriforceFeedback() (*TriforceFeedback, error) {
	t := &TriforceFeedback{angle: scene.DeltaAngle}

	var err error
	t.program, err = glutil.NewProgram(scene.FeedbackVertexShader, scene.TriforceFragmentShader,
		glutil.ProgramOptions{FeedbackVaryings: []string{scene.FeedbackVarying}})
	if err != nil {
		return nil, fmt.Errorf("triforce feedback: %w", err)
	}

	if err := t.initLocations(); err != nil {
		t.Delete()
		return nil, err
	}
	t.initBuffers()

	if err := glutil.CheckError("triforce feedback setup"); err != nil {
		t.Delete()
		return nil, err
	}
	return t, nil
}

func (t *TriforceFeedback) initLocations() error {
	var err error
	if t.inPos, err = glutil.AttribLocation(t.program, "inPos"); err != nil {
		return fmt.Errorf("triforce feedback: %w", err)
	}
	if t.modeLoc, err = glutil.UniformLocation(t.program, "mode"); err != nil {
		return fmt.Errorf("triforce feedback: %w", err)
	}
	if t.angleLoc, err = glutil.UniformLocation(t.program, "angle"); err != nil {
		return fmt.Errorf("triforce feedback: %w", err)
	}
	return nil
}

func (t *TriforceFeedback) initBuffers() {
	initial := scene.TriforceData(feedbackStride)
	size := len(initial) * 4

	gl.GenVertexArrays(2, &t.vaos[0])
	gl.GenBuffers(2, &t.vbos[0])
	for i := range t.vbos {
		gl.BindVertexArray(t.vaos[i])
		gl.BindBuffer(gl.ARRAY_BUFFER, t.vbos[i])
		// Only the first source needs data; the other is written by the
		// first update pass.
		if i == 0 {
			gl.BufferData(gl.ARRAY_BUFFER, size, gl.Ptr(initial), gl.DYNAMIC_COPY)
		} else {
			gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.DYNAMIC_COPY)
		}
		gl.EnableVertexAttribArray(t.inPos)
		gl.VertexAttribPointerWithOffset(t.inPos, feedbackStride, gl.FLOAT, false, 0, 0)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	t.src = 0
	glutil.Logger().Debug("feedback buffers", "vaos", t.vaos, "vbos", t.vbos, "bytes", size)
}

func (t *TriforceFeedback) dst() int { return 1 - t.src }

// Update runs the vertex shader over the source buffer and captures the
// rotated positions into the destination buffer, then swaps them.
func (t *TriforceFeedback) Update() {
	gl.UseProgram(t.program)
	gl.Uniform1ui(t.modeLoc, scene.ModeUpdate)
	gl.Uniform1f(t.angleLoc, t.angle)

	gl.BindVertexArray(t.vaos[t.src])
	gl.BindBufferBase(gl.TRANSFORM_FEEDBACK_BUFFER, 0, t.vbos[t.dst()])

	gl.Enable(gl.RASTERIZER_DISCARD)
	gl.BeginTransformFeedback(gl.TRIANGLES)
	gl.DrawArrays(gl.TRIANGLES, 0, scene.TriforceVertices)
	gl.EndTransformFeedback()
	gl.Disable(gl.RASTERIZER_DISCARD)

	gl.BindBufferBase(gl.TRANSFORM_FEEDBACK_BUFFER, 0, 0)
	gl.BindVertexArray(0)
	gl.UseProgram(0)

	t.src = t.dst()
}

// Render draws the most recently captured positions.
func (t *TriforceFeedback) Render() {
	gl.ClearColor(0, 0, 0, 0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(t.program)
	gl.Uniform1ui(t.modeLoc, scene.ModeRender)
	gl.BindVertexArray(t.vaos[t.src])
	gl.DrawArrays(gl.TRIANGLES, 0, scene.TriforceVertices)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// Resize follows the framebuffer with the viewport.
func (t *TriforceFeedback) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Delete releases GL resources.
func (t *TriforceFeedback) Delete() {
	glutil.Logger().Info("deleting OpenGL objects", "demo", "triforce-feedback")
	if t.vaos[0] != 0 {
		gl.DeleteVertexArrays(2, &t.vaos[0])
		t.vaos = [2]uint32{}
	}
	if t.vbos[0] != 0 {
		gl.DeleteBuffers(2, &t.vbos[0])
		t.vbos = [2]uint32{}
	}
	if t.program != 0 {
		gl.DeleteProgram(t.program)
		t.program = 0
	}
}

// ReadPositions copies the current positions back from the GPU. Used by
// snapshot checks; it stalls the pipeline.
func (t *TriforceFeedback) ReadPositions() []float32 {
	out := make([]float32, scene.TriforceVertices*feedbackStride)
	gl.BindBuffer(gl.ARRAY_BUFFER, t.vbos[t.src])
	gl.GetBufferSubData(gl.ARRAY_BUFFER, 0, len(out)*4, gl.Ptr(out))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return out
}
