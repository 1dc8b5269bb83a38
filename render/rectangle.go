package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/gldemos/glutil"
	"github.com/go-theft-auto/gldemos/scene"
)

// Rectangle draws a colored box in perspective, seen from a fixed camera
// offset.
type Rectangle struct {
	program  uint32
	vao, vbo uint32

	inPos, inCol    uint32
	perspectiveLoc  int32
	cameraOffsetLoc int32

	perspective mgl32.Mat4
}

// NewRectangle builds the program and uploads the vertex data.
func NewRectangle() (*Rectangle, error) {
	r := &Rectangle{
		perspective: scene.Perspective(scene.FrustumScale, scene.ZNear, scene.ZFar),
	}

	if err := r.initProgram(); err != nil {
		return nil, err
	}
	if err := r.initLocations(); err != nil {
		r.Delete()
		return nil, err
	}
	r.initBuffers()

	gl.ClearColor(0, 0, 0, 1)

	if err := glutil.CheckError("rectangle setup"); err != nil {
		r.Delete()
		return nil, err
	}
	return r, nil
}

func (r *Rectangle) initProgram() error {
	vs, err := glutil.LoadShader(scene.Shaders, scene.RectangleVertexPath, gl.VERTEX_SHADER)
	if err != nil {
		return fmt.Errorf("rectangle: %w", err)
	}
	defer gl.DeleteShader(vs)

	frag, err := glutil.LoadShader(scene.Shaders, scene.RectangleFragmentPath, gl.FRAGMENT_SHADER)
	if err != nil {
		return fmt.Errorf("rectangle: %w", err)
	}
	defer gl.DeleteShader(frag)

	r.program, err = glutil.CreateProgram(glutil.ProgramOptions{}, vs, frag)
	if err != nil {
		return fmt.Errorf("rectangle: %w", err)
	}
	return nil
}

func (r *Rectangle) initLocations() error {
	var err error
	if r.inPos, err = glutil.AttribLocation(r.program, "inPos"); err != nil {
		return fmt.Errorf("rectangle: %w", err)
	}
	if r.inCol, err = glutil.AttribLocation(r.program, "inCol"); err != nil {
		return fmt.Errorf("rectangle: %w", err)
	}
	if r.perspectiveLoc, err = glutil.UniformLocation(r.program, "perspectiveMat"); err != nil {
		return fmt.Errorf("rectangle: %w", err)
	}
	if r.cameraOffsetLoc, err = glutil.UniformLocation(r.program, "cameraOffset"); err != nil {
		return fmt.Errorf("rectangle: %w", err)
	}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.perspectiveLoc, 1, false, &r.perspective[0])
	gl.Uniform2fv(r.cameraOffsetLoc, 1, &scene.CameraOffset[0])
	gl.UseProgram(0)
	return nil
}

func (r *Rectangle) initBuffers() {
	data := scene.RectangleData()

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	glutil.Logger().Debug("rectangle buffers", "vao", r.vao, "vbo", r.vbo, "bytes", len(data)*4)
}

// Update is a no-op: the rectangle is static.
func (r *Rectangle) Update() {}

// Render draws the box. Face culling is on only while the box is drawn.
func (r *Rectangle) Render() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
	withCulling(glState{}, rectangleCulling, r.draw)
}

func (r *Rectangle) draw() {
	gl.UseProgram(r.program)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	gl.EnableVertexAttribArray(r.inPos)
	gl.EnableVertexAttribArray(r.inCol)
	gl.VertexAttribPointerWithOffset(r.inPos, scene.RectanglePositionFloats, gl.FLOAT, false, 0, 0)
	gl.VertexAttribPointerWithOffset(r.inCol, scene.RectangleColorFloats, gl.FLOAT, false, 0,
		uintptr(scene.RectangleColorOffset()))

	gl.DrawArrays(gl.TRIANGLES, 0, scene.RectangleVertices)

	gl.DisableVertexAttribArray(r.inCol)
	gl.DisableVertexAttribArray(r.inPos)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// Resize keeps the aspect ratio and follows the framebuffer with the
// viewport.
func (r *Rectangle) Resize(width, height int) {
	r.perspective = scene.AspectCorrect(r.perspective, scene.FrustumScale, width, height)
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.perspectiveLoc, 1, false, &r.perspective[0])
	gl.UseProgram(0)
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Delete releases GL resources.
func (r *Rectangle) Delete() {
	glutil.Logger().Info("terminating renderer", "demo", "rectangle")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}
