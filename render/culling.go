package render

import "github.com/go-gl/gl/v4.1-core/gl"

// faceCulling is the face culling state a demo draws with.
type faceCulling struct {
	enabled bool
	cull    uint32
	front   uint32
}

var (
	// defaultCulling is the context's initial state. Every demo leaves the
	// context in it after drawing so demos can share one context.
	defaultCulling = faceCulling{cull: gl.BACK, front: gl.CCW}

	// rectangleCulling drops the inner faces of the box, whose outer faces
	// wind clockwise.
	rectangleCulling = faceCulling{enabled: true, cull: gl.BACK, front: gl.CW}
)

// stateSetter receives face culling state changes.
type stateSetter interface {
	Enable(capability uint32)
	Disable(capability uint32)
	CullFace(mode uint32)
	FrontFace(mode uint32)
}

// glState forwards to the current context.
type glState struct{}

func (glState) Enable(capability uint32)  { gl.Enable(capability) }
func (glState) Disable(capability uint32) { gl.Disable(capability) }
func (glState) CullFace(mode uint32)      { gl.CullFace(mode) }
func (glState) FrontFace(mode uint32)     { gl.FrontFace(mode) }

func (c faceCulling) apply(s stateSetter) {
	if c.enabled {
		s.Enable(gl.CULL_FACE)
	} else {
		s.Disable(gl.CULL_FACE)
	}
	s.CullFace(c.cull)
	s.FrontFace(c.front)
}

// withCulling runs draw with c in effect, then restores defaultCulling.
func withCulling(s stateSetter, c faceCulling, draw func()) {
	c.apply(s)
	defer defaultCulling.apply(s)
	draw()
}
