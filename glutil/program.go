package glutil

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ProgramOptions configures CreateProgram.
type ProgramOptions struct {
	// FeedbackVaryings lists vertex shader outputs captured by transform
	// feedback, interleaved into a single buffer. Empty disables capture.
	FeedbackVaryings []string
}

// LinkProgram links program. On failure the program is deleted and a
// *LinkError carrying the info log is returned.
func LinkProgram(program uint32) error {
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return &LinkError{Log: trimLog(log)}
	}
	return nil
}

// CreateProgram creates a program object, attaches shaders, links it and
// detaches the shaders again. The shader objects stay owned by the caller.
func CreateProgram(opts ProgramOptions, shaders ...uint32) (uint32, error) {
	program := gl.CreateProgram()
	if program == 0 {
		return 0, fmt.Errorf("create program: %w", objectError("glCreateProgram"))
	}

	for _, s := range shaders {
		gl.AttachShader(program, s)
	}

	if len(opts.FeedbackVaryings) > 0 {
		names := make([]string, len(opts.FeedbackVaryings))
		for i, v := range opts.FeedbackVaryings {
			names[i] = terminate(v)
		}
		cnames, free := gl.Strs(names...)
		gl.TransformFeedbackVaryings(program, int32(len(names)), cnames, gl.INTERLEAVED_ATTRIBS)
		free()
	}

	if err := LinkProgram(program); err != nil {
		// The program is gone; detaching from it would be an error.
		return 0, err
	}

	for _, s := range shaders {
		gl.DetachShader(program, s)
	}

	Logger().Debug("linked program", "id", program, "shaders", len(shaders))
	return program, nil
}

// NewProgram compiles a vertex and a fragment shader from source, links
// them into a program and deletes the shader objects.
func NewProgram(vertexSource, fragmentSource string, opts ProgramOptions) (uint32, error) {
	vs, err := CompileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vs)

	frag, err := CompileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(frag)

	return CreateProgram(opts, vs, frag)
}

// AttribLocation returns the location of the vertex attribute name.
func AttribLocation(program uint32, name string) (uint32, error) {
	loc := gl.GetAttribLocation(program, gl.Str(terminate(name)))
	if loc < 0 {
		return 0, fmt.Errorf("attribute %q: %w", name, ErrLocationNotFound)
	}
	return uint32(loc), nil
}

// UniformLocation returns the location of the uniform name.
func UniformLocation(program uint32, name string) (int32, error) {
	loc := gl.GetUniformLocation(program, gl.Str(terminate(name)))
	if loc < 0 {
		return 0, fmt.Errorf("uniform %q: %w", name, ErrLocationNotFound)
	}
	return loc, nil
}
