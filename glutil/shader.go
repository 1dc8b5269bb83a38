// Package glutil holds the OpenGL 4.1 and GLFW plumbing shared by the
// demos: shader compilation, program linking, window/context bootstrap,
// GLFW callbacks, GL error draining and framebuffer capture.
//
// Everything touching GL must run on the thread that owns the context;
// commands lock the OS thread in init.
package glutil

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ShaderTypeName returns a human name for a shader type enum.
func ShaderTypeName(typ uint32) string {
	switch typ {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	case gl.GEOMETRY_SHADER:
		return "geometry"
	default:
		return "unknown"
	}
}

// ReadSource reads GLSL text from fsys. The result is NUL-terminated, as
// gl.Strs expects.
func ReadSource(fsys fs.FS, path string) (string, error) {
	b, err := fs.ReadFile(fsys, path)
	if err != nil {
		return "", fmt.Errorf("read shader %q: %w", path, err)
	}
	if len(b) == 0 {
		return "", fmt.Errorf("read shader %q: empty source", path)
	}
	return terminate(string(b)), nil
}

// terminate appends a NUL byte unless src already ends with one.
func terminate(src string) string {
	if strings.HasSuffix(src, "\x00") {
		return src
	}
	return src + "\x00"
}

// CompileShader creates and compiles a shader object of type typ from src.
// On failure the shader is deleted and a *CompileError carrying the info
// log is returned.
func CompileShader(src string, typ uint32) (uint32, error) {
	return compile(src, typ, "")
}

// LoadShader reads path from fsys and compiles it as a shader of type typ.
func LoadShader(fsys fs.FS, path string, typ uint32) (uint32, error) {
	src, err := ReadSource(fsys, path)
	if err != nil {
		return 0, err
	}
	return compile(src, typ, path)
}

func compile(src string, typ uint32, path string) (uint32, error) {
	shader := gl.CreateShader(typ)
	if shader == 0 {
		return 0, fmt.Errorf("create %s shader: %w", ShaderTypeName(typ), objectError("glCreateShader"))
	}

	csource, free := gl.Strs(terminate(src))
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, &CompileError{Type: typ, Path: path, Log: trimLog(log)}
	}

	Logger().Debug("compiled shader", "type", ShaderTypeName(typ), "path", path, "id", shader)
	return shader, nil
}

// trimLog turns a NUL-padded info log into a string.
func trimLog(log []byte) string {
	return strings.TrimRight(string(log), "\x00\n ")
}
