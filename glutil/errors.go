package glutil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ErrLocationNotFound is returned when a name does not correspond to an
// active attribute or uniform of a program.
var ErrLocationNotFound = errors.New("location not found")

// CompileError reports a shader that failed to compile.
type CompileError struct {
	Type uint32 // gl.VERTEX_SHADER, gl.FRAGMENT_SHADER, ...
	Path string // empty for sources given as strings
	Log  string
}

func (e *CompileError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s shader (%s) compilation failed: %s", ShaderTypeName(e.Type), e.Path, e.Log)
	}
	return fmt.Sprintf("%s shader compilation failed: %s", ShaderTypeName(e.Type), e.Log)
}

// LinkError reports a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "shader program linking failed: " + e.Log
}

// CheckError drains the GL error queue. It returns nil when no error is
// pending, otherwise an error naming op and the pending codes in order. At
// most maxPendingErrors codes are read, and draining stops after
// CONTEXT_LOST, which a lost context reports on every call.
func CheckError(op string) error {
	return errorFromCodes(op, drainErrors(gl.GetError))
}

const maxPendingErrors = 16

// drainErrors calls get until it returns NO_ERROR or CONTEXT_LOST, or
// maxPendingErrors codes have been collected.
func drainErrors(get func() uint32) []uint32 {
	var codes []uint32
	for len(codes) < maxPendingErrors {
		code := get()
		if code == gl.NO_ERROR {
			break
		}
		codes = append(codes, code)
		if code == contextLost {
			break
		}
	}
	return codes
}

// objectError explains a zero object name returned by op.
func objectError(op string) error {
	if err := CheckError(op); err != nil {
		return err
	}
	return fmt.Errorf("%s returned 0", op)
}

// Error codes from KHR_debug and KHR_robustness, absent from the 4.1 core
// headers but still returned by drivers that expose them.
const (
	stackOverflow  = 0x0503
	stackUnderflow = 0x0504
	contextLost    = 0x0507
)

func errorFromCodes(op string, codes []uint32) error {
	if len(codes) == 0 {
		return nil
	}
	names := make([]string, len(codes))
	for i, c := range codes {
		names[i] = ErrorName(c)
	}
	return fmt.Errorf("%s: gl error %s", op, strings.Join(names, ", "))
}

// ErrorName returns the symbolic name of a glGetError code.
func ErrorName(code uint32) string {
	switch code {
	case gl.NO_ERROR:
		return "NO_ERROR"
	case gl.INVALID_ENUM:
		return "INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "OUT_OF_MEMORY"
	case stackUnderflow:
		return "STACK_UNDERFLOW"
	case stackOverflow:
		return "STACK_OVERFLOW"
	case contextLost:
		return "CONTEXT_LOST"
	default:
		return fmt.Sprintf("0x%04x", code)
	}
}
