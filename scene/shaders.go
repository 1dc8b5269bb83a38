package scene

import "embed"

// Shaders holds the GLSL files loaded at run time.
//
//go:embed shaders/*.vert shaders/*.frag
var Shaders embed.FS

// Paths of the rectangle viewer shaders inside Shaders.
const (
	RectangleVertexPath   = "shaders/rectangle.vert"
	RectangleFragmentPath = "shaders/rectangle.frag"
)

// Feedback vertex shader modes.
const (
	ModeUpdate uint32 = 0
	ModeRender uint32 = 1
)

// FeedbackVarying is the vertex output captured by transform feedback.
const FeedbackVarying = "outPos"

// TriforceVertexShader passes clip-space positions through.
const TriforceVertexShader = `
#version 410 core
layout (location = 0) in vec4 pos;

void main() {
    gl_Position = pos;
}
` + "\x00"

// TriforceFragmentShader paints everything gold.
const TriforceFragmentShader = `
#version 410 core
out vec4 outCol;

void main() {
    outCol = vec4(1.0, 0.843, 0.0, 1.0);
}
` + "\x00"

// FeedbackVertexShader rotates inPos by angle into outPos when mode is
// ModeUpdate, and forwards inPos to the rasterizer when mode is ModeRender.
// The matrix is the one built by Rotation.
const FeedbackVertexShader = `
#version 410 core
layout (location = 0) in vec3 inPos;

uniform uint mode;
uniform float angle;

out vec3 outPos;

mat3 rotation(float t) {
    float c1 = cos(t), s1 = sin(t);
    float c2 = cos(2.0 * t), s2 = sin(2.0 * t);
    float c3 = cos(3.0 * t), s3 = sin(3.0 * t);
    // Rows, transposed into GLSL's column-major constructor.
    return transpose(mat3(
        (2.0 + 2.0 * c2) / 4.0, (c1 - c3 - 2.0 * s2) / 4.0, (2.0 - 2.0 * c2 + s1 + s3) / 4.0,
        (2.0 * s2) / 4.0, (2.0 + 2.0 * c2 + 3.0 * s1 - s3) / 4.0, (c1 - c3 - 2.0 * s2) / 4.0,
        -s1, s2 / 2.0, (1.0 + c2) / 2.0));
}

void main() {
    if (mode == 0u) {
        outPos = rotation(angle) * inPos;
    } else {
        outPos = inPos;
    }
    gl_Position = vec4(outPos, 1.0);
}
` + "\x00"
