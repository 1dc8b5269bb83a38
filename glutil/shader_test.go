package glutil

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShaderTypeName(t *testing.T) {
	assert.Equal(t, "vertex", ShaderTypeName(gl.VERTEX_SHADER))
	assert.Equal(t, "fragment", ShaderTypeName(gl.FRAGMENT_SHADER))
	assert.Equal(t, "geometry", ShaderTypeName(gl.GEOMETRY_SHADER))
	assert.Equal(t, "unknown", ShaderTypeName(0))
}

func TestReadSource(t *testing.T) {
	fsys := fstest.MapFS{
		"a.vert":     {Data: []byte("#version 410 core\nvoid main() {}\n")},
		"b.frag":     {Data: []byte("void main() {}\x00")},
		"empty.frag": {Data: nil},
	}

	src, err := ReadSource(fsys, "a.vert")
	require.NoError(t, err)
	assert.Equal(t, "#version 410 core\nvoid main() {}\n\x00", src)

	src, err = ReadSource(fsys, "b.frag")
	require.NoError(t, err)
	assert.Equal(t, "void main() {}\x00", src, "already terminated sources are kept as is")

	_, err = ReadSource(fsys, "empty.frag")
	assert.ErrorContains(t, err, "empty source")

	_, err = ReadSource(fsys, "missing.vert")
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.ErrorContains(t, err, `"missing.vert"`)
}

func TestTerminate(t *testing.T) {
	assert.Equal(t, "x\x00", terminate("x"))
	assert.Equal(t, "x\x00", terminate("x\x00"))
	assert.Equal(t, "\x00", terminate(""))
}

func TestTrimLog(t *testing.T) {
	assert.Equal(t, "0:1: error", trimLog([]byte("0:1: error\n\x00\x00")))
	assert.Equal(t, "", trimLog([]byte{0}))
}
