package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/gldemos/scene"
)

var (
	_ Demo = (*Rectangle)(nil)
	_ Demo = (*TriforceCPU)(nil)
	_ Demo = (*TriforceFeedback)(nil)
)

func TestRunOptions(t *testing.T) {
	var o runOptions
	assert.Nil(t, o.fps)
	assert.False(t, o.strictGL)

	var buf bytes.Buffer
	WithFPS(&buf)(&o)
	WithStrictGL(true)(&o)
	assert.Same(t, &buf, o.fps)
	assert.True(t, o.strictGL)
}

func TestFeedbackPingPong(t *testing.T) {
	// Buffer bookkeeping only; no GL calls.
	f := &TriforceFeedback{}
	assert.Equal(t, 0, f.src)
	assert.Equal(t, 1, f.dst())

	f.src = f.dst()
	assert.Equal(t, 1, f.src)
	assert.Equal(t, 0, f.dst())
}

func TestDeleteWithoutObjectsIsSafe(t *testing.T) {
	// Zero ids are skipped, so no GL call is made.
	(&Rectangle{}).Delete()
	(&TriforceCPU{}).Delete()
	(&TriforceFeedback{}).Delete()
}

func TestPositionsIsACopy(t *testing.T) {
	tri := &TriforceCPU{data: scene.TriforceData(cpuStride)}

	got := tri.Positions()
	assert.Equal(t, tri.data, got)

	got[0] = 42
	assert.Equal(t, scene.TriforceData(cpuStride), tri.data)
}
