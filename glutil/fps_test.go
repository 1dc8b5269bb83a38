package glutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameCounter(t *testing.T) {
	c := NewFrameCounter(0)

	for i, now := range []float64{0.1, 0.5, 0.9, 1.0} {
		_, report := c.Frame(now)
		assert.False(t, report, "frame %d at %.1fs", i, now)
	}
	assert.Equal(t, 4, c.pending())

	fps, report := c.Frame(1.01)
	assert.True(t, report)
	assert.Equal(t, 5, fps)
	assert.Equal(t, 0, c.pending())

	// The timer is now at 1s; the next report needs now > 2s.
	_, report = c.Frame(1.9)
	assert.False(t, report)
	fps, report = c.Frame(2.5)
	assert.True(t, report)
	assert.Equal(t, 2, fps)
}

func TestFrameCounterCatchesUpAfterStall(t *testing.T) {
	c := NewFrameCounter(10)

	fps, report := c.Frame(13.5)
	assert.True(t, report)
	assert.Equal(t, 1, fps)

	// Timer advanced to 11s only, so the next frames keep reporting until
	// it passes now-1.
	_, report = c.Frame(13.5)
	assert.True(t, report)
	_, report = c.Frame(13.5)
	assert.True(t, report)
	_, report = c.Frame(13.5)
	assert.False(t, report)
}
