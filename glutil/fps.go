package glutil

// FrameCounter counts frames and reports the count once per second.
//
// The report timer advances by exactly one second per report, so a stall
// produces several back-to-back reports until it catches up with the clock.
type FrameCounter struct {
	timer  float64
	frames int
}

// NewFrameCounter returns a counter whose first second starts at start.
func NewFrameCounter(start float64) *FrameCounter {
	return &FrameCounter{timer: start}
}

// Frame records one frame at time now (seconds). When more than a second
// has passed since the last report it returns the number of frames counted
// and true, and starts counting again.
func (c *FrameCounter) Frame(now float64) (fps int, report bool) {
	c.frames++
	if now-c.timer > 1.0 {
		c.timer++
		fps = c.frames
		c.frames = 0
		return fps, true
	}
	return 0, false
}

// pending returns the number of frames counted since the last report.
func (c *FrameCounter) pending() int {
	return c.frames
}
