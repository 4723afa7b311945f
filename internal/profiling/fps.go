package profiling

import "time"

// FPSCounter averages frame rate over a sliding window.
type FPSCounter struct {
	Window time.Duration

	frames      int
	windowStart time.Time
	fps         float64
}

func NewFPSCounter(window time.Duration) *FPSCounter {
	return &FPSCounter{Window: window}
}

// Frame counts one frame at now and reports whether the average was refreshed.
func (c *FPSCounter) Frame(now time.Time) bool {
	if c.windowStart.IsZero() {
		c.windowStart = now
	}
	c.frames++
	elapsed := now.Sub(c.windowStart)
	if elapsed < c.Window {
		return false
	}
	c.fps = float64(c.frames) / elapsed.Seconds()
	c.frames = 0
	c.windowStart = now
	return true
}

// FPS is the last completed window's average.
func (c *FPSCounter) FPS() float64 {
	return c.fps
}
