package sky

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"voxelview/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

// Cycle interpolates the clear color through one day of Period.
//
// The palette runs top -> middle -> bottom -> middle -> top, a quarter of the
// period per leg, so phase 0 and phase 1 meet at Top without a jump.
type Cycle struct {
	Period time.Duration

	Top    mgl32.Vec3
	Middle mgl32.Vec3
	Bottom mgl32.Vec3

	start time.Time
}

// New creates a cycle whose phase 0 is at start. period must be positive.
func New(period time.Duration, top, middle, bottom mgl32.Vec3, start time.Time) *Cycle {
	if period <= 0 {
		panic(fmt.Sprintf("sky: period %v must be positive", period))
	}
	return &Cycle{Period: period, Top: top, Middle: middle, Bottom: bottom, start: start}
}

// FromSettings parses the configured palette.
func FromSettings(s config.SkySettings, start time.Time) (*Cycle, error) {
	top, err := ParseHex(s.Top)
	if err != nil {
		return nil, fmt.Errorf("sky top: %w", err)
	}
	middle, err := ParseHex(s.Middle)
	if err != nil {
		return nil, fmt.Errorf("sky middle: %w", err)
	}
	bottom, err := ParseHex(s.Bottom)
	if err != nil {
		return nil, fmt.Errorf("sky bottom: %w", err)
	}
	if s.DayLength <= 0 {
		return nil, fmt.Errorf("sky day_length %v must be positive", s.DayLength)
	}
	return New(s.DayLength, top, middle, bottom, start), nil
}

// Start is the instant of phase 0.
func (c *Cycle) Start() time.Time {
	return c.start
}

// Phase maps elapsed time into [0,1). Negative durations wrap around.
func (c *Cycle) Phase(elapsed time.Duration) float64 {
	r := elapsed % c.Period
	if r < 0 {
		r += c.Period
	}
	return float64(r) / float64(c.Period)
}

// ColorAt returns the sky color at phase, wrapped into [0,1).
func (c *Cycle) ColorAt(phase float64) mgl32.Vec3 {
	phase -= math.Floor(phase)
	stops := [5]mgl32.Vec3{c.Top, c.Middle, c.Bottom, c.Middle, c.Top}

	seg := phase * 4
	i := int(seg)
	if i > 3 {
		i = 3
	}
	t := float32(seg - float64(i))
	from, to := stops[i], stops[i+1]
	return from.Add(to.Sub(from).Mul(t))
}

// Color is ColorAt(Phase(elapsed)).
func (c *Cycle) Color(elapsed time.Duration) mgl32.Vec3 {
	return c.ColorAt(c.Phase(elapsed))
}

// Sample returns the phase and color at wall-clock time now.
func (c *Cycle) Sample(now time.Time) (float64, mgl32.Vec3) {
	p := c.Phase(now.Sub(c.start))
	return p, c.ColorAt(p)
}

// ParseHex parses "#RRGGBB" (the '#' is optional) into 0..1 RGB.
func ParseHex(s string) (mgl32.Vec3, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return mgl32.Vec3{}, fmt.Errorf("color %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return mgl32.Vec3{}, fmt.Errorf("color %q: %w", s, err)
	}
	return mgl32.Vec3{
		float32((v>>16)&0xFF) / 255,
		float32((v>>8)&0xFF) / 255,
		float32(v&0xFF) / 255,
	}, nil
}
