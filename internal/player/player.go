package player

import (
	"voxelview/internal/input"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// WalkSpeed is the default per-tick displacement along each held axis.
	WalkSpeed = 0.1
	// MouseSensitivity scales cursor deltas into degrees.
	MouseSensitivity = 0.1

	MaxPitch = 89.0
)

// Pose is the camera position and look direction. Angles are in degrees;
// yaw 0 looks along +X, yaw 90 along +Z.
type Pose struct {
	Position mgl32.Vec3
	Yaw      float64
	Pitch    float64
}

// Controller is a free-flying first-person camera. It does not collide with the world.
type Controller struct {
	Pose Pose

	Step        float32
	Sensitivity float64

	captured bool
	intent   input.Intent

	LastMouseX float64
	LastMouseY float64
	FirstMouse bool
}

// New creates a controller at pos with the default step and sensitivity.
func New(pos mgl32.Vec3) *Controller {
	return &Controller{
		Pose:        Pose{Position: pos},
		Step:        WalkSpeed,
		Sensitivity: MouseSensitivity,
		FirstMouse:  true,
	}
}

// Captured reports whether the pointer is locked to the view.
func (c *Controller) Captured() bool {
	return c.captured
}

// SetCaptured opens or closes the pointer gate. Releasing drops the latched
// intent so the camera stops even if key-up events are lost.
func (c *Controller) SetCaptured(captured bool) {
	if captured && !c.captured {
		c.FirstMouse = true
	}
	if !captured {
		c.intent = input.Intent{}
	}
	c.captured = captured
}

// Intent returns the intent latched by the last Tick.
func (c *Controller) Intent() input.Intent {
	return c.intent
}
